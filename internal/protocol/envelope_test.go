package protocol

import (
	"errors"
	"reflect"
	"testing"

	"paipuScope/internal/model"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	env := Envelope{Name: ".lq.RecordHule", Payload: []byte{0x08, 0x01}}

	decoded, err := DecodeEnvelope(EncodeEnvelope(env))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Name != env.Name {
		t.Fatalf("name mismatch: %q != %q", decoded.Name, env.Name)
	}
	if !reflect.DeepEqual(decoded.Payload, env.Payload) {
		t.Fatalf("payload mismatch: %v != %v", decoded.Payload, env.Payload)
	}
}

func TestDecodeEnvelopeTruncated(t *testing.T) {
	if _, err := DecodeEnvelope([]byte{0x0a, 0xff}); err == nil {
		t.Fatalf("expected error for truncated frame")
	}
}

func TestSchemaName(t *testing.T) {
	if got := SchemaName(".lq.RecordHule"); got != "RecordHule" {
		t.Fatalf("prefix not stripped: %q", got)
	}
	if got := SchemaName("RecordHule"); got != "RecordHule" {
		t.Fatalf("unprefixed name changed: %q", got)
	}
}

func TestDecodePayloadUnknownSchema(t *testing.T) {
	reg := NewRegistry()
	env := Envelope{Name: ".lq.RecordSomethingElse", Payload: nil}

	_, err := DecodePayload(env, reg)
	if !errors.Is(err, ErrUnknownSchema) {
		t.Fatalf("expected unknown schema error, got %v", err)
	}
}

func TestDecodePayloadMalformed(t *testing.T) {
	reg := NewRegistry()
	env := Envelope{Name: ".lq.RecordHule", Payload: []byte{0xff}}

	_, err := DecodePayload(env, reg)
	if err == nil {
		t.Fatalf("expected malformed payload error")
	}
	var malformed *MalformedPayloadError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedPayloadError, got %T", err)
	}
	if malformed.Name != env.Name || malformed.Size != 1 {
		t.Fatalf("error context mismatch: %+v", malformed)
	}
}

func TestDecodePayloadDeterministic(t *testing.T) {
	reg := NewRegistry()
	payload := EncodeRecordHule(&model.RoundRecord{
		Name: KindHule,
		Hules: []model.HandResult{{
			Seat:  2,
			Count: 3,
			Fans:  []model.FanEntry{{ID: 42, Val: 1}},
			Fu:    30,
		}},
	})
	env := Envelope{Name: ".lq.RecordHule", Payload: payload}

	first, err := DecodePayload(env, reg)
	if err != nil {
		t.Fatalf("first decode: %v", err)
	}
	second, err := DecodePayload(env, reg)
	if err != nil {
		t.Fatalf("second decode: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("decode is not deterministic: %+v != %+v", first, second)
	}
}
