package protocol

import (
	"errors"
	"fmt"
)

// KindHule is the record kind carrying hand-completion detail. It is the
// only kind the extractor decodes in full.
const KindHule = "RecordHule"

// Known non-outcome record kinds. Registered as opaque so the extractor
// can tell a known-but-irrelevant record from a genuinely unknown name.
var opaqueKinds = []string{
	"RecordNewRound",
	"RecordDealTile",
	"RecordDiscardTile",
	"RecordChiPengGang",
	"RecordAnGangAddGang",
	"RecordBaBei",
	"RecordLiuJu",
	"RecordNoTile",
}

// ErrUnknownSchema reports an envelope name with no registered decoder.
var ErrUnknownSchema = errors.New("unknown schema")

// MalformedPayloadError reports payload bytes that cannot be parsed under
// the schema the envelope names.
type MalformedPayloadError struct {
	Name string
	Size int
	Err  error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload for %s (%d bytes): %v", e.Name, e.Size, e.Err)
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

// Decoder parses a payload under one schema.
type Decoder func(payload []byte) (any, error)

// Registry maps schema names to decoders. It is built once at startup and
// read-only afterwards.
type Registry struct {
	decoders map[string]Decoder
}

// NewRegistry builds the default registry covering every record kind the
// pipeline understands.
func NewRegistry() *Registry {
	decoders := map[string]Decoder{
		KindHule: func(payload []byte) (any, error) {
			return DecodeRecordHule(payload)
		},
	}
	for _, kind := range opaqueKinds {
		decoders[kind] = decodeOpaque
	}
	return &Registry{decoders: decoders}
}

// Resolve returns the decoder registered for name.
func (r *Registry) Resolve(name string) (Decoder, error) {
	dec, ok := r.decoders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}
	return dec, nil
}

// decodeOpaque accepts any payload without interpreting it.
func decodeOpaque([]byte) (any, error) {
	return nil, nil
}
