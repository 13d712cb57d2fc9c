package extract

import (
	"reflect"
	"testing"

	"paipuScope/internal/model"
	"paipuScope/internal/protocol"
)

func huleEnvelope(t *testing.T, seat, count int, fanIDs ...uint32) []byte {
	t.Helper()
	fans := make([]model.FanEntry, 0, len(fanIDs))
	for _, id := range fanIDs {
		fans = append(fans, model.FanEntry{ID: id, Val: 1})
	}
	payload := protocol.EncodeRecordHule(&model.RoundRecord{
		Name:  protocol.KindHule,
		Hules: []model.HandResult{{Seat: seat, Count: count, Fans: fans}},
	})
	return protocol.EncodeEnvelope(protocol.Envelope{Name: ".lq.RecordHule", Payload: payload})
}

func otherEnvelope(name string) []byte {
	return protocol.EncodeEnvelope(protocol.Envelope{Name: name, Payload: nil})
}

func TestRoundRecordsLegacyLayout(t *testing.T) {
	details := &protocol.GameDetailRecords{
		Records: [][]byte{
			otherEnvelope(".lq.RecordNewRound"),
			huleEnvelope(t, 2, 1, 42),
			otherEnvelope(".lq.RecordDiscardTile"),
			huleEnvelope(t, 0, 2, 2),
		},
	}

	records, decodeErrs := RoundRecords(details, protocol.NewRegistry())
	if len(decodeErrs) != 0 {
		t.Fatalf("unexpected decode errors: %+v", decodeErrs)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Hules[0].Seat != 2 || records[1].Hules[0].Seat != 0 {
		t.Fatalf("record order lost: %+v", records)
	}
}

func TestRoundRecordsActionLayout(t *testing.T) {
	details := &protocol.GameDetailRecords{
		Actions: []protocol.GameAction{
			{Passed: 1},
			{Result: huleEnvelope(t, 1, 1, 2)},
			{Result: otherEnvelope(".lq.RecordDealTile")},
			{Result: huleEnvelope(t, 3, 1, 14)},
		},
	}

	records, decodeErrs := RoundRecords(details, protocol.NewRegistry())
	if len(decodeErrs) != 0 {
		t.Fatalf("unexpected decode errors: %+v", decodeErrs)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Hules[0].Seat != 1 || records[1].Hules[0].Seat != 3 {
		t.Fatalf("record order lost: %+v", records)
	}
}

func TestRoundRecordsLegacyPrecedence(t *testing.T) {
	// Both layouts present: the flat list wins, the action list is
	// ignored entirely.
	details := &protocol.GameDetailRecords{
		Records: [][]byte{huleEnvelope(t, 2, 1, 42)},
		Actions: []protocol.GameAction{{Result: huleEnvelope(t, 3, 1, 2)}},
	}

	records, _ := RoundRecords(details, protocol.NewRegistry())
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Hules[0].Seat != 2 {
		t.Fatalf("action layout leaked into legacy result: %+v", records)
	}
}

func TestRoundRecordsUnknownNameSkipped(t *testing.T) {
	details := &protocol.GameDetailRecords{
		Records: [][]byte{
			otherEnvelope(".lq.RecordSomethingNew"),
			huleEnvelope(t, 0, 1, 2),
		},
	}

	records, decodeErrs := RoundRecords(details, protocol.NewRegistry())
	if len(decodeErrs) != 0 {
		t.Fatalf("unknown kind should be a silent skip: %+v", decodeErrs)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestRoundRecordsMalformedReported(t *testing.T) {
	details := &protocol.GameDetailRecords{
		Records: [][]byte{
			protocol.EncodeEnvelope(protocol.Envelope{Name: ".lq.RecordHule", Payload: []byte{0xff}}),
			huleEnvelope(t, 1, 1, 2),
		},
	}

	records, decodeErrs := RoundRecords(details, protocol.NewRegistry())
	if len(decodeErrs) != 1 {
		t.Fatalf("expected 1 decode error, got %+v", decodeErrs)
	}
	if decodeErrs[0].Index != 0 || decodeErrs[0].Name != ".lq.RecordHule" {
		t.Fatalf("decode error context mismatch: %+v", decodeErrs[0])
	}
	if len(records) != 1 {
		t.Fatalf("malformed record should not stop extraction, got %d records", len(records))
	}
}

func TestRoundRecordsMultiplePasses(t *testing.T) {
	details := &protocol.GameDetailRecords{
		Records: [][]byte{huleEnvelope(t, 2, 13)},
	}

	first, _ := RoundRecords(details, protocol.NewRegistry())
	second, _ := RoundRecords(details, protocol.NewRegistry())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("passes differ: %+v != %+v", first, second)
	}
}
