package protocol

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"paipuScope/internal/model"
)

// GameDetailRecords is the decoded action/record section of a match blob.
// Older logs carry a flat Records list; newer ones embed each record in an
// action. Both hold wire-encoded envelopes.
type GameDetailRecords struct {
	Records [][]byte
	Version uint32
	Actions []GameAction
}

// GameAction is one entry of the new-format action list. Result is empty
// for actions that are not game events.
type GameAction struct {
	Passed uint32
	Result []byte
}

// DecodeGameDetailRecords parses the record container message.
func DecodeGameDetailRecords(b []byte) (*GameDetailRecords, error) {
	details := &GameDetailRecords{}
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			details.Records = append(details.Records, v)
			return n, nil
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			details.Version = uint32(v)
			return n, nil
		case num == 3 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			action, err := decodeGameAction(v)
			if err != nil {
				return 0, err
			}
			details.Actions = append(details.Actions, action)
			return n, nil
		}
		return 0, nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode game detail records: %w", err)
	}
	return details, nil
}

func decodeGameAction(b []byte) (GameAction, error) {
	var action GameAction
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			action.Passed = uint32(v)
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			action.Result = v
			return n, nil
		}
		return 0, nil
	})
	return action, err
}

// EncodeGameDetailRecords builds the wire form of the record container.
func EncodeGameDetailRecords(details *GameDetailRecords) []byte {
	var b []byte
	for _, rec := range details.Records {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, rec)
	}
	if details.Version != 0 {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(details.Version))
	}
	for _, action := range details.Actions {
		var ab []byte
		if action.Passed != 0 {
			ab = protowire.AppendTag(ab, 1, protowire.VarintType)
			ab = protowire.AppendVarint(ab, uint64(action.Passed))
		}
		if len(action.Result) > 0 {
			ab = protowire.AppendTag(ab, 2, protowire.BytesType)
			ab = protowire.AppendBytes(ab, action.Result)
		}
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, ab)
	}
	return b
}

// DecodeRecordHule parses a hand-completion record.
func DecodeRecordHule(b []byte) (*model.RoundRecord, error) {
	rec := &model.RoundRecord{Name: KindHule}
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			hule, err := decodeHule(v)
			if err != nil {
				return 0, err
			}
			rec.Hules = append(rec.Hules, hule)
			return n, nil
		}
		return 0, nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", KindHule, err)
	}
	return rec, nil
}

func decodeHule(b []byte) (model.HandResult, error) {
	var hule model.HandResult
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		switch {
		case num == 4 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			hule.Seat = int(v)
			return n, nil
		case num == 5 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			hule.Zimo = v != 0
			return n, nil
		case num == 11 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			hule.Count = int(v)
			return n, nil
		case num == 12 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			fan, err := decodeFan(v)
			if err != nil {
				return 0, err
			}
			hule.Fans = append(hule.Fans, fan)
			return n, nil
		case num == 13 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			hule.Fu = int(v)
			return n, nil
		}
		return 0, nil
	})
	return hule, err
}

func decodeFan(b []byte) (model.FanEntry, error) {
	var fan model.FanEntry
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			fan.Val = uint32(v)
			return n, nil
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			fan.ID = uint32(v)
			return n, nil
		}
		return 0, nil
	})
	return fan, err
}

// EncodeRecordHule builds the wire form of a hand-completion record. The
// decode path round-trips through this encoding.
func EncodeRecordHule(rec *model.RoundRecord) []byte {
	var b []byte
	for _, hule := range rec.Hules {
		var hb []byte
		if hule.Seat != 0 {
			hb = protowire.AppendTag(hb, 4, protowire.VarintType)
			hb = protowire.AppendVarint(hb, uint64(hule.Seat))
		}
		if hule.Zimo {
			hb = protowire.AppendTag(hb, 5, protowire.VarintType)
			hb = protowire.AppendVarint(hb, 1)
		}
		if hule.Count != 0 {
			hb = protowire.AppendTag(hb, 11, protowire.VarintType)
			hb = protowire.AppendVarint(hb, uint64(hule.Count))
		}
		for _, fan := range hule.Fans {
			var fb []byte
			if fan.Val != 0 {
				fb = protowire.AppendTag(fb, 1, protowire.VarintType)
				fb = protowire.AppendVarint(fb, uint64(fan.Val))
			}
			if fan.ID != 0 {
				fb = protowire.AppendTag(fb, 2, protowire.VarintType)
				fb = protowire.AppendVarint(fb, uint64(fan.ID))
			}
			hb = protowire.AppendTag(hb, 12, protowire.BytesType)
			hb = protowire.AppendBytes(hb, fb)
		}
		if hule.Fu != 0 {
			hb = protowire.AppendTag(hb, 13, protowire.VarintType)
			hb = protowire.AppendVarint(hb, uint64(hule.Fu))
		}
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, hb)
	}
	return b
}
