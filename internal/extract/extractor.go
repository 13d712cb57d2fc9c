package extract

import (
	"errors"

	"paipuScope/internal/model"
	"paipuScope/internal/protocol"
)

// RoundRecords walks the record container and decodes every round-outcome
// record, in source order. Two layouts exist: older logs carry a flat
// record list, newer ones embed each record in an action. The flat list
// wins when non-empty; the two are never merged.
//
// Records of other kinds are skipped silently. Payloads that fail to
// decode are reported in the second return value and do not stop the walk.
func RoundRecords(details *protocol.GameDetailRecords, reg *protocol.Registry) ([]model.RoundRecord, []model.DecodeError) {
	items := details.Records
	if len(items) == 0 {
		items = make([][]byte, 0, len(details.Actions))
		for _, action := range details.Actions {
			if len(action.Result) == 0 {
				continue
			}
			items = append(items, action.Result)
		}
	}

	var records []model.RoundRecord
	var decodeErrs []model.DecodeError
	for i, item := range items {
		env, err := protocol.DecodeEnvelope(item)
		if err != nil {
			decodeErrs = append(decodeErrs, model.DecodeError{
				Index:       i,
				PayloadSize: len(item),
				Error:       err.Error(),
			})
			continue
		}
		if protocol.SchemaName(env.Name) != protocol.KindHule {
			continue
		}
		v, err := protocol.DecodePayload(env, reg)
		if err != nil {
			if errors.Is(err, protocol.ErrUnknownSchema) {
				continue
			}
			decodeErrs = append(decodeErrs, model.DecodeError{
				Index:       i,
				Name:        env.Name,
				PayloadSize: len(env.Payload),
				Error:       err.Error(),
			})
			continue
		}
		rec, ok := v.(*model.RoundRecord)
		if !ok || rec == nil {
			continue
		}
		records = append(records, *rec)
	}
	return records, decodeErrs
}
