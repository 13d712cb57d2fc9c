package server

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"paipuScope/internal/extract"
	"paipuScope/internal/model"
	"paipuScope/internal/protocol"
	"paipuScope/internal/rank"
	"paipuScope/internal/rules"
)

// GameRecordSource fetches one raw game record from the remote service.
type GameRecordSource interface {
	Fetch(ctx context.Context, matchID string) (protocol.ResGameRecord, error)
}

// Pipeline runs the decode stage for one request: fetch, unwrap the
// record container, extract round records. It holds no per-request state,
// so one Pipeline serves arbitrary concurrent requests.
type Pipeline struct {
	source   GameRecordSource
	registry *protocol.Registry
	logger   *zap.Logger
}

func NewPipeline(source GameRecordSource, registry *protocol.Registry, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{source: source, registry: registry, logger: logger}
}

// Resolve fetches and decodes one match. A transport or login failure is
// not an error here: it yields a blob with the fetch-error flag set, so
// the validator reports it as cannot-get-log. A record container whose
// own envelope cannot be decoded is a hard error.
func (p *Pipeline) Resolve(ctx context.Context, matchID string) (*model.MatchBlob, error) {
	res, err := p.source.Fetch(ctx, matchID)
	if err != nil {
		p.logger.Warn("fetch failed", zap.String("uuid", matchID), zap.Error(err))
		return &model.MatchBlob{Error: &model.FetchFailure{}}, nil
	}
	if res.ErrorCode != 0 {
		p.logger.Warn("record not available",
			zap.String("uuid", matchID),
			zap.Uint32("code", res.ErrorCode))
		return &model.MatchBlob{Error: &model.FetchFailure{Code: res.ErrorCode}}, nil
	}

	blob := &model.MatchBlob{Head: res.Head, Records: []model.RoundRecord{}}
	if len(res.Data) == 0 {
		return blob, nil
	}

	env, err := protocol.DecodeEnvelope(res.Data)
	if err != nil {
		return nil, fmt.Errorf("record container: %w", err)
	}
	details, err := protocol.DecodeGameDetailRecords(env.Payload)
	if err != nil {
		return nil, fmt.Errorf("record container: %w", err)
	}

	records, decodeErrs := extract.RoundRecords(details, p.registry)
	for _, decodeErr := range decodeErrs {
		p.logger.Warn("record decode failed",
			zap.String("uuid", matchID),
			zap.Int("index", decodeErr.Index),
			zap.String("name", decodeErr.Name),
			zap.String("error", decodeErr.Error))
	}
	if records != nil {
		blob.Records = records
	}
	return blob, nil
}

// Summarize validates a resolved blob and derives the ranking and
// highlights. Validation deviations come back in the second return
// value; the error return is reserved for data-integrity faults in the
// derive stage.
func Summarize(blob *model.MatchBlob) (*model.Summary, []model.ValidationError, error) {
	valid, errs := rules.Validate(blob)
	if !valid {
		return nil, errs, nil
	}

	head := blob.Head
	ranks, err := rank.Ranks(head)
	if err != nil {
		return nil, nil, err
	}
	noted, err := rank.Highlights(blob.Records, ranks)
	if err != nil {
		return nil, nil, err
	}
	if noted == nil {
		noted = []model.NotedYaku{}
	}

	return &model.Summary{
		Result:     "OK",
		UUID:       head.UUID,
		RoomID:     *head.Config.Meta.RoomID,
		StartTime:  head.StartTime,
		EndTime:    head.EndTime,
		Ranks:      ranks,
		NotedYakus: noted,
	}, nil, nil
}
