package protocol

import (
	"google.golang.org/protobuf/encoding/protowire"

	"paipuScope/internal/model"
)

// Wire encoders for the response-side messages. The service itself only
// decodes these; the encoders keep the wire schema symmetric and let tests
// and fixtures build byte-exact server responses.

// EncodeResGameRecord builds the wire form of a game record response.
func EncodeResGameRecord(res ResGameRecord) []byte {
	var b []byte
	if res.ErrorCode != 0 {
		eb := protowire.AppendTag(nil, 1, protowire.VarintType)
		eb = protowire.AppendVarint(eb, uint64(res.ErrorCode))
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, eb)
	}
	if res.Head != nil {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, EncodeMatchHead(res.Head))
	}
	if len(res.Data) > 0 {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, res.Data)
	}
	return b
}

// EncodeResLogin builds the wire form of a login response.
func EncodeResLogin(res ResLogin) []byte {
	var b []byte
	if res.ErrorCode != 0 {
		eb := protowire.AppendTag(nil, 1, protowire.VarintType)
		eb = protowire.AppendVarint(eb, uint64(res.ErrorCode))
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, eb)
	}
	if res.AccessToken != "" {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, res.AccessToken)
	}
	return b
}

// EncodeMatchHead builds the wire form of a match header.
func EncodeMatchHead(head *model.MatchHead) []byte {
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendString(b, head.UUID)
	if head.StartTime != 0 {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(head.StartTime))
	}
	if head.EndTime != 0 {
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(head.EndTime))
	}
	b = protowire.AppendTag(b, 5, protowire.BytesType)
	b = protowire.AppendBytes(b, encodeGameConfig(head.Config))
	for _, account := range head.Accounts {
		b = protowire.AppendTag(b, 11, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeAccount(account))
	}
	b = protowire.AppendTag(b, 12, protowire.BytesType)
	b = protowire.AppendBytes(b, encodeMatchResult(head.Result))
	return b
}

func encodeAccount(account model.Account) []byte {
	b := protowire.AppendTag(nil, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(account.AccountID))
	if account.Seat != 0 {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(account.Seat))
	}
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendString(b, account.Nickname)
	return b
}

func encodeGameConfig(cfg model.GameConfig) []byte {
	var b []byte
	if cfg.Category != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(cfg.Category))
	}
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, encodeGameMode(cfg.Mode))
	if cfg.Meta.RoomID != nil {
		mb := protowire.AppendTag(nil, 1, protowire.VarintType)
		mb = protowire.AppendVarint(mb, uint64(*cfg.Meta.RoomID))
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, mb)
	}
	return b
}

func encodeGameMode(mode model.GameMode) []byte {
	var b []byte
	if mode.Mode != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(mode.Mode))
	}
	if mode.AI {
		b = protowire.AppendTag(b, 4, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	}
	if mode.DetailRule != nil {
		b = protowire.AppendTag(b, 5, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeDetailRule(mode.DetailRule))
	}
	return b
}

func encodeDetailRule(rule *model.DetailRule) []byte {
	var b []byte
	appendOpt := func(num protowire.Number, val *uint32) {
		if val != nil {
			b = protowire.AppendTag(b, num, protowire.VarintType)
			b = protowire.AppendVarint(b, uint64(*val))
		}
	}
	appendOpt(1, rule.TimeFixed)
	appendOpt(2, rule.TimeAdd)
	appendOpt(3, rule.RedDora)
	appendOpt(4, rule.OpenTanyao)
	appendOpt(5, rule.InitPoint)
	appendOpt(6, rule.MinPointsWin)
	appendOpt(7, rule.MinHan)
	appendOpt(8, rule.LocalYaku)
	appendOpt(9, rule.OpenHand)
	if rule.Tips != nil && *rule.Tips {
		b = protowire.AppendTag(b, 10, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	}
	return b
}

func encodeMatchResult(result model.MatchResult) []byte {
	var b []byte
	for _, player := range result.Players {
		var pb []byte
		if player.Seat != 0 {
			pb = protowire.AppendTag(pb, 1, protowire.VarintType)
			pb = protowire.AppendVarint(pb, uint64(player.Seat))
		}
		if player.TotalPoint != 0 {
			pb = protowire.AppendTag(pb, 2, protowire.VarintType)
			pb = protowire.AppendVarint(pb, uint64(int64(player.TotalPoint)))
		}
		if player.FinalPoint != 0 {
			pb = protowire.AppendTag(pb, 3, protowire.VarintType)
			pb = protowire.AppendVarint(pb, uint64(int64(player.FinalPoint)))
		}
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, pb)
	}
	return b
}
