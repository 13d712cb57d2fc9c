package protocol

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"paipuScope/internal/model"
)

// Lobby RPC method names, as carried in request envelopes.
const (
	MethodLogin           = ".lq.Lobby.login"
	MethodFetchGameRecord = ".lq.Lobby.fetchGameRecord"
)

// ReqLogin is the credential login request.
type ReqLogin struct {
	Account           string
	Password          string
	Reconnect         bool
	IsBrowser         bool
	RandomKey         string
	GenAccessToken    bool
	CurrencyPlatforms []uint32
	ClientVersion     string
}

// EncodeReqLogin builds the wire form of a login request.
func EncodeReqLogin(req ReqLogin) []byte {
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendString(b, req.Account)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, req.Password)
	if req.Reconnect {
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	}
	if req.IsBrowser {
		device := protowire.AppendTag(nil, 1, protowire.VarintType)
		device = protowire.AppendVarint(device, 1)
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, device)
	}
	b = protowire.AppendTag(b, 5, protowire.BytesType)
	b = protowire.AppendString(b, req.RandomKey)
	if req.GenAccessToken {
		b = protowire.AppendTag(b, 8, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	}
	for _, platform := range req.CurrencyPlatforms {
		b = protowire.AppendTag(b, 9, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(platform))
	}
	b = protowire.AppendTag(b, 10, protowire.BytesType)
	b = protowire.AppendString(b, req.ClientVersion)
	return b
}

// ResLogin is the login response.
type ResLogin struct {
	ErrorCode   uint32
	AccessToken string
}

// DecodeResLogin parses a login response.
func DecodeResLogin(b []byte) (ResLogin, error) {
	var res ResLogin
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			code, err := decodeErrorCode(v)
			if err != nil {
				return 0, err
			}
			res.ErrorCode = code
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			v, n, err := consumeString(rest)
			if err != nil {
				return 0, err
			}
			res.AccessToken = v
			return n, nil
		}
		return 0, nil
	})
	if err != nil {
		return ResLogin{}, fmt.Errorf("decode login response: %w", err)
	}
	return res, nil
}

// ReqGameRecord asks for one completed match by uuid.
type ReqGameRecord struct {
	GameUUID      string
	ClientVersion string
}

// EncodeReqGameRecord builds the wire form of a game record request.
func EncodeReqGameRecord(req ReqGameRecord) []byte {
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendString(b, req.GameUUID)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, req.ClientVersion)
	return b
}

// ResGameRecord is the raw match record response: the typed header plus
// the still-wrapped record container.
type ResGameRecord struct {
	ErrorCode uint32
	Head      *model.MatchHead
	Data      []byte
}

// DecodeResGameRecord parses a game record response.
func DecodeResGameRecord(b []byte) (ResGameRecord, error) {
	var res ResGameRecord
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			code, err := decodeErrorCode(v)
			if err != nil {
				return 0, err
			}
			res.ErrorCode = code
			return n, nil
		case num == 3 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			head, err := decodeMatchHead(v)
			if err != nil {
				return 0, err
			}
			res.Head = head
			return n, nil
		case num == 4 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			res.Data = v
			return n, nil
		}
		return 0, nil
	})
	if err != nil {
		return ResGameRecord{}, fmt.Errorf("decode game record response: %w", err)
	}
	return res, nil
}

func decodeErrorCode(b []byte) (uint32, error) {
	var code uint32
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		if num == 1 && typ == protowire.VarintType {
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			code = uint32(v)
			return n, nil
		}
		return 0, nil
	})
	return code, err
}

func decodeMatchHead(b []byte) (*model.MatchHead, error) {
	head := &model.MatchHead{}
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeString(rest)
			if err != nil {
				return 0, err
			}
			head.UUID = v
			return n, nil
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			head.StartTime = int64(v)
			return n, nil
		case num == 3 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			head.EndTime = int64(v)
			return n, nil
		case num == 5 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			cfg, err := decodeGameConfig(v)
			if err != nil {
				return 0, err
			}
			head.Config = cfg
			return n, nil
		case num == 11 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			account, err := decodeAccount(v)
			if err != nil {
				return 0, err
			}
			head.Accounts = append(head.Accounts, account)
			return n, nil
		case num == 12 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			result, err := decodeMatchResult(v)
			if err != nil {
				return 0, err
			}
			head.Result = result
			return n, nil
		}
		return 0, nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode match head: %w", err)
	}
	return head, nil
}

func decodeAccount(b []byte) (model.Account, error) {
	var account model.Account
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			account.AccountID = uint32(v)
			return n, nil
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			account.Seat = int(v)
			return n, nil
		case num == 3 && typ == protowire.BytesType:
			v, n, err := consumeString(rest)
			if err != nil {
				return 0, err
			}
			account.Nickname = v
			return n, nil
		}
		return 0, nil
	})
	return account, err
}

func decodeGameConfig(b []byte) (model.GameConfig, error) {
	var cfg model.GameConfig
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			cfg.Category = uint32(v)
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			mode, err := decodeGameMode(v)
			if err != nil {
				return 0, err
			}
			cfg.Mode = mode
			return n, nil
		case num == 3 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			meta, err := decodeRoomMeta(v)
			if err != nil {
				return 0, err
			}
			cfg.Meta = meta
			return n, nil
		}
		return 0, nil
	})
	return cfg, err
}

func decodeGameMode(b []byte) (model.GameMode, error) {
	var mode model.GameMode
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			mode.Mode = uint32(v)
			return n, nil
		case num == 4 && typ == protowire.VarintType:
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			mode.AI = v != 0
			return n, nil
		case num == 5 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			rule, err := decodeDetailRule(v)
			if err != nil {
				return 0, err
			}
			mode.DetailRule = rule
			return n, nil
		}
		return 0, nil
	})
	return mode, err
}

func decodeRoomMeta(b []byte) (model.RoomMeta, error) {
	var meta model.RoomMeta
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		if num == 1 && typ == protowire.VarintType {
			v, n, err := consumeVarint(rest)
			if err != nil {
				return 0, err
			}
			roomID := uint32(v)
			meta.RoomID = &roomID
			return n, nil
		}
		return 0, nil
	})
	return meta, err
}

// decodeDetailRule records field presence: only fields seen on the wire
// get a non-nil pointer, which is what the validator's only-if-present
// policy keys on.
func decodeDetailRule(b []byte) (*model.DetailRule, error) {
	rule := &model.DetailRule{}
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		if typ != protowire.VarintType {
			return 0, nil
		}
		v, n, err := consumeVarint(rest)
		if err != nil {
			return 0, err
		}
		val := uint32(v)
		switch num {
		case 1:
			rule.TimeFixed = &val
		case 2:
			rule.TimeAdd = &val
		case 3:
			rule.RedDora = &val
		case 4:
			rule.OpenTanyao = &val
		case 5:
			rule.InitPoint = &val
		case 6:
			rule.MinPointsWin = &val
		case 7:
			rule.MinHan = &val
		case 8:
			rule.LocalYaku = &val
		case 9:
			rule.OpenHand = &val
		case 10:
			tips := v != 0
			rule.Tips = &tips
		}
		return n, nil
	})
	if err != nil {
		return nil, err
	}
	return rule, nil
}

func decodeMatchResult(b []byte) (model.MatchResult, error) {
	var result model.MatchResult
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			player, err := decodeSeatResult(v)
			if err != nil {
				return 0, err
			}
			result.Players = append(result.Players, player)
			return n, nil
		}
		return 0, nil
	})
	return result, err
}

func decodeSeatResult(b []byte) (model.SeatResult, error) {
	var player model.SeatResult
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		if typ != protowire.VarintType {
			return 0, nil
		}
		v, n, err := consumeVarint(rest)
		if err != nil {
			return 0, err
		}
		switch num {
		case 1:
			player.Seat = int(v)
		case 2:
			player.TotalPoint = int(int64(v))
		case 3:
			player.FinalPoint = int(int64(v))
		}
		return n, nil
	})
	return player, err
}
