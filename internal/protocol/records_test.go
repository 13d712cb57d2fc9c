package protocol

import (
	"reflect"
	"testing"

	"paipuScope/internal/model"
)

func TestRecordHuleRoundTrip(t *testing.T) {
	rec := &model.RoundRecord{
		Name: KindHule,
		Hules: []model.HandResult{
			{
				Seat:  2,
				Zimo:  true,
				Count: 13,
				Fans:  []model.FanEntry{{ID: 42, Val: 1}, {ID: 31, Val: 2}},
				Fu:    25,
			},
			{
				Count: 2,
				Fans:  []model.FanEntry{{ID: 2, Val: 1}},
			},
		},
	}

	decoded, err := DecodeRecordHule(EncodeRecordHule(rec))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, rec) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, rec)
	}
}

func TestGameDetailRecordsRoundTrip(t *testing.T) {
	details := &GameDetailRecords{
		Records: [][]byte{{0x01, 0x02}, {0x03}},
		Version: 210,
		Actions: []GameAction{
			{Passed: 1},
			{Result: []byte{0x04, 0x05}},
		},
	}

	decoded, err := DecodeGameDetailRecords(EncodeGameDetailRecords(details))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, details) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, details)
	}
}

func TestMatchHeadRoundTrip(t *testing.T) {
	roomID := uint32(20496)
	redDora := uint32(3)
	fandian := uint32(30000)
	tips := true
	head := &model.MatchHead{
		UUID:      "210525-e9e55c55-f25c-497c-a435-7e29a6df2483",
		StartTime: 1621937111,
		EndTime:   1621938770,
		Config: model.GameConfig{
			Category: 1,
			Mode: model.GameMode{
				Mode: 2,
				AI:   true,
				DetailRule: &model.DetailRule{
					RedDora:      &redDora,
					MinPointsWin: &fandian,
					Tips:         &tips,
				},
			},
			Meta: model.RoomMeta{RoomID: &roomID},
		},
		Accounts: []model.Account{
			{AccountID: 69560545, Nickname: "SiraB"},
			{AccountID: 67412632, Seat: 1, Nickname: "memoru"},
		},
		Result: model.MatchResult{Players: []model.SeatResult{
			{Seat: 2, FinalPoint: 36400, TotalPoint: 26400},
			{FinalPoint: 29100, TotalPoint: -900},
		}},
	}

	res, err := DecodeResGameRecord(EncodeResGameRecord(ResGameRecord{Head: head}))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(res.Head, head) {
		t.Fatalf("head mismatch:\n got %+v\nwant %+v", res.Head, head)
	}
}

func TestDecodeResGameRecordError(t *testing.T) {
	res, err := DecodeResGameRecord(EncodeResGameRecord(ResGameRecord{ErrorCode: 1203}))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.ErrorCode != 1203 {
		t.Fatalf("error code mismatch: %d", res.ErrorCode)
	}
	if res.Head != nil {
		t.Fatalf("unexpected head on error response")
	}
}

func TestNegativePointsRoundTrip(t *testing.T) {
	head := &model.MatchHead{
		UUID: "test",
		Result: model.MatchResult{Players: []model.SeatResult{
			{FinalPoint: -13200, TotalPoint: -36100},
		}},
	}

	res, err := DecodeResGameRecord(EncodeResGameRecord(ResGameRecord{Head: head}))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	player := res.Head.Result.Players[0]
	if player.FinalPoint != -13200 || player.TotalPoint != -36100 {
		t.Fatalf("negative points mangled: %+v", player)
	}
}
