package server

import (
	"testing"

	"paipuScope/internal/model"
)

func TestSummaryRowGolden(t *testing.T) {
	summary := &model.Summary{
		Result:    "OK",
		UUID:      "210525-e9e55c55-f25c-497c-a435-7e29a6df2483",
		RoomID:    20496,
		StartTime: 1621937111,
		Ranks: []model.PlayerRank{
			{Nickname: "sniper131", FinalPoint: 36400, Rank: 1},
			{Nickname: "memoru", FinalPoint: 30600, Rank: 2},
			{Nickname: "SiraB", FinalPoint: 29100, Rank: 3},
			{Nickname: "Pain", FinalPoint: 3900, Rank: 4},
		},
	}

	row, err := WriteCSVRow(SummaryRow(summary))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "2021년 5월 25일,sniper131,36400,memoru,30600,SiraB,29100,Pain,3900,20496\r\n"
	if row != want {
		t.Fatalf("row mismatch:\n got %q\nwant %q", row, want)
	}
}

func TestSummaryRowWithHighlights(t *testing.T) {
	summary := &model.Summary{
		Result:    "OK",
		RoomID:    20481,
		StartTime: 1628300996,
		Ranks: []model.PlayerRank{
			{Nickname: "AI123123123", FinalPoint: 49300, Rank: 1},
			{Nickname: "ice_Mocha", FinalPoint: 33600, Rank: 2},
			{Nickname: "BlackSeed", FinalPoint: 30300, Rank: 3},
			{Nickname: "MightyMoon", FinalPoint: -13200, Rank: 4},
		},
		NotedYakus: []model.NotedYaku{
			{Yaku: "국사무쌍", Player: model.PlayerRank{Rank: 1}},
		},
	}

	row, err := WriteCSVRow(SummaryRow(summary))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "2021년 8월 7일,AI123123123,49300,ice_Mocha,33600,BlackSeed,30300,MightyMoon,-13200,20481,,1위 국사무쌍\r\n"
	if row != want {
		t.Fatalf("row mismatch:\n got %q\nwant %q", row, want)
	}
}

func TestErrorRowGolden(t *testing.T) {
	errs := []model.ValidationError{
		{Code: model.CodeInvalidPlayerCount, Message: "Invalid player count: 3. It should be 4.", Data: 3},
		{Code: model.CodeInvalidRedDora, Message: "Invalid red dora: 2. It should be 3.", Data: uint32(2)},
	}

	row, err := WriteCSVRow(ErrorRow(errs))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	want := ",,,,,,,,,,Error: (Invalid player count: 3. It should be 4.) & (Invalid red dora: 2. It should be 3.)\r\n"
	if row != want {
		t.Fatalf("row mismatch:\n got %q\nwant %q", row, want)
	}
}
