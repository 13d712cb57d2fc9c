package rules

import (
	"reflect"
	"testing"

	"paipuScope/internal/model"
)

func u32(v uint32) *uint32 { return &v }

func validHead() *model.MatchHead {
	return &model.MatchHead{
		UUID: "test",
		Config: model.GameConfig{
			Category: 1,
			Mode: model.GameMode{
				Mode: 2,
				DetailRule: &model.DetailRule{
					RedDora:      u32(3),
					MinPointsWin: u32(30000),
					MinHan:       u32(1),
					InitPoint:    u32(25000),
					OpenTanyao:   u32(1),
					TimeAdd:      u32(20),
					TimeFixed:    u32(5),
				},
			},
			Meta: model.RoomMeta{RoomID: u32(20496)},
		},
		Accounts: []model.Account{
			{AccountID: 1, Nickname: "a"},
			{AccountID: 2, Seat: 1, Nickname: "b"},
			{AccountID: 3, Seat: 2, Nickname: "c"},
			{AccountID: 4, Seat: 3, Nickname: "d"},
		},
	}
}

func codes(errs []model.ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Code)
	}
	return out
}

func TestValidateOK(t *testing.T) {
	valid, errs := Validate(&model.MatchBlob{Head: validHead()})
	if !valid {
		t.Fatalf("expected valid, got errors: %+v", errs)
	}
	if len(errs) != 0 {
		t.Fatalf("valid blob must have no errors: %+v", errs)
	}
}

func TestValidateFetchFailureShortCircuits(t *testing.T) {
	head := validHead()
	head.Accounts = nil // would trip player count if checks ran

	valid, errs := Validate(&model.MatchBlob{Error: &model.FetchFailure{}, Head: head})
	if valid {
		t.Fatalf("expected invalid")
	}
	want := []model.ValidationError{{Code: model.CodeCannotGetLog, Message: "Cannot get game log data."}}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("errors mismatch: %+v", errs)
	}
}

func TestValidateMissingRoomIDTerminal(t *testing.T) {
	head := validHead()
	head.Config.Meta.RoomID = nil
	head.Config.Category = 9 // must not be reported after the terminal check

	valid, errs := Validate(&model.MatchBlob{Head: head})
	if valid {
		t.Fatalf("expected invalid")
	}
	if got := codes(errs); !reflect.DeepEqual(got, []string{model.CodeMissingRoomID}) {
		t.Fatalf("expected only missing-room-id, got %v", got)
	}
	if errs[0].Message != "roomId is missing." {
		t.Fatalf("message mismatch: %q", errs[0].Message)
	}
}

func TestValidateSingleWrongField(t *testing.T) {
	head := validHead()
	head.Config.Mode.DetailRule = &model.DetailRule{MinPointsWin: u32(40000)}

	valid, errs := Validate(&model.MatchBlob{Head: head})
	if valid {
		t.Fatalf("expected invalid")
	}
	want := []model.ValidationError{{
		Code:    model.CodeInvalidMinPoints,
		Message: "Invalid min points to win: 40000. It should be 30000.",
		Data:    uint32(40000),
	}}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("errors mismatch:\n got %+v\nwant %+v", errs, want)
	}
}

func TestValidateAbsentFieldsAreNotViolations(t *testing.T) {
	head := validHead()
	head.Config.Mode.DetailRule = &model.DetailRule{}

	if valid, errs := Validate(&model.MatchBlob{Head: head}); !valid {
		t.Fatalf("empty detail rule must pass, got %+v", errs)
	}

	head.Config.Mode.DetailRule = nil
	if valid, errs := Validate(&model.MatchBlob{Head: head}); !valid {
		t.Fatalf("missing detail rule must pass, got %+v", errs)
	}
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
	head := validHead()
	head.Accounts = head.Accounts[:1]
	head.Config.Mode.Mode = 1
	head.Config.Mode.DetailRule = &model.DetailRule{
		RedDora:      u32(4),
		MinPointsWin: u32(25000),
		MinHan:       u32(2),
		InitPoint:    u32(10000),
		LocalYaku:    u32(1),
		OpenHand:     u32(1),
		TimeAdd:      u32(5),
		TimeFixed:    u32(3),
	}

	valid, errs := Validate(&model.MatchBlob{Head: head})
	if valid {
		t.Fatalf("expected invalid")
	}
	want := []string{
		model.CodeInvalidPlayerCount,
		model.CodeInvalidMode,
		model.CodeInvalidRedDora,
		model.CodeInvalidMinPoints,
		model.CodeInvalidMinHan,
		model.CodeInvalidInitPoints,
		model.CodeInvalidLocalYaku,
		model.CodeInvalidOpenHand,
		model.CodeInvalidTimeAdd,
		model.CodeInvalidTimeFixed,
	}
	if got := codes(errs); !reflect.DeepEqual(got, want) {
		t.Fatalf("codes mismatch:\n got %v\nwant %v", got, want)
	}
	if errs[0].Data != 1 {
		t.Fatalf("player count data mismatch: %v", errs[0].Data)
	}
	if errs[6].Message != "Invalid local yaku: 1. It should be 0." {
		t.Fatalf("local yaku message mismatch: %q", errs[6].Message)
	}
}

func TestValidateIsPure(t *testing.T) {
	head := validHead()
	head.Config.Mode.DetailRule.RedDora = u32(4)
	blob := &model.MatchBlob{Head: head}

	_, first := Validate(blob)
	_, second := Validate(blob)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validator not pure:\n%+v\n%+v", first, second)
	}
}
