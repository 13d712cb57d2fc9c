package rules

import (
	"fmt"

	"paipuScope/internal/model"
)

// Expected rule configuration for a counted match. Anything else is a
// deviation.
const (
	ExpectedPlayerCount = 4
	ExpectedCategory    = 1 // Friendly Match
	ExpectedMode        = 2 // 4-Player Two-Wind Match Mode
	ExpectedRedDora     = 3
	ExpectedMinPoints   = 30000
	ExpectedMinHan      = 1
	ExpectedInitPoints  = 25000
	ExpectedOpenTanyao  = 1
	ExpectedLocalYaku   = 0
	ExpectedOpenHand    = 0
	ExpectedTimeAdd     = 20
	ExpectedTimeFixed   = 5
)

// Validate checks a match blob against the expected ruleset. Every
// deviation is collected; the check set never short-circuits on a
// violation, with two exceptions: a fetch failure is reported alone, and
// a missing room id ends further checks because the config block may be
// absent entirely for non-room matches.
//
// Validate is pure: the same blob always yields the same ordered error
// list.
func Validate(blob *model.MatchBlob) (bool, []model.ValidationError) {
	var errs []model.ValidationError

	if blob.Error != nil || blob.Head == nil {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeCannotGetLog,
			Message: "Cannot get game log data.",
		})
		return false, errs
	}

	head := blob.Head

	if len(head.Accounts) != ExpectedPlayerCount {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeInvalidPlayerCount,
			Message: fmt.Sprintf("Invalid player count: %d. It should be 4.", len(head.Accounts)),
			Data:    len(head.Accounts),
		})
	}

	if head.Config.Meta.RoomID == nil {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeMissingRoomID,
			Message: "roomId is missing.",
		})
		return false, errs
	}

	if head.Config.Category != ExpectedCategory {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeInvalidCategory,
			Message: fmt.Sprintf("Invalid category: %d. It should be Friendly Match(1)", head.Config.Category),
			Data:    head.Config.Category,
		})
	}

	if head.Config.Mode.Mode != ExpectedMode {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeInvalidMode,
			Message: fmt.Sprintf("Invalid mode: %d. It should be 4-Player Two-Wind Match Mode(2).", head.Config.Mode.Mode),
			Data:    head.Config.Mode.Mode,
		})
	}

	errs = append(errs, validateDetailRule(head.Config.Mode.DetailRule)...)

	return len(errs) == 0, errs
}

// validateDetailRule checks the optional scoring/time parameters. Older
// schema versions omit fields; absence is never a violation.
func validateDetailRule(rule *model.DetailRule) []model.ValidationError {
	if rule == nil {
		return nil
	}

	var errs []model.ValidationError

	if rule.Tips != nil && !*rule.Tips {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeInvalidTips,
			Message: fmt.Sprintf("Invalid tips: %t. It should be True.", *rule.Tips),
			Data:    *rule.Tips,
		})
	}
	if rule.RedDora != nil && *rule.RedDora != ExpectedRedDora {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeInvalidRedDora,
			Message: fmt.Sprintf("Invalid red dora: %d. It should be 3.", *rule.RedDora),
			Data:    *rule.RedDora,
		})
	}
	if rule.MinPointsWin != nil && *rule.MinPointsWin != ExpectedMinPoints {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeInvalidMinPoints,
			Message: fmt.Sprintf("Invalid min points to win: %d. It should be 30000.", *rule.MinPointsWin),
			Data:    *rule.MinPointsWin,
		})
	}
	if rule.MinHan != nil && *rule.MinHan != ExpectedMinHan {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeInvalidMinHan,
			Message: fmt.Sprintf("Invalid min han: %d. It should be 1.", *rule.MinHan),
			Data:    *rule.MinHan,
		})
	}
	if rule.InitPoint != nil && *rule.InitPoint != ExpectedInitPoints {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeInvalidInitPoints,
			Message: fmt.Sprintf("Invalid starting points: %d. It should be 25000.", *rule.InitPoint),
			Data:    *rule.InitPoint,
		})
	}
	if rule.OpenTanyao != nil && *rule.OpenTanyao != ExpectedOpenTanyao {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeInvalidOpenTanyao,
			Message: fmt.Sprintf("Invalid open tanyao: %d. It should be 1.", *rule.OpenTanyao),
			Data:    *rule.OpenTanyao,
		})
	}
	if rule.LocalYaku != nil && *rule.LocalYaku != ExpectedLocalYaku {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeInvalidLocalYaku,
			Message: fmt.Sprintf("Invalid local yaku: %d. It should be 0.", *rule.LocalYaku),
			Data:    *rule.LocalYaku,
		})
	}
	if rule.OpenHand != nil && *rule.OpenHand != ExpectedOpenHand {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeInvalidOpenHand,
			Message: fmt.Sprintf("Invalid open hand: %d. It should be 0.", *rule.OpenHand),
			Data:    *rule.OpenHand,
		})
	}
	if rule.TimeAdd != nil && *rule.TimeAdd != ExpectedTimeAdd {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeInvalidTimeAdd,
			Message: fmt.Sprintf("Invalid thinking time(add): %d. It should be 20.", *rule.TimeAdd),
			Data:    *rule.TimeAdd,
		})
	}
	if rule.TimeFixed != nil && *rule.TimeFixed != ExpectedTimeFixed {
		errs = append(errs, model.ValidationError{
			Code:    model.CodeInvalidTimeFixed,
			Message: fmt.Sprintf("Invalid thinking time(fixed): %d. It should be 5.", *rule.TimeFixed),
			Data:    *rule.TimeFixed,
		})
	}

	return errs
}
