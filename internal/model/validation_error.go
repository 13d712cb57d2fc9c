package model

// Validation error codes. Each maps to exactly one rule check.
const (
	CodeCannotGetLog       = "cannot-get-log"
	CodeInvalidPlayerCount = "invalid-player-count"
	CodeMissingRoomID      = "missing-room-id"
	CodeInvalidCategory    = "invalid-category"
	CodeInvalidMode        = "invalid-mode"
	CodeInvalidTips        = "invalid-tips"
	CodeInvalidRedDora     = "invalid-red-dora"
	CodeInvalidMinPoints   = "invalid-min-points-to-win"
	CodeInvalidMinHan      = "invalid-min-han"
	CodeInvalidInitPoints  = "invalid-starting-points"
	CodeInvalidOpenTanyao  = "invalid-open-tanyao"
	CodeInvalidLocalYaku   = "invalid-local-yaku"
	CodeInvalidOpenHand    = "invalid-open-hand"
	CodeInvalidTimeAdd     = "invalid-thinking-time-add"
	CodeInvalidTimeFixed   = "invalid-thinking-time-fixed"
	CodeUnexpected         = "unexpected-exception"
)

// ValidationError reports one rule deviation. Message embeds the actual
// and expected values for humans; Data carries the raw actual value for
// machine consumers.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}
