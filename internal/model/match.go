package model

// MatchBlob is the fully resolved form of one fetched game log: the typed
// header plus the decoded round records. It is immutable once built.
type MatchBlob struct {
	Error   *FetchFailure `json:"error,omitempty"`
	Head    *MatchHead    `json:"head,omitempty"`
	Records []RoundRecord `json:"records"`
}

// FetchFailure marks a blob whose log could not be retrieved from the
// remote service. Its presence short-circuits validation.
type FetchFailure struct {
	Code uint32 `json:"code,omitempty"`
}

// MatchHead is the header section of a game log: who played, under which
// configuration, and how it ended.
type MatchHead struct {
	UUID      string      `json:"uuid"`
	StartTime int64       `json:"startTime"`
	EndTime   int64       `json:"endTime"`
	Config    GameConfig  `json:"config"`
	Accounts  []Account   `json:"accounts"`
	Result    MatchResult `json:"result"`
}

// Account identifies one player at the table. Seat 0 is implicit: the
// wire format omits the field for the player at the default seat.
type Account struct {
	AccountID uint32 `json:"accountId"`
	Seat      int    `json:"seat,omitempty"`
	Nickname  string `json:"nickname"`
}

// GameConfig is the configuration block of the match header.
type GameConfig struct {
	Category uint32   `json:"category"`
	Mode     GameMode `json:"mode"`
	Meta     RoomMeta `json:"meta"`
}

// GameMode carries the match mode and its detail rules.
type GameMode struct {
	Mode       uint32      `json:"mode"`
	AI         bool        `json:"ai,omitempty"`
	DetailRule *DetailRule `json:"detailRule,omitempty"`
}

// RoomMeta holds room-level metadata. RoomID is a pointer because the
// whole meta block may be absent for non-room matches.
type RoomMeta struct {
	RoomID *uint32 `json:"roomId,omitempty"`
}

// DetailRule is the scoring/time parameter block subject to rule
// validation. Every field is optional: older schema versions omit fields,
// and the wire format omits defaulted values. Absence is never a rule
// violation.
type DetailRule struct {
	Tips         *bool   `json:"bianjietishi,omitempty"`
	RedDora      *uint32 `json:"doraCount,omitempty"`
	MinPointsWin *uint32 `json:"fandian,omitempty"`
	MinHan       *uint32 `json:"fanfu,omitempty"`
	InitPoint    *uint32 `json:"initPoint,omitempty"`
	OpenTanyao   *uint32 `json:"shiduan,omitempty"`
	LocalYaku    *uint32 `json:"guyiMode,omitempty"`
	OpenHand     *uint32 `json:"openHand,omitempty"`
	TimeAdd      *uint32 `json:"timeAdd,omitempty"`
	TimeFixed    *uint32 `json:"timeFixed,omitempty"`
}

// MatchResult is the header's result block.
type MatchResult struct {
	Players []SeatResult `json:"players"`
}

// SeatResult is one player's final standing. Seat follows the same
// implicit-zero convention as Account.
type SeatResult struct {
	Seat       int `json:"seat,omitempty"`
	FinalPoint int `json:"partPoint1"`
	TotalPoint int `json:"totalPoint,omitempty"`
}
