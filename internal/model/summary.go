package model

// PlayerRank is one player's final standing after joining the header's
// result block to its account list.
type PlayerRank struct {
	ID         uint32 `json:"id"`
	Seat       int    `json:"seat"`
	Nickname   string `json:"nickname"`
	FinalPoint int    `json:"finalPoint"`
	Rank       int    `json:"rank"`
}

// NotedYaku links a notable hand pattern to the player who completed it.
type NotedYaku struct {
	Yaku   string     `json:"yaku"`
	Player PlayerRank `json:"player"`
}

// Summary is the success payload of the pipeline.
type Summary struct {
	Result     string       `json:"result"`
	UUID       string       `json:"uuid"`
	RoomID     uint32       `json:"roomId"`
	StartTime  int64        `json:"startTime"`
	EndTime    int64        `json:"endTime"`
	Ranks      []PlayerRank `json:"ranks"`
	NotedYakus []NotedYaku  `json:"noted_yakus"`
}

// ErrorResponse is the failure payload of the pipeline. Data carries the
// blob as received, for diagnosis.
type ErrorResponse struct {
	Result  string            `json:"result"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors"`
	Data    *MatchBlob        `json:"data"`
}
