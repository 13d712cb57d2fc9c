package model

// RoundRecord is the decoded form of one round-outcome envelope.
type RoundRecord struct {
	Name  string       `json:"name"`
	Hules []HandResult `json:"hules"`
}

// HandResult is one completed hand inside a round outcome. Seat follows
// the implicit-zero convention of the header.
type HandResult struct {
	Seat  int        `json:"seat,omitempty"`
	Zimo  bool       `json:"zimo,omitempty"`
	Count int        `json:"count"`
	Fans  []FanEntry `json:"fans"`
	Fu    int        `json:"fu,omitempty"`
}

// FanEntry is one scored hand pattern: the numeric pattern code and how
// many times it applied.
type FanEntry struct {
	ID  uint32 `json:"id"`
	Val uint32 `json:"val"`
}
