package models

// WindowKind selects which slice of a game log a hit rate is computed over
type WindowKind string

const (
	WindowLast5      WindowKind = "last_5"
	WindowLast10     WindowKind = "last_10"
	WindowLast20     WindowKind = "last_20"
	WindowSeason     WindowKind = "season"
	WindowHeadToHead WindowKind = "head_to_head"
)

// Size returns the fixed window length, or 0 for season/head-to-head
// windows which take every matching record
func (w WindowKind) Size() int {
	switch w {
	case WindowLast5:
		return 5
	case WindowLast10:
		return 10
	case WindowLast20:
		return 20
	}
	return 0
}

// HitRateWindow is the result of one hit-rate computation. Pct is nil, not
// zero, when the window contained no games.
type HitRateWindow struct {
	Window WindowKind `json:"window"`
	Stat   StatKey    `json:"stat"`
	Line   float64    `json:"line"`
	Hits   int        `json:"hits"`
	Total  int        `json:"total"`
	Pct    *float64   `json:"pct"`
}
