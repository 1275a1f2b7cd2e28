package models

import "fmt"

// RangeBound is an inclusive numeric range constraint on one stat
type RangeBound struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Validate checks the min/max ordering invariant
func (r RangeBound) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("invalid range: min %.2f > max %.2f", r.Min, r.Max)
	}
	return nil
}

// Contains reports whether v lies inside the inclusive range
func (r RangeBound) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// RestBucket buckets days of rest before a game
type RestBucket string

const (
	RestBackToBack RestBucket = "b2b"     // 0 days rest
	RestOneDay     RestBucket = "one_day" // exactly 1 day
	RestTwoPlus    RestBucket = "two_plus"
)

// Matches reports whether the given days-rest count falls in the bucket
func (b RestBucket) Matches(daysRest int) bool {
	switch b {
	case RestBackToBack:
		return daysRest == 0
	case RestOneDay:
		return daysRest == 1
	case RestTwoPlus:
		return daysRest >= 2
	}
	return false
}

// FilterSpec is the user-session filter state applied to a player's game log.
// A nil range means no constraint on that stat; categorical toggles are
// active when true. Home/Away and Win/Loss are mutually exclusive pairs,
// enforced by the toggle setters rather than by construction.
type FilterSpec struct {
	Ranges map[StatKey]*RangeBound `json:"ranges,omitempty"`

	Home *bool `json:"home,omitempty"`
	Win  *bool `json:"win,omitempty"`

	// MarginAtLeast keeps only games decided by at least this many points
	// (absolute margin)
	MarginAtLeast *int `json:"margin_at_least,omitempty"`

	RestBucket *RestBucket `json:"rest_bucket,omitempty"`

	// WithoutTeammate keeps only games the named teammate sat out
	WithoutTeammate *string `json:"without_teammate,omitempty"`
}

// Validate checks every non-nil range's ordering invariant
func (f *FilterSpec) Validate() error {
	for key, r := range f.Ranges {
		if r == nil {
			continue
		}
		if err := r.Validate(); err != nil {
			return fmt.Errorf("filter %q: %w", key, err)
		}
	}
	return nil
}

// SetRange sets or clears (bound == nil) the range constraint for a stat
func (f *FilterSpec) SetRange(key StatKey, bound *RangeBound) {
	if f.Ranges == nil {
		f.Ranges = make(map[StatKey]*RangeBound)
	}
	if bound == nil {
		delete(f.Ranges, key)
		return
	}
	f.Ranges[key] = bound
}

// SetHomeAway activates the home or away toggle; the two are one mutually
// exclusive pair so activating either clears the other.
func (f *FilterSpec) SetHomeAway(home bool) {
	f.Home = &home
}

// ClearHomeAway deactivates the home/away pair
func (f *FilterSpec) ClearHomeAway() {
	f.Home = nil
}

// SetWinLoss activates the win or loss toggle, clearing its pair partner
func (f *FilterSpec) SetWinLoss(win bool) {
	f.Win = &win
}

// ClearWinLoss deactivates the win/loss pair
func (f *FilterSpec) ClearWinLoss() {
	f.Win = nil
}

// ActiveRangeKeys returns the stat keys with a non-nil range constraint
func (f *FilterSpec) ActiveRangeKeys() []StatKey {
	keys := make([]StatKey, 0, len(f.Ranges))
	for key, r := range f.Ranges {
		if r != nil {
			keys = append(keys, key)
		}
	}
	return keys
}
