// Package stats implements the statistics pipeline: the game-log range
// filter engine and the windowed hit-rate aggregator.
package stats

import (
	"math"

	"github.com/yourusername/propsedge/internal/models"
)

// Apply returns the records satisfying every constraint in spec. All
// constraints combine with AND; a record missing a stat under a range
// constraint fails that constraint. The input slice is never mutated and
// record order is preserved.
func Apply(records []models.GameRecord, spec *models.FilterSpec) []models.GameRecord {
	if spec == nil {
		return append([]models.GameRecord(nil), records...)
	}

	out := make([]models.GameRecord, 0, len(records))
	for i := range records {
		if matches(&records[i], spec) {
			out = append(out, records[i])
		}
	}
	return out
}

func matches(rec *models.GameRecord, spec *models.FilterSpec) bool {
	for key, bound := range spec.Ranges {
		if bound == nil {
			continue
		}
		value, ok := rec.Stat(key)
		if !ok || !bound.Contains(value) {
			return false
		}
	}

	if spec.Home != nil && rec.Home != *spec.Home {
		return false
	}
	if spec.Win != nil && rec.Win != *spec.Win {
		return false
	}
	if spec.MarginAtLeast != nil {
		if abs(rec.Margin) < *spec.MarginAtLeast {
			return false
		}
	}
	if spec.RestBucket != nil && !spec.RestBucket.Matches(rec.DaysRest) {
		return false
	}
	if spec.WithoutTeammate != nil && !rec.TeammateOut(*spec.WithoutTeammate) {
		return false
	}
	return true
}

// StatDomain is the observed [min, max] of one stat over a record set
type StatDomain struct {
	Min float64
	Max float64
}

// Domain computes the observed range of a stat over the records. Records
// missing the stat do not contribute; ok is false when no record carries it.
func Domain(records []models.GameRecord, key models.StatKey) (StatDomain, bool) {
	d := StatDomain{Min: math.Inf(1), Max: math.Inf(-1)}
	found := false
	for i := range records {
		value, ok := records[i].Stat(key)
		if !ok {
			continue
		}
		found = true
		d.Min = math.Min(d.Min, value)
		d.Max = math.Max(d.Max, value)
	}
	if !found {
		return StatDomain{}, false
	}
	return d, true
}

// Reclamp adjusts every active range filter to the domains of a new record
// set, returning a new spec. A filter lying entirely outside its stat's new
// domain is cleared so it cannot silently zero out every result; a filter
// partially overlapping is clamped into the domain at both ends. Filters on
// stats no record carries are cleared. Categorical toggles pass through
// untouched.
func Reclamp(spec *models.FilterSpec, records []models.GameRecord) *models.FilterSpec {
	if spec == nil {
		return nil
	}

	out := *spec
	if len(spec.Ranges) > 0 {
		out.Ranges = make(map[models.StatKey]*models.RangeBound, len(spec.Ranges))
		for key, bound := range spec.Ranges {
			if bound == nil {
				continue
			}
			domain, ok := Domain(records, key)
			if !ok {
				continue
			}
			if bound.Max < domain.Min || bound.Min > domain.Max {
				continue
			}
			clamped := models.RangeBound{
				Min: math.Max(bound.Min, domain.Min),
				Max: math.Min(bound.Max, domain.Max),
			}
			out.Ranges[key] = &clamped
		}
	}
	return &out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
