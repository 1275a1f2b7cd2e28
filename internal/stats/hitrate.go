package stats

import (
	"math"
	"strings"

	"github.com/yourusername/propsedge/internal/models"
)

// HitRate computes the hit count and percentage of a stat clearing a line
// over one window of a newest-first game log. Records missing the stat
// count as misses but stay in the window total. Pure in
// (records, stat, line, window): the input slice is never mutated.
func HitRate(records []models.GameRecord, stat models.StatKey, line float64, window models.WindowKind, opponent string) models.HitRateWindow {
	windowed := windowRecords(records, window, opponent)

	hits := 0
	for i := range windowed {
		value, ok := windowed[i].Stat(stat)
		if ok && value >= line {
			hits++
		}
	}

	result := models.HitRateWindow{
		Window: window,
		Stat:   stat,
		Line:   line,
		Hits:   hits,
		Total:  len(windowed),
	}
	if result.Total > 0 {
		pct := math.Round(100.0 * float64(hits) / float64(result.Total))
		result.Pct = &pct
	}
	return result
}

// StandardWindows computes the fixed dashboard window set (last 5/10/20
// and season) for one stat and line
func StandardWindows(records []models.GameRecord, stat models.StatKey, line float64) []models.HitRateWindow {
	kinds := []models.WindowKind{
		models.WindowLast5,
		models.WindowLast10,
		models.WindowLast20,
		models.WindowSeason,
	}
	out := make([]models.HitRateWindow, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, HitRate(records, stat, line, kind, ""))
	}
	return out
}

// windowRecords slices a newest-first log down to the requested window.
// Head-to-head filters to games against the opponent before taking all of
// that subset; fixed windows take the first N records.
func windowRecords(records []models.GameRecord, window models.WindowKind, opponent string) []models.GameRecord {
	if window == models.WindowHeadToHead {
		matched := make([]models.GameRecord, 0, len(records))
		for i := range records {
			if strings.EqualFold(records[i].Opponent, opponent) {
				matched = append(matched, records[i])
			}
		}
		return matched
	}

	if n := window.Size(); n > 0 && len(records) > n {
		return records[:n]
	}
	return records
}
