package analysis

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/propsedge/internal/logger"
	"github.com/yourusername/propsedge/internal/models"
)

func gameLog(n int) []models.GameRecord {
	records := make([]models.GameRecord, n)
	for i := range records {
		pts := float64(20 + i%8)
		mins := float64(30 + i%6)
		records[i] = models.GameRecord{
			Date:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -2*i),
			Opponent: fmt.Sprintf("TEAM%d", i%5),
			Home:     i%2 == 0,
			Win:      i%3 != 0,
			Margin:   5,
			DaysRest: 1 + i%3,
			Points:   &pts,
			Minutes:  &mins,
		}
	}
	return records
}

func TestComputeStandardWindows(t *testing.T) {
	rater := NewHitRater(testConfig(), logger.NewLogger("error"))

	result := rater.Compute(HitRateRequest{
		Version: "v1",
		Records: gameLog(30),
		Stat:    models.StatPoints,
		Line:    22.5,
	})

	require.Len(t, result.Windows, 4)
	assert.Equal(t, models.WindowLast5, result.Windows[0].Window)
	assert.Equal(t, models.WindowSeason, result.Windows[3].Window)
	assert.Equal(t, 30, result.Windows[3].Total)
	assert.Len(t, result.Filtered, 30)
}

func TestComputeHeadToHeadWindow(t *testing.T) {
	rater := NewHitRater(testConfig(), logger.NewLogger("error"))

	result := rater.Compute(HitRateRequest{
		Version:  "v1",
		Records:  gameLog(30),
		Stat:     models.StatPoints,
		Line:     22.5,
		Opponent: "team2",
	})

	require.Len(t, result.Windows, 5)
	h2h := result.Windows[4]
	assert.Equal(t, models.WindowHeadToHead, h2h.Window)
	assert.Equal(t, 6, h2h.Total, "opponent match ignores case")
}

func TestComputeAppliesFilter(t *testing.T) {
	rater := NewHitRater(testConfig(), logger.NewLogger("error"))

	spec := &models.FilterSpec{}
	spec.SetRange(models.StatMinutes, &models.RangeBound{Min: 33, Max: 40})

	result := rater.Compute(HitRateRequest{
		Version: "v1",
		Records: gameLog(30),
		Spec:    spec,
		Stat:    models.StatPoints,
		Line:    22.5,
	})

	require.NotEmpty(t, result.Filtered)
	assert.Less(t, len(result.Filtered), 30)
	for _, rec := range result.Filtered {
		require.NotNil(t, rec.Minutes)
		assert.GreaterOrEqual(t, *rec.Minutes, 33.0)
	}
	// Windows reflect the filtered log, not the full one
	assert.Equal(t, len(result.Filtered), result.Windows[3].Total)
}

func TestComputeMemoized(t *testing.T) {
	rater := NewHitRater(testConfig(), logger.NewLogger("error"))
	req := HitRateRequest{
		Version: "v1",
		Records: gameLog(30),
		Stat:    models.StatPoints,
		Line:    22.5,
	}

	first := rater.Compute(req)
	second := rater.Compute(req)
	assert.Equal(t, first, second)

	// A different line is a different computation
	req.Line = 25.5
	third := rater.Compute(req)
	assert.NotEqual(t, first.Windows, third.Windows)
}

func TestMemoDisabledByZeroTTL(t *testing.T) {
	memo := NewMemo(0)
	key := memo.Key("v1", nil, models.StatPoints, 22.5, "")
	memo.Set(key, []models.HitRateWindow{{Window: models.WindowLast5}})

	_, found := memo.Get(key)
	assert.False(t, found)
}

func TestMemoKeyDistinguishesInputs(t *testing.T) {
	memo := NewMemo(time.Minute)
	spec := &models.FilterSpec{}
	spec.SetRange(models.StatMinutes, &models.RangeBound{Min: 30, Max: 40})

	base := memo.Key("v1", spec, models.StatPoints, 22.5, "")
	assert.Equal(t, base, memo.Key("v1", spec, models.StatPoints, 22.5, ""))
	assert.NotEqual(t, base, memo.Key("v2", spec, models.StatPoints, 22.5, ""))
	assert.NotEqual(t, base, memo.Key("v1", nil, models.StatPoints, 22.5, ""))
	assert.NotEqual(t, base, memo.Key("v1", spec, models.StatRebounds, 22.5, ""))
	assert.NotEqual(t, base, memo.Key("v1", spec, models.StatPoints, 23.5, ""))
	assert.NotEqual(t, base, memo.Key("v1", spec, models.StatPoints, 22.5, "LAL"))
}

func TestOnRecordsChangedReclamps(t *testing.T) {
	rater := NewHitRater(testConfig(), logger.NewLogger("error"))
	records := gameLog(30)

	// Minutes in the log span [30, 35]; the stale filter reaches past both
	spec := &models.FilterSpec{}
	spec.SetRange(models.StatMinutes, &models.RangeBound{Min: 25, Max: 50})

	clamped := rater.OnRecordsChanged(spec, records)
	require.NotNil(t, clamped)
	bound := clamped.Ranges[models.StatMinutes]
	require.NotNil(t, bound)
	assert.Equal(t, 30.0, bound.Min)
	assert.Equal(t, 35.0, bound.Max)
}

func TestOnRecordsChangedClearsDisjointFilter(t *testing.T) {
	rater := NewHitRater(testConfig(), logger.NewLogger("error"))

	spec := &models.FilterSpec{}
	spec.SetRange(models.StatMinutes, &models.RangeBound{Min: 50, Max: 60})

	clamped := rater.OnRecordsChanged(spec, gameLog(30))
	require.NotNil(t, clamped)
	assert.Nil(t, clamped.Ranges[models.StatMinutes])
}
