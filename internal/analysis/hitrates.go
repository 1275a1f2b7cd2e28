package analysis

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/propsedge/internal/config"
	"github.com/yourusername/propsedge/internal/metrics"
	"github.com/yourusername/propsedge/internal/models"
	"github.com/yourusername/propsedge/internal/stats"
)

// HitRateRequest describes one hit-rate computation over a player's game
// log. Records must be ordered newest-first, as the stats feed delivers
// them. Version identifies the snapshot for memoization.
type HitRateRequest struct {
	Version  string
	Records  []models.GameRecord
	Spec     *models.FilterSpec
	Stat     models.StatKey
	Line     float64
	Opponent string
}

// HitRateResult bundles the filtered log with its window set so the
// presentation layer renders both from one computation
type HitRateResult struct {
	Filtered []models.GameRecord    `json:"filtered"`
	Windows  []models.HitRateWindow `json:"windows"`
}

// HitRater runs the statistics pipeline: filter, then windowed hit rates
type HitRater struct {
	memo   *Memo
	logger *logrus.Logger
}

// NewHitRater creates a hit-rate orchestrator
func NewHitRater(cfg *config.Config, logger *logrus.Logger) *HitRater {
	return &HitRater{
		memo:   NewMemo(time.Duration(cfg.HitRates.MemoTTLSeconds) * time.Second),
		logger: logger,
	}
}

// Compute filters the game log and computes the standard window set, plus
// the head-to-head window when an opponent is named. Identical requests
// yield identical results; the memo table only skips the recompute.
func (h *HitRater) Compute(req HitRateRequest) HitRateResult {
	start := time.Now()

	key := h.memo.Key(req.Version, req.Spec, req.Stat, req.Line, req.Opponent)
	filtered := stats.Apply(req.Records, req.Spec)
	metrics.RecordFilterDuration(time.Since(start).Seconds())

	if windows, ok := h.memo.Get(key); ok {
		return HitRateResult{Filtered: filtered, Windows: windows}
	}

	windows := stats.StandardWindows(filtered, req.Stat, req.Line)
	if req.Opponent != "" {
		windows = append(windows, stats.HitRate(filtered, req.Stat, req.Line, models.WindowHeadToHead, req.Opponent))
	}
	for range windows {
		metrics.RecordHitRate()
	}
	h.memo.Set(key, windows)

	h.logger.WithFields(logrus.Fields{
		"stat":     req.Stat,
		"line":     req.Line,
		"games":    len(filtered),
		"windows":  len(windows),
		"duration": time.Since(start),
	}).Debug("Computed hit-rate windows")

	return HitRateResult{Filtered: filtered, Windows: windows}
}

// OnRecordsChanged reclamps a session's filter spec against a fresh record
// set, per the domain reclamping rules, and invalidates the memo table.
// Call it whenever the underlying game log changes (player switch, feed
// refresh).
func (h *HitRater) OnRecordsChanged(spec *models.FilterSpec, records []models.GameRecord) *models.FilterSpec {
	metrics.RecordReclamp()
	h.memo.Flush()
	return stats.Reclamp(spec, records)
}
