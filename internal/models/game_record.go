package models

import (
	"time"

	"github.com/google/uuid"
)

// StatKey identifies a numeric stat on a GameRecord
type StatKey string

const (
	StatMinutes   StatKey = "minutes"
	StatUsagePct  StatKey = "usage_pct"
	StatPoints    StatKey = "points"
	StatRebounds  StatKey = "rebounds"
	StatAssists   StatKey = "assists"
	StatSteals    StatKey = "steals"
	StatBlocks    StatKey = "blocks"
	StatTurnovers StatKey = "turnovers"
	StatFGM       StatKey = "fgm"
	StatFGA       StatKey = "fga"
	StatFGPct     StatKey = "fg_pct"
	StatThreePM   StatKey = "three_pm"
	StatThreePA   StatKey = "three_pa"
	StatThreePct  StatKey = "three_pct"
	StatFTM       StatKey = "ftm"
	StatFTA       StatKey = "fta"
	StatFTPct     StatKey = "ft_pct"
	StatPlusMinus StatKey = "plus_minus"

	// Combined prop markets, derived from the component stats
	StatPointsRebounds        StatKey = "pts_reb"
	StatPointsAssists         StatKey = "pts_ast"
	StatReboundsAssists       StatKey = "reb_ast"
	StatPointsReboundsAssists StatKey = "pts_reb_ast"
	StatStealsBlocks          StatKey = "stl_blk"
)

// GameRecord is one historical game for one player, as delivered by the
// external stats feed. Stat fields are pointers because a feed row may omit
// stats the player did not accrue tracking for; records are immutable once
// produced.
type GameRecord struct {
	GameID       uuid.UUID `json:"game_id"`
	PlayerID     uuid.UUID `json:"player_id"`
	Date         time.Time `json:"date"`
	Opponent     string    `json:"opponent"`
	Home         bool      `json:"home"`
	Win          bool      `json:"win"`
	Margin       int       `json:"margin"`
	DaysRest     int       `json:"days_rest"`
	TeammatesOut []string  `json:"teammates_out,omitempty"`

	Minutes   *float64 `json:"minutes,omitempty"`
	UsagePct  *float64 `json:"usage_pct,omitempty"`
	Points    *float64 `json:"points,omitempty"`
	Rebounds  *float64 `json:"rebounds,omitempty"`
	Assists   *float64 `json:"assists,omitempty"`
	Steals    *float64 `json:"steals,omitempty"`
	Blocks    *float64 `json:"blocks,omitempty"`
	Turnovers *float64 `json:"turnovers,omitempty"`
	FGM       *float64 `json:"fgm,omitempty"`
	FGA       *float64 `json:"fga,omitempty"`
	FGPct     *float64 `json:"fg_pct,omitempty"`
	ThreePM   *float64 `json:"three_pm,omitempty"`
	ThreePA   *float64 `json:"three_pa,omitempty"`
	ThreePct  *float64 `json:"three_pct,omitempty"`
	FTM       *float64 `json:"ftm,omitempty"`
	FTA       *float64 `json:"fta,omitempty"`
	FTPct     *float64 `json:"ft_pct,omitempty"`
	PlusMinus *float64 `json:"plus_minus,omitempty"`
}

// Stat returns the value of the given stat and whether the record carries it.
// Combined keys require every component to be present.
func (g *GameRecord) Stat(key StatKey) (float64, bool) {
	switch key {
	case StatMinutes:
		return deref(g.Minutes)
	case StatUsagePct:
		return deref(g.UsagePct)
	case StatPoints:
		return deref(g.Points)
	case StatRebounds:
		return deref(g.Rebounds)
	case StatAssists:
		return deref(g.Assists)
	case StatSteals:
		return deref(g.Steals)
	case StatBlocks:
		return deref(g.Blocks)
	case StatTurnovers:
		return deref(g.Turnovers)
	case StatFGM:
		return deref(g.FGM)
	case StatFGA:
		return deref(g.FGA)
	case StatFGPct:
		return deref(g.FGPct)
	case StatThreePM:
		return deref(g.ThreePM)
	case StatThreePA:
		return deref(g.ThreePA)
	case StatThreePct:
		return deref(g.ThreePct)
	case StatFTM:
		return deref(g.FTM)
	case StatFTA:
		return deref(g.FTA)
	case StatFTPct:
		return deref(g.FTPct)
	case StatPlusMinus:
		return deref(g.PlusMinus)
	case StatPointsRebounds:
		return sum(g.Points, g.Rebounds)
	case StatPointsAssists:
		return sum(g.Points, g.Assists)
	case StatReboundsAssists:
		return sum(g.Rebounds, g.Assists)
	case StatPointsReboundsAssists:
		return sum(g.Points, g.Rebounds, g.Assists)
	case StatStealsBlocks:
		return sum(g.Steals, g.Blocks)
	}
	return 0, false
}

// TeammateOut reports whether the named teammate was inactive for this game
func (g *GameRecord) TeammateOut(name string) bool {
	for _, t := range g.TeammatesOut {
		if t == name {
			return true
		}
	}
	return false
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

func sum(parts ...*float64) (float64, bool) {
	total := 0.0
	for _, p := range parts {
		if p == nil {
			return 0, false
		}
		total += *p
	}
	return total, true
}
