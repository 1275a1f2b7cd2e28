package odds

import (
	"math"

	"github.com/shopspring/decimal"
)

// KellyFraction computes the full-Kelly fraction of bankroll for a bet at
// the given decimal odds and fair win probability:
//
//	f = (d·p − 1) / (d − 1)
//
// The result is clamped to [0, 1]: no edge means no bet, and fractions
// above 1 cannot arise from a valid probability but are clamped anyway.
// Degenerate inputs return 0.
func KellyFraction(bestDecimal, fairProb float64) float64 {
	if bestDecimal <= 1.0 || fairProb <= 0 || fairProb >= 1 {
		return 0
	}

	f := (bestDecimal*fairProb - 1.0) / (bestDecimal - 1.0)

	f = math.Max(0, f)
	f = math.Min(f, 1.0)
	return f
}

// StakeParams carries the user's staking policy
type StakeParams struct {
	// Bankroll is the total bankroll in currency units
	Bankroll decimal.Decimal
	// KellyPercent scales full Kelly (25 = quarter Kelly)
	KellyPercent float64
	// MaxStake caps the recommended stake when positive
	MaxStake decimal.Decimal
}

// Stake converts a fair probability and best price into a recommended
// stake, rounded to cents. Any degenerate input yields a zero stake.
func Stake(bestDecimal, fairProb float64, params StakeParams) (float64, decimal.Decimal) {
	full := KellyFraction(bestDecimal, fairProb)
	if full == 0 || params.KellyPercent <= 0 || params.Bankroll.Sign() <= 0 {
		return full, decimal.Zero
	}

	scaled := full * params.KellyPercent / 100.0
	stake := params.Bankroll.Mul(decimal.NewFromFloat(scaled)).Round(2)

	if params.MaxStake.Sign() > 0 && stake.GreaterThan(params.MaxStake) {
		stake = params.MaxStake
	}
	return full, stake
}
