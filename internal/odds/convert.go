// Package odds implements the pricing pipeline: quote normalization, best
// price selection, de-vig, edge/EV and Kelly stake sizing.
package odds

import (
	"fmt"
	"math"
)

// AmericanToDecimal converts American odds to decimal odds.
// +150 → 2.50, -150 → 1.667
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("invalid American odds: cannot be 0")
	}
	if american > 0 {
		return (float64(american) / 100.0) + 1.0, nil
	}
	return (100.0 / float64(-american)) + 1.0, nil
}

// DecimalToAmerican converts decimal odds back to American odds, rounding
// to the nearest integer with ties away from zero so the American→decimal→
// American round trip returns the original price.
func DecimalToAmerican(dec float64) (int, error) {
	if dec <= 1.0 {
		return 0, fmt.Errorf("invalid decimal odds %.4f: must be > 1.0", dec)
	}
	if dec >= 2.0 {
		return int(math.Round((dec - 1.0) * 100.0)), nil
	}
	return int(math.Round(-100.0 / (dec - 1.0))), nil
}

// DecimalToImplied converts decimal odds to implied probability
func DecimalToImplied(dec float64) (float64, error) {
	if dec <= 1.0 {
		return 0, fmt.Errorf("invalid decimal odds %.4f: must be > 1.0", dec)
	}
	return 1.0 / dec, nil
}

// ProbabilityToDecimal converts a probability to decimal odds
func ProbabilityToDecimal(prob float64) (float64, error) {
	if prob <= 0 || prob >= 1 {
		return 0, fmt.Errorf("invalid probability %.4f: must be in (0, 1)", prob)
	}
	return 1.0 / prob, nil
}

// ProbabilityToAmerican converts a probability to the American odds that
// imply it exactly
func ProbabilityToAmerican(prob float64) (int, error) {
	dec, err := ProbabilityToDecimal(prob)
	if err != nil {
		return 0, err
	}
	return DecimalToAmerican(dec)
}

// AmericanToImplied converts American odds directly to implied probability
func AmericanToImplied(american int) (float64, error) {
	dec, err := AmericanToDecimal(american)
	if err != nil {
		return 0, err
	}
	return DecimalToImplied(dec)
}
