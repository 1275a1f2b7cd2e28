package odds

import (
	"fmt"

	"github.com/yourusername/propsedge/internal/models"
)

// ReferenceMode selects what the best price is compared against when
// computing edge
type ReferenceMode string

const (
	// RefBook compares against a single named book's price
	RefBook ReferenceMode = "book"
	// RefSecondBest compares against the next-best price on the board
	RefSecondBest ReferenceMode = "second_best"
	// RefSharpMean compares against the arithmetic mean decimal price
	// across the configured sharp books
	RefSharpMean ReferenceMode = "sharp_mean"
	// RefModel compares against a caller-supplied model price
	RefModel ReferenceMode = "model"
)

// ReferenceSpec names the comparison for EdgePct. BookID applies to
// RefBook, SharpBooks to RefSharpMean, ModelDecimal to RefModel.
type ReferenceSpec struct {
	Mode         ReferenceMode
	BookID       string
	SharpBooks   []string
	ModelDecimal float64
}

// ReferenceDecimal resolves the reference price for a market side under
// the given spec. Returns an error when the reference cannot be resolved
// (book absent, no second price, empty sharp set).
func ReferenceDecimal(side *models.MarketSide, sel *Selector, spec ReferenceSpec) (float64, error) {
	switch spec.Mode {
	case RefBook:
		want := CanonicalBookID(spec.BookID)
		if q := findBook(side.Quotes, want); q != nil {
			return q.DecimalOdds, nil
		}
		return 0, fmt.Errorf("reference book %q did not quote this market", spec.BookID)

	case RefSecondBest:
		second, ok := sel.SecondBest(side)
		if !ok {
			return 0, fmt.Errorf("no second price available")
		}
		return second, nil

	case RefSharpMean:
		var total float64
		var count int
		for _, id := range spec.SharpBooks {
			if q := findBook(side.Quotes, CanonicalBookID(id)); q != nil {
				total += q.DecimalOdds
				count++
			}
		}
		if count == 0 {
			return 0, fmt.Errorf("no sharp book quoted this market")
		}
		return total / float64(count), nil

	case RefModel:
		if spec.ModelDecimal <= 1.0 {
			return 0, fmt.Errorf("invalid model decimal odds %.4f", spec.ModelDecimal)
		}
		return spec.ModelDecimal, nil
	}

	return 0, fmt.Errorf("unknown reference mode %q", spec.Mode)
}

// EdgePct computes the percentage price advantage of the best price over
// the reference price
func EdgePct(bestDecimal, referenceDecimal float64) (float64, error) {
	if bestDecimal <= 1.0 || referenceDecimal <= 1.0 {
		return 0, fmt.Errorf("decimal odds must exceed 1.0 (best %.4f, reference %.4f)", bestDecimal, referenceDecimal)
	}
	return (bestDecimal/referenceDecimal - 1.0) * 100.0, nil
}

// EVPct computes the expected value percentage of taking the best price at
// the fair probability
func EVPct(fairProb, bestDecimal float64) (float64, error) {
	if fairProb <= 0 || fairProb >= 1 {
		return 0, fmt.Errorf("fair probability %.4f must be in (0, 1)", fairProb)
	}
	if bestDecimal <= 1.0 {
		return 0, fmt.Errorf("decimal odds %.4f must exceed 1.0", bestDecimal)
	}
	return (fairProb*bestDecimal - 1.0) * 100.0, nil
}

// GradeThresholds maps minimum EV% to qualitative grades. Values are a
// policy input; Validate enforces the A > B > C ordering.
type GradeThresholds struct {
	A float64 `mapstructure:"a" json:"a"`
	B float64 `mapstructure:"b" json:"b"`
	C float64 `mapstructure:"c" json:"c"`
}

// Validate checks that the tiers are strictly ordered
func (t GradeThresholds) Validate() error {
	if t.A <= t.B || t.B <= t.C {
		return fmt.Errorf("grade thresholds must be strictly decreasing: A %.2f, B %.2f, C %.2f", t.A, t.B, t.C)
	}
	return nil
}

// GradeFor buckets an EV percentage into a tier. Anything below the C
// threshold grades D.
func (t GradeThresholds) GradeFor(evPct float64) models.Grade {
	switch {
	case evPct >= t.A:
		return models.GradeA
	case evPct >= t.B:
		return models.GradeB
	case evPct >= t.C:
		return models.GradeC
	}
	return models.GradeD
}
