package odds

import (
	"github.com/yourusername/propsedge/internal/models"
)

// DefaultAssumedOverround is the typical two-way market overround assumed
// when only one side of a market was observed. A -110/-110 market carries
// roughly 4.5% of juice.
const DefaultAssumedOverround = 0.045

// FairPrice is the output of a de-vig computation: the no-vig probability
// for the quoted side plus its American-odds encoding, tagged with how it
// was derived. Prob and Price are nil when Method is DevigNone.
type FairPrice struct {
	Prob   *float64
	Price  *int
	Method models.DevigMethod
}

// DevigTwoSided removes the overround from a two-way market
// multiplicatively and returns the fair price for side 1. When the quoted
// probabilities sum to less than 1 the market is internally inconsistent
// (a feed error, or a stale side) and no fair price is produced.
func DevigTwoSided(decimal1, decimal2 float64) FairPrice {
	p1, err := DecimalToImplied(decimal1)
	if err != nil {
		return FairPrice{Method: models.DevigNone}
	}
	p2, err := DecimalToImplied(decimal2)
	if err != nil {
		return FairPrice{Method: models.DevigNone}
	}

	overround := p1 + p2 - 1.0
	if overround < 0 {
		return FairPrice{Method: models.DevigNone}
	}

	fair := p1 / (p1 + p2)
	return fairPriceFrom(fair, models.DevigProper)
}

// DevigOneSided estimates a fair probability when only one side's price is
// known, by assuming the market carries assumedOverround of juice spread
// symmetrically across both sides: the quoted side gives up half.
func DevigOneSided(decimal1, assumedOverround float64) FairPrice {
	p1, err := DecimalToImplied(decimal1)
	if err != nil {
		return FairPrice{Method: models.DevigNone}
	}
	if assumedOverround < 0 {
		return FairPrice{Method: models.DevigNone}
	}

	fair := p1 - assumedOverround/2.0
	if fair <= 0 || fair >= 1 {
		return FairPrice{Method: models.DevigNone}
	}
	return fairPriceFrom(fair, models.DevigEstimated)
}

// Overround returns the margin built into a two-way market: the amount by
// which the implied probabilities sum past 1
func Overround(decimal1, decimal2 float64) (float64, error) {
	p1, err := DecimalToImplied(decimal1)
	if err != nil {
		return 0, err
	}
	p2, err := DecimalToImplied(decimal2)
	if err != nil {
		return 0, err
	}
	return p1 + p2 - 1.0, nil
}

func fairPriceFrom(prob float64, method models.DevigMethod) FairPrice {
	price, err := ProbabilityToAmerican(prob)
	if err != nil {
		return FairPrice{Method: models.DevigNone}
	}
	return FairPrice{Prob: &prob, Price: &price, Method: method}
}
