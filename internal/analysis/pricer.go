// Package analysis orchestrates the two computation pipelines: raw quote
// feeds into priced Opportunities, and filtered game logs into hit-rate
// windows.
package analysis

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/propsedge/internal/config"
	"github.com/yourusername/propsedge/internal/metrics"
	"github.com/yourusername/propsedge/internal/models"
	"github.com/yourusername/propsedge/internal/odds"
)

// MarketQuotes is one market's raw feed payload: rows for the side being
// priced and, when the feed delivered it, rows for the opposite side.
type MarketQuotes struct {
	EventID  uuid.UUID       `json:"event_id"`
	Side     models.SideKind `json:"side"`
	Line     float64         `json:"line"`
	Quotes   []odds.RawQuote `json:"quotes"`
	Opposite []odds.RawQuote `json:"opposite,omitempty"`

	// ModelDecimal carries the caller's blended model price, used only
	// under the "model" reference mode
	ModelDecimal float64 `json:"model_decimal,omitempty"`
}

// Pricer assembles Opportunities from raw quote feeds
type Pricer struct {
	pricing  config.PricingConfig
	staking  config.StakingConfig
	ledger   *odds.Ledger
	selector *odds.Selector
	grades   odds.GradeThresholds
	logger   *logrus.Logger
}

// NewPricer creates a pricer from the loaded configuration
func NewPricer(cfg *config.Config, logger *logrus.Logger) *Pricer {
	return &Pricer{
		pricing: cfg.Pricing,
		staking: cfg.Staking,
		ledger:  odds.NewLedger(logger),
		selector: odds.NewSelector(
			odds.WithExcludedBooks(cfg.Pricing.ExcludedBooks),
			odds.WithPriorityBooks(cfg.Pricing.PriorityBooks),
			odds.WithSharpBook(cfg.Pricing.SharpBook),
		),
		grades: odds.GradeThresholds{
			A: cfg.Pricing.GradeThresholds.A,
			B: cfg.Pricing.GradeThresholds.B,
			C: cfg.Pricing.GradeThresholds.C,
		},
		logger: logger,
	}
}

// Price computes the Opportunity for one market side. Markets where no
// eligible quote survives ingestion return (nil, false). Every derived
// field that could not be computed stays nil rather than failing the whole
// opportunity: a market with no usable reference still shows its best
// price.
func (p *Pricer) Price(market MarketQuotes) (*models.Opportunity, bool) {
	start := time.Now()

	quotes, dropped := p.ledger.Normalize(market.Quotes)
	oppQuotes, oppDropped := p.ledger.Normalize(market.Opposite)
	metrics.RecordQuotes(len(quotes)+len(oppQuotes), dropped+oppDropped)

	side := &models.MarketSide{
		EventID: market.EventID,
		Side:    market.Side,
		Line:    market.Line,
		Quotes:  quotes,
	}
	opposite := &models.MarketSide{
		EventID: market.EventID,
		Side:    market.Side.Opposite(),
		Line:    market.Line,
		Quotes:  oppQuotes,
	}

	best := p.selector.Best(side)
	if len(best) == 0 {
		p.logger.WithFields(logrus.Fields{
			"event": market.EventID,
			"side":  market.Side,
		}).Debug("No eligible quotes for market side")
		return nil, false
	}

	opp := &models.Opportunity{
		EventID:     market.EventID,
		Side:        market.Side,
		Line:        market.Line,
		BestPrice:   best[0].Price,
		BestDecimal: best[0].DecimalOdds,
		DevigMethod: models.DevigNone,
		Stake:       decimal.Zero,
	}
	for _, q := range best {
		opp.BestBookIDs = append(opp.BestBookIDs, q.BookID)
	}

	fair := p.devig(side, opposite)
	opp.DevigMethod = fair.Method
	opp.FairProb = fair.Prob
	opp.FairPrice = fair.Price

	if ref, err := odds.ReferenceDecimal(side, p.selector, p.referenceSpec(market.ModelDecimal)); err == nil {
		opp.ReferenceDecimal = &ref
		if edge, err := odds.EdgePct(opp.BestDecimal, ref); err == nil {
			opp.EdgePct = &edge
		}
	}

	if fair.Prob != nil {
		if ev, err := odds.EVPct(*fair.Prob, opp.BestDecimal); err == nil {
			opp.EVPct = &ev
			opp.Grade = p.grades.GradeFor(ev)
		}
		opp.KellyFraction, opp.Stake = odds.Stake(opp.BestDecimal, *fair.Prob, odds.StakeParams{
			Bankroll:     decimal.NewFromFloat(p.staking.Bankroll),
			KellyPercent: p.staking.KellyPercent,
			MaxStake:     decimal.NewFromFloat(p.staking.MaxStake),
		})
	}

	metrics.RecordOpportunity(string(opp.DevigMethod), time.Since(start).Seconds())
	return opp, true
}

// TopQuotes returns the display ranking for one market side's raw rows
func (p *Pricer) TopQuotes(market MarketQuotes) []models.Quote {
	quotes, dropped := p.ledger.Normalize(market.Quotes)
	metrics.RecordQuotes(len(quotes), dropped)
	side := &models.MarketSide{
		EventID: market.EventID,
		Side:    market.Side,
		Line:    market.Line,
		Quotes:  quotes,
	}
	return p.selector.TopN(side, p.pricing.TopN)
}

// devig derives the fair price for side, preferring the sharp book's own
// two-sided quote, then the best price on each side, then a one-sided
// estimate off this side's best price.
func (p *Pricer) devig(side, opposite *models.MarketSide) odds.FairPrice {
	sharp := p.pricing.SharpBook
	sharpHere := quoteByCanonical(side, sharp)
	sharpThere := quoteByCanonical(opposite, sharp)
	if sharpHere != nil && sharpThere != nil {
		if fair := odds.DevigTwoSided(sharpHere.DecimalOdds, sharpThere.DecimalOdds); fair.Method == models.DevigProper {
			return fair
		}
	}

	best := p.selector.Best(side)
	oppBest := p.selector.Best(opposite)
	if len(best) > 0 && len(oppBest) > 0 {
		if fair := odds.DevigTwoSided(best[0].DecimalOdds, oppBest[0].DecimalOdds); fair.Method == models.DevigProper {
			return fair
		}
		// Both sides observed but internally inconsistent
		return odds.FairPrice{Method: models.DevigNone}
	}

	if len(best) > 0 {
		return odds.DevigOneSided(best[0].DecimalOdds, p.pricing.AssumedOverround)
	}
	return odds.FairPrice{Method: models.DevigNone}
}

func (p *Pricer) referenceSpec(modelDecimal float64) odds.ReferenceSpec {
	return odds.ReferenceSpec{
		Mode:         odds.ReferenceMode(p.pricing.ReferenceMode),
		BookID:       p.pricing.ReferenceBook,
		SharpBooks:   p.pricing.SharpBooks,
		ModelDecimal: modelDecimal,
	}
}

func quoteByCanonical(side *models.MarketSide, bookID string) *models.Quote {
	want := odds.CanonicalBookID(bookID)
	for i := range side.Quotes {
		if odds.CanonicalBookID(side.Quotes[i].BookID) == want {
			return &side.Quotes[i]
		}
	}
	return nil
}
