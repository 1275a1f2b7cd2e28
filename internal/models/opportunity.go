package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DevigMethod describes how the fair probability behind an Opportunity
// was derived
type DevigMethod string

const (
	// DevigProper means both sides of the market were observed and the
	// overround was removed multiplicatively
	DevigProper DevigMethod = "proper"
	// DevigEstimated means only one side was observed and a typical
	// market overround was assumed
	DevigEstimated DevigMethod = "estimated"
	// DevigNone means no usable fair probability could be derived
	DevigNone DevigMethod = "none"
)

// Grade is a qualitative bucket derived from edge/EV thresholds
type Grade string

const (
	GradeA    Grade = "A"
	GradeB    Grade = "B"
	GradeC    Grade = "C"
	GradeD    Grade = "D"
	GradeNone Grade = ""
)

// Opportunity is the fully priced view of one market side: best price,
// fair price, edge, expected value and a recommended stake. It is derived
// data, recomputed on demand and never mutated in place.
type Opportunity struct {
	EventID          uuid.UUID       `json:"event_id"`
	Side             SideKind        `json:"side"`
	Line             float64         `json:"line"`
	BestPrice        int             `json:"best_price"`
	BestDecimal      float64         `json:"best_decimal"`
	BestBookIDs      []string        `json:"best_book_ids"`
	ReferenceDecimal *float64        `json:"reference_decimal,omitempty"`
	FairProb         *float64        `json:"fair_prob,omitempty"`
	FairPrice        *int            `json:"fair_price,omitempty"`
	EdgePct          *float64        `json:"edge_pct,omitempty"`
	EVPct            *float64        `json:"ev_pct,omitempty"`
	DevigMethod      DevigMethod     `json:"devig_method"`
	Grade            Grade           `json:"grade,omitempty"`
	KellyFraction    float64         `json:"kelly_fraction"`
	Stake            decimal.Decimal `json:"stake"`
}
