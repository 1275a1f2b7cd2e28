package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SideKind represents the selection side of a market
type SideKind string

const (
	SideOver  SideKind = "over"
	SideUnder SideKind = "under"
	SideYes   SideKind = "yes"
	SideNo    SideKind = "no"
)

// Opposite returns the paired side of a two-way market
func (s SideKind) Opposite() SideKind {
	switch s {
	case SideOver:
		return SideUnder
	case SideUnder:
		return SideOver
	case SideYes:
		return SideNo
	case SideNo:
		return SideYes
	}
	return s
}

// Quote represents a single sportsbook's price for one side of a market.
// Price is American odds and is always nonzero: rows with an absent or
// unparsable price never become Quotes.
type Quote struct {
	BookID      string           `json:"book_id" validate:"required"`
	Price       int              `json:"price" validate:"required"`
	DecimalOdds float64          `json:"decimal_odds" validate:"gt=1"`
	Line        float64          `json:"line"`
	Link        *string          `json:"link,omitempty"`
	Limit       *decimal.Decimal `json:"limit,omitempty"`
}

// MarketSide groups all book quotes for one side of one market.
// Quotes are unique by BookID; ordering carries no meaning.
type MarketSide struct {
	EventID uuid.UUID `json:"event_id"`
	Side    SideKind  `json:"side" validate:"required"`
	Line    float64   `json:"line"`
	Quotes  []Quote   `json:"quotes"`
}

// QuoteByBook returns the quote posted by the given book, if present
func (m *MarketSide) QuoteByBook(bookID string) *Quote {
	for i := range m.Quotes {
		if m.Quotes[i].BookID == bookID {
			return &m.Quotes[i]
		}
	}
	return nil
}
