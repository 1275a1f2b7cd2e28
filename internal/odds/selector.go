package odds

import (
	"sort"

	"github.com/yourusername/propsedge/internal/models"
)

// Selector picks best prices and builds display rankings for a market side.
// Book ids in the exclusion and priority lists are matched through
// CanonicalBookID, so feed spelling differences do not matter.
type Selector struct {
	excluded map[string]bool
	priority map[string]bool
	// sharpBook, when set, is forced into the last slot of a top-N
	// ranking whenever it quoted the market but did not make the cut
	sharpBook string
}

// SelectorOption configures a Selector
type SelectorOption func(*Selector)

// WithExcludedBooks removes the given books from best-price consideration
func WithExcludedBooks(bookIDs []string) SelectorOption {
	return func(s *Selector) {
		for _, id := range bookIDs {
			s.excluded[CanonicalBookID(id)] = true
		}
	}
}

// WithPriorityBooks ranks the given books ahead of other non-best quotes
// in top-N displays
func WithPriorityBooks(bookIDs []string) SelectorOption {
	return func(s *Selector) {
		for _, id := range bookIDs {
			s.priority[CanonicalBookID(id)] = true
		}
	}
}

// WithSharpBook designates the reference book that must always be visible
// in a top-N ranking
func WithSharpBook(bookID string) SelectorOption {
	return func(s *Selector) {
		s.sharpBook = CanonicalBookID(bookID)
	}
}

// NewSelector creates a price selector
func NewSelector(opts ...SelectorOption) *Selector {
	s := &Selector{
		excluded: make(map[string]bool),
		priority: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// eligible returns the side's quotes minus excluded books
func (s *Selector) eligible(side *models.MarketSide) []models.Quote {
	out := make([]models.Quote, 0, len(side.Quotes))
	for _, q := range side.Quotes {
		if s.excluded[CanonicalBookID(q.BookID)] {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Best returns every quote tied at the maximum decimal odds among
// non-excluded books. Empty when no eligible quote exists.
func (s *Selector) Best(side *models.MarketSide) []models.Quote {
	quotes := s.eligible(side)
	if len(quotes) == 0 {
		return nil
	}

	best := quotes[0].DecimalOdds
	for _, q := range quotes[1:] {
		if q.DecimalOdds > best {
			best = q.DecimalOdds
		}
	}

	tied := make([]models.Quote, 0, 1)
	for _, q := range quotes {
		if q.DecimalOdds == best {
			tied = append(tied, q)
		}
	}
	return tied
}

// SecondBest returns the highest decimal odds strictly below the best
// price, or false when fewer than two price levels exist
func (s *Selector) SecondBest(side *models.MarketSide) (float64, bool) {
	quotes := s.eligible(side)
	if len(quotes) < 2 {
		return 0, false
	}

	best, second := 0.0, 0.0
	for _, q := range quotes {
		if q.DecimalOdds > best {
			best = q.DecimalOdds
		}
	}
	for _, q := range quotes {
		if q.DecimalOdds < best && q.DecimalOdds > second {
			second = q.DecimalOdds
		}
	}
	if second == 0 {
		return 0, false
	}
	return second, true
}

// TopN returns up to n quotes in display order: best-price quotes first,
// then priority-list members, then the rest in input order. If the sharp
// book quoted the market but missed the cut it replaces the last slot, so
// the reference price is always visible.
func (s *Selector) TopN(side *models.MarketSide, n int) []models.Quote {
	quotes := s.eligible(side)
	if n <= 0 || len(quotes) == 0 {
		return nil
	}

	best := 0.0
	for _, q := range quotes {
		if q.DecimalOdds > best {
			best = q.DecimalOdds
		}
	}

	ranked := make([]models.Quote, len(quotes))
	copy(ranked, quotes)
	sort.SliceStable(ranked, func(i, j int) bool {
		iBest := ranked[i].DecimalOdds == best
		jBest := ranked[j].DecimalOdds == best
		if iBest != jBest {
			return iBest
		}
		iPri := s.priority[CanonicalBookID(ranked[i].BookID)]
		jPri := s.priority[CanonicalBookID(ranked[j].BookID)]
		if iPri != jPri {
			return iPri
		}
		return false
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	if s.sharpBook != "" && !containsBook(ranked, s.sharpBook) {
		if sharp := findBook(quotes, s.sharpBook); sharp != nil {
			if len(ranked) < n {
				ranked = append(ranked, *sharp)
			} else {
				ranked[len(ranked)-1] = *sharp
			}
		}
	}

	return ranked
}

func containsBook(quotes []models.Quote, canonical string) bool {
	return findBook(quotes, canonical) != nil
}

func findBook(quotes []models.Quote, canonical string) *models.Quote {
	for i := range quotes {
		if CanonicalBookID(quotes[i].BookID) == canonical {
			return &quotes[i]
		}
	}
	return nil
}
