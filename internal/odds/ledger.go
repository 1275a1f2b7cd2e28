package odds

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/propsedge/internal/models"
)

// RawQuote is one row from the external quote feed. Price arrives in
// whatever shape the feed produced it (number, numeric string, null or
// absent entirely); the ledger is the only place that shape is tolerated.
type RawQuote struct {
	BookID string          `json:"book_id"`
	Price  json.RawMessage `json:"price"`
	Line   float64         `json:"line"`
	Link   *string         `json:"link,omitempty"`
	Limit  *float64        `json:"limit,omitempty"`
}

// Ledger normalizes raw feed rows into canonical Quotes
type Ledger struct {
	logger *logrus.Logger
}

// NewLedger creates a quote ledger
func NewLedger(logger *logrus.Logger) *Ledger {
	return &Ledger{logger: logger}
}

// Normalize converts raw feed rows into Quotes for one market side,
// dropping rows with an unavailable price and deduplicating by book
// (first row per book wins). Returns the quotes and the number of rows
// dropped.
func (l *Ledger) Normalize(raws []RawQuote) ([]models.Quote, int) {
	quotes := make([]models.Quote, 0, len(raws))
	seen := make(map[string]bool, len(raws))
	dropped := 0

	for _, raw := range raws {
		price, ok := parsePrice(raw.Price)
		if !ok {
			dropped++
			if l.logger != nil {
				l.logger.WithFields(logrus.Fields{
					"book": raw.BookID,
					"raw":  string(raw.Price),
				}).Debug("Dropping quote with unavailable price")
			}
			continue
		}

		key := CanonicalBookID(raw.BookID)
		if seen[key] {
			dropped++
			continue
		}
		seen[key] = true

		dec, err := AmericanToDecimal(price)
		if err != nil {
			dropped++
			continue
		}

		quote := models.Quote{
			BookID:      raw.BookID,
			Price:       price,
			DecimalOdds: dec,
			Line:        raw.Line,
			Link:        raw.Link,
		}
		if raw.Limit != nil {
			limit := decimal.NewFromFloat(*raw.Limit)
			quote.Limit = &limit
		}
		quotes = append(quotes, quote)
	}

	return quotes, dropped
}

// parsePrice extracts a usable American price from the feed's loose price
// shape. A missing, null, empty, non-numeric or zero price is unavailable.
func parsePrice(raw json.RawMessage) (int, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, false
	}
	// Numeric strings arrive quoted; unwrap before parsing
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(strings.TrimPrefix(s, "+"))
	if s == "" {
		return 0, false
	}

	if price, err := strconv.Atoi(s); err == nil {
		if price == 0 {
			return 0, false
		}
		return price, true
	}

	// Some feeds send integral prices as floats (e.g. -110.0)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		price := int(f)
		if price == 0 || float64(price) != f {
			return 0, false
		}
		return price, true
	}

	return 0, false
}

// CanonicalBookID normalizes a book identifier for comparisons: lowercased
// with spaces, dashes and underscores removed, then mapped through known
// aliases.
func CanonicalBookID(bookID string) string {
	key := strings.ToLower(bookID)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	if canonical, ok := bookAliases[key]; ok {
		return canonical
	}
	return key
}

// bookAliases maps alternate feed spellings to canonical ids
var bookAliases = map[string]string{
	"dk":           "draftkings",
	"mgm":          "betmgm",
	"czr":          "caesars",
	"williamhill":  "caesars",
	"pinny":        "pinnacle",
	"fd":           "fanduel",
	"pointsbetusa": "pointsbet",
}
