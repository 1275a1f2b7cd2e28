package analysis

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/propsedge/internal/metrics"
	"github.com/yourusername/propsedge/internal/models"
)

// Memo is an optional table of previously computed hit-rate results, keyed
// by a content hash of the computation's inputs. Correctness never depends
// on it: every computation is idempotent, the memo only short-circuits
// byte-identical requests.
type Memo struct {
	cache *cache.Cache
}

// NewMemo creates a memo table with the given entry lifetime. A zero or
// negative TTL disables memoization entirely.
func NewMemo(ttl time.Duration) *Memo {
	if ttl <= 0 {
		return &Memo{}
	}
	return &Memo{cache: cache.New(ttl, ttl*2)}
}

// Key builds the memo key for one hit-rate request. Version identifies the
// record-set snapshot: any refresh must change it, which orphans all prior
// entries.
func (m *Memo) Key(version string, spec *models.FilterSpec, stat models.StatKey, line float64, opponent string) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%.4f|%s|", version, stat, line, opponent)
	if spec != nil {
		// json.Marshal sorts map keys, so equal specs hash equally
		if encoded, err := json.Marshal(spec); err == nil {
			h.Write(encoded)
		}
	}
	return fmt.Sprintf("%x", h.Sum64())
}

// Get retrieves previously computed windows
func (m *Memo) Get(key string) ([]models.HitRateWindow, bool) {
	if m.cache == nil {
		return nil, false
	}
	if cached, found := m.cache.Get(key); found {
		if windows, ok := cached.([]models.HitRateWindow); ok {
			metrics.RecordMemoHit()
			return windows, true
		}
	}
	metrics.RecordMemoMiss()
	return nil, false
}

// Set stores computed windows under the key
func (m *Memo) Set(key string, windows []models.HitRateWindow) {
	if m.cache == nil {
		return
	}
	m.cache.Set(key, windows, cache.DefaultExpiration)
}

// Flush drops every entry; callers invoke it on record-set refreshes when
// they reuse snapshot version strings
func (m *Memo) Flush() {
	if m.cache != nil {
		m.cache.Flush()
	}
}
