package corpus

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"resumescore/internal/errors"
	"resumescore/internal/types"
)

// GeneralKey is the industry/level used as the final fallback.
const GeneralKey = "general"

// ErrNotFound is returned by a Store when no set exists for the exact key.
var ErrNotFound = fmt.Errorf("keyword set not found")

// Store supplies keyword sets for exact (industry, level) keys.
// Implementations must be safe for concurrent use; returned sets are
// read-only and shared.
type Store interface {
	Lookup(ctx context.Context, industry, level string) (*types.KeywordSet, error)
}

// Corpus resolves keyword sets with the fallback chain
// (industry, level) -> (industry, general) -> (general, general).
type Corpus struct {
	store  Store
	logger *errors.Logger
}

// New creates a corpus over the given store.
func New(store Store, logger *errors.Logger) *Corpus {
	return &Corpus{store: store, logger: logger}
}

// Resolve returns the best keyword set for the requested industry and level.
// If even the (general, general) default is absent the corpus was never
// seeded; that is a configuration defect, reported as CORPUS_NOT_SEEDED.
func (c *Corpus) Resolve(ctx context.Context, industry, level string) (*types.KeywordSet, error) {
	industry = normalizeKey(industry)
	level = normalizeKey(level)

	chain := [][2]string{
		{industry, level},
		{industry, GeneralKey},
		{GeneralKey, GeneralKey},
	}

	for _, key := range chain {
		set, err := c.store.Lookup(ctx, key[0], key[1])
		if err == nil && set != nil && len(set.Keywords) > 0 {
			if c.logger != nil && (key[0] != industry || key[1] != level) {
				c.logger.Debug("Keyword set resolved via fallback",
					"requested_industry", industry,
					"requested_level", level,
					"resolved_industry", key[0],
					"resolved_level", key[1])
			}
			return set, nil
		}
		if err != nil && err != ErrNotFound {
			return nil, errors.NewCorpusError(errors.ErrCodeCorpusLookup,
				fmt.Sprintf("Keyword set lookup failed for %s/%s", key[0], key[1]), err)
		}
	}

	return nil, errors.NewInternalError(errors.ErrCodeCorpusNotSeeded,
		"Keyword corpus has no default entry; reference data was not seeded", nil)
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return GeneralKey
	}
	return s
}

// MemoryStore is an in-memory keyword set store. Lookups are lock-free
// reads of immutable sets; Replace swaps the whole table under a write
// lock, so a reload never mutates a published set.
type MemoryStore struct {
	mu   sync.RWMutex
	sets map[string]*types.KeywordSet
}

// NewMemoryStore creates a store holding the given sets.
func NewMemoryStore(sets []types.KeywordSet) *MemoryStore {
	ms := &MemoryStore{}
	ms.Replace(sets)
	return ms
}

func storeKey(industry, level string) string {
	return industry + "/" + level
}

// Lookup implements Store.
func (ms *MemoryStore) Lookup(_ context.Context, industry, level string) (*types.KeywordSet, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	set, ok := ms.sets[storeKey(normalizeKey(industry), normalizeKey(level))]
	if !ok {
		return nil, ErrNotFound
	}
	return set, nil
}

// Replace atomically swaps the store contents.
func (ms *MemoryStore) Replace(sets []types.KeywordSet) {
	table := make(map[string]*types.KeywordSet, len(sets))
	for i := range sets {
		set := sets[i]
		set.Industry = normalizeKey(set.Industry)
		set.Level = normalizeKey(set.Level)
		table[storeKey(set.Industry, set.Level)] = &set
	}

	ms.mu.Lock()
	ms.sets = table
	ms.mu.Unlock()
}

// Keys returns the seeded (industry, level) keys in sorted order.
func (ms *MemoryStore) Keys() []string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	keys := make([]string, 0, len(ms.sets))
	for k := range ms.sets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of seeded keyword sets.
func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.sets)
}
