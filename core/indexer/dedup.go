package indexer

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// Deduper remembers the keys of events applied during the process
// lifetime. The oldest keys are evicted once capacity is reached. An
// evicted key is no longer guarded here; from then on the persisted
// cursor is the only thing keeping that event from being applied again.
type Deduper struct {
	seen *lru.Cache
}

// NewDeduper creates a guard holding up to capacity keys.
func NewDeduper(capacity int) (*Deduper, error) {
	if capacity <= 0 {
		capacity = 10000
	}
	cache, err := lru.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("dedup cache: %w", err)
	}
	return &Deduper{seen: cache}, nil
}

// Seen reports whether key was marked.
func (d *Deduper) Seen(key string) bool {
	return d.seen.Contains(key)
}

// Mark records key as applied.
func (d *Deduper) Mark(key string) {
	d.seen.Add(key, struct{}{})
}

// Len returns the number of remembered keys.
func (d *Deduper) Len() int {
	return d.seen.Len()
}
