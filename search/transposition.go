package search

import (
	"sync"

	"github.com/G4mingJon4s/govo/board"
)

// Bound classifies a stored value relative to the window it was
// searched with, per spec §4.3 step 4.
type Bound uint8

const (
	// Exact is a fully-resolved score.
	Exact Bound = iota
	// UpperBound means the true value is at most the stored value
	// (search failed low).
	UpperBound
	// LowerBound means the true value is at least the stored value
	// (search failed high, a beta cutoff).
	LowerBound
)

// entry is one transposition table slot.
type entry struct {
	depth   uint8
	value   float64
	bound   Bound
	best    board.Move // only meaningful if hasBest
	hasBest bool
}

// CacheConfig selects the transposition table's capacity, or disables it.
type CacheConfig struct {
	Disabled bool
	Capacity int
}

// Table is a bounded map from position hash to search result, evicting
// in strict FIFO (insertion) order once full — grounded on the teacher's
// array+mask HashTable, generalized from a fixed power-of-two array to a
// capacity-bounded map plus an insertion-order queue, since a session's
// table must actually evict rather than rely on chess-engine sizing
// headroom. A single mutex guards it; probes never promote an entry, so
// FIFO order is solely a function of insertion, not access (spec §4.3
// "Probe touches do not promote entries").
type Table struct {
	mu       sync.Mutex
	disabled bool
	capacity int
	m        map[uint64]entry
	order    []uint64
}

// NewTable builds a transposition table per cfg. A zero-value or
// disabled cfg yields a table that silently no-ops every operation.
func NewTable(cfg CacheConfig) *Table {
	if cfg.Disabled || cfg.Capacity <= 0 {
		return &Table{disabled: true}
	}
	return &Table{
		capacity: cfg.Capacity,
		m:        make(map[uint64]entry, cfg.Capacity),
		order:    make([]uint64, 0, cfg.Capacity),
	}
}

// probe returns the stored entry for key, if any.
func (t *Table) probe(key uint64) (entry, bool) {
	if t.disabled {
		return entry{}, false
	}
	t.mu.Lock()
	e, ok := t.m[key]
	t.mu.Unlock()
	return e, ok
}

// store inserts or overwrites key's entry, evicting the oldest insertion
// if at capacity. Overwriting an existing key does not change its FIFO
// position.
func (t *Table) store(key uint64, e entry) {
	if t.disabled {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.m[key]; !exists {
		if len(t.order) >= t.capacity {
			oldest := t.order[0]
			t.order = t.order[1:]
			delete(t.m, oldest)
		}
		t.order = append(t.order, key)
	}
	t.m[key] = e
}

// Len reports the current number of stored entries.
func (t *Table) Len() int {
	if t.disabled {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.m)
}
