package store

import (
	"sync"

	"github.com/dmateos/startrader/internal/domain"
	"github.com/google/btree"
)

// PricePoint is one recorded price for a pair at a given turn.
type PricePoint struct {
	Turn  int
	Price int
}

// pointLess orders price points by turn ascending.
func pointLess(a, b PricePoint) bool {
	return a.Turn < b.Turn
}

// History records every seeded and fluctuated price per (location,
// commodity) pair, ordered by turn in a B-tree so turn-range queries are
// O(log n + k). At most one point per pair per turn; a later write for
// the same turn replaces the earlier one.
type History struct {
	mu     sync.RWMutex
	series map[Pair]*btree.BTreeG[PricePoint]
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{
		series: make(map[Pair]*btree.BTreeG[PricePoint]),
	}
}

// Append records the price of a pair at a turn.
func (h *History) Append(location string, c domain.Commodity, turn, price int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	key := Pair{Location: location, Commodity: c}
	tree := h.series[key]
	if tree == nil {
		const degree = 16
		tree = btree.NewG[PricePoint](degree, pointLess)
		h.series[key] = tree
	}
	tree.ReplaceOrInsert(PricePoint{Turn: turn, Price: price})
}

// Range returns the recorded points for a pair with from ≤ turn ≤ to,
// in turn order.
func (h *History) Range(location string, c domain.Commodity, from, to int) []PricePoint {
	h.mu.RLock()
	defer h.mu.RUnlock()
	tree := h.series[Pair{Location: location, Commodity: c}]
	if tree == nil || to < from {
		return []PricePoint{}
	}
	out := []PricePoint{}
	tree.AscendRange(PricePoint{Turn: from}, PricePoint{Turn: to + 1}, func(p PricePoint) bool {
		out = append(out, p)
		return true
	})
	return out
}

// Latest returns the most recent recorded point for a pair.
func (h *History) Latest(location string, c domain.Commodity) (PricePoint, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	tree := h.series[Pair{Location: location, Commodity: c}]
	if tree == nil {
		return PricePoint{}, false
	}
	return tree.Max()
}
