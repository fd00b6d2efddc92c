package store

import (
	"sync"

	"github.com/dmateos/startrader/internal/domain"
)

// Pair identifies one (location, commodity) market entry.
type Pair struct {
	Location  string
	Commodity domain.Commodity
}

// PriceBoard holds the mutable market state: the all-time price table and
// the per-turn active sets. The two are deliberately separate maps —
// "has a price" outlives "is tradeable this turn", and conflating them
// invites re-seeding bugs. Once a price is set it is only ever changed by
// the fluctuation step.
type PriceBoard struct {
	mu     sync.RWMutex
	prices map[string]map[domain.Commodity]int
	active map[string]map[domain.Commodity]struct{}
}

// NewPriceBoard creates an empty PriceBoard.
func NewPriceBoard() *PriceBoard {
	return &PriceBoard{
		prices: make(map[string]map[domain.Commodity]int),
		active: make(map[string]map[domain.Commodity]struct{}),
	}
}

// Price returns the current price for a pair, if one was ever seeded.
func (b *PriceBoard) Price(location string, c domain.Commodity) (int, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.prices[location][c]
	return p, ok
}

// SetPrice stores a price for a pair.
func (b *PriceBoard) SetPrice(location string, c domain.Commodity, price int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	row := b.prices[location]
	if row == nil {
		row = make(map[domain.Commodity]int)
		b.prices[location] = row
	}
	row[c] = price
}

// Seeded reports whether a pair has ever been priced.
func (b *PriceBoard) Seeded(location string, c domain.Commodity) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.prices[location][c]
	return ok
}

// SetActive replaces a location's active set for the new turn.
func (b *PriceBoard) SetActive(location string, set []domain.Commodity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	row := make(map[domain.Commodity]struct{}, len(set))
	for _, c := range set {
		row[c] = struct{}{}
	}
	b.active[location] = row
}

// IsActive reports whether a commodity is tradeable at a location this
// turn.
func (b *PriceBoard) IsActive(location string, c domain.Commodity) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.active[location][c]
	return ok
}

// Active returns a location's current active set in the stable commodity
// order.
func (b *PriceBoard) Active(location string) []domain.Commodity {
	b.mu.RLock()
	defer b.mu.RUnlock()
	row := b.active[location]
	out := make([]domain.Commodity, 0, len(row))
	for _, c := range domain.Commodities {
		if _, ok := row[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// ActivePairs returns every currently active (location, commodity) pair.
// Locations are not ordered; commodities within a location follow the
// stable commodity order.
func (b *PriceBoard) ActivePairs() []Pair {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []Pair
	for location, row := range b.active {
		for _, c := range domain.Commodities {
			if _, ok := row[c]; ok {
				out = append(out, Pair{Location: location, Commodity: c})
			}
		}
	}
	return out
}
