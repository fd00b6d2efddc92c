package store

import (
	"sync"

	"github.com/dmateos/startrader/internal/domain"
)

// Ledger is the durable per-session player state: cash, commodity
// holdings, current location, turn counter, and deployed-unit counts.
// It is created once per session and never destroyed. Thread-safe, but
// compound check-then-mutate sequences are serialized by the engine.
type Ledger struct {
	mu         sync.RWMutex
	cash       int
	quantities map[domain.Commodity]int
	location   string
	turn       int
	deployed   map[domain.UnitKind]int
}

// LedgerSnapshot is a point-in-time copy of the ledger for read paths.
type LedgerSnapshot struct {
	Cash       int
	Location   string
	Turn       int
	Quantities map[domain.Commodity]int
	Deployed   map[domain.UnitKind]int
}

// NewLedger creates a ledger with the given starting cash and location.
// The turn counter starts at 0.
func NewLedger(cash int, location string) *Ledger {
	return &Ledger{
		cash:       cash,
		location:   location,
		quantities: make(map[domain.Commodity]int),
		deployed:   make(map[domain.UnitKind]int),
	}
}

// Cash returns the current balance.
func (l *Ledger) Cash() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cash
}

// AddCash applies a signed delta to the balance.
func (l *Ledger) AddCash(delta int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cash += delta
}

// Quantity returns the held amount of a commodity.
func (l *Ledger) Quantity(c domain.Commodity) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.quantities[c]
}

// AddQuantity applies a signed delta to a commodity's held amount.
func (l *Ledger) AddQuantity(c domain.Commodity, delta int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quantities[c] += delta
	if l.quantities[c] <= 0 {
		delete(l.quantities, c)
	}
}

// TotalQuantity returns the sum of all held commodity amounts.
func (l *Ledger) TotalQuantity() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	total := 0
	for _, q := range l.quantities {
		total += q
	}
	return total
}

// Location returns the current location (canonical casing).
func (l *Ledger) Location() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.location
}

// Turn returns the current turn number.
func (l *Ledger) Turn() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.turn
}

// BeginTurn increments the turn counter and moves to the new location.
// This is the single state transition of the turn machine; everything
// else in a turn advance derives from it.
func (l *Ledger) BeginTurn(location string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.turn++
	l.location = location
	return l.turn
}

// Deployed returns the deployed count for a unit kind.
func (l *Ledger) Deployed(kind domain.UnitKind) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.deployed[kind]
}

// AddDeployed applies a signed delta to a unit kind's deployed count.
func (l *Ledger) AddDeployed(kind domain.UnitKind, delta int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deployed[kind] += delta
	if l.deployed[kind] <= 0 {
		delete(l.deployed, kind)
	}
}

// Snapshot returns a consistent copy of the whole ledger.
func (l *Ledger) Snapshot() LedgerSnapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	quantities := make(map[domain.Commodity]int, len(l.quantities))
	for c, q := range l.quantities {
		quantities[c] = q
	}
	deployed := make(map[domain.UnitKind]int, len(l.deployed))
	for k, n := range l.deployed {
		deployed[k] = n
	}
	return LedgerSnapshot{
		Cash:       l.cash,
		Location:   l.location,
		Turn:       l.turn,
		Quantities: quantities,
		Deployed:   deployed,
	}
}
