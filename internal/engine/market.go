// Package engine implements the market core: active-set selection, price
// seeding and fluctuation, the turn-advance state machine, and the
// transaction processor. All mutating operations are serialized behind a
// single mutex, and every random draw comes from one injected source so
// a fixed seed makes whole turns reproducible.
package engine

import (
	"math/rand"
	"sync"

	"github.com/dmateos/startrader/internal/catalog"
	"github.com/dmateos/startrader/internal/domain"
	"github.com/dmateos/startrader/internal/inventory"
	"github.com/dmateos/startrader/internal/score"
	"github.com/dmateos/startrader/internal/store"
)

// Market owns the session's market state and the ledger, and consumes
// the inventory and score collaborators through their interfaces.
type Market struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	prices  *store.PriceBoard
	history *store.History
	ledger  *store.Ledger
	inv     inventory.Manager
	scores  score.Keeper
	rng     *rand.Rand
}

// NewMarket wires a market engine and rolls the initial active sets for
// every configured location, seeding their first prices. A nil scores
// keeper is replaced with the no-op implementation.
func NewMarket(
	cat *catalog.Catalog,
	ledger *store.Ledger,
	prices *store.PriceBoard,
	history *store.History,
	inv inventory.Manager,
	scores score.Keeper,
	rng *rand.Rand,
) *Market {
	if scores == nil {
		scores = score.Noop{}
	}
	m := &Market{
		catalog: cat,
		prices:  prices,
		history: history,
		ledger:  ledger,
		inv:     inv,
		scores:  scores,
		rng:     rng,
	}

	m.mu.Lock()
	m.refreshMarketsLocked()
	m.mu.Unlock()
	return m
}

// Catalog returns the immutable market configuration.
func (m *Market) Catalog() *catalog.Catalog {
	return m.catalog
}

// Ledger returns the session ledger.
func (m *Market) Ledger() *store.Ledger {
	return m.ledger
}

// Price returns the current price for a pair, if one was ever seeded.
// Stale prices of inactive commodities are still reported; availability
// is a separate question.
func (m *Market) Price(location string, c domain.Commodity) (int, bool) {
	return m.prices.Price(catalog.Canonical(location), c)
}

// Available returns the commodities tradeable at a location this turn.
func (m *Market) Available(location string) []domain.Commodity {
	return m.prices.Active(catalog.Canonical(location))
}

// IsAvailable reports whether one commodity is tradeable at a location
// this turn.
func (m *Market) IsAvailable(location string, c domain.Commodity) bool {
	return m.prices.IsActive(catalog.Canonical(location), c)
}

// History returns the recorded price points for a pair in [from, to].
func (m *Market) History(location string, c domain.Commodity, from, to int) []store.PricePoint {
	return m.history.Range(catalog.Canonical(location), c, from, to)
}

// Usage returns the current inventory usage: all held commodity
// quantities plus the special items tracked by the inventory
// collaborator. Held units do not count.
func (m *Market) Usage() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.usageLocked()
}

// Capacity returns the current carrying capacity: the base constant plus
// the bonus from held robots, merchants, and archons.
func (m *Market) Capacity() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.capacityLocked()
}

func (m *Market) usageLocked() int {
	usage := m.ledger.TotalQuantity()
	for _, item := range inventory.SpecialItems {
		usage += m.inv.Item(item)
	}
	return usage
}

func (m *Market) capacityLocked() int {
	bal := m.catalog.Balance()
	return bal.BaseCapacity +
		bal.RobotCapacity*m.inv.Item(inventory.ItemRobot) +
		bal.MerchantCapacity*m.inv.Item(inventory.ItemMerchant) +
		bal.ArchonCapacity*m.inv.Item(inventory.ItemArchon)
}

// shedExcessLocked drops commodities until usage fits capacity again.
// Slaves go first as the most expendable kind; if that is not enough the
// remaining kinds are shed in reverse of the stable commodity order
// (cheap goods last).
func (m *Market) shedExcessLocked() int {
	shed := 0
	excess := m.usageLocked() - m.capacityLocked()
	if excess <= 0 {
		return 0
	}

	order := []domain.Commodity{domain.CommoditySlaves}
	for i := len(domain.Commodities) - 1; i >= 0; i-- {
		if domain.Commodities[i] != domain.CommoditySlaves {
			order = append(order, domain.Commodities[i])
		}
	}
	for _, c := range order {
		if excess <= 0 {
			break
		}
		held := m.ledger.Quantity(c)
		drop := min(held, excess)
		if drop > 0 {
			m.ledger.AddQuantity(c, -drop)
			shed += drop
			excess -= drop
		}
	}
	return shed
}
