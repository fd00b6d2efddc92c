package engine

import (
	"github.com/dmateos/startrader/internal/catalog"
	"github.com/dmateos/startrader/internal/domain"
)

// Achievement names granted by trade side effects.
const (
	AchievementSlaveTrader = "slave_trader"
	AchievementGoldTrader  = "gold_trader"
)

// TradeResult reports the outcome of a buy or sell order. A refused
// order is an ordinary result with OK=false and a Reason, never an
// error: the UI renders refusals inline.
type TradeResult struct {
	OK             bool
	Reason         domain.Reason
	Location       string
	Commodity      domain.Commodity
	Quantity       int
	UnitPrice      int
	Total          int
	CashAfter      int
	NewAchievement string
}

func (m *Market) refuseLocked(location string, c domain.Commodity, qty int, reason domain.Reason) TradeResult {
	return TradeResult{
		Reason:    reason,
		Location:  location,
		Commodity: c,
		Quantity:  qty,
		CashAfter: m.ledger.Cash(),
	}
}

// Buy validates and executes a purchase at the player's current
// location. Check order: location, availability, price, funds, capacity.
// Prices are never changed by a transaction.
func (m *Market) Buy(location string, c domain.Commodity, qty int) TradeResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	location = catalog.Canonical(location)
	if location != m.ledger.Location() {
		return m.refuseLocked(location, c, qty, domain.ReasonLocationMismatch)
	}
	if !m.prices.IsActive(location, c) {
		return m.refuseLocked(location, c, qty, domain.ReasonNotAvailable)
	}
	price, ok := m.prices.Price(location, c)
	if !ok {
		return m.refuseLocked(location, c, qty, domain.ReasonPriceUnavailable)
	}
	total := price * qty
	if total > m.ledger.Cash() {
		return m.refuseLocked(location, c, qty, domain.ReasonInsufficientFunds)
	}
	if m.usageLocked()+qty > m.capacityLocked() {
		return m.refuseLocked(location, c, qty, domain.ReasonInsufficientInventory)
	}

	m.ledger.AddCash(-total)
	m.ledger.AddQuantity(c, qty)

	result := TradeResult{
		OK:        true,
		Location:  location,
		Commodity: c,
		Quantity:  qty,
		UnitPrice: price,
		Total:     total,
		CashAfter: m.ledger.Cash(),
	}
	if c == domain.CommoditySlaves {
		m.scores.AddScore(qty)
		if m.scores.AddAchievement(AchievementSlaveTrader) {
			result.NewAchievement = AchievementSlaveTrader
		}
	}
	return result
}

// Sell validates and executes a sale at the player's current location.
// Check order: location, availability, price, held quantity.
func (m *Market) Sell(location string, c domain.Commodity, qty int) TradeResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	location = catalog.Canonical(location)
	if location != m.ledger.Location() {
		return m.refuseLocked(location, c, qty, domain.ReasonLocationMismatch)
	}
	if !m.prices.IsActive(location, c) {
		return m.refuseLocked(location, c, qty, domain.ReasonNotAvailable)
	}
	price, ok := m.prices.Price(location, c)
	if !ok {
		return m.refuseLocked(location, c, qty, domain.ReasonPriceUnavailable)
	}
	if m.ledger.Quantity(c) < qty {
		return m.refuseLocked(location, c, qty, domain.ReasonInsufficientQuantity)
	}

	total := price * qty
	m.ledger.AddCash(total)
	m.ledger.AddQuantity(c, -qty)

	result := TradeResult{
		OK:        true,
		Location:  location,
		Commodity: c,
		Quantity:  qty,
		UnitPrice: price,
		Total:     total,
		CashAfter: m.ledger.Cash(),
	}
	if c == domain.CommodityGold {
		if m.scores.AddAchievement(AchievementGoldTrader) {
			result.NewAchievement = AchievementGoldTrader
		}
	}
	return result
}
