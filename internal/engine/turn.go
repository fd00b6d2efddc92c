package engine

import (
	"github.com/dmateos/startrader/internal/catalog"
	"github.com/dmateos/startrader/internal/domain"
)

// TurnReport summarizes what one turn advance did to the ledger.
type TurnReport struct {
	Turn         int
	Location     string
	CashIncome   int
	SlavesGained int
}

// AdvanceTurn is the sole transition of the turn state machine:
//
//  1. increment the turn counter and move to the new location
//  2. accrue flat cash income from deployed robots, merchants, archons
//  3. accrue slave output from deployed weapons, armies, archons,
//     clamped by capacity headroom
//  4. re-roll every location's active set (seeding new prices)
//  5. fluctuate every active pair's price
//
// Fuel validation and debiting belong to the travel layer and must
// happen before this call.
//
// Headroom policy: the capacity headroom for slave output is snapshotted
// once at the start of step 3 and consumed sequentially by the three
// sources, so their combined output can never overshoot capacity.
func (m *Market) AdvanceTurn(newLocation string) TurnReport {
	m.mu.Lock()
	defer m.mu.Unlock()

	location := catalog.Canonical(newLocation)
	turn := m.ledger.BeginTurn(location)
	bal := m.catalog.Balance()

	income := m.ledger.Deployed(domain.UnitRobot)*bal.RobotIncome +
		m.ledger.Deployed(domain.UnitMerchant)*bal.MerchantIncome +
		m.ledger.Deployed(domain.UnitArchon)*bal.ArchonIncome
	m.ledger.AddCash(income)

	headroom := m.capacityLocked() - m.usageLocked()
	if headroom < 0 {
		headroom = 0
	}
	gained := 0
	outputs := []struct {
		kind domain.UnitKind
		rate int
	}{
		{domain.UnitWeapons, bal.WeaponsOutput},
		{domain.UnitArmy, bal.ArmyOutput},
		{domain.UnitArchon, bal.ArchonOutput},
	}
	for _, out := range outputs {
		produced := m.ledger.Deployed(out.kind) * out.rate
		add := min(produced, headroom)
		if add > 0 {
			m.ledger.AddQuantity(domain.CommoditySlaves, add)
			headroom -= add
			gained += add
		}
	}

	fresh := m.refreshMarketsLocked()
	m.fluctuateAllLocked(fresh)

	return TurnReport{
		Turn:         turn,
		Location:     location,
		CashIncome:   income,
		SlavesGained: gained,
	}
}

// ConsumeFuel debits fuel from the ledger, refusing to go negative.
// Travel calls this after a successful CanTravelTo check and before
// AdvanceTurn.
func (m *Market) ConsumeFuel(amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ledger.Quantity(domain.CommodityFuel) < amount {
		return domain.ErrInsufficientFuel
	}
	m.ledger.AddQuantity(domain.CommodityFuel, -amount)
	return nil
}
