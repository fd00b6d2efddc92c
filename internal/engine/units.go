package engine

import (
	"github.com/dmateos/startrader/internal/domain"
	"github.com/dmateos/startrader/internal/inventory"
)

// UnitIncome is a per-turn yield, in cash and in slave output.
type UnitIncome struct {
	CashPerTurn   int
	SlavesPerTurn int
}

// UnitRates returns the per-unit per-turn yield for a unit kind.
func (m *Market) UnitRates(kind domain.UnitKind) UnitIncome {
	bal := m.catalog.Balance()
	switch kind {
	case domain.UnitRobot:
		return UnitIncome{CashPerTurn: bal.RobotIncome}
	case domain.UnitMerchant:
		return UnitIncome{CashPerTurn: bal.MerchantIncome}
	case domain.UnitWeapons:
		return UnitIncome{SlavesPerTurn: bal.WeaponsOutput}
	case domain.UnitArmy:
		return UnitIncome{SlavesPerTurn: bal.ArmyOutput}
	case domain.UnitArchon:
		return UnitIncome{CashPerTurn: bal.ArchonIncome, SlavesPerTurn: bal.ArchonOutput}
	}
	return UnitIncome{}
}

// DeployedIncome returns the total per-turn yield of a kind's deployed
// units.
func (m *Market) DeployedIncome(kind domain.UnitKind) UnitIncome {
	rates := m.UnitRates(kind)
	count := m.ledger.Deployed(kind)
	return UnitIncome{
		CashPerTurn:   rates.CashPerTurn * count,
		SlavesPerTurn: rates.SlavesPerTurn * count,
	}
}

// DeployReport describes the outcome of a deployment.
type DeployReport struct {
	Kind     domain.UnitKind
	Deployed int // deployed count after this deployment
	Shed     int // commodities dropped to restore the capacity invariant
}

// Deploy converts one held unit into a deployed one. The unit leaves the
// inventory collaborator, which can shrink carrying capacity (held
// robots, merchants, and archons grant bonus capacity); any resulting
// excess usage is shed immediately so the capacity invariant holds after
// the call.
func (m *Market) Deploy(kind domain.UnitKind) (DeployReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.inv.Remove(inventory.UnitItem(kind), 1) {
		return DeployReport{}, domain.ErrNoSuchUnit
	}
	m.ledger.AddDeployed(kind, 1)
	shed := m.shedExcessLocked()

	return DeployReport{
		Kind:     kind,
		Deployed: m.ledger.Deployed(kind),
		Shed:     shed,
	}, nil
}
