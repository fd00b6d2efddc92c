package store

import (
	"testing"

	"github.com/dmateos/startrader/internal/domain"
)

func TestLedger_CashAndQuantities(t *testing.T) {
	l := NewLedger(100, "EARTH")

	if l.Cash() != 100 {
		t.Fatalf("cash = %d, want 100", l.Cash())
	}
	l.AddCash(-40)
	if l.Cash() != 60 {
		t.Fatalf("cash = %d, want 60", l.Cash())
	}

	l.AddQuantity(domain.CommodityOre, 7)
	if got := l.Quantity(domain.CommodityOre); got != 7 {
		t.Fatalf("ore = %d, want 7", got)
	}
	l.AddQuantity(domain.CommodityFuel, 3)
	if got := l.TotalQuantity(); got != 10 {
		t.Fatalf("total = %d, want 10", got)
	}

	l.AddQuantity(domain.CommodityOre, -7)
	if got := l.Quantity(domain.CommodityOre); got != 0 {
		t.Fatalf("ore = %d, want 0", got)
	}
}

func TestLedger_BeginTurn(t *testing.T) {
	l := NewLedger(0, "EARTH")

	if l.Turn() != 0 {
		t.Fatalf("turn = %d, want 0", l.Turn())
	}

	turn := l.BeginTurn("MARS")
	if turn != 1 || l.Turn() != 1 {
		t.Fatalf("turn = %d/%d, want 1", turn, l.Turn())
	}
	if l.Location() != "MARS" {
		t.Fatalf("location = %q, want MARS", l.Location())
	}

	l.BeginTurn("MARS")
	if l.Turn() != 2 {
		t.Fatalf("turn = %d, want 2", l.Turn())
	}
}

func TestLedger_Deployed(t *testing.T) {
	l := NewLedger(0, "EARTH")

	l.AddDeployed(domain.UnitRobot, 2)
	l.AddDeployed(domain.UnitArchon, 1)
	if got := l.Deployed(domain.UnitRobot); got != 2 {
		t.Fatalf("robots = %d, want 2", got)
	}
	if got := l.Deployed(domain.UnitWeapons); got != 0 {
		t.Fatalf("weapons = %d, want 0", got)
	}
}

func TestLedger_SnapshotIsACopy(t *testing.T) {
	l := NewLedger(50, "EARTH")
	l.AddQuantity(domain.CommodityFuel, 5)
	l.AddDeployed(domain.UnitArmy, 1)

	snap := l.Snapshot()
	snap.Quantities[domain.CommodityFuel] = 999
	snap.Deployed[domain.UnitArmy] = 999

	if got := l.Quantity(domain.CommodityFuel); got != 5 {
		t.Fatalf("snapshot mutation leaked: fuel = %d", got)
	}
	if got := l.Deployed(domain.UnitArmy); got != 1 {
		t.Fatalf("snapshot mutation leaked: army = %d", got)
	}
}
