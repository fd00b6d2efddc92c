package service

import (
	"errors"
	"testing"

	"github.com/dmateos/startrader/internal/domain"
	"github.com/dmateos/startrader/internal/inventory"
)

func TestLedgerService_GetLedger(t *testing.T) {
	f := newFixture(t, 75)
	f.ledger.AddQuantity(domain.CommoditySlaves, 4)
	f.ledger.AddDeployed(domain.UnitRobot, 2)
	f.inv.Add(inventory.ItemMerchant, 1)
	svc := NewLedgerService(f.market)

	resp := svc.GetLedger()
	if resp.Cash != 75 || resp.Location != "TRADEPOST" || resp.Turn != 0 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Quantities[domain.CommoditySlaves] != 4 {
		t.Fatalf("quantities = %v", resp.Quantities)
	}
	if resp.Deployed[domain.UnitRobot] != 2 {
		t.Fatalf("deployed = %v", resp.Deployed)
	}
	if resp.Usage != 4 {
		t.Fatalf("usage = %d, want 4", resp.Usage)
	}
	// Base 10 plus the held merchant's 15.
	if resp.Capacity != 25 {
		t.Fatalf("capacity = %d, want 25", resp.Capacity)
	}
}

func TestLedgerService_Quantity(t *testing.T) {
	f := newFixture(t, 0)
	f.ledger.AddQuantity(domain.CommodityOre, 9)
	svc := NewLedgerService(f.market)

	got, err := svc.Quantity("Ore")
	if err != nil || got != 9 {
		t.Fatalf("quantity = %d err=%v, want 9", got, err)
	}
	if _, err := svc.Quantity("vibranium"); !errors.Is(err, domain.ErrUnknownCommodity) {
		t.Fatalf("err = %v, want ErrUnknownCommodity", err)
	}
}
