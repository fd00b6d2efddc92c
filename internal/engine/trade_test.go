package engine

import (
	"testing"

	"github.com/dmateos/startrader/internal/domain"
)

func TestBuy_Refusals(t *testing.T) {
	tests := []struct {
		name     string
		cash     int
		location string
		c        domain.Commodity
		qty      int
		want     domain.Reason
	}{
		{"wrong location", 100, "MARS", domain.CommoditySlaves, 1, domain.ReasonLocationMismatch},
		{"not in active set", 100, "TRADEPOST", domain.CommodityOre, 1, domain.ReasonNotAvailable},
		{"broke", 0, "TRADEPOST", domain.CommoditySlaves, 1, domain.ReasonInsufficientFunds},
		{"over capacity", 1000, "TRADEPOST", domain.CommoditySlaves, 11, domain.ReasonInsufficientInventory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestMarket(t, tt.cash)
			result := f.market.Buy(tt.location, tt.c, tt.qty)
			if result.OK {
				t.Fatal("expected refusal")
			}
			if result.Reason != tt.want {
				t.Fatalf("reason = %s, want %s", result.Reason, tt.want)
			}
			if result.CashAfter != tt.cash {
				t.Fatalf("cash after = %d, want untouched %d", result.CashAfter, tt.cash)
			}
			if held := f.ledger.Quantity(tt.c); held != 0 {
				t.Fatalf("held = %d, want 0 after refusal", held)
			}
		})
	}
}

func TestBuy_Executes(t *testing.T) {
	f := newTestMarket(t, 100)

	result := f.market.Buy("tradepost", domain.CommodityFuel, 3)
	if !result.OK {
		t.Fatalf("refused: %s", result.Reason)
	}
	if result.UnitPrice != 2 || result.Total != 6 {
		t.Errorf("price/total = %d/%d, want 2/6", result.UnitPrice, result.Total)
	}
	if result.CashAfter != 94 || f.ledger.Cash() != 94 {
		t.Errorf("cash = %d/%d, want 94", result.CashAfter, f.ledger.Cash())
	}
	if held := f.ledger.Quantity(domain.CommodityFuel); held != 3 {
		t.Errorf("fuel held = %d, want 3", held)
	}
	if price, _ := f.market.Price("TRADEPOST", domain.CommodityFuel); price != 2 {
		t.Errorf("price = %d after buy, want unchanged 2", price)
	}
}

func TestBuy_ExactCapacityFits(t *testing.T) {
	f := newTestMarket(t, 1000)

	result := f.market.Buy("TRADEPOST", domain.CommoditySlaves, 10)
	if !result.OK {
		t.Fatalf("buy to exact capacity refused: %s", result.Reason)
	}

	result = f.market.Buy("TRADEPOST", domain.CommodityFuel, 1)
	if result.OK || result.Reason != domain.ReasonInsufficientInventory {
		t.Fatalf("result = %+v, want insufficient_inventory", result)
	}
}

func TestBuy_SlaveTradeScoring(t *testing.T) {
	f := newTestMarket(t, 200)

	first := f.market.Buy("TRADEPOST", domain.CommoditySlaves, 3)
	if !first.OK {
		t.Fatalf("refused: %s", first.Reason)
	}
	if first.NewAchievement != AchievementSlaveTrader {
		t.Errorf("achievement = %q, want %q", first.NewAchievement, AchievementSlaveTrader)
	}
	if got := f.scores.Score(); got != 3 {
		t.Errorf("score = %d, want 3", got)
	}

	// The achievement is granted once; the score keeps accruing.
	second := f.market.Buy("TRADEPOST", domain.CommoditySlaves, 2)
	if !second.OK {
		t.Fatalf("refused: %s", second.Reason)
	}
	if second.NewAchievement != "" {
		t.Errorf("achievement = %q on repeat buy, want empty", second.NewAchievement)
	}
	if got := f.scores.Score(); got != 5 {
		t.Errorf("score = %d, want 5", got)
	}
}

func TestSell_Refusals(t *testing.T) {
	f := newTestMarket(t, 0)

	result := f.market.Sell("MARS", domain.CommoditySlaves, 1)
	if result.OK || result.Reason != domain.ReasonLocationMismatch {
		t.Fatalf("result = %+v, want location_mismatch", result)
	}

	result = f.market.Sell("TRADEPOST", domain.CommodityOre, 1)
	if result.OK || result.Reason != domain.ReasonNotAvailable {
		t.Fatalf("result = %+v, want not_available", result)
	}

	f.ledger.AddQuantity(domain.CommoditySlaves, 2)
	result = f.market.Sell("TRADEPOST", domain.CommoditySlaves, 3)
	if result.OK || result.Reason != domain.ReasonInsufficientQuantity {
		t.Fatalf("result = %+v, want insufficient_quantity", result)
	}
	if held := f.ledger.Quantity(domain.CommoditySlaves); held != 2 {
		t.Fatalf("held = %d after refusal, want 2", held)
	}
}

func TestSell_GoldAchievement(t *testing.T) {
	f := newTestMarket(t, 100)

	bought := f.market.Buy("TRADEPOST", domain.CommodityGold, 1)
	if !bought.OK {
		t.Fatalf("refused: %s", bought.Reason)
	}
	if bought.NewAchievement != "" {
		t.Errorf("buying gold granted %q, want nothing", bought.NewAchievement)
	}

	sold := f.market.Sell("TRADEPOST", domain.CommodityGold, 1)
	if !sold.OK {
		t.Fatalf("refused: %s", sold.Reason)
	}
	if sold.NewAchievement != AchievementGoldTrader {
		t.Errorf("achievement = %q, want %q", sold.NewAchievement, AchievementGoldTrader)
	}
	if sold.CashAfter != 100 {
		t.Errorf("cash = %d after round trip, want 100", sold.CashAfter)
	}

	// Second gold sale grants nothing new.
	f.market.Buy("TRADEPOST", domain.CommodityGold, 1)
	again := f.market.Sell("TRADEPOST", domain.CommodityGold, 1)
	if again.NewAchievement != "" {
		t.Errorf("achievement = %q on repeat sale, want empty", again.NewAchievement)
	}
}
