package engine

import (
	"testing"

	"github.com/dmateos/startrader/internal/domain"
)

func TestSelectActive_CapAndPins(t *testing.T) {
	f := newDefaultMarket(1)
	cat := f.market.Catalog()

	rule, _ := cat.Rule("VENUS")
	for trial := 0; trial < 100; trial++ {
		set := f.market.SelectActive("VENUS")
		if len(set) == 0 || len(set) > 3 {
			t.Fatalf("trial %d: set size = %d, want 1..3", trial, len(set))
		}
		pinned := false
		for _, c := range set {
			if c == domain.CommodityExotic {
				pinned = true
			}
			if !rule.Candidate(c) {
				t.Fatalf("trial %d: %s is not a VENUS candidate", trial, c)
			}
		}
		if !pinned {
			t.Fatalf("trial %d: pinned exotic missing from %v", trial, set)
		}
	}
}

func TestSelectActive_NoDuplicates(t *testing.T) {
	f := newDefaultMarket(7)

	for trial := 0; trial < 100; trial++ {
		set := f.market.SelectActive("JUPITER")
		if len(set) != 3 {
			t.Fatalf("trial %d: set size = %d, want 3 (6 candidates, no pins)", trial, len(set))
		}
		seen := make(map[domain.Commodity]bool)
		for _, c := range set {
			if seen[c] {
				t.Fatalf("trial %d: duplicate %s in %v", trial, c, set)
			}
			seen[c] = true
		}
	}
}

func TestSelectActive_AllPinned(t *testing.T) {
	f := newTestMarket(t, 0)

	set := f.market.SelectActive("TRADEPOST")
	if len(set) != 3 {
		t.Fatalf("set = %v, want all three pinned commodities", set)
	}
	want := map[domain.Commodity]bool{
		domain.CommoditySlaves: true,
		domain.CommodityGold:   true,
		domain.CommodityFuel:   true,
	}
	for _, c := range set {
		if !want[c] {
			t.Fatalf("unexpected %s in %v", c, set)
		}
	}
}

func TestSelectActive_CommitsToBoard(t *testing.T) {
	f := newDefaultMarket(4)

	set := f.market.SelectActive("JUPITER")
	if len(set) == 0 {
		t.Fatal("expected a non-empty set")
	}

	for _, c := range set {
		if !f.market.IsAvailable("JUPITER", c) {
			t.Fatalf("%s in the rolled set but not on the board", c)
		}
		if _, ok := f.market.Price("JUPITER", c); !ok {
			t.Fatalf("%s in the rolled set but never seeded", c)
		}
	}
	if got := f.market.Available("JUPITER"); len(got) != len(set) {
		t.Fatalf("board has %v, rolled set was %v", got, set)
	}
}

func TestSelectActive_UnknownLocationIsEmpty(t *testing.T) {
	f := newDefaultMarket(1)

	if set := f.market.SelectActive("NIBIRU"); len(set) != 0 {
		t.Fatalf("set = %v, want empty for unknown location", set)
	}
}

func TestRefresh_FreshSeedsSkipSameTurnFluctuation(t *testing.T) {
	// The constructor seeds the first active sets; later re-rolls keep
	// seeding commodities entering a set for the first time.
	f := newDefaultMarket(3)
	m := f.market

	m.mu.Lock()
	defer m.mu.Unlock()

	// Advance the walk until a location rolls a not-yet-seeded commodity.
	for step := 0; step < 50; step++ {
		f.ledger.BeginTurn(f.ledger.Location())
		fresh := m.refreshMarketsLocked()
		if len(fresh) == 0 {
			m.fluctuateAllLocked(fresh)
			continue
		}

		before := make(map[string]int)
		for pair := range fresh {
			price, ok := m.prices.Price(pair.Location, pair.Commodity)
			if !ok {
				t.Fatalf("fresh pair %+v has no price", pair)
			}
			before[pair.Location+"/"+string(pair.Commodity)] = price
		}

		m.fluctuateAllLocked(fresh)

		for pair := range fresh {
			price, _ := m.prices.Price(pair.Location, pair.Commodity)
			if want := before[pair.Location+"/"+string(pair.Commodity)]; price != want {
				t.Fatalf("fresh pair %+v fluctuated same turn: %d -> %d", pair, want, price)
			}
		}
		return
	}
	t.Fatal("no freshly seeded pair appeared in 50 turns")
}
