package catalog

import (
	"testing"

	"github.com/dmateos/startrader/internal/domain"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"earth", "EARTH"},
		{"Earth", "EARTH"},
		{"EARTH", "EARTH"},
		{"  mars  ", "MARS"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Canonical(tt.in); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRule_CaseInsensitiveLookup(t *testing.T) {
	cat := Default()

	for _, name := range []string{"earth", "Earth", "EARTH", " earth "} {
		rule, known := cat.Rule(name)
		if !known {
			t.Fatalf("Rule(%q): expected known location", name)
		}
		if rule.Name != "EARTH" {
			t.Fatalf("Rule(%q): name = %q, want EARTH", name, rule.Name)
		}
	}
}

func TestRule_UnknownLocationDegradesToDefaults(t *testing.T) {
	cat := Default()

	rule, known := cat.Rule("NIBIRU")
	if known {
		t.Fatal("expected unknown location")
	}
	if rule.FuelCost != 1 {
		t.Errorf("fuel cost = %d, want 1", rule.FuelCost)
	}
	if rule.Multiplier != 1.0 {
		t.Errorf("multiplier = %v, want 1.0", rule.Multiplier)
	}
	if len(rule.Candidates) != 0 {
		t.Errorf("candidates = %v, want empty", rule.Candidates)
	}
	if rule.UnlockCost != 0 {
		t.Errorf("unlock cost = %d, want 0", rule.UnlockCost)
	}
}

func TestRule_MultiplierOverride(t *testing.T) {
	cat := Default()

	rule, _ := cat.Rule("MARS")
	if got := rule.MultiplierFor(domain.CommoditySlaves); got != 2.0 {
		t.Errorf("MARS slaves multiplier = %v, want 2.0", got)
	}
	if got := rule.MultiplierFor(domain.CommodityOre); got != 1.2 {
		t.Errorf("MARS ore multiplier = %v, want 1.2", got)
	}
}

func TestRule_SpecialRange(t *testing.T) {
	cat := Default()

	rule, _ := cat.Rule("MERCURY")
	pr, ok := rule.SpecialRange(domain.CommodityGold)
	if !ok {
		t.Fatal("expected special range for MERCURY gold")
	}
	if pr.Min != 500 || pr.Max != 1000 {
		t.Errorf("special range = [%d, %d], want [500, 1000]", pr.Min, pr.Max)
	}
	if _, ok := rule.SpecialRange(domain.CommodityOre); ok {
		t.Error("unexpected special range for MERCURY ore")
	}
}

func TestRule_PinnedAndCandidate(t *testing.T) {
	cat := Default()

	rule, _ := cat.Rule("VENUS")
	if !rule.Pinned(domain.CommodityExotic) {
		t.Error("VENUS exotic should be pinned")
	}
	if rule.Pinned(domain.CommodityGold) {
		t.Error("VENUS gold should not be pinned")
	}
	if !rule.Candidate(domain.CommodityGold) {
		t.Error("VENUS gold should be a candidate")
	}
	if rule.Candidate(domain.CommodityFuel) {
		t.Error("VENUS fuel should not be a candidate")
	}
}

func TestCommodity_AllKindsPresent(t *testing.T) {
	cat := Default()

	for _, c := range domain.Commodities {
		spec, ok := cat.Commodity(c)
		if !ok {
			t.Fatalf("missing commodity spec for %s", c)
		}
		if !spec.BaseRange.Valid() {
			t.Errorf("%s: invalid base range [%d, %d]", c, spec.BaseRange.Min, spec.BaseRange.Max)
		}
	}
}

func TestLocations_StableOrder(t *testing.T) {
	cat := Default()

	first := cat.Locations()
	second := cat.Locations()
	if len(first) == 0 {
		t.Fatal("expected configured locations")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("location order not stable: %v vs %v", first, second)
		}
	}

	// Returned slice must be a copy.
	first[0] = "MUTATED"
	if cat.Locations()[0] == "MUTATED" {
		t.Error("Locations() leaked internal slice")
	}
}
