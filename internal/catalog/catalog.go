// Package catalog holds the static market configuration: commodity price
// ranges, fluctuation bands, per-location trade rules, and the global
// balance constants. The catalog is immutable once loaded.
package catalog

import (
	"strings"

	"github.com/dmateos/startrader/internal/domain"
)

// MaxActive caps a location's per-turn active set, pins included. The
// loader rejects rules that pin more than this; the selector never
// exceeds it.
const MaxActive = 3

// CommoditySpec describes one commodity's pricing behaviour before any
// location multiplier is applied.
type CommoditySpec struct {
	BaseRange domain.PriceRange      `yaml:"base_range"`
	Band      domain.FluctuationBand `yaml:"band"`
}

// LocationRule is the immutable per-location trade configuration.
type LocationRule struct {
	Name       string `yaml:"name"`
	FuelCost   int    `yaml:"fuel_cost"`
	UnlockCost int    `yaml:"unlock_cost"`

	// Candidates is the pool the active-set selector draws from each turn.
	Candidates []domain.Commodity `yaml:"candidates"`

	// AlwaysAvailable members are pinned into every turn's active set.
	AlwaysAvailable []domain.Commodity `yaml:"always_available"`

	// Multiplier scales seeded prices and clamp bounds for every
	// commodity at this location, unless overridden per commodity.
	Multiplier float64 `yaml:"multiplier"`

	// MultiplierOverrides replaces Multiplier for specific commodities.
	MultiplierOverrides map[domain.Commodity]float64 `yaml:"multiplier_overrides"`

	// SpecialRanges pins a commodity to a fixed price range at this
	// location. A special range ignores the base range and multiplier
	// entirely, for both seeding and clamping.
	SpecialRanges map[domain.Commodity]domain.PriceRange `yaml:"special_ranges"`
}

// Pinned reports whether the commodity is always available here.
func (r LocationRule) Pinned(c domain.Commodity) bool {
	for _, p := range r.AlwaysAvailable {
		if p == c {
			return true
		}
	}
	return false
}

// Candidate reports whether the commodity may appear in this location's
// active set at all.
func (r LocationRule) Candidate(c domain.Commodity) bool {
	for _, cand := range r.Candidates {
		if cand == c {
			return true
		}
	}
	return false
}

// MultiplierFor returns the effective price multiplier for a commodity.
func (r LocationRule) MultiplierFor(c domain.Commodity) float64 {
	if m, ok := r.MultiplierOverrides[c]; ok {
		return m
	}
	return r.Multiplier
}

// SpecialRange returns the fixed range for a commodity, if configured.
func (r LocationRule) SpecialRange(c domain.Commodity) (domain.PriceRange, bool) {
	pr, ok := r.SpecialRanges[c]
	return pr, ok
}

// Balance holds the global tuning constants for the economy.
type Balance struct {
	StartingCash  int    `yaml:"starting_cash"`
	StartingFuel  int    `yaml:"starting_fuel"`
	StartLocation string `yaml:"start_location"`
	BaseCapacity  int    `yaml:"base_capacity"`

	// Per-turn cash income rates for deployed units.
	RobotIncome    int `yaml:"robot_income"`
	MerchantIncome int `yaml:"merchant_income"`
	ArchonIncome   int `yaml:"archon_income"`

	// Per-turn slave output rates for deployed units.
	WeaponsOutput int `yaml:"weapons_output"`
	ArmyOutput    int `yaml:"army_output"`
	ArchonOutput  int `yaml:"archon_output"`

	// Per-held-unit capacity bonuses.
	RobotCapacity    int `yaml:"robot_capacity"`
	MerchantCapacity int `yaml:"merchant_capacity"`
	ArchonCapacity   int `yaml:"archon_capacity"`
}

// Catalog is the loaded, immutable market configuration.
type Catalog struct {
	commodities map[domain.Commodity]CommoditySpec
	locations   map[string]LocationRule
	names       []string // canonical location names, stable order
	balance     Balance
}

// Canonical normalizes a location name to its single internal casing.
// Every lookup and every key stored by the engine goes through this, so
// internal logic never branches on casing.
func Canonical(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// DefaultRule is returned for locations the catalog does not know.
// Unknown locations degrade to permissive defaults instead of failing so
// the UI stays usable against partial configuration: fuel cost 1, neutral
// multiplier, and an empty candidate set (nothing tradeable).
func DefaultRule(name string) LocationRule {
	return LocationRule{
		Name:       Canonical(name),
		FuelCost:   1,
		Multiplier: 1.0,
	}
}

// Commodity returns the pricing spec for a commodity. Unknown commodities
// report ok=false; the ten known kinds are always present.
func (c *Catalog) Commodity(comm domain.Commodity) (CommoditySpec, bool) {
	spec, ok := c.commodities[comm]
	return spec, ok
}

// Rule returns the trade rule for a location (case-insensitive). The
// second return value reports whether the location is configured; when it
// is not, the permissive DefaultRule is returned.
func (c *Catalog) Rule(name string) (LocationRule, bool) {
	key := Canonical(name)
	rule, ok := c.locations[key]
	if !ok {
		return DefaultRule(key), false
	}
	return rule, true
}

// Locations returns every configured location's canonical name in a
// stable order.
func (c *Catalog) Locations() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Balance returns the global tuning constants.
func (c *Catalog) Balance() Balance {
	return c.balance
}
