package engine

import (
	"github.com/dmateos/startrader/internal/catalog"
	"github.com/dmateos/startrader/internal/domain"
	"github.com/dmateos/startrader/internal/store"
)

// seedLocked draws an initial price for a pair. A location's special
// fixed range wins outright; otherwise the draw comes from the
// commodity's base range scaled by the effective location multiplier.
// The result is floored to an integer and never negative.
func (m *Market) seedLocked(rule catalog.LocationRule, c domain.Commodity) int {
	if special, ok := rule.SpecialRange(c); ok {
		return int(m.uniform(special))
	}
	spec, ok := m.catalog.Commodity(c)
	if !ok {
		return 0
	}
	price := int(m.uniform(spec.BaseRange) * rule.MultiplierFor(c))
	if price < 0 {
		price = 0
	}
	return price
}

// uniform draws a float uniformly from [r.Min, r.Max).
func (m *Market) uniform(r domain.PriceRange) float64 {
	lo, hi := float64(r.Min), float64(r.Max)
	return lo + m.rng.Float64()*(hi-lo)
}

// bounds returns the hard clamp interval for a pair: [0.5·min·mult,
// 1.5·max·mult] over the base range, or [0.5·min, 1.5·max] over the
// special range when one is configured (special ranges ignore
// multipliers, for clamping as for seeding).
func (m *Market) bounds(rule catalog.LocationRule, c domain.Commodity) (int, int) {
	r, mult := m.effectiveRange(rule, c)
	floor := int(0.5 * float64(r.Min) * mult)
	ceiling := int(1.5 * float64(r.Max) * mult)
	if floor < 0 {
		floor = 0
	}
	if ceiling < floor {
		ceiling = floor
	}
	return floor, ceiling
}

func (m *Market) effectiveRange(rule catalog.LocationRule, c domain.Commodity) (domain.PriceRange, float64) {
	if special, ok := rule.SpecialRange(c); ok {
		return special, 1.0
	}
	spec, ok := m.catalog.Commodity(c)
	if !ok {
		return domain.PriceRange{}, 1.0
	}
	return spec.BaseRange, rule.MultiplierFor(c)
}

// fluctuateLocked applies one turn's random walk step to a price: a
// magnitude drawn from the commodity's band, a coin-flip sign, floored
// to an integer and clamped to the pair's hard bounds.
func (m *Market) fluctuateLocked(rule catalog.LocationRule, c domain.Commodity, current int) int {
	spec, ok := m.catalog.Commodity(c)
	if !ok {
		return current
	}
	lo, hi := spec.Band.Rates()
	magnitude := lo + m.rng.Float64()*(hi-lo)
	sign := 1.0
	if m.rng.Intn(2) == 0 {
		sign = -1.0
	}

	next := int(float64(current) + float64(current)*magnitude*sign)
	floor, ceiling := m.bounds(rule, c)
	if next < floor {
		next = floor
	}
	if next > ceiling {
		next = ceiling
	}
	return next
}

// fluctuateAllLocked walks every currently active pair's price once.
// Pairs seeded during this turn's refresh keep their fresh seed; inactive
// pairs keep their stored price untouched, however stale.
func (m *Market) fluctuateAllLocked(fresh map[store.Pair]bool) {
	turn := m.ledger.Turn()
	for _, pair := range m.prices.ActivePairs() {
		if fresh[pair] {
			continue
		}
		current, ok := m.prices.Price(pair.Location, pair.Commodity)
		if !ok {
			continue
		}
		rule, _ := m.catalog.Rule(pair.Location)
		next := m.fluctuateLocked(rule, pair.Commodity, current)
		m.prices.SetPrice(pair.Location, pair.Commodity, next)
		m.history.Append(pair.Location, pair.Commodity, turn, next)
	}
}
