package engine

import (
	"github.com/dmateos/startrader/internal/catalog"
	"github.com/dmateos/startrader/internal/domain"
	"github.com/dmateos/startrader/internal/store"
)

// SelectActive re-rolls a location's active set and commits it: the new
// set replaces the board's, and commodities entering a set for the first
// time are seeded and recorded at the current turn. Each call is an
// independent re-roll.
func (m *Market) SelectActive(location string) []domain.Commodity {
	m.mu.Lock()
	defer m.mu.Unlock()
	rule, _ := m.catalog.Rule(location)
	return m.refreshLocationLocked(rule, m.ledger.Turn(), nil)
}

func (m *Market) selectActiveLocked(rule catalog.LocationRule) []domain.Commodity {
	set := append([]domain.Commodity(nil), rule.AlwaysAvailable...)

	var remaining []domain.Commodity
	for _, c := range rule.Candidates {
		if !rule.Pinned(c) {
			remaining = append(remaining, c)
		}
	}
	m.rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})

	take := catalog.MaxActive - len(set)
	if take < 0 {
		take = 0
	}
	take = min(take, len(remaining))
	return append(set, remaining[:take]...)
}

// refreshLocationLocked rolls a fresh active set for one location and
// commits it to the board, lazily seeding prices for commodities
// entering a set for the first time. Already-seeded prices are never
// re-seeded; they keep their stored value until the fluctuation step
// touches them. Pairs seeded this call are added to fresh when non-nil.
func (m *Market) refreshLocationLocked(rule catalog.LocationRule, turn int, fresh map[store.Pair]bool) []domain.Commodity {
	set := m.selectActiveLocked(rule)
	for _, c := range set {
		if m.prices.Seeded(rule.Name, c) {
			continue
		}
		price := m.seedLocked(rule, c)
		m.prices.SetPrice(rule.Name, c, price)
		m.history.Append(rule.Name, c, turn, price)
		if fresh != nil {
			fresh[store.Pair{Location: rule.Name, Commodity: c}] = true
		}
	}
	m.prices.SetActive(rule.Name, set)
	return set
}

// refreshMarketsLocked re-rolls every configured location's active set.
// The returned set names the pairs seeded this call, so the same turn's
// fluctuation pass can leave them at their fresh seed.
func (m *Market) refreshMarketsLocked() map[store.Pair]bool {
	turn := m.ledger.Turn()
	fresh := make(map[store.Pair]bool)
	for _, name := range m.catalog.Locations() {
		rule, _ := m.catalog.Rule(name)
		m.refreshLocationLocked(rule, turn, fresh)
	}
	return fresh
}
