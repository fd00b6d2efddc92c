package service

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/dmateos/startrader/internal/catalog"
	"github.com/dmateos/startrader/internal/engine"
	"github.com/dmateos/startrader/internal/inventory"
	"github.com/dmateos/startrader/internal/recorder"
	"github.com/dmateos/startrader/internal/score"
	"github.com/dmateos/startrader/internal/store"
)

// testUniverseYAML pins every candidate with a degenerate price range so
// service tests see a fixed, fully predictable market.
const testUniverseYAML = `
balance:
  starting_cash: 0
  starting_fuel: 5
  start_location: tradepost
  base_capacity: 10
  robot_income: 10
  merchant_income: 25
  archon_income: 40
  weapons_output: 1
  army_output: 3
  archon_output: 2
  robot_capacity: 5
  merchant_capacity: 15
  archon_capacity: 15
locations:
  - name: tradepost
    fuel_cost: 2
    unlock_cost: 3
    candidates: [slaves, gold, fuel]
    always_available: [slaves, gold, fuel]
    special_ranges:
      slaves: {min: 10, max: 10}
      gold: {min: 100, max: 100}
      fuel: {min: 2, max: 2}
`

type fakeRecorder struct {
	trades []*recorder.TradeEvent
	turns  []*recorder.TurnEvent
}

func (r *fakeRecorder) RecordTrade(evt *recorder.TradeEvent) error {
	r.trades = append(r.trades, evt)
	return nil
}

func (r *fakeRecorder) RecordTurn(evt *recorder.TurnEvent) error {
	r.turns = append(r.turns, evt)
	return nil
}

func (r *fakeRecorder) Close() error { return nil }

type fakeNotifier struct {
	marketUpdates []string
	ledgerUpdates int
}

func (n *fakeNotifier) MarketUpdated(location string) {
	n.marketUpdates = append(n.marketUpdates, location)
}

func (n *fakeNotifier) LedgerUpdated() {
	n.ledgerUpdates++
}

type fixture struct {
	market   *engine.Market
	ledger   *store.Ledger
	inv      *inventory.MemoryManager
	recorder *fakeRecorder
	notifier *fakeNotifier
	logger   *slog.Logger
}

func newFixture(t *testing.T, cash int) *fixture {
	t.Helper()
	cat, err := catalog.Parse([]byte(testUniverseYAML))
	if err != nil {
		t.Fatalf("parse test universe: %v", err)
	}
	ledger := store.NewLedger(cash, "TRADEPOST")
	inv := inventory.NewMemoryManager()
	market := engine.NewMarket(
		cat,
		ledger,
		store.NewPriceBoard(),
		store.NewHistory(),
		inv,
		score.NewMemory(),
		rand.New(rand.NewSource(1)),
	)
	return &fixture{
		market:   market,
		ledger:   ledger,
		inv:      inv,
		recorder: &fakeRecorder{},
		notifier: &fakeNotifier{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
