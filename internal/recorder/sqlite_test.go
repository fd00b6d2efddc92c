package recorder

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	rec, err := NewSQLite(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	t.Cleanup(func() { rec.Close() })
	return rec
}

func TestSQLite_RecordTrade(t *testing.T) {
	rec := newTestSQLite(t)

	events := []*TradeEvent{
		{
			ID: "t1", Turn: 1, Side: "buy", Location: "EARTH", Commodity: "ore",
			Quantity: 5, UnitPrice: 100, Total: 500, CashAfter: 500, OK: true,
			At: time.Now(),
		},
		{
			ID: "t2", Turn: 1, Side: "sell", Location: "EARTH", Commodity: "ore",
			Quantity: 99, OK: false, Reason: "insufficient_quantity",
			At: time.Now(),
		},
	}
	for _, evt := range events {
		if err := rec.RecordTrade(evt); err != nil {
			t.Fatalf("record %s: %v", evt.ID, err)
		}
	}

	var count int
	if err := rec.db.QueryRow("SELECT COUNT(*) FROM trades").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("trades = %d, want 2", count)
	}

	var side, reason string
	var ok int
	err := rec.db.QueryRow("SELECT side, ok, reason FROM trades WHERE id = ?", "t2").
		Scan(&side, &ok, &reason)
	if err != nil {
		t.Fatalf("query t2: %v", err)
	}
	if side != "sell" || ok != 0 || reason != "insufficient_quantity" {
		t.Fatalf("t2 = %s/%d/%s", side, ok, reason)
	}
}

func TestSQLite_RecordTurn(t *testing.T) {
	rec := newTestSQLite(t)

	evt := &TurnEvent{
		ID: "u1", Turn: 3, Location: "MARS", CashIncome: 85, SlavesGained: 2,
		At: time.Now(),
	}
	if err := rec.RecordTurn(evt); err != nil {
		t.Fatalf("record: %v", err)
	}

	var location string
	var income int
	err := rec.db.QueryRow("SELECT location, cash_income FROM turns WHERE id = ?", "u1").
		Scan(&location, &income)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if location != "MARS" || income != 85 {
		t.Fatalf("turn = %s/%d", location, income)
	}
}

func TestSQLite_DuplicateIDFails(t *testing.T) {
	rec := newTestSQLite(t)

	evt := &TradeEvent{ID: "dup", Side: "buy", At: time.Now()}
	if err := rec.RecordTrade(evt); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := rec.RecordTrade(evt); err == nil {
		t.Fatal("expected primary key violation on duplicate ID")
	}
}
