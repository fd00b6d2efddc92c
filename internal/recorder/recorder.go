// Package recorder persists an append-only audit trail of trades and
// turns. It is an optional side channel: the engine state never depends
// on it, and the noop implementation is used when no database path is
// configured.
package recorder

import "time"

// TradeEvent records one buy or sell attempt, successful or refused.
type TradeEvent struct {
	ID        string
	Turn      int
	Side      string // "buy" or "sell"
	Location  string
	Commodity string
	Quantity  int
	UnitPrice int
	Total     int
	CashAfter int
	OK        bool
	Reason    string // empty when OK
	At        time.Time
}

// TurnEvent records one turn advance.
type TurnEvent struct {
	ID           string
	Turn         int
	Location     string
	CashIncome   int
	SlavesGained int
	At           time.Time
}

// Recorder persists historical events for later analysis.
type Recorder interface {
	RecordTrade(evt *TradeEvent) error
	RecordTurn(evt *TurnEvent) error
	Close() error
}
