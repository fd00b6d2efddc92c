package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLite persists events to a SQLite database.
type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLite opens (or creates) the database and runs migrations.
func NewSQLite(dbPath string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the session's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLite{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLite) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trades (
			id          TEXT PRIMARY KEY,
			turn        INTEGER NOT NULL,
			side        TEXT NOT NULL,
			location    TEXT NOT NULL,
			commodity   TEXT NOT NULL,
			quantity    INTEGER NOT NULL,
			unit_price  INTEGER NOT NULL,
			total       INTEGER NOT NULL,
			cash_after  INTEGER NOT NULL,
			ok          INTEGER NOT NULL,
			reason      TEXT,
			at          INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS turns (
			id            TEXT PRIMARY KEY,
			turn          INTEGER NOT NULL,
			location      TEXT NOT NULL,
			cash_income   INTEGER NOT NULL,
			slaves_gained INTEGER NOT NULL,
			at            INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_turn ON trades(turn)`,
		`CREATE INDEX IF NOT EXISTS idx_turns_turn ON turns(turn)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// RecordTrade inserts a trade event.
func (r *SQLite) RecordTrade(evt *TradeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ok := 0
	if evt.OK {
		ok = 1
	}
	_, err := r.db.Exec(
		`INSERT INTO trades (id, turn, side, location, commodity, quantity,
			unit_price, total, cash_after, ok, reason, at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		evt.ID, evt.Turn, evt.Side, evt.Location, evt.Commodity, evt.Quantity,
		evt.UnitPrice, evt.Total, evt.CashAfter, ok, evt.Reason, evt.At.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert trade: %w", err)
	}
	return nil
}

// RecordTurn inserts a turn event.
func (r *SQLite) RecordTurn(evt *TurnEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(
		`INSERT INTO turns (id, turn, location, cash_income, slaves_gained, at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		evt.ID, evt.Turn, evt.Location, evt.CashIncome, evt.SlavesGained, evt.At.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert turn: %w", err)
	}
	return nil
}

// Close closes the database.
func (r *SQLite) Close() error {
	return r.db.Close()
}
