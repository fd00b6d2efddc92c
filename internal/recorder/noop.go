package recorder

// Noop is a no-op Recorder used when SQLite is not configured.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) RecordTrade(_ *TradeEvent) error { return nil }
func (n *Noop) RecordTurn(_ *TurnEvent) error   { return nil }
func (n *Noop) Close() error                    { return nil }
