package service

// Notifier is the render-trigger hook: after a mutating call the
// services poke it so the UI layer can refresh what it displays. The
// engine does not require one to exist; noopNotifier stands in when the
// hub is absent.
type Notifier interface {
	MarketUpdated(location string)
	LedgerUpdated()
}

type noopNotifier struct{}

func (noopNotifier) MarketUpdated(string) {}
func (noopNotifier) LedgerUpdated()       {}
