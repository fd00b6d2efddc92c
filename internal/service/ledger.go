package service

import (
	"github.com/dmateos/startrader/internal/domain"
	"github.com/dmateos/startrader/internal/engine"
)

// LedgerResponse is a full snapshot of the session state for the UI.
type LedgerResponse struct {
	Cash       int
	Location   string
	Turn       int
	Quantities map[domain.Commodity]int
	Deployed   map[domain.UnitKind]int
	Usage      int
	Capacity   int
}

// LedgerService answers session-state queries.
type LedgerService struct {
	market *engine.Market
}

// NewLedgerService creates a LedgerService.
func NewLedgerService(market *engine.Market) *LedgerService {
	return &LedgerService{market: market}
}

// GetLedger returns the current session snapshot with inventory
// accounting.
func (s *LedgerService) GetLedger() *LedgerResponse {
	snap := s.market.Ledger().Snapshot()
	return &LedgerResponse{
		Cash:       snap.Cash,
		Location:   snap.Location,
		Turn:       snap.Turn,
		Quantities: snap.Quantities,
		Deployed:   snap.Deployed,
		Usage:      s.market.Usage(),
		Capacity:   s.market.Capacity(),
	}
}

// Quantity returns the held amount of one commodity.
func (s *LedgerService) Quantity(commodity string) (int, error) {
	c, err := domain.ParseCommodity(commodity)
	if err != nil {
		return 0, domain.ErrUnknownCommodity
	}
	return s.market.Ledger().Quantity(c), nil
}
