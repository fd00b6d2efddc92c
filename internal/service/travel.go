package service

import (
	"log/slog"
	"time"

	"github.com/dmateos/startrader/internal/catalog"
	"github.com/dmateos/startrader/internal/domain"
	"github.com/dmateos/startrader/internal/engine"
	"github.com/dmateos/startrader/internal/recorder"
	"github.com/google/uuid"
)

// TravelCheck is the response for a can-travel query.
type TravelCheck struct {
	Destination string
	Known       bool
	FuelCost    int
	FuelHeld    int
	CanTravel   bool
}

// TurnResponse reports the outcome of a turn advance.
type TurnResponse struct {
	Turn         int
	Location     string
	CashIncome   int
	SlavesGained int
	FuelSpent    int
}

// TravelService owns the travel feature: it validates and debits fuel,
// then drives the engine's turn transition. The fuel check is this
// layer's job; AdvanceTurn itself never looks at fuel.
type TravelService struct {
	market   *engine.Market
	recorder recorder.Recorder
	notifier Notifier
	logger   *slog.Logger
}

// NewTravelService creates a TravelService. A nil notifier is tolerated.
func NewTravelService(market *engine.Market, rec recorder.Recorder, notifier Notifier, logger *slog.Logger) *TravelService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &TravelService{
		market:   market,
		recorder: rec,
		notifier: notifier,
		logger:   logger,
	}
}

// CanTravelTo reports whether the player holds enough fuel to reach a
// destination. Unknown destinations use the permissive default rule
// (fuel cost 1) rather than failing.
func (s *TravelService) CanTravelTo(destination string) *TravelCheck {
	rule, known := s.market.Catalog().Rule(destination)
	held := s.market.Ledger().Quantity(domain.CommodityFuel)
	return &TravelCheck{
		Destination: catalog.Canonical(destination),
		Known:       known,
		FuelCost:    rule.FuelCost,
		FuelHeld:    held,
		CanTravel:   held >= rule.FuelCost,
	}
}

// Travel debits the destination's fuel cost and advances the turn into
// it. Returns ErrInsufficientFuel without advancing when fuel is short.
func (s *TravelService) Travel(destination string) (*TurnResponse, error) {
	rule, _ := s.market.Catalog().Rule(destination)
	if err := s.market.ConsumeFuel(rule.FuelCost); err != nil {
		return nil, err
	}
	resp := s.advance(destination)
	resp.FuelSpent = rule.FuelCost
	return resp, nil
}

// Wait advances the turn in place, with no fuel cost.
func (s *TravelService) Wait() *TurnResponse {
	return s.advance(s.market.Ledger().Location())
}

func (s *TravelService) advance(destination string) *TurnResponse {
	report := s.market.AdvanceTurn(destination)

	evt := &recorder.TurnEvent{
		ID:           uuid.NewString(),
		Turn:         report.Turn,
		Location:     report.Location,
		CashIncome:   report.CashIncome,
		SlavesGained: report.SlavesGained,
		At:           time.Now(),
	}
	if err := s.recorder.RecordTurn(evt); err != nil {
		s.logger.Warn("turn not recorded", slog.String("error", err.Error()))
	}

	s.notifier.MarketUpdated(report.Location)
	s.notifier.LedgerUpdated()
	s.logger.Info("turn advanced",
		slog.Int("turn", report.Turn),
		slog.String("location", report.Location),
		slog.Int("cash_income", report.CashIncome),
		slog.Int("slaves_gained", report.SlavesGained),
	)

	return &TurnResponse{
		Turn:         report.Turn,
		Location:     report.Location,
		CashIncome:   report.CashIncome,
		SlavesGained: report.SlavesGained,
	}
}
