package service

import (
	"log/slog"
	"time"

	"github.com/dmateos/startrader/internal/domain"
	"github.com/dmateos/startrader/internal/engine"
	"github.com/dmateos/startrader/internal/recorder"
	"github.com/google/uuid"
)

// TradeResponse is the outcome of a buy or sell order, refusals
// included.
type TradeResponse struct {
	OK             bool
	Reason         domain.Reason
	Location       string
	Commodity      domain.Commodity
	Quantity       int
	UnitPrice      int
	Total          int
	CashAfter      int
	NewAchievement string
}

// TradeService validates and executes buy/sell orders.
type TradeService struct {
	market   *engine.Market
	recorder recorder.Recorder
	notifier Notifier
	logger   *slog.Logger
}

// NewTradeService creates a TradeService. A nil notifier is tolerated.
func NewTradeService(market *engine.Market, rec recorder.Recorder, notifier Notifier, logger *slog.Logger) *TradeService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &TradeService{
		market:   market,
		recorder: rec,
		notifier: notifier,
		logger:   logger,
	}
}

// Buy executes a purchase. Validation failures (bad commodity name,
// non-positive quantity) are errors; trade refusals are ordinary
// responses with OK=false.
func (s *TradeService) Buy(location, commodity string, qty int) (*TradeResponse, error) {
	c, err := s.validate(commodity, qty)
	if err != nil {
		return nil, err
	}
	result := s.market.Buy(location, c, qty)
	s.finish("buy", result)
	return responseFrom(result), nil
}

// Sell executes a sale under the same validation rules as Buy.
func (s *TradeService) Sell(location, commodity string, qty int) (*TradeResponse, error) {
	c, err := s.validate(commodity, qty)
	if err != nil {
		return nil, err
	}
	result := s.market.Sell(location, c, qty)
	s.finish("sell", result)
	return responseFrom(result), nil
}

func (s *TradeService) validate(commodity string, qty int) (domain.Commodity, error) {
	if qty < 1 {
		return "", &domain.ValidationError{Message: "quantity must be >= 1"}
	}
	c, err := domain.ParseCommodity(commodity)
	if err != nil {
		return "", domain.ErrUnknownCommodity
	}
	return c, nil
}

// finish handles the non-fatal side channels of a completed order:
// audit recording, render notification, logging.
func (s *TradeService) finish(side string, result engine.TradeResult) {
	evt := &recorder.TradeEvent{
		ID:        uuid.NewString(),
		Turn:      s.market.Ledger().Turn(),
		Side:      side,
		Location:  result.Location,
		Commodity: string(result.Commodity),
		Quantity:  result.Quantity,
		UnitPrice: result.UnitPrice,
		Total:     result.Total,
		CashAfter: result.CashAfter,
		OK:        result.OK,
		Reason:    string(result.Reason),
		At:        time.Now(),
	}
	if err := s.recorder.RecordTrade(evt); err != nil {
		s.logger.Warn("trade not recorded", slog.String("error", err.Error()))
	}

	if result.OK {
		s.notifier.LedgerUpdated()
		s.logger.Info("trade executed",
			slog.String("side", side),
			slog.String("location", result.Location),
			slog.String("commodity", string(result.Commodity)),
			slog.Int("quantity", result.Quantity),
			slog.Int("total", result.Total),
		)
	} else {
		s.logger.Debug("trade refused",
			slog.String("side", side),
			slog.String("location", result.Location),
			slog.String("commodity", string(result.Commodity)),
			slog.String("reason", string(result.Reason)),
		)
	}
}

func responseFrom(result engine.TradeResult) *TradeResponse {
	return &TradeResponse{
		OK:             result.OK,
		Reason:         result.Reason,
		Location:       result.Location,
		Commodity:      result.Commodity,
		Quantity:       result.Quantity,
		UnitPrice:      result.UnitPrice,
		Total:          result.Total,
		CashAfter:      result.CashAfter,
		NewAchievement: result.NewAchievement,
	}
}
