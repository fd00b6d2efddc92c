package service

import (
	"log/slog"

	"github.com/dmateos/startrader/internal/domain"
	"github.com/dmateos/startrader/internal/engine"
)

// DeployResponse reports the outcome of a unit deployment.
type DeployResponse struct {
	Kind     domain.UnitKind
	Deployed int
	Shed     int
}

// IncomeResponse reports a unit kind's per-turn yield.
type IncomeResponse struct {
	Kind          domain.UnitKind
	Deployed      int
	CashPerTurn   int
	SlavesPerTurn int
}

// UnitService handles unit deployment and income queries.
type UnitService struct {
	market   *engine.Market
	notifier Notifier
	logger   *slog.Logger
}

// NewUnitService creates a UnitService. A nil notifier is tolerated.
func NewUnitService(market *engine.Market, notifier Notifier, logger *slog.Logger) *UnitService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &UnitService{
		market:   market,
		notifier: notifier,
		logger:   logger,
	}
}

// Deploy converts one held unit into a deployed income source.
func (s *UnitService) Deploy(kind string) (*DeployResponse, error) {
	k, err := domain.ParseUnitKind(kind)
	if err != nil {
		return nil, domain.ErrUnknownUnitKind
	}
	report, err := s.market.Deploy(k)
	if err != nil {
		return nil, err
	}

	s.notifier.LedgerUpdated()
	s.logger.Info("unit deployed",
		slog.String("kind", string(k)),
		slog.Int("deployed", report.Deployed),
		slog.Int("shed", report.Shed),
	)
	return &DeployResponse{
		Kind:     report.Kind,
		Deployed: report.Deployed,
		Shed:     report.Shed,
	}, nil
}

// Income returns the total per-turn yield of a kind's deployed units.
func (s *UnitService) Income(kind string) (*IncomeResponse, error) {
	k, err := domain.ParseUnitKind(kind)
	if err != nil {
		return nil, domain.ErrUnknownUnitKind
	}
	income := s.market.DeployedIncome(k)
	return &IncomeResponse{
		Kind:          k,
		Deployed:      s.market.Ledger().Deployed(k),
		CashPerTurn:   income.CashPerTurn,
		SlavesPerTurn: income.SlavesPerTurn,
	}, nil
}
