package service

import (
	"github.com/dmateos/startrader/internal/catalog"
	"github.com/dmateos/startrader/internal/domain"
	"github.com/dmateos/startrader/internal/engine"
	"github.com/dmateos/startrader/internal/store"
)

// PriceResponse is the response for a single pair's price query.
type PriceResponse struct {
	Location  string
	Commodity domain.Commodity
	Price     *int // nil when never seeded
	Active    bool
}

// Listing is one tradeable commodity with its current price.
type Listing struct {
	Commodity domain.Commodity
	Price     int
}

// MarketResponse is a location's current market snapshot.
type MarketResponse struct {
	Location   string
	Known      bool // false for unconfigured locations (permissive default)
	FuelCost   int
	UnlockCost int
	Listings   []Listing
}

// HistoryResponse is a pair's recorded price series over a turn range.
type HistoryResponse struct {
	Location  string
	Commodity domain.Commodity
	From      int
	To        int
	Points    []store.PricePoint
}

// MarketService answers read-only market queries.
type MarketService struct {
	market *engine.Market
}

// NewMarketService creates a MarketService.
func NewMarketService(market *engine.Market) *MarketService {
	return &MarketService{market: market}
}

// GetPrice returns the current price for a pair, active or not.
func (s *MarketService) GetPrice(location, commodity string) (*PriceResponse, error) {
	c, err := domain.ParseCommodity(commodity)
	if err != nil {
		return nil, domain.ErrUnknownCommodity
	}
	loc := catalog.Canonical(location)
	resp := &PriceResponse{
		Location:  loc,
		Commodity: c,
		Active:    s.market.IsAvailable(loc, c),
	}
	if price, ok := s.market.Price(loc, c); ok {
		resp.Price = &price
	}
	return resp, nil
}

// GetMarket returns a location's active commodities with their prices.
// Unknown locations yield an empty, known=false market rather than an
// error.
func (s *MarketService) GetMarket(location string) *MarketResponse {
	loc := catalog.Canonical(location)
	rule, known := s.market.Catalog().Rule(loc)

	resp := &MarketResponse{
		Location:   loc,
		Known:      known,
		FuelCost:   rule.FuelCost,
		UnlockCost: rule.UnlockCost,
		Listings:   []Listing{},
	}
	for _, c := range s.market.Available(loc) {
		price, ok := s.market.Price(loc, c)
		if !ok {
			continue
		}
		resp.Listings = append(resp.Listings, Listing{Commodity: c, Price: price})
	}
	return resp
}

// GetHistory returns the recorded price points for a pair with
// from ≤ turn ≤ to. A to of -1 means the current turn.
func (s *MarketService) GetHistory(location, commodity string, from, to int) (*HistoryResponse, error) {
	c, err := domain.ParseCommodity(commodity)
	if err != nil {
		return nil, domain.ErrUnknownCommodity
	}
	if from < 0 {
		return nil, &domain.ValidationError{Message: "from must be >= 0"}
	}
	if to < 0 {
		to = s.market.Ledger().Turn()
	}
	loc := catalog.Canonical(location)
	return &HistoryResponse{
		Location:  loc,
		Commodity: c,
		From:      from,
		To:        to,
		Points:    s.market.History(loc, c, from, to),
	}, nil
}

// Locations returns every configured location's canonical name.
func (s *MarketService) Locations() []string {
	return s.market.Catalog().Locations()
}
