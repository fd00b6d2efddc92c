package handler

import (
	"net/http"
	"strconv"

	"github.com/dmateos/startrader/internal/service"
	"github.com/go-chi/chi/v5"
)

// MarketHandler handles HTTP requests for market queries.
type MarketHandler struct {
	marketSvc *service.MarketService
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketSvc *service.MarketService) *MarketHandler {
	return &MarketHandler{marketSvc: marketSvc}
}

// listingResponse is one tradeable commodity in a market response.
type listingResponse struct {
	Commodity string `json:"commodity"`
	Price     int    `json:"price"`
}

// marketResponse is the JSON response for GET /locations/{location}/market.
type marketResponse struct {
	Location   string            `json:"location"`
	Known      bool              `json:"known"`
	FuelCost   int               `json:"fuel_cost"`
	UnlockCost int               `json:"unlock_cost"`
	Listings   []listingResponse `json:"listings"`
}

// priceResponse is the JSON response for GET /locations/{location}/price/{commodity}.
type priceResponse struct {
	Location  string `json:"location"`
	Commodity string `json:"commodity"`
	Price     *int   `json:"price"`
	Active    bool   `json:"active"`
}

// historyPointResponse is one recorded price point.
type historyPointResponse struct {
	Turn  int `json:"turn"`
	Price int `json:"price"`
}

// historyResponse is the JSON response for GET /locations/{location}/history/{commodity}.
type historyResponse struct {
	Location  string                 `json:"location"`
	Commodity string                 `json:"commodity"`
	From      int                    `json:"from"`
	To        int                    `json:"to"`
	Points    []historyPointResponse `json:"points"`
}

// ListLocations handles GET /locations.
func (h *MarketHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string][]string{"locations": h.marketSvc.Locations()})
}

// GetMarket handles GET /locations/{location}/market.
func (h *MarketHandler) GetMarket(w http.ResponseWriter, r *http.Request) {
	market := h.marketSvc.GetMarket(chi.URLParam(r, "location"))

	resp := marketResponse{
		Location:   market.Location,
		Known:      market.Known,
		FuelCost:   market.FuelCost,
		UnlockCost: market.UnlockCost,
		Listings:   make([]listingResponse, len(market.Listings)),
	}
	for i, l := range market.Listings {
		resp.Listings[i] = listingResponse{Commodity: string(l.Commodity), Price: l.Price}
	}
	WriteJSON(w, http.StatusOK, resp)
}

// GetPrice handles GET /locations/{location}/price/{commodity}.
func (h *MarketHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	price, err := h.marketSvc.GetPrice(chi.URLParam(r, "location"), chi.URLParam(r, "commodity"))
	if err != nil {
		mapServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, priceResponse{
		Location:  price.Location,
		Commodity: string(price.Commodity),
		Price:     price.Price,
		Active:    price.Active,
	})
}

// GetHistory handles GET /locations/{location}/history/{commodity}?from=N&to=N.
func (h *MarketHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	from, err := queryInt(r, "from", 0)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error", "from must be an integer")
		return
	}
	to, err := queryInt(r, "to", -1)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error", "to must be an integer")
		return
	}

	history, err := h.marketSvc.GetHistory(chi.URLParam(r, "location"), chi.URLParam(r, "commodity"), from, to)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	resp := historyResponse{
		Location:  history.Location,
		Commodity: string(history.Commodity),
		From:      history.From,
		To:        history.To,
		Points:    make([]historyPointResponse, len(history.Points)),
	}
	for i, p := range history.Points {
		resp.Points[i] = historyPointResponse{Turn: p.Turn, Price: p.Price}
	}
	WriteJSON(w, http.StatusOK, resp)
}

func queryInt(r *http.Request, key string, defaultVal int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(v)
}
