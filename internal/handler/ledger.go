package handler

import (
	"net/http"

	"github.com/dmateos/startrader/internal/service"
	"github.com/go-chi/chi/v5"
)

// LedgerHandler handles HTTP requests for session state queries.
type LedgerHandler struct {
	ledgerSvc *service.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// ledgerResponse is the JSON response for GET /ledger.
type ledgerResponse struct {
	Cash       int            `json:"cash"`
	Location   string         `json:"location"`
	Turn       int            `json:"turn"`
	Quantities map[string]int `json:"quantities"`
	Deployed   map[string]int `json:"deployed"`
	Usage      int            `json:"usage"`
	Capacity   int            `json:"capacity"`
}

// quantityResponse is the JSON response for GET /ledger/quantity/{commodity}.
type quantityResponse struct {
	Commodity string `json:"commodity"`
	Quantity  int    `json:"quantity"`
}

// GetLedger handles GET /ledger.
func (h *LedgerHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	snap := h.ledgerSvc.GetLedger()

	quantities := make(map[string]int, len(snap.Quantities))
	for c, q := range snap.Quantities {
		quantities[string(c)] = q
	}
	deployed := make(map[string]int, len(snap.Deployed))
	for k, n := range snap.Deployed {
		deployed[string(k)] = n
	}

	WriteJSON(w, http.StatusOK, ledgerResponse{
		Cash:       snap.Cash,
		Location:   snap.Location,
		Turn:       snap.Turn,
		Quantities: quantities,
		Deployed:   deployed,
		Usage:      snap.Usage,
		Capacity:   snap.Capacity,
	})
}

// GetQuantity handles GET /ledger/quantity/{commodity}.
func (h *LedgerHandler) GetQuantity(w http.ResponseWriter, r *http.Request) {
	commodity := chi.URLParam(r, "commodity")
	qty, err := h.ledgerSvc.Quantity(commodity)
	if err != nil {
		mapServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, quantityResponse{Commodity: commodity, Quantity: qty})
}
