package handler

import (
	"net/http"

	"github.com/dmateos/startrader/internal/service"
)

// TradeHandler handles HTTP requests for buy/sell orders.
type TradeHandler struct {
	tradeSvc *service.TradeService
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeSvc *service.TradeService) *TradeHandler {
	return &TradeHandler{tradeSvc: tradeSvc}
}

// tradeRequest is the JSON request body for POST /trades/buy and /trades/sell.
type tradeRequest struct {
	Location  string `json:"location"`
	Commodity string `json:"commodity"`
	Quantity  int    `json:"quantity"`
}

// tradeResponse is the JSON response for a trade. Refused trades come
// back 200 with ok=false and a reason; the UI renders them inline.
type tradeResponse struct {
	OK             bool   `json:"ok"`
	Reason         string `json:"reason,omitempty"`
	Location       string `json:"location"`
	Commodity      string `json:"commodity"`
	Quantity       int    `json:"quantity"`
	UnitPrice      int    `json:"unit_price,omitempty"`
	Total          int    `json:"total,omitempty"`
	CashAfter      int    `json:"cash_after"`
	NewAchievement string `json:"new_achievement,omitempty"`
}

// Buy handles POST /trades/buy.
func (h *TradeHandler) Buy(w http.ResponseWriter, r *http.Request) {
	h.trade(w, r, h.tradeSvc.Buy)
}

// Sell handles POST /trades/sell.
func (h *TradeHandler) Sell(w http.ResponseWriter, r *http.Request) {
	h.trade(w, r, h.tradeSvc.Sell)
}

func (h *TradeHandler) trade(
	w http.ResponseWriter,
	r *http.Request,
	execute func(location, commodity string, qty int) (*service.TradeResponse, error),
) {
	var req tradeRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := execute(req.Location, req.Commodity, req.Quantity)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, tradeResponse{
		OK:             result.OK,
		Reason:         string(result.Reason),
		Location:       result.Location,
		Commodity:      string(result.Commodity),
		Quantity:       result.Quantity,
		UnitPrice:      result.UnitPrice,
		Total:          result.Total,
		CashAfter:      result.CashAfter,
		NewAchievement: result.NewAchievement,
	})
}
