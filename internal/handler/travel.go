package handler

import (
	"net/http"

	"github.com/dmateos/startrader/internal/service"
	"github.com/go-chi/chi/v5"
)

// TravelHandler handles HTTP requests for travel and turn advancement.
type TravelHandler struct {
	travelSvc *service.TravelService
}

// NewTravelHandler creates a new TravelHandler.
func NewTravelHandler(travelSvc *service.TravelService) *TravelHandler {
	return &TravelHandler{travelSvc: travelSvc}
}

// travelCheckResponse is the JSON response for GET /travel/{destination}.
type travelCheckResponse struct {
	Destination string `json:"destination"`
	Known       bool   `json:"known"`
	FuelCost    int    `json:"fuel_cost"`
	FuelHeld    int    `json:"fuel_held"`
	CanTravel   bool   `json:"can_travel"`
}

// travelRequest is the JSON request body for POST /travel.
type travelRequest struct {
	Destination string `json:"destination"`
}

// turnResponse is the JSON response for a turn advance.
type turnResponse struct {
	Turn         int    `json:"turn"`
	Location     string `json:"location"`
	CashIncome   int    `json:"cash_income"`
	SlavesGained int    `json:"slaves_gained"`
	FuelSpent    int    `json:"fuel_spent"`
}

// Check handles GET /travel/{destination}.
func (h *TravelHandler) Check(w http.ResponseWriter, r *http.Request) {
	check := h.travelSvc.CanTravelTo(chi.URLParam(r, "destination"))
	WriteJSON(w, http.StatusOK, travelCheckResponse{
		Destination: check.Destination,
		Known:       check.Known,
		FuelCost:    check.FuelCost,
		FuelHeld:    check.FuelHeld,
		CanTravel:   check.CanTravel,
	})
}

// Travel handles POST /travel.
func (h *TravelHandler) Travel(w http.ResponseWriter, r *http.Request) {
	var req travelRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if req.Destination == "" {
		WriteError(w, http.StatusBadRequest, "validation_error", "destination is required")
		return
	}

	turn, err := h.travelSvc.Travel(req.Destination)
	if err != nil {
		mapServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, turnFrom(turn))
}

// Wait handles POST /turn/wait — advance the turn without moving.
func (h *TravelHandler) Wait(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, turnFrom(h.travelSvc.Wait()))
}

func turnFrom(t *service.TurnResponse) turnResponse {
	return turnResponse{
		Turn:         t.Turn,
		Location:     t.Location,
		CashIncome:   t.CashIncome,
		SlavesGained: t.SlavesGained,
		FuelSpent:    t.FuelSpent,
	}
}
