package handler

import (
	"net/http"

	"github.com/dmateos/startrader/internal/service"
	"github.com/go-chi/chi/v5"
)

// UnitHandler handles HTTP requests for unit deployment and income.
type UnitHandler struct {
	unitSvc *service.UnitService
}

// NewUnitHandler creates a new UnitHandler.
func NewUnitHandler(unitSvc *service.UnitService) *UnitHandler {
	return &UnitHandler{unitSvc: unitSvc}
}

// deployRequest is the JSON request body for POST /units/deploy.
type deployRequest struct {
	Kind string `json:"kind"`
}

// deployResponse is the JSON response for a deployment.
type deployResponse struct {
	Kind     string `json:"kind"`
	Deployed int    `json:"deployed"`
	Shed     int    `json:"shed"`
}

// incomeResponse is the JSON response for GET /units/{kind}/income.
type incomeResponse struct {
	Kind          string `json:"kind"`
	Deployed      int    `json:"deployed"`
	CashPerTurn   int    `json:"cash_per_turn"`
	SlavesPerTurn int    `json:"slaves_per_turn"`
}

// Deploy handles POST /units/deploy.
func (h *UnitHandler) Deploy(w http.ResponseWriter, r *http.Request) {
	var req deployRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.unitSvc.Deploy(req.Kind)
	if err != nil {
		mapServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, deployResponse{
		Kind:     string(result.Kind),
		Deployed: result.Deployed,
		Shed:     result.Shed,
	})
}

// Income handles GET /units/{kind}/income.
func (h *UnitHandler) Income(w http.ResponseWriter, r *http.Request) {
	income, err := h.unitSvc.Income(chi.URLParam(r, "kind"))
	if err != nil {
		mapServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, incomeResponse{
		Kind:          string(income.Kind),
		Deployed:      income.Deployed,
		CashPerTurn:   income.CashPerTurn,
		SlavesPerTurn: income.SlavesPerTurn,
	})
}
