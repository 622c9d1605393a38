package handler

import (
	"net/http"

	"github.com/zindanrpg/zindan-go/internal/api/apierr"
	"github.com/zindanrpg/zindan-go/internal/api/middleware"
	"github.com/zindanrpg/zindan-go/internal/api/response"
	"github.com/zindanrpg/zindan-go/internal/services/energy"
)

// EnergyHandler handles the energy endpoints
type EnergyHandler struct {
	energyService *energy.Service
}

// NewEnergyHandler creates a new energy handler
func NewEnergyHandler(energyService *energy.Service) *EnergyHandler {
	return &EnergyHandler{
		energyService: energyService,
	}
}

// Status handles GET /api/v1/energy/status
func (h *EnergyHandler) Status(w http.ResponseWriter, r *http.Request) {
	playerID := middleware.MustGetPlayerID(r.Context())

	status, err := h.energyService.Status(r.Context(), playerID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EnergyStatusFromStatus(status))
}
