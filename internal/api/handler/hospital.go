package handler

import (
	"encoding/json"
	"net/http"

	"github.com/zindanrpg/zindan-go/internal/api/apierr"
	"github.com/zindanrpg/zindan-go/internal/api/middleware"
	"github.com/zindanrpg/zindan-go/internal/api/request"
	"github.com/zindanrpg/zindan-go/internal/api/response"
	"github.com/zindanrpg/zindan-go/internal/services/hospital"
)

// HospitalHandler handles the hospital admit/status/release endpoints
type HospitalHandler struct {
	hospitalService *hospital.Service
}

// NewHospitalHandler creates a new hospital handler
func NewHospitalHandler(hospitalService *hospital.Service) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

// Admit handles POST /api/v1/hospital-admit
func (h *HospitalHandler) Admit(w http.ResponseWriter, r *http.Request) {
	var req request.AdmitRequest
	// A body that fails to parse counts as empty; every field defaults
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = request.AdmitRequest{}
	}

	params := hospital.DefaultAdmitParams()
	if req.DurationMinutes != nil {
		params.DurationMinutes = *req.DurationMinutes
	}
	if req.Reason != nil {
		params.Reason = *req.Reason
	}

	playerID := middleware.MustGetPlayerID(r.Context())
	result, err := h.hospitalService.Admit(r.Context(), playerID, params)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AdmitResponseFromResult(result))
}

// Status handles GET /api/v1/hospital-release/status
func (h *HospitalHandler) Status(w http.ResponseWriter, r *http.Request) {
	playerID := middleware.MustGetPlayerID(r.Context())

	status, err := h.hospitalService.Status(r.Context(), playerID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HospitalStatusFromStatus(status))
}

// Release handles POST /api/v1/hospital-release/release
func (h *HospitalHandler) Release(w http.ResponseWriter, r *http.Request) {
	var req request.ReleaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = request.ReleaseRequest{}
	}

	params := hospital.DefaultReleaseParams()
	if req.Method != nil {
		params.Method = *req.Method
	}
	if req.Cost != nil {
		params.Cost = *req.Cost
	}

	playerID := middleware.MustGetPlayerID(r.Context())
	result, err := h.hospitalService.Release(r.Context(), playerID, params)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ReleaseResponseFromResult(result))
}
