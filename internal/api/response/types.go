package response

import (
	"time"

	"github.com/zindanrpg/zindan-go/internal/services/energy"
	"github.com/zindanrpg/zindan-go/internal/services/hospital"
)

// Every success body carries success=true; timestamps facing the client
// are Unix seconds, except hospital_until which echoes the stored
// ISO-8601 form.

// AdmitResponse is the response for hospital admission
type AdmitResponse struct {
	Success         bool   `json:"success"`
	HospitalUntil   string `json:"hospital_until"`
	ReleaseTime     int64  `json:"release_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Reason          string `json:"reason"`
}

// AdmitResponseFromResult converts an admission result
func AdmitResponseFromResult(r *hospital.AdmitResult) AdmitResponse {
	return AdmitResponse{
		Success:         true,
		HospitalUntil:   r.Until.UTC().Format(time.RFC3339),
		ReleaseTime:     r.Until.Unix(),
		DurationMinutes: r.DurationMinutes,
		Reason:          r.Reason,
	}
}

// HospitalStatusResponse is the response for the hospital status check
type HospitalStatusResponse struct {
	Success     bool   `json:"success"`
	InHospital  bool   `json:"in_hospital"`
	ReleaseTime int64  `json:"release_time"`
	Reason      string `json:"reason"`
}

// HospitalStatusFromStatus converts a hospital status
func HospitalStatusFromStatus(s *hospital.Status) HospitalStatusResponse {
	return HospitalStatusResponse{
		Success:     true,
		InHospital:  s.InHospital,
		ReleaseTime: s.ReleaseTime,
		Reason:      s.Reason,
	}
}

// ReleaseResponse is the response for hospital release. Cost and
// new_gems only appear for the gems method.
type ReleaseResponse struct {
	Success bool   `json:"success"`
	Method  string `json:"method"`
	Cost    *int   `json:"cost,omitempty"`
	NewGems *int   `json:"new_gems,omitempty"`
}

// ReleaseResponseFromResult converts a release result
func ReleaseResponseFromResult(r *hospital.ReleaseResult) ReleaseResponse {
	resp := ReleaseResponse{
		Success: true,
		Method:  r.Method,
	}
	if r.NewGems != nil {
		cost := r.Cost
		resp.Cost = &cost
		resp.NewGems = r.NewGems
	}
	return resp
}

// EnergyStatusResponse is the response for the energy status check
type EnergyStatusResponse struct {
	Success       bool `json:"success"`
	CurrentEnergy int  `json:"current_energy"`
	MaxEnergy     int  `json:"max_energy"`
}

// EnergyStatusFromStatus converts an energy status
func EnergyStatusFromStatus(s *energy.Status) EnergyStatusResponse {
	return EnergyStatusResponse{
		Success:       true,
		CurrentEnergy: s.Current,
		MaxEnergy:     s.Max,
	}
}
