package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AdmitResult:
		o.printAdmitResult(v)
	case HospitalStatus:
		o.printHospitalStatus(v)
	case ReleaseResult:
		o.printReleaseResult(v)
	case EnergyStatus:
		o.printEnergyStatus(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AdmitResult response type (matches API)
type AdmitResult struct {
	HospitalUntil   string `json:"hospital_until"`
	ReleaseTime     int64  `json:"release_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Reason          string `json:"reason"`
}

// HospitalStatus response type
type HospitalStatus struct {
	InHospital  bool   `json:"in_hospital"`
	ReleaseTime int64  `json:"release_time"`
	Reason      string `json:"reason"`
}

// ReleaseResult response type
type ReleaseResult struct {
	Method  string `json:"method"`
	Cost    *int   `json:"cost"`
	NewGems *int   `json:"new_gems"`
}

// EnergyStatus response type
type EnergyStatus struct {
	CurrentEnergy int `json:"current_energy"`
	MaxEnergy     int `json:"max_energy"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAdmitResult(a AdmitResult) {
	fmt.Println("Admitted to hospital")
	fmt.Printf("Until: %s\n", a.HospitalUntil)
	fmt.Printf("Duration: %d minutes\n", a.DurationMinutes)
	fmt.Printf("Reason: %s\n", a.Reason)
}

func (o *Output) printHospitalStatus(s HospitalStatus) {
	if !s.InHospital {
		fmt.Println("Not in hospital")
		return
	}
	fmt.Println("In hospital")
	fmt.Printf("Release: %s\n", time.Unix(s.ReleaseTime, 0).UTC().Format(time.RFC3339))
	if s.Reason != "" {
		fmt.Printf("Reason: %s\n", s.Reason)
	}
}

func (o *Output) printReleaseResult(r ReleaseResult) {
	fmt.Printf("Released (%s)\n", r.Method)
	if r.Cost != nil {
		fmt.Printf("Cost: %d gems\n", *r.Cost)
	}
	if r.NewGems != nil {
		fmt.Printf("Gems remaining: %d\n", *r.NewGems)
	}
}

func (o *Output) printEnergyStatus(e EnergyStatus) {
	fmt.Printf("Energy: %d/%d\n", e.CurrentEnergy, e.MaxEnergy)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
