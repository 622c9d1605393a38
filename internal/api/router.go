package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zindanrpg/zindan-go/internal/api/handler"
	apimiddleware "github.com/zindanrpg/zindan-go/internal/api/middleware"
	"github.com/zindanrpg/zindan-go/internal/middleware"
	"github.com/zindanrpg/zindan-go/internal/services/auth"
	"github.com/zindanrpg/zindan-go/internal/services/energy"
	"github.com/zindanrpg/zindan-go/internal/services/hospital"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	HospitalService *hospital.Service
	EnergyService   *energy.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	hospitalHandler := handler.NewHospitalHandler(cfg.HospitalService)
	energyHandler := handler.NewEnergyHandler(cfg.EnergyService)

	// API subrouter with common middleware. CORS runs before auth so
	// preflight requests are answered without a credential.
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.RequestID)
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(apimiddleware.CORS)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Game-state routes (all require auth; OPTIONS listed so preflight
	// reaches the CORS middleware)
	protected := api.NewRoute().Subrouter()
	protected.Use(apimiddleware.Auth(cfg.AuthService))
	protected.HandleFunc("/hospital-admit", hospitalHandler.Admit).
		Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/hospital-release/status", hospitalHandler.Status).
		Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/hospital-release/release", hospitalHandler.Release).
		Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/energy/status", energyHandler.Status).
		Methods(http.MethodGet, http.MethodOptions)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
