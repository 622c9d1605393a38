package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zindanrpg/zindan-go/internal/model"
	"github.com/zindanrpg/zindan-go/internal/services/auth"
)

// ErrorResponse is the failure envelope every endpoint shares:
// {"success": false, "error": "<message>"}
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// httpError combines an HTTP status code with a client-facing message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Success: false, Error: he.message})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for pre-built HTTP errors
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Hospital errors
	case errors.Is(err, model.ErrInvalidDuration):
		return &httpError{http.StatusBadRequest, "Invalid duration_minutes"}
	case errors.Is(err, model.ErrInvalidCost):
		return &httpError{http.StatusBadRequest, "Invalid cost"}
	case errors.Is(err, model.ErrNotInHospital):
		return &httpError{http.StatusBadRequest, "Not in hospital"}
	case errors.Is(err, model.ErrInsufficientGems):
		return &httpError{http.StatusBadRequest, "Insufficient gems"}

	// Record errors
	case errors.Is(err, model.ErrProfileNotFound):
		return &httpError{http.StatusNotFound, "Profile not found"}

	// Auth errors
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, "Unauthorized"}

	default:
		// Store failures and anything unanticipated; the real error is
		// logged at the point it occurred, not leaked to the client
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, "Unauthorized"}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
