package model

import "errors"

// Common errors used across the application
var (
	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")

	// Hospital errors
	ErrInvalidDuration  = errors.New("invalid duration_minutes")
	ErrInvalidCost      = errors.New("cost must be non-negative")
	ErrNotInHospital    = errors.New("not in hospital")
	ErrInsufficientGems = errors.New("insufficient gems")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)
