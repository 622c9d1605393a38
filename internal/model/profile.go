package model

import "time"

// PlayerID uniquely identifies a player across the system.
// It lives in the identity provider's namespace; profiles are keyed by it
// but never created or destroyed by this service.
type PlayerID string

// Profile is the per-player game record. It pre-exists in the record
// store before any operation here touches it; the hospital endpoints
// mutate only the hospital fields and gems.
type Profile struct {
	PlayerID  PlayerID
	Energy    int
	MaxEnergy int
	Gems      int // non-negative currency balance

	// HospitalUntil nil or in the past means the player is free.
	// HospitalReason is only meaningful while HospitalUntil is set.
	HospitalUntil  *time.Time
	HospitalReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InHospitalAt reports whether the player is confined at the given time.
// Expiry is lazy: nothing ever writes the transition back to free, it is
// derived from this comparison on every read.
func (p *Profile) InHospitalAt(t time.Time) bool {
	return p.HospitalUntil != nil && p.HospitalUntil.After(t)
}

// ReleaseTimeUnix returns the hospital expiry as Unix seconds, or 0 when
// the player has no stored expiry.
func (p *Profile) ReleaseTimeUnix() int64 {
	if p.HospitalUntil == nil {
		return 0
	}
	return p.HospitalUntil.Unix()
}

// ProfileUpdate describes a partial write to a profile. Only non-nil
// fields are written; ClearHospital clears both hospital fields together
// so the reason can never outlive the expiry.
type ProfileUpdate struct {
	Energy         *int
	MaxEnergy      *int
	Gems           *int
	HospitalUntil  *time.Time
	HospitalReason *string
	ClearHospital  bool
}

// IsZero reports whether the update would write nothing.
func (u ProfileUpdate) IsZero() bool {
	return u.Energy == nil && u.MaxEnergy == nil && u.Gems == nil &&
		u.HospitalUntil == nil && u.HospitalReason == nil && !u.ClearHospital
}
