package hospital

import (
	"context"
	"log/slog"
	"time"

	"github.com/zindanrpg/zindan-go/internal/dependencies/clock"
	"github.com/zindanrpg/zindan-go/internal/model"
	"github.com/zindanrpg/zindan-go/internal/storage"
)

// Defaults applied when a request omits the corresponding field
const (
	DefaultDurationMinutes = 120
	DefaultReason          = "Zindan başarısızlığı"
)

// Release methods. Only gems is special-cased: any other string clears
// the hospital state without touching the balance. The value is not
// validated — which methods are legitimate is the caller's policy.
const (
	MethodGems    = "gems"
	MethodNatural = "natural"
)

// Service manages the timed hospital state for players: admission for a
// duration, lazy status, and release by payment or otherwise.
//
// Every operation is a single read and/or a single partial write against
// the record store. Nothing is held between the two, so two concurrent
// gems releases for the same player can both observe sufficient funds;
// the store guarantees per-call atomicity only.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new hospital service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// AdmitParams are the inputs to Admit. DurationMinutes must be positive;
// DefaultAdmitParams carries the values used for omitted request fields.
type AdmitParams struct {
	DurationMinutes int
	Reason          string
}

// DefaultAdmitParams returns the admission defaults (120 minutes, the
// game's stock reason)
func DefaultAdmitParams() AdmitParams {
	return AdmitParams{
		DurationMinutes: DefaultDurationMinutes,
		Reason:          DefaultReason,
	}
}

// Validate checks the parameters before any write happens
func (p AdmitParams) Validate() error {
	if p.DurationMinutes < 1 {
		return model.ErrInvalidDuration
	}
	return nil
}

// AdmitResult echoes the admission that was written
type AdmitResult struct {
	Until           time.Time
	DurationMinutes int
	Reason          string
}

// Admit puts the player into hospital until now + the given duration,
// unconditionally overwriting any prior window — the newest admission
// always wins, even mid-confinement. Gems are never touched.
func (s *Service) Admit(ctx context.Context, playerID model.PlayerID, params AdmitParams) (*AdmitResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	until := s.clock.Now().Add(time.Duration(params.DurationMinutes) * time.Minute)
	reason := params.Reason

	err := s.storage.UpdateProfile(ctx, playerID, model.ProfileUpdate{
		HospitalUntil:  &until,
		HospitalReason: &reason,
	})
	if err != nil {
		s.logger.Error("failed to admit player",
			slog.String("player_id", string(playerID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("player admitted to hospital",
		slog.String("player_id", string(playerID)),
		slog.Int("duration_minutes", params.DurationMinutes),
		slog.String("reason", reason),
	)

	return &AdmitResult{
		Until:           until,
		DurationMinutes: params.DurationMinutes,
		Reason:          reason,
	}, nil
}

// Status reports the player's hospital state at the current time
type Status struct {
	InHospital  bool
	ReleaseTime int64 // Unix seconds, 0 when no expiry is stored
	Reason      string
}

// Status derives the hospital state from the stored expiry and the
// clock. Expiry is never written back: a window that has passed simply
// stops counting as confinement on the next read.
func (s *Service) Status(ctx context.Context, playerID model.PlayerID) (*Status, error) {
	profile, err := s.storage.GetProfile(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return &Status{
		InHospital:  profile.InHospitalAt(s.clock.Now()),
		ReleaseTime: profile.ReleaseTimeUnix(),
		Reason:      profile.HospitalReason,
	}, nil
}

// ReleaseParams are the inputs to Release. Method defaults to natural;
// Cost defaults to 0 and only matters for the gems method.
type ReleaseParams struct {
	Method string
	Cost   int
}

// DefaultReleaseParams returns the release defaults
func DefaultReleaseParams() ReleaseParams {
	return ReleaseParams{
		Method: MethodNatural,
		Cost:   0,
	}
}

// Validate checks the parameters before any read or write happens
func (p ReleaseParams) Validate() error {
	if p.Cost < 0 {
		return model.ErrInvalidCost
	}
	return nil
}

// ReleaseResult echoes the release that was performed. NewGems is only
// set for the gems method.
type ReleaseResult struct {
	Method  string
	Cost    int
	NewGems *int
}

// Release ends the player's confinement. It fails when the player is not
// currently confined. The gems method additionally charges Cost from the
// balance, failing without any write when the balance is short; every
// other method string clears the state free of charge and is echoed
// verbatim.
func (s *Service) Release(ctx context.Context, playerID model.PlayerID, params ReleaseParams) (*ReleaseResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.storage.GetProfile(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if !profile.InHospitalAt(s.clock.Now()) {
		return nil, model.ErrNotInHospital
	}

	if params.Method == MethodGems {
		if profile.Gems < params.Cost {
			return nil, model.ErrInsufficientGems
		}

		newGems := profile.Gems - params.Cost
		err := s.storage.UpdateProfile(ctx, playerID, model.ProfileUpdate{
			Gems:          &newGems,
			ClearHospital: true,
		})
		if err != nil {
			s.logger.Error("failed to release player",
				slog.String("player_id", string(playerID)),
				slog.String("error", err.Error()),
			)
			return nil, err
		}

		s.logger.Info("player released from hospital",
			slog.String("player_id", string(playerID)),
			slog.String("method", MethodGems),
			slog.Int("cost", params.Cost),
		)

		return &ReleaseResult{
			Method:  MethodGems,
			Cost:    params.Cost,
			NewGems: &newGems,
		}, nil
	}

	err = s.storage.UpdateProfile(ctx, playerID, model.ProfileUpdate{
		ClearHospital: true,
	})
	if err != nil {
		s.logger.Error("failed to release player",
			slog.String("player_id", string(playerID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("player released from hospital",
		slog.String("player_id", string(playerID)),
		slog.String("method", params.Method),
	)

	return &ReleaseResult{Method: params.Method}, nil
}
