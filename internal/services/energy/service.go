package energy

import (
	"context"
	"log/slog"

	"github.com/zindanrpg/zindan-go/internal/model"
	"github.com/zindanrpg/zindan-go/internal/storage"
)

// Service exposes the energy view of a player's profile
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new energy service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Status is a player's current energy reading
type Status struct {
	Current int
	Max     int
}

// Status reads the player's energy; a missing profile is an error here
// (the record is owned and created elsewhere).
func (s *Service) Status(ctx context.Context, playerID model.PlayerID) (*Status, error) {
	profile, err := s.storage.GetProfile(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return &Status{
		Current: profile.Energy,
		Max:     profile.MaxEnergy,
	}, nil
}
