package storage

import (
	"context"

	"github.com/zindanrpg/zindan-go/internal/model"
)

// Storage defines the interface for the player record store.
//
// UpdateProfile is a partial write scoped to exactly the fields supplied
// in the update. Each backend applies the update in a single call, so a
// concurrent reader never observes a half-applied update; nothing
// stronger (multi-step transactions, compare-and-swap across calls) is
// assumed by callers.
type Storage interface {
	// Profile operations
	SaveProfile(ctx context.Context, profile *model.Profile) error
	GetProfile(ctx context.Context, id model.PlayerID) (*model.Profile, error)
	UpdateProfile(ctx context.Context, id model.PlayerID, update model.ProfileUpdate) error
	DeleteProfile(ctx context.Context, id model.PlayerID) error

	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error
}
