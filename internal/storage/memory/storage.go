package memory

import (
	"context"
	"sync"
	"time"

	"github.com/zindanrpg/zindan-go/internal/model"
	"github.com/zindanrpg/zindan-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	profiles map[model.PlayerID]*model.Profile
	sessions map[string]*model.Session
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		profiles: make(map[model.PlayerID]*model.Profile),
		sessions: make(map[string]*model.Session),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := *profile
	s.profiles[profile.PlayerID] = &p
	return nil
}

// GetProfile returns a copy of the stored profile, so callers never share
// state with a concurrent UpdateProfile.
func (s *Storage) GetProfile(ctx context.Context, id model.PlayerID) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[id]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	p := *profile
	return &p, nil
}

func (s *Storage) UpdateProfile(ctx context.Context, id model.PlayerID, update model.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[id]
	if !ok {
		return model.ErrProfileNotFound
	}

	if update.Energy != nil {
		profile.Energy = *update.Energy
	}
	if update.MaxEnergy != nil {
		profile.MaxEnergy = *update.MaxEnergy
	}
	if update.Gems != nil {
		profile.Gems = *update.Gems
	}
	if update.HospitalUntil != nil {
		until := *update.HospitalUntil
		profile.HospitalUntil = &until
	}
	if update.HospitalReason != nil {
		profile.HospitalReason = *update.HospitalReason
	}
	if update.ClearHospital {
		profile.HospitalUntil = nil
		profile.HospitalReason = ""
	}
	profile.UpdatedAt = time.Now()

	return nil
}

func (s *Storage) DeleteProfile(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, id)
	return nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := *session
	s.sessions[session.Token] = &sess
	return nil
}

func (s *Storage) GetSession(ctx context.Context, token string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	sess := *session
	return &sess, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
