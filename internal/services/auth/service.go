package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zindanrpg/zindan-go/internal/dependencies/clock"
	"github.com/zindanrpg/zindan-go/internal/model"
	"github.com/zindanrpg/zindan-go/internal/storage"
)

// ErrInvalidSession is returned for unknown or expired tokens
var ErrInvalidSession = errors.New("invalid or expired session")

// Service verifies bearer tokens against stored sessions. Session
// issuance belongs to the external auth platform; CreateSession exists
// only for provisioning (tests, local development).
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth service
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		logger:          logger,
		sessionDuration: cfg.SessionDuration,
	}
}

// VerifyToken resolves a bearer token to its session, checking expiry
// against the clock. Expired sessions are removed on the way out.
func (s *Service) VerifyToken(ctx context.Context, token string) (*model.Session, error) {
	session, err := s.storage.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	if session.ExpiredAt(s.clock.Now()) {
		if err := s.storage.DeleteSession(ctx, token); err != nil {
			s.logger.Warn("failed to delete expired session",
				slog.String("error", err.Error()),
			)
		}
		return nil, ErrInvalidSession
	}

	return session, nil
}

// CreateSession issues and stores a session for the given player
func (s *Service) CreateSession(ctx context.Context, playerID model.PlayerID) (*model.Session, error) {
	now := s.clock.Now()

	session := &model.Session{
		Token:     "sess_" + uuid.NewString(),
		PlayerID:  playerID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("session created",
		slog.String("player_id", string(playerID)),
	)

	return session, nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(ctx context.Context, token string) error {
	return s.storage.DeleteSession(ctx, token)
}
