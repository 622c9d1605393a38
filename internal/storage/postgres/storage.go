package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zindanrpg/zindan-go/internal/model"
	"github.com/zindanrpg/zindan-go/internal/storage"
)

// Storage is a Postgres-backed implementation of the storage interface.
// This is the backend that matches the original deployment, where the
// player record lives in a managed Postgres table.
type Storage struct {
	pool *pgxpool.Pool
}

// New creates a new Postgres storage instance and verifies the connection.
// The caller is responsible for calling Close().
func New(ctx context.Context, connStr string) (*Storage, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Storage{pool: pool}, nil
}

// Close closes the connection pool
func (s *Storage) Close() {
	s.pool.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// EnsureSchema creates the tables this storage needs if they are missing
func (s *Storage) EnsureSchema(ctx context.Context) error {
	q := `
	CREATE TABLE IF NOT EXISTS profiles (
		player_id       TEXT PRIMARY KEY,
		energy          INTEGER NOT NULL DEFAULT 0,
		max_energy      INTEGER NOT NULL DEFAULT 0,
		gems            INTEGER NOT NULL DEFAULT 0,
		hospital_until  TIMESTAMPTZ,
		hospital_reason TEXT,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE TABLE IF NOT EXISTS sessions (
		token      TEXT PRIMARY KEY,
		player_id  TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		expires_at TIMESTAMPTZ NOT NULL
	);
	`
	if _, err := s.pool.Exec(ctx, q); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	q := `
	INSERT INTO profiles (player_id, energy, max_energy, gems, hospital_until, hospital_reason, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (player_id) DO UPDATE SET
		energy = $2, max_energy = $3, gems = $4,
		hospital_until = $5, hospital_reason = $6, updated_at = $8;
	`
	var reason *string
	if profile.HospitalUntil != nil {
		reason = &profile.HospitalReason
	}
	_, err := s.pool.Exec(ctx, q,
		string(profile.PlayerID), profile.Energy, profile.MaxEnergy, profile.Gems,
		profile.HospitalUntil, reason, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, id model.PlayerID) (*model.Profile, error) {
	q := `
	SELECT energy, max_energy, gems, hospital_until, hospital_reason, created_at, updated_at
	FROM profiles WHERE player_id = $1;
	`
	profile := &model.Profile{PlayerID: id}
	var reason *string
	err := s.pool.QueryRow(ctx, q, string(id)).Scan(
		&profile.Energy, &profile.MaxEnergy, &profile.Gems,
		&profile.HospitalUntil, &reason, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}
	if reason != nil {
		profile.HospitalReason = *reason
	}
	return profile, nil
}

// UpdateProfile issues a single UPDATE covering exactly the supplied
// fields; row-level atomicity comes from Postgres itself.
func (s *Storage) UpdateProfile(ctx context.Context, id model.PlayerID, update model.ProfileUpdate) error {
	sets := []string{"updated_at = now()"}
	args := []any{string(id)}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Energy != nil {
		addSet("energy", *update.Energy)
	}
	if update.MaxEnergy != nil {
		addSet("max_energy", *update.MaxEnergy)
	}
	if update.Gems != nil {
		addSet("gems", *update.Gems)
	}
	if update.HospitalUntil != nil {
		addSet("hospital_until", *update.HospitalUntil)
	}
	if update.HospitalReason != nil {
		addSet("hospital_reason", *update.HospitalReason)
	}
	if update.ClearHospital {
		sets = append(sets, "hospital_until = NULL", "hospital_reason = NULL")
	}

	q := "UPDATE profiles SET "
	for i, set := range sets {
		if i > 0 {
			q += ", "
		}
		q += set
	}
	q += " WHERE player_id = $1;"

	tag, err := s.pool.Exec(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProfileNotFound
	}
	return nil
}

func (s *Storage) DeleteProfile(ctx context.Context, id model.PlayerID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM profiles WHERE player_id = $1;`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	q := `
	INSERT INTO sessions (token, player_id, created_at, expires_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (token) DO UPDATE SET player_id = $2, expires_at = $4;
	`
	_, err := s.pool.Exec(ctx, q,
		session.Token, string(session.PlayerID), session.CreatedAt, session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *Storage) GetSession(ctx context.Context, token string) (*model.Session, error) {
	q := `SELECT player_id, created_at, expires_at FROM sessions WHERE token = $1;`
	session := &model.Session{Token: token}
	var playerID string
	err := s.pool.QueryRow(ctx, q, token).Scan(&playerID, &session.CreatedAt, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}
	session.PlayerID = model.PlayerID(playerID)
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1;`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
