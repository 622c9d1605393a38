package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zindanrpg/zindan-go/internal/model"
	"github.com/zindanrpg/zindan-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	key := profileKey(profile.PlayerID)

	fields := map[string]any{
		fieldEnergy:    profile.Energy,
		fieldMaxEnergy: profile.MaxEnergy,
		fieldGems:      profile.Gems,
		fieldCreatedAt: profile.CreatedAt.UTC().Format(time.RFC3339),
		fieldUpdatedAt: profile.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if profile.HospitalUntil != nil {
		fields[fieldHospitalUntil] = profile.HospitalUntil.UTC().Format(time.RFC3339)
		fields[fieldHospitalReason] = profile.HospitalReason
	}

	// Replace the hash wholesale; stale hospital fields must not survive
	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetProfile(ctx context.Context, id model.PlayerID) (*model.Profile, error) {
	data, err := s.client.HGetAll(ctx, profileKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, model.ErrProfileNotFound
	}
	return profileFromHash(id, data)
}

// UpdateProfile writes exactly the supplied fields in one pipelined call.
// No lock is held between a caller's read and this write; the hash gives
// per-call atomicity only.
func (s *Storage) UpdateProfile(ctx context.Context, id model.PlayerID, update model.ProfileUpdate) error {
	key := profileKey(id)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrProfileNotFound
	}

	fields := map[string]any{
		fieldUpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if update.Energy != nil {
		fields[fieldEnergy] = *update.Energy
	}
	if update.MaxEnergy != nil {
		fields[fieldMaxEnergy] = *update.MaxEnergy
	}
	if update.Gems != nil {
		fields[fieldGems] = *update.Gems
	}
	if update.HospitalUntil != nil {
		fields[fieldHospitalUntil] = update.HospitalUntil.UTC().Format(time.RFC3339)
	}
	if update.HospitalReason != nil {
		fields[fieldHospitalReason] = *update.HospitalReason
	}

	pipe := s.client.Pipeline()
	pipe.HSet(ctx, key, fields)
	if update.ClearHospital {
		pipe.HDel(ctx, key, fieldHospitalUntil, fieldHospitalReason)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) DeleteProfile(ctx context.Context, id model.PlayerID) error {
	return s.client.Del(ctx, profileKey(id)).Err()
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	ttl := s.cfg.SessionTTL
	if !session.ExpiresAt.IsZero() {
		ttl = time.Until(session.ExpiresAt)
		if ttl <= 0 {
			// Already expired; nothing worth storing
			return nil
		}
	}

	return s.client.Set(ctx, sessionKey(session.Token), data, ttl).Err()
}

func (s *Storage) GetSession(ctx context.Context, token string) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

// profileFromHash rebuilds a Profile from its stored hash fields
func profileFromHash(id model.PlayerID, data map[string]string) (*model.Profile, error) {
	profile := &model.Profile{PlayerID: id}

	var err error
	if v, ok := data[fieldEnergy]; ok {
		if profile.Energy, err = strconv.Atoi(v); err != nil {
			return nil, err
		}
	}
	if v, ok := data[fieldMaxEnergy]; ok {
		if profile.MaxEnergy, err = strconv.Atoi(v); err != nil {
			return nil, err
		}
	}
	if v, ok := data[fieldGems]; ok {
		if profile.Gems, err = strconv.Atoi(v); err != nil {
			return nil, err
		}
	}
	if v, ok := data[fieldHospitalUntil]; ok {
		until, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, err
		}
		profile.HospitalUntil = &until
	}
	profile.HospitalReason = data[fieldHospitalReason]
	if v, ok := data[fieldCreatedAt]; ok {
		if profile.CreatedAt, err = time.Parse(time.RFC3339, v); err != nil {
			return nil, err
		}
	}
	if v, ok := data[fieldUpdatedAt]; ok {
		if profile.UpdatedAt, err = time.Parse(time.RFC3339, v); err != nil {
			return nil, err
		}
	}

	return profile, nil
}
