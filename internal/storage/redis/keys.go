package redis

import (
	"fmt"

	"github.com/zindanrpg/zindan-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "zindan"

// profileKey returns the Redis key for a player's Profile hash
func profileKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, id)
}

// sessionKey returns the Redis key for a Session
func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}

// Profile hash field names. Profiles are stored as hashes rather than
// JSON blobs so a partial update writes exactly the supplied fields.
const (
	fieldEnergy         = "energy"
	fieldMaxEnergy      = "max_energy"
	fieldGems           = "gems"
	fieldHospitalUntil  = "hospital_until"
	fieldHospitalReason = "hospital_reason"
	fieldCreatedAt      = "created_at"
	fieldUpdatedAt      = "updated_at"
)
