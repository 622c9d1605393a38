package model

import "time"

// Session is a stored bearer credential mapping a token to a player.
// Sessions are issued by the external auth platform (or the provisioning
// CLI in development); this service only verifies them.
type Session struct {
	Token     string
	PlayerID  PlayerID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ExpiredAt reports whether the session has expired at the given time.
func (s *Session) ExpiredAt(t time.Time) bool {
	return t.After(s.ExpiresAt)
}
