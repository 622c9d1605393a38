package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/zindanrpg/zindan-go/internal/api/apierr"
	"github.com/zindanrpg/zindan-go/internal/model"
	"github.com/zindanrpg/zindan-go/internal/services/auth"
)

type contextKey string

const (
	playerIDContextKey contextKey = "player_id"
	sessionContextKey  contextKey = "session"
)

// Auth creates authentication middleware. Every request must carry a
// bearer token the auth service can resolve; this runs before any
// domain logic.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			session, err := authService.VerifyToken(r.Context(), token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, sessionContextKey, session)
			ctx = context.WithValue(ctx, playerIDContextKey, session.PlayerID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken extracts the bearer token from the Authorization header
func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetPlayerID returns the authenticated player ID from the request context
func GetPlayerID(ctx context.Context) model.PlayerID {
	playerID, _ := ctx.Value(playerIDContextKey).(model.PlayerID)
	return playerID
}

// GetSession returns the session from the request context
func GetSession(ctx context.Context) *model.Session {
	session, _ := ctx.Value(sessionContextKey).(*model.Session)
	return session
}

// MustGetPlayerID returns the authenticated player ID or panics
func MustGetPlayerID(ctx context.Context) model.PlayerID {
	playerID := GetPlayerID(ctx)
	if playerID == "" {
		panic("no player in context - auth middleware not applied?")
	}
	return playerID
}
