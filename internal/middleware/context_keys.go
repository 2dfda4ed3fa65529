package middleware

import (
	"context"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// sessionKey is the key used to store the resolved session user in the Gin and request contexts.
const sessionKey = contextKey("sessionUser")

// WithSessionUser returns a copy of ctx carrying the session user.
func WithSessionUser(ctx context.Context, user domain.SessionUser) context.Context {
	return context.WithValue(ctx, sessionKey, user)
}

// SessionUserFromCtx retrieves the session user from a standard context.
func SessionUserFromCtx(ctx context.Context) (domain.SessionUser, bool) {
	user, ok := ctx.Value(sessionKey).(domain.SessionUser)
	return user, ok && user.UserID != ""
}

// GetSession retrieves the session user resolved by SessionMiddleware.
// It returns false when the request carries no valid session cookie.
func GetSession(c *gin.Context) (domain.SessionUser, bool) {
	val, exists := c.Get(string(sessionKey))
	if !exists {
		// check in the request context as well
		return SessionUserFromCtx(c.Request.Context())
	}

	user, ok := val.(domain.SessionUser)
	if !ok || user.UserID == "" {
		return domain.SessionUser{}, false
	}
	return user, true
}

// GetUser returns the authenticated user's ID.
func GetUser(c *gin.Context) (string, bool) {
	user, ok := GetSession(c)
	if !ok {
		return "", false
	}
	return user.UserID, true
}
