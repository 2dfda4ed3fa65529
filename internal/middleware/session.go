package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionMiddleware resolves the session cookie, if any, into the request context.
// It never aborts: guarded routes add RequireSession.
func SessionMiddleware(cookieName, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context())
		user, err := utils.ParseSessionToken(raw, secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				logger.Info("Session cookie expired")
			} else {
				logger.Warn("Invalid session cookie", slog.String("error", err.Error()))
			}
			c.Next()
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", user.UserID))
		ctx := WithSessionUser(c.Request.Context(), *user)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))
		c.Set(string(sessionKey), *user)
		c.Set(string(loggerKey), enrichedLogger)

		c.Next()
	}
}

// RequireSession aborts with 401 when no session was resolved.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSession(c); !ok {
			GetLoggerFromContext(c).Warn("Session required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("No autorizado", "unauthorized", nil))
			return
		}
		c.Next()
	}
}
