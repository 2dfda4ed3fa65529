package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/middleware"
	"github.com/contapyme/contapyme_backend/internal/validation"
	"github.com/gin-gonic/gin"
)

// statusMessages are the client-facing messages for errors that carry no message of their own.
var statusMessages = map[int]string{
	http.StatusBadRequest:   validation.InvalidDataMessage,
	http.StatusUnauthorized: "No autorizado",
	http.StatusForbidden:    "No tienes acceso a esta empresa",
	http.StatusNotFound:     "Recurso no encontrado",
	http.StatusConflict:     "El recurso ya existe",
}

// respondError writes the error envelope for err. fallback is the message used for 500s.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromContext(c)
	status := apperrors.StatusCode(err)

	message := fallback
	var details any
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
		details = appErr.Details
	} else if msg, ok := statusMessages[status]; ok {
		message = msg
	}

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		details = err.Error()
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}

	c.JSON(status, dto.Fail(message, apperrors.Kind(err), details))
}

// respondBindError writes a 400 for a failed ShouldBind* call.
func respondBindError(c *gin.Context, err error) {
	respondError(c, validation.FromBindingError(err), validation.InvalidDataMessage)
}

// sessionCaller returns the caller resolved by the session middleware. Guarded routes
// run behind RequireSession, so a miss here is answered with 401.
func sessionCaller(c *gin.Context) (domain.SessionUser, bool) {
	caller, ok := middleware.GetSession(c)
	if !ok {
		middleware.GetLoggerFromContext(c).Error("Session user not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("No autorizado", "unauthorized", nil))
		return domain.SessionUser{}, false
	}
	return caller, true
}
