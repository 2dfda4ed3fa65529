package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/middleware"
	"github.com/contapyme/contapyme_backend/internal/platform/config"
	"github.com/contapyme/contapyme_backend/internal/validation"
	"github.com/gin-gonic/gin"
)

// PendingRedirectCookie holds the destination requested at login until the next session check.
const PendingRedirectCookie = "pending_redirect"

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{authService: as, cfg: cfg}
}

// registerAuthRoutes sets up the routes for authentication. loginLimit is applied to login only.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, authService portssvc.AuthSvcFacade, loginLimit gin.HandlerFunc) {
	h := newAuthHandler(authService, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", loginLimit, h.login)
		auth.POST("/register", h.register)
		auth.GET("/session", h.getSession)
		auth.DELETE("/session", h.deleteSession)
	}
}

func (h *authHandler) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.cfg.SessionCookieSecure, true)
}

// login godoc
// @Summary User login
// @Description Verifies credentials and sets the session cookie. An optional redirect_to is kept in a short-lived cookie and returned once by GET /auth/session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 429 {object} dto.Envelope
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Error al iniciar sesión")
		return
	}

	h.setCookie(c, h.cfg.SessionCookieName, token, int(h.cfg.SessionExpiryDuration.Seconds()))
	if req.RedirectTo != "" {
		h.setCookie(c, PendingRedirectCookie, req.RedirectTo, int(h.cfg.PendingRedirectMaxAge.Seconds()))
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.OKAs("user", dto.ToUserResponse(user)).WithMessage("Sesión iniciada"))
}

// register godoc
// @Summary Register new user
// @Description Creates a new user account with the CLIENT role.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope "Email already registered"
// @Failure 500 {object} dto.Envelope
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for register", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			respondError(c, apperrors.NewAppError(http.StatusConflict, "El correo ya está registrado", err), "")
			return
		}
		respondError(c, err, "Error al registrar el usuario")
		return
	}

	c.JSON(http.StatusOK, dto.OKAs("user", dto.ToUserResponse(user)).WithMessage("Usuario registrado"))
}

// getSession godoc
// @Summary Current session
// @Description Reports whether the request carries a valid session. A pending redirect stored at login is returned once.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Envelope
// @Router /auth/session [get]
func (h *authHandler) getSession(c *gin.Context) {
	caller, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusOK, dto.OKAs("session", dto.SessionResponse{Authenticated: false}))
		return
	}

	res := dto.SessionResponse{Authenticated: true, User: dto.SessionUserResponse(caller)}
	if redirect, err := c.Cookie(PendingRedirectCookie); err == nil && redirect != "" {
		if validation.IsLocalPath(redirect) {
			res.PendingRedirect = redirect
		}
		h.setCookie(c, PendingRedirectCookie, "", -1)
	}
	c.JSON(http.StatusOK, dto.OKAs("session", res))
}

// deleteSession godoc
// @Summary Logout
// @Description Clears the session cookie. Always succeeds.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Envelope
// @Router /auth/session [delete]
func (h *authHandler) deleteSession(c *gin.Context) {
	h.setCookie(c, h.cfg.SessionCookieName, "", -1)
	h.setCookie(c, PendingRedirectCookie, "", -1)
	if userID, ok := middleware.GetUser(c); ok {
		middleware.GetLoggerFromContext(c).Info("User logged out", slog.String("user_id", userID))
	}
	c.JSON(http.StatusOK, dto.OK(nil).WithMessage("Sesión cerrada"))
}
