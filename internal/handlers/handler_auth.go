package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
	"github.com/CellkomStore/cellkom_store_app/internal/middleware"
	"github.com/CellkomStore/cellkom_store_app/internal/platform/config"
)

// authHandler handles credential login and refresh token rotation.
type authHandler struct {
	cfg      *config.Config
	userSvc  portssvc.UserSvcFacade
	tokenSvc portssvc.TokenSvcFacade
}

func newAuthHandler(cfg *config.Config, userSvc portssvc.UserSvcFacade, tokenSvc portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{cfg: cfg, userSvc: userSvc, tokenSvc: tokenSvc}
}

// registerAuthRoutes registers the public authentication routes. The
// credential endpoints sit behind the brute-force rate limiter.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, authLimiter *limiter.Limiter) {
	h := newAuthHandler(cfg, services.User, services.Token)

	auth := r.Group("/auth")
	if authLimiter != nil {
		auth.Use(middleware.RateLimit(authLimiter))
	}
	{
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
	}

	registerGoogleOAuthRoutes(auth, cfg, services.GoogleOAuth, h)
}

// login godoc
// @Summary Log in with username and password
// @Description Authenticates a staff or member account and returns an access token. The refresh token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userSvc.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.issueSession(c, user, logger)
}

// refresh godoc
// @Summary Rotate the access token
// @Description Validates the refresh token cookie and issues a new access token plus a rotated refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "User whose session to refresh"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Invalid refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing refresh token"})
		return
	}

	user, err := h.tokenSvc.ValidateRefreshToken(c.Request.Context(), req.UserID, refreshToken)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.issueSession(c, user, logger)
}

// logout godoc
// @Summary Log out
// @Description Clears the stored refresh token and its cookie.
// @Tags auth
// @Produce json
// @Param request body dto.RefreshRequest true "User to log out"
// @Success 204 "Logged out"
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.userSvc.ClearRefreshToken(c.Request.Context(), req.UserID); err != nil {
		logger.Warn("Failed to clear refresh token", slog.String("error", err.Error()))
	}

	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	c.Status(http.StatusNoContent)
}

// issueSession writes the refresh cookie and returns the access token body.
// Shared by credential login, refresh rotation and the Google callback.
func (h *authHandler) issueSession(c *gin.Context, user *domain.User, logger *slog.Logger) {
	accessToken, expiresAt, err := h.tokenSvc.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	refreshToken, refreshExpiry, err := h.tokenSvc.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	maxAge := int(refreshExpiry.Sub(expiresAt).Seconds()) + int(h.cfg.JWTExpiryDuration.Seconds())
	c.SetCookie(h.cfg.RefreshTokenCookieName, refreshToken, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)

	logger.Info("Session issued", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        dto.ToUserResponse(user),
	})
}
