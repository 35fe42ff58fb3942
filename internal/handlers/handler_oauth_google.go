package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/middleware"
	"github.com/CellkomStore/cellkom_store_app/internal/platform/config"
	"github.com/CellkomStore/cellkom_store_app/internal/utils"
)

const oauthStateCookie = "oauth_state"

// googleOAuthHandler handles the Google sign-in flow for storefront members.
type googleOAuthHandler struct {
	cfg         *config.Config
	googleSvc   portssvc.GoogleOAuthSvcFacade
	authHandler *authHandler
}

func registerGoogleOAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, googleSvc portssvc.GoogleOAuthSvcFacade, ah *authHandler) {
	h := &googleOAuthHandler{cfg: cfg, googleSvc: googleSvc, authHandler: ah}

	google := rg.Group("/google")
	{
		google.GET("", h.redirectToConsent)
		google.GET("/callback", h.callback)
	}
}

// redirectToConsent godoc
// @Summary Start Google sign-in
// @Description Redirects the browser to the Google consent screen. An anti-CSRF state value is stored in a short-lived cookie.
// @Tags auth
// @Success 307 "Redirect to Google"
// @Router /auth/google [get]
func (h *googleOAuthHandler) redirectToConsent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		logger.Error("Failed to generate oauth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start sign-in"})
		return
	}

	c.SetCookie(oauthStateCookie, state, 300, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleSvc.AuthCodeURL(state))
}

// callback godoc
// @Summary Google sign-in callback
// @Description Exchanges the authorization code, resolves or creates the member account, and issues a session.
// @Tags auth
// @Produce json
// @Param state query string true "Anti-CSRF state"
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "State mismatch or exchange failure"
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) callback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid sign-in state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization code"})
		return
	}

	user, err := h.googleSvc.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.authHandler.issueSession(c, user, logger)
}
