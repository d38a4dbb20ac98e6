package handler

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"linkboard-api/internal/response"
	"linkboard-api/internal/service"
)

const oauthStateCookie = "oauth_state"

// AuthHandler handles login and session endpoints
type AuthHandler struct {
	authService service.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// GoogleLogin godoc
// @Summary      Start Google login
// @Description  Redirects to the Google consent screen with a random state value stored in a short-lived cookie
// @Tags         auth
// @Success      302 {string} string "redirect"
// @Router       /auth/google/login [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state, err := generateState()
	if err != nil {
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to start login")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, h.authService.GoogleLoginURL(state))
}

// GoogleCallback godoc
// @Summary      Complete Google login
// @Description  Validates the state value, exchanges the authorization code and returns a session token with the user profile
// @Tags         auth
// @Produce      json
// @Param        code query string true "Authorization code"
// @Param        state query string true "State value from the login redirect"
// @Success      200 {object} response.SuccessResponse{data=dto.AuthResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Router       /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Missing authorization code")
		return
	}

	expected, err := c.Cookie(oauthStateCookie)
	if err != nil || expected == "" || c.Query("state") != expected {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid state")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	auth, err := h.authService.HandleGoogleCallback(c.Request.Context(), code)
	if err != nil {
		h.logger.Warn("google callback failed", zap.Error(err))
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, auth)
}

// CheckAdmin godoc
// @Summary      Check admin status
// @Description  Reports whether the caller's session email matches the configured admin email
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.AdminCheckResponse}
// @Failure      401 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/check [get]
func (h *AuthHandler) CheckAdmin(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	result, err := h.authService.CheckAdmin(c.Request.Context(), auth.UserID, auth.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

func generateState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
