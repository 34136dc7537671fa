package auth

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	apperrors "github.com/postpilot/postpilot-backend/internal/errors"
	"github.com/postpilot/postpilot-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// stateCookie carries the per-request OAuth state between the login redirect
// and the provider callback.
const stateCookie = "oauth_state"

// AuthHandler handles HTTP requests related to authentication and user profiles.
type AuthHandler struct {
	service *AuthService
	logger  *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler with the given service and logger.
func NewAuthHandler(service *AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterAuthRoutes registers the public sign-in routes.
func RegisterAuthRoutes(handler *AuthHandler, routerGroup *gin.RouterGroup) {
	authGroup := routerGroup.Group("/auth")
	{
		authGroup.GET("/github/login", handler.login)
		authGroup.GET("/github/callback", handler.loginCallback)
		authGroup.POST("/refresh", handler.refresh)
	}
}

// RegisterProfileRoutes registers the profile routes behind the session middleware.
func RegisterProfileRoutes(handler *AuthHandler, routerGroup *gin.RouterGroup) {
	routerGroup.GET("/me", handler.getProfile)
	routerGroup.PATCH("/me", handler.updateProfile)
}

// login handles the /auth/github/login endpoint. Generates a per-request state,
// stores it in a short-lived cookie and redirects to the provider's consent page.
func (h *AuthHandler) login(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		h.logger.Errorf("State generation error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, apperrors.ErrInternalServer.Code, apperrors.ErrInternalServer.Message)
		return
	}
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, h.service.GetLoginURL(state))
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// loginCallback handles the /auth/github/callback endpoint. Processes the sign-in callback,
// sets the session cookie, and returns user info plus tokens.
func (h *AuthHandler) loginCallback(c *gin.Context) {
	state := c.Query("state")
	cookieState, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != cookieState {
		utils.RespondError(c, http.StatusBadRequest, "invalid_state", "state mismatch")
		return
	}
	// The state is single-use.
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		utils.RespondError(c, http.StatusBadRequest, "missing_code", "missing code")
		return
	}

	userInfo, token, refreshToken, err := h.service.HandleCallback(c.Request.Context(), code)
	if err != nil {
		h.logger.Errorf("Sign-in callback error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "oauth_failed", "sign-in failed")
		return
	}
	// The browser-redirect flows (account linking) authenticate via this cookie.
	c.SetCookie("access_token", token, 3600, "/", "", false, true)
	utils.RespondSuccess(c, http.StatusOK, gin.H{
		"user":          userInfo,
		"token":         token,
		"refresh_token": refreshToken,
	})
}

// refresh handles POST /auth/refresh. Exchanges a valid refresh token for new tokens.
func (h *AuthHandler) refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apperrors.ErrInvalidBody.Status, apperrors.ErrInvalidBody.Code, apperrors.ErrInvalidBody.Message)
		return
	}
	token, refreshToken, err := h.service.RefreshTokens(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if apiErr, ok := err.(*apperrors.APIError); ok {
			utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, apperrors.ErrInternalServer.Code, apperrors.ErrInternalServer.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{
		"token":         token,
		"refresh_token": refreshToken,
	})
}

// getProfile handles GET /me.
func (h *AuthHandler) getProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err, "GetProfile")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, profile)
}

// updateProfile handles PATCH /me.
func (h *AuthHandler) updateProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apperrors.ErrInvalidBody.Status, apperrors.ErrInvalidBody.Code, apperrors.ErrInvalidBody.Message)
		return
	}
	profile, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.respondServiceError(c, err, "UpdateProfile")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, profile)
}

func (h *AuthHandler) respondServiceError(c *gin.Context, err error, op string) {
	if apiErr, ok := err.(*apperrors.APIError); ok {
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	h.logger.Errorf("%s error: %v", op, err)
	utils.RespondError(c, http.StatusInternalServerError, apperrors.ErrInternalServer.Code, apperrors.ErrInternalServer.Message)
}
