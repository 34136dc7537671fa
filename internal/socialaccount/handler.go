package socialaccount

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/postpilot/postpilot-backend/internal/auth/jwt"
	apperrors "github.com/postpilot/postpilot-backend/internal/errors"
	"github.com/postpilot/postpilot-backend/internal/middleware"
	"github.com/postpilot/postpilot-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AccountHandler handles HTTP requests for linking and managing social accounts.
type AccountHandler struct {
	service    *AccountService
	jwter      *jwt.Manager
	appBaseURL string
	logger     *logrus.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *AccountService, jwter *jwt.Manager, appBaseURL string, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{
		service:    service,
		jwter:      jwter,
		appBaseURL: appBaseURL,
		logger:     logger,
	}
}

// RegisterConnectRoutes registers the browser-facing linking endpoints.
// The callback is registered without the session middleware: an unauthenticated
// callback must redirect back to settings, not answer with a JSON 401.
func RegisterConnectRoutes(handler *AccountHandler, routerGroup *gin.RouterGroup, jwtMiddleware gin.HandlerFunc) {
	metaGroup := routerGroup.Group("/integrations/meta")
	{
		metaGroup.GET("/connect", jwtMiddleware, handler.Connect)
		metaGroup.GET("/callback", handler.Callback)
	}
}

// RegisterAccountRoutes registers the linked-account CRUD endpoints behind the session middleware.
func RegisterAccountRoutes(handler *AccountHandler, routerGroup *gin.RouterGroup) {
	accountGroup := routerGroup.Group("/accounts")
	{
		accountGroup.GET("/", handler.ListAccounts)
		accountGroup.POST("/:accountID/refresh", handler.RefreshToken)
		accountGroup.DELETE("/:accountID", handler.Unlink)
	}
}

// Connect handles GET /integrations/meta/connect. Redirects the authenticated
// user to the provider's authorization page.
func (h *AccountHandler) Connect(c *gin.Context) {
	c.Redirect(http.StatusFound, h.service.AuthorizationURL())
}

// Callback handles GET /integrations/meta/callback, the provider's redirect
// target. Every outcome is a redirect back to the settings page; failures are
// collapsed to a coarse reason code in the query string while the step-level
// detail stays in the server logs.
func (h *AccountHandler) Callback(c *gin.Context) {
	userID, ok := h.sessionUser(c)
	if !ok {
		h.redirectSettings(c, apperrors.RedirectErrAuthFailed)
		return
	}

	code := c.Query("code")
	if providerErr := c.Query("error"); providerErr != "" || code == "" {
		h.logger.WithFields(logrus.Fields{
			"user_id":        userID.String(),
			"provider_error": providerErr,
		}).Warn("Provider denied authorization or returned no code")
		h.redirectSettings(c, apperrors.RedirectErrAuthFailed)
		return
	}

	if _, err := h.service.CompleteLink(c.Request.Context(), userID, code); err != nil {
		h.logger.Errorf("Account linking failed: %v", err)
		h.redirectSettings(c, apperrors.RedirectErrConnectionFailed)
		return
	}

	h.redirectSettings(c, "")
}

// ListAccounts handles GET /accounts.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, apperrors.ErrUnauthorized.Code, apperrors.ErrUnauthorized.Message)
		return
	}
	accounts, err := h.service.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorf("ListAccounts error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, apperrors.ErrInternalServer.Code, apperrors.ErrInternalServer.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, accounts)
}

// RefreshToken handles POST /accounts/:accountID/refresh. Extends the stored
// long-lived credential before it expires.
func (h *AccountHandler) RefreshToken(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, apperrors.ErrUnauthorized.Code, apperrors.ErrUnauthorized.Message)
		return
	}
	accountID, err := uuid.Parse(c.Param("accountID"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid_account_id", "account id must be a valid UUID")
		return
	}
	account, err := h.service.RefreshToken(c.Request.Context(), userID, accountID)
	if err != nil {
		var apiErr *apperrors.APIError
		if errors.As(err, &apiErr) {
			utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, apperrors.ErrInternalServer.Code, apperrors.ErrInternalServer.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, account)
}

// Unlink handles DELETE /accounts/:accountID.
func (h *AccountHandler) Unlink(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, apperrors.ErrUnauthorized.Code, apperrors.ErrUnauthorized.Message)
		return
	}
	accountID, err := uuid.Parse(c.Param("accountID"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid_account_id", "account id must be a valid UUID")
		return
	}
	if err := h.service.Unlink(c.Request.Context(), userID, accountID); err != nil {
		if apiErr, ok := err.(*apperrors.APIError); ok {
			utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, apperrors.ErrInternalServer.Code, apperrors.ErrInternalServer.Message)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "account unlinked")
}

// sessionUser resolves the authenticated user from the request without aborting.
func (h *AccountHandler) sessionUser(c *gin.Context) (uuid.UUID, bool) {
	tokenStr := middleware.SessionToken(c)
	if tokenStr == "" {
		return uuid.Nil, false
	}
	claims, err := h.jwter.Verify(tokenStr)
	if err != nil {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// redirectSettings sends the browser back to the settings page, optionally with
// an error reason in the query string.
func (h *AccountHandler) redirectSettings(c *gin.Context, errCode string) {
	target := h.appBaseURL + "/settings"
	if errCode != "" {
		target = fmt.Sprintf("%s?error=%s", target, errCode)
	}
	c.Redirect(http.StatusFound, target)
}
