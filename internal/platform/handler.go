package platform

import (
	"net/http"
	"strconv"

	apperrors "github.com/postpilot/postpilot-backend/internal/errors"
	"github.com/postpilot/postpilot-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PlatformHandler handles HTTP requests for the platform registry.
type PlatformHandler struct {
	service *PlatformService
	logger  *logrus.Logger
}

// NewPlatformHandler creates a new PlatformHandler.
func NewPlatformHandler(service *PlatformService, logger *logrus.Logger) *PlatformHandler {
	return &PlatformHandler{service, logger}
}

// RegisterPlatformRoutes registers platform routes. The write endpoints require
// the admin role; the listing is available to any signed-in user.
func RegisterPlatformRoutes(handler *PlatformHandler, routerGroup *gin.RouterGroup, adminMiddleware gin.HandlerFunc) {
	platformGroup := routerGroup.Group("/platforms")
	{
		platformGroup.GET("/", handler.ListPlatforms)
		platformGroup.POST("/", adminMiddleware, handler.CreatePlatform)
		platformGroup.DELETE("/:platformID", adminMiddleware, handler.DeletePlatform)
	}
}

// ListPlatforms handles GET /platforms.
func (h *PlatformHandler) ListPlatforms(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, apperrors.ErrUnauthorized.Code, apperrors.ErrUnauthorized.Message)
		return
	}
	platforms, err := h.service.ListPlatformsForUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("ListPlatforms error: ", err)
		utils.RespondError(c, http.StatusInternalServerError, apperrors.ErrInternalServer.Code, "could not list platforms")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, platforms)
}

// CreatePlatform handles POST /platforms.
func (h *PlatformHandler) CreatePlatform(c *gin.Context) {
	var req CreatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apperrors.ErrInvalidBody.Status, apperrors.ErrInvalidBody.Code, apperrors.ErrInvalidBody.Message)
		return
	}
	p, err := h.service.CreatePlatform(c.Request.Context(), req)
	if err != nil {
		if apiErr, ok := err.(*apperrors.APIError); ok {
			utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
			return
		}
		h.logger.Error("CreatePlatform error: ", err)
		utils.RespondError(c, http.StatusInternalServerError, apperrors.ErrInternalServer.Code, apperrors.ErrInternalServer.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, p)
}

// DeletePlatform handles DELETE /platforms/:platformID.
func (h *PlatformHandler) DeletePlatform(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("platformID"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid_platform_id", "platform id must be an integer")
		return
	}
	if err := h.service.DeletePlatform(c.Request.Context(), int32(id)); err != nil {
		if apiErr, ok := err.(*apperrors.APIError); ok {
			utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
			return
		}
		h.logger.Error("DeletePlatform error: ", err)
		utils.RespondError(c, http.StatusInternalServerError, apperrors.ErrInternalServer.Code, apperrors.ErrInternalServer.Message)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "platform deleted")
}
