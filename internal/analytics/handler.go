package analytics

import (
	"net/http"

	apperrors "github.com/postpilot/postpilot-backend/internal/errors"
	"github.com/postpilot/postpilot-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AnalyticsHandler handles HTTP requests for post analytics.
type AnalyticsHandler struct {
	service *AnalyticsService
	logger  *logrus.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service *AnalyticsService, logger *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{service, logger}
}

// RegisterAnalyticsRoutes registers the analytics routes behind the session middleware.
func RegisterAnalyticsRoutes(handler *AnalyticsHandler, routerGroup *gin.RouterGroup) {
	analyticsGroup := routerGroup.Group("/scheduled-posts/:scheduleID/analytics")
	{
		analyticsGroup.POST("/", handler.RecordMetric)
		analyticsGroup.GET("/", handler.ListMetrics)
	}
}

// RecordMetric handles POST /scheduled-posts/:scheduleID/analytics.
func (h *AnalyticsHandler) RecordMetric(c *gin.Context) {
	userID, scheduleID, ok := h.requestIDs(c)
	if !ok {
		return
	}
	var req RecordMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apperrors.ErrInvalidBody.Status, apperrors.ErrInvalidBody.Code, apperrors.ErrInvalidBody.Message)
		return
	}
	metric, err := h.service.RecordMetric(c.Request.Context(), userID, scheduleID, req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, metric)
}

// ListMetrics handles GET /scheduled-posts/:scheduleID/analytics.
func (h *AnalyticsHandler) ListMetrics(c *gin.Context) {
	userID, scheduleID, ok := h.requestIDs(c)
	if !ok {
		return
	}
	metrics, err := h.service.ListMetrics(c.Request.Context(), userID, scheduleID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, metrics)
}

func (h *AnalyticsHandler) requestIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, apperrors.ErrUnauthorized.Code, apperrors.ErrUnauthorized.Message)
		return uuid.Nil, uuid.Nil, false
	}
	scheduleID, err := uuid.Parse(c.Param("scheduleID"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid_schedule_id", "schedule id must be a valid UUID")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, scheduleID, true
}

func (h *AnalyticsHandler) respondServiceError(c *gin.Context, err error) {
	if apiErr, ok := err.(*apperrors.APIError); ok {
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	h.logger.Error("analytics handler error: ", err)
	utils.RespondError(c, http.StatusInternalServerError, apperrors.ErrInternalServer.Code, apperrors.ErrInternalServer.Message)
}
