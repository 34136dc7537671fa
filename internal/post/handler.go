package post

import (
	"net/http"

	apperrors "github.com/postpilot/postpilot-backend/internal/errors"
	"github.com/postpilot/postpilot-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PostHandler handles HTTP requests for posts and scheduled posts.
type PostHandler struct {
	service *PostService
	logger  *logrus.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service *PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{service, logger}
}

// RegisterPostRoutes registers the post and scheduled-post routes behind the
// session middleware.
func RegisterPostRoutes(handler *PostHandler, routerGroup *gin.RouterGroup) {
	postGroup := routerGroup.Group("/posts")
	{
		postGroup.POST("/", handler.CreatePost)
		postGroup.GET("/", handler.ListPosts)
		postGroup.GET("/:postID", handler.GetPost)
		postGroup.DELETE("/:postID", handler.DeletePost)
		postGroup.POST("/:postID/schedule", handler.SchedulePost)
	}
	scheduleGroup := routerGroup.Group("/scheduled-posts")
	{
		scheduleGroup.GET("/:scheduleID", handler.GetSchedule)
		scheduleGroup.PATCH("/:scheduleID", handler.RecordOutcome)
		scheduleGroup.POST("/:scheduleID/publish", handler.PublishNow)
	}
}

// CreatePost handles POST /posts.
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apperrors.ErrInvalidBody.Status, apperrors.ErrInvalidBody.Code, apperrors.ErrInvalidBody.Message)
		return
	}
	p, err := h.service.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, p)
}

// ListPosts handles GET /posts with an optional ?status= filter.
func (h *PostHandler) ListPosts(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	posts, err := h.service.ListPosts(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, posts)
}

// GetPost handles GET /posts/:postID.
func (h *PostHandler) GetPost(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	postID, ok := h.pathUUID(c, "postID")
	if !ok {
		return
	}
	p, err := h.service.GetPost(c.Request.Context(), userID, postID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, p)
}

// DeletePost handles DELETE /posts/:postID.
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	postID, ok := h.pathUUID(c, "postID")
	if !ok {
		return
	}
	if err := h.service.DeletePost(c.Request.Context(), userID, postID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "post deleted")
}

// SchedulePost handles POST /posts/:postID/schedule.
func (h *PostHandler) SchedulePost(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	postID, ok := h.pathUUID(c, "postID")
	if !ok {
		return
	}
	var req SchedulePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apperrors.ErrInvalidBody.Status, apperrors.ErrInvalidBody.Code, apperrors.ErrInvalidBody.Message)
		return
	}
	schedule, err := h.service.SchedulePost(c.Request.Context(), userID, postID, req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, schedule)
}

// GetSchedule handles GET /scheduled-posts/:scheduleID.
func (h *PostHandler) GetSchedule(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	scheduleID, ok := h.pathUUID(c, "scheduleID")
	if !ok {
		return
	}
	schedule, err := h.service.GetSchedule(c.Request.Context(), userID, scheduleID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, schedule)
}

// RecordOutcome handles PATCH /scheduled-posts/:scheduleID.
func (h *PostHandler) RecordOutcome(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	scheduleID, ok := h.pathUUID(c, "scheduleID")
	if !ok {
		return
	}
	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apperrors.ErrInvalidBody.Status, apperrors.ErrInvalidBody.Code, apperrors.ErrInvalidBody.Message)
		return
	}
	schedule, err := h.service.RecordOutcome(c.Request.Context(), userID, scheduleID, req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, schedule)
}

// PublishNow handles POST /scheduled-posts/:scheduleID/publish.
func (h *PostHandler) PublishNow(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	scheduleID, ok := h.pathUUID(c, "scheduleID")
	if !ok {
		return
	}
	schedule, err := h.service.PublishNow(c.Request.Context(), userID, scheduleID)
	if err != nil {
		if apiErr, ok := err.(*apperrors.APIError); ok {
			utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
			return
		}
		// Publish failures carry provider detail worth returning to the caller.
		utils.RespondError(c, http.StatusBadGateway, "publish_failed", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, schedule)
}

func (h *PostHandler) currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, apperrors.ErrUnauthorized.Code, apperrors.ErrUnauthorized.Message)
		return uuid.Nil, false
	}
	return userID, true
}

func (h *PostHandler) pathUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid_"+param, param+" must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *PostHandler) respondServiceError(c *gin.Context, err error) {
	if apiErr, ok := err.(*apperrors.APIError); ok {
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	h.logger.Error("post handler error: ", err)
	utils.RespondError(c, http.StatusInternalServerError, apperrors.ErrInternalServer.Code, apperrors.ErrInternalServer.Message)
}
