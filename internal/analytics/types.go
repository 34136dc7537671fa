package analytics

import (
	"context"
	"time"

	"github.com/postpilot/postpilot-backend/internal/post"

	"github.com/google/uuid"
)

// ScheduleGuard confirms the caller owns a scheduled post before metrics are
// attached to it. Satisfied by the post service.
type ScheduleGuard interface {
	GetSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*post.ScheduledPostData, error)
}

// RecordMetricRequest is the request body for recording a metric sample.
type RecordMetricRequest struct {
	MetricName  string     `json:"metric_name" binding:"required"`
	MetricValue float64    `json:"metric_value"`
	RetrievedAt *time.Time `json:"retrieved_at"`
}

// MetricData is the response body for a recorded metric sample.
type MetricData struct {
	ID              string    `json:"id"`
	ScheduledPostID string    `json:"scheduled_post_id"`
	MetricName      string    `json:"metric_name"`
	MetricValue     float64   `json:"metric_value"`
	RetrievedAt     time.Time `json:"retrieved_at"`
	CreatedAt       time.Time `json:"created_at"`
}
