package analytics

import (
	"context"
	"time"

	analyticsdb "github.com/postpilot/postpilot-backend/internal/analytics/gen"
	apperrors "github.com/postpilot/postpilot-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AnalyticsService records and lists per-post metric samples.
type AnalyticsService struct {
	repo      analyticsdb.Querier
	schedules ScheduleGuard
	logger    *logrus.Logger
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(repo analyticsdb.Querier, schedules ScheduleGuard, logger *logrus.Logger) *AnalyticsService {
	return &AnalyticsService{
		repo:      repo,
		schedules: schedules,
		logger:    logger,
	}
}

// RecordMetric stores one metric sample against a scheduled post the caller owns.
// A missing retrieved_at defaults to the time of the call.
func (s *AnalyticsService) RecordMetric(ctx context.Context, userID, scheduleID uuid.UUID, req RecordMetricRequest) (*MetricData, error) {
	if _, err := s.schedules.GetSchedule(ctx, userID, scheduleID); err != nil {
		return nil, err
	}
	retrievedAt := time.Now()
	if req.RetrievedAt != nil {
		retrievedAt = *req.RetrievedAt
	}
	metric, err := s.repo.SavePostAnalytics(ctx, analyticsdb.SavePostAnalyticsParams{
		ScheduledPostID: scheduleID,
		MetricName:      req.MetricName,
		MetricValue:     req.MetricValue,
		RetrievedAt:     retrievedAt,
	})
	if err != nil {
		// The schedule can disappear between the ownership check and the insert.
		if apperrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrScheduleNotFound
		}
		s.logger.Errorf("SavePostAnalytics error: %v", err)
		return nil, err
	}
	return toMetricData(metric), nil
}

// ListMetrics returns the metric samples for a scheduled post, newest first.
func (s *AnalyticsService) ListMetrics(ctx context.Context, userID, scheduleID uuid.UUID) ([]*MetricData, error) {
	if _, err := s.schedules.GetSchedule(ctx, userID, scheduleID); err != nil {
		return nil, err
	}
	metrics, err := s.repo.ListPostAnalytics(ctx, scheduleID)
	if err != nil {
		s.logger.Errorf("ListPostAnalytics error: %v", err)
		return nil, err
	}
	data := make([]*MetricData, 0, len(metrics))
	for _, metric := range metrics {
		data = append(data, toMetricData(metric))
	}
	return data, nil
}

func toMetricData(metric analyticsdb.PostAnalytic) *MetricData {
	return &MetricData{
		ID:              metric.ID.String(),
		ScheduledPostID: metric.ScheduledPostID.String(),
		MetricName:      metric.MetricName,
		MetricValue:     metric.MetricValue,
		RetrievedAt:     metric.RetrievedAt,
		CreatedAt:       metric.CreatedAt,
	}
}
