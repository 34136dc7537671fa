package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	analyticsdb "github.com/postpilot/postpilot-backend/internal/analytics/gen"
	apperrors "github.com/postpilot/postpilot-backend/internal/errors"
	"github.com/postpilot/postpilot-backend/internal/post"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAnalyticsRepository is a mock implementation of analyticsdb.Querier
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) ListPostAnalytics(ctx context.Context, scheduledPostID uuid.UUID) ([]analyticsdb.PostAnalytic, error) {
	args := m.Called(ctx, scheduledPostID)
	return args.Get(0).([]analyticsdb.PostAnalytic), args.Error(1)
}

func (m *MockAnalyticsRepository) SavePostAnalytics(ctx context.Context, arg analyticsdb.SavePostAnalyticsParams) (analyticsdb.PostAnalytic, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(analyticsdb.PostAnalytic), args.Error(1)
}

// MockScheduleGuard is a mock implementation of ScheduleGuard
type MockScheduleGuard struct {
	mock.Mock
}

func (m *MockScheduleGuard) GetSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*post.ScheduledPostData, error) {
	args := m.Called(ctx, userID, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*post.ScheduledPostData), args.Error(1)
}

// TestRecordMetric tests the RecordMetric method
func TestRecordMetric(t *testing.T) {
	userID := uuid.New()
	scheduleID := uuid.New()

	tests := []struct {
		name          string
		request       RecordMetricRequest
		setupMocks    func(*MockAnalyticsRepository, *MockScheduleGuard)
		expectedError error
	}{
		{
			name: "Success - Metric recorded",
			request: RecordMetricRequest{
				MetricName:  "likes",
				MetricValue: 120,
			},
			setupMocks: func(mockRepo *MockAnalyticsRepository, mockGuard *MockScheduleGuard) {
				mockGuard.On("GetSchedule", mock.Anything, userID, scheduleID).
					Return(&post.ScheduledPostData{ID: scheduleID.String()}, nil)
				mockRepo.On("SavePostAnalytics", mock.Anything, mock.MatchedBy(func(arg analyticsdb.SavePostAnalyticsParams) bool {
					return arg.ScheduledPostID == scheduleID &&
						arg.MetricName == "likes" &&
						arg.MetricValue == 120 &&
						!arg.RetrievedAt.IsZero()
				})).Return(analyticsdb.PostAnalytic{
					ID:              uuid.New(),
					ScheduledPostID: scheduleID,
					MetricName:      "likes",
					MetricValue:     120,
					RetrievedAt:     time.Now(),
				}, nil)
			},
		},
		{
			name: "Error - Schedule not owned by caller",
			request: RecordMetricRequest{
				MetricName:  "likes",
				MetricValue: 120,
			},
			setupMocks: func(mockRepo *MockAnalyticsRepository, mockGuard *MockScheduleGuard) {
				mockGuard.On("GetSchedule", mock.Anything, userID, scheduleID).
					Return(nil, apperrors.ErrScheduleNotFound)
			},
			expectedError: apperrors.ErrScheduleNotFound,
		},
		{
			name: "Error - Schedule deleted before insert",
			request: RecordMetricRequest{
				MetricName:  "likes",
				MetricValue: 120,
			},
			setupMocks: func(mockRepo *MockAnalyticsRepository, mockGuard *MockScheduleGuard) {
				mockGuard.On("GetSchedule", mock.Anything, userID, scheduleID).
					Return(&post.ScheduledPostData{ID: scheduleID.String()}, nil)
				mockRepo.On("SavePostAnalytics", mock.Anything, mock.AnythingOfType("analyticsdb.SavePostAnalyticsParams")).
					Return(analyticsdb.PostAnalytic{}, &pq.Error{Code: "23503"})
			},
			expectedError: apperrors.ErrScheduleNotFound,
		},
		{
			name: "Error - Database error",
			request: RecordMetricRequest{
				MetricName:  "likes",
				MetricValue: 120,
			},
			setupMocks: func(mockRepo *MockAnalyticsRepository, mockGuard *MockScheduleGuard) {
				mockGuard.On("GetSchedule", mock.Anything, userID, scheduleID).
					Return(&post.ScheduledPostData{ID: scheduleID.String()}, nil)
				mockRepo.On("SavePostAnalytics", mock.Anything, mock.AnythingOfType("analyticsdb.SavePostAnalyticsParams")).
					Return(analyticsdb.PostAnalytic{}, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAnalyticsRepository)
			mockGuard := new(MockScheduleGuard)
			service := NewAnalyticsService(mockRepo, mockGuard, logrus.New())
			tt.setupMocks(mockRepo, mockGuard)

			metric, err := service.RecordMetric(context.Background(), userID, scheduleID, tt.request)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, metric)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "likes", metric.MetricName)
			}
			mockRepo.AssertExpectations(t)
			mockGuard.AssertExpectations(t)
		})
	}
}

// TestListMetrics tests the ListMetrics method
func TestListMetrics(t *testing.T) {
	userID := uuid.New()
	scheduleID := uuid.New()

	t.Run("Success - Samples returned newest first", func(t *testing.T) {
		mockRepo := new(MockAnalyticsRepository)
		mockGuard := new(MockScheduleGuard)
		service := NewAnalyticsService(mockRepo, mockGuard, logrus.New())

		mockGuard.On("GetSchedule", mock.Anything, userID, scheduleID).
			Return(&post.ScheduledPostData{ID: scheduleID.String()}, nil)

		newer := analyticsdb.PostAnalytic{ID: uuid.New(), ScheduledPostID: scheduleID, MetricName: "likes", MetricValue: 150, RetrievedAt: time.Now()}
		older := analyticsdb.PostAnalytic{ID: uuid.New(), ScheduledPostID: scheduleID, MetricName: "likes", MetricValue: 120, RetrievedAt: time.Now().Add(-time.Hour)}
		mockRepo.On("ListPostAnalytics", mock.Anything, scheduleID).
			Return([]analyticsdb.PostAnalytic{newer, older}, nil)

		metrics, err := service.ListMetrics(context.Background(), userID, scheduleID)

		assert.NoError(t, err)
		assert.Len(t, metrics, 2)
		assert.Equal(t, float64(150), metrics[0].MetricValue)
	})

	t.Run("Error - Schedule not owned by caller", func(t *testing.T) {
		mockRepo := new(MockAnalyticsRepository)
		mockGuard := new(MockScheduleGuard)
		service := NewAnalyticsService(mockRepo, mockGuard, logrus.New())

		mockGuard.On("GetSchedule", mock.Anything, userID, scheduleID).
			Return(nil, apperrors.ErrScheduleNotFound)

		_, err := service.ListMetrics(context.Background(), userID, scheduleID)

		assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)
		mockRepo.AssertNotCalled(t, "ListPostAnalytics", mock.Anything, mock.Anything)
	})
}
