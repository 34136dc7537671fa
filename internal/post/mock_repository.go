package post

import (
	"context"
	"time"

	"github.com/postpilot/postpilot-backend/internal/integrations/meta"
	postdb "github.com/postpilot/postpilot-backend/internal/post/gen"
	accountdb "github.com/postpilot/postpilot-backend/internal/socialaccount/gen"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock implementation of postdb.Querier
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) CreatePost(ctx context.Context, arg postdb.CreatePostParams) (postdb.Post, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(postdb.Post), args.Error(1)
}

func (m *MockPostRepository) CreateScheduledPost(ctx context.Context, arg postdb.CreateScheduledPostParams) (postdb.ScheduledPost, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(postdb.ScheduledPost), args.Error(1)
}

func (m *MockPostRepository) DeletePost(ctx context.Context, arg postdb.DeletePostParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) GetPostByID(ctx context.Context, id uuid.UUID) (postdb.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(postdb.Post), args.Error(1)
}

func (m *MockPostRepository) GetScheduledPostByID(ctx context.Context, id uuid.UUID) (postdb.ScheduledPost, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(postdb.ScheduledPost), args.Error(1)
}

func (m *MockPostRepository) ListDueScheduledPosts(ctx context.Context, scheduledTime time.Time) ([]postdb.ScheduledPost, error) {
	args := m.Called(ctx, scheduledTime)
	return args.Get(0).([]postdb.ScheduledPost), args.Error(1)
}

func (m *MockPostRepository) ListPostsByUser(ctx context.Context, arg postdb.ListPostsByUserParams) ([]postdb.Post, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).([]postdb.Post), args.Error(1)
}

func (m *MockPostRepository) UpdatePostStatus(ctx context.Context, arg postdb.UpdatePostStatusParams) (postdb.Post, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(postdb.Post), args.Error(1)
}

func (m *MockPostRepository) UpdateScheduledPost(ctx context.Context, arg postdb.UpdateScheduledPostParams) (postdb.ScheduledPost, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(postdb.ScheduledPost), args.Error(1)
}

// MockAccountGetter is a mock implementation of AccountGetter
type MockAccountGetter struct {
	mock.Mock
}

func (m *MockAccountGetter) GetSocialAccountByID(ctx context.Context, id uuid.UUID) (accountdb.UserSocialAccount, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(accountdb.UserSocialAccount), args.Error(1)
}

// MockPublisher is a mock implementation of MediaPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) CreateImageContainer(ctx context.Context, accessToken, igAccountID, imageURL, caption string) (*meta.MediaContainer, error) {
	args := m.Called(ctx, accessToken, igAccountID, imageURL, caption)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meta.MediaContainer), args.Error(1)
}

func (m *MockPublisher) CreateVideoContainer(ctx context.Context, accessToken, igAccountID, videoURL, caption string, isReel bool) (*meta.MediaContainer, error) {
	args := m.Called(ctx, accessToken, igAccountID, videoURL, caption, isReel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meta.MediaContainer), args.Error(1)
}

func (m *MockPublisher) CreateCarouselContainer(ctx context.Context, accessToken, igAccountID string, childrenIDs []string, caption string) (*meta.MediaContainer, error) {
	args := m.Called(ctx, accessToken, igAccountID, childrenIDs, caption)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meta.MediaContainer), args.Error(1)
}

func (m *MockPublisher) PublishMedia(ctx context.Context, accessToken, igAccountID, creationID string) (*meta.PublishResult, error) {
	args := m.Called(ctx, accessToken, igAccountID, creationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meta.PublishResult), args.Error(1)
}

func (m *MockPublisher) CreateStory(ctx context.Context, accessToken, igAccountID, mediaURL, mediaType string) (*meta.PublishResult, error) {
	args := m.Called(ctx, accessToken, igAccountID, mediaURL, mediaType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meta.PublishResult), args.Error(1)
}

func (m *MockPublisher) GetMediaStatus(ctx context.Context, accessToken, containerID string) (*meta.MediaStatus, error) {
	args := m.Called(ctx, accessToken, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meta.MediaStatus), args.Error(1)
}
