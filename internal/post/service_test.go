package post

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	apperrors "github.com/postpilot/postpilot-backend/internal/errors"
	"github.com/postpilot/postpilot-backend/internal/integrations/meta"
	postdb "github.com/postpilot/postpilot-backend/internal/post/gen"
	accountdb "github.com/postpilot/postpilot-backend/internal/socialaccount/gen"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Test helper functions
func newTestService(mockRepo *MockPostRepository, mockAccounts *MockAccountGetter, mockPublisher *MockPublisher) *PostService {
	service := NewPostService(mockRepo, mockAccounts, mockPublisher, logrus.New())
	service.pollInterval = 0
	return service
}

func createTestPost(userID uuid.UUID, mediaType string) postdb.Post {
	now := time.Now()
	return postdb.Post{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Launch day",
		Content:   sql.NullString{String: "We are live", Valid: true},
		MediaType: mediaType,
		MediaUrls: []string{"https://cdn.example/launch.jpg"},
		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func createTestSchedule(postID, accountID uuid.UUID) postdb.ScheduledPost {
	now := time.Now()
	return postdb.ScheduledPost{
		ID:              uuid.New(),
		PostID:          postID,
		SocialAccountID: accountID,
		ScheduledTime:   now.Add(time.Hour),
		PublishStatus:   PublishStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func createTestLinkedAccount(userID uuid.UUID) accountdb.UserSocialAccount {
	return accountdb.UserSocialAccount{
		ID:                 uuid.New(),
		UserID:             userID,
		PlatformID:         3,
		PlatformSpecificID: "ig_1",
		PlatformUserID:     sql.NullString{String: "17841400000000000", Valid: true},
		AccessToken:        "L1",
	}
}

// TestCreatePost tests the CreatePost method
func TestCreatePost(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		request       CreatePostRequest
		setupMocks    func(*MockPostRepository)
		expectedError bool
	}{
		{
			name: "Success - Draft post by default",
			request: CreatePostRequest{
				Title:     "Launch day",
				Content:   "We are live",
				MediaType: MediaTypeImage,
				MediaUrls: []string{"https://cdn.example/launch.jpg"},
			},
			setupMocks: func(mockRepo *MockPostRepository) {
				mockRepo.On("CreatePost", mock.Anything, mock.MatchedBy(func(arg postdb.CreatePostParams) bool {
					return arg.UserID == userID && arg.Status == StatusDraft
				})).Return(createTestPost(userID, MediaTypeImage), nil)
			},
		},
		{
			name: "Error - Unknown media type",
			request: CreatePostRequest{
				Title:     "Launch day",
				MediaType: "GIF",
				MediaUrls: []string{"https://cdn.example/launch.gif"},
			},
			setupMocks:    func(mockRepo *MockPostRepository) {},
			expectedError: true,
		},
		{
			name: "Error - Database error",
			request: CreatePostRequest{
				Title:     "Launch day",
				MediaType: MediaTypeImage,
				MediaUrls: []string{"https://cdn.example/launch.jpg"},
			},
			setupMocks: func(mockRepo *MockPostRepository) {
				mockRepo.On("CreatePost", mock.Anything, mock.AnythingOfType("postdb.CreatePostParams")).
					Return(postdb.Post{}, errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			service := newTestService(mockRepo, new(MockAccountGetter), new(MockPublisher))
			tt.setupMocks(mockRepo)

			result, err := service.CreatePost(context.Background(), userID, tt.request)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.request.Title, result.Title)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// TestGetPost tests ownership enforcement on reads
func TestGetPost(t *testing.T) {
	userID := uuid.New()

	t.Run("Error - Another user's post reports not found", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := newTestService(mockRepo, new(MockAccountGetter), new(MockPublisher))

		foreign := createTestPost(uuid.New(), MediaTypeImage)
		mockRepo.On("GetPostByID", mock.Anything, foreign.ID).Return(foreign, nil)

		result, err := service.GetPost(context.Background(), userID, foreign.ID)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})

	t.Run("Error - Missing post", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := newTestService(mockRepo, new(MockAccountGetter), new(MockPublisher))

		postID := uuid.New()
		mockRepo.On("GetPostByID", mock.Anything, postID).Return(postdb.Post{}, sql.ErrNoRows)

		_, err := service.GetPost(context.Background(), userID, postID)
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})
}

// TestSchedulePost tests the SchedulePost method
func TestSchedulePost(t *testing.T) {
	userID := uuid.New()
	post := createTestPost(userID, MediaTypeImage)
	account := createTestLinkedAccount(userID)

	tests := []struct {
		name          string
		request       SchedulePostRequest
		setupMocks    func(*MockPostRepository, *MockAccountGetter)
		expectedError error
	}{
		{
			name: "Success - Pending schedule created",
			request: SchedulePostRequest{
				SocialAccountID: account.ID.String(),
				ScheduledTime:   time.Now().Add(time.Hour),
			},
			setupMocks: func(mockRepo *MockPostRepository, mockAccounts *MockAccountGetter) {
				mockRepo.On("GetPostByID", mock.Anything, post.ID).Return(post, nil)
				mockAccounts.On("GetSocialAccountByID", mock.Anything, account.ID).Return(account, nil)
				mockRepo.On("CreateScheduledPost", mock.Anything, mock.MatchedBy(func(arg postdb.CreateScheduledPostParams) bool {
					return arg.PostID == post.ID && arg.PublishStatus == PublishStatusPending
				})).Return(createTestSchedule(post.ID, account.ID), nil)
				mockRepo.On("UpdatePostStatus", mock.Anything, postdb.UpdatePostStatusParams{
					ID:     post.ID,
					Status: StatusScheduled,
				}).Return(post, nil)
			},
		},
		{
			name: "Error - Account owned by another user",
			request: SchedulePostRequest{
				SocialAccountID: account.ID.String(),
				ScheduledTime:   time.Now().Add(time.Hour),
			},
			setupMocks: func(mockRepo *MockPostRepository, mockAccounts *MockAccountGetter) {
				mockRepo.On("GetPostByID", mock.Anything, post.ID).Return(post, nil)
				foreign := createTestLinkedAccount(uuid.New())
				foreign.ID = account.ID
				mockAccounts.On("GetSocialAccountByID", mock.Anything, account.ID).Return(foreign, nil)
			},
			expectedError: apperrors.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			mockAccounts := new(MockAccountGetter)
			service := newTestService(mockRepo, mockAccounts, new(MockPublisher))
			tt.setupMocks(mockRepo, mockAccounts)

			schedule, err := service.SchedulePost(context.Background(), userID, post.ID, tt.request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, schedule)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, PublishStatusPending, schedule.PublishStatus)
			}
			mockRepo.AssertExpectations(t)
			mockAccounts.AssertExpectations(t)
		})
	}
}

// TestRecordOutcome tests recording publish outcomes on a schedule
func TestRecordOutcome(t *testing.T) {
	userID := uuid.New()
	post := createTestPost(userID, MediaTypeImage)
	account := createTestLinkedAccount(userID)

	t.Run("Success - Status-only update preserves recorded fields", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := newTestService(mockRepo, new(MockAccountGetter), new(MockPublisher))

		publishedAt := time.Now().Add(-time.Hour)
		schedule := createTestSchedule(post.ID, account.ID)
		schedule.PublishStatus = PublishStatusPublished
		schedule.PublishedTime = sql.NullTime{Time: publishedAt, Valid: true}
		schedule.ExternalPostID = sql.NullString{String: "media-9", Valid: true}

		mockRepo.On("GetScheduledPostByID", mock.Anything, schedule.ID).Return(schedule, nil)
		mockRepo.On("GetPostByID", mock.Anything, post.ID).Return(post, nil)

		// Absent fields go to the database as NULL so the update keeps the
		// stored values instead of overwriting them.
		updated := schedule
		updated.PublishStatus = PublishStatusFailed
		mockRepo.On("UpdateScheduledPost", mock.Anything, mock.MatchedBy(func(arg postdb.UpdateScheduledPostParams) bool {
			return arg.PublishStatus == PublishStatusFailed &&
				!arg.PublishedTime.Valid &&
				!arg.ExternalPostID.Valid &&
				!arg.ErrorMessage.Valid
		})).Return(updated, nil)

		result, err := service.RecordOutcome(context.Background(), userID, schedule.ID, UpdateScheduleRequest{
			PublishStatus: PublishStatusFailed,
		})

		require.NoError(t, err)
		assert.Equal(t, PublishStatusFailed, result.PublishStatus)
		assert.Equal(t, "media-9", result.ExternalPostID)
		require.NotNil(t, result.PublishedTime)
		assert.Equal(t, publishedAt, *result.PublishedTime)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Full outcome recorded", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := newTestService(mockRepo, new(MockAccountGetter), new(MockPublisher))

		schedule := createTestSchedule(post.ID, account.ID)
		publishedAt := time.Now()

		mockRepo.On("GetScheduledPostByID", mock.Anything, schedule.ID).Return(schedule, nil)
		mockRepo.On("GetPostByID", mock.Anything, post.ID).Return(post, nil)

		updated := schedule
		updated.PublishStatus = PublishStatusPublished
		updated.PublishedTime = sql.NullTime{Time: publishedAt, Valid: true}
		updated.ExternalPostID = sql.NullString{String: "media-11", Valid: true}
		mockRepo.On("UpdateScheduledPost", mock.Anything, mock.MatchedBy(func(arg postdb.UpdateScheduledPostParams) bool {
			return arg.PublishStatus == PublishStatusPublished &&
				arg.PublishedTime.Valid && arg.PublishedTime.Time.Equal(publishedAt) &&
				arg.ExternalPostID.Valid && arg.ExternalPostID.String == "media-11"
		})).Return(updated, nil)

		result, err := service.RecordOutcome(context.Background(), userID, schedule.ID, UpdateScheduleRequest{
			PublishStatus:  PublishStatusPublished,
			PublishedTime:  &publishedAt,
			ExternalPostID: "media-11",
		})

		require.NoError(t, err)
		assert.Equal(t, "media-11", result.ExternalPostID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Another user's schedule reports not found", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := newTestService(mockRepo, new(MockAccountGetter), new(MockPublisher))

		foreignPost := createTestPost(uuid.New(), MediaTypeImage)
		schedule := createTestSchedule(foreignPost.ID, account.ID)
		mockRepo.On("GetScheduledPostByID", mock.Anything, schedule.ID).Return(schedule, nil)
		mockRepo.On("GetPostByID", mock.Anything, foreignPost.ID).Return(foreignPost, nil)

		_, err := service.RecordOutcome(context.Background(), userID, schedule.ID, UpdateScheduleRequest{
			PublishStatus: PublishStatusFailed,
		})

		assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)
		mockRepo.AssertNotCalled(t, "UpdateScheduledPost", mock.Anything, mock.Anything)
	})
}

// TestPublishNow tests the publish orchestration
func TestPublishNow(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Image container created and published", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockAccounts := new(MockAccountGetter)
		mockPublisher := new(MockPublisher)
		service := newTestService(mockRepo, mockAccounts, mockPublisher)

		post := createTestPost(userID, MediaTypeImage)
		account := createTestLinkedAccount(userID)
		schedule := createTestSchedule(post.ID, account.ID)

		mockRepo.On("GetScheduledPostByID", mock.Anything, schedule.ID).Return(schedule, nil)
		mockRepo.On("GetPostByID", mock.Anything, post.ID).Return(post, nil)
		mockAccounts.On("GetSocialAccountByID", mock.Anything, account.ID).Return(account, nil)

		mockPublisher.On("CreateImageContainer", mock.Anything, "L1", "17841400000000000", post.MediaUrls[0], "We are live").
			Return(&meta.MediaContainer{ID: "container-1"}, nil)
		mockPublisher.On("PublishMedia", mock.Anything, "L1", "17841400000000000", "container-1").
			Return(&meta.PublishResult{ID: "media-9"}, nil)

		published := schedule
		published.PublishStatus = PublishStatusPublished
		published.ExternalPostID = sql.NullString{String: "media-9", Valid: true}
		mockRepo.On("UpdateScheduledPost", mock.Anything, mock.MatchedBy(func(arg postdb.UpdateScheduledPostParams) bool {
			return arg.PublishStatus == PublishStatusPublished &&
				arg.ExternalPostID.String == "media-9" &&
				arg.ErrorMessage.Valid && arg.ErrorMessage.String == ""
		})).Return(published, nil)
		mockRepo.On("UpdatePostStatus", mock.Anything, postdb.UpdatePostStatusParams{
			ID:     post.ID,
			Status: StatusPublished,
		}).Return(post, nil)

		result, err := service.PublishNow(context.Background(), userID, schedule.ID)

		require.NoError(t, err)
		assert.Equal(t, PublishStatusPublished, result.PublishStatus)
		assert.Equal(t, "media-9", result.ExternalPostID)
		mockPublisher.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Reel waits for container processing", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockAccounts := new(MockAccountGetter)
		mockPublisher := new(MockPublisher)
		service := newTestService(mockRepo, mockAccounts, mockPublisher)

		post := createTestPost(userID, MediaTypeReel)
		post.MediaUrls = []string{"https://cdn.example/launch.mp4"}
		account := createTestLinkedAccount(userID)
		schedule := createTestSchedule(post.ID, account.ID)

		mockRepo.On("GetScheduledPostByID", mock.Anything, schedule.ID).Return(schedule, nil)
		mockRepo.On("GetPostByID", mock.Anything, post.ID).Return(post, nil)
		mockAccounts.On("GetSocialAccountByID", mock.Anything, account.ID).Return(account, nil)

		mockPublisher.On("CreateVideoContainer", mock.Anything, "L1", "17841400000000000", post.MediaUrls[0], "We are live", true).
			Return(&meta.MediaContainer{ID: "container-2"}, nil)
		mockPublisher.On("GetMediaStatus", mock.Anything, "L1", "container-2").
			Return(&meta.MediaStatus{ID: "container-2", StatusCode: "IN_PROGRESS"}, nil).Once()
		mockPublisher.On("GetMediaStatus", mock.Anything, "L1", "container-2").
			Return(&meta.MediaStatus{ID: "container-2", StatusCode: "FINISHED"}, nil).Once()
		mockPublisher.On("PublishMedia", mock.Anything, "L1", "17841400000000000", "container-2").
			Return(&meta.PublishResult{ID: "media-10"}, nil)

		published := schedule
		published.PublishStatus = PublishStatusPublished
		mockRepo.On("UpdateScheduledPost", mock.Anything, mock.AnythingOfType("postdb.UpdateScheduledPostParams")).
			Return(published, nil)
		mockRepo.On("UpdatePostStatus", mock.Anything, mock.AnythingOfType("postdb.UpdatePostStatusParams")).
			Return(post, nil)

		_, err := service.PublishNow(context.Background(), userID, schedule.ID)

		require.NoError(t, err)
		mockPublisher.AssertNumberOfCalls(t, "GetMediaStatus", 2)
	})

	t.Run("Error - Publish failure recorded on schedule and post", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockAccounts := new(MockAccountGetter)
		mockPublisher := new(MockPublisher)
		service := newTestService(mockRepo, mockAccounts, mockPublisher)

		post := createTestPost(userID, MediaTypeImage)
		account := createTestLinkedAccount(userID)
		schedule := createTestSchedule(post.ID, account.ID)

		mockRepo.On("GetScheduledPostByID", mock.Anything, schedule.ID).Return(schedule, nil)
		mockRepo.On("GetPostByID", mock.Anything, post.ID).Return(post, nil)
		mockAccounts.On("GetSocialAccountByID", mock.Anything, account.ID).Return(account, nil)

		mockPublisher.On("CreateImageContainer", mock.Anything, "L1", "17841400000000000", post.MediaUrls[0], "We are live").
			Return(nil, errors.New("graph api error: Invalid image URL (code 100)"))

		mockRepo.On("UpdateScheduledPost", mock.Anything, mock.MatchedBy(func(arg postdb.UpdateScheduledPostParams) bool {
			return arg.PublishStatus == PublishStatusFailed && arg.ErrorMessage.Valid
		})).Return(schedule, nil)
		mockRepo.On("UpdatePostStatus", mock.Anything, postdb.UpdatePostStatusParams{
			ID:     post.ID,
			Status: StatusFailed,
		}).Return(post, nil)

		result, err := service.PublishNow(context.Background(), userID, schedule.ID)

		assert.Error(t, err)
		assert.Nil(t, result)
		mockRepo.AssertExpectations(t)
	})
}

// TestDeletePost tests the DeletePost method
func TestDeletePost(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := newTestService(mockRepo, new(MockAccountGetter), new(MockPublisher))
		mockRepo.On("DeletePost", mock.Anything, postdb.DeletePostParams{ID: postID, UserID: userID}).
			Return(int64(1), nil)

		assert.NoError(t, service.DeletePost(context.Background(), userID, postID))
	})

	t.Run("Error - Not found", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := newTestService(mockRepo, new(MockAccountGetter), new(MockPublisher))
		mockRepo.On("DeletePost", mock.Anything, mock.AnythingOfType("postdb.DeletePostParams")).
			Return(int64(0), nil)

		assert.ErrorIs(t, service.DeletePost(context.Background(), userID, postID), apperrors.ErrPostNotFound)
	})
}
