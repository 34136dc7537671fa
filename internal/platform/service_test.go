package platform

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	apperrors "github.com/postpilot/postpilot-backend/internal/errors"
	platformdb "github.com/postpilot/postpilot-backend/internal/platform/gen"
	accountdb "github.com/postpilot/postpilot-backend/internal/socialaccount/gen"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockQuerier is a mock implementation of the database interface
type MockQuerier struct {
	mock.Mock
}

func (m *MockQuerier) CreatePlatform(ctx context.Context, arg platformdb.CreatePlatformParams) (platformdb.SocialPlatform, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(platformdb.SocialPlatform), args.Error(1)
}

func (m *MockQuerier) DeletePlatform(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuerier) GetPlatformByID(ctx context.Context, id int32) (platformdb.SocialPlatform, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(platformdb.SocialPlatform), args.Error(1)
}

func (m *MockQuerier) GetPlatformByName(ctx context.Context, name string) (platformdb.SocialPlatform, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(platformdb.SocialPlatform), args.Error(1)
}

func (m *MockQuerier) ListPlatforms(ctx context.Context) ([]platformdb.SocialPlatform, error) {
	args := m.Called(ctx)
	return args.Get(0).([]platformdb.SocialPlatform), args.Error(1)
}

// MockAccountLister is a mock implementation of AccountLister
type MockAccountLister struct {
	mock.Mock
}

func (m *MockAccountLister) ListSocialAccountsByUser(ctx context.Context, userID uuid.UUID) ([]accountdb.UserSocialAccount, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]accountdb.UserSocialAccount), args.Error(1)
}

// Test helper functions
func createTestPlatforms() []platformdb.SocialPlatform {
	now := time.Now()
	return []platformdb.SocialPlatform{
		{ID: 1, Name: "facebook", DisplayName: "Facebook", CreatedAt: now},
		{ID: 2, Name: "tiktok", DisplayName: "TikTok", CreatedAt: now},
		{ID: 3, Name: "instagram", DisplayName: "Instagram", CreatedAt: now},
	}
}

// TestListPlatformsForUser tests the joined registry listing
func TestListPlatformsForUser(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		setupMocks    func(*MockQuerier, *MockAccountLister)
		expectedError bool
		check         func(*testing.T, []PlatformData)
	}{
		{
			name: "Success - Linked account marks its platform connected",
			setupMocks: func(mockRepo *MockQuerier, mockAccounts *MockAccountLister) {
				mockRepo.On("ListPlatforms", mock.Anything).Return(createTestPlatforms(), nil)
				mockAccounts.On("ListSocialAccountsByUser", mock.Anything, userID).
					Return([]accountdb.UserSocialAccount{
						{
							ID:                 uuid.New(),
							UserID:             userID,
							PlatformID:         3,
							PlatformSpecificID: "ig_1",
							AccessToken:        "L1",
							Handle:             sql.NullString{String: "acme", Valid: true},
						},
					}, nil)
			},
			check: func(t *testing.T, platforms []PlatformData) {
				assert.Len(t, platforms, 3)
				for _, p := range platforms {
					if p.PlatformID == 3 {
						assert.True(t, p.Connected)
						assert.NotNil(t, p.Account)
						assert.Equal(t, "acme", p.Account.Handle)
					} else {
						assert.False(t, p.Connected)
						assert.Nil(t, p.Account)
					}
				}
			},
		},
		{
			name: "Success - No linked accounts",
			setupMocks: func(mockRepo *MockQuerier, mockAccounts *MockAccountLister) {
				mockRepo.On("ListPlatforms", mock.Anything).Return(createTestPlatforms(), nil)
				mockAccounts.On("ListSocialAccountsByUser", mock.Anything, userID).
					Return([]accountdb.UserSocialAccount{}, nil)
			},
			check: func(t *testing.T, platforms []PlatformData) {
				for _, p := range platforms {
					assert.False(t, p.Connected)
				}
			},
		},
		{
			name: "Error - Database error",
			setupMocks: func(mockRepo *MockQuerier, mockAccounts *MockAccountLister) {
				mockRepo.On("ListPlatforms", mock.Anything).
					Return([]platformdb.SocialPlatform{}, errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockQuerier)
			mockAccounts := new(MockAccountLister)
			service := NewPlatformService(mockRepo, mockAccounts, logrus.New())
			tt.setupMocks(mockRepo, mockAccounts)

			platforms, err := service.ListPlatformsForUser(context.Background(), userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				tt.check(t, platforms)
			}
			mockRepo.AssertExpectations(t)
			mockAccounts.AssertExpectations(t)
		})
	}
}

// TestCreatePlatform tests the CreatePlatform method
func TestCreatePlatform(t *testing.T) {
	tests := []struct {
		name          string
		request       CreatePlatformRequest
		setupMocks    func(*MockQuerier)
		expectedError error
	}{
		{
			name:    "Success - Platform registered",
			request: CreatePlatformRequest{Name: "instagram", DisplayName: "Instagram"},
			setupMocks: func(mockRepo *MockQuerier) {
				mockRepo.On("CreatePlatform", mock.Anything, mock.AnythingOfType("platformdb.CreatePlatformParams")).
					Return(platformdb.SocialPlatform{ID: 3, Name: "instagram", DisplayName: "Instagram"}, nil)
			},
		},
		{
			name:    "Error - Duplicate name",
			request: CreatePlatformRequest{Name: "instagram", DisplayName: "Instagram"},
			setupMocks: func(mockRepo *MockQuerier) {
				mockRepo.On("CreatePlatform", mock.Anything, mock.AnythingOfType("platformdb.CreatePlatformParams")).
					Return(platformdb.SocialPlatform{}, &pq.Error{Code: "23505"})
			},
			expectedError: apperrors.ErrDuplicatePlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockQuerier)
			service := NewPlatformService(mockRepo, new(MockAccountLister), logrus.New())
			tt.setupMocks(mockRepo)

			p, err := service.CreatePlatform(context.Background(), tt.request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.request.Name, p.Name)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// TestDeletePlatform tests the DeletePlatform method
func TestDeletePlatform(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockQuerier)
		service := NewPlatformService(mockRepo, new(MockAccountLister), logrus.New())
		mockRepo.On("GetPlatformByID", mock.Anything, int32(3)).
			Return(platformdb.SocialPlatform{ID: 3, Name: "instagram"}, nil)
		mockRepo.On("DeletePlatform", mock.Anything, int32(3)).Return(nil)

		assert.NoError(t, service.DeletePlatform(context.Background(), 3))
	})

	t.Run("Error - Unknown platform", func(t *testing.T) {
		mockRepo := new(MockQuerier)
		service := NewPlatformService(mockRepo, new(MockAccountLister), logrus.New())
		mockRepo.On("GetPlatformByID", mock.Anything, int32(99)).
			Return(platformdb.SocialPlatform{}, sql.ErrNoRows)

		assert.ErrorIs(t, service.DeletePlatform(context.Background(), 99), apperrors.ErrPlatformNotFound)
	})
}
