package auth

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	userdb "github.com/postpilot/postpilot-backend/internal/auth/gen"
	"github.com/postpilot/postpilot-backend/internal/auth/jwt"
	"github.com/postpilot/postpilot-backend/internal/auth/provider"
	apperrors "github.com/postpilot/postpilot-backend/internal/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuthService provides sign-in logic using an OAuth provider, user repository, and JWT manager.
// It encapsulates all business logic for authentication and user profile management.
type AuthService struct {
	provider provider.OAuthProvider
	userRepo userdb.Querier
	jwter    *jwt.Manager
	logger   *logrus.Logger
}

// NewAuthService creates a new AuthService with the given provider, repository, and JWT manager.
// This enables dependency injection and testability.
func NewAuthService(provider provider.OAuthProvider, repository userdb.Querier, jwter *jwt.Manager, logger *logrus.Logger) *AuthService {
	return &AuthService{
		provider: provider,
		userRepo: repository,
		jwter:    jwter,
		logger:   logger,
	}
}

// GetLoginURL returns the OAuth provider's login URL for the given state.
// Used to initiate browser-based sign-in.
func (s *AuthService) GetLoginURL(state string) string {
	return s.provider.GetAuthURL(state)
}

// HandleCallback processes the sign-in callback, upserts the user, and returns user info plus
// access and refresh tokens. Called after the user authorizes via the OAuth provider.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (*provider.UserInfo, string, string, error) {
	token, err := s.provider.ExchangeCode(ctx, code)
	if err != nil {
		s.logger.Errorf("Exchange code error: %v", err)
		return nil, "", "", fmt.Errorf("exchange code failed: %w", err)
	}

	userInfo, err := s.provider.GetUserInfo(ctx, token)
	if err != nil {
		s.logger.Errorf("Get user info error: %v", err)
		return nil, "", "", fmt.Errorf("failed to get user info: %w", err)
	}
	// Upsert user in database (create or update)
	params := userdb.UpsertUserParams{
		Provider:   userInfo.Provider,
		ProviderID: strconv.Itoa(userInfo.ProviderID),
		AvatarUrl: sql.NullString{
			String: userInfo.AvatarURL,
			Valid:  true,
		},
		Email: sql.NullString{
			String: userInfo.Email,
			Valid:  true,
		},
		Name: sql.NullString{
			String: userInfo.Username,
			Valid:  true,
		},
	}
	s.logger.Infof("Upserting user: provider=%s provider_id=%s", params.Provider, params.ProviderID)
	user, err := s.userRepo.UpsertUser(ctx, params)
	if err != nil {
		s.logger.Errorf("User upsert error: %v", err)
		return nil, "", "", err
	}
	jwtParams := jwt.CreateJwtParams{
		UserID:   user.ID.String(),
		Email:    user.Email.String,
		Username: user.Name.String,
	}
	tokenStr, err := s.jwter.Generate(jwtParams)
	if err != nil {
		s.logger.Errorf("JWT generation error: %v", err)
		return nil, "", "", fmt.Errorf("failed to generate JWT: %w", err)
	}
	refreshToken, err := s.jwter.GenerateRefresh(jwtParams)
	if err != nil {
		s.logger.Errorf("Refresh token generation error: %v", err)
		return nil, "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return userInfo, tokenStr, refreshToken, nil
}

// RefreshTokens validates the refresh token and issues new access and refresh tokens.
// Used for session renewal and token rotation.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.jwter.Verify(refreshToken)
	if err != nil {
		s.logger.Warnf("Invalid refresh token: %v", err)
		return "", "", apperrors.ErrInvalidToken
	}
	params := jwt.CreateJwtParams{
		UserID:   claims.UserID,
		Email:    claims.Email,
		Username: claims.Username,
	}
	token, err := s.jwter.Generate(params)
	if err != nil {
		s.logger.Errorf("JWT generation error: %v", err)
		return "", "", err
	}
	newRefreshToken, err := s.jwter.GenerateRefresh(params)
	if err != nil {
		s.logger.Errorf("Refresh token generation error: %v", err)
		return "", "", err
	}
	return token, newRefreshToken, nil
}

// GetProfile returns the stored profile for the given user id.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*UserProfileData, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.ErrInternalServer
	}
	user, err := s.userRepo.GetUserByID(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		s.logger.Errorf("GetUserByID error: %v", err)
		return nil, err
	}
	return toUserProfileData(user), nil
}

// UpdateProfile updates the mutable profile fields (name, avatar) for the given user id.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*UserProfileData, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.ErrInternalServer
	}
	params := userdb.UpdateUserProfileParams{
		ID: uid,
	}
	if req.Name != "" {
		params.Name = sql.NullString{String: req.Name, Valid: true}
	}
	if req.AvatarURL != "" {
		params.AvatarUrl = sql.NullString{String: req.AvatarURL, Valid: true}
	}
	user, err := s.userRepo.UpdateUserProfile(ctx, params)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		s.logger.Errorf("UpdateUserProfile error: %v", err)
		return nil, err
	}
	return toUserProfileData(user), nil
}

func toUserProfileData(user userdb.User) *UserProfileData {
	return &UserProfileData{
		ID:        user.ID.String(),
		Provider:  user.Provider,
		Email:     user.Email.String,
		Name:      user.Name.String,
		AvatarURL: user.AvatarUrl.String,
	}
}
