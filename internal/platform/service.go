package platform

import (
	"context"
	"database/sql"

	apperrors "github.com/postpilot/postpilot-backend/internal/errors"
	platformdb "github.com/postpilot/postpilot-backend/internal/platform/gen"
	accountdb "github.com/postpilot/postpilot-backend/internal/socialaccount/gen"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AccountLister provides the caller's linked accounts for the joined registry listing.
type AccountLister interface {
	ListSocialAccountsByUser(ctx context.Context, userID uuid.UUID) ([]accountdb.UserSocialAccount, error)
}

// PlatformService manages the social platform registry.
type PlatformService struct {
	repo     platformdb.Querier
	accounts AccountLister
	logger   *logrus.Logger
}

// NewPlatformService creates a new PlatformService.
func NewPlatformService(repo platformdb.Querier, accounts AccountLister, logger *logrus.Logger) *PlatformService {
	return &PlatformService{
		repo:     repo,
		accounts: accounts,
		logger:   logger,
	}
}

// ListPlatformsForUser returns every registered platform with the caller's
// linked account attached where one exists.
func (s *PlatformService) ListPlatformsForUser(ctx context.Context, userID uuid.UUID) ([]PlatformData, error) {
	platforms, err := s.repo.ListPlatforms(ctx)
	if err != nil {
		s.logger.Errorf("ListPlatforms error: %v", err)
		return nil, err
	}
	accounts, err := s.accounts.ListSocialAccountsByUser(ctx, userID)
	if err != nil {
		s.logger.Errorf("ListSocialAccountsByUser error: %v", err)
		return nil, err
	}

	byPlatform := make(map[int32]accountdb.UserSocialAccount, len(accounts))
	for _, account := range accounts {
		byPlatform[account.PlatformID] = account
	}

	result := make([]PlatformData, 0, len(platforms))
	for _, p := range platforms {
		account, connected := byPlatform[p.ID]
		data := PlatformData{
			PlatformID:  p.ID,
			Name:        p.Name,
			DisplayName: p.DisplayName,
			Connected:   connected,
		}
		if connected {
			data.Account = toConnectedAccount(account)
		}
		result = append(result, data)
	}
	return result, nil
}

// CreatePlatform registers a new platform. Admin only (enforced at the route).
func (s *PlatformService) CreatePlatform(ctx context.Context, req CreatePlatformRequest) (*platformdb.SocialPlatform, error) {
	params := platformdb.CreatePlatformParams{
		Name:        req.Name,
		DisplayName: req.DisplayName,
	}
	if req.BaseAPIURL != "" {
		params.BaseApiUrl = sql.NullString{String: req.BaseAPIURL, Valid: true}
	}
	if req.IconURL != "" {
		params.IconUrl = sql.NullString{String: req.IconURL, Valid: true}
	}
	p, err := s.repo.CreatePlatform(ctx, params)
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDuplicatePlatform
		}
		s.logger.Errorf("CreatePlatform error: %v", err)
		return nil, err
	}
	return &p, nil
}

// DeletePlatform removes a platform from the registry. Admin only (enforced at the route).
func (s *PlatformService) DeletePlatform(ctx context.Context, id int32) error {
	if _, err := s.repo.GetPlatformByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return apperrors.ErrPlatformNotFound
		}
		return err
	}
	if err := s.repo.DeletePlatform(ctx, id); err != nil {
		s.logger.Errorf("DeletePlatform error: %v", err)
		return err
	}
	return nil
}

// toConnectedAccount projects a linked account onto the registry response.
// Tokens are never serialized.
func toConnectedAccount(account accountdb.UserSocialAccount) *ConnectedAccount {
	return &ConnectedAccount{
		ID:                 account.ID.String(),
		PlatformSpecificID: account.PlatformSpecificID,
		AccountName:        account.AccountName.String,
		Handle:             account.Handle.String,
		ProfilePictureURL:  account.ProfilePictureUrl.String,
		AccountType:        account.AccountType.String,
		FollowersCount:     account.FollowersCount,
		FollowsCount:       account.FollowsCount,
	}
}
