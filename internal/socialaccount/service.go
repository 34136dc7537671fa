package socialaccount

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	apperrors "github.com/postpilot/postpilot-backend/internal/errors"
	"github.com/postpilot/postpilot-backend/internal/platform"
	accountdb "github.com/postpilot/postpilot-backend/internal/socialaccount/gen"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AccountService owns the Instagram account-linking workflow and the linked-account CRUD.
type AccountService struct {
	exchanger TokenExchanger
	repo      accountdb.Querier
	logger    *logrus.Logger
}

// NewAccountService creates a new AccountService with the given exchanger and repository.
func NewAccountService(exchanger TokenExchanger, repo accountdb.Querier, logger *logrus.Logger) *AccountService {
	return &AccountService{
		exchanger: exchanger,
		repo:      repo,
		logger:    logger,
	}
}

// AuthorizationURL returns the provider authorization URL the connect endpoint redirects to.
func (s *AccountService) AuthorizationURL() string {
	return s.exchanger.AuthorizationURL()
}

// CompleteLink runs the three-step token exchange for the given authorization code and
// persists the linked account. The steps are strictly sequential: each needs the
// previous step's output. Any step failure aborts the attempt; the code is single-use
// so there is nothing to retry.
func (s *AccountService) CompleteLink(ctx context.Context, userID uuid.UUID, code string) (*LinkedAccountData, error) {
	shortToken, err := s.exchanger.ExchangeCode(ctx, code)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id": userID.String(),
			"step":    "exchange_code",
		}).Errorf("Token exchange failed: %v", err)
		return nil, err
	}

	longToken, err := s.exchanger.ExchangeLongLived(ctx, shortToken.AccessToken)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id": userID.String(),
			"step":    "long_lived_exchange",
		}).Errorf("Token upgrade failed: %v", err)
		return nil, err
	}

	profile, err := s.exchanger.GetAccountProfile(ctx, longToken.AccessToken)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id": userID.String(),
			"step":    "account_profile",
		}).Errorf("Profile fetch failed: %v", err)
		return nil, err
	}

	expiresAt := time.Now().Add(time.Duration(longToken.ExpiresIn) * time.Second)
	params := accountdb.UpsertSocialAccountParams{
		UserID:             userID,
		PlatformID:         platform.Instagram.Int32(),
		PlatformSpecificID: profile.ID,
		AccessToken:        longToken.AccessToken,
		TokenExpiresAt:     sql.NullTime{Time: expiresAt, Valid: true},
		AccountName:        nullString(profile.Name),
		Handle:             nullString(profile.Username),
		ProfilePictureUrl:  nullString(profile.ProfilePictureURL),
		AccountType:        nullString(profile.AccountType),
		FollowersCount:     profile.FollowersCount,
		FollowsCount:       profile.FollowsCount,
	}
	if profile.UserID != 0 {
		params.PlatformUserID = nullString(strconv.FormatInt(profile.UserID, 10))
	}

	account, err := s.repo.UpsertSocialAccount(ctx, params)
	if err != nil {
		// The long-lived grant was already issued and is now lost; the provider
		// offers no revocation for this token class, so surface it in the logs.
		s.logger.WithFields(logrus.Fields{
			"user_id":              userID.String(),
			"platform_specific_id": profile.ID,
		}).Warnf("Linked-account upsert failed after successful exchange, credential discarded: %v", err)
		return nil, fmt.Errorf("save linked account: %v: %w", err, apperrors.ErrPersistenceFailed)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":              userID.String(),
		"platform_specific_id": account.PlatformSpecificID,
		"handle":               account.Handle.String,
	}).Info("Instagram account linked")
	return toLinkedAccountData(account), nil
}

// ListAccounts returns the caller's linked accounts, newest first.
func (s *AccountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*LinkedAccountData, error) {
	accounts, err := s.repo.ListSocialAccountsByUser(ctx, userID)
	if err != nil {
		s.logger.Errorf("ListSocialAccountsByUser error: %v", err)
		return nil, err
	}
	data := make([]*LinkedAccountData, 0, len(accounts))
	for _, account := range accounts {
		data = append(data, toLinkedAccountData(account))
	}
	return data, nil
}

// RefreshToken extends the stored long-lived credential for an account the
// caller owns and persists the new token and expiry. Accounts owned by other
// users report not-found rather than leaking their existence.
func (s *AccountService) RefreshToken(ctx context.Context, userID, accountID uuid.UUID) (*LinkedAccountData, error) {
	account, err := s.repo.GetSocialAccountByID(ctx, accountID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrAccountNotFound
		}
		s.logger.Errorf("GetSocialAccountByID error: %v", err)
		return nil, err
	}
	if account.UserID != userID {
		return nil, apperrors.ErrAccountNotFound
	}

	refreshed, err := s.exchanger.RefreshLongLived(ctx, account.AccessToken)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id":    userID.String(),
			"account_id": accountID.String(),
		}).Errorf("Token refresh failed: %v", err)
		return nil, err
	}

	expiresAt := time.Now().Add(time.Duration(refreshed.ExpiresIn) * time.Second)
	updated, err := s.repo.UpdateSocialAccountToken(ctx, accountdb.UpdateSocialAccountTokenParams{
		ID:             account.ID,
		AccessToken:    refreshed.AccessToken,
		TokenExpiresAt: sql.NullTime{Time: expiresAt, Valid: true},
	})
	if err != nil {
		s.logger.Errorf("UpdateSocialAccountToken error: %v", err)
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":    userID.String(),
		"account_id": accountID.String(),
	}).Info("Linked-account token refreshed")
	return toLinkedAccountData(updated), nil
}

// Unlink removes a linked account. Scoped to the owning user; deleting another
// user's account reports not-found rather than leaking its existence.
func (s *AccountService) Unlink(ctx context.Context, userID, accountID uuid.UUID) error {
	rows, err := s.repo.DeleteSocialAccount(ctx, accountdb.DeleteSocialAccountParams{
		ID:     accountID,
		UserID: userID,
	})
	if err != nil {
		s.logger.Errorf("DeleteSocialAccount error: %v", err)
		return err
	}
	if rows == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

func toLinkedAccountData(account accountdb.UserSocialAccount) *LinkedAccountData {
	data := &LinkedAccountData{
		ID:                 account.ID.String(),
		PlatformID:         account.PlatformID,
		PlatformSpecificID: account.PlatformSpecificID,
		AccountName:        account.AccountName.String,
		Handle:             account.Handle.String,
		ProfilePictureURL:  account.ProfilePictureUrl.String,
		AccountType:        account.AccountType.String,
		FollowersCount:     account.FollowersCount,
		FollowsCount:       account.FollowsCount,
		CreatedAt:          account.CreatedAt,
	}
	if account.TokenExpiresAt.Valid {
		t := account.TokenExpiresAt.Time
		data.TokenExpiresAt = &t
	}
	return data
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
