package socialaccount

import (
	"context"
	"time"

	"github.com/postpilot/postpilot-backend/internal/integrations/meta"
)

// TokenExchanger is the slice of the Meta client the link service depends on.
// Defined here so tests can substitute a mock provider.
type TokenExchanger interface {
	AuthorizationURL() string
	ExchangeCode(ctx context.Context, code string) (*meta.TokenResponse, error)
	ExchangeLongLived(ctx context.Context, shortToken string) (*meta.TokenResponse, error)
	RefreshLongLived(ctx context.Context, longToken string) (*meta.TokenResponse, error)
	GetAccountProfile(ctx context.Context, accessToken string) (*meta.AccountProfile, error)
}

// LinkedAccountData is the response body for a linked social account.
// Tokens are never serialized.
type LinkedAccountData struct {
	ID                 string     `json:"id"`
	PlatformID         int32      `json:"platform_id"`
	PlatformSpecificID string     `json:"platform_specific_id"`
	AccountName        string     `json:"account_name"`
	Handle             string     `json:"handle"`
	ProfilePictureURL  string     `json:"profile_picture_url"`
	AccountType        string     `json:"account_type"`
	FollowersCount     int32      `json:"followers_count"`
	FollowsCount       int32      `json:"follows_count"`
	TokenExpiresAt     *time.Time `json:"token_expires_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}
