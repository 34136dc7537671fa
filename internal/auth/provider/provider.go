package provider

import (
	"context"
)

// OAuthProvider defines the interface for OAuth sign-in providers.
type OAuthProvider interface {
	// GetAuthURL returns the provider's authorization URL for the given state.
	GetAuthURL(state string) string
	// ExchangeCode exchanges the authorization code for an access token.
	ExchangeCode(ctx context.Context, code string) (*OAuthToken, error)
	// GetUserInfo retrieves the user's information using the provided OAuth token.
	GetUserInfo(ctx context.Context, token *OAuthToken) (*UserInfo, error)
}
