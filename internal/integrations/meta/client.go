package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/postpilot/postpilot-backend/internal/errors"
)

const graphVersion = "v24.0"

// requestTimeout bounds every call to the provider. The provider is a black box;
// a timeout is treated the same as a non-success status.
const requestTimeout = 8 * time.Second

// Client talks to the Meta OAuth and Instagram Graph endpoints.
// The base URLs are fields so tests can point the client at local servers.
type Client struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string

	AuthorizeBaseURL string // user-facing authorization page
	OAuthBaseURL     string // authorization-code exchange lives here
	GraphBaseURL     string // long-lived exchange, profile and publishing live here

	httpClient *http.Client
}

// linkScopes is the fixed set of content-management permissions requested when
// linking an Instagram business account.
var linkScopes = []string{
	"instagram_business_basic",
	"instagram_business_manage_messages",
	"instagram_business_manage_comments",
	"instagram_business_content_publish",
	"instagram_business_manage_insights",
}

// NewClient creates a Client with the given app credentials and redirect URI.
func NewClient(clientID, clientSecret, redirectURI string) *Client {
	return &Client{
		ClientID:         clientID,
		ClientSecret:     clientSecret,
		RedirectURI:      redirectURI,
		AuthorizeBaseURL: "https://www.instagram.com",
		OAuthBaseURL:     "https://api.instagram.com",
		GraphBaseURL:     "https://graph.instagram.com",
		httpClient:       &http.Client{Timeout: requestTimeout},
	}
}

// AuthorizationURL returns the URL the browser is redirected to when the user
// initiates account linking. force_reauth makes the provider re-prompt even
// when a grant already exists, so re-linking always reflects a fresh consent.
func (c *Client) AuthorizationURL() string {
	params := url.Values{}
	params.Set("force_reauth", "true")
	params.Set("client_id", c.ClientID)
	params.Set("redirect_uri", c.RedirectURI)
	params.Set("response_type", "code")
	params.Set("scope", strings.Join(linkScopes, ","))

	return fmt.Sprintf("%s/oauth/authorize?%s", c.AuthorizeBaseURL, params.Encode())
}

// ExchangeCode exchanges the authorization code for a short-lived access token.
// Authorization codes are single-use, so a failure here is terminal for the
// whole link attempt; the caller must restart the flow.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*TokenResponse, error) {
	if code == "" {
		return nil, fmt.Errorf("exchange code: empty authorization code: %w", apperrors.ErrTokenExchangeFailed)
	}

	data := url.Values{}
	data.Set("client_id", c.ClientID)
	data.Set("client_secret", c.ClientSecret)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", c.RedirectURI)
	data.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.OAuthBaseURL+"/oauth/access_token", strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %v: %w", err, apperrors.ErrTokenExchangeFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("exchange code: status %d: %s: %w", resp.StatusCode, string(body), apperrors.ErrTokenExchangeFailed)
	}

	var res TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("exchange code: decode response: %v: %w", err, apperrors.ErrTokenExchangeFailed)
	}
	return &res, nil
}

// ExchangeLongLived upgrades a short-lived token to a long-lived one (~60 days).
func (c *Client) ExchangeLongLived(ctx context.Context, shortToken string) (*TokenResponse, error) {
	params := url.Values{}
	params.Set("grant_type", "ig_exchange_token")
	params.Set("client_secret", c.ClientSecret)
	params.Set("access_token", shortToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.GraphBaseURL+"/access_token?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("long-lived exchange: %v: %w", err, apperrors.ErrTokenUpgradeFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("long-lived exchange: status %d: %s: %w", resp.StatusCode, string(body), apperrors.ErrTokenUpgradeFailed)
	}

	var res TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("long-lived exchange: decode response: %v: %w", err, apperrors.ErrTokenUpgradeFailed)
	}
	return &res, nil
}

// RefreshLongLived extends a long-lived token's validity for another ~60 days.
// The provider refuses tokens that are expired or younger than 24 hours.
func (c *Client) RefreshLongLived(ctx context.Context, longToken string) (*TokenResponse, error) {
	params := url.Values{}
	params.Set("grant_type", "ig_refresh_token")
	params.Set("access_token", longToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.GraphBaseURL+"/refresh_access_token?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token refresh: %v: %w", err, apperrors.ErrTokenRefreshFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("token refresh: status %d: %s: %w", resp.StatusCode, string(body), apperrors.ErrTokenRefreshFailed)
	}

	var res TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("token refresh: decode response: %v: %w", err, apperrors.ErrTokenRefreshFailed)
	}
	return &res, nil
}

// GetAccountProfile fetches the linked account's profile using a long-lived token.
// Missing profile fields are not an error; they decode to their zero values.
func (c *Client) GetAccountProfile(ctx context.Context, accessToken string) (*AccountProfile, error) {
	params := url.Values{}
	params.Set("fields", "id,user_id,username,name,profile_picture_url,account_type,followers_count,media_count,follows_count")
	params.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/me?%s", c.GraphBaseURL, graphVersion, params.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("account profile: %v: %w", err, apperrors.ErrProfileFetchFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("account profile: status %d: %s: %w", resp.StatusCode, string(body), apperrors.ErrProfileFetchFailed)
	}

	var res AccountProfile
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("account profile: decode response: %v: %w", err, apperrors.ErrProfileFetchFailed)
	}
	return &res, nil
}
