package meta

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	apperrors "github.com/postpilot/postpilot-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(oauthURL, graphURL string) *Client {
	c := NewClient("cid", "secret", "https://api.example.com/api/v1/integrations/meta/callback")
	if oauthURL != "" {
		c.OAuthBaseURL = oauthURL
	}
	if graphURL != "" {
		c.GraphBaseURL = graphURL
	}
	return c
}

// TestAuthorizationURL tests the authorization URL construction
func TestAuthorizationURL(t *testing.T) {
	client := newTestClient("", "")
	raw := client.AuthorizationURL()

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "www.instagram.com", parsed.Host)
	assert.Equal(t, "/oauth/authorize", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "true", query.Get("force_reauth"))
	assert.Equal(t, "cid", query.Get("client_id"))
	assert.Equal(t, client.RedirectURI, query.Get("redirect_uri"))
	assert.Equal(t, "code", query.Get("response_type"))

	scopes := strings.Split(query.Get("scope"), ",")
	assert.Len(t, scopes, 5)
	assert.Contains(t, scopes, "instagram_business_basic")
	assert.Contains(t, scopes, "instagram_business_content_publish")
}

// TestExchangeCode tests the authorization-code exchange
func TestExchangeCode(t *testing.T) {
	t.Run("Success - Short-lived token returned", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/oauth/access_token", r.URL.Path)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "cid", r.PostForm.Get("client_id"))
			assert.Equal(t, "secret", r.PostForm.Get("client_secret"))
			assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			assert.Equal(t, "abc123", r.PostForm.Get("code"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"S1","token_type":"bearer"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, "")
		token, err := client.ExchangeCode(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, "S1", token.AccessToken)
	})

	t.Run("Error - Provider rejects the code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error_type":"OAuthException","error_message":"Invalid authorization code"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, "")
		token, err := client.ExchangeCode(context.Background(), "stale-code")

		assert.Nil(t, token)
		assert.ErrorIs(t, err, apperrors.ErrTokenExchangeFailed)
	})

	t.Run("Error - Empty code fails before any request", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		client := newTestClient(server.URL, "")
		_, err := client.ExchangeCode(context.Background(), "")

		assert.ErrorIs(t, err, apperrors.ErrTokenExchangeFailed)
		assert.False(t, called)
	})

	t.Run("Error - Provider unreachable", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:1", "")
		_, err := client.ExchangeCode(context.Background(), "abc123")
		assert.ErrorIs(t, err, apperrors.ErrTokenExchangeFailed)
	})
}

// TestExchangeLongLived tests the long-lived token upgrade
func TestExchangeLongLived(t *testing.T) {
	t.Run("Success - Long-lived token with expiry", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/access_token", r.URL.Path)
			query := r.URL.Query()
			assert.Equal(t, "ig_exchange_token", query.Get("grant_type"))
			assert.Equal(t, "secret", query.Get("client_secret"))
			assert.Equal(t, "S1", query.Get("access_token"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"L1","token_type":"bearer","expires_in":5184000}`))
		}))
		defer server.Close()

		client := newTestClient("", server.URL)
		token, err := client.ExchangeLongLived(context.Background(), "S1")

		require.NoError(t, err)
		assert.Equal(t, "L1", token.AccessToken)
		assert.Equal(t, int64(5184000), token.ExpiresIn)
	})

	t.Run("Error - Upgrade rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := newTestClient("", server.URL)
		_, err := client.ExchangeLongLived(context.Background(), "S1")
		assert.ErrorIs(t, err, apperrors.ErrTokenUpgradeFailed)
	})
}

// TestRefreshLongLived tests extending a long-lived token
func TestRefreshLongLived(t *testing.T) {
	t.Run("Success - Fresh token with new expiry", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/refresh_access_token", r.URL.Path)
			query := r.URL.Query()
			assert.Equal(t, "ig_refresh_token", query.Get("grant_type"))
			assert.Equal(t, "L1", query.Get("access_token"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"L2","token_type":"bearer","expires_in":5184000}`))
		}))
		defer server.Close()

		client := newTestClient("", server.URL)
		token, err := client.RefreshLongLived(context.Background(), "L1")

		require.NoError(t, err)
		assert.Equal(t, "L2", token.AccessToken)
		assert.Equal(t, int64(5184000), token.ExpiresIn)
	})

	t.Run("Error - Refresh refused for expired token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"Session has expired"}}`))
		}))
		defer server.Close()

		client := newTestClient("", server.URL)
		_, err := client.RefreshLongLived(context.Background(), "stale")
		assert.ErrorIs(t, err, apperrors.ErrTokenRefreshFailed)
	})
}

// TestGetAccountProfile tests the profile fetch
func TestGetAccountProfile(t *testing.T) {
	t.Run("Success - Full profile", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/"+graphVersion+"/me", r.URL.Path)
			query := r.URL.Query()
			assert.Equal(t, "L1", query.Get("access_token"))
			assert.Contains(t, query.Get("fields"), "followers_count")

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id": "ig_1",
				"user_id": 17841400000000000,
				"username": "acme",
				"name": "Acme Co",
				"profile_picture_url": "https://cdn.example/acme.png",
				"account_type": "BUSINESS",
				"followers_count": 500,
				"media_count": 42,
				"follows_count": 10
			}`))
		}))
		defer server.Close()

		client := newTestClient("", server.URL)
		profile, err := client.GetAccountProfile(context.Background(), "L1")

		require.NoError(t, err)
		assert.Equal(t, "ig_1", profile.ID)
		assert.Equal(t, "acme", profile.Username)
		assert.Equal(t, int32(500), profile.FollowersCount)
		assert.Equal(t, "BUSINESS", profile.AccountType)
	})

	t.Run("Success - Missing fields decode to zero values", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"ig_2","username":"minimal"}`))
		}))
		defer server.Close()

		client := newTestClient("", server.URL)
		profile, err := client.GetAccountProfile(context.Background(), "L1")

		require.NoError(t, err)
		assert.Equal(t, "ig_2", profile.ID)
		assert.Equal(t, int32(0), profile.FollowersCount)
		assert.Equal(t, "", profile.AccountType)
	})

	t.Run("Error - Token revoked", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := newTestClient("", server.URL)
		_, err := client.GetAccountProfile(context.Background(), "revoked")
		assert.ErrorIs(t, err, apperrors.ErrProfileFetchFailed)
	})
}
