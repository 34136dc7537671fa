package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
)

// GitHubProvider implements OAuthProvider for GitHub sign-in.
type GitHubProvider struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// NewGitHubProvider creates a new GitHubProvider with the given client ID, secret, and redirect URL.
func NewGitHubProvider(clientID, clientSecret, redirectURL string) *GitHubProvider {
	return &GitHubProvider{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
	}
}

// GetAuthURL returns the GitHub OAuth authorization URL for the given state.
func (g *GitHubProvider) GetAuthURL(state string) string {
	baseURL := "https://github.com/login/oauth/authorize"
	params := url.Values{}
	params.Add("client_id", g.ClientID)
	params.Add("redirect_uri", g.RedirectURL)
	params.Add("scope", "read:user user:email")
	params.Add("state", state)

	return fmt.Sprintf("%s?%s", baseURL, params.Encode())
}

// ExchangeCode exchanges the authorization code for an access token from GitHub.
func (g *GitHubProvider) ExchangeCode(ctx context.Context, code string) (*OAuthToken, error) {
	data := url.Values{}
	data.Set("client_id", g.ClientID)
	data.Set("client_secret", g.ClientSecret)
	data.Set("code", code)
	data.Set("redirect_uri", g.RedirectURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://github.com/login/oauth/access_token", strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var res struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		Scope       string `json:"scope"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}
	if res.AccessToken == "" {
		return nil, fmt.Errorf("github returned no access token")
	}

	return &OAuthToken{
		AccessToken: res.AccessToken,
		TokenType:   res.TokenType,
		Expiry:      time.Now().Add(1 * time.Hour).Unix(), // GitHub tokens don't expire by default
	}, nil
}

// GetUserInfo retrieves the user's information from GitHub using the provided OAuth token.
func (g *GitHubProvider) GetUserInfo(ctx context.Context, token *OAuthToken) (*UserInfo, error) {
	client := github.NewClient(nil).WithAuthToken(token.AccessToken)

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, err
	}

	email := user.GetEmail()
	// The /user endpoint omits the email when it is private; fall back to the
	// primary address from /user/emails.
	if email == "" {
		emails, _, err := client.Users.ListEmails(ctx, nil)
		if err != nil {
			return nil, err
		}
		for _, e := range emails {
			if e.GetPrimary() {
				email = e.GetEmail()
				break
			}
		}
	}

	return &UserInfo{
		Email:      email,
		Username:   user.GetLogin(),
		AvatarURL:  user.GetAvatarURL(),
		ProviderID: int(user.GetID()),
		Provider:   "github",
	}, nil
}
