package meta

// TokenResponse represents a token grant from the Meta OAuth endpoints.
// Both the short-lived and the long-lived grant use this shape.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds, relative to the time of the call
}

// AccountProfile contains the Instagram account fields captured at link time.
// Any field may be absent from the provider response; absent counts decode to 0
// and an absent account type decodes to the empty string, so downstream
// consumers never see partially-failed fetches.
type AccountProfile struct {
	ID                string `json:"id"`
	UserID            int64  `json:"user_id"`
	Username          string `json:"username"`
	Name              string `json:"name"`
	ProfilePictureURL string `json:"profile_picture_url"`
	AccountType       string `json:"account_type"`
	FollowersCount    int32  `json:"followers_count"`
	MediaCount        int32  `json:"media_count"`
	FollowsCount      int32  `json:"follows_count"`
}

// MediaContainer is the creation id returned when a media container is created.
type MediaContainer struct {
	ID string `json:"id"`
}

// PublishResult is the published media id returned by the publish endpoint.
type PublishResult struct {
	ID string `json:"id"`
}

// MediaStatus reports whether a container is ready to publish.
type MediaStatus struct {
	ID         string `json:"id"`
	StatusCode string `json:"status_code"`
}
