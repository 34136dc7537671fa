package platform

// ID identifies a supported social platform in the registry.
// The values mirror the seeded social_platforms rows; call sites use these
// constants instead of re-deriving numeric ids.
type ID int32

const (
	Facebook  ID = 1
	TikTok    ID = 2
	Instagram ID = 3
)

// Int32 returns the registry value for database parameters.
func (id ID) Int32() int32 {
	return int32(id)
}

// PlatformData is the response body for a registry entry, including the
// caller's linked account on that platform when one exists.
type PlatformData struct {
	PlatformID  int32             `json:"platform_id"`
	Name        string            `json:"name"`
	DisplayName string            `json:"display_name"`
	Connected   bool              `json:"connected"`
	Account     *ConnectedAccount `json:"account,omitempty"`
}

// ConnectedAccount is the token-free projection of a linked account embedded
// in the registry listing.
type ConnectedAccount struct {
	ID                 string `json:"id"`
	PlatformSpecificID string `json:"platform_specific_id"`
	AccountName        string `json:"account_name"`
	Handle             string `json:"handle"`
	ProfilePictureURL  string `json:"profile_picture_url"`
	AccountType        string `json:"account_type"`
	FollowersCount     int32  `json:"followers_count"`
	FollowsCount       int32  `json:"follows_count"`
}

// CreatePlatformRequest is the request body for registering a platform.
type CreatePlatformRequest struct {
	Name        string `json:"name" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
	BaseAPIURL  string `json:"base_api_url"`
	IconURL     string `json:"icon_url"`
}
