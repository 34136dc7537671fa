package post

import (
	"context"
	"time"

	"github.com/postpilot/postpilot-backend/internal/integrations/meta"
	accountdb "github.com/postpilot/postpilot-backend/internal/socialaccount/gen"

	"github.com/google/uuid"
)

// Post statuses.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusFailed    = "failed"
)

// Scheduled-post publish statuses.
const (
	PublishStatusPending   = "pending"
	PublishStatusPublished = "published"
	PublishStatusFailed    = "failed"
)

// Media types accepted on post creation. They map onto the Graph API
// container types.
const (
	MediaTypeImage    = "IMAGE"
	MediaTypeVideo    = "VIDEO"
	MediaTypeReel     = "REEL"
	MediaTypeCarousel = "CAROUSEL"
	MediaTypeStory    = "STORY"
)

// MediaPublisher is the slice of the Meta client the publish orchestration
// depends on. Defined here so tests can substitute a mock publisher.
type MediaPublisher interface {
	CreateImageContainer(ctx context.Context, accessToken, igAccountID, imageURL, caption string) (*meta.MediaContainer, error)
	CreateVideoContainer(ctx context.Context, accessToken, igAccountID, videoURL, caption string, isReel bool) (*meta.MediaContainer, error)
	CreateCarouselContainer(ctx context.Context, accessToken, igAccountID string, childrenIDs []string, caption string) (*meta.MediaContainer, error)
	PublishMedia(ctx context.Context, accessToken, igAccountID, creationID string) (*meta.PublishResult, error)
	CreateStory(ctx context.Context, accessToken, igAccountID, mediaURL, mediaType string) (*meta.PublishResult, error)
	GetMediaStatus(ctx context.Context, accessToken, containerID string) (*meta.MediaStatus, error)
}

// AccountGetter resolves a linked social account for publishing.
type AccountGetter interface {
	GetSocialAccountByID(ctx context.Context, id uuid.UUID) (accountdb.UserSocialAccount, error)
}

// CreatePostRequest is the request body for creating a post.
type CreatePostRequest struct {
	Title     string   `json:"title" binding:"required"`
	Content   string   `json:"content"`
	MediaType string   `json:"media_type" binding:"required"`
	MediaUrls []string `json:"media_urls" binding:"required,min=1"`
	Status    string   `json:"status"`
}

// SchedulePostRequest is the request body for scheduling a post to an account.
type SchedulePostRequest struct {
	SocialAccountID string    `json:"social_account_id" binding:"required"`
	ScheduledTime   time.Time `json:"scheduled_time" binding:"required"`
}

// UpdateScheduleRequest records a publish outcome on a scheduled post.
type UpdateScheduleRequest struct {
	PublishStatus  string     `json:"publish_status" binding:"required"`
	PublishedTime  *time.Time `json:"published_time"`
	ExternalPostID string     `json:"external_post_id"`
	ErrorMessage   string     `json:"error_message"`
}

// PostData is the response body for a post.
type PostData struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	MediaType string    `json:"media_type"`
	MediaUrls []string  `json:"media_urls"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScheduledPostData is the response body for a scheduled post.
type ScheduledPostData struct {
	ID              string     `json:"id"`
	PostID          string     `json:"post_id"`
	SocialAccountID string     `json:"social_account_id"`
	ScheduledTime   time.Time  `json:"scheduled_time"`
	PublishStatus   string     `json:"publish_status"`
	PublishedTime   *time.Time `json:"published_time,omitempty"`
	ExternalPostID  string     `json:"external_post_id,omitempty"`
	ErrorMessage    string     `json:"error_message,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
