package post

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/postpilot/postpilot-backend/internal/errors"
	postdb "github.com/postpilot/postpilot-backend/internal/post/gen"
	accountdb "github.com/postpilot/postpilot-backend/internal/socialaccount/gen"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// containerPollInterval and containerPollAttempts bound the wait for video
// containers to finish server-side processing before media_publish.
const (
	containerPollInterval = 2 * time.Second
	containerPollAttempts = 15
)

var validMediaTypes = map[string]bool{
	MediaTypeImage:    true,
	MediaTypeVideo:    true,
	MediaTypeReel:     true,
	MediaTypeCarousel: true,
	MediaTypeStory:    true,
}

// PostService manages posts, their schedules and publish orchestration.
type PostService struct {
	repo      postdb.Querier
	accounts  AccountGetter
	publisher MediaPublisher
	logger    *logrus.Logger

	pollInterval time.Duration
	pollAttempts int
}

// NewPostService creates a new PostService.
func NewPostService(repo postdb.Querier, accounts AccountGetter, publisher MediaPublisher, logger *logrus.Logger) *PostService {
	return &PostService{
		repo:         repo,
		accounts:     accounts,
		publisher:    publisher,
		logger:       logger,
		pollInterval: containerPollInterval,
		pollAttempts: containerPollAttempts,
	}
}

// CreatePost creates a post in draft status unless a status is given.
func (s *PostService) CreatePost(ctx context.Context, userID uuid.UUID, req CreatePostRequest) (*PostData, error) {
	if !validMediaTypes[req.MediaType] {
		return nil, apperrors.ErrInvalidBody
	}
	status := req.Status
	if status == "" {
		status = StatusDraft
	}
	params := postdb.CreatePostParams{
		UserID:    userID,
		Title:     req.Title,
		MediaType: req.MediaType,
		MediaUrls: req.MediaUrls,
		Status:    status,
	}
	if req.Content != "" {
		params.Content = sql.NullString{String: req.Content, Valid: true}
	}
	p, err := s.repo.CreatePost(ctx, params)
	if err != nil {
		s.logger.Errorf("CreatePost error: %v", err)
		return nil, err
	}
	return toPostData(p), nil
}

// GetPost returns a post owned by the caller. Other users' posts report
// not-found rather than leaking their existence.
func (s *PostService) GetPost(ctx context.Context, userID, postID uuid.UUID) (*PostData, error) {
	p, err := s.ownedPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	return toPostData(*p), nil
}

// ListPosts returns the caller's posts, optionally filtered by status.
func (s *PostService) ListPosts(ctx context.Context, userID uuid.UUID, status string) ([]*PostData, error) {
	posts, err := s.repo.ListPostsByUser(ctx, postdb.ListPostsByUserParams{
		UserID: userID,
		Status: status,
	})
	if err != nil {
		s.logger.Errorf("ListPostsByUser error: %v", err)
		return nil, err
	}
	data := make([]*PostData, 0, len(posts))
	for _, p := range posts {
		data = append(data, toPostData(p))
	}
	return data, nil
}

// DeletePost removes a post owned by the caller.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	rows, err := s.repo.DeletePost(ctx, postdb.DeletePostParams{ID: postID, UserID: userID})
	if err != nil {
		s.logger.Errorf("DeletePost error: %v", err)
		return err
	}
	if rows == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// SchedulePost creates a pending schedule for a post against one of the
// caller's linked accounts and moves the post to scheduled status.
func (s *PostService) SchedulePost(ctx context.Context, userID, postID uuid.UUID, req SchedulePostRequest) (*ScheduledPostData, error) {
	if _, err := s.ownedPost(ctx, userID, postID); err != nil {
		return nil, err
	}
	accountID, err := uuid.Parse(req.SocialAccountID)
	if err != nil {
		return nil, apperrors.ErrInvalidBody
	}
	account, err := s.accounts.GetSocialAccountByID(ctx, accountID)
	if err != nil || account.UserID != userID {
		return nil, apperrors.ErrAccountNotFound
	}

	schedule, err := s.repo.CreateScheduledPost(ctx, postdb.CreateScheduledPostParams{
		PostID:          postID,
		SocialAccountID: accountID,
		ScheduledTime:   req.ScheduledTime,
		PublishStatus:   PublishStatusPending,
	})
	if err != nil {
		s.logger.Errorf("CreateScheduledPost error: %v", err)
		return nil, err
	}
	if _, err := s.repo.UpdatePostStatus(ctx, postdb.UpdatePostStatusParams{ID: postID, Status: StatusScheduled}); err != nil {
		s.logger.Errorf("UpdatePostStatus error: %v", err)
	}
	return toScheduledPostData(schedule), nil
}

// RecordOutcome records an externally observed publish outcome on a schedule.
// Fields absent from the request keep their previously recorded values.
func (s *PostService) RecordOutcome(ctx context.Context, userID, scheduleID uuid.UUID, req UpdateScheduleRequest) (*ScheduledPostData, error) {
	schedule, err := s.ownedSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}
	params := postdb.UpdateScheduledPostParams{
		ID:            schedule.ID,
		PublishStatus: req.PublishStatus,
	}
	if req.PublishedTime != nil {
		params.PublishedTime = sql.NullTime{Time: *req.PublishedTime, Valid: true}
	}
	if req.ExternalPostID != "" {
		params.ExternalPostID = sql.NullString{String: req.ExternalPostID, Valid: true}
	}
	if req.ErrorMessage != "" {
		params.ErrorMessage = sql.NullString{String: req.ErrorMessage, Valid: true}
	}
	updated, err := s.repo.UpdateScheduledPost(ctx, params)
	if err != nil {
		s.logger.Errorf("UpdateScheduledPost error: %v", err)
		return nil, err
	}
	return toScheduledPostData(updated), nil
}

// GetSchedule returns a scheduled post owned by the caller.
func (s *PostService) GetSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*ScheduledPostData, error) {
	schedule, err := s.ownedSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}
	return toScheduledPostData(*schedule), nil
}

// PublishNow publishes a scheduled post immediately through the Graph API and
// records the outcome on both the schedule and the post.
func (s *PostService) PublishNow(ctx context.Context, userID, scheduleID uuid.UUID) (*ScheduledPostData, error) {
	schedule, err := s.ownedSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetPostByID(ctx, schedule.PostID)
	if err != nil {
		return nil, apperrors.ErrPostNotFound
	}
	account, err := s.accounts.GetSocialAccountByID(ctx, schedule.SocialAccountID)
	if err != nil {
		return nil, apperrors.ErrAccountNotFound
	}

	externalID, err := s.publish(ctx, p, account.AccessToken, igAccountID(account))
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"post_id":     p.ID.String(),
			"schedule_id": schedule.ID.String(),
		}).Errorf("Publish failed: %v", err)
		s.recordFailure(ctx, schedule.ID, p.ID, err)
		return nil, err
	}

	updated, err := s.repo.UpdateScheduledPost(ctx, postdb.UpdateScheduledPostParams{
		ID:             schedule.ID,
		PublishStatus:  PublishStatusPublished,
		PublishedTime:  sql.NullTime{Time: time.Now(), Valid: true},
		ExternalPostID: sql.NullString{String: externalID, Valid: true},
		// Explicit empty value: the update preserves absent fields, and a
		// successful publish must clear the error from any earlier attempt.
		ErrorMessage: sql.NullString{String: "", Valid: true},
	})
	if err != nil {
		s.logger.Errorf("UpdateScheduledPost error: %v", err)
		return nil, err
	}
	if _, err := s.repo.UpdatePostStatus(ctx, postdb.UpdatePostStatusParams{ID: p.ID, Status: StatusPublished}); err != nil {
		s.logger.Errorf("UpdatePostStatus error: %v", err)
	}

	s.logger.WithFields(logrus.Fields{
		"post_id":          p.ID.String(),
		"external_post_id": externalID,
	}).Info("Post published")
	return toScheduledPostData(updated), nil
}

// publish runs the container-create / media-publish sequence for the post's media type.
func (s *PostService) publish(ctx context.Context, p postdb.Post, accessToken, igID string) (string, error) {
	caption := p.Title
	if p.Content.Valid {
		caption = p.Content.String
	}
	if len(p.MediaUrls) == 0 {
		return "", fmt.Errorf("post %s has no media", p.ID)
	}

	switch p.MediaType {
	case MediaTypeImage:
		container, err := s.publisher.CreateImageContainer(ctx, accessToken, igID, p.MediaUrls[0], caption)
		if err != nil {
			return "", err
		}
		return s.publishContainer(ctx, accessToken, igID, container.ID)

	case MediaTypeVideo, MediaTypeReel:
		container, err := s.publisher.CreateVideoContainer(ctx, accessToken, igID, p.MediaUrls[0], caption, p.MediaType == MediaTypeReel)
		if err != nil {
			return "", err
		}
		if err := s.waitForContainer(ctx, accessToken, container.ID); err != nil {
			return "", err
		}
		return s.publishContainer(ctx, accessToken, igID, container.ID)

	case MediaTypeCarousel:
		children := make([]string, 0, len(p.MediaUrls))
		for _, mediaURL := range p.MediaUrls {
			child, err := s.publisher.CreateImageContainer(ctx, accessToken, igID, mediaURL, "")
			if err != nil {
				return "", err
			}
			children = append(children, child.ID)
		}
		container, err := s.publisher.CreateCarouselContainer(ctx, accessToken, igID, children, caption)
		if err != nil {
			return "", err
		}
		return s.publishContainer(ctx, accessToken, igID, container.ID)

	case MediaTypeStory:
		result, err := s.publisher.CreateStory(ctx, accessToken, igID, p.MediaUrls[0], storyMediaType(p.MediaUrls[0]))
		if err != nil {
			return "", err
		}
		return result.ID, nil

	default:
		return "", fmt.Errorf("unsupported media type %q", p.MediaType)
	}
}

func (s *PostService) publishContainer(ctx context.Context, accessToken, igID, containerID string) (string, error) {
	result, err := s.publisher.PublishMedia(ctx, accessToken, igID, containerID)
	if err != nil {
		return "", err
	}
	return result.ID, nil
}

// waitForContainer polls the container status until it reaches FINISHED.
func (s *PostService) waitForContainer(ctx context.Context, accessToken, containerID string) error {
	for attempt := 0; attempt < s.pollAttempts; attempt++ {
		status, err := s.publisher.GetMediaStatus(ctx, accessToken, containerID)
		if err != nil {
			return err
		}
		switch status.StatusCode {
		case "FINISHED":
			return nil
		case "ERROR":
			return fmt.Errorf("container %s failed server-side processing", containerID)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.pollInterval):
		}
	}
	return fmt.Errorf("container %s not ready after %d attempts", containerID, s.pollAttempts)
}

func (s *PostService) recordFailure(ctx context.Context, scheduleID, postID uuid.UUID, cause error) {
	if _, err := s.repo.UpdateScheduledPost(ctx, postdb.UpdateScheduledPostParams{
		ID:            scheduleID,
		PublishStatus: PublishStatusFailed,
		ErrorMessage:  sql.NullString{String: cause.Error(), Valid: true},
	}); err != nil {
		s.logger.Errorf("UpdateScheduledPost error: %v", err)
	}
	if _, err := s.repo.UpdatePostStatus(ctx, postdb.UpdatePostStatusParams{ID: postID, Status: StatusFailed}); err != nil {
		s.logger.Errorf("UpdatePostStatus error: %v", err)
	}
}

func (s *PostService) ownedPost(ctx context.Context, userID, postID uuid.UUID) (*postdb.Post, error) {
	p, err := s.repo.GetPostByID(ctx, postID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrPostNotFound
		}
		s.logger.Errorf("GetPostByID error: %v", err)
		return nil, err
	}
	if p.UserID != userID {
		return nil, apperrors.ErrPostNotFound
	}
	return &p, nil
}

func (s *PostService) ownedSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*postdb.ScheduledPost, error) {
	schedule, err := s.repo.GetScheduledPostByID(ctx, scheduleID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrScheduleNotFound
		}
		s.logger.Errorf("GetScheduledPostByID error: %v", err)
		return nil, err
	}
	if _, err := s.ownedPost(ctx, userID, schedule.PostID); err != nil {
		return nil, apperrors.ErrScheduleNotFound
	}
	return &schedule, nil
}

// igAccountID picks the Graph account id for a linked account. The numeric
// user_id is preferred when the provider supplied one.
func igAccountID(account accountdb.UserSocialAccount) string {
	if account.PlatformUserID.Valid {
		return account.PlatformUserID.String
	}
	return account.PlatformSpecificID
}

// storyMediaType infers the story container type from the media URL.
func storyMediaType(mediaURL string) string {
	if strings.HasSuffix(mediaURL, ".mp4") || strings.HasSuffix(mediaURL, ".mov") {
		return "VIDEO"
	}
	return "IMAGE"
}

func toPostData(p postdb.Post) *PostData {
	return &PostData{
		ID:        p.ID.String(),
		Title:     p.Title,
		Content:   p.Content.String,
		MediaType: p.MediaType,
		MediaUrls: p.MediaUrls,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toScheduledPostData(schedule postdb.ScheduledPost) *ScheduledPostData {
	data := &ScheduledPostData{
		ID:              schedule.ID.String(),
		PostID:          schedule.PostID.String(),
		SocialAccountID: schedule.SocialAccountID.String(),
		ScheduledTime:   schedule.ScheduledTime,
		PublishStatus:   schedule.PublishStatus,
		ExternalPostID:  schedule.ExternalPostID.String,
		ErrorMessage:    schedule.ErrorMessage.String,
		CreatedAt:       schedule.CreatedAt,
	}
	if schedule.PublishedTime.Valid {
		t := schedule.PublishedTime.Time
		data.PublishedTime = &t
	}
	return data
}
