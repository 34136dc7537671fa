package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// graphError is the error envelope the Graph API returns on publish failures.
type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// CreateImageContainer creates an image post container for the given Instagram account.
func (c *Client) CreateImageContainer(ctx context.Context, accessToken, igAccountID, imageURL, caption string) (*MediaContainer, error) {
	params := url.Values{}
	params.Set("image_url", imageURL)
	params.Set("caption", caption)
	params.Set("access_token", accessToken)

	var container MediaContainer
	if err := c.postGraph(ctx, fmt.Sprintf("/%s/%s/media", graphVersion, igAccountID), params, &container); err != nil {
		return nil, fmt.Errorf("create image container: %w", err)
	}
	return &container, nil
}

// CreateVideoContainer creates a video or reel container for the given Instagram account.
func (c *Client) CreateVideoContainer(ctx context.Context, accessToken, igAccountID, videoURL, caption string, isReel bool) (*MediaContainer, error) {
	mediaType := "VIDEO"
	if isReel {
		mediaType = "REELS"
	}
	params := url.Values{}
	params.Set("media_type", mediaType)
	params.Set("video_url", videoURL)
	params.Set("caption", caption)
	params.Set("access_token", accessToken)

	var container MediaContainer
	if err := c.postGraph(ctx, fmt.Sprintf("/%s/%s/media", graphVersion, igAccountID), params, &container); err != nil {
		return nil, fmt.Errorf("create video container: %w", err)
	}
	return &container, nil
}

// CreateCarouselContainer creates a carousel container from previously created child containers.
func (c *Client) CreateCarouselContainer(ctx context.Context, accessToken, igAccountID string, childrenIDs []string, caption string) (*MediaContainer, error) {
	params := url.Values{}
	params.Set("media_type", "CAROUSEL")
	params.Set("children", strings.Join(childrenIDs, ","))
	params.Set("caption", caption)
	params.Set("access_token", accessToken)

	var container MediaContainer
	if err := c.postGraph(ctx, fmt.Sprintf("/%s/%s/media", graphVersion, igAccountID), params, &container); err != nil {
		return nil, fmt.Errorf("create carousel container: %w", err)
	}
	return &container, nil
}

// PublishMedia publishes a previously created media container.
func (c *Client) PublishMedia(ctx context.Context, accessToken, igAccountID, creationID string) (*PublishResult, error) {
	params := url.Values{}
	params.Set("creation_id", creationID)
	params.Set("access_token", accessToken)

	var result PublishResult
	if err := c.postGraph(ctx, fmt.Sprintf("/%s/%s/media_publish", graphVersion, igAccountID), params, &result); err != nil {
		return nil, fmt.Errorf("publish media: %w", err)
	}
	return &result, nil
}

// CreateStory creates a story container and publishes it immediately.
// Stories have no draft state on the Graph API.
func (c *Client) CreateStory(ctx context.Context, accessToken, igAccountID, mediaURL, mediaType string) (*PublishResult, error) {
	params := url.Values{}
	params.Set("media_type", "STORIES")
	if mediaType == "VIDEO" {
		params.Set("video_url", mediaURL)
	} else {
		params.Set("image_url", mediaURL)
	}
	params.Set("access_token", accessToken)

	var container MediaContainer
	if err := c.postGraph(ctx, fmt.Sprintf("/%s/%s/media", graphVersion, igAccountID), params, &container); err != nil {
		return nil, fmt.Errorf("create story: %w", err)
	}
	return c.PublishMedia(ctx, accessToken, igAccountID, container.ID)
}

// GetMediaStatus returns the processing status of a media container.
// Video containers must reach FINISHED before they can be published.
func (c *Client) GetMediaStatus(ctx context.Context, accessToken, containerID string) (*MediaStatus, error) {
	params := url.Values{}
	params.Set("fields", "status_code")
	params.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/%s?%s", c.GraphBaseURL, graphVersion, containerID, params.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("media status: status %d", resp.StatusCode)
	}

	var status MediaStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("media status: decode response: %w", err)
	}
	return &status, nil
}

// postGraph issues a POST against the Graph API and decodes the response into out.
// Graph publish errors carry a structured message; surface it when present.
func (c *Client) postGraph(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GraphBaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ge graphError
		if err := json.Unmarshal(body, &ge); err == nil && ge.Error.Message != "" {
			return fmt.Errorf("graph api error: %s (code %d)", ge.Error.Message, ge.Error.Code)
		}
		return fmt.Errorf("graph api error: status %d", resp.StatusCode)
	}

	return json.Unmarshal(body, out)
}
