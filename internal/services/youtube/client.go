package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/denisAlshanov/recipeGrab/internal/config"
	"github.com/denisAlshanov/recipeGrab/internal/metrics"
	"github.com/denisAlshanov/recipeGrab/internal/models"
	"github.com/denisAlshanov/recipeGrab/internal/utils"
)

// Client looks up video metadata through the YouTube Data API v3.
type Client struct {
	service *ytapi.Service
}

// NewClient creates a Data API client. Without an API key the client is
// still returned but every lookup fails with a configuration error.
func NewClient(ctx context.Context, cfg *config.YouTubeConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return &Client{}, nil
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	service, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

// Configured reports whether the client was created with an API key.
func (c *Client) Configured() bool {
	return c.service != nil
}

// GetVideoMetadata retrieves video metadata
func (c *Client) GetVideoMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	if c.service == nil {
		metrics.RecordUpstream(metrics.ServiceYouTube, metrics.OutcomeSkipped, 0)
		return nil, utils.NewConfigurationError("YOUTUBE_API_KEY")
	}

	start := time.Now()
	resp, err := c.service.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx).Do()
	elapsed := time.Since(start).Seconds()
	if err != nil {
		appErr := mapAPIError(videoID, err)
		metrics.RecordUpstream(metrics.ServiceYouTube, outcomeFor(appErr), elapsed)
		return nil, appErr
	}

	if len(resp.Items) == 0 {
		metrics.RecordUpstream(metrics.ServiceYouTube, metrics.OutcomeNotFound, elapsed)
		return nil, utils.NewVideoNotFoundError(videoID)
	}
	metrics.RecordUpstream(metrics.ServiceYouTube, metrics.OutcomeSuccess, elapsed)

	return metadataFromSnippet(videoID, resp.Items[0].Snippet), nil
}

func metadataFromSnippet(videoID string, snippet *ytapi.VideoSnippet) *models.VideoMetadata {
	if snippet == nil {
		snippet = &ytapi.VideoSnippet{}
	}

	return &models.VideoMetadata{
		VideoID:      videoID,
		Title:        orDefault(snippet.Title, DefaultTitle),
		Description:  orDefault(snippet.Description, DefaultDescription),
		ChannelTitle: orDefault(snippet.ChannelTitle, DefaultChannelTitle),
		PublishedAt:  orDefault(snippet.PublishedAt, DefaultPublishedAt),
		ThumbnailURL: ThumbnailURL(videoID),
	}
}

// mapAPIError translates a Data API failure into the service error taxonomy.
func mapAPIError(videoID string, err error) *utils.AppError {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return utils.NewUpstreamError(0, err)
	}

	switch apiErr.Code {
	case http.StatusForbidden:
		return utils.NewQuotaOrAuthError(err)
	case http.StatusNotFound:
		return utils.NewVideoNotFoundError(videoID)
	default:
		return utils.NewUpstreamError(apiErr.Code, err)
	}
}

func outcomeFor(err *utils.AppError) string {
	switch err.Code {
	case utils.ErrorCodeVideoNotFound:
		return metrics.OutcomeNotFound
	case utils.ErrorCodeQuotaOrAuth:
		return metrics.OutcomeDenied
	default:
		return metrics.OutcomeError
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
