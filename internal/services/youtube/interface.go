package youtube

import (
	"context"

	"github.com/denisAlshanov/recipeGrab/internal/models"
)

// YouTubeClient interface for YouTube operations
type YouTubeClient interface {
	// GetVideoMetadata retrieves the snippet metadata of a single video
	GetVideoMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error)

	// Configured reports whether an API key is available
	Configured() bool
}

// Defaults used when the snippet leaves a field empty.
const (
	DefaultTitle        = "Untitled Video"
	DefaultDescription  = "No description available"
	DefaultChannelTitle = "Unknown Channel"
	DefaultPublishedAt  = "Unknown Date"
)
