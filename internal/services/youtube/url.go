package youtube

import (
	"fmt"
	"regexp"
	"strings"
)

// videoURLPattern matches watch, short, embed and legacy /v/ URLs. Scheme and
// host are case-insensitive, the id is not. The id is exactly 11 characters
// and must be followed by a delimiter or end of input.
var videoURLPattern = regexp.MustCompile(
	`^(?i:https?://)?(?i:(?:www|m)\.)?` +
		`(?:(?i:youtube\.com)/(?:watch\?(?:[^#\s]*&)?v=|embed/|v/)|(?i:youtu\.be)/)` +
		`([A-Za-z0-9_-]{11})(?:["&?/#\s]|$)`,
)

const thumbnailURLTemplate = "https://img.youtube.com/vi/%s/maxresdefault.jpg"

// ExtractVideoID returns the video id contained in rawURL.
func ExtractVideoID(rawURL string) (string, bool) {
	matches := videoURLPattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if len(matches) < 2 {
		return "", false
	}
	return matches[1], true
}

// IsYouTubeURL checks if the provided URL is a recognized YouTube video URL
func IsYouTubeURL(rawURL string) bool {
	_, ok := ExtractVideoID(rawURL)
	return ok
}

// ThumbnailURL returns the max resolution thumbnail for videoID. It does not
// check that the image exists.
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf(thumbnailURLTemplate, videoID)
}
