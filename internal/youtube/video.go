package youtube

import (
	"regexp"
	"strings"
)

// VideoID is the fixed 11-character token YouTube assigns to a video.
type VideoID string

// videoIDPattern accepts watch, embed, v, and shorts paths plus youtu.be short
// links, optionally prefixed by scheme and www. Query parameters ahead of v=
// are tolerated.
var videoIDPattern = regexp.MustCompile(
	`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:watch\?(?:.*&)?v=|embed/|v/|shorts/)|youtu\.be/)([A-Za-z0-9_-]{11})`,
)

// ExtractID pulls the video ID out of rawURL. The boolean is false when the
// text does not contain a supported address shape.
func ExtractID(rawURL string) (VideoID, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", false
	}
	m := videoIDPattern.FindStringSubmatch(rawURL)
	if len(m) < 2 || m[1] == "" {
		return "", false
	}
	return VideoID(m[1]), true
}
