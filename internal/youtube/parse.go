package youtube

import "strings"

// Channel is one video entry parsed from user input. Fresh channels start
// muted and playing, mirroring the embed's mute=1 and autoplay=1 parameters.
type Channel struct {
	ID      VideoID `json:"id"`
	URL     string  `json:"url"`
	Muted   bool    `json:"muted"`
	Playing bool    `json:"playing"`
}

// NewChannel builds a channel record for a single URL segment.
func NewChannel(rawURL string) (Channel, bool) {
	id, ok := ExtractID(rawURL)
	if !ok {
		return Channel{}, false
	}
	return Channel{ID: id, URL: rawURL, Muted: true, Playing: true}, true
}

// ParseBulk splits comma-separated text into channels in input order.
// Blank segments and segments without a recognizable video ID are dropped.
func ParseBulk(text string) []Channel {
	channels := []Channel{}
	for _, segment := range strings.Split(text, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if ch, ok := NewChannel(segment); ok {
			channels = append(channels, ch)
		}
	}
	return channels
}

// JoinURLs renders URLs back into the comma-separated form accepted by
// ParseBulk, as used to pre-fill an edit form.
func JoinURLs(urls []string) string {
	return strings.Join(urls, ", ")
}
