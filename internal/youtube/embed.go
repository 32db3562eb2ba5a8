package youtube

import (
	"net/url"
	"strings"
)

// DefaultEmbedHost serves the standard embedded player.
const DefaultEmbedHost = "www.youtube.com"

// embedParams are fixed for every player: the JS control API must be on so
// remote commands land, and the player must start muted or browsers refuse
// autoplay.
var embedParams = url.Values{
	"enablejsapi":    {"1"},
	"rel":            {"0"},
	"controls":       {"1"},
	"modestbranding": {"1"},
	"autoplay":       {"1"},
	"mute":           {"1"},
	"playsinline":    {"1"},
}

// Embedder builds embeddable player addresses for a given host.
type Embedder struct {
	host string
}

// NewEmbedder returns an Embedder for host; an empty host selects
// DefaultEmbedHost.
func NewEmbedder(host string) Embedder {
	host = strings.TrimSpace(host)
	if host == "" {
		host = DefaultEmbedHost
	}
	return Embedder{host: host}
}

// Host reports the player host addresses are built against.
func (e Embedder) Host() string {
	if e.host == "" {
		return DefaultEmbedHost
	}
	return e.host
}

// URL returns the embeddable address for rawURL, or false when no video ID
// can be extracted.
func (e Embedder) URL(rawURL string) (string, bool) {
	id, ok := ExtractID(rawURL)
	if !ok {
		return "", false
	}
	return e.ForID(id), true
}

// ForID returns the embeddable address for an already-extracted video ID.
func (e Embedder) ForID(id VideoID) string {
	u := url.URL{
		Scheme:   "https",
		Host:     e.Host(),
		Path:     "/embed/" + string(id),
		RawQuery: embedParams.Encode(),
	}
	return u.String()
}

// EmbedURL builds the embeddable address on DefaultEmbedHost.
func EmbedURL(rawURL string) (string, bool) {
	return NewEmbedder(DefaultEmbedHost).URL(rawURL)
}
