package snapshot

import (
	"multitube/internal/channels"
	"multitube/internal/youtube"
)

// DefaultGroups returns the groups offered on a first run, before anything
// has been saved.
func DefaultGroups() []channels.Group {
	return []channels.Group{
		defaultGroup("default-news", "News", []string{
			"https://www.youtube.com/watch?v=9Auq9mYxFEE",
			"https://www.youtube.com/watch?v=gCNeDWCI0vo",
			"https://www.youtube.com/watch?v=YDvsBbKfLPA",
			"https://www.youtube.com/watch?v=jNQXAC9IVRw",
		}),
		defaultGroup("default-lofi", "Lo-fi", []string{
			"https://www.youtube.com/watch?v=jfKfPfyJRdk",
			"https://www.youtube.com/watch?v=4xDzrJKXOOY",
		}),
	}
}

func defaultGroup(id, name string, urls []string) channels.Group {
	group := channels.Group{ID: id, Name: name, Channels: make([]youtube.Channel, 0, len(urls))}
	for _, raw := range urls {
		if ch, ok := youtube.NewChannel(raw); ok {
			group.Channels = append(group.Channels, ch)
		}
	}
	return group
}
