package channels

import "multitube/internal/youtube"

// Group is a named, ordered collection of channels. Channel order is parse
// order and drives grid placement.
type Group struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Channels []youtube.Channel `json:"channels"`
}

// AllPaused reports whether no channel in the group is playing. An empty
// group counts as paused.
func (g Group) AllPaused() bool {
	for _, ch := range g.Channels {
		if ch.Playing {
			return false
		}
	}
	return true
}

// URLs returns the original URL text of each channel in order.
func (g Group) URLs() []string {
	urls := make([]string, 0, len(g.Channels))
	for _, ch := range g.Channels {
		urls = append(urls, ch.URL)
	}
	return urls
}

// Clone returns a deep copy of the group.
func (g Group) Clone() Group {
	out := g
	if g.Channels != nil {
		out.Channels = make([]youtube.Channel, len(g.Channels))
		copy(out.Channels, g.Channels)
	}
	return out
}

// State is an immutable snapshot of the view state.
type State struct {
	Groups           []Group
	ActiveGroupID    string
	UnmutedChannelID youtube.VideoID
	Managing         bool
}

// ActiveGroup returns the group currently displayed in the watch grid.
func (s State) ActiveGroup() (Group, bool) {
	if s.ActiveGroupID == "" {
		return Group{}, false
	}
	for _, g := range s.Groups {
		if g.ID == s.ActiveGroupID {
			return g, true
		}
	}
	return Group{}, false
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := s
	out.Groups = cloneGroups(s.Groups)
	return out
}

func (s *State) groupIndex(id string) int {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) activeIndex() int {
	if s.ActiveGroupID == "" {
		return -1
	}
	return s.groupIndex(s.ActiveGroupID)
}

func cloneGroups(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = g.Clone()
	}
	return out
}
