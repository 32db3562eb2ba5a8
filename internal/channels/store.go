package channels

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"multitube/internal/logging"
	"multitube/internal/youtube"
)

// ErrGroupNotFound is returned when an operation names a group that does not exist.
var ErrGroupNotFound = errors.New("group not found")

// Store is the view-state container shared by every presentation component.
type Store struct {
	mu        sync.Mutex
	state     State
	newID     func() string
	listeners []Listener
	logger    *slog.Logger
}

// Option customizes a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID group id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithLogger attaches a logger for mutation tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logging.NewComponentLogger(logger, "store")
	}
}

// WithListener registers a listener at construction time.
func WithListener(l Listener) Option {
	return func(s *Store) {
		if l != nil {
			s.listeners = append(s.listeners, l)
		}
	}
}

// NewStore builds a store seeded with groups, typically a loaded snapshot.
// The first group becomes active and the session starts in manage mode. Every
// seeded channel starts muted because freshly embedded players always do.
func NewStore(groups []Group, opts ...Option) *Store {
	s := &Store{
		newID:  uuid.NewString,
		logger: logging.NewComponentLogger(nil, "store"),
	}
	for _, opt := range opts {
		opt(s)
	}

	seeded := cloneGroups(groups)
	for gi := range seeded {
		if seeded[gi].Channels == nil {
			seeded[gi].Channels = []youtube.Channel{}
		}
		for ci := range seeded[gi].Channels {
			seeded[gi].Channels[ci].Muted = true
		}
	}
	s.state = State{Groups: seeded, Managing: true}
	if len(seeded) > 0 {
		s.state.ActiveGroupID = seeded[0].ID
	}
	return s
}

// Subscribe registers a listener for future changes.
func (s *Store) Subscribe(l Listener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Groups returns a copy of every group in insertion order.
func (s *Store) Groups() []Group {
	return s.Snapshot().Groups
}

// ActiveGroup returns the group currently on screen.
func (s *Store) ActiveGroup() (Group, bool) {
	return s.Snapshot().ActiveGroup()
}

// UnmutedChannelID returns the channel currently allowed to play audio, or ""
// when every channel is muted.
func (s *Store) UnmutedChannelID() youtube.VideoID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UnmutedChannelID
}

// Managing reports whether the session is in group management mode.
func (s *Store) Managing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Managing
}

// CreateGroup parses urlsText and appends a new group. The group becomes
// active when it is the first one. An empty channel list is accepted.
func (s *Store) CreateGroup(ctx context.Context, name, urlsText string) Group {
	var created Group
	_ = s.commit(ctx, OpCreateGroup, func(st *State) (string, youtube.VideoID, error) {
		wasEmpty := len(st.Groups) == 0
		created = Group{
			ID:       s.newID(),
			Name:     name,
			Channels: youtube.ParseBulk(urlsText),
		}
		st.Groups = append(st.Groups, created)
		if wasEmpty {
			st.ActiveGroupID = created.ID
		}
		return created.ID, "", nil
	})
	return created.Clone()
}

// UpdateGroup renames the group and replaces its channel list with a fresh
// parse of urlsText. Prior per-channel flags are discarded.
func (s *Store) UpdateGroup(ctx context.Context, id, name, urlsText string) (Group, error) {
	var updated Group
	err := s.commit(ctx, OpUpdateGroup, func(st *State) (string, youtube.VideoID, error) {
		idx := st.groupIndex(id)
		if idx < 0 {
			return id, "", fmt.Errorf("update group %q: %w", id, ErrGroupNotFound)
		}
		st.Groups[idx].Name = name
		st.Groups[idx].Channels = youtube.ParseBulk(urlsText)
		updated = st.Groups[idx]
		return id, "", nil
	})
	if err != nil {
		return Group{}, err
	}
	return updated.Clone(), nil
}

// DeleteGroup removes the group. When it was active, the first remaining
// group takes over, or nothing when the list is now empty.
func (s *Store) DeleteGroup(ctx context.Context, id string) error {
	return s.commit(ctx, OpDeleteGroup, func(st *State) (string, youtube.VideoID, error) {
		idx := st.groupIndex(id)
		if idx < 0 {
			return id, "", fmt.Errorf("delete group %q: %w", id, ErrGroupNotFound)
		}
		st.Groups = append(st.Groups[:idx], st.Groups[idx+1:]...)
		if st.ActiveGroupID == id {
			st.ActiveGroupID = ""
			muteEverywhere(st, st.UnmutedChannelID)
			st.UnmutedChannelID = ""
			if len(st.Groups) > 0 {
				st.ActiveGroupID = st.Groups[0].ID
			}
		}
		return id, "", nil
	})
}

// SetActiveGroup switches the displayed group; "" clears the selection.
// Channel flags of every group are left untouched.
func (s *Store) SetActiveGroup(ctx context.Context, id string) error {
	return s.commit(ctx, OpSetActiveGroup, func(st *State) (string, youtube.VideoID, error) {
		if id != "" && st.groupIndex(id) < 0 {
			return id, "", fmt.Errorf("activate group %q: %w", id, ErrGroupNotFound)
		}
		st.ActiveGroupID = id
		return id, "", nil
	})
}

// ToggleManagingView flips between managing groups and watching the grid and
// reports the new mode. Audio exclusivity belongs to a viewing session, so the
// unmuted channel is muted again as part of the switch, in whichever group it
// was unmuted.
func (s *Store) ToggleManagingView(ctx context.Context) bool {
	var managing bool
	_ = s.commit(ctx, OpToggleManagingView, func(st *State) (string, youtube.VideoID, error) {
		st.Managing = !st.Managing
		managing = st.Managing
		unmuted := st.UnmutedChannelID
		muteEverywhere(st, unmuted)
		st.UnmutedChannelID = ""
		return st.ActiveGroupID, unmuted, nil
	})
	return managing
}

// ToggleChannelMute is an exclusive-choice toggle. Toggling the unmuted
// channel mutes it; toggling any other channel makes it the only unmuted
// channel in the active group, and the previously unmuted channel is muted
// even when it sits in another group. Without an active group nothing happens.
func (s *Store) ToggleChannelMute(ctx context.Context, channelID youtube.VideoID) {
	_ = s.commitActive(ctx, OpToggleChannelMute, channelID, func(st *State, g *Group) {
		if st.UnmutedChannelID == channelID {
			muteEverywhere(st, channelID)
			st.UnmutedChannelID = ""
			return
		}
		muteEverywhere(st, st.UnmutedChannelID)
		st.UnmutedChannelID = channelID
		setMuted(g.Channels, func(ch youtube.Channel) bool {
			return ch.ID != channelID
		})
	})
}

// ToggleChannelPlay flips the playing flag of one channel in the active group.
func (s *Store) ToggleChannelPlay(ctx context.Context, channelID youtube.VideoID) {
	_ = s.commitActive(ctx, OpToggleChannelPlay, channelID, func(_ *State, g *Group) {
		for i := range g.Channels {
			if g.Channels[i].ID == channelID {
				g.Channels[i].Playing = !g.Channels[i].Playing
			}
		}
	})
}

// StopAll pauses every channel in the active group.
func (s *Store) StopAll(ctx context.Context) {
	_ = s.commitActive(ctx, OpStopAll, "", func(_ *State, g *Group) {
		setPlaying(g.Channels, false)
	})
}

// ResumeAll plays every channel in the active group.
func (s *Store) ResumeAll(ctx context.Context) {
	_ = s.commitActive(ctx, OpResumeAll, "", func(_ *State, g *Group) {
		setPlaying(g.Channels, true)
	})
}

// TogglePlayback resumes the active group when every channel is paused and
// stops it otherwise, matching the grid's combined pause/resume button.
func (s *Store) TogglePlayback(ctx context.Context) {
	group, ok := s.ActiveGroup()
	if !ok {
		return
	}
	if group.AllPaused() {
		s.ResumeAll(ctx)
		return
	}
	s.StopAll(ctx)
}

var errNoActiveGroup = errors.New("no active group")

func (s *Store) commitActive(ctx context.Context, op Op, channelID youtube.VideoID, mutate func(*State, *Group)) error {
	return s.commit(ctx, op, func(st *State) (string, youtube.VideoID, error) {
		idx := st.activeIndex()
		if idx < 0 {
			return "", channelID, errNoActiveGroup
		}
		mutate(st, &st.Groups[idx])
		return st.ActiveGroupID, channelID, nil
	})
}

// commit applies mutate to a private copy of the state and swaps it in when
// mutate succeeds. Listeners see the change after the lock is released.
func (s *Store) commit(ctx context.Context, op Op, mutate func(*State) (string, youtube.VideoID, error)) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s.mu.Lock()
	before := s.state
	next := s.state.Clone()
	groupID, channelID, err := mutate(&next)
	if err != nil {
		s.mu.Unlock()
		if !errors.Is(err, errNoActiveGroup) {
			s.logger.Debug("store mutation rejected",
				logging.String(logging.FieldOperation, string(op)),
				logging.Error(err))
		}
		return err
	}
	s.state = next
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	s.logger.Debug("store mutation committed",
		logging.String(logging.FieldOperation, string(op)),
		logging.String(logging.FieldGroupID, groupID),
		logging.String(logging.FieldChannelID, string(channelID)))

	change := Change{
		Op:        op,
		GroupID:   groupID,
		ChannelID: channelID,
		Before:    before,
		After:     next.Clone(),
	}
	for _, l := range listeners {
		l.StateChanged(ctx, change)
	}
	return nil
}

// muteEverywhere mutes every channel with id across all groups. The tracked
// channel may belong to a group that is no longer active.
func muteEverywhere(st *State, id youtube.VideoID) {
	if id == "" {
		return
	}
	for gi := range st.Groups {
		setMuted(st.Groups[gi].Channels, func(ch youtube.Channel) bool {
			return ch.ID == id || ch.Muted
		})
	}
}

func setMuted(channels []youtube.Channel, muted func(youtube.Channel) bool) {
	for i := range channels {
		channels[i].Muted = muted(channels[i])
	}
}

func setPlaying(channels []youtube.Channel, playing bool) {
	for i := range channels {
		channels[i].Playing = playing
	}
}
