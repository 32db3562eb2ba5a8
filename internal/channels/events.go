package channels

import (
	"context"

	"multitube/internal/youtube"
)

// Op names the store mutation that produced a Change.
type Op string

const (
	OpCreateGroup        Op = "create_group"
	OpUpdateGroup        Op = "update_group"
	OpDeleteGroup        Op = "delete_group"
	OpSetActiveGroup     Op = "set_active_group"
	OpToggleManagingView Op = "toggle_managing_view"
	OpToggleChannelMute  Op = "toggle_channel_mute"
	OpToggleChannelPlay  Op = "toggle_channel_play"
	OpStopAll            Op = "stop_all"
	OpResumeAll          Op = "resume_all"
)

// Change describes one committed mutation.
type Change struct {
	Op        Op
	GroupID   string
	ChannelID youtube.VideoID
	Before    State
	After     State
}

// Listener observes committed mutations. Listeners run synchronously after
// the store lock is released, in registration order.
type Listener interface {
	StateChanged(ctx context.Context, change Change)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(ctx context.Context, change Change)

func (f ListenerFunc) StateChanged(ctx context.Context, change Change) {
	f(ctx, change)
}
