package player

import (
	"context"
	"log/slog"

	"multitube/internal/channels"
	"multitube/internal/logging"
	"multitube/internal/youtube"
)

// Reactor keeps embedded players in step with the active group. It is
// registered as a store listener.
type Reactor struct {
	ctrl   Controller
	logger *slog.Logger
}

// NewReactor returns a reactor driving ctrl.
func NewReactor(ctrl Controller, logger *slog.Logger) *Reactor {
	return &Reactor{
		ctrl:   ctrl,
		logger: logging.NewComponentLogger(logger, "player"),
	}
}

// StateChanged implements channels.Listener. Nothing is sent while the group
// manager is shown. Players that just appeared get their full state, others
// only the flags that changed.
func (r *Reactor) StateChanged(ctx context.Context, change channels.Change) {
	after := change.After
	if after.Managing {
		return
	}
	group, ok := after.ActiveGroup()
	if !ok {
		return
	}

	previous, hadPrevious := change.Before.ActiveGroup()
	fullSync := change.Before.Managing || !hadPrevious || previous.ID != group.ID

	for slot, ch := range group.Channels {
		target := Target{GroupID: group.ID, Slot: slot, ChannelID: ch.ID}
		var old youtube.Channel
		fresh := fullSync || slot >= len(previous.Channels)
		if !fresh {
			old = previous.Channels[slot]
			fresh = old.ID != ch.ID || old.URL != ch.URL
		}
		if fresh || old.Playing != ch.Playing {
			r.dispatch(ctx, target, PlaybackFunc(ch.Playing))
		}
		if fresh || old.Muted != ch.Muted {
			r.dispatch(ctx, target, AudioFunc(ch.Muted))
		}
	}
}

// Sync sends the full state of every channel in group.
func (r *Reactor) Sync(ctx context.Context, group channels.Group) {
	for slot, ch := range group.Channels {
		target := Target{GroupID: group.ID, Slot: slot, ChannelID: ch.ID}
		r.dispatch(ctx, target, PlaybackFunc(ch.Playing))
		r.dispatch(ctx, target, AudioFunc(ch.Muted))
	}
}

func (r *Reactor) dispatch(ctx context.Context, target Target, fn Func) {
	var err error
	switch fn {
	case FuncPlay:
		err = r.ctrl.Play(ctx, target)
	case FuncPause:
		err = r.ctrl.Pause(ctx, target)
	case FuncMute:
		err = r.ctrl.Mute(ctx, target)
	case FuncUnmute:
		err = r.ctrl.Unmute(ctx, target)
	}
	if err != nil {
		logging.WarnWithContext(r.logger, "player command failed", "player_command_failed",
			logging.String(logging.FieldGroupID, target.GroupID),
			logging.String(logging.FieldChannelID, string(target.ChannelID)),
			logging.String("func", string(fn)),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "the player may be out of sync until its next change"),
			logging.String(logging.FieldImpact, "video state on screen may not match the session"))
		return
	}
	r.logger.Debug("player command sent",
		logging.String(logging.FieldGroupID, target.GroupID),
		logging.String(logging.FieldChannelID, string(target.ChannelID)),
		logging.String("func", string(fn)))
}
