package player

import (
	"context"
	"fmt"
	"io"
	"sync"

	"multitube/internal/youtube"
)

// Target addresses one embedded player: the channel at Slot within the
// displayed group.
type Target struct {
	GroupID   string
	Slot      int
	ChannelID youtube.VideoID
}

func (t Target) String() string {
	return fmt.Sprintf("%s#%d", t.ChannelID, t.Slot+1)
}

// Controller is the remote-control capability of a set of embedded players.
type Controller interface {
	Play(ctx context.Context, target Target) error
	Pause(ctx context.Context, target Target) error
	Mute(ctx context.Context, target Target) error
	Unmute(ctx context.Context, target Target) error
}

// Sink delivers an encoded message to one player.
type Sink interface {
	Post(ctx context.Context, target Target, message []byte) error
}

// MessageController implements Controller by posting encoded commands to a Sink.
type MessageController struct {
	sink Sink
}

// NewMessageController returns a controller posting to sink.
func NewMessageController(sink Sink) *MessageController {
	return &MessageController{sink: sink}
}

func (c *MessageController) Play(ctx context.Context, target Target) error {
	return c.send(ctx, target, FuncPlay)
}

func (c *MessageController) Pause(ctx context.Context, target Target) error {
	return c.send(ctx, target, FuncPause)
}

func (c *MessageController) Mute(ctx context.Context, target Target) error {
	return c.send(ctx, target, FuncMute)
}

func (c *MessageController) Unmute(ctx context.Context, target Target) error {
	return c.send(ctx, target, FuncUnmute)
}

func (c *MessageController) send(ctx context.Context, target Target, fn Func) error {
	message, err := NewCommand(fn).Encode()
	if err != nil {
		return err
	}
	if err := c.sink.Post(ctx, target, message); err != nil {
		return fmt.Errorf("post %s to %s: %w", fn, target, err)
	}
	return nil
}

// WriterSink writes each message as a "channel#slot<TAB>json" line, with
// slots counted from 1.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Post(_ context.Context, target Target, message []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.w, "%s\t%s\n", target, message)
	return err
}
