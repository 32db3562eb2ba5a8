package player

import (
	"encoding/json"
	"fmt"
)

// Func names a player API function.
type Func string

const (
	FuncPlay   Func = "playVideo"
	FuncPause  Func = "pauseVideo"
	FuncMute   Func = "mute"
	FuncUnmute Func = "unMute"
)

const commandEvent = "command"

// Command is one remote-control message.
type Command struct {
	Event string `json:"event"`
	Func  Func   `json:"func"`
	Args  []any  `json:"args"`
}

// NewCommand returns a command invoking fn with no arguments.
func NewCommand(fn Func) Command {
	return Command{Event: commandEvent, Func: fn, Args: []any{}}
}

// Encode renders the command in its wire form,
// e.g. {"event":"command","func":"playVideo","args":[]}.
func (c Command) Encode() ([]byte, error) {
	if c.Args == nil {
		c.Args = []any{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode %s command: %w", c.Func, err)
	}
	return data, nil
}

// PlaybackFunc returns the command matching a playing flag.
func PlaybackFunc(playing bool) Func {
	if playing {
		return FuncPlay
	}
	return FuncPause
}

// AudioFunc returns the command matching a muted flag.
func AudioFunc(muted bool) Func {
	if muted {
		return FuncMute
	}
	return FuncUnmute
}
