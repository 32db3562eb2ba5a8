package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"multitube/internal/channels"
	"multitube/internal/config"
	"multitube/internal/grid"
	"multitube/internal/player"
	"multitube/internal/youtube"
)

const watchHelp = `Commands:
  mute N      give audio to channel N, or mute it when it already has audio
  play N      pause or resume channel N
  stop        pause every channel
  resume      resume every channel
  toggle      resume when everything is paused, otherwise stop
  use GROUP   switch to another group (id, number, or name)
  manage      switch between the group list and the grid
  show        redraw the current view
  groups      list groups
  help        show this help
  quit        leave the session`

var errManaging = errors.New("channel controls are hidden while managing groups; type `manage` to return to the grid")

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var commandsPath string

	cmd := &cobra.Command{
		Use:   "watch [group]",
		Short: "Watch a group in an interactive session",
		Long: "Watch a group in an interactive session. Player commands are written as\n" +
			"\"<video id>#<slot>\\t<json>\" lines to --commands, or to stderr when no file is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(c context.Context, s *session) error {
				sinkWriter := cmd.ErrOrStderr()
				if strings.TrimSpace(commandsPath) != "" {
					file, err := openCommandLog(commandsPath)
					if err != nil {
						return err
					}
					defer file.Close()
					sinkWriter = file
				}

				out := cmd.OutOrStdout()
				w := &watchSession{
					store:    s.store,
					reactor:  player.NewReactor(player.NewMessageController(player.NewWriterSink(sinkWriter)), s.logger),
					out:      out,
					colorize: shouldColorize(out),
					width:    terminalWidth(out),
				}
				return w.run(c, cmd.InOrStdin(), args)
			})
		},
	}

	cmd.Flags().StringVar(&commandsPath, "commands", "", "File receiving player commands (appended)")
	return cmd
}

func openCommandLog(path string) (*os.File, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve commands path: %w", err)
	}
	file, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open commands file: %w", err)
	}
	return file, nil
}

type watchSession struct {
	store    *channels.Store
	reactor  *player.Reactor
	out      io.Writer
	colorize bool
	width    int
}

func (w *watchSession) run(ctx context.Context, in io.Reader, args []string) error {
	if len(args) == 1 {
		group, err := w.store.FindGroup(args[0])
		if err != nil {
			return err
		}
		if err := w.store.SetActiveGroup(ctx, group.ID); err != nil {
			return err
		}
	}

	w.store.Subscribe(w.reactor)
	if w.store.Managing() {
		w.store.ToggleManagingView(ctx)
	}
	w.show()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(w.out, "multitube> ")
		if !scanner.Scan() {
			fmt.Fprintln(w.out)
			break
		}
		quit, err := w.execute(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintln(w.out, paint("error: "+err.Error(), ansiRed, w.colorize))
		}
		if quit {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (w *watchSession) execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	verb := strings.ToLower(fields[0])
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))

	switch verb {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprintln(w.out, watchHelp)
	case "show":
		w.show()
	case "groups":
		w.printGroups()
	case "manage":
		w.store.ToggleManagingView(ctx)
		w.show()
	case "use":
		if rest == "" {
			return false, errors.New("usage: use GROUP")
		}
		group, err := w.store.FindGroup(rest)
		if err != nil {
			return false, err
		}
		if err := w.store.SetActiveGroup(ctx, group.ID); err != nil {
			return false, err
		}
		w.show()
	case "mute", "audio", "play", "pause":
		channelID, err := w.channelAt(rest)
		if err != nil {
			return false, err
		}
		if verb == "mute" || verb == "audio" {
			w.store.ToggleChannelMute(ctx, channelID)
		} else {
			w.store.ToggleChannelPlay(ctx, channelID)
		}
		w.show()
	case "stop", "resume", "toggle":
		if w.store.Managing() {
			return false, errManaging
		}
		switch verb {
		case "stop":
			w.store.StopAll(ctx)
		case "resume":
			w.store.ResumeAll(ctx)
		default:
			w.store.TogglePlayback(ctx)
		}
		w.show()
	default:
		return false, fmt.Errorf("unknown command %q; type `help` for the list", fields[0])
	}
	return false, nil
}

// channelAt resolves a 1-based grid position in the active group.
func (w *watchSession) channelAt(ref string) (youtube.VideoID, error) {
	if w.store.Managing() {
		return "", errManaging
	}
	group, ok := w.store.ActiveGroup()
	if !ok {
		return "", errors.New("no channel group selected; pick one with `use GROUP`")
	}
	pos, err := strconv.Atoi(strings.TrimSpace(ref))
	if err != nil || pos < 1 || pos > len(group.Channels) {
		return "", fmt.Errorf("channel number must be between 1 and %d", len(group.Channels))
	}
	return group.Channels[pos-1].ID, nil
}

func (w *watchSession) show() {
	state := w.store.Snapshot()
	if state.Managing {
		w.printGroups()
		fmt.Fprintln(w.out, "Managing groups. Type `use GROUP` to pick one and `manage` to return to the grid.")
		return
	}
	fmt.Fprint(w.out, renderWatchGrid(state, w.width, w.colorize))
}

func (w *watchSession) printGroups() {
	state := w.store.Snapshot()
	if len(state.Groups) == 0 {
		fmt.Fprintln(w.out, "No channel groups yet. Create one with `multitube group create`.")
		return
	}
	fmt.Fprintln(w.out, renderGroupTable(state))
}

func renderWatchGrid(state channels.State, width int, colorize bool) string {
	var b strings.Builder
	group, ok := state.ActiveGroup()
	if !ok {
		b.WriteString("No channel group selected.\n")
		b.WriteString("Pick one with `use GROUP` to start watching.\n")
		return b.String()
	}
	for _, line := range renderSectionHeader(group.Name, colorize) {
		b.WriteString(line + "\n")
	}
	if len(group.Channels) == 0 {
		b.WriteString("No channels in this group.\n")
		b.WriteString("Add some with `multitube group update`.\n")
		return b.String()
	}

	action := "stop all"
	if group.AllPaused() {
		action = "resume all"
	}
	audio := "none"
	if state.UnmutedChannelID != "" {
		audio = string(state.UnmutedChannelID)
	}
	fmt.Fprintf(&b, "Audio: %s | toggle: %s\n", audio, action)

	columns := grid.ColumnsFor(len(group.Channels)).At(grid.BreakpointFor(width))
	layout := grid.Arrange(len(group.Channels), columns)
	rows := make([][]string, 0, len(layout))
	for _, indexes := range layout {
		cells := make([]string, 0, len(indexes))
		for _, i := range indexes {
			cells = append(cells, renderChannelCell(i, group.Channels[i], colorize))
		}
		rows = append(rows, cells)
	}
	b.WriteString(renderGridTable(rows, columns))
	b.WriteString("\n")
	return b.String()
}

func renderChannelCell(index int, ch youtube.Channel, colorize bool) string {
	playback := paint("playing", ansiGreen, colorize)
	if !ch.Playing {
		playback = paint("paused", ansiDim, colorize)
	}
	audio := paint("muted", ansiDim, colorize)
	if !ch.Muted {
		audio = paint("audio on", ansiYellow, colorize)
	}
	return fmt.Sprintf("%d  %s\n%s, %s", index+1, ch.ID, playback, audio)
}
