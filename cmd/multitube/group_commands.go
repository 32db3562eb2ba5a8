package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"multitube/internal/channels"
	"multitube/internal/grid"
	"multitube/internal/youtube"
)

var (
	errNameRequired = errors.New("group name is required")
	errURLsRequired = errors.New("at least one YouTube URL is required")
)

func newGroupCommand(ctx *commandContext) *cobra.Command {
	groupCmd := &cobra.Command{
		Use:     "group",
		Aliases: []string{"groups"},
		Short:   "Manage channel groups",
	}

	groupCmd.AddCommand(newGroupListCommand(ctx))
	groupCmd.AddCommand(newGroupShowCommand(ctx))
	groupCmd.AddCommand(newGroupCreateCommand(ctx))
	groupCmd.AddCommand(newGroupUpdateCommand(ctx))
	groupCmd.AddCommand(newGroupDeleteCommand(ctx))

	return groupCmd
}

func newGroupListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List channel groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(_ context.Context, s *session) error {
				out := cmd.OutOrStdout()
				state := s.store.Snapshot()
				if len(state.Groups) == 0 {
					fmt.Fprintln(out, "No channel groups yet. Create one with `multitube group create`.")
					return nil
				}
				fmt.Fprintln(out, renderGroupTable(state))
				return nil
			})
		},
	}
}

func renderGroupTable(state channels.State) string {
	rows := make([][]string, 0, len(state.Groups))
	for i, g := range state.Groups {
		active := ""
		if g.ID == state.ActiveGroupID {
			active = "*"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			g.Name,
			strconv.Itoa(len(g.Channels)),
			g.ID,
			active,
		})
	}
	return renderTable(
		[]string{"#", "Name", "Channels", "ID", "Active"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft},
	)
}

func newGroupShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <group>",
		Short: "Show the channels of a group",
		Long:  "Show the channels of a group. <group> is a group id, list position, or name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(_ context.Context, s *session) error {
				group, err := s.store.FindGroup(args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				for _, line := range renderSectionHeader(group.Name, colorize) {
					fmt.Fprintln(out, line)
				}
				fmt.Fprintf(out, "ID: %s\n", group.ID)
				if len(group.Channels) == 0 {
					fmt.Fprintln(out, "No channels in this group.")
					return nil
				}
				cols := grid.ColumnsFor(len(group.Channels))
				fmt.Fprintf(out, "Layout: %d row(s); %d/%d/%d columns (narrow/medium/wide)\n",
					grid.RowsFor(len(group.Channels)), cols.Base, cols.Medium, cols.Large)

				rows := make([][]string, 0, len(group.Channels))
				for i, ch := range group.Channels {
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						string(ch.ID),
						ch.URL,
						s.embedder.ForID(ch.ID),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Video", "URL", "Embed"},
					rows,
					[]columnAlignment{alignRight},
				))
				return nil
			})
		},
	}
}

func newGroupCreateCommand(ctx *commandContext) *cobra.Command {
	var name, urls string

	cmd := &cobra.Command{
		Use:   "create [url...]",
		Short: "Create a channel group",
		Long: "Create a channel group from comma-separated YouTube URLs given with --urls\n" +
			"and/or as arguments. Unrecognized URLs are skipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			urlsText := joinURLInput(urls, args)
			if err := validateGroupForm(name, urlsText); err != nil {
				return err
			}
			return ctx.withSession(cmd, func(c context.Context, s *session) error {
				group := s.store.CreateGroup(c, strings.TrimSpace(name), urlsText)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Created group %q (%s) with %d channel(s)\n", group.Name, group.ID, len(group.Channels))
				reportSkipped(out, urlsText, group)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Group name")
	cmd.Flags().StringVarP(&urls, "urls", "u", "", "Comma-separated YouTube URLs")
	return cmd
}

func newGroupUpdateCommand(ctx *commandContext) *cobra.Command {
	var name, urls string

	cmd := &cobra.Command{
		Use:   "update <group> [url...]",
		Short: "Rename a group or replace its channels",
		Long: "Rename a group or replace its channel list. Fields left out keep their\n" +
			"current value. Replacing the URLs resets every channel's play and mute state.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(c context.Context, s *session) error {
				group, err := s.store.FindGroup(args[0])
				if err != nil {
					return err
				}

				newName := group.Name
				if cmd.Flags().Changed("name") {
					newName = name
				}
				urlsText := youtube.JoinURLs(group.URLs())
				if cmd.Flags().Changed("urls") || len(args) > 1 {
					urlsText = joinURLInput(urls, args[1:])
				}
				if err := validateGroupForm(newName, urlsText); err != nil {
					return err
				}

				updated, err := s.store.UpdateGroup(c, group.ID, strings.TrimSpace(newName), urlsText)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Updated group %q (%s) with %d channel(s)\n", updated.Name, updated.ID, len(updated.Channels))
				reportSkipped(out, urlsText, updated)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New group name")
	cmd.Flags().StringVarP(&urls, "urls", "u", "", "Replacement comma-separated YouTube URLs")
	return cmd
}

func newGroupDeleteCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:     "delete <group>",
		Aliases: []string{"rm"},
		Short:   "Delete a channel group",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(c context.Context, s *session) error {
				group, err := s.store.FindGroup(args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !assumeYes {
					ok, err := confirm(cmd.InOrStdin(), out, fmt.Sprintf("Delete group %q?", group.Name))
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintln(out, "Aborted")
						return nil
					}
				}
				if err := s.store.DeleteGroup(c, group.ID); err != nil {
					return err
				}
				fmt.Fprintf(out, "Deleted group %q\n", group.Name)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Delete without asking for confirmation")
	return cmd
}

// validateGroupForm applies the group form rules: both fields must contain
// something other than whitespace.
func validateGroupForm(name, urlsText string) error {
	if strings.TrimSpace(name) == "" {
		return errNameRequired
	}
	if strings.TrimSpace(urlsText) == "" {
		return errURLsRequired
	}
	return nil
}

func joinURLInput(flagValue string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	if strings.TrimSpace(flagValue) != "" {
		parts = append(parts, flagValue)
	}
	for _, arg := range args {
		if strings.TrimSpace(arg) != "" {
			parts = append(parts, arg)
		}
	}
	return strings.Join(parts, ", ")
}

func reportSkipped(out io.Writer, urlsText string, group channels.Group) {
	segments := 0
	for _, segment := range strings.Split(urlsText, ",") {
		if strings.TrimSpace(segment) != "" {
			segments++
		}
	}
	if skipped := segments - len(group.Channels); skipped > 0 {
		fmt.Fprintf(out, "Skipped %d unrecognized URL(s)\n", skipped)
	}
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	fmt.Fprintln(out)
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
