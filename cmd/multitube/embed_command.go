package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEmbedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "embed <url>...",
		Short: "Print embeddable player addresses for YouTube URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			embedder := newEmbedder(cfg)
			out := cmd.OutOrStdout()
			failed := 0
			for _, raw := range args {
				embed, ok := embedder.URL(raw)
				if !ok {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "no video id found in %q\n", raw)
					continue
				}
				fmt.Fprintln(out, embed)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d URL(s) were not recognized", failed, len(args))
			}
			return nil
		},
	}
}
