package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-collinear/pkg/board"
	"github.com/IlikeChooros/go-collinear/pkg/collinear"
	"github.com/IlikeChooros/go-collinear/pkg/config"
)

func newLinesCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "Print every line of the board, longest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := collinear.EnumerateLines(cfg.M, cfg.N)
			if err != nil {
				return err
			}

			b := board.Board{M: cfg.M, N: cfg.N}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%dx%d: %s lines\n", b.M, b.N, humanize.Comma(int64(len(catalog))))
			for i, line := range catalog {
				fmt.Fprintf(out, "\nline %d (%d points) %s\n", i+1, line.Count(), line)
				fmt.Fprint(out, board.Render(b, line))
			}
			return nil
		},
	}
}
