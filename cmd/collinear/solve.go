package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/muesli/termenv"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-collinear/pkg/collinear"
	"github.com/IlikeChooros/go-collinear/pkg/config"
	"github.com/IlikeChooros/go-collinear/pkg/solver"
)

func newSolveCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Decide whether the first player can force a win",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := stderrLogger(cfg.LogLevel)
			out := termenv.NewOutput(cmd.OutOrStdout())

			catalog, err := collinear.EnumerateLines(cfg.M, cfg.N)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "N points:", humanize.Comma(int64(cfg.M*cfg.N)))
			fmt.Fprintln(out, "num lines:", humanize.Comma(int64(len(catalog))))

			opts := []solver.Option{
				solver.WithLimits(cfg.Limits()),
				solver.WithLogger(logger),
			}
			if cfg.ProgressInterval > 0 {
				opts = append(opts, solver.WithListener(progressListener(cfg.ProgressInterval)))
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			result, err := collinear.Solve(ctx, cfg.M, cfg.N, opts...)
			if err != nil {
				level.Error(logger).Log("msg", "solve failed", "m", cfg.M, "n", cfg.N, "err", err)
				return err
			}

			printResult(out, result)
			return nil
		},
	}
}

func printResult(out *termenv.Output, result collinear.Result) {
	verdict := out.String("second player wins").Foreground(out.Color("1"))
	if result.FirstPlayerWins {
		verdict = out.String("first player wins").Foreground(out.Color("2"))
	}

	fmt.Fprintf(out, "%dx%d: %s\n", result.M, result.N, verdict.Bold())
	fmt.Fprintln(out, "states computed:", humanize.Comma(int64(result.StatesEvaluated)))
	fmt.Fprintln(out, "elapsed:", result.Elapsed.Round(time.Millisecond))
}

// Spinner on stderr, updated by the solver's main thread
func progressListener(interval uint64) solver.StatsListener {
	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetDescription("solving"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	listener := solver.NewStatsListener()
	listener.
		SetProgressInterval(interval).
		OnProgress(func(stats solver.Stats) {
			bar.Describe(fmt.Sprintf("solving (%s states/s)", humanize.Comma(int64(stats.Sps))))
			_ = bar.Set64(int64(stats.States))
		}).
		OnStop(func(stats solver.Stats) {
			_ = bar.Finish()
		})
	return listener
}
