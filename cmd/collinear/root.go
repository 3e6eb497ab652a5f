package main

import (
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-collinear/pkg/config"
)

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var configPath string

	root := &cobra.Command{
		Use:           "collinear",
		Short:         "Decide the collinear-erasure game on an m x n grid",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return nil
			}
			return cfg.LoadWithFlags(configPath, cmd.Flags())
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Yaml file with the solve settings, explicit flags take precedence.")
	cfg.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newSolveCmd(&cfg), newLinesCmd(&cfg))
	return root
}

// Logfmt logger on 'w', filtered by the level name
func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))

	var filter level.Option
	switch lvl {
	case "debug":
		filter = level.AllowDebug()
	case "warn":
		filter = level.AllowWarn()
	case "error":
		filter = level.AllowError()
	default:
		filter = level.AllowInfo()
	}

	logger = level.NewFilter(logger, filter)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func stderrLogger(lvl string) log.Logger {
	return newLogger(os.Stderr, lvl)
}
