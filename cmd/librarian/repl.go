package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-catalog-go/catalog/repl"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/config"
)

func newREPLCommand(cfg *config.Config) *cobra.Command {
	var (
		historyFile string
		verbose     bool
	)

	command := &cobra.Command{
		Use:   "repl",
		Short: "Open an interactive catalog console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			// the console owns the terminal, logs only go to stderr when asked for
			logOutput := io.Discard
			if verbose {
				logOutput = os.Stderr
			}

			a, err := newApp(ctx, *cfg, logOutput)
			if err != nil {
				return fmt.Errorf("failed to start catalog: %w", err)
			}
			defer func() { _ = a.close() }()

			options := []repl.Option{repl.WithOutput(cmd.OutOrStdout())}
			if cmd.Flags().Changed("history") {
				options = append(options, repl.WithHistoryFile(historyFile))
			}

			return repl.NewConsole(a.catalog, options...).Run(ctx)
		},
	}

	command.Flags().StringVar(&historyFile, "history", "", "history file, empty disables history (default ~/.librarian_history)")
	command.Flags().BoolVarP(&verbose, "verbose", "v", false, "write logs to stderr")

	return command
}
