package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/config"
)

func newRootCommand() *cobra.Command {
	var cfg config.Config

	root := &cobra.Command{
		Use:           "librarian",
		Short:         "Library borrowing catalog",
		Long:          "librarian keeps a catalog of books and their borrowing records in memory.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}

			if cfg, err = applyFlags(cmd.Flags(), loaded); err != nil {
				return err
			}

			return cfg.Validate()
		},
	}

	def := config.Default()
	pf := root.PersistentFlags()
	pf.String("addr", def.HTTPAddr, "HTTP listen address ("+config.EnvHTTPAddr+")")
	pf.String("journal-driver", def.JournalDriver,
		"event journal engine: memory, pgx, postgres, sqlx or sqlite ("+config.EnvJournalDriver+")")
	pf.String("journal-dsn", def.JournalDSN, "event journal DSN ("+config.EnvJournalDSN+")")
	pf.String("journal-table", def.JournalTable, "event journal table ("+config.EnvJournalTable+")")
	pf.String("log-level", def.LogLevel, "debug, info, warn or error ("+config.EnvLogLevel+")")
	pf.String("log-format", def.LogFormat, "text or json ("+config.EnvLogFormat+")")
	pf.Bool("otel", def.OTel, "report metrics and traces through OpenTelemetry ("+config.EnvOTel+")")
	pf.Bool("seed", def.Seed, "start with the demonstration books and borrowings ("+config.EnvSeed+")")
	pf.StringSlice("cors-origins", def.CORSOrigins, "allowed CORS origins ("+config.EnvCORSOrigins+")")

	root.AddCommand(newServeCommand(&cfg), newREPLCommand(&cfg))

	return root
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(flags *pflag.FlagSet, cfg config.Config) (config.Config, error) {
	var err error

	stringFlags := map[string]*string{
		"addr":           &cfg.HTTPAddr,
		"journal-driver": &cfg.JournalDriver,
		"journal-dsn":    &cfg.JournalDSN,
		"journal-table":  &cfg.JournalTable,
		"log-level":      &cfg.LogLevel,
		"log-format":     &cfg.LogFormat,
	}

	for name, target := range stringFlags {
		if flags.Changed(name) {
			if *target, err = flags.GetString(name); err != nil {
				return config.Config{}, err
			}
		}
	}

	boolFlags := map[string]*bool{
		"otel": &cfg.OTel,
		"seed": &cfg.Seed,
	}

	for name, target := range boolFlags {
		if flags.Changed(name) {
			if *target, err = flags.GetBool(name); err != nil {
				return config.Config{}, err
			}
		}
	}

	if flags.Changed("cors-origins") {
		if cfg.CORSOrigins, err = flags.GetStringSlice("cors-origins"); err != nil {
			return config.Config{}, err
		}
	}

	return cfg, nil
}
