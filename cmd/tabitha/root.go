package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tabitha/internal/cli"
	"github.com/aretw0/tabitha/internal/logging"
	"github.com/aretw0/tabitha/pkg/observability"
	"github.com/aretw0/tabitha/pkg/registry"
)

// errInvalid reports a failed check whose details were already printed.
var errInvalid = errors.New("validation failed")

var (
	settings = cli.DefaultSettings()
	logger   = logging.NewNop()
	recorder = observability.NewRecorder()
	schemas  = registry.Default()
)

var rootCmd = &cobra.Command{
	Use:   "tabitha",
	Short: "Tabitha validates wishlist payloads against the shared schemas",
	Long: `Tabitha checks users, products, wishlists and their API envelopes against
the same rules every Tabitha Most Wanted client applies.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()

	if settings.MetricsFile != "" {
		if werr := recorder.WriteTextfile(settings.MetricsFile); werr != nil {
			logger.Error("metrics not written", "error", werr)
		}
	}

	if err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Settings file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("format", "", "Report format: text, json or markdown")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this file on exit")
}

// setup resolves settings from the .env file, the settings file, the
// environment and the flags, in increasing precedence.
func setup(cmd *cobra.Command, args []string) error {
	if err := cli.LoadDotEnv(".env"); err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("config")
	s, err := cli.LoadSettings(path)
	if err != nil {
		return err
	}

	for name, dst := range map[string]*string{
		"log-level":    &s.LogLevel,
		"format":       &s.Format,
		"metrics-file": &s.MetricsFile,
	} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	if err := s.Validate(); err != nil {
		return err
	}

	settings = s
	logger = logging.New(s.Level())
	schemas.Observe(recorder)

	logger.Debug("settings loaded", "config", path, "format", s.Format, "metrics_file", s.MetricsFile)
	return nil
}
