package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/tabitha/internal/logging"
)

// Report formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Environment overrides.
const (
	EnvLogLevel    = "TABITHA_LOG_LEVEL"
	EnvFormat      = "TABITHA_FORMAT"
	EnvMetricsFile = "TABITHA_METRICS_FILE"
)

// Settings holds the CLI preferences. Values come from an optional settings
// file, then the environment, then flags.
type Settings struct {
	LogLevel    string `yaml:"logLevel" json:"logLevel"`
	Format      string `yaml:"format" json:"format"`
	MetricsFile string `yaml:"metricsFile" json:"metricsFile"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{LogLevel: "warn", Format: FormatText}
}

// LoadDotEnv loads .env style files into the process environment. Missing
// files are skipped and variables already set are kept.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// LoadSettings reads a settings file (YAML or JSON by extension) over the
// defaults and applies environment overrides. An empty path skips the file.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("failed to read settings: %w", err)
		}
		if strings.ToLower(filepath.Ext(path)) == ".json" {
			if err := json.Unmarshal(data, &s); err != nil {
				return s, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		} else {
			// Default to YAML
			if err := yaml.Unmarshal(data, &s); err != nil {
				return s, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	s = s.WithEnv(os.LookupEnv)
	return s, s.Validate()
}

// WithEnv returns s with non-empty environment values applied.
func (s Settings) WithEnv(lookup func(string) (string, bool)) Settings {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		s.LogLevel = v
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		s.Format = v
	}
	if v, ok := lookup(EnvMetricsFile); ok && v != "" {
		s.MetricsFile = v
	}
	return s
}

// Validate rejects unknown formats and log levels.
func (s Settings) Validate() error {
	if !slices.Contains([]string{FormatText, FormatJSON, FormatMarkdown}, s.Format) {
		return fmt.Errorf("unknown format %q (want text, json or markdown)", s.Format)
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level, info when it cannot be parsed.
func (s Settings) Level() slog.Level {
	l, _ := logging.ParseLevel(s.LogLevel)
	return l
}
