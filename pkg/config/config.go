package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sharmaeklavya2/showmylog/pkg/output"
)

// Load reads and validates a configuration file. An empty path means the
// default location, where a missing file is not an error and defaults
// (plus environment overrides) apply. An explicitly given path must
// exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case !explicit && (path == "" || errors.Is(err, fs.ErrNotExist)):
		// Optional default config is absent; run on defaults.
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.LogDir == "" {
		return errors.New("log_dir: a log directory is required")
	}
	if cfg.StaleLimitMinutes < 0 {
		return errors.New("stale_limit_minutes: must not be negative")
	}
	if cfg.RefreshSeconds < 0 {
		return errors.New("refresh_seconds: must not be negative")
	}
	if cfg.SummaryLabelMinutes < 0 {
		return errors.New("summary_label_minutes: must not be negative")
	}
	for typ, color := range cfg.TypeColors {
		if !output.KnownColor(color) {
			return fmt.Errorf("type_colors[%s]: unknown color %q", typ, color)
		}
	}
	return nil
}
