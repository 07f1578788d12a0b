package config

import (
	"os"
	"path/filepath"
)

// DefaultSummaryLabelMinutes is the per-day by-label summary threshold.
const DefaultSummaryLabelMinutes = 5

// Environment variable names.
const (
	EnvLogDir     = "SHOWMYLOG_LOG_DIR"
	EnvReportPath = "SHOWMYLOG_REPORT_PATH"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		LogDir:              filepath.Join(home, "mylog"),
		SummaryLabelMinutes: DefaultSummaryLabelMinutes,
	}
}

// DefaultPath returns the default config file location. The file is
// optional; defaults apply when it does not exist.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "showmylog", "config.yaml")
}

// applyEnvironmentOverrides applies environment variable overrides to the
// config.
func (c *Config) applyEnvironmentOverrides() {
	if dir := os.Getenv(EnvLogDir); dir != "" {
		c.LogDir = dir
	}
	if path := os.Getenv(EnvReportPath); path != "" {
		c.ReportPath = path
	}
}
