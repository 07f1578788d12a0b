// Package config provides configuration loading and validation for
// showmylog.
package config

import (
	"path/filepath"
	"time"

	"github.com/sharmaeklavya2/showmylog/pkg/output"
	"github.com/sharmaeklavya2/showmylog/pkg/parser"
)

// Config is the root configuration structure loaded from YAML.
// Command-line flags override any value set here.
type Config struct {
	// LogDir is where logical selectors like "today" resolve to
	// <LogDir>/<date>.mylog files.
	LogDir string `yaml:"log_dir"`

	// ReportPath is where the HTML report is written.
	// Empty means <LogDir>/report.html.
	ReportPath string `yaml:"report_path,omitempty"`

	// StaleLimitMinutes raises an error when the log is staler than this
	// many minutes during --use-now augmentation. Zero disables the check.
	StaleLimitMinutes float64 `yaml:"stale_limit_minutes,omitempty"`

	// RefreshSeconds sets the HTML page refresh rate. Zero disables it.
	RefreshSeconds int `yaml:"refresh_seconds,omitempty"`

	// IgnoreMissing suppresses errors for missing or empty files.
	IgnoreMissing bool `yaml:"ignore_missing,omitempty"`

	// Sort reverse-sorts terminal output by duration.
	Sort bool `yaml:"sort,omitempty"`

	// SummaryLabelMinutes is the per-day minimum duration for a label to
	// appear in the multi-file summary's by-label table.
	SummaryLabelMinutes int `yaml:"summary_label_minutes"`

	// TypeColors overrides the terminal color for activity-type codes,
	// e.g. {"j": "blue"}. Values must be known color names.
	TypeColors map[string]string `yaml:"type_colors,omitempty"`
}

// ResolvedReportPath returns the report output path, defaulting to
// report.html inside the log directory.
func (c *Config) ResolvedReportPath() string {
	if c.ReportPath != "" {
		return c.ReportPath
	}
	return filepath.Join(c.LogDir, "report.html")
}

// StaleLimit returns the stale limit as a duration; zero means disabled.
func (c *Config) StaleLimit() time.Duration {
	return time.Duration(c.StaleLimitMinutes * float64(time.Minute))
}

// TypeColorTable returns the default color table with this config's
// overrides applied.
func (c *Config) TypeColorTable() map[parser.ActivityType]string {
	table := output.DefaultTypeColors()
	for typ, color := range c.TypeColors {
		table[parser.ActivityType(typ)] = color
	}
	return table
}
