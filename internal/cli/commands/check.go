package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"github.com/sharmaeklavya2/showmylog/pkg/config"
	"github.com/sharmaeklavya2/showmylog/pkg/parser"
	"github.com/sharmaeklavya2/showmylog/pkg/run"
)

// CheckOptions holds command-line options for the check command.
type CheckOptions struct {
	ConfigPath string
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <path|today|yesterday|N ...>",
		Short: "Validate *.mylog files without producing reports",
		Long: `Parse *.mylog files and report inconsistencies without writing any
report artifacts.

Checks:
  - Time and duration token syntax
  - Declared duration against the recorded time span
  - Uncovered gaps between consecutive entries (informational)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Config file path (default is the user config dir)")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	stdout := cmd.OutOrStdout()
	rc := run.NewContext(stdout, cmd.ErrOrStderr())

	today := time.Now()
	for _, arg := range args {
		fpath := parser.ResolvePath(arg, cfg.LogDir, today)
		records, err := parser.ParseFile(fpath, rc)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				rc.Errorf("'%s' is '%s'", fpath, "missing")
			} else {
				rc.Errorf("%v", err)
			}
			continue
		}

		gaps := 0
		for _, r := range records {
			if r.Type == parser.TypeDefault {
				gaps++
			}
		}
		fmt.Fprintf(stdout, "%s: %d record(s), %d gap(s)\n", fpath, len(records)-gaps, gaps)
	}

	ExitCode = rc.ExitCode()

	return nil
}
