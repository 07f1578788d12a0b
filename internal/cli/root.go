// Package cli provides the command-line interface for showmylog.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sharmaeklavya2/showmylog/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "showmylog",
		Short: "Show useful information about *.mylog files",
		Long: `showmylog parses personal daily time-log files, aggregates elapsed
time by activity type and label, and produces a terminal summary plus a
static HTML timeline report.

Log format (one activity per line, '#' starts a comment):

  TYPE START END PENALTY DURATION LABEL [SUBLABEL]

TYPE is a single-character activity code (+ good, s sleep, - bad,
! warn, : ok, u uncounted, j job). START/END/PENALTY/DURATION are HH:MM;
'?' and '-' stand in for unknown digits, and '--:--' means "not
tracked". A line beginning with a space omits TYPE and counts as
uncounted. Gaps between consecutive entries are filled with unaccounted
time automatically.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
