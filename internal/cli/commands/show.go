package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"github.com/sharmaeklavya2/showmylog/pkg/aggregator"
	"github.com/sharmaeklavya2/showmylog/pkg/augment"
	"github.com/sharmaeklavya2/showmylog/pkg/config"
	"github.com/sharmaeklavya2/showmylog/pkg/output"
	"github.com/sharmaeklavya2/showmylog/pkg/parser"
	"github.com/sharmaeklavya2/showmylog/pkg/run"
	"github.com/sharmaeklavya2/showmylog/pkg/timeutil"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ShowOptions holds command-line options for the show command.
type ShowOptions struct {
	ConfigPath    string
	ReportPath    string
	Long          bool
	Sort          bool
	UseNow        bool
	IgnoreMissing bool
	NoColor       bool
	StaleLimit    float64
	RefreshTime   int
}

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	opts := &ShowOptions{}

	cmd := &cobra.Command{
		Use:   "show [path|today|yesterday|N ...]",
		Short: "Summarize one or more *.mylog files",
		Long: `Summarize *.mylog files on the terminal and render an HTML timeline
report.

Each argument is either 'today', 'yesterday', a number N (the date N
days before today) or a literal file path. The default is 'today'.

Exit codes:
  0 - No errors recorded
  1 - Recoverable errors recorded (duration mismatch, stale log,
      missing or empty file)
  2 - Configuration or runtime error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Config file path (default is the user config dir)")
	cmd.Flags().StringVarP(&opts.ReportPath, "report-path", "r", "", "Report output path (default is <log-dir>/report.html)")
	cmd.Flags().BoolVarP(&opts.Long, "long", "l", false, "Print per-file output even when multiple days are passed")
	cmd.Flags().BoolVar(&opts.Sort, "sort", false, "Reverse sort output based on duration")
	cmd.Flags().BoolVar(&opts.UseNow, "use-now", false, "Use current time as end time of the last open-ended activity")
	cmd.Flags().Float64Var(&opts.StaleLimit, "stale-limit", 0, "Raise error if the log is staler than this many minutes")
	cmd.Flags().IntVar(&opts.RefreshTime, "refresh-time", 0, "HTML page refresh rate in seconds; no refresh if zero")
	cmd.Flags().BoolVar(&opts.IgnoreMissing, "ignore-missing", false, "Don't raise errors for missing or empty files")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	return cmd
}

func runShow(cmd *cobra.Command, args []string, opts *ShowOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyShowFlags(cmd, opts, cfg)

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	rc := run.NewContext(stdout, stderr)
	if opts.NoColor {
		rc.DisableColor()
	}

	if len(args) == 0 {
		args = []string{"today"}
	}
	today := time.Now()
	paths := make([]string, len(args))
	for i, arg := range args {
		paths[i] = parser.ResolvePath(arg, cfg.LogDir, today)
	}

	formatter := output.NewTextFormatter(stdout, output.TextOptions{
		Color:      !opts.NoColor && run.IsTerminal(stdout),
		Sort:       cfg.Sort,
		TypeColors: cfg.TypeColorTable(),
	})
	augmenter := &augment.Augmenter{StaleLimit: cfg.StaleLimit()}

	allTotals := aggregator.NewTotals()
	typeTotals := aggregator.NewTotals()
	labelTotals := aggregator.NewTotals()
	var days []output.Day
	var totalSpan time.Duration

	for _, fpath := range paths {
		records, err := parser.ParseFile(fpath, rc)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				if !cfg.IgnoreMissing {
					rc.Errorf("'%s' is '%s'", fpath, "missing")
				}
			} else {
				// A fatal parse error aborts this file only; the
				// remaining days still get reported.
				rc.Errorf("%v", err)
			}
			continue
		}

		if opts.UseNow {
			records = augmenter.Apply(records, rc)
		}
		records = parser.DropZeroLength(records)
		if len(records) == 0 {
			if !cfg.IgnoreMissing {
				rc.Errorf("'%s' is '%s'", fpath, "empty")
			}
			continue
		}

		start := records[0].Start
		end := records[len(records)-1].End
		span := timeutil.Sub(end, start)
		totalSpan += span

		allAgg := aggregator.Aggregate(records, aggregator.GroupTotal)
		typeAgg := aggregator.Aggregate(records, aggregator.GroupByType)
		labelAgg := aggregator.Aggregate(records, aggregator.GroupByLabel)
		allTotals.Merge(allAgg)
		typeTotals.Merge(typeAgg)
		labelTotals.Merge(labelAgg)

		if opts.Long || len(paths) == 1 {
			formatter.PrintDay(fpath, allAgg, typeAgg, labelAgg, span)
		}
		days = append(days, output.BuildDay(fpath, records, typeAgg, start, end))
	}

	if len(paths) > 1 {
		threshold := time.Duration(cfg.SummaryLabelMinutes*len(paths)) * time.Minute
		formatter.PrintSummary(allTotals, typeTotals, labelTotals, len(paths), totalSpan, threshold)
	}

	report := &output.Report{RefreshSeconds: cfg.RefreshSeconds, Days: days}
	if err := report.WriteFile(cfg.ResolvedReportPath()); err != nil {
		return err
	}

	// Set exit code based on recorded errors
	ExitCode = rc.ExitCode()

	return nil
}

// applyShowFlags overrides config values with explicitly set flags.
func applyShowFlags(cmd *cobra.Command, opts *ShowOptions, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("report-path") {
		cfg.ReportPath = opts.ReportPath
	}
	if flags.Changed("sort") {
		cfg.Sort = opts.Sort
	}
	if flags.Changed("ignore-missing") {
		cfg.IgnoreMissing = opts.IgnoreMissing
	}
	if flags.Changed("stale-limit") {
		cfg.StaleLimitMinutes = opts.StaleLimit
	}
	if flags.Changed("refresh-time") {
		cfg.RefreshSeconds = opts.RefreshTime
	}
}
