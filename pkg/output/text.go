package output

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sharmaeklavya2/showmylog/pkg/aggregator"
	"github.com/sharmaeklavya2/showmylog/pkg/parser"
)

// TextOptions controls terminal output.
type TextOptions struct {
	// Color enables ANSI-colored lines.
	Color bool

	// Sort orders sections descending by duration instead of first-seen
	// key order.
	Sort bool

	// TypeColors maps activity types to color names. Nil means the
	// default table.
	TypeColors map[parser.ActivityType]string
}

// TextFormatter writes per-day and summary sections to a terminal.
type TextFormatter struct {
	w    io.Writer
	opts TextOptions
}

// NewTextFormatter creates a text formatter writing to w.
func NewTextFormatter(w io.Writer, opts TextOptions) *TextFormatter {
	if opts.TypeColors == nil {
		opts.TypeColors = DefaultTypeColors()
	}
	return &TextFormatter{w: w, opts: opts}
}

// PrintDay writes one file's aggregation sections.
func (f *TextFormatter) PrintDay(path string, all, byType, byLabel *aggregator.Totals, totalTime time.Duration) {
	fmt.Fprintln(f.w, path)
	fmt.Fprintln(f.w)
	f.printSections(all, byType, byLabel, 1, totalTime, 0)
}

// PrintSummary writes the merged multi-file sections. Labels whose total
// falls below labelMinimum are omitted from the by-label table.
func (f *TextFormatter) PrintSummary(all, byType, byLabel *aggregator.Totals, days int, totalTime, labelMinimum time.Duration) {
	fmt.Fprintln(f.w, "Summary:")
	fmt.Fprintln(f.w)
	f.printSections(all, byType, byLabel, days, totalTime, labelMinimum)
}

func (f *TextFormatter) printSections(all, byType, byLabel *aggregator.Totals, days int, totalTime, labelMinimum time.Duration) {
	for _, e := range all.Entries() {
		fmt.Fprintln(f.w, "total:", Pretty(e.Total, totalTime, days))
	}
	fmt.Fprintln(f.w)

	fmt.Fprintln(f.w, "By type:")
	fmt.Fprintln(f.w)
	for _, e := range f.ordered(byType) {
		f.printColored(e.Type, e.Name+" "+Pretty(e.Total, totalTime, days))
	}
	fmt.Fprintln(f.w)

	fmt.Fprintln(f.w, "By label:")
	fmt.Fprintln(f.w)
	var rows [][]string
	var rowTypes []parser.ActivityType
	for _, e := range f.ordered(byLabel) {
		if e.Total < labelMinimum {
			continue
		}
		rows = append(rows, []string{e.Name, Pretty(e.Total, totalTime, days)})
		rowTypes = append(rowTypes, e.Type)
	}
	for i, line := range alignColumns(rows, ".", " ", " ") {
		f.printColored(rowTypes[i], line)
	}
	fmt.Fprintln(f.w)
}

// ordered returns the totals' entries, descending by duration when
// sorting is on, in first-seen key order otherwise.
func (f *TextFormatter) ordered(totals *aggregator.Totals) []aggregator.Entry {
	entries := totals.Entries()
	if f.opts.Sort {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Total > entries[j].Total
		})
	}
	return entries
}

func (f *TextFormatter) printColored(typ parser.ActivityType, line string) {
	if f.opts.Color {
		if style, ok := colorStyles[f.opts.TypeColors[typ]]; ok {
			line = style.Render(line)
		}
	}
	fmt.Fprintln(f.w, line)
}
