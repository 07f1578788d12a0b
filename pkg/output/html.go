package output

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sharmaeklavya2/showmylog/pkg/aggregator"
	"github.com/sharmaeklavya2/showmylog/pkg/parser"
	"github.com/sharmaeklavya2/showmylog/pkg/timeutil"
)

// Report is the rendered HTML document: one timeline section per day.
type Report struct {
	// RefreshSeconds sets the page's meta refresh rate; zero disables it.
	RefreshSeconds int

	Days []Day
}

// Day is one file's section of the report.
type Day struct {
	Path     string
	Start    string
	End      string
	Total    string
	AggLines []AggLine
	Blocks   []Block
	Ticks    []Tick
}

// AggLine is one per-type aggregate bar.
type AggLine struct {
	TypeName string
	Duration string
	Width    string
	Percent  string
}

// Block is one activity interval on the timeline, sized proportionally
// to its share of the day's span.
type Block struct {
	TypeName string
	Label    string
	Start    string
	End      string
	Duration string
	Width    string
}

// Tick marks a whole hour on the timeline.
type Tick struct {
	Hour int
	Left string
}

// BuildDay assembles one day's report section from its record sequence
// and per-type aggregation. start and end bound the day's span.
func BuildDay(path string, records []*parser.Record, byType *aggregator.Totals, start, end timeutil.Clock) Day {
	total := timeutil.Sub(end, start)

	day := Day{
		Path:  path,
		Start: start.String(),
		End:   end.String(),
		Total: FormatHM(total),
		Ticks: hourTicks(start, end, total),
	}

	for _, e := range byType.Entries() {
		day.AggLines = append(day.AggLines, AggLine{
			TypeName: e.Type.DisplayName(),
			Duration: FormatHM(e.Total),
			Width:    ratioPercent(e.Total, total),
			Percent:  ratioPercent(e.Total, total),
		})
	}

	for _, r := range records {
		day.Blocks = append(day.Blocks, Block{
			TypeName: r.Type.DisplayName(),
			Label:    r.DisplayLabel(),
			Start:    r.Start.String(),
			End:      r.End.String(),
			Duration: FormatHM(r.Duration),
			Width:    ratioPercent(r.Duration, total),
		})
	}

	return day
}

// hourTicks places a mark at every whole hour inside the day's span,
// starting at the first whole hour at or after start.
func hourTicks(start, end timeutil.Clock, total time.Duration) []Tick {
	if total <= 0 {
		return nil
	}
	first := start.Hour
	if start.Minute != 0 {
		first++
	}
	var ticks []Tick
	for h := first; h <= end.Hour; h++ {
		offset := timeutil.Sub(timeutil.Clock{Hour: h}, start)
		ticks = append(ticks, Tick{Hour: h, Left: ratioPercent(offset, total)})
	}
	return ticks
}

func ratioPercent(part, total time.Duration) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.2f%%", 100*float64(part)/float64(total))
}

// Render writes the report document to w.
func (r *Report) Render(w io.Writer) error {
	if err := reportTmpl.Execute(w, r); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

// WriteFile renders the report to path, creating parent directories as
// needed. Failures here are unrecoverable for the run.
func (r *Report) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	f, err := os.Create(path) // #nosec G304 -- user-provided report path is expected
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	if err := r.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var reportTmpl = template.Must(template.New("report").Parse(reportHTML))

const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
{{- if gt .RefreshSeconds 0}}
<meta http-equiv="refresh" content="{{.RefreshSeconds}}">
{{- end}}
<title>mylog report</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:monospace,sans-serif;background:#fafafa;color:#222;font-size:14px;padding:16px}
h1{font-size:18px;margin-bottom:12px}
section.day{background:#fff;border:1px solid #ddd;border-radius:6px;padding:12px 16px;margin-bottom:16px}
h2{font-size:14px;margin-bottom:4px}
p.span{color:#666;font-size:12px;margin-bottom:8px}
table.agg{border-collapse:collapse;font-size:12px;margin-bottom:12px}
table.agg td{padding:2px 8px 2px 0;vertical-align:middle}
td.barcell{width:160px}
span.bar{display:inline-block;height:8px;background:#bbb;border-radius:2px;vertical-align:middle}
div.timeline{position:relative;height:56px;border:1px solid #ccc;border-radius:4px;font-size:0;white-space:nowrap;overflow:hidden;margin-top:20px}
div.block{display:inline-block;height:100%}
div.tick{position:absolute;top:0;bottom:0;border-left:1px dotted #999}
div.tick span{position:absolute;top:-18px;left:-6px;font-size:10px;color:#666}
.type-good{background:#7cb342}
.type-bad{background:#e53935}
.type-warn{background:#fdd835}
.type-sleep{background:#90a4ae}
.type-job{background:#5c8adb}
.type-ok{background:#26a69a}
.type-uncounted{background:#e0e0e0}
.type-default{background:#eeeeee}
</style>
</head>
<body>
<h1>mylog report</h1>
{{- range .Days}}
<section class="day">
<h2>{{.Path}}</h2>
<p class="span">{{.Start}} &ndash; {{.End}} ({{.Total}})</p>
<table class="agg">
{{- range .AggLines}}
<tr><td>{{.TypeName}}</td><td>{{.Duration}}</td><td class="barcell"><span class="bar type-{{.TypeName}}" style="width:{{.Width}}"></span></td><td>{{.Percent}}</td></tr>
{{- end}}
</table>
<div class="timeline">
{{- range .Ticks}}
<div class="tick" style="left:{{.Left}}"><span>{{.Hour}}</span></div>
{{- end}}
{{- range .Blocks}}
<div class="block type-{{.TypeName}}" style="width:{{.Width}}" title="{{.Start}}-{{.End}} {{.Label}} ({{.Duration}})"></div>
{{- end}}
</div>
</section>
{{- end}}
</body>
</html>
`
