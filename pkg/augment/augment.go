// Package augment extends a day's record sequence up to the present
// wall-clock time and flags stale logs.
package augment

import (
	"time"

	"github.com/sharmaeklavya2/showmylog/pkg/parser"
	"github.com/sharmaeklavya2/showmylog/pkg/run"
	"github.com/sharmaeklavya2/showmylog/pkg/timeutil"
)

// staleExempt lists activity types that are allowed to run long without
// a staleness warning.
var staleExempt = map[parser.ActivityType]bool{
	parser.TypeSleep: true,
	parser.TypeJob:   true,
}

// Augmenter extends the last record of a day to "now".
type Augmenter struct {
	// Now supplies the current wall-clock time; defaults to time.Now.
	Now func() time.Time

	// StaleLimit is the maximum allowed gap between "now" and the last
	// logged activity before a warning is raised. Zero or negative
	// disables the check.
	StaleLimit time.Duration
}

// Apply extends records up to the current time and returns the possibly
// grown slice. The captured "now" is echoed to stdout once per run via rc.
//
// If "now" is earlier than the last record's end time the log already
// extends past the present (this happens near midnight) and nothing
// changes. If the last record is uncounted or zero-length it is extended
// in place; otherwise a new uncounted record covering [last.End, now) is
// appended.
func (a *Augmenter) Apply(records []*parser.Record, rc *run.Context) []*parser.Record {
	if len(records) == 0 {
		return records
	}

	nowFn := a.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	nowTS := nowFn()
	rc.PrintNowOnce(nowTS)
	now := timeutil.Clock{Hour: nowTS.Hour(), Minute: nowTS.Minute()}

	last := records[len(records)-1]
	if now.Before(last.End) {
		return records
	}

	var gap time.Duration
	if last.Type == parser.TypeUncounted || last.ZeroLength() {
		last.End = now
		last.Duration = timeutil.Sub(now, last.Start)
		gap = last.Duration
	} else {
		gap = timeutil.Sub(now, last.End)
		records = append(records, &parser.Record{
			Type:     parser.TypeUncounted,
			Start:    last.End,
			End:      now,
			Duration: gap,
		})
	}

	// The exemption is judged on the record that was last before any
	// append, matching how the log's author left it.
	if a.StaleLimit > 0 && !staleExempt[last.Type] && gap > a.StaleLimit {
		rc.Errorf("stale-limit reached for '%s'", last)
	}

	return records
}
