// Package parser reads *.mylog files and turns them into validated
// activity records, synthesizing filler records for uncovered gaps.
package parser

import (
	"strings"
	"time"

	"github.com/sharmaeklavya2/showmylog/pkg/timeutil"
)

// ActivityType is a single-character classification code. It drives both
// semantics (stale exemption) and display color.
type ActivityType string

// The fixed activity-type alphabet.
const (
	TypeGood      ActivityType = "+"
	TypeSleep     ActivityType = "s"
	TypeBad       ActivityType = "-"
	TypeWarn      ActivityType = "!"
	TypeOK        ActivityType = ":"
	TypeUncounted ActivityType = "u"
	TypeJob       ActivityType = "j"
	TypeDefault   ActivityType = ""
)

var typeNames = map[ActivityType]string{
	TypeGood:      "good",
	TypeSleep:     "sleep",
	TypeBad:       "bad",
	TypeWarn:      "warn",
	TypeOK:        "ok",
	TypeUncounted: "uncounted",
	TypeJob:       "job",
	TypeDefault:   "default",
}

// DisplayName returns the human-readable name of the activity type, or
// the empty string for codes outside the fixed alphabet.
func (t ActivityType) DisplayName() string {
	return typeNames[t]
}

// Record is one parsed activity interval.
type Record struct {
	// Type classifies the activity.
	Type ActivityType

	// Start and End are the wall-clock bounds of the interval.
	Start timeutil.Clock
	End   timeutil.Clock

	// Penalty is a declared timedelta, recorded but not enforced here.
	Penalty time.Duration

	// Duration is the declared duration. It is authoritative for
	// aggregation even when it disagrees with End - Start.
	Duration time.Duration

	// Label and Sublabel identify the activity; Sublabel is optional.
	Label    string
	Sublabel string

	// Words holds the original raw tokens for diagnostic display.
	// Synthesized records have no words.
	Words []string
}

// NewGapRecord synthesizes a filler record covering unaccounted time
// between two logged entries. It carries the default type and no label.
func NewGapRecord(start, end timeutil.Clock) *Record {
	return &Record{
		Type:     TypeDefault,
		Start:    start,
		End:      end,
		Duration: timeutil.Sub(end, start),
	}
}

// ZeroLength reports whether the record spans no time.
func (r *Record) ZeroLength() bool {
	return r.Start == r.End
}

// DisplayLabel composes the label and sublabel for display.
func (r *Record) DisplayLabel() string {
	if r.Sublabel != "" {
		return r.Label + ": " + r.Sublabel
	}
	return r.Label
}

// String renders the original log line for parsed records, or a
// time-span summary for synthesized ones.
func (r *Record) String() string {
	if r.Words != nil {
		return strings.Join(r.Words, " ")
	}
	return r.Start.String() + "-" + r.End.String() + " " + r.DisplayLabel()
}
