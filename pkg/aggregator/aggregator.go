// Package aggregator folds record sequences into keyed duration totals.
package aggregator

import (
	"fmt"
	"time"

	"github.com/sharmaeklavya2/showmylog/pkg/parser"
)

// Grouping selects how records are keyed during aggregation.
type Grouping int

// The closed set of grouping modes.
const (
	// GroupTotal accumulates everything under a single "total" key.
	GroupTotal Grouping = iota

	// GroupByType keys on the activity-type code.
	GroupByType

	// GroupByLabel keys on the label string.
	GroupByLabel

	// GroupBySublabel keys on "label.sublabel".
	GroupBySublabel
)

// String returns the grouping name.
func (g Grouping) String() string {
	switch g {
	case GroupTotal:
		return "total"
	case GroupByType:
		return "type"
	case GroupByLabel:
		return "label"
	case GroupBySublabel:
		return "sublabel"
	default:
		return fmt.Sprintf("Grouping(%d)", int(g))
	}
}

// TotalKey is the grouping value used by GroupTotal.
const TotalKey = "total"

// Entry is one keyed total. Type is a display hint (the activity type of
// the first record seen under the key); it is empty for GroupTotal.
type Entry struct {
	Name  string
	Type  parser.ActivityType
	Total time.Duration
}

// Totals is an insertion-ordered map from grouping value to summed
// duration. Iteration follows first-seen key order, so identical inputs
// aggregate deterministically.
type Totals struct {
	order  []string
	totals map[string]time.Duration
	types  map[string]parser.ActivityType
}

// NewTotals creates an empty totals map.
func NewTotals() *Totals {
	return &Totals{
		totals: make(map[string]time.Duration),
		types:  make(map[string]parser.ActivityType),
	}
}

// Add accumulates d under name. The type hint of the first Add for a
// given name sticks.
func (t *Totals) Add(name string, typ parser.ActivityType, d time.Duration) {
	if _, ok := t.totals[name]; !ok {
		t.order = append(t.order, name)
		t.types[name] = typ
	}
	t.totals[name] += d
}

// Get returns the total accumulated under name.
func (t *Totals) Get(name string) time.Duration {
	return t.totals[name]
}

// Len returns the number of distinct keys.
func (t *Totals) Len() int {
	return len(t.order)
}

// Entries returns the totals in first-seen key order.
func (t *Totals) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		entries = append(entries, Entry{
			Name:  name,
			Type:  t.types[name],
			Total: t.totals[name],
		})
	}
	return entries
}

// Merge adds other's totals into t. Matching keys sum; new keys keep
// their first-seen position after t's existing keys.
func (t *Totals) Merge(other *Totals) {
	for _, e := range other.Entries() {
		t.Add(e.Name, e.Type, e.Total)
	}
}

// Sum returns the grand total across all keys.
func (t *Totals) Sum() time.Duration {
	var sum time.Duration
	for _, v := range t.totals {
		sum += v
	}
	return sum
}

// Aggregate folds records into totals under the given grouping mode.
// An unknown grouping is a programming error and panics.
func Aggregate(records []*parser.Record, grouping Grouping) *Totals {
	totals := NewTotals()
	for _, r := range records {
		name, typ := keyFor(r, grouping)
		totals.Add(name, typ, r.Duration)
	}
	return totals
}

func keyFor(r *parser.Record, grouping Grouping) (string, parser.ActivityType) {
	switch grouping {
	case GroupTotal:
		return TotalKey, parser.TypeDefault
	case GroupByType:
		return string(r.Type), r.Type
	case GroupByLabel:
		return r.Label, r.Type
	case GroupBySublabel:
		return r.Label + "." + r.Sublabel, r.Type
	default:
		panic(fmt.Sprintf("aggregator: unknown grouping %d", int(grouping)))
	}
}
