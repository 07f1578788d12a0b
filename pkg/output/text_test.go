package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sharmaeklavya2/showmylog/pkg/aggregator"
	"github.com/sharmaeklavya2/showmylog/pkg/parser"
)

func sampleTotals() (all, byType, byLabel *aggregator.Totals) {
	all = aggregator.NewTotals()
	all.Add(aggregator.TotalKey, parser.TypeDefault, 75*time.Minute)

	byType = aggregator.NewTotals()
	byType.Add("+", parser.TypeGood, time.Hour)
	byType.Add("-", parser.TypeBad, 15*time.Minute)

	byLabel = aggregator.NewTotals()
	byLabel.Add("work", parser.TypeGood, time.Hour)
	byLabel.Add("break", parser.TypeBad, 15*time.Minute)
	return all, byType, byLabel
}

func TestTextFormatterPrintDay(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf, TextOptions{})
	all, byType, byLabel := sampleTotals()

	f.PrintDay("/home/me/mylog/2024-05-10.mylog", all, byType, byLabel, 90*time.Minute)
	got := buf.String()

	if !strings.HasPrefix(got, "/home/me/mylog/2024-05-10.mylog\n") {
		t.Errorf("output should start with the file path, got %q", got)
	}
	for _, want := range []string{
		"total:      1:15 ( 83.3 %)",
		"By type:",
		"+      1:00 ( 66.7 %)",
		"-      0:15 ( 16.7 %)",
		"By label:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	// Label rows are dot-padded into aligned columns.
	if !strings.Contains(got, "work .      1:00 ( 66.7 %)") {
		t.Errorf("output missing aligned work row:\n%s", got)
	}
	if !strings.Contains(got, "break       0:15 ( 16.7 %)") {
		t.Errorf("output missing aligned break row:\n%s", got)
	}
}

func TestTextFormatterSort(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf, TextOptions{Sort: true})

	byType := aggregator.NewTotals()
	byType.Add("-", parser.TypeBad, 15*time.Minute)
	byType.Add("+", parser.TypeGood, time.Hour)
	all := aggregator.NewTotals()
	all.Add(aggregator.TotalKey, parser.TypeDefault, 75*time.Minute)

	f.PrintDay("day.mylog", all, byType, aggregator.NewTotals(), 90*time.Minute)
	got := buf.String()

	plus := strings.Index(got, "\n+ ")
	minus := strings.Index(got, "\n- ")
	if plus < 0 || minus < 0 {
		t.Fatalf("expected both type lines in output:\n%s", got)
	}
	if plus > minus {
		t.Errorf("sorted output should list + (1:00) before - (0:15):\n%s", got)
	}
}

func TestTextFormatterSummaryThreshold(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf, TextOptions{})
	all, byType, byLabel := sampleTotals()

	// A 30-minute threshold keeps work (1:00) and drops break (0:15).
	f.PrintSummary(all, byType, byLabel, 2, 3*time.Hour, 30*time.Minute)
	got := buf.String()

	if !strings.HasPrefix(got, "Summary:\n") {
		t.Errorf("summary should start with header, got %q", got)
	}
	if !strings.Contains(got, "work") {
		t.Errorf("summary missing work row:\n%s", got)
	}
	if strings.Contains(got, "break") {
		t.Errorf("summary should filter break below threshold:\n%s", got)
	}
	if !strings.Contains(got, "per day") {
		t.Errorf("multi-day summary should carry per-day figures:\n%s", got)
	}
}

func TestTextFormatterNoColorOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf, TextOptions{Color: false})
	all, byType, byLabel := sampleTotals()

	f.PrintDay("day.mylog", all, byType, byLabel, 90*time.Minute)
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("uncolored output should carry no escape sequences")
	}
}

func TestAlignColumns(t *testing.T) {
	rows := [][]string{
		{"work", "1:00"},
		{"x", "0:30"},
	}
	got := alignColumns(rows, ".", " ", " ")
	want := []string{
		"work  1:00 ",
		"x ... 0:30 ",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
