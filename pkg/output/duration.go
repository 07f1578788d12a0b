package output

import (
	"fmt"
	"time"
)

// FormatHM renders a duration as H:MM.
func FormatHM(d time.Duration) string {
	mins := int(d.Minutes())
	return fmt.Sprintf("%d:%02d", mins/60, mins%60)
}

// Pretty renders a duration with its share of total. Durations of a day
// or more gain a days field; multi-day summaries append a per-day figure.
func Pretty(d, total time.Duration, days int) string {
	mins := int(d.Minutes())
	dd := mins / (24 * 60)
	hh := (mins / 60) % 24
	mm := mins % 60

	var percent float64
	if total != 0 {
		percent = 100 * float64(d) / float64(total)
	}

	var s string
	if dd > 0 {
		s = fmt.Sprintf("%3d:%02d:%02d (%5.1f %%)", dd, hh, mm, percent)
	} else {
		s = fmt.Sprintf("    %2d:%02d (%5.1f %%)", hh, mm, percent)
	}
	if days > 1 {
		perDay := int((d / time.Duration(days)).Minutes())
		s += fmt.Sprintf(" (%d:%02d per day)", perDay/60, perDay%60)
	}
	return s
}
