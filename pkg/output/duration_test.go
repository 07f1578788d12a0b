package output

import (
	"testing"
	"time"
)

func TestPretty(t *testing.T) {
	tests := []struct {
		name  string
		d     time.Duration
		total time.Duration
		days  int
		want  string
	}{
		{
			name:  "half of total",
			d:     30 * time.Minute,
			total: time.Hour,
			days:  1,
			want:  "     0:30 ( 50.0 %)",
		},
		{
			name:  "full total",
			d:     90 * time.Minute,
			total: 90 * time.Minute,
			days:  1,
			want:  "     1:30 (100.0 %)",
		},
		{
			name:  "multi-day adds per-day figure",
			d:     3 * time.Hour,
			total: 4 * time.Hour,
			days:  2,
			want:  "     3:00 ( 75.0 %) (1:30 per day)",
		},
		{
			name:  "a day or more gains a days field",
			d:     25 * time.Hour,
			total: 50 * time.Hour,
			days:  1,
			want:  "  1:01:00 ( 50.0 %)",
		},
		{
			name:  "zero total avoids dividing by zero",
			d:     time.Hour,
			total: 0,
			days:  1,
			want:  "     1:00 (  0.0 %)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pretty(tt.d, tt.total, tt.days); got != tt.want {
				t.Errorf("Pretty() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatHM(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{90 * time.Minute, "1:30"},
		{5 * time.Minute, "0:05"},
		{26 * time.Hour, "26:00"},
		{0, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatHM(tt.d); got != tt.want {
			t.Errorf("FormatHM(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
