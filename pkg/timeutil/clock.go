// Package timeutil provides wall-clock time and duration arithmetic for
// mylog files, which record times of day without a date component.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock time of day with minute resolution.
// Arithmetic maps both operands onto a shared fixed calendar date, so a
// Clock carries no date of its own.
type Clock struct {
	Hour   int
	Minute int
}

// IsZero reports whether the clock reads exactly 00:00.
func (c Clock) IsZero() bool {
	return c.Hour == 0 && c.Minute == 0
}

// Before reports whether c is strictly earlier than other on the same
// clock face.
func (c Clock) Before(other Clock) bool {
	return c.totalMinutes() < other.totalMinutes()
}

// String renders the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) totalMinutes() int {
	return 60*c.Hour + c.Minute
}

// Sub returns end minus start as a duration. Both times are treated as
// falling on the same day, so end == start is zero and end earlier than
// start yields a negative duration. Activities crossing midnight are not
// supported.
func Sub(end, start Clock) time.Duration {
	return time.Duration(end.totalMinutes()-start.totalMinutes()) * time.Minute
}

// ParseClock parses an HH:MM token into a Clock. The placeholder
// characters '?' and '-' are read as the digit 0. Hour and minute are not
// range-checked beyond what the integer parse implies; out-of-range
// values are accepted and surface later in formatting.
func ParseClock(s string) (Clock, error) {
	cleaned := strings.NewReplacer("?", "0", "-", "0").Replace(s)
	hour, minute, err := splitHourMinute(cleaned)
	if err != nil {
		return Clock{}, fmt.Errorf("parsing time %q: %w", s, err)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// ParseDuration parses an HH:MM token into a duration. The literal
// placeholders "--:--" and "-:--" mean "not tracked" and map to zero.
// Otherwise '?' is read as the digit 0.
func ParseDuration(s string) (time.Duration, error) {
	if s == "--:--" || s == "-:--" {
		return 0, nil
	}
	cleaned := strings.ReplaceAll(s, "?", "0")
	hour, minute, err := splitHourMinute(cleaned)
	if err != nil {
		return 0, fmt.Errorf("parsing duration %q: %w", s, err)
	}
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute, nil
}

func splitHourMinute(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected two colon-separated fields, got %d", len(parts))
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour: %w", err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute: %w", err)
	}
	return hour, minute, nil
}
