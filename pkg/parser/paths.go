package parser

import (
	"path/filepath"
	"strconv"
	"time"
)

// FileExt is the log file extension.
const FileExt = ".mylog"

const dateLayout = "2006-01-02"

// ResolvePath maps a logical selector to a log file path. Recognized
// selectors are "today", "yesterday" and a non-negative integer N
// (N days before today), each resolving to <logDir>/<date>.mylog.
// Anything else is returned unchanged as a literal path.
func ResolvePath(selector, logDir string, today time.Time) string {
	switch {
	case selector == "today":
		return datePath(logDir, today)
	case selector == "yesterday":
		return datePath(logDir, today.AddDate(0, 0, -1))
	case isNumeric(selector):
		n, _ := strconv.Atoi(selector)
		return datePath(logDir, today.AddDate(0, 0, -n))
	default:
		return selector
	}
}

func datePath(logDir string, day time.Time) string {
	return filepath.Join(logDir, day.Format(dateLayout)+FileExt)
}

// isNumeric reports whether s is a non-empty string of decimal digits.
// Signs are not accepted, so "-3" stays a literal path.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
