package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sharmaeklavya2/showmylog/pkg/run"
)

// ParseFile reads a log file line by line and returns its ordered record
// sequence, including synthesized gap records. Comments (everything after
// '#') and blank lines are skipped. A line beginning with a space omits
// the activity type and defaults to uncounted.
//
// Whenever the previous record's end time is strictly before the next
// record's start time, a gap record spanning the uncovered interval is
// inserted before the new record.
//
// A missing file surfaces as the wrapped os.Open error; callers can test
// it with errors.Is(err, fs.ErrNotExist) and decide whether it is fatal.
func ParseFile(path string, rc *run.Context) ([]*Record, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	var records []*Record
	var prev *Record

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	for scanner.Scan() {
		line := scanner.Text()
		content := line
		if i := strings.IndexByte(content, '#'); i >= 0 {
			content = content[:i]
		}
		words := strings.Fields(content)
		if len(words) == 0 {
			continue
		}
		// Indentation is the continuation convention: the type column is
		// omitted and the entry counts as uncounted.
		if strings.HasPrefix(line, " ") {
			words = append([]string{string(TypeUncounted)}, words...)
		}

		record, err := ParseLine(words, rc)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		if prev != nil && prev.End.Before(record.Start) {
			records = append(records, NewGapRecord(prev.End, record.Start))
		}
		records = append(records, record)
		prev = record
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return records, nil
}

// DropZeroLength filters out records that span no time. Zero-length
// entries are placeholders and carry no reportable duration.
func DropZeroLength(records []*Record) []*Record {
	kept := records[:0:0]
	for _, r := range records {
		if !r.ZeroLength() {
			kept = append(kept, r)
		}
	}
	return kept
}
