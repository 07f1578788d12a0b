package parser

import (
	"fmt"
	"strings"

	"github.com/sharmaeklavya2/showmylog/pkg/run"
	"github.com/sharmaeklavya2/showmylog/pkg/timeutil"
)

// minFields is the token count of a full log line:
// TYPE START END PENALTY DURATION LABEL.
const minFields = 6

// ParseLine parses one log line, already split into whitespace-separated
// tokens with comments stripped. Indented lines must have the implicit
// uncounted type prepended by the caller.
//
// The declared duration token is authoritative: if it disagrees with
// End - Start, a recoverable error quoting the raw line is recorded on
// rc, but the returned record still carries the declared value. Operators
// may intentionally annotate approximate totals.
//
// Malformed time or duration tokens are fatal for the line and abort the
// file.
func ParseLine(words []string, rc *run.Context) (*Record, error) {
	if len(words) < minFields {
		return nil, fmt.Errorf("line %q: expected at least %d fields, got %d",
			strings.Join(words, " "), minFields, len(words))
	}

	start, err := timeutil.ParseClock(words[1])
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	end, err := timeutil.ParseClock(words[2])
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}
	// An end time of 00:00 is shorthand for a zero-length entry.
	if end.IsZero() {
		end = start
	}

	penalty, err := timeutil.ParseDuration(words[3])
	if err != nil {
		return nil, fmt.Errorf("penalty: %w", err)
	}
	duration, err := timeutil.ParseDuration(words[4])
	if err != nil {
		return nil, fmt.Errorf("duration: %w", err)
	}

	sublabel := ""
	if len(words) > minFields {
		sublabel = words[6]
	}

	if timeutil.Sub(end, start) != duration {
		rc.Errorf("'%s' has incorrect duration", strings.Join(words, " "))
	}

	return &Record{
		Type:     ActivityType(words[0]),
		Start:    start,
		End:      end,
		Penalty:  penalty,
		Duration: duration,
		Label:    words[5],
		Sublabel: sublabel,
		Words:    words,
	}, nil
}
