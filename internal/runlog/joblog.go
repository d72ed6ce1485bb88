package runlog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedPrefix reports a failed-job log whose first line does not
// carry the job/step/timestamp prefix GitHub Actions writes on every line.
var ErrMalformedPrefix = errors.New("malformed job log prefix")

// The timestamp tail is matched explicitly rather than with a greedy `.*Z`
// so a message body containing "Z " cannot widen the prefix.
var prefixPattern = regexp.MustCompile(`^(?P<job>[^\t]*)\t(?P<step>[^\t]*)\t(?P<date>[0-9]{4}-[0-9]{2}-[0-9]{2})T[0-9]{2}:[0-9]{2}:[0-9]{2}(?:\.[0-9]+)?Z `)

// JobLog is a failed-job log with the per-line metadata prefix removed.
type JobLog struct {
	Job   string // job name, from the first line's prefix
	Step  string // failed step name, from the first line's prefix
	Date  string // yyyy-mm-dd
	Lines string // log body without prefixes, every line newline-terminated
}

// Parse validates the prefix on the first line of a raw failed-job log,
// captures the job, step, and date from it, and strips the prefix from
// every line.
func Parse(raw string) (*JobLog, error) {
	first := raw
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	m := prefixPattern.FindStringSubmatch(first)
	if m == nil {
		return nil, fmt.Errorf("%w: first line %q", ErrMalformedPrefix, first)
	}
	return &JobLog{
		Job:   m[1],
		Step:  m[2],
		Date:  m[3],
		Lines: StripPrefixes(raw),
	}, nil
}

// StripPrefixes removes the job/step/timestamp prefix from every line that
// carries one. Lines without the prefix pass through unchanged, so repeated
// application is a no-op. Line order and count are preserved and every line
// in the result is newline-terminated.
func StripPrefixes(raw string) string {
	lines := strings.Split(raw, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	var b strings.Builder
	b.Grow(len(raw) / 2)
	for _, line := range lines {
		b.WriteString(prefixPattern.ReplaceAllString(line, ""))
		b.WriteByte('\n')
	}
	return b.String()
}
