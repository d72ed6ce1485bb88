// Package yocto extracts and classifies Yocto build failures from CI logs.
package yocto

import (
	"errors"
	"strings"
)

// summaryMarker separates the build transcript from the errors the build
// wrapper repeats at the end of the log.
const summaryMarker = "--- Error summary ---"

// ErrNoSummaryMarker means the log has no error summary section.
var ErrNoSummaryMarker = errors.New("no error summary found in log")

// ExtractSummary returns the part of a prefix-stripped job log after the
// last error summary marker, with surrounding whitespace and trailing noise
// lines removed.
func ExtractSummary(log string) (string, error) {
	i := strings.LastIndex(log, summaryMarker)
	if i < 0 {
		return "", ErrNoSummaryMarker
	}
	return TrimTrailingNoise(strings.TrimSpace(log[i+len(summaryMarker):])), nil
}

// TrimTrailingNoise drops the trailing run of lines reporting just-recipe
// failures and the runner's exit-code line; they repeat what the summary
// already says and vary run to run. Trimming everything yields an empty
// summary, not an error. Every kept line is newline-terminated.
func TrimTrailingNoise(summary string) string {
	if summary == "" {
		return ""
	}
	lines := strings.Split(summary, "\n")
	for len(lines) > 0 {
		last := lines[len(lines)-1]
		if !strings.HasPrefix(last, "error: Recipe ") &&
			!strings.HasPrefix(last, "##[error]Process completed with exit code") {
			break
		}
		lines = lines[:len(lines)-1]
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// FindLogfileLine returns the summary line referencing the bitbake logfile
// of the failed task.
func FindLogfileLine(summary string) (string, bool) {
	for _, line := range strings.Split(summary, "\n") {
		if strings.Contains(line, logfileMarker) {
			return line, true
		}
	}
	return "", false
}
