// Package runlog parses GitHub Actions run summaries and failed-job logs.
package runlog

import (
	"fmt"
	"regexp"
)

// Patterns over the human-oriented `gh run view` output. Failed jobs show up
// as lines like `X Test template xilinx in 5m41s (ID 21442749267)`.
var (
	failedJobLinePattern = regexp.MustCompile(`X.*ID [0-9]*\)`)
	jobIDPattern         = regexp.MustCompile(`ID (?P<id>[0-9]+)`)
)

// ScanFailedJobs returns the job IDs of the failed jobs in a run summary,
// in the order they appear. A failed-job line without an ID means the run
// summary format changed upstream and is an error.
func ScanFailedJobs(summary string) ([]string, error) {
	lines := failedJobLinePattern.FindAllString(summary, -1)
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		m := jobIDPattern.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("no job ID in failed-job line: %q", line)
		}
		ids = append(ids, m[1])
	}
	return ids, nil
}
