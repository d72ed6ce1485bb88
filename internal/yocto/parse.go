package yocto

import (
	"log/slog"
	"os"

	"github.com/luftkode/gh-workflow-parser/internal/logfind"
)

// logfileMarker appears on the summary line referencing the bitbake logfile
// of the failed task.
const logfileMarker = "Logfile of failure stored in"

// LogfileMaxLen caps logfile contents attached to a failure, in bytes.
// The GitHub issue body limit is 65536 characters and the summary needs
// room too.
const LogfileMaxLen = 5000

// Failure is a parsed Yocto build failure: the error summary plus, when the
// referenced bitbake logfile could be located locally, its name and
// contents.
type Failure struct {
	Summary     string
	Kind        FailureKind
	LogfileName string // stem of the attached logfile, empty when none
	Logfile     string // logfile contents, empty when none
}

// ParseFailure extracts the error summary from a prefix-stripped job log
// and tries to attach the bitbake logfile the summary points at. A missing
// summary marker is an error; every step after that degrades to a
// summary-only failure with kind misc, logging a warning.
func ParseFailure(log string, logger *slog.Logger) (*Failure, error) {
	if logger == nil {
		logger = slog.Default()
	}
	summary, err := ExtractSummary(log)
	if err != nil {
		return nil, err
	}
	f := &Failure{Summary: summary, Kind: KindMisc}

	line, ok := FindLogfileLine(summary)
	if !ok {
		logger.Warn("no logfile reference in error summary, continuing without logfile")
		return f, nil
	}
	path, err := logfind.ExtractPath(line)
	if err != nil {
		logger.Warn("no path on logfile line, continuing without logfile", "line", line)
		return f, nil
	}
	kind, known := ClassifyLogfile(path)
	if !known {
		logger.Warn("could not determine task from logfile name, using misc", "logfile", path)
	}
	f.Kind = kind

	resolved, err := logfind.Resolve(path)
	if err != nil {
		logger.Warn("logfile from error summary not found locally, continuing without logfile",
			"path", path, "err", err)
		return f, nil
	}
	contents, err := os.ReadFile(resolved)
	if err != nil {
		logger.Warn("could not read logfile, continuing without logfile", "path", resolved, "err", err)
		return f, nil
	}
	if len(contents) > LogfileMaxLen {
		logger.Warn("logfile exceeds attachment limit, continuing without logfile",
			"path", resolved, "size", len(contents), "limit", LogfileMaxLen)
		return f, nil
	}
	f.LogfileName = logfileStem(resolved)
	f.Logfile = string(contents)
	return f, nil
}
