// Package gh provides GitHub access through the gh CLI.
package gh

import (
	"context"
	"log/slog"
)

// LevelDump matches engine.LevelDump for raw gh output logging at -vvv.
const LevelDump slog.Level = slog.LevelDebug - 8

// LabelColor is the color assigned to labels this tool creates.
const LabelColor = "FF0000"

// GitHub abstracts the gh CLI operations the issue pipeline needs. Two
// implementations exist: Client runs the real gh binary, Fake serves canned
// data for tests and the --fake-github-cli flag. The implementation is
// chosen once at startup.
type GitHub interface {
	// RunSummary returns the human-oriented `gh run view` output for a
	// workflow run.
	RunSummary(ctx context.Context, repo, runID string) (string, error)

	// FailedJobLog returns the `--log-failed` log of a single job.
	FailedJobLog(ctx context.Context, repo, jobID string) (string, error)

	// OpenIssueBodiesWithLabel returns the bodies of open issues carrying
	// the label.
	OpenIssueBodiesWithLabel(ctx context.Context, repo, label string) ([]string, error)

	// AllLabels returns the names of all labels in the repository.
	AllLabels(ctx context.Context, repo string) ([]string, error)

	// CreateLabel creates a label with the given color (6 hex digits) and
	// description.
	CreateLabel(ctx context.Context, repo, name, color, description string) error

	// CreateIssue files an issue, creating any missing labels first.
	CreateIssue(ctx context.Context, repo, title, body string, labels []string) error

	// DefaultRepo returns the URL of the repository the gh CLI currently
	// targets.
	DefaultRepo(ctx context.Context) (string, error)
}
