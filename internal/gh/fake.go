package gh

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// Fake is a GitHub stub. It serves canned data, records writes, and never
// touches the network or a subprocess. Zero values fall back to synthetic
// responses so the pipeline can be exercised end to end with
// --fake-github-cli.
type Fake struct {
	Repo         string
	RunSummaries map[string]string // keyed by run ID
	JobLogs      map[string]string // keyed by job ID
	IssueBodies  []string
	Labels       []string

	CreatedIssues []CreatedIssue
	CreatedLabels []string

	logger *slog.Logger
}

// CreatedIssue records one CreateIssue call.
type CreatedIssue struct {
	Repo   string
	Title  string
	Body   string
	Labels []string
}

// NewFake creates a Fake targeting repo.
func NewFake(repo string, logger *slog.Logger) *Fake {
	if repo == "" {
		repo = "https://github.com/fake-org/fake-repo"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fake{Repo: repo, logger: logger}
}

func (f *Fake) repoOr(repo string) string {
	if repo == "" {
		return f.Repo
	}
	return repo
}

// RunSummary returns the canned summary for runID, or a synthetic one.
func (f *Fake) RunSummary(_ context.Context, repo, runID string) (string, error) {
	if s, ok := f.RunSummaries[runID]; ok {
		return s, nil
	}
	return fmt.Sprintf("Fake run summary for repo=%s and run_id=%s", f.repoOr(repo), runID), nil
}

// FailedJobLog returns the canned log for jobID, or a synthetic one.
func (f *Fake) FailedJobLog(_ context.Context, repo, jobID string) (string, error) {
	if s, ok := f.JobLogs[jobID]; ok {
		return s, nil
	}
	return fmt.Sprintf("Fake failed job log for repo=%s and job_id=%s", f.repoOr(repo), jobID), nil
}

// OpenIssueBodiesWithLabel returns the configured issue bodies.
func (f *Fake) OpenIssueBodiesWithLabel(_ context.Context, repo, label string) ([]string, error) {
	f.logger.Debug("fake issue list", "repo", f.repoOr(repo), "label", label)
	return f.IssueBodies, nil
}

// AllLabels returns the configured labels plus any created since.
func (f *Fake) AllLabels(_ context.Context, repo string) ([]string, error) {
	f.logger.Debug("fake label list", "repo", f.repoOr(repo))
	return append(slices.Clone(f.Labels), f.CreatedLabels...), nil
}

// CreateLabel records the label.
func (f *Fake) CreateLabel(_ context.Context, repo, name, color, description string) error {
	f.logger.Info("fake create label", "repo", f.repoOr(repo), "name", name, "color", color)
	f.CreatedLabels = append(f.CreatedLabels, name)
	return nil
}

// CreateIssue records the issue, creating missing labels like the real
// client does.
func (f *Fake) CreateIssue(ctx context.Context, repo, title, body string, labels []string) error {
	existing, _ := f.AllLabels(ctx, repo)
	for _, label := range labels {
		if !slices.Contains(existing, label) {
			if err := f.CreateLabel(ctx, repo, label, LabelColor, ""); err != nil {
				return err
			}
		}
	}
	f.logger.Info("fake create issue", "repo", f.repoOr(repo), "title", title, "labels", labels)
	f.CreatedIssues = append(f.CreatedIssues, CreatedIssue{
		Repo:   f.repoOr(repo),
		Title:  title,
		Body:   body,
		Labels: slices.Clone(labels),
	})
	return nil
}

// DefaultRepo returns the fake's repository URL.
func (f *Fake) DefaultRepo(context.Context) (string, error) {
	return f.Repo, nil
}
