package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	ghcli "github.com/cli/go-gh/v2"
)

// Client runs gh commands through the locally installed GitHub CLI, reusing
// its authentication.
type Client struct {
	logger *slog.Logger
}

// NewClient creates a Client.
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{logger: logger}
}

func (c *Client) exec(ctx context.Context, args ...string) (string, error) {
	c.logger.Debug("gh command", "args", args)
	stdout, stderr, err := ghcli.ExecContext(ctx, args...)
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("gh %s: %w: %s", args[0], err, msg)
		}
		return "", fmt.Errorf("gh %s: %w", args[0], err)
	}
	c.logger.Log(ctx, LevelDump, "gh stdout", "args", args, "bytes", stdout.Len(), "stdout", stdout.String())
	return stdout.String(), nil
}

// RunSummary returns the `gh run view` output for a workflow run.
func (c *Client) RunSummary(ctx context.Context, repo, runID string) (string, error) {
	return c.exec(ctx, "run", "--repo="+repo, "view", runID)
}

// FailedJobLog returns the log of the failed steps of a single job.
func (c *Client) FailedJobLog(ctx context.Context, repo, jobID string) (string, error) {
	return c.exec(ctx, "run", "view", "--repo", repo, "--job", jobID, "--log-failed")
}

// OpenIssueBodiesWithLabel returns the bodies of open issues carrying the
// label.
func (c *Client) OpenIssueBodiesWithLabel(ctx context.Context, repo, label string) ([]string, error) {
	out, err := c.exec(ctx, "issue", "list", "--repo", repo, "--label", label, "--json", "body")
	if err != nil {
		return nil, err
	}
	return parseIssueBodies([]byte(out))
}

// AllLabels returns the names of all labels in the repository.
func (c *Client) AllLabels(ctx context.Context, repo string) ([]string, error) {
	out, err := c.exec(ctx, "--repo", repo, "label", "list", "--json", "name")
	if err != nil {
		return nil, err
	}
	return parseLabelNames([]byte(out))
}

// CreateLabel creates a label in the repository.
func (c *Client) CreateLabel(ctx context.Context, repo, name, color, description string) error {
	_, err := c.exec(ctx, "label", "create", name,
		"--repo", repo, "--color", color, "--description", description)
	return err
}

// CreateIssue files an issue. Labels missing from the repository are
// created first; `gh issue create` rejects unknown labels.
func (c *Client) CreateIssue(ctx context.Context, repo, title, body string, labels []string) error {
	existing, err := c.AllLabels(ctx, repo)
	if err != nil {
		return fmt.Errorf("list labels: %w", err)
	}
	for _, label := range labels {
		if slices.Contains(existing, label) {
			c.logger.Debug("label already exists in the repository", "label", label)
			continue
		}
		c.logger.Info("label does not exist in the repository, creating it", "label", label)
		if err := c.CreateLabel(ctx, repo, label, LabelColor, ""); err != nil {
			return fmt.Errorf("create label %s: %w", label, err)
		}
	}

	_, err = c.exec(ctx, "issue", "create",
		"--repo", repo,
		"--title", title,
		"--body", body,
		"--label", strings.Join(labels, ","))
	return err
}

// DefaultRepo returns the URL of the repository gh currently targets.
func (c *Client) DefaultRepo(ctx context.Context) (string, error) {
	out, err := c.exec(ctx, "repo", "view", "--json", "url")
	if err != nil {
		return "", err
	}
	var repo struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal([]byte(out), &repo); err != nil {
		return "", fmt.Errorf("parse repo view: %w", err)
	}
	return repo.URL, nil
}

func parseIssueBodies(data []byte) ([]string, error) {
	var issues []struct {
		Body string `json:"body"`
	}
	if err := json.Unmarshal(data, &issues); err != nil {
		return nil, fmt.Errorf("parse issue list: %w", err)
	}
	bodies := make([]string, len(issues))
	for i, issue := range issues {
		bodies[i] = issue.Body
	}
	return bodies, nil
}

func parseLabelNames(data []byte) ([]string, error) {
	var labels []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("parse label list: %w", err)
	}
	names := make([]string, len(labels))
	for i, label := range labels {
		names[i] = label.Name
	}
	return names, nil
}
