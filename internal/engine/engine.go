// Package engine orchestrates the pipeline: fetch run data, parse failed
// job logs, build an issue report, check for duplicates, and file the issue.
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/luftkode/gh-workflow-parser/internal/gh"
	"github.com/luftkode/gh-workflow-parser/internal/logfind"
	"github.com/luftkode/gh-workflow-parser/internal/report"
	"github.com/luftkode/gh-workflow-parser/internal/runlog"
	"github.com/luftkode/gh-workflow-parser/internal/yocto"
)

// LevenshteinThreshold is the normalized edit distance below which two issue
// bodies are considered near-duplicates. Tuned so that bodies differing only
// in run/job IDs and timestamps land at 0 while a genuinely different error
// message lands well above.
const LevenshteinThreshold = 100

// WorkflowKind selects the log dialect the parser expects.
type WorkflowKind string

const (
	WorkflowYocto WorkflowKind = "yocto"
	WorkflowOther WorkflowKind = "other"
)

// ParseWorkflowKind parses a user-supplied workflow kind, case-insensitively.
func ParseWorkflowKind(s string) (WorkflowKind, error) {
	switch strings.ToLower(s) {
	case "yocto":
		return WorkflowYocto, nil
	case "other":
		return WorkflowOther, nil
	}
	return "", fmt.Errorf("unknown workflow kind %q (valid: yocto, other)", s)
}

// Config configures the engine.
type Config struct {
	GitHub gh.GitHub
	Repo   string // repository URL, e.g. https://github.com/org/repo
	Logger *slog.Logger
	DryRun bool
}

// Engine drives issue creation from failed workflow runs.
type Engine struct {
	github gh.GitHub
	logger *slog.Logger
	config Config
}

// New creates an Engine from the given config.
func New(config Config) (*Engine, error) {
	if config.GitHub == nil {
		return nil, fmt.Errorf("no GitHub client configured")
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Engine{
		config: config,
		github: config.GitHub,
		logger: config.Logger,
	}, nil
}

// CreateIssueFromRun builds an issue report for the failed jobs of runID and
// files it, unless a duplicate is already open or dry-run mode is on.
// Near-duplicate detection compares the new body against every open issue
// carrying label, so label should be stable across scheduled runs.
func (e *Engine) CreateIssueFromRun(ctx context.Context, runID, label string, kind WorkflowKind, noDuplicate bool) error {
	summary, err := e.github.RunSummary(ctx, e.config.Repo, runID)
	if err != nil {
		return fmt.Errorf("fetch run summary: %w", err)
	}
	e.logger.Log(ctx, LevelDump, "fetched run summary", "run_id", runID, "summary", summary)

	jobIDs, err := runlog.ScanFailedJobs(summary)
	if err != nil {
		return fmt.Errorf("scan run summary: %w", err)
	}
	if len(jobIDs) == 0 {
		return fmt.Errorf("no failed jobs found in run %s", runID)
	}
	e.logger.Info("found failed jobs", "run_id", runID, "job_ids", jobIDs)

	runURL := gh.RunURL(e.config.Repo, runID)
	labels := []string{label}
	jobs := make([]report.FailedJob, 0, len(jobIDs))
	for _, jobID := range jobIDs {
		job, kindLabels, err := e.parseFailedJob(ctx, jobID, runURL, kind)
		if err != nil {
			return err
		}
		jobs = append(jobs, *job)
		labels = append(labels, kindLabels...)
	}

	issue := report.NewIssue(runID, runURL, jobs, labels)

	if noDuplicate {
		done, err := e.checkDuplicate(ctx, issue, label)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}

	if e.config.DryRun {
		printIssuePreview(issue)
		return nil
	}
	return e.github.CreateIssue(ctx, e.config.Repo, issue.Title, issue.Body(), issue.Labels)
}

// parseFailedJob fetches and parses the log of one failed job, returning the
// report entry and any failure-kind labels derived from it.
func (e *Engine) parseFailedJob(ctx context.Context, jobID, runURL string, kind WorkflowKind) (*report.FailedJob, []string, error) {
	raw, err := e.github.FailedJobLog(ctx, e.config.Repo, jobID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch log for job %s: %w", jobID, err)
	}

	jl, err := runlog.Parse(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log for job %s: %w", jobID, err)
	}
	e.logger.Log(ctx, LevelTrace, "parsed job log",
		"job_id", jobID, "job", jl.Job, "step", jl.Step, "date", jl.Date)

	job := &report.FailedJob{
		Name: jl.Job,
		ID:   jobID,
		URL:  gh.JobURL(runURL, jobID),
		Step: jl.Step,
	}

	switch kind {
	case WorkflowYocto:
		failure, err := yocto.ParseFailure(jl.Lines, e.logger)
		if err != nil {
			return nil, nil, fmt.Errorf("parse yocto failure in job %s: %w", jobID, err)
		}
		job.Summary = failure.Summary
		job.LogfileName = failure.LogfileName
		job.Logfile = failure.Logfile
		return job, []string{failure.Kind.Label()}, nil
	default:
		job.Summary = jl.Lines
		return job, nil, nil
	}
}

// checkDuplicate reports whether an open issue with label already covers the
// same failure. Exact and near matches both count; the caller should skip
// creation when true is returned.
func (e *Engine) checkDuplicate(ctx context.Context, issue *report.Issue, label string) (bool, error) {
	bodies, err := e.github.OpenIssueBodiesWithLabel(ctx, e.config.Repo, label)
	if err != nil {
		return false, fmt.Errorf("list open issues with label %q: %w", label, err)
	}

	dist := report.MinDistance(issue.Body(), bodies)
	switch {
	case dist == 0:
		e.logger.Warn("skipping issue creation, an open issue has the exact same body",
			"label", label)
		return true, nil
	case dist < LevenshteinThreshold:
		e.logger.Warn("skipping issue creation, an open issue has a very similar body",
			"label", label, "distance", dist)
		return true, nil
	}
	return false, nil
}

// printIssuePreview writes the issue to stdout the way it would be filed.
func printIssuePreview(issue *report.Issue) {
	header := color.New(color.FgYellow, color.Bold)
	header.Println("DRY RUN MODE! The following issue would be created:")
	header.Println("==== ISSUE TITLE ====")
	fmt.Println(issue.Title)
	header.Println("==== ISSUE LABEL(S) ====")
	fmt.Println(strings.Join(issue.Labels, ","))
	header.Println("==== START OF ISSUE BODY ====")
	fmt.Println(issue.Body())
	header.Println("==== END OF ISSUE BODY ====")
}

// LocateFailureLog reads a CI log from r and returns the resolved path of
// the logfile the log points at. Only Yocto logs carry a logfile reference
// today.
func LocateFailureLog(r io.Reader, kind WorkflowKind) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read log: %w", err)
	}

	switch kind {
	case WorkflowYocto:
		summary, err := yocto.ExtractSummary(string(raw))
		if err != nil {
			return "", err
		}
		line, ok := yocto.FindLogfileLine(summary)
		if !ok {
			return "", fmt.Errorf("no logfile location found in log")
		}
		path, err := logfind.ExtractPath(line)
		if err != nil {
			return "", err
		}
		return logfind.Resolve(path)
	default:
		return "", fmt.Errorf("locating failure logs for %q workflows is not implemented", kind)
	}
}
