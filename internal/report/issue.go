// Package report renders failed workflow runs as GitHub issues and decides
// whether a candidate issue duplicates an existing one.
package report

import (
	"fmt"
	"strings"
)

// IssueTitle is the title of every generated issue. Scheduled runs recur,
// so the body carries the identifying detail and the title stays constant.
const IssueTitle = "Scheduled run failed"

// FailedJob is one failed job section of an issue body.
type FailedJob struct {
	Name        string
	ID          string
	URL         string
	Step        string
	Summary     string
	LogfileName string // stem of the attached logfile, empty when none
	Logfile     string // attached logfile contents, empty when none
}

// Issue is a rendered failure report ready for submission.
type Issue struct {
	Title  string
	RunID  string
	RunURL string
	Jobs   []FailedJob
	Labels []string
}

// NewIssue assembles an issue for a failed run. Job order is preserved as
// given since it shapes the rendered body. Labels keep their order with
// duplicates removed.
func NewIssue(runID, runURL string, jobs []FailedJob, labels []string) *Issue {
	return &Issue{
		Title:  IssueTitle,
		RunID:  runID,
		RunURL: runURL,
		Jobs:   jobs,
		Labels: dedupeLabels(labels),
	}
}

// Body renders the Markdown issue body: a header linking the run and
// listing the failed jobs, then one section per job.
func (i *Issue) Body() string {
	var b strings.Builder
	jobWord := "jobs"
	if len(i.Jobs) == 1 {
		jobWord = "job"
	}
	fmt.Fprintf(&b, "**Run ID**: %s [LINK TO RUN](%s)\n\n**%d %s failed:**\n",
		i.RunID, i.RunURL, len(i.Jobs), jobWord)
	for _, job := range i.Jobs {
		fmt.Fprintf(&b, "- **`%s`**\n", job.Name)
	}
	for _, job := range i.Jobs {
		job.render(&b)
	}
	return b.String()
}

func (j *FailedJob) render(b *strings.Builder) {
	fmt.Fprintf(b, "\n### `%s` (ID %s)\n**Step failed:** `%s`\n\\\n**Log:** %s\n\\\n*Best effort error summary*:\n```\n%s```",
		j.Name, j.ID, j.Step, j.URL, j.Summary)
	if j.Logfile != "" {
		fmt.Fprintf(b, "\n<details>\n<summary>%s</summary>\n\n```\n%s```\n</details>", j.LogfileName, j.Logfile)
	}
}

func dedupeLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
