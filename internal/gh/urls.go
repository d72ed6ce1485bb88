package gh

import "fmt"

// RunURL returns the web URL of a workflow run in a repository.
func RunURL(repoURL, runID string) string {
	return fmt.Sprintf("%s/actions/runs/%s", repoURL, runID)
}

// JobURL returns the web URL of a job within a run.
func JobURL(runURL, jobID string) string {
	return fmt.Sprintf("%s/job/%s", runURL, jobID)
}
