// Command gh-workflow-parser parses GitHub Actions workflow runs and files
// issue reports for failures.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luftkode/gh-workflow-parser/internal/engine"
	"github.com/luftkode/gh-workflow-parser/internal/gh"
)

var (
	repoURL    string
	dryRun     bool
	fakeGitHub bool
	verbosity  int
)

var rootCmd = &cobra.Command{
	Use:   "gh-workflow-parser",
	Short: "Parse GitHub CI workflows",
	Long: `gh-workflow-parser inspects failed GitHub Actions runs, extracts a
best-effort error summary from each failed job, and creates an issue
describing the failure, skipping runs that already have one open.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&repoURL, "repo", "", "Target repository URL (default: the repo of the current directory)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the issue instead of creating it")
	rootCmd.PersistentFlags().BoolVar(&fakeGitHub, "fake-github-cli", false, "Use a fake GitHub backend instead of the gh CLI")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v debug, -vv trace, -vvv dump)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger creates a structured stderr logger honoring the -v count.
func newLogger() *slog.Logger {
	var level slog.Level
	switch {
	case verbosity >= 3:
		level = engine.LevelDump
	case verbosity == 2:
		level = engine.LevelTrace
	case verbosity == 1:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				switch a.Value.Any().(slog.Level) {
				case engine.LevelTrace:
					a.Value = slog.StringValue("TRACE")
				case engine.LevelDump:
					a.Value = slog.StringValue("DUMP")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// newGitHub builds the GitHub backend selected by --fake-github-cli and
// resolves the target repository URL.
func newGitHub(ctx context.Context, logger *slog.Logger) (gh.GitHub, string, error) {
	if fakeGitHub {
		fake := gh.NewFake(repoURL, logger)
		return fake, fake.Repo, nil
	}

	client := gh.NewClient(logger)
	if err := client.CheckVersion(ctx); err != nil {
		return nil, "", err
	}
	repo := repoURL
	if repo == "" {
		var err error
		repo, err = client.DefaultRepo(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("resolve default repository: %w", err)
		}
		logger.Debug("resolved default repository", "repo", repo)
	}
	return client, strings.TrimSuffix(repo, "/"), nil
}
