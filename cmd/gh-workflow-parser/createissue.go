package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luftkode/gh-workflow-parser/internal/engine"
)

var (
	createRunID       string
	createLabel       string
	createKind        string
	createNoDuplicate bool
)

var createIssueCmd = &cobra.Command{
	Use:   "create-issue-from-run",
	Short: "Create an issue from a failed workflow run",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := engine.ParseWorkflowKind(createKind)
		if err != nil {
			return err
		}

		logger := newLogger()
		ctx := cmd.Context()

		github, repo, err := newGitHub(ctx, logger)
		if err != nil {
			return err
		}

		e, err := engine.New(engine.Config{
			GitHub: github,
			Repo:   repo,
			Logger: logger,
			DryRun: dryRun,
		})
		if err != nil {
			return err
		}

		if dryRun {
			logger.Warn("dry-run mode, no issue will be created")
		}
		if err := e.CreateIssueFromRun(ctx, createRunID, createLabel, kind, createNoDuplicate); err != nil {
			return fmt.Errorf("create issue from run %s: %w", createRunID, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createIssueCmd)
	createIssueCmd.Flags().StringVarP(&createRunID, "run-id", "r", "", "ID of the workflow run")
	createIssueCmd.Flags().StringVarP(&createLabel, "label", "l", "", "Label applied to the issue and used for duplicate detection")
	createIssueCmd.Flags().StringVarP(&createKind, "kind", "k", "", "Kind of workflow the run belongs to (yocto, other)")
	createIssueCmd.Flags().BoolVarP(&createNoDuplicate, "no-duplicate", "n", true, "Skip creation when a similar issue is already open")
	_ = createIssueCmd.MarkFlagRequired("run-id")
	_ = createIssueCmd.MarkFlagRequired("label")
	_ = createIssueCmd.MarkFlagRequired("kind")
}
