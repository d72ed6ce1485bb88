package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/luftkode/gh-workflow-parser/internal/engine"
)

var (
	locateInputFile string
	locateKind      string
)

var locateLogCmd = &cobra.Command{
	Use:   "locate-failure-log",
	Short: "Locate the logfile a failed run's error summary points at",
	Long: `Reads a CI log from a file or stdin, finds the logfile reference in its
error summary, and prints the resolved local path of that logfile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := engine.ParseWorkflowKind(locateKind)
		if err != nil {
			return err
		}

		var in io.Reader = cmd.InOrStdin()
		if locateInputFile != "" {
			f, err := os.Open(locateInputFile)
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			in = f
		}

		path, err := engine.LocateFailureLog(in, kind)
		if err != nil {
			return err
		}
		// No trailing newline so the output can be substituted directly.
		fmt.Fprint(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locateLogCmd)
	locateLogCmd.Flags().StringVar(&locateInputFile, "input-file", "", "Read the log from this file instead of stdin")
	locateLogCmd.Flags().StringVarP(&locateKind, "kind", "k", "", "Kind of workflow the log comes from (yocto, other)")
	_ = locateLogCmd.MarkFlagRequired("kind")
}
