package main

import (
	"fmt"

	"github.com/graeme-hill/microlex-go/lib"
	"github.com/spf13/cobra"
)

var checkWorkers int

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Run the *.cases files in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntVar(&checkWorkers, "workers", 0, "number of cases checked at once (default from config)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := cfg.CaseDir
	if len(args) == 1 {
		dir = args[0]
	}
	workers := cfg.Workers
	if checkWorkers > 0 {
		workers = checkWorkers
	}

	cases, err := lib.ReadCasesFromDir(dir)
	if err != nil {
		return err
	}
	logger.Info("running cases", "dir", dir, "cases", len(cases), "workers", workers)

	outcomes := lib.RunCases(cmd.Context(), cases, workers)
	out := cmd.OutOrStdout()
	for _, o := range outcomes {
		if o.Passed {
			logger.Debug(o.String())
			continue
		}
		fmt.Fprintln(out, o)
		if o.Err != nil {
			logger.Debug("case error", "file", o.Case.File, "line", o.Case.Line, "error", o.Err)
		}
	}

	failures := lib.CountFailures(outcomes)
	fmt.Fprintf(out, "%d cases, %d failed\n", len(outcomes), failures)
	if failures > 0 {
		return fmt.Errorf("%d of %d cases failed", failures, len(outcomes))
	}
	return nil
}
