package main

import (
	"fmt"

	"github.com/graeme-hill/microlex-go/lib"
	"github.com/spf13/cobra"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in tables for every grammar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := lib.RunBuiltinTables(); err != nil {
			logger.Error("selftest failed", "error", err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}
