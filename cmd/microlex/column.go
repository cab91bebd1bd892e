package main

import (
	"context"
	"fmt"
	"time"

	"github.com/graeme-hill/microlex-go/lib"
	"github.com/spf13/cobra"
)

var (
	columnDSN     string
	columnQuery   string
	columnGrammar string
	columnTimeout time.Duration
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Check a Postgres column against a grammar",
	Long: `Runs a query and scans the first column of every row. Flags override the
[database] section of the config file.

Example:
  microlex column --dsn "dbname=shop sslmode=disable" \
    --query "SELECT sku FROM products" --grammar id`,
	Args: cobra.NoArgs,
	RunE: runColumn,
}

func init() {
	rootCmd.AddCommand(columnCmd)
	columnCmd.Flags().StringVar(&columnDSN, "dsn", "", "Postgres connection string")
	columnCmd.Flags().StringVar(&columnQuery, "query", "", "query whose first column is checked")
	columnCmd.Flags().StringVar(&columnGrammar, "grammar", "", "grammar name")
	columnCmd.Flags().DurationVar(&columnTimeout, "timeout", time.Minute, "query timeout")
}

func runColumn(cmd *cobra.Command, args []string) error {
	db := cfg.Database
	if columnDSN != "" {
		db.DSN = columnDSN
	}
	if columnQuery != "" {
		db.Query = columnQuery
	}
	if columnGrammar != "" {
		db.Grammar = columnGrammar
	}
	if db.DSN == "" || db.Query == "" || db.Grammar == "" {
		return fmt.Errorf("dsn, query and grammar are all required")
	}

	g, err := lib.LookupGrammar(db.Grammar)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), columnTimeout)
	defer cancel()

	logger.Info("checking column", "grammar", g, "query", db.Query)
	report, err := lib.CheckColumn(ctx, db.DSN, db.Query, g)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range report.Rejected {
		fmt.Fprintf(out, "row %d: %q\n%v\n", r.Row, r.Value, r.Err)
	}
	fmt.Fprintf(out, "%d rows, %d accepted, %d rejected\n", report.Rows, report.Accepted, len(report.Rejected))
	if len(report.Rejected) > 0 {
		return fmt.Errorf("%d rows rejected", len(report.Rejected))
	}
	return nil
}
