package main

import (
	"errors"
	"fmt"

	"github.com/graeme-hill/microlex-go/lib"
	"github.com/spf13/cobra"
)

var errRejected = errors.New("input rejected")

var scanCmd = &cobra.Command{
	Use:   "scan <grammar> <input>...",
	Short: "Scan inputs with one grammar",
	Long: `Scans every input with the named grammar and prints the result, or the
diagnostic for inputs that do not match.

Examples:
  microlex scan int -78
  microlex scan list "a,b;c"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	// Inputs such as "-78" must not be read as flags.
	scanCmd.Flags().SetInterspersed(false)
}

func runScan(cmd *cobra.Command, args []string) error {
	g, err := lib.LookupGrammar(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rejected := 0
	for _, input := range args[1:] {
		result, err := g.Scan(input)
		if err != nil {
			rejected++
			var lexErr *lib.LexerError
			if errors.As(err, &lexErr) {
				logger.Debug("rejected", "grammar", g, "input", input, "error", lexErr.Summary())
			}
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprintln(out, result)
	}

	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d", errRejected, rejected, len(args)-1)
	}
	return nil
}
