package main

import (
	"log/slog"
	"os"

	"github.com/graeme-hill/microlex-go/lib"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	cfg    lib.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "microlex",
	Short: "Check strings against small fixed grammars",
	Long: `microlex scans whole strings with one of five grammars:

  int    optionally signed integer         -78
  id     letter, then letters or digits    j34ggh54
  nzint  signed integer, no leading zero   +45
  alter  letter/digit alternation          g5h6g4
  list   letters split by ',' or ';'       a,b;c`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = lib.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("config loaded", "path", cfgFile, "case_dir", cfg.CaseDir, "workers", cfg.Workers)
	return nil
}
