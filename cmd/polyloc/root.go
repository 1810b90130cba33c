package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Br3nda/polyloc/internal/plog"
)

const version = "0.1.0"

var (
	configPathFlag string
	excludeFlag    []string
	noColorFlag    bool
	verboseFlag    bool
)

var rootCmd = &cobra.Command{
	Use:     "polyloc",
	Short:   "polyloc measures source-code composition across a tree of files",
	Long:    "polyloc detects the language of each file in a tree and classifies every line as code, comment, or blank, reporting the result per language and per file.",
	Version: version,
	Args:    cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verboseFlag {
			level = slog.LevelDebug
		}
		plog.SetDefault(plog.NewTextHandler(os.Stderr, level))
	},
	// A bare `polyloc` (or `polyloc <paths>` with no subcommand named)
	// runs the summary subcommand, per spec.md's "summary (default)".
	RunE: func(cmd *cobra.Command, args []string) error {
		return summaryCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.SetVersionTemplate("polyloc version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&configPathFlag, "config", "c", ".polyloc.toml", "path to config file")
	rootCmd.PersistentFlags().StringSliceVarP(&excludeFlag, "exclude", "x", nil, "path prefixes to exclude (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored table output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	// Mirrors summaryCmd's own --format flag so `polyloc --format=json
	// [paths...]` works without naming the default subcommand.
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "table", "output format: table, json, csv")
}
