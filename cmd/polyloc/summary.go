package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Br3nda/polyloc/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [paths...]",
	Short: "Print per-language code/comment/blank totals (default command)",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		roots := args
		if len(roots) == 0 {
			roots = []string{"."}
		}
		rc, err := loadRunConfig()
		if err != nil {
			return err
		}
		r, err := scanRoots(rc, roots)
		if err != nil {
			return err
		}
		return report.Write(os.Stdout, r, report.Format(formatFlag), rc.cfg.NoColor)
	},
}

// formatFlag defaults to "table" here (not just via the flag
// registration below) so the root command's default-to-summary
// delegation still gets a valid format when summaryCmd's own flag set
// was never parsed.
var formatFlag = "table"

func init() {
	summaryCmd.Flags().StringVarP(&formatFlag, "format", "f", "table", "output format: table, json, csv")
	rootCmd.AddCommand(summaryCmd)
}
