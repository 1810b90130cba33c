package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Br3nda/polyloc/internal/report"
)

var individualCmd = &cobra.Command{
	Use:   "individual [paths...]",
	Short: "Print per-file, per-language code/comment/blank counts",
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
		return report.WriteIndividual(os.Stdout, r, rc.cfg.NoColor)
	},
}

func init() {
	rootCmd.AddCommand(individualCmd)
}
