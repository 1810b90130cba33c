package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/license"
	"github.com/Br3nda/polyloc/internal/plog"
	"github.com/Br3nda/polyloc/internal/walker"
)

var licenseBankFlag string

var licensesCmd = &cobra.Command{
	Use:   "licenses [paths...]",
	Short: "Report the license header, if any, detected in each file",
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

		bank := license.Default()
		bankPath := licenseBankFlag
		if bankPath == "" {
			bankPath = rc.cfg.LicenseBankFile
		}
		if bankPath != "" {
			bank, err = license.Load(bankPath)
			if err != nil {
				return err
			}
		}

		return walker.Walk(roots, rc.walkOptions(), func(fc *entity.FileContext) error {
			content, err := fc.Content()
			if err != nil {
				plog.Warn("skipping file: read failed", "path", fc.Path, "error", err)
				return nil
			}
			if name, ok := bank.Identify(content); ok {
				fmt.Printf("%s\t%s\n", fc.Path, name)
			}
			return nil
		})
	},
}

func init() {
	licensesCmd.Flags().StringVar(&licenseBankFlag, "bank", "", "path to a custom license TOML bank")
	rootCmd.AddCommand(licensesCmd)
}
