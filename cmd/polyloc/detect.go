package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/walker"
)

var detectCmd = &cobra.Command{
	Use:   "detect [paths...]",
	Short: "Print the detected language for each file, one per line",
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
		return walker.Walk(roots, rc.walkOptions(), func(fc *entity.FileContext) error {
			lang, ok := rc.detectFile(fc)
			if !ok {
				fmt.Printf("%s\t(unknown)\n", fc.Path)
				return nil
			}
			fmt.Printf("%s\t%s\n", fc.Path, lang)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
