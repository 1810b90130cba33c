package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Br3nda/polyloc/internal/gestalt"
)

var gestaltRulesFlag string

var gestaltCmd = &cobra.Command{
	Use:   "gestalt [paths...]",
	Short: "Infer platform/tooling facts about a tree (Go module, Rails project, ...)",
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

		engine := gestalt.Default()
		rulesPath := gestaltRulesFlag
		if rulesPath == "" {
			rulesPath = rc.cfg.GestaltRulesFile
		}
		if rulesPath != "" {
			engine, err = gestalt.Load(rulesPath)
			if err != nil {
				return err
			}
		}

		var paths []string
		for _, root := range roots {
			err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					return err
				}
				rel, relErr := filepath.Rel(root, path)
				if relErr != nil {
					rel = path
				}
				paths = append(paths, rel)
				return nil
			})
			if err != nil {
				return err
			}
		}

		for _, fact := range engine.Infer(paths) {
			fmt.Println(fact)
		}
		return nil
	},
}

func init() {
	gestaltCmd.Flags().StringVar(&gestaltRulesFlag, "rules", "", "path to a custom gestalt rule TOML table")
	rootCmd.AddCommand(gestaltCmd)
}
