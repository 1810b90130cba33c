package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/plog"
	"github.com/Br3nda/polyloc/internal/scanners"
	"github.com/Br3nda/polyloc/internal/walker"
)

var rawEntitiesCmd = &cobra.Command{
	Use:   "raw-entities [paths...]",
	Short: "Print every entity-mode span a scanner emits (kind, offsets, text)",
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
		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()

		return walker.Walk(roots, rc.walkOptions(), func(fc *entity.FileContext) error {
			lang, ok := rc.detectFile(fc)
			if !ok {
				return nil
			}
			scanner, ok := scanners.Lookup(lang)
			if !ok {
				return nil
			}
			content, err := fc.Content()
			if err != nil {
				plog.Warn("skipping file: read failed", "path", fc.Path, "error", err)
				return nil
			}
			scanner.Entities(content, entity.FuncSink{Span: func(s entity.Span) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", fc.Path, s.Lang, s.Kind, s.Start, s.End)
			}})
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(rawEntitiesCmd)
}
