package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/plog"
	"github.com/Br3nda/polyloc/internal/scanners"
	"github.com/Br3nda/polyloc/internal/walker"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [paths...]",
	Short: "Print every line prefixed with its code/comment/blank classification",
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
			fmt.Fprintf(w, "=== %s (%s) ===\n", fc.Path, lang)
			scanner.Count(content, entity.FuncSink{Line: func(e entity.LineEvent) {
				text := strings.TrimRight(string(content[e.Start:e.End]), "\r\n")
				fmt.Fprintf(w, "%-8s %s\n", labelFor(e.Kind), text)
			}})
			return nil
		})
	},
}

func labelFor(k entity.LineKind) string {
	switch k {
	case entity.LineCode:
		return "CODE"
	case entity.LineComment:
		return "COMMENT"
	default:
		return "BLANK"
	}
}

func init() {
	rootCmd.AddCommand(annotateCmd)
}
