// Command polyloc measures source-code composition across a tree of
// files: language detection, per-line code/comment/blank
// classification, and aggregate reporting.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
