// Package report renders an aggregate.Report as a table, JSON, or CSV,
// grounded on the pack's use of fatih/color for TTY-aware terminal
// output. It consumes only the aggregator's summary structs, never the
// scanner or detection internals directly.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/Br3nda/polyloc/internal/aggregate"
	"github.com/Br3nda/polyloc/internal/entity"
)

// Format selects a renderer.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// row is one rendered line of the summary, sorted by descending code
// count so the largest contributors sort first.
type row struct {
	Lang    entity.Lang
	Code    int
	Comment int
	Blank   int
}

func rows(r *aggregate.Report) []row {
	out := make([]row, 0, len(r.ByLang))
	for lang, c := range r.ByLang {
		out = append(out, row{Lang: lang, Code: c.Code, Comment: c.Comment, Blank: c.Blank})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code > out[j].Code
		}
		return out[i].Lang < out[j].Lang
	})
	return out
}

// Write renders r to w in the requested format. noColor forces plain
// table text even when w is a terminal (--no-color); the json and csv
// renderers never color their output and ignore it.
func Write(w io.Writer, r *aggregate.Report, format Format, noColor bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatCSV:
		return writeCSV(w, r)
	default:
		return writeTable(w, r, noColor)
	}
}

func writeTable(w io.Writer, r *aggregate.Report, noColor bool) error {
	header := color.New(color.Bold)
	langColor := color.New(color.FgCyan)
	if noColor {
		color.NoColor = true
	}

	header.Fprintf(w, "%-24s %10s %10s %10s %10s\n", "Language", "Code", "Comment", "Blank", "Total")

	var totalCode, totalComment, totalBlank int
	for _, rr := range rows(r) {
		langColor.Fprintf(w, "%-24s", string(rr.Lang))
		fmt.Fprintf(w, " %10d %10d %10d %10d\n", rr.Code, rr.Comment, rr.Blank, rr.Code+rr.Comment+rr.Blank)
		totalCode += rr.Code
		totalComment += rr.Comment
		totalBlank += rr.Blank
	}
	header.Fprintf(w, "%-24s %10d %10d %10d %10d\n", "TOTAL", totalCode, totalComment, totalBlank, totalCode+totalComment+totalBlank)
	return nil
}

// jsonRow is the wire shape for FormatJSON, keeping report internals
// (aggregate.LangCounts) decoupled from the on-disk field names.
type jsonRow struct {
	Language string `json:"language"`
	Code     int    `json:"code"`
	Comment  int    `json:"comment"`
	Blank    int    `json:"blank"`
}

func writeJSON(w io.Writer, r *aggregate.Report) error {
	out := make([]jsonRow, 0, len(r.ByLang))
	for _, rr := range rows(r) {
		out = append(out, jsonRow{Language: string(rr.Lang), Code: rr.Code, Comment: rr.Comment, Blank: rr.Blank})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeCSV(w io.Writer, r *aggregate.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"language", "code", "comment", "blank"}); err != nil {
		return err
	}
	for _, rr := range rows(r) {
		record := []string{
			string(rr.Lang),
			fmt.Sprintf("%d", rr.Code),
			fmt.Sprintf("%d", rr.Comment),
			fmt.Sprintf("%d", rr.Blank),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteIndividual renders per-file counts for the "individual"
// subcommand, one table section per file.
func WriteIndividual(w io.Writer, r *aggregate.Report, noColor bool) error {
	if noColor {
		color.NoColor = true
	}
	header := color.New(color.Bold)
	paths := make([]string, 0, len(r.ByFile))
	for p := range r.ByFile {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		header.Fprintf(w, "%s\n", p)
		fmt.Fprintf(w, "%-24s %10s %10s %10s\n", "Language", "Code", "Comment", "Blank")
		langs := make([]entity.Lang, 0, len(r.ByFile[p]))
		for l := range r.ByFile[p] {
			langs = append(langs, l)
		}
		sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
		for _, l := range langs {
			c := r.ByFile[p][l]
			fmt.Fprintf(w, "%-24s %10d %10d %10d\n", string(l), c.Code, c.Comment, c.Blank)
		}
	}
	return nil
}
