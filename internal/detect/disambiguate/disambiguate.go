// Package disambiguate implements the per-extension disambiguators of
// spec.md §4.4 stage 4: pure functions of a file context that resolve
// an ambiguous extension to a concrete language.
package disambiguate

import (
	"regexp"

	"github.com/Br3nda/polyloc/internal/entity"
)

// Func is a disambiguator: given a file's context and its content, it
// returns a language decision, or (Absent, false) if it can't decide
// (the caller falls through to the next detection stage).
type Func func(ctx *entity.FileContext, content []byte) (entity.Lang, bool)

var registry = map[string]Func{}

func register(key string, fn Func) { registry[key] = fn }

// Lookup returns the disambiguator registered under key.
func Lookup(key string) (Func, bool) {
	fn, ok := registry[key]
	return fn, ok
}

// countMatches counts the number of lines in content matching re.
func countMatches(re *regexp.Regexp, content []byte) int {
	lines := splitLines(content)
	n := 0
	for _, l := range lines {
		if re.Match(l) {
			n++
		}
	}
	return n
}

func splitLines(content []byte) [][]byte {
	var out [][]byte
	start := 0
	for i, b := range content {
		if b == '\n' {
			out = append(out, content[start:i])
			start = i + 1
		}
	}
	if start < len(content) {
		out = append(out, content[start:])
	}
	return out
}
