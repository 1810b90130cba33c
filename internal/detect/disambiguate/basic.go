package disambiguate

import (
	"regexp"

	"github.com/Br3nda/polyloc/internal/entity"
)

func init() {
	register("bas", dotBas)
	register("bi", dotBi)
}

var classicLineNumber = regexp.MustCompile(`(?m)^\d+\s+\w+`)

// looksClassicBasic implements the shared line-number heuristic used
// by .bas, .bi, and (as a fallback) .b: a line beginning with a
// numeric label followed by a keyword implies classic (numbered-line)
// BASIC.
func looksClassicBasic(content []byte) bool {
	return classicLineNumber.Match(content)
}

// dotBas disambiguates .bas among classic-basic, visualbasic, and
// structured-basic.
func dotBas(ctx *entity.FileContext, content []byte) (entity.Lang, bool) {
	if looksClassicBasic(content) {
		return entity.LangClassicBasic, true
	}
	if ctx.Siblings != nil && ctx.Siblings.ContainsVB() {
		return entity.LangVisualBasic, true
	}
	return entity.LangStructuredBasic, true
}

// dotBi disambiguates .bi among classic-basic and structured-basic —
// the same line-number heuristic as .bas, without the VB-sibling
// check.
func dotBi(ctx *entity.FileContext, content []byte) (entity.Lang, bool) {
	if looksClassicBasic(content) {
		return entity.LangClassicBasic, true
	}
	return entity.LangStructuredBasic, true
}
