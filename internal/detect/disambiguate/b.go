package disambiguate

import (
	"regexp"

	"github.com/Br3nda/polyloc/internal/entity"
)

func init() { register("b", dotB) }

var limboHeuristic = regexp.MustCompile(`\bimplement\b|\binclude\s+"[^"]+";|\bpick\s*\{|\bcase\s*\{`)

// dotB disambiguates .b among limbo, classic-basic, and
// structured-basic: a limbo heuristic first, else falls through to
// the .bi rule (line-number heuristic, no VB-sibling check).
func dotB(ctx *entity.FileContext, content []byte) (entity.Lang, bool) {
	if limboHeuristic.Match(content) {
		return entity.LangLimbo, true
	}
	return dotBi(ctx, content)
}
