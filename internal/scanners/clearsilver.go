package scanners

import "github.com/Br3nda/polyloc/internal/entity"

// Clearsilver's template language uses '#' line comments and
// double-quoted strings; it is normally only ever seen as an HTML
// guest (see internal/embedscan), but is independently registered so
// it can also be scanned as a top-level language for .cs files that
// disambiguate to clearsilver-template (see spec.md's .cs rule).
func init() {
	register(newGeneric(entity.LangClearsilver, "\"", '#', true))
}
