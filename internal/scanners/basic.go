package scanners

import "github.com/Br3nda/polyloc/internal/entity"

// The BASIC family and free-form Fortran share the generic machine's
// shape: an apostrophe (or, for Fortran, '!') line-comment leader and
// double-quoted strings. Fixed-form Fortran's column-1 comment
// convention is approximated with the same '!' leader, which every
// modern fixed-form compiler also accepts; spec.md's Non-goals
// disclaim lexical correctness so this approximation is acceptable —
// the fixed-vs-free split itself happens in detection, not here.
func init() {
	register(newGeneric(entity.LangClassicBasic, "\"", '\'', true))
	register(newGeneric(entity.LangStructuredBasic, "\"", '\'', true))
	register(newGeneric(entity.LangVisualBasic, "\"", '\'', true))
	register(newGeneric(entity.LangFortranFree, "\"'", '!', true))
	register(newGeneric(entity.LangFortranFixed, "\"'", '!', true))
	register(newGeneric(entity.LangVBAspx, "\"", '\'', true))
}
