package scanners

import "github.com/Br3nda/polyloc/internal/entity"

// Makefile, CMake, and Autoconf/m4 all use '#' line comments with no
// meaningful multi-line string literal, matched via spec.md §4.4's
// exact-filename lookup stage rather than an extension.
func init() {
	register(newGeneric(entity.LangMakefile, "\"'", '#', true))
	register(newGeneric(entity.LangCMake, "\"", '#', true))
	register(newGeneric(entity.LangAutoconf, "\"'", '#', true))
}
