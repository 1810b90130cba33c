package detect

import "github.com/Br3nda/polyloc/internal/entity"

// exactFilenames handles well-known basenames that don't carry a
// distinguishing extension, matched before extension lookup per
// spec.md §4.4 stage 2.
var exactFilenames = map[string]entity.Lang{
	"Makefile":       entity.LangMakefile,
	"makefile":       entity.LangMakefile,
	"GNUmakefile":    entity.LangMakefile,
	"CMakeLists.txt": entity.LangCMake,
	"configure.ac":   entity.LangAutoconf,
	"configure.in":   entity.LangAutoconf,
}
