package scanners

import "github.com/Br3nda/polyloc/internal/entity"

// The scripting-language family shares one generic-machine
// configuration: single/double-quoted strings, '#' line comments.
// This mirrors AaronTraas-loccount/lang/generic.go's
// scriptingLanguages table, generalized from a fixed suffix/hashbang
// dispatch table into independently registered scanners.
func init() {
	register(newGeneric(entity.LangPython, "'\"", '#', true))
	register(newGeneric(entity.LangRuby, "'\"", '#', true))
	register(newGeneric(entity.LangPerl, "'\"", '#', true))
	register(newGeneric(entity.LangShell, "'\"", '#', true))
	register(newGeneric(entity.LangWaf, "'\"", '#', true))
}
