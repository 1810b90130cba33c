package scanners

import "github.com/Br3nda/polyloc/internal/entity"

// PHP's script body uses the same //, /* */, and double-quoted-string
// grammar as the rest of the C family; it is registered independently
// so it can be looked up both as a top-level language (a bare .php
// file) and as an HTML guest (see internal/embedscan and html.go).
func init() {
	register(newCFamily(entity.LangPHP))
}
