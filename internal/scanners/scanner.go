// Package scanners holds the hand-written byte-switch scanners, grouped
// into a few shared families (C-family, generic, HTML, XML, Smalltalk)
// and registered once per supported language. Every scanner is built
// on internal/kernel so
// line-accounting semantics are identical across the whole set;
// grammars here describe only tokens.
package scanners

import "github.com/Br3nda/polyloc/internal/entity"

// Scanner is the contract every language scanner satisfies. Count
// walks buf emitting line-code/line-comment/line-blank events;
// Entities walks buf emitting typed entity spans. Both are single
// left-to-right passes with no backtracking across already-emitted
// tokens.
type Scanner interface {
	Lang() entity.Lang
	Count(buf []byte, sink entity.Sink)
	Entities(buf []byte, sink entity.Sink)
}

// registry maps a language identifier to its scanner. Populated by
// each language file's init().
var registry = map[entity.Lang]Scanner{}

func register(s Scanner) {
	registry[s.Lang()] = s
}

// registerAlias registers s under a language identifier other than
// its own Lang(), used when one file type (e.g. clearsilver-template)
// is scanned by another language's scanner (html).
func registerAlias(lang entity.Lang, s Scanner) {
	registry[lang] = s
}

// Lookup returns the scanner registered for lang, if any.
func Lookup(lang entity.Lang) (Scanner, bool) {
	s, ok := registry[lang]
	return s, ok
}

// Registered returns every registered language identifier, in no
// particular order.
func Registered() []entity.Lang {
	out := make([]entity.Lang, 0, len(registry))
	for l := range registry {
		out = append(out, l)
	}
	return out
}
