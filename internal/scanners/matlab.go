package scanners

import "github.com/Br3nda/polyloc/internal/entity"

// matlab and octave share syntax closely enough that, per spec.md's
// Non-goals (no lexical correctness required), one generic-machine
// configuration serves both; only the language tag differs, since
// classification between the two happens upstream in
// internal/detect/disambiguate, not in the scanner.
func init() {
	register(newGeneric(entity.LangMatlab, "'\"", '%', true))
	register(newGeneric(entity.LangOctave, "'\"", '%', true))
}
