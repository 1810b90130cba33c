package disambiguate

import (
	"bytes"
	"regexp"

	"github.com/Br3nda/polyloc/internal/entity"
)

func init() { register("m", dotM) }

var (
	objcSignature = regexp.MustCompile(`@interface|@implementation|@end|@property|#import`)
	matlabSignature = regexp.MustCompile(`^\s*function\b|^\s*end\s*$|%.*$`)
	octaveOnly    = regexp.MustCompile(`\bendfunction\b|\bendwhile\b|\bend_try_catch\b|\bend_unwind_protect\b|^\s*#`)
	limboSignature = regexp.MustCompile(`\bimplement\b|\binclude\s+"[^"]+";|\bpick\s*\{|\bcase\s*\{`)
)

// dotM disambiguates .m among objective-c, matlab, octave, and limbo
// per spec.md §4.4's table: score each language by counting
// signature-matching lines; objective-c gets a +5 bonus when a
// sibling .h exists with no sibling C/C++ source; highest score wins;
// ties break limbo > objective-c > octave > matlab. Octave vs matlab
// is decided by a secondary scan for octave-only keywords.
func dotM(ctx *entity.FileContext, content []byte) (entity.Lang, bool) {
	objcScore := countMatches(objcSignature, content)
	if ctx.Siblings != nil && ctx.Siblings.HasStemWithExt(ctx.Path, ".h") &&
		!ctx.Siblings.HasExt(".c") && !ctx.Siblings.HasExt(".cpp") && !ctx.Siblings.HasExt(".cc") {
		objcScore += 5
	}
	limboScore := countMatches(limboSignature, content)
	mlikeScore := countMatches(matlabSignature, content)

	type cand struct {
		lang  entity.Lang
		score int
		rank  int // lower rank wins ties
	}
	cands := []cand{
		{entity.LangLimbo, limboScore, 0},
		{entity.LangObjectiveC, objcScore, 1},
		{entity.LangOctave, 0, 2},   // filled below
		{entity.LangMatlab, mlikeScore, 3},
	}

	// Octave vs matlab: matlab-like score is shared; break by
	// octave-only keyword presence.
	isOctave := octaveOnly.Match(content)
	if isOctave {
		cands[2].score = mlikeScore + 1 // ensure it can win the matlab/octave tie
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if c.score > best.score || (c.score == best.score && c.rank < best.rank) {
			best = c
		}
	}
	if best.score == 0 && !bytes.Contains(content, []byte("function")) {
		// No signal at all: fall through rather than force a guess.
		return entity.Absent, false
	}
	if best.lang == entity.LangOctave && !isOctave {
		return entity.LangMatlab, true
	}
	return best.lang, true
}
