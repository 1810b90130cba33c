package disambiguate

import (
	"bytes"
	"regexp"

	"github.com/Br3nda/polyloc/internal/entity"
)

func init() { register("h", dotH) }

var (
	objcHeaderSig = regexp.MustCompile(`@interface|@end`)
	pikeKeywords  = regexp.MustCompile(`\bmapping\b|\bmixed\b|\bprogram\b|\binherit\b`)
	cppOnlyHeader = regexp.MustCompile(`^(vector|string|map|set|algorithm|iostream|memory|functional|thread|mutex|optional|variant|type_traits)$`)
	cppKeyword    = regexp.MustCompile(`\btemplate\b|\btypename\b|\bclass\b|\bnamespace\b`)
	includeTarget = regexp.MustCompile(`#\s*include\s*[<"]([^>"]+)[>"]`)
)

// dotH disambiguates .h among c, cpp, objective-c, and pike per
// spec.md §4.4's table.
func dotH(ctx *entity.FileContext, content []byte) (entity.Lang, bool) {
	if ctx.Siblings != nil && ctx.Siblings.ContainsM() && ctx.Siblings.HasStemWithExt(ctx.Path, ".m") {
		return entity.LangObjectiveC, true
	}
	if countMatches(objcHeaderSig, content) > 1 {
		return entity.LangObjectiveC, true
	}
	if ctx.Siblings != nil && ctx.Siblings.ContainsPikeOrPmod() && pikeKeywords.Match(content) {
		return entity.LangPike, true
	}
	for _, m := range includeTarget.FindAllSubmatch(content, -1) {
		if cppOnlyHeader.Match(bytes.TrimSpace(m[1])) {
			return entity.LangCPP, true
		}
	}
	if cppKeyword.Match(content) {
		return entity.LangCPP, true
	}
	return entity.LangC, true
}
