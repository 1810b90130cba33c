package disambiguate

import (
	"regexp"

	"github.com/Br3nda/polyloc/internal/entity"
)

func init() { register("aspx", dotAspx) }

var vbDirective = regexp.MustCompile(`(?i)<%@\s*(Page|Control)[^%]*Language\s*=\s*"VB"`)

// dotAspx disambiguates .aspx/.ascx: a Language="VB" directive yields
// vb-aspx, otherwise cs-aspx.
func dotAspx(ctx *entity.FileContext, content []byte) (entity.Lang, bool) {
	if vbDirective.Match(content) {
		return entity.LangVBAspx, true
	}
	return entity.LangCSAspx, true
}
