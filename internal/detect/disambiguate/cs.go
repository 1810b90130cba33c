package disambiguate

import (
	"bytes"

	"github.com/Br3nda/polyloc/internal/entity"
)

func init() { register("cs", dotCs) }

// dotCs disambiguates .cs: clearsilver-template if any line matches
// "<?cs", csharp otherwise, per spec.md's literal scenario "A .cs
// file containing <?cs anywhere is detected as clearsilver-template;
// without it, as csharp."
func dotCs(ctx *entity.FileContext, content []byte) (entity.Lang, bool) {
	if bytes.Contains(content, []byte("<?cs")) {
		return entity.LangClearsilverTemplate, true
	}
	return entity.LangCSharp, true
}
