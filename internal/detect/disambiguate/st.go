package disambiguate

import (
	"bytes"

	"github.com/Br3nda/polyloc/internal/entity"
)

func init() { register("st", dotSt) }

// dotSt disambiguates .st: require co-occurrence of ":=", ": [", and
// "]." before yielding smalltalk, otherwise absent.
func dotSt(ctx *entity.FileContext, content []byte) (entity.Lang, bool) {
	if bytes.Contains(content, []byte(":=")) &&
		bytes.Contains(content, []byte(": [")) &&
		bytes.Contains(content, []byte("].")) {
		return entity.LangSmalltalk, true
	}
	return entity.Absent, false
}
