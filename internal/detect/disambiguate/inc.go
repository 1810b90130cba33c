package disambiguate

import (
	"bytes"

	"github.com/Br3nda/polyloc/internal/entity"
)

func init() { register("inc", dotInc) }

// dotInc disambiguates .inc: php if the buffer contains "?php",
// absent otherwise (binary content is handled upstream by the
// pipeline's stage-1 rejection before disambiguators ever run).
func dotInc(ctx *entity.FileContext, content []byte) (entity.Lang, bool) {
	if bytes.Contains(content, []byte("?php")) {
		return entity.LangPHP, true
	}
	return entity.Absent, false
}
