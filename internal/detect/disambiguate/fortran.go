package disambiguate

import (
	"github.com/Br3nda/polyloc/internal/entity"
)

func init() { register("f", dotF) }

// dotF disambiguates .f/.ftn/.f77-.f03 between fixed and free form,
// using fixed form's reserved column layout: columns 1-5 carry an
// optional numeric statement label, column 6 a continuation marker,
// and code proper starts at column 7. A column-1 'C'/'*' comment
// marker is fixed-form's own comment convention. A line satisfying
// neither signal is left to the next line; a buffer with no fixed-form
// signal anywhere defaults to free.
func dotF(ctx *entity.FileContext, content []byte) (entity.Lang, bool) {
	for _, line := range splitLines(content) {
		if len(line) == 0 {
			continue
		}
		switch line[0] {
		case 'c', 'C', '*':
			return entity.LangFortranFixed, true
		}
		if len(line) < 6 {
			continue
		}
		label := line[:5]
		labelOK := true
		for _, b := range label {
			if !(b == ' ' || (b >= '0' && b <= '9')) {
				labelOK = false
				break
			}
		}
		if labelOK && line[5] != ' ' && line[5] != '0' {
			return entity.LangFortranFixed, true
		}
	}
	return entity.LangFortranFree, true
}
