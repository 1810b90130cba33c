package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Br3nda/polyloc/internal/aggregate"
	"github.com/Br3nda/polyloc/internal/entity"
)

func TestSinkAccumulatesPerLanguageAndPerFile(t *testing.T) {
	r := aggregate.New()
	sink := aggregate.NewSink(r, "main.go")
	sink.EmitLine(entity.LineEvent{Lang: entity.LangGo, Kind: entity.LineCode, Start: 0, End: 5})
	sink.EmitLine(entity.LineEvent{Lang: entity.LangGo, Kind: entity.LineComment, Start: 5, End: 10})
	sink.EmitLine(entity.LineEvent{Lang: entity.LangGo, Kind: entity.LineBlank, Start: 10, End: 11})

	assert.Equal(t, 1, r.ByLang[entity.LangGo].Code)
	assert.Equal(t, 1, r.ByLang[entity.LangGo].Comment)
	assert.Equal(t, 1, r.ByLang[entity.LangGo].Blank)
	assert.Equal(t, 3, r.ByLang[entity.LangGo].Total())
	assert.Equal(t, 1, r.ByFile["main.go"][entity.LangGo].Code)
}

func TestMergeIsCommutative(t *testing.T) {
	a := aggregate.New()
	aggregate.NewSink(a, "x.go").EmitLine(entity.LineEvent{Lang: entity.LangGo, Kind: entity.LineCode})

	b := aggregate.New()
	aggregate.NewSink(b, "y.go").EmitLine(entity.LineEvent{Lang: entity.LangGo, Kind: entity.LineCode})
	aggregate.NewSink(b, "y.go").EmitLine(entity.LineEvent{Lang: entity.LangGo, Kind: entity.LineComment})

	ab := aggregate.New()
	ab.Merge(a)
	ab.Merge(b)

	ba := aggregate.New()
	ba.Merge(b)
	ba.Merge(a)

	assert.Equal(t, ab.ByLang[entity.LangGo].Code, ba.ByLang[entity.LangGo].Code)
	assert.Equal(t, ab.ByLang[entity.LangGo].Comment, ba.ByLang[entity.LangGo].Comment)
	assert.Equal(t, 2, ab.ByLang[entity.LangGo].Code)
	assert.Equal(t, 1, ab.ByLang[entity.LangGo].Comment)
}
