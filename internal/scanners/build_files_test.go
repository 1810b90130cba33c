package scanners_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/scanners"
)

func TestCMakeHashComment(t *testing.T) {
	s, ok := scanners.Lookup(entity.LangCMake)
	require.True(t, ok)
	sink := &entity.SliceSink{}
	s.Count([]byte("# top level\nproject(foo)\n"), sink)
	require.Len(t, sink.Lines, 2)
	assert.Equal(t, entity.LineComment, sink.Lines[0].Kind)
	assert.Equal(t, entity.LineCode, sink.Lines[1].Kind)
}

func TestAutoconfQuotedMacroArgument(t *testing.T) {
	s, ok := scanners.Lookup(entity.LangAutoconf)
	require.True(t, ok)
	sink := &entity.SliceSink{}
	s.Count([]byte("AC_INIT([foo], [1.0])\n# comment\n"), sink)
	require.Len(t, sink.Lines, 2)
	assert.Equal(t, entity.LineCode, sink.Lines[0].Kind)
	assert.Equal(t, entity.LineComment, sink.Lines[1].Kind)
}

func TestMakefileRecipeTabLineIsCode(t *testing.T) {
	s, _ := scanners.Lookup(entity.LangMakefile)
	sink := &entity.SliceSink{}
	s.Count([]byte("all: foo\n\t$(CC) -o foo foo.c\n"), sink)
	require.Len(t, sink.Lines, 2)
	assert.Equal(t, entity.LineCode, sink.Lines[0].Kind)
	assert.Equal(t, entity.LineCode, sink.Lines[1].Kind)
}
