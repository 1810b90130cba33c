package scanners_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/scanners"
)

func TestPythonWholeLineComment(t *testing.T) {
	s, ok := scanners.Lookup(entity.LangPython)
	require.True(t, ok)
	sink := &entity.SliceSink{}
	s.Count([]byte("# a comment\nx = 1\n\n"), sink)
	require.Len(t, sink.Lines, 3)
	assert.Equal(t, entity.LineComment, sink.Lines[0].Kind)
	assert.Equal(t, entity.LineCode, sink.Lines[1].Kind)
	assert.Equal(t, entity.LineBlank, sink.Lines[2].Kind)
}

func TestMatlabPercentComment(t *testing.T) {
	s, ok := scanners.Lookup(entity.LangMatlab)
	require.True(t, ok)
	sink := &entity.SliceSink{}
	s.Count([]byte("% header\nx = 1;\n"), sink)
	require.Len(t, sink.Lines, 2)
	assert.Equal(t, entity.LineComment, sink.Lines[0].Kind)
	assert.Equal(t, entity.LineCode, sink.Lines[1].Kind)
}

func TestClassicBasicApostropheComment(t *testing.T) {
	s, ok := scanners.Lookup(entity.LangClassicBasic)
	require.True(t, ok)
	sink := &entity.SliceSink{}
	s.Count([]byte("' a remark\n10 PRINT \"HI\"\n"), sink)
	require.Len(t, sink.Lines, 2)
	assert.Equal(t, entity.LineComment, sink.Lines[0].Kind)
	assert.Equal(t, entity.LineCode, sink.Lines[1].Kind)
}

func TestMakefileHashComment(t *testing.T) {
	s, ok := scanners.Lookup(entity.LangMakefile)
	require.True(t, ok)
	sink := &entity.SliceSink{}
	s.Count([]byte("# comment\nall:\n\techo hi\n"), sink)
	require.Len(t, sink.Lines, 3)
	assert.Equal(t, entity.LineComment, sink.Lines[0].Kind)
}

func TestGenericStringSpanningMultipleLinesEmitsInternalNewline(t *testing.T) {
	s, _ := scanners.Lookup(entity.LangPython)
	sink := &entity.SliceSink{}
	s.Count([]byte("x = \"abc\ndef\"\n"), sink)
	require.Len(t, sink.Lines, 2)
	assert.Equal(t, entity.LineCode, sink.Lines[0].Kind)
	assert.Equal(t, entity.LineCode, sink.Lines[1].Kind)
}
