package scanners_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/scanners"
)

func TestCScannerBlockCommentLiteral(t *testing.T) {
	s, ok := scanners.Lookup(entity.LangC)
	require.True(t, ok)

	buf := []byte("// c\n/* block\nstill block */\ncode;\n\n")
	sink := &entity.SliceSink{}
	s.Count(buf, sink)

	require.Len(t, sink.Lines, 5)
	assert.Equal(t, entity.LineCode, sink.Lines[0].Kind, "plain C has no // line comments")
	assert.Equal(t, entity.LineComment, sink.Lines[1].Kind)
	assert.Equal(t, entity.LineComment, sink.Lines[2].Kind)
	assert.Equal(t, entity.LineCode, sink.Lines[3].Kind)
	assert.Equal(t, entity.LineBlank, sink.Lines[4].Kind)
}

func TestCPPScannerSupportsLineComments(t *testing.T) {
	s, ok := scanners.Lookup(entity.LangCPP)
	require.True(t, ok)

	sink := &entity.SliceSink{}
	s.Count([]byte("// a whole comment line\n"), sink)
	require.Len(t, sink.Lines, 1)
	assert.Equal(t, entity.LineComment, sink.Lines[0].Kind)
}

func TestCStringLiteralIsCode(t *testing.T) {
	s, _ := scanners.Lookup(entity.LangC)
	sink := &entity.SliceSink{}
	s.Count([]byte("char *s = \"hi\";\n"), sink)
	require.Len(t, sink.Lines, 1)
	assert.Equal(t, entity.LineCode, sink.Lines[0].Kind)
}

func TestCUnterminatedBlockCommentDrainsToEnd(t *testing.T) {
	s, _ := scanners.Lookup(entity.LangC)
	sink := &entity.SliceSink{}
	buf := []byte("/* never closed\nsecond line\n")
	s.Count(buf, sink)
	require.Len(t, sink.Lines, 2)
	assert.Equal(t, entity.LineComment, sink.Lines[0].Kind)
	assert.Equal(t, entity.LineComment, sink.Lines[1].Kind)
}

func TestCSSHasNoLineComments(t *testing.T) {
	s, ok := scanners.Lookup(entity.LangCSS)
	require.True(t, ok)
	sink := &entity.SliceSink{}
	s.Count([]byte("// not a comment in css\n"), sink)
	require.Len(t, sink.Lines, 1)
	assert.Equal(t, entity.LineCode, sink.Lines[0].Kind)
}
