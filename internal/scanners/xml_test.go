package scanners_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/scanners"
)

func TestXMLCommentEntityLiteral(t *testing.T) {
	s, ok := scanners.Lookup(entity.LangXML)
	require.True(t, ok)

	buf := []byte("<!--comment-->")
	sink := &entity.SliceSink{}
	s.Entities(buf, sink)

	require.Len(t, sink.Spans, 1)
	// len("<!--comment-->") is 14; the span covers the literal exactly.
	assert.Equal(t, entity.Span{Lang: entity.LangXML, Kind: entity.KindComment, Start: 0, End: len(buf)}, sink.Spans[0])
}

func TestXMLCodeOutsideComment(t *testing.T) {
	s, _ := scanners.Lookup(entity.LangXML)
	sink := &entity.SliceSink{}
	s.Count([]byte("<a>x</a>\n"), sink)
	require.Len(t, sink.Lines, 1)
	assert.Equal(t, entity.LineCode, sink.Lines[0].Kind)
}
