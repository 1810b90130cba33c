package scanners_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/scanners"
)

func TestClearsilverHashCommentAndString(t *testing.T) {
	s, ok := scanners.Lookup(entity.LangClearsilver)
	require.True(t, ok)
	sink := &entity.SliceSink{}
	s.Count([]byte("# a remark\n<?cs var:\"x\" ?>\n"), sink)
	require.Len(t, sink.Lines, 2)
	assert.Equal(t, entity.LineComment, sink.Lines[0].Kind)
	assert.Equal(t, entity.LineCode, sink.Lines[1].Kind)
}
