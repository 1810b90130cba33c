package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Br3nda/polyloc/internal/aggregate"
	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/report"
)

func sampleReport() *aggregate.Report {
	r := aggregate.New()
	sink := aggregate.NewSink(r, "main.go")
	sink.EmitLine(entity.LineEvent{Lang: entity.LangGo, Kind: entity.LineCode})
	sink.EmitLine(entity.LineEvent{Lang: entity.LangGo, Kind: entity.LineComment})
	return r
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sampleReport(), report.FormatJSON, true))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "go", rows[0]["language"])
	assert.Equal(t, float64(1), rows[0]["code"])
	assert.Equal(t, float64(1), rows[0]["comment"])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sampleReport(), report.FormatCSV, true))
	assert.Contains(t, buf.String(), "language,code,comment,blank")
	assert.Contains(t, buf.String(), "go,1,1,0")
}

func TestWriteTableIncludesTotalsRow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sampleReport(), report.FormatTable, true))
	assert.Contains(t, buf.String(), "TOTAL")
	assert.Contains(t, buf.String(), "go")
}
