package detect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Br3nda/polyloc/internal/detect"
	"github.com/Br3nda/polyloc/internal/entity"
)

func ctxFor(path string, content []byte, siblings *entity.SiblingSet) *entity.FileContext {
	return &entity.FileContext{
		Path:     path,
		Load:     func() ([]byte, error) { return content, nil },
		Siblings: siblings,
	}
}

func TestDotHSiblingMDisambiguation(t *testing.T) {
	// "A .h file in a directory containing a same-stem .m file is
	// detected as objective-c regardless of content."
	siblings := entity.NewSiblingSet([]string{"widget.h", "widget.m"})
	p := detect.New(nil)
	lang, ok := p.Detect(ctxFor("/proj/widget.h", []byte("int x;\n"), siblings))
	require.True(t, ok)
	assert.Equal(t, entity.LangObjectiveC, lang)
}

func TestDotHWithoutMSiblingFallsBackToC(t *testing.T) {
	siblings := entity.NewSiblingSet([]string{"widget.h"})
	p := detect.New(nil)
	lang, ok := p.Detect(ctxFor("/proj/widget.h", []byte("int x;\n"), siblings))
	require.True(t, ok)
	assert.Equal(t, entity.LangC, lang)
}

func TestDotMOctaveLiteral(t *testing.T) {
	p := detect.New(nil)
	content := []byte("function y = f(x)\n y = x+1;\nendfunction\n")
	lang, ok := p.Detect(ctxFor("/proj/f.m", content, nil))
	require.True(t, ok)
	assert.Equal(t, entity.LangOctave, lang)
}

func TestDotCsWithClearsilverTag(t *testing.T) {
	p := detect.New(nil)
	lang, ok := p.Detect(ctxFor("/proj/page.cs", []byte("<html><?cs var:foo ?></html>\n"), nil))
	require.True(t, ok)
	assert.Equal(t, entity.LangClearsilverTemplate, lang)
}

func TestDotCsWithoutClearsilverTagIsCSharp(t *testing.T) {
	p := detect.New(nil)
	lang, ok := p.Detect(ctxFor("/proj/Program.cs", []byte("class Program {}\n"), nil))
	require.True(t, ok)
	assert.Equal(t, entity.LangCSharp, lang)
}

func TestExactFilenameLookup(t *testing.T) {
	p := detect.New(nil)
	lang, ok := p.Detect(ctxFor("/proj/Makefile", []byte("all:\n\techo hi\n"), nil))
	require.True(t, ok)
	assert.Equal(t, entity.LangMakefile, lang)
}

func TestBinaryExtensionRejected(t *testing.T) {
	p := detect.New(nil)
	_, ok := p.Detect(ctxFor("/proj/logo.png", []byte{0xFF, 0xD8, 0xFF}, nil))
	assert.False(t, ok)
}

func TestBinaryContentRejectedByZeroByte(t *testing.T) {
	p := detect.New(nil)
	_, ok := p.Detect(ctxFor("/proj/mystery.dat.txt", []byte("abc\x00def"), nil))
	assert.False(t, ok)
}

func TestDetectionIsDeterministic(t *testing.T) {
	p := detect.New(nil)
	siblings := entity.NewSiblingSet([]string{"a.m", "a.h"})
	fc := ctxFor("/proj/a.h", []byte("int x;\n"), siblings)
	first, ok1 := p.Detect(fc)
	second, ok2 := p.Detect(ctxFor("/proj/a.h", []byte("int x;\n"), siblings))
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestMemoizationDoesNotChangeOutcome(t *testing.T) {
	siblings := entity.NewSiblingSet([]string{"a.m", "a.h"})
	// Calling the memoized flags before detection must not change the
	// answer detection itself derives from the same SiblingSet.
	_ = siblings.ContainsM()
	_ = siblings.ContainsPikeOrPmod()
	_ = siblings.ContainsVB()

	fresh := entity.NewSiblingSet([]string{"a.m", "a.h"})

	p := detect.New(nil)
	warm, ok1 := p.Detect(ctxFor("/proj/a.h", []byte("int x;\n"), siblings))
	cold, ok2 := p.Detect(ctxFor("/proj/a.h", []byte("int x;\n"), fresh))
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, warm, cold)
}

func TestDotInStripsAndRedetects(t *testing.T) {
	p := detect.New(nil)
	lang, ok := p.Detect(ctxFor("/proj/config.h.in", []byte("#define FOO 1\n"), nil))
	require.True(t, ok)
	assert.Equal(t, entity.LangC, lang)
}
