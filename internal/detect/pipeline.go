// Package detect implements spec.md §4.4's DetectionPipeline: binary
// screening, filename-and-extension lookup, ambiguity dispatch to
// per-extension disambiguators, content-scoring heuristics, emacs
// mode-line inspection, and a fallback external file-type probe.
package detect

import (
	"path/filepath"
	"strings"

	"github.com/Br3nda/polyloc/internal/detect/disambiguate"
	"github.com/Br3nda/polyloc/internal/entity"
)

// Pipeline classifies files to a language identifier. It holds no
// mutable state beyond an optional external probe function, so a
// single Pipeline value is safe to share and reuse across files.
type Pipeline struct {
	Probe ExternalProbe
}

// New creates a Pipeline. probe may be nil, in which case stage 6 is
// skipped and unresolved files fall through to Absent.
func New(probe ExternalProbe) *Pipeline {
	return &Pipeline{Probe: probe}
}

// Detect runs every stage in order, returning the first non-absent
// decision. Detection is a pure function of ctx's content and
// siblings, satisfying spec.md §8's determinism invariant.
func (p *Pipeline) Detect(ctx *entity.FileContext) (entity.Lang, bool) {
	base := filepath.Base(ctx.Path)
	ext := filepath.Ext(base)

	// Stage 1: binary rejection.
	if isKnownBinaryExtension(ext) {
		return entity.Absent, false
	}
	content, err := ctx.Content()
	if err != nil {
		return entity.Absent, false
	}
	if probeContentBinary(content) {
		return entity.Absent, false
	}

	// Stage 2: exact filename lookup.
	if lang, ok := exactFilenames[base]; ok {
		return lang, true
	}

	// Stage 3: extension lookup, case-sensitive then lowercased.
	if entry, ok := extensionTable[ext]; ok {
		if lang, ok := p.resolveExtEntry(ctx, content, entry); ok {
			return lang, true
		}
	} else if lower := strings.ToLower(ext); lower != ext {
		if entry, ok := extensionTable[lower]; ok {
			if lang, ok := p.resolveExtEntry(ctx, content, entry); ok {
				return lang, true
			}
		}
	}

	// Stage 5: emacs mode-line.
	if lang, ok := emacsModeLine(content); ok {
		return lang, true
	}

	// Stage 6: external file-type probe.
	if p.Probe != nil {
		if desc, err := p.Probe(ctx.Path); err == nil {
			if lang, ok := interpretProbe(desc); ok {
				return lang, true
			}
		}
	}

	return entity.Absent, false
}

// resolveExtEntry handles stage 3's terminal/disambiguator variant,
// including the recursive ".in" strip-and-redetect rule. Every other
// disambiguator key (".inc" included) is dispatched to the
// disambiguate registry; binary content was already rejected by
// stage 1.
func (p *Pipeline) resolveExtEntry(ctx *entity.FileContext, content []byte, entry extEntry) (entity.Lang, bool) {
	if entry.disambig == "" {
		return entry.terminal, true
	}
	if entry.disambig == "in" {
		stripped := strings.TrimSuffix(ctx.Path, filepath.Ext(ctx.Path))
		synthetic := &entity.FileContext{
			Path:     stripped,
			Load:     func() ([]byte, error) { return content, nil },
			Siblings: ctx.Siblings,
		}
		return p.Detect(synthetic)
	}
	fn, ok := disambiguate.Lookup(entry.disambig)
	if !ok {
		return entity.Absent, false
	}
	return fn(ctx, content)
}
