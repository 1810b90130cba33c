package scanners

import (
	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/kernel"
)

// genericSpec configures the shared scripting-language machine: a
// single-byte line-comment leader and a small set of single-byte
// string delimiters. This is a direct generalization of
// AaronTraas-loccount/lang/generic.go's generic_sloc_count, extended
// to emit line-kind and entity events through internal/kernel instead
// of a bare SLOC counter.
type genericSpec struct {
	lang         entity.Lang
	stringDelims []byte
	lineComment  byte // leader byte; consulted only when hasLineComment is set
	hasLineComment bool
}

type genericScanner struct {
	spec genericSpec
}

func newGeneric(lang entity.Lang, stringDelims string, lineComment byte, hasComment bool) *genericScanner {
	return &genericScanner{spec: genericSpec{
		lang:           lang,
		stringDelims:   []byte(stringDelims),
		lineComment:    lineComment,
		hasLineComment: hasComment,
	}}
}

func (g *genericScanner) Lang() entity.Lang { return g.spec.lang }

func (g *genericScanner) isStringDelim(c byte) bool {
	for _, d := range g.spec.stringDelims {
		if d == c {
			return true
		}
	}
	return false
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f'
}

const (
	genNormal = iota
	genInString
	genInComment
)

func (g *genericScanner) Count(buf []byte, sink entity.Sink) {
	m := kernel.NewMachine(g.spec.lang, buf, sink)
	n := len(buf)
	mode := genNormal
	var delim byte
	p := 0
	for p < n {
		c := buf[p]
		switch mode {
		case genNormal:
			switch {
			case g.isStringDelim(c):
				m.MarkCode()
				delim = c
				mode = genInString
				p++
			case g.spec.hasLineComment && c == g.spec.lineComment:
				m.MarkComment()
				mode = genInComment
				p++
			case c == '\n':
				m.EmitNewline(p + 1)
				p++
			default:
				if !isSpaceByte(c) {
					m.MarkCode()
				}
				p++
			}
		case genInString:
			switch {
			case c == '\n':
				m.EmitInternalNewline(p+1, p+1)
				p++
			case c == '\\' && p+1 < n:
				p += 2
			case c == delim:
				mode = genNormal
				p++
			default:
				if !isSpaceByte(c) {
					m.MarkCode()
				}
				p++
			}
		case genInComment:
			if c == '\n' {
				m.EmitNewline(p + 1)
				mode = genNormal
				p++
			} else {
				p++
			}
		}
	}
	m.EmitFinal()
}

func (g *genericScanner) Entities(buf []byte, sink entity.Sink) {
	n := len(buf)
	p := 0
	emit := func(kind entity.Kind, ts, te int) {
		if te > ts {
			sink.EmitSpan(entity.Span{Lang: g.spec.lang, Kind: kind, Start: ts, End: te})
		}
	}
	for p < n {
		c := buf[p]
		switch {
		case c == '\n':
			emit(entity.KindNewline, p, p+1)
			p++
		case isSpaceByte(c):
			ts := p
			for p < n && isSpaceByte(buf[p]) && buf[p] != '\n' {
				p++
			}
			emit(entity.KindSpace, ts, p)
		case g.spec.hasLineComment && c == g.spec.lineComment:
			ts := p
			for p < n && buf[p] != '\n' {
				p++
			}
			emit(entity.KindComment, ts, p)
		case g.isStringDelim(c):
			ts := p
			delim := c
			p++
			for p < n {
				if buf[p] == '\\' && p+1 < n {
					p += 2
					continue
				}
				if buf[p] == delim {
					p++
					break
				}
				p++
			}
			emit(entity.KindString, ts, p)
		default:
			ts := p
			for p < n && !isSpaceByte(buf[p]) && buf[p] != '\n' && !g.isStringDelim(buf[p]) &&
				!(g.spec.hasLineComment && buf[p] == g.spec.lineComment) {
				p++
			}
			if p == ts {
				p++
			}
			emit(entity.KindAny, ts, p)
		}
	}
}
