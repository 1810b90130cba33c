package scanners

import (
	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/kernel"
)

func init() {
	register(&smalltalkScanner{})
}

// smalltalkScanner is bespoke because Smalltalk comments are
// double-quote-delimited (like a second string type, not a
// line-leader), which the shared generic machine doesn't model.
// Strings are single-quote delimited with '' as an escaped quote.
type smalltalkScanner struct{}

func (smalltalkScanner) Lang() entity.Lang { return entity.LangSmalltalk }

const (
	stNormal = iota
	stInString
	stInComment
)

func (smalltalkScanner) Count(buf []byte, sink entity.Sink) {
	m := kernel.NewMachine(entity.LangSmalltalk, buf, sink)
	n := len(buf)
	mode := stNormal
	p := 0
	for p < n {
		c := buf[p]
		switch mode {
		case stNormal:
			switch {
			case c == '\'':
				m.MarkCode()
				mode = stInString
				p++
			case c == '"':
				m.MarkComment()
				mode = stInComment
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
		case stInString:
			switch {
			case c == '\n':
				m.EmitInternalNewline(p+1, p+1)
				p++
			case c == '\'':
				if p+1 < n && buf[p+1] == '\'' {
					p += 2
					continue
				}
				mode = stNormal
				p++
			default:
				if !isSpaceByte(c) {
					m.MarkCode()
				}
				p++
			}
		case stInComment:
			switch {
			case c == '\n':
				m.EmitInternalNewline(p+1, p+1)
				p++
			case c == '"':
				if p+1 < n && buf[p+1] == '"' {
					p += 2
					continue
				}
				mode = stNormal
				p++
			default:
				p++
			}
		}
	}
	m.EmitFinal()
}

func (smalltalkScanner) Entities(buf []byte, sink entity.Sink) {
	n := len(buf)
	p := 0
	emit := func(kind entity.Kind, ts, te int) {
		if te > ts {
			sink.EmitSpan(entity.Span{Lang: entity.LangSmalltalk, Kind: kind, Start: ts, End: te})
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
		case c == '\'' || c == '"':
			delim := c
			kind := entity.KindString
			if delim == '"' {
				kind = entity.KindComment
			}
			ts := p
			p++
			for p < n {
				if buf[p] == delim {
					if p+1 < n && buf[p+1] == delim {
						p += 2
						continue
					}
					p++
					break
				}
				p++
			}
			emit(kind, ts, p)
		default:
			ts := p
			for p < n && !isSpaceByte(buf[p]) && buf[p] != '\n' && buf[p] != '\'' && buf[p] != '"' {
				p++
			}
			if p == ts {
				p++
			}
			emit(entity.KindAny, ts, p)
		}
	}
}
