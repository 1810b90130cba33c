package scanners

import (
	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/kernel"
)

func init() {
	register(&xmlScanner{})
}

// xmlScanner handles XML's one comment form (<!-- ... -->) and marks
// everything else as code. It doesn't embed guest languages — that's
// an HTML-specific concern in this module. In entity mode the 14-byte
// buffer "<!--comment-->" yields the single span (xml, comment, 0, 14).
type xmlScanner struct{}

func (xmlScanner) Lang() entity.Lang { return entity.LangXML }

func (xmlScanner) Count(buf []byte, sink entity.Sink) {
	m := kernel.NewMachine(entity.LangXML, buf, sink)
	n := len(buf)
	p := 0
	for p < n {
		c := buf[p]
		switch {
		case hasPrefixAt(buf, p, "<!--"):
			m.MarkComment()
			p += 4
			for p < n && !hasPrefixAt(buf, p, "-->") {
				if buf[p] == '\n' {
					m.EmitInternalNewline(p+1, p+1)
					m.MarkComment()
				}
				p++
			}
			if p < n {
				p += 3
			}
		case c == '\n':
			m.EmitNewline(p + 1)
			p++
		default:
			if !isSpaceByte(c) {
				m.MarkCode()
			}
			p++
		}
	}
	m.EmitFinal()
}

func (xmlScanner) Entities(buf []byte, sink entity.Sink) {
	n := len(buf)
	p := 0
	emit := func(kind entity.Kind, ts, te int) {
		if te > ts {
			sink.EmitSpan(entity.Span{Lang: entity.LangXML, Kind: kind, Start: ts, End: te})
		}
	}
	for p < n {
		c := buf[p]
		switch {
		case hasPrefixAt(buf, p, "<!--"):
			ts := p
			p += 4
			for p < n && !hasPrefixAt(buf, p, "-->") {
				p++
			}
			if p < n {
				p += 3
			}
			emit(entity.KindComment, ts, p)
		case c == '\n':
			emit(entity.KindNewline, p, p+1)
			p++
		case isSpaceByte(c):
			ts := p
			for p < n && isSpaceByte(buf[p]) && buf[p] != '\n' {
				p++
			}
			emit(entity.KindSpace, ts, p)
		default:
			ts := p
			for p < n && !isSpaceByte(buf[p]) && buf[p] != '\n' && !hasPrefixAt(buf, p, "<!--") {
				p++
			}
			if p == ts {
				p++
			}
			emit(entity.KindAny, ts, p)
		}
	}
}

func hasPrefixAt(buf []byte, p int, prefix string) bool {
	if p+len(prefix) > len(buf) {
		return false
	}
	return string(buf[p:p+len(prefix)]) == prefix
}
