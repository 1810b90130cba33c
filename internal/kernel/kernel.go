// Package kernel provides the runtime shared by every language
// scanner: buffer cursors, the current line's tentative
// classification flags, and the primitive actions grammars invoke on
// token matches. Consolidating this here means every scanner gets
// identical line-accounting semantics; grammars describe only tokens.
package kernel

import "github.com/Br3nda/polyloc/internal/entity"

// Machine is one scan's mutable state. A fresh Machine is created per
// file (and per embedded guest activation); it is never shared across
// goroutines.
type Machine struct {
	Lang entity.Lang
	Sink entity.Sink

	buf []byte
	p   int // current position
	pe  int // end of input

	lineStart int

	lineContainsCode bool
	wholeLineComment bool
}

// NewMachine creates a Machine over buf, scanning as lang, emitting
// into sink.
func NewMachine(lang entity.Lang, buf []byte, sink entity.Sink) *Machine {
	return &Machine{Lang: lang, Sink: sink, buf: buf, pe: len(buf)}
}

// Buf returns the underlying buffer.
func (m *Machine) Buf() []byte { return m.buf }

// Pos returns the current cursor position.
func (m *Machine) Pos() int { return m.p }

// Len returns the length of the underlying buffer.
func (m *Machine) Len() int { return m.pe }

// SetPos rewinds or advances the cursor.
func (m *Machine) SetPos(p int) { m.p = p }

// Advance moves the cursor forward by n bytes.
func (m *Machine) Advance(n int) { m.p += n }

// AtEnd reports whether the cursor has reached the end of the buffer.
func (m *Machine) AtEnd() bool { return m.p >= m.pe }

// LineStart returns the byte offset of the current line's first byte.
func (m *Machine) LineStart() int { return m.lineStart }

// SetLineStart forces the line-start anchor, used when a guest
// scanner takes over mid-line or hands control back to the host.
func (m *Machine) SetLineStart(p int) { m.lineStart = p }

// HasCode reports whether the current line has been marked as
// containing code.
func (m *Machine) HasCode() bool { return m.lineContainsCode }

// HasComment reports whether the current line has been marked
// whole-line-comment so far.
func (m *Machine) HasComment() bool { return m.wholeLineComment }

// SnapshotFlags captures the three line-flag fields so they can later
// be reinstated with RestoreFlags.
func (m *Machine) SnapshotFlags() (lineStart int, hasCode, wholeComment bool) {
	return m.lineStart, m.lineContainsCode, m.wholeLineComment
}

// RestoreFlags sets the three line-flag fields, e.g. to reinstate a
// snapshot; the HTML host scanner uses it to reset its line state
// after handing a line to a guest.
func (m *Machine) RestoreFlags(lineStart int, hasCode, wholeComment bool) {
	m.lineStart = lineStart
	m.lineContainsCode = hasCode
	m.wholeLineComment = wholeComment
}

// MarkCode sets line-contains-code. Idempotent within a line.
func (m *Machine) MarkCode() {
	m.lineContainsCode = true
}

// MarkComment sets whole-line-comment, unless the line already
// contains code — a comment marker never downgrades a code line.
func (m *Machine) MarkComment() {
	if !m.lineContainsCode {
		m.wholeLineComment = true
	}
}

// MarkLineStart sets line-start to p if at the start of a line and no
// flag is set yet (i.e. this is genuinely the first byte considered
// on the line).
func (m *Machine) MarkLineStart(p int) {
	if !m.lineContainsCode && !m.wholeLineComment {
		m.lineStart = p
	}
}

// classify derives a line-kind from the current flags: code beats
// comment beats blank.
func (m *Machine) classify() entity.LineKind {
	switch {
	case m.lineContainsCode:
		return entity.LineCode
	case m.wholeLineComment:
		return entity.LineComment
	default:
		return entity.LineBlank
	}
}

// EmitNewline closes out the current line at te (the newline byte's
// end, i.e. one past it), emits its line event, then resets flags and
// advances line-start to te.
func (m *Machine) EmitNewline(te int) {
	m.Sink.EmitLine(entity.LineEvent{Lang: m.Lang, Kind: m.classify(), Start: m.lineStart, End: te})
	m.lineContainsCode = false
	m.wholeLineComment = false
	m.lineStart = te
}

// EmitInternalNewline is used inside a multi-line token (string,
// block comment). It emits the same line event as EmitNewline, then
// resets flags and anchors line-start at p (the byte after the
// newline) so the enclosing token can re-mark the line on its next
// non-whitespace byte.
func (m *Machine) EmitInternalNewline(te, p int) {
	m.Sink.EmitLine(entity.LineEvent{Lang: m.Lang, Kind: m.classify(), Start: m.lineStart, End: te})
	m.lineContainsCode = false
	m.wholeLineComment = false
	m.lineStart = p
}

// EmitFinal is called after the scan loop halts. If any non-newline
// bytes follow the last newline, it emits exactly one final line event
// for [line-start, pe), classified from whatever flags the trailing
// run set (code, comment, or blank if none).
func (m *Machine) EmitFinal() {
	if m.lineStart >= m.pe {
		return
	}
	m.Sink.EmitLine(entity.LineEvent{Lang: m.Lang, Kind: m.classify(), Start: m.lineStart, End: m.pe})
	m.lineContainsCode = false
	m.wholeLineComment = false
}

// EmitEntity is unconditional in entity mode: it never touches the
// count-mode flags.
func (m *Machine) EmitEntity(kind entity.Kind, ts, te int) {
	m.Sink.EmitSpan(entity.Span{Lang: m.Lang, Kind: kind, Start: ts, End: te})
}
