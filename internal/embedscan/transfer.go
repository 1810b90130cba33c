package embedscan

import (
	"bytes"

	"github.com/Br3nda/polyloc/internal/entity"
)

// Transfer hands control from host to guest for the region beginning
// at guestStart, up to the given outry token, and returns the buffer
// offset at which the host should resume.
//
// The caller (a host scanner) is responsible for the blank-entry half
// of §4.3: guestStart is either the start of the line after a
// whitespace-only entry tail (the common case), or the start of the
// entry's own physical line when the entry is followed immediately by
// guest content — either way, guestStart always points at a line
// boundary, keeping ownership of any given physical line with exactly
// one language.
//
// Transfer implements the blank-outry half: it locates outry
// (case-insensitively) at or after guestStart, then looks at the
// bytes between the start of outry's line and outry itself. If that
// span is blank (whitespace only — the delimiter sits alone on its
// line), the line is excluded from the guest and resumeAt rewinds to
// its start, so the host re-scans the bare delimiter. Otherwise real
// guest content shares outry's line, so the whole line — delimiter
// included — stays with the guest and resumeAt advances past its
// newline. If outry never appears, the guest consumes to end of
// buffer, matching the "drain to pe" failure isolation rule of §5/§7.
//
// Depth overflow degrades per §7: Transfer runs no guest scan at all
// and returns guestStart unchanged, so the caller's own "any" handling
// covers the remaining bytes.
func Transfer(sup *Supervisor, host, guest entity.Lang, buf []byte, guestStart int, outry string, sink entity.Sink, guestCount func([]byte, entity.Sink)) (resumeAt int, err error) {
	rec := entity.ActivationRecord{HostLang: host, GuestLang: guest}
	if pushErr := sup.push(rec); pushErr != nil {
		return guestStart, pushErr
	}
	defer sup.pop()

	if guestStart >= len(buf) {
		return len(buf), nil
	}

	guestEnd := len(buf)
	if idx := indexFold(buf[guestStart:], outry); idx >= 0 {
		outryAbs := guestStart + idx
		ls := lineStartOf(buf, outryAbs)
		if ls < guestStart {
			ls = guestStart
		}
		if isBlank(buf[ls:outryAbs]) {
			guestEnd = ls
		} else {
			guestEnd = lineEndOf(buf, outryAbs)
		}
	}

	if guestEnd > guestStart && guestCount != nil {
		guestCount(buf[guestStart:guestEnd], offsetSink{inner: sink, base: guestStart})
	}
	return guestEnd, nil
}

// isBlank reports whether b holds only spaces, tabs, or carriage
// returns — the "no guest content" test the blank-outry rule needs.
func isBlank(b []byte) bool {
	for _, c := range b {
		if c != ' ' && c != '\t' && c != '\r' {
			return false
		}
	}
	return true
}

// lineEndOf returns one past the newline that ends the line
// containing idx, or len(buf) if that line runs off the end
// unterminated.
func lineEndOf(buf []byte, idx int) int {
	for i := idx; i < len(buf); i++ {
		if buf[i] == '\n' {
			return i + 1
		}
	}
	return len(buf)
}

// lineStartOf returns the byte offset of the start of the line
// containing idx: one past the preceding newline, or 0.
func lineStartOf(buf []byte, idx int) int {
	if idx <= 0 {
		return 0
	}
	if j := bytes.LastIndexByte(buf[:idx], '\n'); j >= 0 {
		return j + 1
	}
	return 0
}

// indexFold is a case-insensitive bytes.Index for ASCII outry tokens
// (?>, </style>, </script>, and similar delimiters are all ASCII).
func indexFold(buf []byte, tok string) int {
	if tok == "" {
		return -1
	}
	tb := []byte(tok)
	n, m := len(buf), len(tb)
	for i := 0; i+m <= n; i++ {
		if equalFold(buf[i:i+m], tb) {
			return i
		}
	}
	return -1
}

func equalFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ac, bc := a[i], b[i]
		if 'A' <= ac && ac <= 'Z' {
			ac += 'a' - 'A'
		}
		if 'A' <= bc && bc <= 'Z' {
			bc += 'a' - 'A'
		}
		if ac != bc {
			return false
		}
	}
	return true
}

// offsetSink translates a guest scan's buffer-relative event offsets
// into the host buffer's absolute coordinates.
type offsetSink struct {
	inner entity.Sink
	base  int
}

func (o offsetSink) EmitLine(e entity.LineEvent) {
	e.Start += o.base
	e.End += o.base
	o.inner.EmitLine(e)
}

func (o offsetSink) EmitSpan(e entity.Span) {
	e.Start += o.base
	e.End += o.base
	o.inner.EmitSpan(e)
}
