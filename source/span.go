package source

import (
	"fmt"
)

// Span records the source range of a token or node: the exact text and
// line/column/byte coordinates. Lines and columns are 1-based, columns
// counted in Unicode scalar values; byte offsets are 0-based. End
// coordinates point just past the last character (half-open). Spans are
// built once, at node finalisation, and never mutated.
//
// The whole source lines the span touches are derived on demand by Lines;
// construction itself stays O(1) regardless of line length.
type Span struct {
	src Handle // full source buffer, kept for Lines, Cover and re-slicing

	Text Handle

	LineStart uint32
	ColStart  uint32
	ByteStart uint32

	LineEnd uint32
	ColEnd  uint32
	ByteEnd uint32
}

// NewSpan builds a span over src with the given coordinates.
func NewSpan(src Handle, byteStart, byteEnd, lineStart, colStart, lineEnd, colEnd uint32) Span {
	return Span{
		src:       src,
		Text:      src.Slice(byteStart, byteEnd),
		LineStart: lineStart,
		ColStart:  colStart,
		ByteStart: byteStart,
		LineEnd:   lineEnd,
		ColEnd:    colEnd,
		ByteEnd:   byteEnd,
	}
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool { return s.ByteStart == s.ByteEnd }

// Valid reports whether the span was built over a real buffer.
func (s Span) Valid() bool { return s.src != nil }

// Src returns the full source buffer the span was built over.
func (s Span) Src() Handle { return s.src }

// Lines returns the whole source lines the span touches, for contextual
// rendering. A non-empty span whose end sits just past a newline ends on
// that newline's line; the following line is not pulled in.
func (s Span) Lines() Handle {
	lo, hi := s.linesWindow()
	return s.src.Slice(lo, hi)
}

// OffsetInLines returns the byte offset of the span's first character
// within Lines. Renderers use it to position underlines.
func (s Span) OffsetInLines() uint32 {
	return s.ByteStart - lineStartBefore(s.src, s.ByteStart)
}

func (s Span) linesWindow() (lo, hi uint32) {
	lo = lineStartBefore(s.src, s.ByteStart)
	end := s.ByteEnd
	if end > s.ByteStart && s.src.ByteAt(end-1) == '\n' {
		end--
	}
	hi = lineEndAfter(s.src, end)
	return lo, hi
}

// Cover returns the smallest span containing both s and other. Both spans
// must derive from the same buffer; covering spans of different buffers is
// API misuse.
func (s Span) Cover(other Span) Span {
	if !s.Valid() {
		return other
	}
	if !other.Valid() {
		return s
	}
	lo, hi := s, other
	if other.ByteStart < s.ByteStart {
		lo, hi = other, s
	}
	if hi.ByteEnd < lo.ByteEnd {
		hi = lo
	}
	return NewSpan(lo.src, lo.ByteStart, hi.ByteEnd, lo.LineStart, lo.ColStart, hi.LineEnd, hi.ColEnd)
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d (bytes %d-%d)", s.LineStart, s.ColStart, s.LineEnd, s.ColEnd, s.ByteStart, s.ByteEnd)
}

// lineStartBefore finds the offset just after the previous '\n', or 0.
func lineStartBefore(h Handle, pos uint32) uint32 {
	for pos > 0 && h.ByteAt(pos-1) != '\n' {
		pos--
	}
	return pos
}

// lineEndAfter finds the offset of the next '\n' at or after pos, or the
// end of the buffer.
func lineEndAfter(h Handle, pos uint32) uint32 {
	for pos < h.Len() && h.ByteAt(pos) != '\n' {
		pos++
	}
	return pos
}
