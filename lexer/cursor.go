package lexer

import (
	"github.com/TyOverby/snoot/source"
)

// Cursor is a position inside a source handle. Off is the byte offset;
// Line and Col are the 1-based human coordinates of that offset, with Col
// counted in Unicode scalar values. Every advance goes through BumpRune so
// the three counters never drift apart, whatever mix of multi-byte
// sequences, combining marks, or bidi controls the input holds.
type Cursor struct {
	Src  source.Handle
	Off  uint32
	Line uint32
	Col  uint32
}

// NewCursor starts a cursor at the beginning of src.
func NewCursor(src source.Handle) Cursor {
	return Cursor{Src: src, Off: 0, Line: 1, Col: 1}
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Src.Len()
}

// Peek reads the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Src.ByteAt(c.Off)
}

// PeekRune decodes the rune at the cursor. It returns (utf8.RuneError, 1)
// for an invalid sequence and size 0 at EOF.
func (c *Cursor) PeekRune() (r rune, size uint32) {
	if c.EOF() {
		return 0, 0
	}
	return source.DecodeRune(c.Src, c.Off)
}

// BumpRune consumes one rune, advancing byte offset and line/column
// counters. An invalid byte counts as a single scalar value.
func (c *Cursor) BumpRune() rune {
	r, sz := c.PeekRune()
	if sz == 0 {
		return 0
	}
	c.Off += sz
	if r == '\n' {
		c.Line++
		c.Col = 1
	} else {
		c.Col++
	}
	return r
}

// Mark remembers a position so a token can be cut from it later.
type Mark struct {
	Off  uint32
	Line uint32
	Col  uint32
}

// Mark captures the current position.
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Line: c.Line, Col: c.Col}
}

// TextFrom returns the handle slice from a mark to the current offset.
func (c *Cursor) TextFrom(m Mark) source.Handle {
	return c.Src.Slice(m.Off, c.Off)
}
