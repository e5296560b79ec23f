package token

import (
	"github.com/TyOverby/snoot/source"
)

// Token is a positioned slice of source text. Line and Col are 1-based,
// Col counted in Unicode scalar values; Offset is the 0-based byte
// position. Text views the source through its Handle and is never a copy.
type Token struct {
	Kind    Kind
	Bracket Bracket // valid for ListOpen/ListClose
	Text    source.Handle
	Line    uint32
	Col     uint32
	Offset  uint32
	Leading []Trivia
}

// Runes returns the number of Unicode scalar values in the token text.
func (t Token) Runes() uint32 {
	var n uint32
	for off := uint32(0); off < t.Text.Len(); {
		_, sz := source.DecodeRune(t.Text, off)
		off += sz
		n++
	}
	return n
}

// Bytes returns the byte length of the token text.
func (t Token) Bytes() uint32 { return t.Text.Len() }

// Span builds the token's source span over src, the full buffer the token
// was lexed from. Token text never contains a newline, so the span always
// stays on one line.
func (t Token) Span(src source.Handle) source.Span {
	return source.NewSpan(src,
		t.Offset, t.Offset+t.Bytes(),
		t.Line, t.Col,
		t.Line, t.Col+t.Runes(),
	)
}

// IsDelimiter reports whether the token opens or closes a list.
func (t Token) IsDelimiter() bool {
	return t.Kind == ListOpen || t.Kind == ListClose
}
