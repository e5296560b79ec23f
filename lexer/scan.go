package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/TyOverby/snoot/diag"
	"github.com/TyOverby/snoot/source"
	"github.com/TyOverby/snoot/token"
)

// scanAtom consumes the maximal run of atom runes. The run stops at
// whitespace, a delimiter, a comment start, a reader prefix, an invalid
// byte, or (when quoted atoms are enabled) a double quote. Atom
// classification beyond that is left to the caller.
func (lx *Lexer) scanAtom() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if isDelimiter(ch) || ch == ';' {
			break
		}
		if ch == '"' && lx.opts.QuotedAtoms {
			break
		}
		r, sz := lx.cursor.PeekRune()
		if sz == 0 || unicode.IsSpace(r) || lx.isReaderPrefix(r) {
			break
		}
		if r == utf8.RuneError && sz == 1 {
			break
		}
		lx.cursor.BumpRune()
	}
	return lx.makeToken(token.Atom, m)
}

// scanString consumes a quoted atom starting at the opening '"'. Backslash
// escapes the following rune, including '"' and '\'. The token text keeps
// both quotes and all escape characters verbatim.
//
// A newline or end of input before the closing quote reports
// LexUnterminatedString and yields an Invalid token covering what was
// consumed, so the parser can keep going on the rest of the input.
func (lx *Lexer) scanString() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.BumpRune() // opening quote
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\n' {
			break
		}
		if ch == '"' {
			lx.cursor.BumpRune()
			return lx.makeToken(token.String, m)
		}
		if ch == '\\' {
			lx.cursor.BumpRune()
			if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
				break
			}
		}
		lx.cursor.BumpRune()
	}
	sp := lx.spanFrom(m)
	lx.report(diag.LexUnterminatedString, sp, "unterminated string")
	return lx.makeToken(token.Invalid, m)
}

// scanInvalid consumes a run of bytes that does not decode as UTF-8,
// resynchronizing at the next whitespace or delimiter. One diagnostic
// covers the whole run.
func (lx *Lexer) scanInvalid() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if isDelimiter(ch) || ch == ';' {
			break
		}
		r, sz := lx.cursor.PeekRune()
		if sz == 0 || unicode.IsSpace(r) {
			break
		}
		lx.cursor.BumpRune()
	}
	sp := lx.spanFrom(m)
	lx.report(diag.LexInvalidUTF8, sp, "invalid UTF-8 sequence")
	return lx.makeToken(token.Invalid, m)
}

func (lx *Lexer) spanFrom(m Mark) source.Span {
	return source.NewSpan(lx.src, m.Off, lx.cursor.Off, m.Line, m.Col, lx.cursor.Line, lx.cursor.Col)
}
