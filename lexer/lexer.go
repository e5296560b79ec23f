package lexer

import (
	"unicode/utf8"

	"github.com/TyOverby/snoot/source"
	"github.com/TyOverby/snoot/token"
)

// Lexer turns a source handle into a single-pass token stream. Next
// returns the next significant token with its leading trivia already
// collected; after the end of input it returns EOF forever.
type Lexer struct {
	src    source.Handle
	cursor Cursor
	opts   Options
	look   *token.Token  // one-token lookahead buffer
	hold   []token.Trivia // accumulated leading trivia
}

// New creates a lexer over src.
func New(src source.Handle, opts Options) *Lexer {
	return &Lexer{
		src:    src,
		cursor: NewCursor(src),
		opts:   opts,
	}
}

// NewFromFile creates a lexer over a registered file's content.
func NewFromFile(f *source.File, opts Options) *Lexer {
	return New(f.Content, opts)
}

// Src returns the handle the lexer reads from.
func (lx *Lexer) Src() source.Handle { return lx.src }

// Next returns the next significant token.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		// Leading trivia before EOF is dropped, as the reference does; the
		// EOF token marks the synthesized end-of-input position.
		return lx.eofToken()
	}

	m := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	var tok token.Token
	switch {
	case isDelimiter(ch):
		bracket, opening, _ := token.BracketOf(ch)
		lx.cursor.BumpRune()
		kind := token.ListClose
		if opening {
			kind = token.ListOpen
		}
		tok = lx.makeToken(kind, m)
		tok.Bracket = bracket

	case ch == '"' && lx.opts.QuotedAtoms:
		tok = lx.scanString()

	default:
		r, sz := lx.cursor.PeekRune()
		switch {
		case r == utf8.RuneError && sz == 1:
			tok = lx.scanInvalid()
		case lx.isReaderPrefix(r):
			lx.cursor.BumpRune()
			tok = lx.makeToken(token.Prefix, m)
		default:
			tok = lx.scanAtom()
		}
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) makeToken(kind token.Kind, m Mark) token.Token {
	return token.Token{
		Kind:   kind,
		Text:   lx.cursor.TextFrom(m),
		Line:   m.Line,
		Col:    m.Col,
		Offset: m.Off,
	}
}

func (lx *Lexer) eofToken() token.Token {
	return token.Token{
		Kind:   token.EOF,
		Text:   lx.src.Slice(lx.cursor.Off, lx.cursor.Off),
		Line:   lx.cursor.Line,
		Col:    lx.cursor.Col,
		Offset: lx.cursor.Off,
	}
}

func isDelimiter(b byte) bool {
	_, _, ok := token.BracketOf(b)
	return ok
}
