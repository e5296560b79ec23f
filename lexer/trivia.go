package lexer

import (
	"unicode"

	"github.com/TyOverby/snoot/token"
)

// collectLeadingTrivia accumulates whitespace and comments preceding the
// next significant token into lx.hold:
//   - runs of non-newline whitespace coalesce into one TriviaSpace
//   - consecutive newlines coalesce into one TriviaNewline
//   - ';' starts a line comment up to, not including, the newline
//
// Trivia advances line/column/byte counters exactly like token text.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		m := lx.cursor.Mark()

		if lx.cursor.Peek() == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.BumpRune()
			}
			lx.holdTrivia(token.TriviaNewline, m)
			continue
		}

		if r, sz := lx.cursor.PeekRune(); sz > 0 && r != '\n' && unicode.IsSpace(r) {
			for !lx.cursor.EOF() {
				r2, sz2 := lx.cursor.PeekRune()
				if sz2 == 0 || r2 == '\n' || !unicode.IsSpace(r2) {
					break
				}
				lx.cursor.BumpRune()
			}
			lx.holdTrivia(token.TriviaSpace, m)
			continue
		}

		if lx.cursor.Peek() == ';' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.BumpRune()
			}
			lx.holdTrivia(token.TriviaComment, m)
			continue
		}

		break
	}
}

func (lx *Lexer) holdTrivia(kind token.TriviaKind, m Mark) {
	lx.hold = append(lx.hold, token.Trivia{
		Kind:   kind,
		Text:   lx.cursor.TextFrom(m),
		Line:   m.Line,
		Col:    m.Col,
		Offset: m.Off,
	})
}
