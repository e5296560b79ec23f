package token

import (
	"github.com/TyOverby/snoot/source"
)

// TriviaKind classifies non-significant text collected before a token.
type TriviaKind uint8

const (
	// TriviaSpace is a run of non-newline whitespace.
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a run of consecutive newlines.
	TriviaNewline
	// TriviaComment is a ';' line comment up to (not including) the newline.
	TriviaComment
)

// Trivia is whitespace or a comment skipped by the lexer. It advances
// position counters like any other text but produces no node.
type Trivia struct {
	Kind   TriviaKind
	Text   source.Handle
	Line   uint32
	Col    uint32
	Offset uint32
}

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaComment:
		return "Comment"
	}
	return "Unknown"
}
