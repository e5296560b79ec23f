package parser

import (
	"github.com/TyOverby/snoot/ast"
	"github.com/TyOverby/snoot/token"
)

// frame is one open form waiting for completion. A list frame waits for
// its closing delimiter; a prefix frame waits for exactly one operand.
type frame struct {
	opening  token.Token
	bracket  token.Bracket
	prefix   bool
	children []*ast.Node
}

// scopeStack holds the open frames plus the finished top-level forms.
// Depth is bounded only by input nesting, never by call stack.
type scopeStack struct {
	frames []*frame
	roots  []*ast.Node
}

func (s *scopeStack) top() *frame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

func (s *scopeStack) pop() *frame {
	fr := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return fr
}

func (s *scopeStack) openList(tok token.Token) {
	s.frames = append(s.frames, &frame{opening: tok, bracket: tok.Bracket})
}

func (s *scopeStack) openPrefix(tok token.Token) {
	s.frames = append(s.frames, &frame{opening: tok, prefix: true})
}
