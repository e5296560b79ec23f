package testkit

import (
	"fmt"

	"github.com/TyOverby/snoot/ast"
	"github.com/TyOverby/snoot/token"
)

// CheckTokenInvariants runs the position invariants over a lexed stream:
// 1) byte offsets are non-decreasing
// 2) line numbers are non-decreasing; the column resets exactly when the
//    line advances and otherwise grows
// 3) every token's coordinates are 1-based
func CheckTokenInvariants(tokens []token.Token) error {
	var prev *token.Token
	for i := range tokens {
		t := &tokens[i]
		if t.Line == 0 || t.Col == 0 {
			return fmt.Errorf("token %d (%s) has 0-based coordinates %d:%d", i, t.Kind, t.Line, t.Col)
		}
		if prev != nil {
			if t.Offset < prev.Offset {
				return fmt.Errorf("token %d offset went backwards: %d < %d", i, t.Offset, prev.Offset)
			}
			if t.Line < prev.Line {
				return fmt.Errorf("token %d line went backwards: %d < %d", i, t.Line, prev.Line)
			}
			if t.Line == prev.Line && t.Col < prev.Col {
				return fmt.Errorf("token %d column went backwards on line %d: %d < %d", i, t.Line, t.Col, prev.Col)
			}
		}
		prev = t
	}
	return nil
}

// CheckNodeInvariants runs the span invariants over a parsed tree:
// 1) byte_start <= byte_end, and on a single line col_start <= col_end
// 2) every child's span is contained in its parent's span
// 3) children appear in source order
// 4) a list's span runs from its opening token's start to its closing
//    token's end
func CheckNodeInvariants(roots []*ast.Node) error {
	for _, r := range roots {
		if err := checkNode(r); err != nil {
			return err
		}
	}
	return nil
}

func checkNode(n *ast.Node) error {
	sp := n.Span
	if sp.ByteStart > sp.ByteEnd {
		return fmt.Errorf("%s node span inverted: %v", n.Kind, sp)
	}
	if sp.LineStart == sp.LineEnd && sp.ColStart > sp.ColEnd {
		return fmt.Errorf("%s node columns inverted: %v", n.Kind, sp)
	}

	if n.Kind == ast.KindList {
		if sp.ByteStart != n.Opening.Offset {
			return fmt.Errorf("list span starts at %d, opening token at %d", sp.ByteStart, n.Opening.Offset)
		}
		if want := n.Closing.Offset + n.Closing.Bytes(); sp.ByteEnd != want {
			return fmt.Errorf("list span ends at %d, closing token ends at %d", sp.ByteEnd, want)
		}
	}

	prevEnd := sp.ByteStart
	for i, c := range n.Children {
		if c.Span.ByteStart < sp.ByteStart || c.Span.ByteEnd > sp.ByteEnd {
			return fmt.Errorf("child %d span %v escapes parent span %v", i, c.Span, sp)
		}
		if c.Span.ByteStart < prevEnd {
			return fmt.Errorf("child %d span %v out of source order", i, c.Span)
		}
		prevEnd = c.Span.ByteEnd
		if err := checkNode(c); err != nil {
			return err
		}
	}
	return nil
}
