package ast_test

import (
	"testing"

	"github.com/TyOverby/snoot/ast"
	"github.com/TyOverby/snoot/lexer"
	"github.com/TyOverby/snoot/parser"
	"github.com/TyOverby/snoot/source"
)

func mustParse(t *testing.T, input string) []*ast.Node {
	t.Helper()
	lx := lexer.New(source.NewStr(input), lexer.Options{QuotedAtoms: true})
	res := parser.Parse(lx, parser.Options{})
	if res.HasErrors() {
		t.Fatalf("parse of %q failed:\n%s", input, res.Bag)
	}
	return res.Roots
}

func TestWalkVisitsSourceOrder(t *testing.T) {
	roots := mustParse(t, "(a (b c) d)")
	var texts []string
	roots[0].Walk(func(n *ast.Node) bool {
		if n.Kind == ast.KindTerminal {
			texts = append(texts, n.Text())
		}
		return true
	})
	want := []string{"a", "b", "c", "d"}
	if len(texts) != len(want) {
		t.Fatalf("visited %v", texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("visited %v, want %v", texts, want)
		}
	}
}

func TestWalkPrune(t *testing.T) {
	roots := mustParse(t, "(a (b c) d)")
	var count int
	roots[0].Walk(func(n *ast.Node) bool {
		count++
		// stop below the inner two-element list
		return n.Kind != ast.KindList || len(n.Children) != 2
	})
	// root, a, the pruned inner list, d
	if count != 4 {
		t.Fatalf("visited %d nodes, want 4", count)
	}
}

func TestFirstLastToken(t *testing.T) {
	roots := mustParse(t, "(a b)")
	root := roots[0]
	if root.FirstToken().Text.Text() != "(" || root.LastToken().Text.Text() != ")" {
		t.Fatalf("first/last = %q/%q", root.FirstToken().Text.Text(), root.LastToken().Text.Text())
	}
	leaf := root.Children[0]
	if leaf.FirstToken().Offset != leaf.LastToken().Offset {
		t.Fatal("terminal first/last token differ")
	}
}

func TestSexprRoundTrip(t *testing.T) {
	inputs := []string{
		"(a b c)",
		"(a (b (c)) d)",
		"{a [b] c}",
		`(say "hi there")`,
	}
	for _, in := range inputs {
		roots := mustParse(t, in)
		if got := roots[0].Sexpr(); got != in {
			t.Errorf("Sexpr(%q) = %q", in, got)
		}
	}
}

func TestNodeText(t *testing.T) {
	roots := mustParse(t, "  (inner (x))  ")
	if got := roots[0].Text(); got != "(inner (x))" {
		t.Fatalf("Text = %q", got)
	}
}

func TestNewTerminalSpan(t *testing.T) {
	roots := mustParse(t, "abc")
	n := roots[0]
	if n.Span.ByteStart != 0 || n.Span.ByteEnd != 3 {
		t.Fatalf("span = %v", n.Span)
	}
	if n.Span.Text.Text() != "abc" {
		t.Fatalf("span text = %q", n.Span.Text.Text())
	}
}
