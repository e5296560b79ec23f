package parser_test

import (
	"strings"
	"testing"

	"github.com/TyOverby/snoot/lexer"
	"github.com/TyOverby/snoot/parser"
	"github.com/TyOverby/snoot/source"
)

func benchParse(b *testing.B, input string) {
	src := source.NewStr(input)

	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		lx := lexer.New(src, lexer.Options{QuotedAtoms: true})
		res := parser.Parse(lx, parser.Options{})
		if res.Bag.Len() != 0 {
			b.Fatalf("diagnostics:\n%s", res.Bag)
		}
	}
}

func BenchmarkParseShort(b *testing.B) {
	benchParse(b, `(define (square x) (* x x))`)
}

func BenchmarkParseSingleLine(b *testing.B) {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < 50000; i++ {
		sb.WriteString("atom ")
	}
	sb.WriteByte(')')
	benchParse(b, sb.String())
}

func BenchmarkParseManyLines(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 2000; i++ {
		sb.WriteString("(entry (key value) \"text\")\n")
	}
	benchParse(b, sb.String())
}

func BenchmarkParseDeepNesting(b *testing.B) {
	var sb strings.Builder
	depth := 5000
	for i := 0; i < depth; i++ {
		sb.WriteByte('(')
	}
	sb.WriteString("x")
	for i := 0; i < depth; i++ {
		sb.WriteByte(')')
	}
	benchParse(b, sb.String())
}
