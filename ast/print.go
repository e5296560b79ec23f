package ast

import (
	"strings"
)

// Sexpr renders the node back as a compact s-expression. Tokens are
// reproduced verbatim; children are separated by single spaces. Useful in
// tests and debug output, not a formatter.
func (n *Node) Sexpr() string {
	var b strings.Builder
	n.writeSexpr(&b)
	return b.String()
}

func (n *Node) writeSexpr(b *strings.Builder) {
	switch n.Kind {
	case KindList:
		b.WriteByte(n.Bracket.Open())
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(' ')
			}
			c.writeSexpr(b)
		}
		b.WriteByte(n.Bracket.Close())
	case KindPrefix:
		b.WriteString(n.Token.Text.Text())
		for _, c := range n.Children {
			c.writeSexpr(b)
		}
	default:
		b.WriteString(n.Token.Text.Text())
	}
}
