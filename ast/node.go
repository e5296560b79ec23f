package ast

import (
	"github.com/TyOverby/snoot/source"
	"github.com/TyOverby/snoot/token"
)

// NodeKind discriminates the node variants.
type NodeKind uint8

const (
	// KindTerminal is an atom leaf.
	KindTerminal NodeKind = iota
	// KindString is a quoted-atom leaf.
	KindString
	// KindList is a delimited sequence of children.
	KindList
	// KindPrefix is a reader prefix applied to a single operand.
	KindPrefix
)

func (k NodeKind) String() string {
	switch k {
	case KindTerminal:
		return "Terminal"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindPrefix:
		return "Prefix"
	}
	return "NodeKind(?)"
}

// Node is one vertex of the parsed tree. A list node exclusively owns its
// children; the structure is a tree by construction, never a graph.
//
// For KindList, Opening and Closing are the delimiter tokens (Closing may
// be synthesized zero-width at end of input when the list was never
// closed). For KindTerminal and KindString, Token is the leaf's token. For
// KindPrefix, Token is the prefix token and Children holds the single
// operand.
type Node struct {
	Kind     NodeKind
	Bracket  token.Bracket
	Token    token.Token
	Opening  token.Token
	Closing  token.Token
	Children []*Node
	Span     source.Span
}

// NewTerminal builds an atom leaf.
func NewTerminal(tok token.Token, src source.Handle) *Node {
	return &Node{Kind: KindTerminal, Token: tok, Span: tok.Span(src)}
}

// NewString builds a quoted-atom leaf.
func NewString(tok token.Token, src source.Handle) *Node {
	return &Node{Kind: KindString, Token: tok, Span: tok.Span(src)}
}

// IsList reports whether the node has delimiter tokens and children.
func (n *Node) IsList() bool { return n.Kind == KindList }

// FirstToken returns the leftmost token under the node.
func (n *Node) FirstToken() token.Token {
	switch n.Kind {
	case KindList:
		return n.Opening
	default:
		return n.Token
	}
}

// LastToken returns the rightmost token under the node.
func (n *Node) LastToken() token.Token {
	switch n.Kind {
	case KindList:
		return n.Closing
	case KindPrefix:
		if len(n.Children) > 0 {
			return n.Children[len(n.Children)-1].LastToken()
		}
		return n.Token
	default:
		return n.Token
	}
}

// Text returns the exact source text the node's span covers.
func (n *Node) Text() string {
	return n.Span.Text.Text()
}

// Walk visits the node and every descendant in source order. Returning
// false from fn prunes the subtree below the current node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
