package parser

import (
	"github.com/TyOverby/snoot/ast"
	"github.com/TyOverby/snoot/diag"
	"github.com/TyOverby/snoot/lexer"
	"github.com/TyOverby/snoot/source"
	"github.com/TyOverby/snoot/token"
)

type Options struct {
	// FileName is attached to every diagnostic; empty is allowed.
	FileName string
	// MaxDiagnostics caps the bag; zero means unlimited. Parsing continues
	// past the cap, further reports are dropped.
	MaxDiagnostics int
	// Reporter, when set, additionally receives every diagnostic as it is
	// emitted, before bag capping.
	Reporter diag.Reporter
	// Bag, when set, collects the diagnostics instead of a fresh bag. Pass
	// the same bag to the lexer's reporter to keep lexical and structural
	// diagnostics in one emission-ordered stream.
	Bag *diag.Bag
}

type Result struct {
	Roots []*ast.Node
	Bag   *diag.Bag
}

// Diagnostics returns the bag contents in emission order.
func (r Result) Diagnostics() []diag.Diagnostic {
	return r.Bag.Items()
}

// HasErrors reports whether any error-level diagnostic was emitted.
func (r Result) HasErrors() bool {
	return r.Bag.HasErrors()
}

// Parser consumes a token stream one token at a time and maintains an
// explicit frame stack, so stack depth stays constant under adversarial
// nesting. It never stops at the first error; every malformed token is
// reported and the stream is resynchronized.
type Parser struct {
	lx    *lexer.Lexer
	src   source.Handle
	stack scopeStack
	bag   *diag.Bag
	opts  Options
}

// Parse runs the lexer to end of input and returns every top-level form
// plus the diagnostics collected along the way. The tree is a best-effort
// structural approximation: it is only empty when the input held no
// top-level forms.
func Parse(lx *lexer.Lexer, opts Options) Result {
	bag := opts.Bag
	if bag == nil {
		bag = diag.NewBag(opts.MaxDiagnostics)
	}
	p := Parser{
		lx:   lx,
		src:  lx.Src(),
		bag:  bag,
		opts: opts,
	}

	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			p.closeAtEOF(tok)
			break
		}
		p.consume(tok)
	}

	return Result{Roots: p.stack.roots, Bag: p.bag}
}

func (p *Parser) consume(tok token.Token) {
	switch tok.Kind {
	case token.ListOpen:
		p.stack.openList(tok)
	case token.ListClose:
		p.closeList(tok)
	case token.Atom:
		p.put(ast.NewTerminal(tok, p.src))
	case token.String:
		p.put(ast.NewString(tok, p.src))
	case token.Prefix:
		p.stack.openPrefix(tok)
	case token.Invalid:
		// already reported by the lexer; not part of the tree
	}
}

// put appends a finished node to the innermost frame, then collapses any
// prefix frames that were waiting for exactly this operand. The loop is
// iterative: a chain of prefixes ''a collapses without recursion.
func (p *Parser) put(n *ast.Node) {
	for {
		top := p.stack.top()
		if top == nil {
			p.stack.roots = append(p.stack.roots, n)
			return
		}
		top.children = append(top.children, n)
		if !top.prefix {
			return
		}
		n = p.finishPrefix(p.stack.pop())
	}
}

// closeList handles a closing delimiter. A matching frame is finalized and
// handed to put. A mismatched kind or a close with no open frame is
// reported and the token discarded, leaving the frames unchanged. A prefix
// frame still waiting for its operand when the enclosing list closes is
// reported and dropped first.
func (p *Parser) closeList(tok token.Token) {
	for top := p.stack.top(); top != nil && top.prefix && len(top.children) == 0; top = p.stack.top() {
		p.reportPrefixNoOperand(p.stack.pop().opening)
	}

	top := p.stack.top()
	switch {
	case top == nil:
		p.report(diag.SynExtraClosing, tok.Span(p.src),
			"closing "+tok.Bracket.String()+" with no list to close")
	case top.bracket != tok.Bracket:
		p.report(diag.SynWrongClosing, tok.Span(p.src),
			"expected closing "+top.bracket.String()+" but found closing "+tok.Bracket.String())
	default:
		p.put(p.finishList(p.stack.pop(), tok))
	}
}

// closeAtEOF finalizes every unclosed frame, innermost first. Each list
// frame gets one diagnostic and a zero-width closing token synthesized at
// end of input; each operand-less prefix frame is reported and dropped.
func (p *Parser) closeAtEOF(eof token.Token) {
	for top := p.stack.top(); top != nil; top = p.stack.top() {
		fr := p.stack.pop()
		if fr.prefix {
			p.reportPrefixNoOperand(fr.opening)
			continue
		}
		p.report(diag.SynUnclosedList, fr.opening.Span(p.src),
			"unclosed "+fr.opening.Bracket.String())
		p.put(p.finishList(fr, eof))
	}
}

func (p *Parser) finishList(fr *frame, closing token.Token) *ast.Node {
	open := fr.opening
	sp := source.NewSpan(p.src,
		open.Offset, closing.Offset+closing.Bytes(),
		open.Line, open.Col,
		closing.Line, closing.Col+closing.Runes())
	return &ast.Node{
		Kind:     ast.KindList,
		Bracket:  fr.bracket,
		Opening:  open,
		Closing:  closing,
		Children: fr.children,
		Span:     sp,
	}
}

func (p *Parser) finishPrefix(fr *frame) *ast.Node {
	operand := fr.children[0]
	sp := fr.opening.Span(p.src).Cover(operand.Span)
	return &ast.Node{
		Kind:     ast.KindPrefix,
		Token:    fr.opening,
		Children: fr.children,
		Span:     sp,
	}
}

func (p *Parser) reportPrefixNoOperand(tok token.Token) {
	p.report(diag.SynPrefixNoOperand, tok.Span(p.src),
		"reader prefix "+tok.Text.Text()+" has no operand")
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
	d := diag.NewError(code, sp, msg)
	if p.opts.FileName != "" {
		d = d.WithFile(p.opts.FileName)
	}
	p.bag.Add(d)
}
