// Package snoot parses s-expressions without ever giving up: every
// malformed token and unbalanced delimiter becomes a diagnostic, and the
// result is always a best-effort tree over the original text.
//
// The tree borrows from the input through source.Handle; no token or node
// copies text. Callers pick the handle implementation (string, byte
// buffer, or rope) and the rest of the library is agnostic to the choice.
package snoot

import (
	"github.com/TyOverby/snoot/diag"
	"github.com/TyOverby/snoot/lexer"
	"github.com/TyOverby/snoot/parser"
	"github.com/TyOverby/snoot/source"
)

// Options tunes a top-level parse. The zero value enables quoted atoms
// and no reader prefixes.
type Options struct {
	// FileName is attached to diagnostics for rendering; empty is allowed.
	FileName string
	// MaxDiagnostics caps the collected diagnostics; zero means unlimited.
	MaxDiagnostics int
	// PlainAtoms disables "..." string tokens; quotes become atom bytes.
	PlainAtoms bool
	// ReaderPrefixes lists runes parsed as one-operand prefixes, e.g. '\''.
	ReaderPrefixes []rune
}

// Parse lexes and parses src in one forward sweep. Each call is fully
// self-contained; independent parses may run concurrently.
func Parse(src source.Handle, opts Options) parser.Result {
	bag := diag.NewBag(opts.MaxDiagnostics)
	lx := lexer.New(src, lexer.Options{
		Reporter:       diag.BagReporter{Bag: bag, File: opts.FileName},
		QuotedAtoms:    !opts.PlainAtoms,
		ReaderPrefixes: opts.ReaderPrefixes,
	})
	return parser.Parse(lx, parser.Options{
		FileName: opts.FileName,
		Bag:      bag,
	})
}

// ParseString parses a string with default options.
func ParseString(text, fileName string) parser.Result {
	return Parse(source.NewStr(text), Options{FileName: fileName})
}
