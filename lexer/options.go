package lexer

import (
	"github.com/TyOverby/snoot/diag"
	"github.com/TyOverby/snoot/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics; nil drops them. Lexing always
	// continues after a report.
	Reporter diag.Reporter
	// QuotedAtoms enables "..." string tokens with backslash escapes.
	QuotedAtoms bool
	// ReaderPrefixes lists runes lexed as Prefix tokens (e.g. '\'').
	ReaderPrefixes []rune
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
}

func (lx *Lexer) isReaderPrefix(r rune) bool {
	for _, p := range lx.opts.ReaderPrefixes {
		if p == r {
			return true
		}
	}
	return false
}
