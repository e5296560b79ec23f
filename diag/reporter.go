package diag

import (
	"github.com/TyOverby/snoot/source"
)

// Reporter is the minimal contract through which lexer and parser hand off
// diagnostics. Implementations: BagReporter (appends to a Bag), NopReporter.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string)
}

// BagReporter forwards every report into a Bag, stamping File (when set)
// onto each diagnostic.
type BagReporter struct {
	Bag  *Bag
	File string
}

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	d := New(sev, code, primary, msg)
	if r.File != "" {
		d = d.WithFile(r.File)
	}
	r.Bag.Add(d)
}

// NopReporter drops every report.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string) {}
