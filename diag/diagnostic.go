package diag

import (
	"github.com/TyOverby/snoot/source"
)

// Note attaches a secondary location to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a user-facing message bound to a source span and a
// severity. Diagnostics are immutable once built; parsing surfaces every
// lexical and structural problem as a Diagnostic rather than an error.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	File     string // optional file name for rendering
	Notes    []Note
}

// New builds a diagnostic with the given severity.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError is shorthand for New with SevError.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// WithNote returns a copy with an extra note attached.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// WithFile returns a copy carrying a file name for rendering.
func (d Diagnostic) WithFile(name string) Diagnostic {
	d.File = name
	return d
}
