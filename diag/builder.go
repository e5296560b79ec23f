package diag

import (
	"github.com/TyOverby/snoot/source"
)

// Builder assembles a Diagnostic from a message and a span taken off a
// parsed tree. The zero configuration produces an error-level diagnostic
// with no file name.
type Builder struct {
	d Diagnostic
}

// NewBuilder starts a diagnostic for span with the given message.
func NewBuilder(msg string, span source.Span) *Builder {
	return &Builder{d: Diagnostic{
		Severity: SevError,
		Message:  msg,
		Primary:  span,
	}}
}

// WithLevel sets the severity.
func (b *Builder) WithLevel(sev Severity) *Builder {
	b.d.Severity = sev
	return b
}

// WithFile sets the file name shown in rendered output.
func (b *Builder) WithFile(name string) *Builder {
	b.d.File = name
	return b
}

// WithCode sets the diagnostic code.
func (b *Builder) WithCode(code Code) *Builder {
	b.d.Code = code
	return b
}

// WithNote attaches a secondary span and message.
func (b *Builder) WithNote(span source.Span, msg string) *Builder {
	b.d.Notes = append(b.d.Notes, Note{Span: span, Msg: msg})
	return b
}

// Build returns the accumulated diagnostic. The builder may be reused; the
// returned value is independent of later calls.
func (b *Builder) Build() Diagnostic {
	d := b.d
	d.Notes = append([]Note(nil), b.d.Notes...)
	return d
}
