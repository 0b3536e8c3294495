package diag

import (
	"notal/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the central record produced by the lexer and parser.
// It is immutable once reported.
type Diagnostic struct {
	Severity    Severity
	Category    Category
	Code        Code
	Message     string
	Primary     source.Span
	Notes       []Note
	Suggestions []string
}

// New builds a diagnostic with the category derived from the code's range.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Category: code.Category(),
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError builds an error-severity diagnostic.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// WithNote returns a copy with an extra note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// WithSuggestion returns a copy with an extra suggestion appended.
func (d Diagnostic) WithSuggestion(msg string) Diagnostic {
	d.Suggestions = append(d.Suggestions, msg)
	return d
}
