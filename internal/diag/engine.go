package diag

import (
	"fmt"

	"notal/internal/source"
)

// Engine owns every diagnostic of one parse run. It keeps running error and
// warning counts, optionally escalates warnings to errors, and invokes a
// callback synchronously on every report. One Engine serves exactly one run;
// it is not safe for concurrent use.
type Engine struct {
	bag  *Bag
	file *source.File

	errorCount   int
	warningCount int

	// WarningsAsErrors makes every warning count as an error as well.
	WarningsAsErrors bool
	// OnReport, when set, is invoked synchronously with each stored record.
	OnReport func(Diagnostic)
}

// NewEngine constructs an engine for one run over the given file.
// max bounds the number of stored diagnostics.
func NewEngine(file *source.File, max int) *Engine {
	if max <= 0 {
		max = 100
	}
	return &Engine{
		bag:  NewBag(max),
		file: file,
	}
}

// File returns the source file this engine renders context from.
func (e *Engine) File() *source.File { return e.file }

// Report implements Reporter: it stores the record, updates counts, and
// fires the callback. Counting happens even when the storage limit drops
// the record, so HasErrors stays truthful.
func (e *Engine) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, suggestions []string) {
	d := New(sev, code, primary, msg)
	d.Notes = notes
	d.Suggestions = suggestions
	e.Add(d)
}

// Add stores a fully built diagnostic.
func (e *Engine) Add(d Diagnostic) {
	switch {
	case d.Severity >= SevError:
		e.errorCount++
	case d.Severity == SevWarning:
		e.warningCount++
		if e.WarningsAsErrors {
			e.errorCount++
		}
	}
	e.bag.Add(d)
	if e.OnReport != nil {
		e.OnReport(d)
	}
}

// SyntaxError reports a grammar violation at span.
func (e *Engine) SyntaxError(span source.Span, msg string) {
	e.Report(SynUnexpectedToken, SevError, span, msg, nil, nil)
}

// TypeError reports a locally detected type mismatch at span.
func (e *Engine) TypeError(span source.Span, msg string) {
	e.Report(TypeMismatch, SevError, span, msg, nil, nil)
}

// UndefinedVariable reports a use of an undeclared name.
func (e *Engine) UndefinedVariable(span source.Span, name string) {
	e.Report(DeclUndefined, SevError, span, fmt.Sprintf("undeclared name %q", name), nil, nil)
}

// HasErrors reports whether the run has failed. Escalated warnings count.
func (e *Engine) HasErrors() bool { return e.errorCount > 0 }

// HasWarnings reports whether any warning was reported.
func (e *Engine) HasWarnings() bool { return e.warningCount > 0 }

// ErrorCount returns the number of error-level records, plus warnings when
// escalation is enabled.
func (e *Engine) ErrorCount() int { return e.errorCount }

// WarningCount returns the number of warning-level records.
func (e *Engine) WarningCount() int { return e.warningCount }

// Items returns the stored diagnostics in report order.
func (e *Engine) Items() []Diagnostic { return e.bag.Items() }

// Bag exposes the underlying storage (sorting, dedup, merging).
func (e *Engine) Bag() *Bag { return e.bag }

// Clear empties the record list and resets both counts to zero. It is the
// only way to do so; individual records are never removed.
func (e *Engine) Clear() {
	e.bag.Clear()
	e.errorCount = 0
	e.warningCount = 0
}
