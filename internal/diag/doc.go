// Package diag defines the diagnostic model shared by the lexer and parser.
//
// Diagnostic is the central record: Severity (Info..Fatal), Category
// (Lexical..Constraint, derived from the Code range), Code with a stable
// string form, a message, a primary span, and optional notes and
// suggestions.
//
// Producers emit through a Reporter so they stay decoupled from storage.
// Engine is the per-run accumulator: it stores records, tracks error and
// warning counts (optionally escalating warnings to errors), and invokes a
// synchronous callback per report. Bag is the raw storage with sorting and
// deduplication.
//
// The package performs no formatting or IO; rendering lives in
// internal/diagfmt. Keep the data model deterministic and side-effect free.
package diag
