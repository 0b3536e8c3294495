// Package token defines lexical token kinds for the notal frontend.
// Invariants:
//   - Token.Text is the exact source slice for every kind except Unknown,
//     where it carries the lexer's diagnostic message.
//   - Token.Span matches the consumed bytes exactly (Start..End).
//   - Token.Pos is derived from Span.Start against the file's line index.
//   - Built-in type names (integer, real, string, boolean, character) are
//     identifiers; they are recognized by later stages, not the lexer.
package token
