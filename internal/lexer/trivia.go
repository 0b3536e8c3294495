package lexer

import (
	"notal/internal/diag"
	"notal/internal/token"
)

// skipTrivia consumes whitespace and brace-delimited comments, including
// multi-line ones. An unterminated comment swallows the rest of the input
// and is returned as a single Unknown token.
func (lx *Lexer) skipTrivia() *token.Token {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			lx.cursor.Bump()
			continue
		}

		if b == '{' {
			start := lx.cursor.Mark()
			lx.cursor.Bump() // '{'
			closed := false
			for !lx.cursor.EOF() {
				if lx.cursor.Bump() == '}' {
					closed = true
					break
				}
			}
			if !closed {
				sp := lx.cursor.SpanFrom(start)
				const msg = "unterminated comment"
				lx.report(diag.LexUnterminatedComment, sp, msg)
				t := lx.emit(token.Unknown, sp, msg)
				return &t
			}
			continue
		}

		break
	}
	return nil
}
