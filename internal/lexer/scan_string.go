package lexer

import (
	"notal/internal/diag"
	"notal/internal/token"
)

// scanString scans a quoted literal. Single and double quotes both work;
// the terminator must match the opener. A newline or EOF before the
// terminator yields an Unknown token.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump() // opening quote

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return lx.emit(token.StringLit, sp, lx.text(sp))
		}
		if b == '\\' {
			// consume the escape pair; deep validation is not the lexer's job
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			const msg = "unterminated string literal"
			lx.report(diag.LexUnterminatedString, sp, msg)
			return lx.emit(token.Unknown, sp, msg)
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	const msg = "unterminated string literal"
	lx.report(diag.LexUnterminatedString, sp, msg)
	return lx.emit(token.Unknown, sp, msg)
}
