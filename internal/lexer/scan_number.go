package lexer

import (
	"notal/internal/diag"
	"notal/internal/token"
)

// scanNumber scans an integer, or a real when a '.' is followed by a digit.
// A trailing dot without a digit is not consumed ("3." lexes as 3 then '.'),
// and "1..5" keeps the range operator intact.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.isNumberAfterDot() {
		lx.cursor.Bump() // '.'
		kind = token.RealLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// optional exponent on reals and integers alike: 1e9, 2.5e-3
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// "1e" followed by garbage: the 'e' belongs to the next token
			lx.cursor.Reset(mark)
		} else {
			kind = token.RealLit
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	// a digit glued to an identifier start is one malformed token: 12abc
	if isIdentStartByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp = lx.cursor.SpanFrom(start)
		msg := "malformed number " + quote(lx.text(sp))
		lx.report(diag.LexBadNumber, sp, msg)
		return lx.emit(token.Unknown, sp, msg)
	}

	return lx.emit(kind, sp, text)
}

func quote(s string) string {
	return "'" + s + "'"
}
