package lexer

import (
	"notal/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies it against the
// keyword table (case-sensitive, longest match by construction). The
// reserved literal spellings true/false/NULL come back as literal kinds.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		return lx.emit(token.Unknown, lx.cursor.SpanFrom(start), "invalid identifier start")
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if k, ok := lx.opts.Keywords.Lookup(text); ok {
		return lx.emit(k, sp, text)
	}
	return lx.emit(token.Ident, sp, text)
}
