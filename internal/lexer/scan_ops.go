package lexer

import (
	"fmt"

	"notal/internal/diag"
	"notal/internal/token"
)

// scanOperatorOrPunct scans operators greedily: two-byte sequences first
// ('<-' over '<', '<=' over '<', '..' over '.', '->' over '-'), then
// single bytes.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return lx.emit(k, sp, lx.text(sp))
	}

	switch {
	case lx.try2('<', '-'):
		return emit(token.Assign)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('<', '>'):
		return emit(token.NotEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('.', '.'):
		return emit(token.DotDot)
	}

	// a multi-byte rune lands here only when it cannot start an identifier;
	// consume it whole so one bad character yields one Unknown token
	if lx.cursor.Peek() >= utf8RuneSelf {
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		msg := fmt.Sprintf("unknown character %q", lx.text(sp))
		lx.report(diag.LexUnknownChar, sp, msg)
		return lx.emit(token.Unknown, sp, msg)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '^':
		return emit(token.Caret)
	case '&':
		return emit(token.Amp)
	case '=':
		return emit(token.Eq)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case ':':
		return emit(token.Colon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '|':
		return emit(token.Pipe)
	default:
		sp := lx.cursor.SpanFrom(start)
		msg := fmt.Sprintf("unknown character %q", lx.text(sp))
		lx.report(diag.LexUnknownChar, sp, msg)
		return lx.emit(token.Unknown, sp, msg)
	}
}
