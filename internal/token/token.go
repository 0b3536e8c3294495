package token

import (
	"notal/internal/source"
)

// Token represents a single source token with its location.
// Pos is the resolved 1-based line/column of the token's first byte; the
// off-side parser consults it for every token, so it is computed once at
// lex time instead of on demand.
type Token struct {
	Kind Kind
	Span source.Span
	Pos  source.LineCol
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, string, or
// null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, RealLit, StringLit, BoolLit, NullLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwProgram, KwKamus, KwAlgoritma,
		KwIf, KwThen, KwElif, KwElse,
		KwWhile, KwDo, KwRepeat, KwUntil, KwTimes, KwTraversal, KwStep,
		KwIterate, KwStop, KwSkip,
		KwDepend, KwOn, KwOtherwise,
		KwInput, KwOutput, KwAllocate, KwDeallocate, KwReturn,
		KwConstant, KwType, KwArray, KwOf, KwPointer, KwTo,
		KwFunction, KwProcedure,
		KwDiv, KwMod, KwAnd, KwOr, KwXor, KwNot:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Assign, Arrow, Plus, Minus, Star, Slash, Caret, Amp,
		Eq, NotEq, Lt, LtEq, Gt, GtEq,
		LParen, RParen, LBracket, RBracket,
		Colon, Comma, Dot, DotDot, Pipe:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Column returns the 1-based column of the token's first character.
func (t Token) Column() uint32 { return t.Pos.Col }

// Line returns the 1-based line of the token's first character.
func (t Token) Line() uint32 { return t.Pos.Line }
