package parser

import (
	"notal/internal/ast"
	"notal/internal/token"
)

// Precedence levels for the climbing loop, lowest binding first.
const (
	precAssign = iota + 1
	precOr
	precXor
	precAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precPower
)

type binOpInfo struct {
	prec       int
	rightAssoc bool
	op         ast.ExprBinaryOp
}

// binOps maps a token kind to its binding power and AST operator. The
// assignment operator also lives here (lowest, right-associative) so the
// climbing loop handles the whole ladder uniformly; the loop special-cases
// its node construction and target validation.
var binOps = map[token.Kind]binOpInfo{
	token.Assign: {precAssign, true, 0},

	token.KwOr:  {precOr, false, ast.ExprBinaryOr},
	token.KwXor: {precXor, false, ast.ExprBinaryXor},
	token.KwAnd: {precAnd, false, ast.ExprBinaryAnd},

	token.Eq:    {precEquality, false, ast.ExprBinaryEq},
	token.NotEq: {precEquality, false, ast.ExprBinaryNotEq},

	token.Lt:   {precRelational, false, ast.ExprBinaryLess},
	token.LtEq: {precRelational, false, ast.ExprBinaryLessEq},
	token.Gt:   {precRelational, false, ast.ExprBinaryGreater},
	token.GtEq: {precRelational, false, ast.ExprBinaryGreaterEq},

	token.Plus:  {precAdditive, false, ast.ExprBinaryAdd},
	token.Minus: {precAdditive, false, ast.ExprBinarySub},
	token.Amp:   {precAdditive, false, ast.ExprBinaryConcat},

	token.Star:  {precMultiplicative, false, ast.ExprBinaryMul},
	token.Slash: {precMultiplicative, false, ast.ExprBinaryDiv},
	token.KwDiv: {precMultiplicative, false, ast.ExprBinaryIntDiv},
	token.KwMod: {precMultiplicative, false, ast.ExprBinaryMod},

	token.Caret: {precPower, true, ast.ExprBinaryPow},
}
