package parser

import (
	"strconv"
	"strings"

	"notal/internal/ast"
	"notal/internal/diag"
	"notal/internal/source"
	"notal/internal/token"
)

// parseExpr parses one expression via precedence climbing.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinary(precAssign)
}

// parseBinary is the climbing loop: parse a unary operand, then fold in
// binary operators whose precedence is at least minPrec. Right-associative
// operators recurse at their own level, left-associative one above.
func (p *Parser) parseBinary(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		info, isOp := binOps[p.peek().Kind]
		if !isOp || info.prec < minPrec {
			return left, true
		}
		opTok := p.advance()
		nextMin := info.prec + 1
		if info.rightAssoc {
			nextMin = info.prec
		}
		right, ok := p.parseBinary(nextMin)
		if !ok {
			return ast.NoExprID, false
		}
		span := p.exprSpan(left).Cover(p.exprSpan(right))
		if opTok.Kind == token.Assign {
			left, ok = p.makeAssign(opTok, left, right)
			if !ok {
				return ast.NoExprID, false
			}
			continue
		}
		left = p.arenas.Exprs.NewBinary(span, info.op, left, right)
	}
}

// makeAssign validates the assignment target. Only a bare variable
// reference or a field access may be assigned; anything else is rejected
// at the operator's position, not at the start of the malformed left side.
func (p *Parser) makeAssign(opTok token.Token, target, value ast.ExprID) (ast.ExprID, bool) {
	span := p.exprSpan(target).Cover(p.exprSpan(value))
	switch p.arenas.Exprs.Get(target).Kind {
	case ast.ExprIdent:
		return p.arenas.Exprs.NewAssign(span, target, value), true
	case ast.ExprField:
		field, _ := p.arenas.Exprs.Field(target)
		return p.arenas.Exprs.NewFieldAssign(span, field.Object, field.Field, value), true
	default:
		p.errAt(diag.SynBadAssignTarget, opTok.Span,
			"left side of '<-' must be a variable or a field")
		return ast.NoExprID, false
	}
}

func (p *Parser) parseUnary() (ast.ExprID, bool) {
	if p.atOr(token.KwNot, token.Minus) {
		opTok := p.advance()
		op := ast.ExprUnaryMinus
		if opTok.Kind == token.KwNot {
			op = ast.ExprUnaryNot
		}
		operand, ok := p.parseUnary()
		if !ok {
			return ast.NoExprID, false
		}
		span := opTok.Span.Cover(p.exprSpan(operand))
		return p.arenas.Exprs.NewUnary(span, op, operand), true
	}
	return p.parsePostfix()
}

// parsePostfix folds call, index, and field-access suffixes onto a primary.
func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		switch p.peek().Kind {
		case token.LParen:
			p.advance()
			var args []ast.ExprID
			if !p.at(token.RParen) {
				for {
					arg, ok := p.parseExpr()
					if !ok {
						return ast.NoExprID, false
					}
					args = append(args, arg)
					if !p.at(token.Comma) {
						break
					}
					p.advance()
				}
			}
			closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen,
				"expected ')' to close argument list")
			if !ok {
				return ast.NoExprID, false
			}
			expr = p.arenas.Exprs.NewCall(p.exprSpan(expr).Cover(closeTok.Span), expr, args)
		case token.LBracket:
			p.advance()
			var indices []ast.ExprID
			for {
				idx, ok := p.parseExpr()
				if !ok {
					return ast.NoExprID, false
				}
				indices = append(indices, idx)
				if !p.at(token.Comma) {
					break
				}
				p.advance()
			}
			closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket,
				"expected ']' to close index")
			if !ok {
				return ast.NoExprID, false
			}
			expr = p.arenas.Exprs.NewIndex(p.exprSpan(expr).Cover(closeTok.Span), expr, indices)
		case token.Dot:
			p.advance()
			name, nameSpan, ok := p.parseIdent()
			if !ok {
				return ast.NoExprID, false
			}
			expr = p.arenas.Exprs.NewField(p.exprSpan(expr).Cover(nameSpan), expr, name)
		default:
			return expr, true
		}
	}
}

func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			p.errAt(diag.LexBadNumber, tok.Span, "integer literal out of range")
		}
		return p.arenas.Exprs.NewLiteral(tok.Span,
			ast.LitValue{Kind: ast.LitInt, Int: v}), true
	case token.RealLit:
		p.advance()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.errAt(diag.LexBadNumber, tok.Span, "real literal out of range")
		}
		return p.arenas.Exprs.NewLiteral(tok.Span,
			ast.LitValue{Kind: ast.LitReal, Real: v}), true
	case token.StringLit:
		p.advance()
		str := p.arenas.Intern(unquote(tok.Text))
		return p.arenas.Exprs.NewLiteral(tok.Span,
			ast.LitValue{Kind: ast.LitString, Str: str}), true
	case token.BoolLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span,
			ast.LitValue{Kind: ast.LitBool, Bool: tok.Text == "true"}), true
	case token.NullLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span,
			ast.LitValue{Kind: ast.LitNull}), true
	case token.Ident:
		p.advance()
		return p.arenas.Exprs.NewIdent(tok.Span, p.arenas.Intern(tok.Text)), true
	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen,
			"expected ')' to close grouped expression")
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewGroup(tok.Span.Cover(closeTok.Span), inner), true
	default:
		p.err(diag.SynExpectExpression, "expected expression, got '"+tok.Text+"'")
		return ast.NoExprID, false
	}
}

// atExprStart reports whether the current token can begin an expression.
func (p *Parser) atExprStart() bool {
	switch p.peek().Kind {
	case token.Ident, token.IntLit, token.RealLit, token.StringLit,
		token.BoolLit, token.NullLit, token.LParen, token.Minus, token.KwNot:
		return true
	default:
		return false
	}
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	return p.arenas.Exprs.Get(id).Span
}

// unquote strips the delimiters off a string literal and resolves the
// escape pairs the lexer passed through verbatim.
func unquote(lexeme string) string {
	if len(lexeme) < 2 {
		return lexeme
	}
	body := lexeme[1 : len(lexeme)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			b.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(body[i])
		}
	}
	return b.String()
}
