package parser

import (
	"strconv"

	"notal/internal/ast"
	"notal/internal/diag"
	"notal/internal/token"
)

// parseBlock parses one indentation block. The block's base column is the
// column of its first token and must be strictly greater than parentCol,
// the column of the construct's introducing keyword; otherwise the body is
// empty. Statements are consumed while the next token's column stays at or
// beyond the base; the first shallower token ends the block unconsumed.
func (p *Parser) parseBlock(parentCol uint32) []ast.StmtID {
	if p.at(token.EOF) || p.atBlockTerminator() {
		return nil
	}
	if p.peek().Column() <= parentCol {
		return nil
	}
	base := p.peek().Column()

	var stmts []ast.StmtID
	for !p.at(token.EOF) && !p.atBlockTerminator() && p.peek().Column() >= base {
		before := p.pos
		id, ok := p.parseStatement()
		if ok {
			stmts = append(stmts, id)
		} else {
			p.resyncStatement()
		}
		if p.pos == before {
			// the offending token is itself a sync token; let the outer
			// level deal with it instead of spinning
			break
		}
	}
	return stmts
}

// atBlockTerminator reports whether the cursor sits on a token that ends
// any statement block regardless of column: section markers and subprogram
// introducers never belong to a body.
func (p *Parser) atBlockTerminator() bool {
	return p.atOr(token.KwProgram, token.KwKamus, token.KwAlgoritma,
		token.KwFunction, token.KwProcedure)
}

// parseStatement dispatches on the current token kind. The choice is
// deterministic: one lookahead token decides everything except the
// traversal loop, which needs the token after the iterator identifier.
func (p *Parser) parseStatement() (ast.StmtID, bool) {
	switch p.peek().Kind {
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwRepeat:
		return p.parseRepeat()
	case token.KwIterate:
		return p.parseIterate()
	case token.KwDepend:
		return p.parseDepend()
	case token.KwInput:
		return p.parseInput()
	case token.KwOutput:
		return p.parseOutput()
	case token.KwAllocate, token.KwDeallocate:
		return p.parseAllocation()
	case token.KwStop:
		tok := p.advance()
		return p.arenas.Stmts.NewStop(tok.Span), true
	case token.KwSkip:
		tok := p.advance()
		return p.arenas.Stmts.NewSkip(tok.Span), true
	case token.KwReturn:
		return p.parseReturn()
	case token.KwElse, token.KwElif:
		p.err(diag.SynOrphanClause,
			"'"+p.peek().Text+"' clause without a matching 'if'")
		return ast.NoStmtID, false
	case token.KwOtherwise:
		p.err(diag.SynOrphanClause, "'otherwise' arm outside a 'depend on' construct")
		return ast.NoStmtID, false
	case token.KwUntil, token.KwThen, token.KwDo, token.KwTimes, token.KwStep,
		token.KwOn, token.KwOf, token.KwTo:
		p.err(diag.SynUnexpectedStatement,
			"unexpected '"+p.peek().Text+"' at the start of a statement")
		return ast.NoStmtID, false
	default:
		if p.at(token.Ident) && p.peekAt(1).Kind == token.KwTraversal {
			return p.parseTraversal()
		}
		return p.parseExprStatement()
	}
}

func (p *Parser) parseExprStatement() (ast.StmtID, bool) {
	start := p.peek().Span
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	span := start.Cover(p.arenas.Exprs.Get(expr).Span)
	return p.arenas.Stmts.NewExprStmt(span, expr), true
}

// parseIf parses a conditional with its elif/else chain. Clause keywords
// must align to exactly the construct's own column; kwCol is that column
// (the original 'if' for the whole chain, since every elif sits there too).
// A clause shallower than kwCol ends this construct unconsumed and is left
// for the enclosing one; only a deeper clause is a misalignment of this
// chain.
func (p *Parser) parseIf() (ast.StmtID, bool) {
	kw := p.advance() // if | elif
	return p.parseIfTail(kw, false)
}

func (p *Parser) parseIfTail(kw token.Token, isElif bool) (ast.StmtID, bool) {
	kwCol := kw.Column()
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwThen, diag.SynExpectThen,
		"expected 'then' after condition"); !ok {
		return ast.NoStmtID, false
	}

	data := ast.StmtIfData{Cond: cond, IsElif: isElif}
	data.Then = p.parseBlock(kwCol)

	switch {
	case p.at(token.KwElif):
		clause := p.peek()
		if clause.Column() < kwCol {
			break // belongs to an enclosing construct
		}
		if clause.Column() > kwCol {
			p.misalignedClause(clause, kw)
			break
		}
		p.advance()
		elif, ok := p.parseIfTail(clause, true)
		if !ok {
			return ast.NoStmtID, false
		}
		data.ElseIf = elif
	case p.at(token.KwElse):
		clause := p.peek()
		if clause.Column() < kwCol {
			break // belongs to an enclosing construct
		}
		if clause.Column() > kwCol {
			p.misalignedClause(clause, kw)
			break
		}
		p.advance()
		data.Else = p.parseBlock(kwCol)
	}

	span := kw.Span.Cover(p.lastSpan)
	return p.arenas.Stmts.NewIf(span, data), true
}

// misalignedClause reports a clause keyword at the wrong column and
// performs panic-mode recovery so the construct itself still yields a node.
func (p *Parser) misalignedClause(clause, construct token.Token) {
	p.errAt(diag.SynMisalignedClause, clause.Span,
		"'"+clause.Text+"' must align with its '"+construct.Text+"' (column "+
			uitoa(construct.Column())+", found column "+uitoa(clause.Column())+")")
	p.advance() // drop the clause keyword, then synchronize
	p.resyncStatement()
}

func (p *Parser) parseWhile() (ast.StmtID, bool) {
	kw := p.advance()
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwDo, diag.SynExpectDo,
		"expected 'do' after 'while' condition"); !ok {
		return ast.NoStmtID, false
	}
	body := p.parseBlock(kw.Column())
	span := kw.Span.Cover(p.lastSpan)
	return p.arenas.Stmts.NewWhile(span, cond, body), true
}

// parseRepeat handles both repeat forms. A count expression on the repeat
// keyword's own line means the counted form ("repeat n times"); a line
// break right after 'repeat' means the post-test form closed by 'until'.
func (p *Parser) parseRepeat() (ast.StmtID, bool) {
	kw := p.advance()

	if !p.at(token.EOF) && p.peek().Line() == kw.Line() {
		count, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		if _, ok := p.expect(token.KwTimes, diag.SynUnexpectedToken,
			"expected 'times' after repeat count"); !ok {
			return ast.NoStmtID, false
		}
		body := p.parseBlock(kw.Column())
		span := kw.Span.Cover(p.lastSpan)
		return p.arenas.Stmts.NewRepeatTimes(span, count, body), true
	}

	body := p.parseBlock(kw.Column())
	if p.at(token.KwUntil) && p.peek().Column() != kw.Column() {
		p.misalignedClause(p.peek(), kw)
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwUntil, diag.SynExpectUntil,
		"expected 'until' to close 'repeat' body"); !ok {
		return ast.NoStmtID, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	span := kw.Span.Cover(p.lastSpan)
	return p.arenas.Stmts.NewRepeatUntil(span, body, cond), true
}

// parseTraversal parses "i traversal [from..to step s]" with an optional
// step. The iterator identifier is the construct's first token, so its
// column anchors the body block.
func (p *Parser) parseTraversal() (ast.StmtID, bool) {
	iterTok := p.advance() // Ident, checked by the dispatcher
	p.advance()            // traversal

	data := ast.StmtTraversalData{
		Iter:     p.arenas.Intern(iterTok.Text),
		IterSpan: iterTok.Span,
	}

	if _, ok := p.expect(token.LBracket, diag.SynExpectRange,
		"expected '[' and a range after 'traversal'"); !ok {
		return ast.NoStmtID, false
	}
	from, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	data.From = from
	if _, ok := p.expect(token.DotDot, diag.SynExpectRange,
		"expected '..' in traversal range"); !ok {
		return ast.NoStmtID, false
	}
	to, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	data.To = to
	if p.at(token.KwStep) {
		p.advance()
		step, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Step = step
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket,
		"expected ']' to close traversal range"); !ok {
		return ast.NoStmtID, false
	}

	data.Body = p.parseBlock(iterTok.Column())
	span := iterTok.Span.Cover(p.lastSpan)
	return p.arenas.Stmts.NewTraversal(span, data), true
}

// parseIterate parses the sentinel-stop loop: a pre-block, a 'stop'
// clause aligned with 'iterate' carrying the exit condition, and a
// post-block.
func (p *Parser) parseIterate() (ast.StmtID, bool) {
	kw := p.advance()
	pre := p.parseBlock(kw.Column())

	if !p.at(token.KwStop) {
		p.err(diag.SynUnexpectedToken, "expected 'stop' clause in 'iterate' loop")
		return ast.NoStmtID, false
	}
	if p.peek().Column() != kw.Column() {
		p.misalignedClause(p.peek(), kw)
		return ast.NoStmtID, false
	}
	p.advance()
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	post := p.parseBlock(kw.Column())

	span := kw.Span.Cover(p.lastSpan)
	return p.arenas.Stmts.NewIterateStop(span, pre, cond, post), true
}

func (p *Parser) parseInput() (ast.StmtID, bool) {
	kw := p.advance()
	targets, ok := p.parseParenExprList("input")
	if !ok {
		return ast.NoStmtID, false
	}
	span := kw.Span.Cover(p.lastSpan)
	return p.arenas.Stmts.NewInput(span, targets), true
}

func (p *Parser) parseOutput() (ast.StmtID, bool) {
	kw := p.advance()
	args, ok := p.parseParenExprList("output")
	if !ok {
		return ast.NoStmtID, false
	}
	span := kw.Span.Cover(p.lastSpan)
	return p.arenas.Stmts.NewOutput(span, args), true
}

func (p *Parser) parseAllocation() (ast.StmtID, bool) {
	kw := p.advance() // allocate | deallocate
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken,
		"expected '(' after '"+kw.Text+"'"); !ok {
		return ast.NoStmtID, false
	}
	target, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen,
		"expected ')' after '"+kw.Text+"' target"); !ok {
		return ast.NoStmtID, false
	}
	span := kw.Span.Cover(p.lastSpan)
	if kw.Kind == token.KwAllocate {
		return p.arenas.Stmts.NewAllocate(span, target), true
	}
	return p.arenas.Stmts.NewDeallocate(span, target), true
}

// parseReturn parses 'return' with an optional value on the same line.
func (p *Parser) parseReturn() (ast.StmtID, bool) {
	kw := p.advance()
	value := ast.NoExprID
	if !p.at(token.EOF) && p.peek().Line() == kw.Line() && p.atExprStart() {
		v, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		value = v
	}
	span := kw.Span.Cover(p.lastSpan)
	return p.arenas.Stmts.NewReturn(span, value), true
}

// parseParenExprList parses "( expr {, expr} )" for input/output.
func (p *Parser) parseParenExprList(what string) ([]ast.ExprID, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken,
		"expected '(' after '"+what+"'"); !ok {
		return nil, false
	}
	var list []ast.ExprID
	if !p.at(token.RParen) {
		for {
			expr, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			list = append(list, expr)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen,
		"expected ')' to close '"+what+"' list"); !ok {
		return nil, false
	}
	return list, true
}

func uitoa(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
