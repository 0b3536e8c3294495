package parser

import (
	"notal/internal/ast"
	"notal/internal/diag"
	"notal/internal/token"
)

// parseDepend parses the multi-way branch:
//
//	depend on (subject {, subject})
//	    cond {, cond} : body
//	    otherwise : body
//
// Classification happens here, not downstream: if every arm condition
// across the whole construct is a literal the dispatch is dense (a value
// table); one non-literal condition anywhere forces the chain form.
func (p *Parser) parseDepend() (ast.StmtID, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.KwOn, diag.SynUnexpectedToken,
		"expected 'on' after 'depend'"); !ok {
		return ast.NoStmtID, false
	}

	var data ast.StmtDependData
	if p.at(token.LParen) {
		p.advance()
		for {
			subj, ok := p.parseExpr()
			if !ok {
				return ast.NoStmtID, false
			}
			data.Subjects = append(data.Subjects, subj)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen,
			"expected ')' after 'depend on' subjects"); !ok {
			return ast.NoStmtID, false
		}
	} else {
		subj, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Subjects = append(data.Subjects, subj)
	}

	if p.at(token.EOF) || p.atBlockTerminator() || p.peek().Column() <= kw.Column() {
		p.err(diag.SynExpectCaseArm, "expected at least one arm in 'depend on'")
		return ast.NoStmtID, false
	}
	armsBase := p.peek().Column()

	allLiteral := true
	for !p.at(token.EOF) && !p.atBlockTerminator() && p.peek().Column() >= armsBase {
		before := p.pos
		if p.at(token.KwOtherwise) {
			otherwiseTok := p.advance()
			if _, ok := p.expect(token.Colon, diag.SynExpectColon,
				"expected ':' after 'otherwise'"); !ok {
				p.resyncStatement()
				break
			}
			data.Otherwise = p.parseBlock(otherwiseTok.Column())
			break // otherwise closes the construct
		}

		arm, ok := p.parseDependArm(&allLiteral)
		if ok {
			data.Arms = append(data.Arms, arm)
		} else {
			p.resyncStatement()
		}
		if p.pos == before {
			break
		}
	}

	if len(data.Arms) == 0 && data.Otherwise == nil {
		p.err(diag.SynExpectCaseArm, "'depend on' has no arms")
		return ast.NoStmtID, false
	}

	data.Dispatch = ast.DependChain
	if len(data.Arms) > 0 && allLiteral {
		data.Dispatch = ast.DependDense
	}

	span := kw.Span.Cover(p.lastSpan)
	return p.arenas.Stmts.NewDepend(span, data), true
}

func (p *Parser) parseDependArm(allLiteral *bool) (ast.DependArm, bool) {
	armTok := p.peek()
	arm := ast.DependArm{Span: armTok.Span}
	for {
		cond, ok := p.parseExpr()
		if !ok {
			return ast.DependArm{}, false
		}
		if !p.arenas.Exprs.IsLiteral(cond) {
			*allLiteral = false
		}
		arm.Conds = append(arm.Conds, cond)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon,
		"expected ':' after arm condition"); !ok {
		return ast.DependArm{}, false
	}
	arm.Body = p.parseBlock(armTok.Column())
	arm.Span = armTok.Span.Cover(p.lastSpan)
	return arm, true
}
