package parser

import (
	"notal/internal/ast"
	"notal/internal/diag"
	"notal/internal/source"
	"notal/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser holds the state for one file. It walks a fully materialized token
// slice with an integer cursor; both recovery strategies move that cursor.
// One Parser (and one reporter) per parse run, never shared.
type Parser struct {
	toks     []token.Token
	pos      int
	arenas   *ast.Builder
	opts     Options
	lastSpan source.Span
}

// Parse consumes an EOF-terminated token sequence and produces the program
// tree. A nil program means the top-level skeleton could not be established;
// the failure is still recorded through the reporter. ok is false whenever
// any error-severity diagnostic was reported.
func Parse(toks []token.Token, arenas *ast.Builder, opts Options) (*ast.Program, bool) {
	p := Parser{
		toks:   toks,
		arenas: arenas,
		opts:   opts,
	}
	prog := p.parseProgram()
	return prog, prog != nil && p.opts.CurrentErrors == 0
}

// parseProgram establishes the fixed section order: program header, optional
// kamus, algoritma, then any subprograms. Failure to establish the skeleton
// is the one unrecoverable case and yields nil.
func (p *Parser) parseProgram() *ast.Program {
	if p.at(token.EOF) {
		p.fatal(diag.SynEmptyProgram, "empty input: expected a 'program' header")
		return nil
	}

	headTok, ok := p.expect(token.KwProgram, diag.SynExpectSection, "expected 'program' header")
	if !ok {
		return nil
	}

	prog := &ast.Program{Span: headTok.Span}
	if nameTok, ok := p.expect(token.Ident, diag.SynExpectProgramName, "expected program name after 'program'"); ok {
		prog.Name = p.arenas.Intern(nameTok.Text)
		prog.NameSpan = nameTok.Span
	}

	if p.at(token.KwKamus) {
		kamusTok := p.advance()
		prog.Decls = p.parseDeclBlock(kamusTok.Column())
	}

	algTok, ok := p.expect(token.KwAlgoritma, diag.SynExpectSection, "expected 'algoritma' section")
	if !ok {
		// no algorithm section at all: the skeleton does not exist
		return nil
	}
	prog.Body = p.parseBlock(algTok.Column())

	for !p.at(token.EOF) {
		before := p.pos
		switch p.peek().Kind {
		case token.KwFunction, token.KwProcedure:
			if id, ok := p.parseSub(); ok {
				prog.Subs = append(prog.Subs, id)
			} else {
				p.resyncTop()
			}
		default:
			p.err(diag.SynUnexpectedToken,
				"unexpected token '"+p.peek().Text+"' after algorithm block")
			p.resyncTop()
		}
		if p.pos == before {
			p.advance() // guarantee progress
		}
	}

	prog.Span = prog.Span.Cover(p.lastSpan)
	return prog
}

// parseSub parses one function or procedure declaration with its own
// optional kamus and mandatory algoritma sections.
func (p *Parser) parseSub() (ast.SubID, bool) {
	kw := p.advance() // function | procedure
	kind := ast.SubFunction
	if kw.Kind == token.KwProcedure {
		kind = ast.SubProcedure
	}

	sub := ast.Sub{Kind: kind, Span: kw.Span}
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier,
		"expected "+kind.String()+" name")
	if !ok {
		return ast.NoSubID, false
	}
	sub.Name = p.arenas.Intern(nameTok.Text)
	sub.NameSpan = nameTok.Span

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken,
		"expected '(' after "+kind.String()+" name"); !ok {
		return ast.NoSubID, false
	}
	if !p.at(token.RParen) {
		for {
			param, ok := p.parseParam()
			if !ok {
				return ast.NoSubID, false
			}
			sub.Params = append(sub.Params, param)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen,
		"expected ')' after parameter list"); !ok {
		return ast.NoSubID, false
	}

	if kind == ast.SubFunction {
		if _, ok := p.expect(token.Arrow, diag.SynUnexpectedToken,
			"expected '->' and a result type after function parameters"); !ok {
			return ast.NoSubID, false
		}
		result, ok := p.parseType()
		if !ok {
			return ast.NoSubID, false
		}
		sub.Result = result
	}

	if p.at(token.KwKamus) {
		kamusTok := p.advance()
		sub.Decls = p.parseDeclBlock(kamusTok.Column())
	}
	algTok, ok := p.expect(token.KwAlgoritma, diag.SynExpectSection,
		"expected 'algoritma' section in "+kind.String()+" body")
	if !ok {
		return ast.NoSubID, false
	}
	sub.Body = p.parseBlock(algTok.Column())

	sub.Span = kw.Span.Cover(p.lastSpan)
	return p.arenas.Subs.New(sub), true
}

func (p *Parser) parseParam() (ast.Param, bool) {
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
	if !ok {
		return ast.Param{}, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name"); !ok {
		return ast.Param{}, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.Param{}, false
	}
	return ast.Param{
		Span: nameTok.Span.Cover(p.lastSpan),
		Name: p.arenas.Intern(nameTok.Text),
		Type: typ,
	}, true
}
