package parser

import (
	"slices"

	"notal/internal/diag"
	"notal/internal/source"
	"notal/internal/token"
)

// peek returns the current token without consuming it. The slice is
// EOF-terminated, so walking past the end keeps returning the final EOF.
func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		if len(p.toks) == 0 {
			return token.Token{Kind: token.EOF}
		}
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

// peekAt looks ahead n tokens without consuming.
func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		if len(p.toks) == 0 {
			return token.Token{Kind: token.EOF}
		}
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

// advance consumes the current token and tracks lastSpan for diagnostics.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	if tok.Kind != token.EOF && tok.Kind != token.Unknown {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// getDiagnosticSpan picks the best span for an error at the cursor. At EOF
// (or on a zero-width Unknown) point just after the last consumed token, so
// "expected X" errors land where the token should have been.
func (p *Parser) getDiagnosticSpan() source.Span {
	tok := p.peek()
	if (tok.Kind == token.EOF || tok.Kind == token.Unknown) && tok.Span.Empty() {
		if p.lastSpan.End > 0 {
			return p.lastSpan.ZeroideToEnd()
		}
	}
	return tok.Span
}

// expect consumes the next token if it has kind k. On mismatch it first
// attempts phrase-level recovery via the substitution table; only when that
// fails does it report an error and leave the cursor untouched.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	if tok, ok := p.substitute(k); ok {
		return tok, true
	}
	p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
	return token.Token{Kind: token.Unknown, Span: p.getDiagnosticSpan()}, false
}

// parseIdent expects an identifier and interns it.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		return p.arenas.Intern(tok.Text), tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got '"+p.peek().Text+"'")
	return source.NoStringID, p.getDiagnosticSpan(), false
}

func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) bool {
	return p.report(code, diag.SevError, sp, msg)
}

func (p *Parser) warn(code diag.Code, msg string) bool {
	return p.report(code, diag.SevWarning, p.getDiagnosticSpan(), msg)
}

func (p *Parser) fatal(code diag.Code, msg string) bool {
	return p.report(code, diag.SevFatal, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev >= diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() && sev < diag.SevFatal {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
	return true
}
