package parser

import (
	"notal/internal/diag"
	"notal/internal/token"
)

// syncSet is the fixed panic-mode synchronization set: the tokens that can
// legally start a top-level section, a structured statement, or a
// subprogram. Panic-mode recovery discards everything up to (but not
// including) the first member, bounding the damage from one error to the
// remainder of the current statement or section.
var syncSet = map[token.Kind]struct{}{
	token.KwProgram:   {},
	token.KwKamus:     {},
	token.KwAlgoritma: {},
	token.KwIf:        {},
	token.KwWhile:     {},
	token.KwRepeat:    {},
	token.KwIterate:   {},
	token.KwDepend:    {},
	token.KwFunction:  {},
	token.KwProcedure: {},
}

// resyncStatement performs panic-mode recovery: discard tokens until the
// cursor sits on a synchronization token or EOF. The synchronizing token
// itself is not consumed.
func (p *Parser) resyncStatement() {
	for !p.at(token.EOF) {
		if _, ok := syncSet[p.peek().Kind]; ok {
			return
		}
		p.advance()
	}
}

// resyncTop recovers after a broken subprogram: skip to the next
// function/procedure keyword or EOF.
func (p *Parser) resyncTop() {
	for !p.atOr(token.EOF, token.KwFunction, token.KwProcedure) {
		p.advance()
	}
}

// substitutions maps an expected token kind to the mistaken kinds a writer
// plausibly typed in its place. Phrase-level recovery consumes such a
// substitute with a warning instead of escalating to panic mode.
var substitutions = map[token.Kind][]token.Kind{
	token.KwThen:  {token.KwDo},
	token.KwDo:    {token.KwThen},
	token.Colon:   {token.Assign, token.Eq},
	token.Assign:  {token.Eq},
	token.KwUntil: {token.KwDo},
}

// substitute attempts phrase-level recovery for a missing token of kind
// want. If the current token is a plausible slip it is consumed with a
// warning and parsing proceeds as if the expected token had been present.
func (p *Parser) substitute(want token.Kind) (token.Token, bool) {
	subs, ok := substitutions[want]
	if !ok {
		return token.Token{}, false
	}
	got := p.peek()
	for _, s := range subs {
		if got.Kind == s {
			p.report(diag.SynTokenSubstituted, diag.SevWarning, got.Span,
				"expected '"+want.String()+"', found '"+got.Text+"' (treated as '"+want.String()+"')")
			p.advance()
			return got, true
		}
	}
	return token.Token{}, false
}
