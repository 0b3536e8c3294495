package lexer

import (
	"notal/internal/diag"
	"notal/internal/source"
	"notal/internal/token"
)

// Options configures a Lexer.
// Keywords is passed in explicitly so the lexer never depends on package
// init order; nil means the language's fixed table.
type Options struct {
	Reporter diag.Reporter
	Keywords token.KeywordTable
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
