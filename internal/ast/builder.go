package ast

import (
	"notal/internal/source"
)

type Hints struct{ Decls, Stmts, Exprs, Types, Subs uint }

// Builder bundles the per-kind arenas plus the string interner that
// identifier and string-literal nodes point into. One Builder per parse.
type Builder struct {
	Decls   *Decls
	Stmts   *Stmts
	Exprs   *Exprs
	Types   *Types
	Subs    *Subs
	Strings *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Decls == 0 {
		hints.Decls = 1 << 6
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Types == 0 {
		hints.Types = 1 << 6
	}
	if hints.Subs == 0 {
		hints.Subs = 1 << 4
	}
	return &Builder{
		Decls:   NewDecls(hints.Decls),
		Stmts:   NewStmts(hints.Stmts),
		Exprs:   NewExprs(hints.Exprs),
		Types:   NewTypes(hints.Types),
		Subs:    NewSubs(hints.Subs),
		Strings: source.NewInterner(),
	}
}

// Intern is a shorthand for interning through the builder's table.
func (b *Builder) Intern(s string) source.StringID {
	return b.Strings.Intern(s)
}

// Name resolves an interned identifier back to its text.
func (b *Builder) Name(id source.StringID) string {
	return b.Strings.MustLookup(id)
}
