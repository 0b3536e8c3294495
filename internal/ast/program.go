package ast

import (
	"notal/internal/source"
)

// Program is the root of one parsed source file: the program header, the
// kamus (dictionary) declarations, the algoritma body, and any
// subprograms declared after it.
type Program struct {
	Span     source.Span
	Name     source.StringID
	NameSpan source.Span
	Decls    []DeclID
	Body     []StmtID
	Subs     []SubID
}
