package ast

import (
	"notal/internal/source"
)

// SubKind distinguishes functions (which return a value) from procedures.
type SubKind uint8

const (
	SubFunction SubKind = iota
	SubProcedure
)

func (k SubKind) String() string {
	if k == SubProcedure {
		return "procedure"
	}
	return "function"
}

// Param is one formal parameter of a subprogram.
type Param struct {
	Span source.Span
	Name source.StringID
	Type TypeID
}

// Sub is a subprogram: header, local dictionary, and body. Functions
// carry a result type; procedures leave Result as NoTypeID.
type Sub struct {
	Kind     SubKind
	Span     source.Span
	Name     source.StringID
	NameSpan source.Span
	Params   []Param
	Result   TypeID
	Decls    []DeclID
	Body     []StmtID
}

// Subs manages allocation of subprograms.
type Subs struct {
	Arena *Arena[Sub]
}

func NewSubs(capHint uint) *Subs {
	if capHint == 0 {
		capHint = 1 << 4
	}
	return &Subs{Arena: NewArena[Sub](capHint)}
}

func (s *Subs) New(sub Sub) SubID {
	return SubID(s.Arena.Allocate(sub))
}

func (s *Subs) Get(id SubID) *Sub {
	return s.Arena.Get(uint32(id))
}
