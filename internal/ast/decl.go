package ast

import (
	"notal/internal/source"
)

// DeclKind is the closed set of dictionary-section declarations.
type DeclKind uint8

const (
	DeclVar DeclKind = iota
	DeclConst
	DeclRecord
	DeclEnum
	DeclConstrained
)

// Decl is the node header; payload data lives in the per-kind arenas.
type Decl struct {
	Kind    DeclKind
	Span    source.Span
	Payload PayloadID
}

type (
	// DeclVarData covers "a, b, c : integer"; every name shares one type.
	// Constraint is the optional '|' predicate and applies to every name.
	DeclVarData struct {
		Names      []source.StringID
		NameSpans  []source.Span
		Type       TypeID
		Constraint ExprID
	}

	DeclConstData struct {
		Name     source.StringID
		NameSpan source.Span
		Type     TypeID
		Value    ExprID
	}

	RecordField struct {
		Span  source.Span
		Names []source.StringID
		Type  TypeID
	}

	DeclRecordData struct {
		Name     source.StringID
		NameSpan source.Span
		Fields   []RecordField
	}

	EnumMember struct {
		Span source.Span
		Name source.StringID
	}

	DeclEnumData struct {
		Name     source.StringID
		NameSpan source.Span
		Members  []EnumMember
	}

	// DeclConstrainedData is a refinement type: a base type plus a boolean
	// predicate introduced by '|', e.g. "type age : integer | age >= 0".
	DeclConstrainedData struct {
		Name       source.StringID
		NameSpan   source.Span
		Base       TypeID
		Constraint ExprID
	}
)

// Decls manages allocation of declarations.
type Decls struct {
	Arena        *Arena[Decl]
	Vars         *Arena[DeclVarData]
	Consts       *Arena[DeclConstData]
	Records      *Arena[DeclRecordData]
	Enums        *Arena[DeclEnumData]
	Constraineds *Arena[DeclConstrainedData]
}

func NewDecls(capHint uint) *Decls {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Decls{
		Arena:        NewArena[Decl](capHint),
		Vars:         NewArena[DeclVarData](capHint),
		Consts:       NewArena[DeclConstData](capHint / 4),
		Records:      NewArena[DeclRecordData](capHint / 8),
		Enums:        NewArena[DeclEnumData](capHint / 8),
		Constraineds: NewArena[DeclConstrainedData](capHint / 8),
	}
}

func (d *Decls) new(kind DeclKind, span source.Span, payload PayloadID) DeclID {
	return DeclID(d.Arena.Allocate(Decl{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the declaration header with the given ID.
func (d *Decls) Get(id DeclID) *Decl {
	return d.Arena.Get(uint32(id))
}

func (d *Decls) NewVar(span source.Span, data DeclVarData) DeclID {
	payload := d.Vars.Allocate(data)
	return d.new(DeclVar, span, PayloadID(payload))
}

func (d *Decls) Var(id DeclID) (*DeclVarData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclVar {
		return nil, false
	}
	return d.Vars.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewConst(span source.Span, data DeclConstData) DeclID {
	payload := d.Consts.Allocate(data)
	return d.new(DeclConst, span, PayloadID(payload))
}

func (d *Decls) Const(id DeclID) (*DeclConstData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclConst {
		return nil, false
	}
	return d.Consts.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewRecord(span source.Span, data DeclRecordData) DeclID {
	payload := d.Records.Allocate(data)
	return d.new(DeclRecord, span, PayloadID(payload))
}

func (d *Decls) Record(id DeclID) (*DeclRecordData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclRecord {
		return nil, false
	}
	return d.Records.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewEnum(span source.Span, data DeclEnumData) DeclID {
	payload := d.Enums.Allocate(data)
	return d.new(DeclEnum, span, PayloadID(payload))
}

func (d *Decls) Enum(id DeclID) (*DeclEnumData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclEnum {
		return nil, false
	}
	return d.Enums.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewConstrained(span source.Span, data DeclConstrainedData) DeclID {
	payload := d.Constraineds.Allocate(data)
	return d.new(DeclConstrained, span, PayloadID(payload))
}

func (d *Decls) Constrained(id DeclID) (*DeclConstrainedData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclConstrained {
		return nil, false
	}
	return d.Constraineds.Get(uint32(decl.Payload)), true
}
