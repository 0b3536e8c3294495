package ast

import (
	"notal/internal/source"
)

// TypeKind is the closed set of type-expression variants as written in
// source. These are syntax nodes, not resolved types.
type TypeKind uint8

const (
	TypeName TypeKind = iota
	TypeArrayStatic
	TypeArrayDyn
	TypePointer
)

// Type is the node header; payload data lives in the per-kind arenas.
type Type struct {
	Kind    TypeKind
	Span    source.Span
	Payload PayloadID
}

type (
	TypeNameData struct{ Name source.StringID }

	// ArrayBound is one "lo..hi" dimension of a static array.
	ArrayBound struct {
		Lo ExprID
		Hi ExprID
	}

	TypeArrayStaticData struct {
		Bounds []ArrayBound
		Elem   TypeID
	}

	TypeArrayDynData struct{ Elem TypeID }

	TypePointerData struct{ Elem TypeID }
)

// Types manages allocation of type expressions.
type Types struct {
	Arena        *Arena[Type]
	Names        *Arena[TypeNameData]
	ArrayStatics *Arena[TypeArrayStaticData]
	ArrayDyns    *Arena[TypeArrayDynData]
	Pointers     *Arena[TypePointerData]
}

func NewTypes(capHint uint) *Types {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Types{
		Arena:        NewArena[Type](capHint),
		Names:        NewArena[TypeNameData](capHint),
		ArrayStatics: NewArena[TypeArrayStaticData](capHint / 4),
		ArrayDyns:    NewArena[TypeArrayDynData](capHint / 8),
		Pointers:     NewArena[TypePointerData](capHint / 8),
	}
}

func (t *Types) new(kind TypeKind, span source.Span, payload PayloadID) TypeID {
	return TypeID(t.Arena.Allocate(Type{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the type header with the given ID.
func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}

func (t *Types) NewName(span source.Span, name source.StringID) TypeID {
	payload := t.Names.Allocate(TypeNameData{Name: name})
	return t.new(TypeName, span, PayloadID(payload))
}

func (t *Types) Name(id TypeID) (*TypeNameData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypeName {
		return nil, false
	}
	return t.Names.Get(uint32(typ.Payload)), true
}

func (t *Types) NewArrayStatic(span source.Span, bounds []ArrayBound, elem TypeID) TypeID {
	payload := t.ArrayStatics.Allocate(TypeArrayStaticData{Bounds: bounds, Elem: elem})
	return t.new(TypeArrayStatic, span, PayloadID(payload))
}

func (t *Types) ArrayStatic(id TypeID) (*TypeArrayStaticData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypeArrayStatic {
		return nil, false
	}
	return t.ArrayStatics.Get(uint32(typ.Payload)), true
}

func (t *Types) NewArrayDyn(span source.Span, elem TypeID) TypeID {
	payload := t.ArrayDyns.Allocate(TypeArrayDynData{Elem: elem})
	return t.new(TypeArrayDyn, span, PayloadID(payload))
}

func (t *Types) ArrayDyn(id TypeID) (*TypeArrayDynData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypeArrayDyn {
		return nil, false
	}
	return t.ArrayDyns.Get(uint32(typ.Payload)), true
}

func (t *Types) NewPointer(span source.Span, elem TypeID) TypeID {
	payload := t.Pointers.Allocate(TypePointerData{Elem: elem})
	return t.new(TypePointer, span, PayloadID(payload))
}

func (t *Types) Pointer(id TypeID) (*TypePointerData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypePointer {
		return nil, false
	}
	return t.Pointers.Get(uint32(typ.Payload)), true
}
