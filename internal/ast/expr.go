package ast

import (
	"notal/internal/source"
)

// ExprKind is the closed set of expression variants.
type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLit
	ExprBinary
	ExprUnary
	ExprGroup
	ExprAssign
	ExprFieldAssign
	ExprCall
	ExprField
	ExprIndex
)

// ExprBinaryOp enumerates binary operators.
type ExprBinaryOp uint8

const (
	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryIntDiv
	ExprBinaryMod
	ExprBinaryPow
	ExprBinaryConcat
	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq
	ExprBinaryAnd
	ExprBinaryOr
	ExprBinaryXor
)

var binaryOpNames = [...]string{
	ExprBinaryAdd:       "+",
	ExprBinarySub:       "-",
	ExprBinaryMul:       "*",
	ExprBinaryDiv:       "/",
	ExprBinaryIntDiv:    "div",
	ExprBinaryMod:       "mod",
	ExprBinaryPow:       "^",
	ExprBinaryConcat:    "&",
	ExprBinaryEq:        "=",
	ExprBinaryNotEq:     "<>",
	ExprBinaryLess:      "<",
	ExprBinaryLessEq:    "<=",
	ExprBinaryGreater:   ">",
	ExprBinaryGreaterEq: ">=",
	ExprBinaryAnd:       "and",
	ExprBinaryOr:        "or",
	ExprBinaryXor:       "xor",
}

func (op ExprBinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

// ExprUnaryOp enumerates unary operators.
type ExprUnaryOp uint8

const (
	ExprUnaryMinus ExprUnaryOp = iota
	ExprUnaryNot
)

func (op ExprUnaryOp) String() string {
	if op == ExprUnaryNot {
		return "not"
	}
	return "-"
}

// LitKind is the closed literal-value variant, decided at lex/parse time
// from the literal token's kind. No runtime type inspection is needed.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitReal
	LitString
	LitBool
	LitNull
)

// LitValue holds one literal. Only the field matching Kind is meaningful;
// Str is interned.
type LitValue struct {
	Kind LitKind
	Int  int64
	Real float64
	Str  source.StringID
	Bool bool
}

// Expr is the node header; payload data lives in the per-kind arenas.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type (
	ExprIdentData  struct{ Name source.StringID }
	ExprLitData    struct{ Value LitValue }
	ExprBinaryData struct {
		Op          ExprBinaryOp
		Left, Right ExprID
	}
	ExprUnaryData struct {
		Op      ExprUnaryOp
		Operand ExprID
	}
	ExprGroupData  struct{ Inner ExprID }
	ExprAssignData struct {
		Target ExprID // always ExprIdent
		Value  ExprID
	}
	ExprFieldAssignData struct {
		Object ExprID
		Field  source.StringID
		Value  ExprID
	}
	ExprCallData struct {
		Callee ExprID
		Args   []ExprID
	}
	ExprFieldData struct {
		Object ExprID
		Field  source.StringID
	}
	ExprIndexData struct {
		Object  ExprID
		Indices []ExprID
	}
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena        *Arena[Expr]
	Idents       *Arena[ExprIdentData]
	Literals     *Arena[ExprLitData]
	Binaries     *Arena[ExprBinaryData]
	Unaries      *Arena[ExprUnaryData]
	Groups       *Arena[ExprGroupData]
	Assigns      *Arena[ExprAssignData]
	FieldAssigns *Arena[ExprFieldAssignData]
	Calls        *Arena[ExprCallData]
	Fields       *Arena[ExprFieldData]
	Indices      *Arena[ExprIndexData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:        NewArena[Expr](capHint),
		Idents:       NewArena[ExprIdentData](capHint),
		Literals:     NewArena[ExprLitData](capHint),
		Binaries:     NewArena[ExprBinaryData](capHint),
		Unaries:      NewArena[ExprUnaryData](capHint / 4),
		Groups:       NewArena[ExprGroupData](capHint / 4),
		Assigns:      NewArena[ExprAssignData](capHint / 4),
		FieldAssigns: NewArena[ExprFieldAssignData](capHint / 8),
		Calls:        NewArena[ExprCallData](capHint / 4),
		Fields:       NewArena[ExprFieldData](capHint / 8),
		Indices:      NewArena[ExprIndexData](capHint / 8),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the expression header with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// IsLiteral reports whether id refers to a literal expression.
func (e *Exprs) IsLiteral(id ExprID) bool {
	expr := e.Get(id)
	return expr != nil && expr.Kind == ExprLit
}

func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewLiteral(span source.Span, value LitValue) ExprID {
	payload := e.Literals.Allocate(ExprLitData{Value: value})
	return e.new(ExprLit, span, PayloadID(payload))
}

func (e *Exprs) Literal(id ExprID) (*ExprLitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprGroup, span, PayloadID(payload))
}

func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewAssign(span source.Span, target, value ExprID) ExprID {
	payload := e.Assigns.Allocate(ExprAssignData{Target: target, Value: value})
	return e.new(ExprAssign, span, PayloadID(payload))
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewFieldAssign(span source.Span, object ExprID, field source.StringID, value ExprID) ExprID {
	payload := e.FieldAssigns.Allocate(ExprFieldAssignData{Object: object, Field: field, Value: value})
	return e.new(ExprFieldAssign, span, PayloadID(payload))
}

func (e *Exprs) FieldAssign(id ExprID) (*ExprFieldAssignData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprFieldAssign {
		return nil, false
	}
	return e.FieldAssigns.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: args})
	return e.new(ExprCall, span, PayloadID(payload))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewField(span source.Span, object ExprID, field source.StringID) ExprID {
	payload := e.Fields.Allocate(ExprFieldData{Object: object, Field: field})
	return e.new(ExprField, span, PayloadID(payload))
}

func (e *Exprs) Field(id ExprID) (*ExprFieldData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprField {
		return nil, false
	}
	return e.Fields.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewIndex(span source.Span, object ExprID, indices []ExprID) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Object: object, Indices: indices})
	return e.new(ExprIndex, span, PayloadID(payload))
}

func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}
