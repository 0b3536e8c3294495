package ast

import (
	"notal/internal/source"
)

// StmtKind is the closed set of statement variants.
type StmtKind uint8

const (
	StmtExpr StmtKind = iota
	StmtIf
	StmtWhile
	StmtRepeatUntil
	StmtRepeatTimes
	StmtTraversal
	StmtIterateStop
	StmtDepend
	StmtInput
	StmtOutput
	StmtAllocate
	StmtDeallocate
	StmtStop
	StmtSkip
	StmtReturn
)

// DependDispatch records how a depend-on construct is compiled: a dense
// value table when every arm expression is a literal, a conditional chain
// otherwise. The parser decides this at construction time.
type DependDispatch uint8

const (
	DependChain DependDispatch = iota
	DependDense
)

func (d DependDispatch) String() string {
	if d == DependDense {
		return "dense"
	}
	return "chain"
}

// Stmt is the node header; payload data lives in the per-kind arenas.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type (
	StmtExprData struct{ Expr ExprID }

	// StmtIfData chains elif branches through ElseIf. IsElif marks a branch
	// constructed as a continuation of an enclosing if; the parser sets it
	// at construction time so no node needs a back-reference to its parent.
	StmtIfData struct {
		Cond   ExprID
		Then   []StmtID
		Else   []StmtID
		ElseIf StmtID // nested StmtIf, or NoStmtID
		IsElif bool
	}

	StmtWhileData struct {
		Cond ExprID
		Body []StmtID
	}

	StmtRepeatUntilData struct {
		Body []StmtID
		Cond ExprID
	}

	StmtRepeatTimesData struct {
		Count ExprID
		Body  []StmtID
	}

	StmtTraversalData struct {
		Iter     source.StringID
		IterSpan source.Span
		From     ExprID
		To       ExprID
		Step     ExprID // NoExprID when the step is implicit 1
		Body     []StmtID
	}

	// StmtIterateStopData is the sentinel-stop loop: Pre runs, Cond is
	// tested, Post runs, repeat.
	StmtIterateStopData struct {
		Pre  []StmtID
		Cond ExprID
		Post []StmtID
	}

	DependArm struct {
		Span  source.Span
		Conds []ExprID
		Body  []StmtID
	}

	StmtDependData struct {
		Subjects  []ExprID
		Arms      []DependArm
		Otherwise []StmtID
		Dispatch  DependDispatch
	}

	StmtInputData  struct{ Targets []ExprID }
	StmtOutputData struct{ Args []ExprID }

	StmtAllocateData   struct{ Target ExprID }
	StmtDeallocateData struct{ Target ExprID }

	StmtReturnData struct{ Value ExprID } // NoExprID for a bare return
)

// Stmts manages allocation of statements.
type Stmts struct {
	Arena        *Arena[Stmt]
	ExprStmts    *Arena[StmtExprData]
	Ifs          *Arena[StmtIfData]
	Whiles       *Arena[StmtWhileData]
	RepeatUntils *Arena[StmtRepeatUntilData]
	RepeatTimes  *Arena[StmtRepeatTimesData]
	Traversals   *Arena[StmtTraversalData]
	IterateStops *Arena[StmtIterateStopData]
	Depends      *Arena[StmtDependData]
	Inputs       *Arena[StmtInputData]
	Outputs      *Arena[StmtOutputData]
	Allocates    *Arena[StmtAllocateData]
	Deallocates  *Arena[StmtDeallocateData]
	Returns      *Arena[StmtReturnData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:        NewArena[Stmt](capHint),
		ExprStmts:    NewArena[StmtExprData](capHint),
		Ifs:          NewArena[StmtIfData](capHint / 4),
		Whiles:       NewArena[StmtWhileData](capHint / 8),
		RepeatUntils: NewArena[StmtRepeatUntilData](capHint / 8),
		RepeatTimes:  NewArena[StmtRepeatTimesData](capHint / 8),
		Traversals:   NewArena[StmtTraversalData](capHint / 8),
		IterateStops: NewArena[StmtIterateStopData](capHint / 8),
		Depends:      NewArena[StmtDependData](capHint / 8),
		Inputs:       NewArena[StmtInputData](capHint / 8),
		Outputs:      NewArena[StmtOutputData](capHint / 4),
		Allocates:    NewArena[StmtAllocateData](capHint / 8),
		Deallocates:  NewArena[StmtDeallocateData](capHint / 8),
		Returns:      NewArena[StmtReturnData](capHint / 8),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the statement header with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewExprStmt(span source.Span, expr ExprID) StmtID {
	payload := s.ExprStmts.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

func (s *Stmts) ExprStmt(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.ExprStmts.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewIf(span source.Span, data StmtIfData) StmtID {
	payload := s.Ifs.Allocate(data)
	return s.new(StmtIf, span, PayloadID(payload))
}

func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewWhile(span source.Span, cond ExprID, body []StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewRepeatUntil(span source.Span, body []StmtID, cond ExprID) StmtID {
	payload := s.RepeatUntils.Allocate(StmtRepeatUntilData{Body: body, Cond: cond})
	return s.new(StmtRepeatUntil, span, PayloadID(payload))
}

func (s *Stmts) RepeatUntil(id StmtID) (*StmtRepeatUntilData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtRepeatUntil {
		return nil, false
	}
	return s.RepeatUntils.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewRepeatTimes(span source.Span, count ExprID, body []StmtID) StmtID {
	payload := s.RepeatTimes.Allocate(StmtRepeatTimesData{Count: count, Body: body})
	return s.new(StmtRepeatTimes, span, PayloadID(payload))
}

func (s *Stmts) RepeatTimesData(id StmtID) (*StmtRepeatTimesData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtRepeatTimes {
		return nil, false
	}
	return s.RepeatTimes.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewTraversal(span source.Span, data StmtTraversalData) StmtID {
	payload := s.Traversals.Allocate(data)
	return s.new(StmtTraversal, span, PayloadID(payload))
}

func (s *Stmts) Traversal(id StmtID) (*StmtTraversalData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtTraversal {
		return nil, false
	}
	return s.Traversals.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewIterateStop(span source.Span, pre []StmtID, cond ExprID, post []StmtID) StmtID {
	payload := s.IterateStops.Allocate(StmtIterateStopData{Pre: pre, Cond: cond, Post: post})
	return s.new(StmtIterateStop, span, PayloadID(payload))
}

func (s *Stmts) IterateStop(id StmtID) (*StmtIterateStopData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIterateStop {
		return nil, false
	}
	return s.IterateStops.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewDepend(span source.Span, data StmtDependData) StmtID {
	payload := s.Depends.Allocate(data)
	return s.new(StmtDepend, span, PayloadID(payload))
}

func (s *Stmts) Depend(id StmtID) (*StmtDependData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDepend {
		return nil, false
	}
	return s.Depends.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewInput(span source.Span, targets []ExprID) StmtID {
	payload := s.Inputs.Allocate(StmtInputData{Targets: targets})
	return s.new(StmtInput, span, PayloadID(payload))
}

func (s *Stmts) Input(id StmtID) (*StmtInputData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtInput {
		return nil, false
	}
	return s.Inputs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewOutput(span source.Span, args []ExprID) StmtID {
	payload := s.Outputs.Allocate(StmtOutputData{Args: args})
	return s.new(StmtOutput, span, PayloadID(payload))
}

func (s *Stmts) Output(id StmtID) (*StmtOutputData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtOutput {
		return nil, false
	}
	return s.Outputs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewAllocate(span source.Span, target ExprID) StmtID {
	payload := s.Allocates.Allocate(StmtAllocateData{Target: target})
	return s.new(StmtAllocate, span, PayloadID(payload))
}

func (s *Stmts) Allocate(id StmtID) (*StmtAllocateData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAllocate {
		return nil, false
	}
	return s.Allocates.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewDeallocate(span source.Span, target ExprID) StmtID {
	payload := s.Deallocates.Allocate(StmtDeallocateData{Target: target})
	return s.new(StmtDeallocate, span, PayloadID(payload))
}

func (s *Stmts) Deallocate(id StmtID) (*StmtDeallocateData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDeallocate {
		return nil, false
	}
	return s.Deallocates.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewStop(span source.Span) StmtID {
	return s.new(StmtStop, span, NoPayloadID)
}

func (s *Stmts) NewSkip(span source.Span) StmtID {
	return s.new(StmtSkip, span, NoPayloadID)
}

func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}
