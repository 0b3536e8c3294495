package ast

type (
	// main entities
	DeclID uint32
	StmtID uint32
	ExprID uint32
	TypeID uint32
	SubID  uint32
	// per-kind payload rows
	PayloadID uint32
)

const (
	NoDeclID    DeclID    = 0
	NoStmtID    StmtID    = 0
	NoExprID    ExprID    = 0
	NoTypeID    TypeID    = 0
	NoSubID     SubID     = 0
	NoPayloadID PayloadID = 0
)

func (id DeclID) IsValid() bool    { return id != NoDeclID }
func (id StmtID) IsValid() bool    { return id != NoStmtID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id TypeID) IsValid() bool    { return id != NoTypeID }
func (id SubID) IsValid() bool     { return id != NoSubID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
