package diag

import (
	"fmt"
)

// Code is a compact diagnostic identifier with a stable string form.
// Numeric ranges map to categories: 1000 lexical, 2000 syntax, 3000
// semantic, 4000 type, 5000 declaration, 6000 memory, 7000 constraint.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadNumber           Code = 1004
	LexMalformedToken      Code = 1005

	// Syntax
	SynInfo                Code = 2000
	SynUnexpectedToken     Code = 2001
	SynExpectIdentifier    Code = 2002
	SynExpectExpression    Code = 2003
	SynExpectColon         Code = 2004
	SynExpectThen          Code = 2005
	SynExpectDo            Code = 2006
	SynExpectUntil         Code = 2007
	SynExpectType          Code = 2008
	SynExpectSection       Code = 2009
	SynUnexpectedStatement Code = 2010
	SynMisalignedClause    Code = 2011
	SynOrphanClause        Code = 2012
	SynBadAssignTarget     Code = 2013
	SynUnclosedParen       Code = 2014
	SynUnclosedBracket     Code = 2015
	SynTokenSubstituted    Code = 2016
	SynExpectProgramName   Code = 2017
	SynEmptyProgram        Code = 2018
	SynExpectRange         Code = 2019
	SynExpectCaseArm       Code = 2020

	// Semantic (local/structural only; no full semantic pass exists)
	SemInfo           Code = 3000
	SemEmptyBody      Code = 3001
	SemLoopCtlOutside Code = 3002

	// Type
	TypeInfo     Code = 4000
	TypeMismatch Code = 4001

	// Declaration
	DeclInfo        Code = 5000
	DeclRedefined   Code = 5001
	DeclUndefined   Code = 5002
	DeclBadConstant Code = 5003

	// Memory
	MemInfo        Code = 6000
	MemBadAllocate Code = 6001

	// Constraint
	ConInfo          Code = 7000
	ConBadConstraint Code = 7001
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown diagnostic",

	LexInfo:                "Lexical information",
	LexUnknownChar:         "Unknown character",
	LexUnterminatedString:  "Unterminated string literal",
	LexUnterminatedComment: "Unterminated comment",
	LexBadNumber:           "Malformed numeric literal",
	LexMalformedToken:      "Malformed token",

	SynInfo:                "Syntax information",
	SynUnexpectedToken:     "Unexpected token",
	SynExpectIdentifier:    "Expected identifier",
	SynExpectExpression:    "Expected expression",
	SynExpectColon:         "Expected ':'",
	SynExpectThen:          "Expected 'then'",
	SynExpectDo:            "Expected 'do'",
	SynExpectUntil:         "Expected 'until'",
	SynExpectType:          "Expected type",
	SynExpectSection:       "Expected section marker",
	SynUnexpectedStatement: "Unexpected statement",
	SynMisalignedClause:    "Misaligned clause",
	SynOrphanClause:        "Clause without construct",
	SynBadAssignTarget:     "Invalid assignment target",
	SynUnclosedParen:       "Expected ')'",
	SynUnclosedBracket:     "Expected ']'",
	SynTokenSubstituted:    "Token substituted",
	SynExpectProgramName:   "Expected program name",
	SynEmptyProgram:        "Empty program",
	SynExpectRange:         "Expected range",
	SynExpectCaseArm:       "Expected case arm",

	SemInfo:           "Structural information",
	SemEmptyBody:      "Empty construct body",
	SemLoopCtlOutside: "Loop control outside loop",

	TypeInfo:     "Type information",
	TypeMismatch: "Type mismatch",

	DeclInfo:        "Declaration information",
	DeclRedefined:   "Name redefined",
	DeclUndefined:   "Undeclared name",
	DeclBadConstant: "Invalid constant initializer",

	MemInfo:        "Memory information",
	MemBadAllocate: "Invalid allocate/deallocate operand",

	ConInfo:          "Constraint information",
	ConBadConstraint: "Invalid constraint",
}

// ID returns the stable prefixed identifier, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("TYP%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("DCL%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("MEM%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("CON%04d", ic)
	}
	return "E0000"
}

// Category returns the diagnostic category the code's range belongs to.
func (c Code) Category() Category {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return CatLexical
	case ic >= 2000 && ic < 3000:
		return CatSyntax
	case ic >= 3000 && ic < 4000:
		return CatSemantic
	case ic >= 4000 && ic < 5000:
		return CatType
	case ic >= 5000 && ic < 6000:
		return CatDeclaration
	case ic >= 6000 && ic < 7000:
		return CatMemory
	default:
		return CatConstraint
	}
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
