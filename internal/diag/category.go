package diag

// Category classifies what kind of anomaly a diagnostic describes.
// It is orthogonal to Severity.
type Category uint8

const (
	// CatLexical covers malformed tokens.
	CatLexical Category = iota
	// CatSyntax covers grammar violations.
	CatSyntax
	// CatSemantic covers structural checks beyond the grammar.
	CatSemantic
	// CatType covers type mismatches detected locally.
	CatType
	// CatDeclaration covers redefinition/undeclared-name findings.
	CatDeclaration
	// CatMemory covers allocate/deallocate misuse.
	CatMemory
	// CatConstraint covers constrained-declaration violations.
	CatConstraint
)

func (c Category) String() string {
	switch c {
	case CatLexical:
		return "Lexical"
	case CatSyntax:
		return "Syntax"
	case CatSemantic:
		return "Semantic"
	case CatType:
		return "Type"
	case CatDeclaration:
		return "Declaration"
	case CatMemory:
		return "Memory"
	case CatConstraint:
		return "Constraint"
	}
	return "Unknown"
}
