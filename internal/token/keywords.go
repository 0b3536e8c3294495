package token

// KeywordTable maps keyword spellings to kinds. It is built once and handed
// to the lexer explicitly so nothing depends on package init order.
type KeywordTable map[string]Kind

// NewKeywordTable returns the fixed keyword table of the language.
// Keywords are case-sensitive; 'true', 'false', and 'NULL' are reserved as
// literal tokens even though they lex like identifiers.
func NewKeywordTable() KeywordTable {
	return KeywordTable{
		"program":    KwProgram,
		"kamus":      KwKamus,
		"algoritma":  KwAlgoritma,
		"if":         KwIf,
		"then":       KwThen,
		"elif":       KwElif,
		"else":       KwElse,
		"while":      KwWhile,
		"do":         KwDo,
		"repeat":     KwRepeat,
		"until":      KwUntil,
		"times":      KwTimes,
		"traversal":  KwTraversal,
		"step":       KwStep,
		"iterate":    KwIterate,
		"stop":       KwStop,
		"skip":       KwSkip,
		"depend":     KwDepend,
		"on":         KwOn,
		"otherwise":  KwOtherwise,
		"input":      KwInput,
		"output":     KwOutput,
		"allocate":   KwAllocate,
		"deallocate": KwDeallocate,
		"return":     KwReturn,
		"constant":   KwConstant,
		"type":       KwType,
		"array":      KwArray,
		"of":         KwOf,
		"pointer":    KwPointer,
		"to":         KwTo,
		"function":   KwFunction,
		"procedure":  KwProcedure,
		"div":        KwDiv,
		"mod":        KwMod,
		"and":        KwAnd,
		"or":         KwOr,
		"xor":        KwXor,
		"not":        KwNot,
		"true":       BoolLit,
		"false":      BoolLit,
		"NULL":       NullLit,
	}
}

// Lookup returns the kind for a keyword spelling, if any.
func (t KeywordTable) Lookup(ident string) (Kind, bool) {
	k, ok := t[ident]
	return k, ok
}
