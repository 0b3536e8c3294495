package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Unknown indicates a token the lexer could not classify; Text carries the
	// lexer's message instead of source text.
	Unknown Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// Section markers.

	// KwProgram represents the 'program' keyword.
	KwProgram // program
	// KwKamus represents the 'kamus' declarations-section keyword.
	KwKamus // kamus
	// KwAlgoritma represents the 'algoritma' algorithm-section keyword.
	KwAlgoritma // algoritma

	// Statement keywords.

	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwElif represents the 'elif' keyword.
	KwElif // elif
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwRepeat represents the 'repeat' keyword.
	KwRepeat // repeat
	// KwUntil represents the 'until' keyword.
	KwUntil // until
	// KwTimes represents the 'times' keyword.
	KwTimes // times
	// KwTraversal represents the 'traversal' keyword.
	KwTraversal // traversal
	// KwStep represents the 'step' keyword.
	KwStep // step
	// KwIterate represents the 'iterate' keyword.
	KwIterate // iterate
	// KwStop represents the 'stop' keyword (iterate sentinel or break).
	KwStop // stop
	// KwSkip represents the 'skip' keyword (continue).
	KwSkip // skip
	// KwDepend represents the 'depend' keyword.
	KwDepend // depend
	// KwOn represents the 'on' keyword.
	KwOn // on
	// KwOtherwise represents the 'otherwise' keyword.
	KwOtherwise // otherwise
	// KwInput represents the 'input' keyword.
	KwInput // input
	// KwOutput represents the 'output' keyword.
	KwOutput // output
	// KwAllocate represents the 'allocate' keyword.
	KwAllocate // allocate
	// KwDeallocate represents the 'deallocate' keyword.
	KwDeallocate // deallocate
	// KwReturn represents the 'return' keyword.
	KwReturn // return

	// Declaration keywords.

	// KwConstant represents the 'constant' keyword.
	KwConstant // constant
	// KwType represents the 'type' keyword.
	KwType // type
	// KwArray represents the 'array' keyword.
	KwArray // array
	// KwOf represents the 'of' keyword.
	KwOf // of
	// KwPointer represents the 'pointer' keyword.
	KwPointer // pointer
	// KwTo represents the 'to' keyword.
	KwTo // to
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwProcedure represents the 'procedure' keyword.
	KwProcedure // procedure

	// Operator keywords.

	// KwDiv represents the integer-division keyword.
	KwDiv // div
	// KwMod represents the modulo keyword.
	KwMod // mod
	// KwAnd represents the logical-and keyword.
	KwAnd // and
	// KwOr represents the logical-or keyword.
	KwOr // or
	// KwXor represents the logical-xor keyword.
	KwXor // xor
	// KwNot represents the logical-not keyword.
	KwNot // not

	// Literals.

	// IntLit represents an integer literal token.
	IntLit
	// RealLit represents a real (floating point) literal token.
	RealLit
	// StringLit represents a string literal token.
	StringLit
	// BoolLit represents the reserved 'true'/'false' literals.
	BoolLit
	// NullLit represents the reserved 'NULL' literal.
	NullLit

	// Operators and punctuation.

	// Assign represents the assignment operator token.
	Assign // <-
	// Arrow represents the function result arrow token.
	Arrow // ->
	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the multiplication operator token.
	Star // *
	// Slash represents the division operator token.
	Slash // /
	// Caret represents the power operator token.
	Caret // ^
	// Amp represents the string concatenation operator token.
	Amp // &
	// Eq represents the equality operator token.
	Eq // =
	// NotEq represents the inequality operator token.
	NotEq // <>
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Colon represents the colon token.
	Colon // :
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the field access token.
	Dot // .
	// DotDot represents the range token.
	DotDot // ..
	// Pipe represents the constraint separator token.
	Pipe // |

	kindCount
)

var kindNames = [...]string{
	Unknown:      "Unknown",
	EOF:          "EOF",
	Ident:        "Ident",
	KwProgram:    "program",
	KwKamus:      "kamus",
	KwAlgoritma:  "algoritma",
	KwIf:         "if",
	KwThen:       "then",
	KwElif:       "elif",
	KwElse:       "else",
	KwWhile:      "while",
	KwDo:         "do",
	KwRepeat:     "repeat",
	KwUntil:      "until",
	KwTimes:      "times",
	KwTraversal:  "traversal",
	KwStep:       "step",
	KwIterate:    "iterate",
	KwStop:       "stop",
	KwSkip:       "skip",
	KwDepend:     "depend",
	KwOn:         "on",
	KwOtherwise:  "otherwise",
	KwInput:      "input",
	KwOutput:     "output",
	KwAllocate:   "allocate",
	KwDeallocate: "deallocate",
	KwReturn:     "return",
	KwConstant:   "constant",
	KwType:       "type",
	KwArray:      "array",
	KwOf:         "of",
	KwPointer:    "pointer",
	KwTo:         "to",
	KwFunction:   "function",
	KwProcedure:  "procedure",
	KwDiv:        "div",
	KwMod:        "mod",
	KwAnd:        "and",
	KwOr:         "or",
	KwXor:        "xor",
	KwNot:        "not",
	IntLit:       "IntLit",
	RealLit:      "RealLit",
	StringLit:    "StringLit",
	BoolLit:      "BoolLit",
	NullLit:      "NullLit",
	Assign:       "<-",
	Arrow:        "->",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	Caret:        "^",
	Amp:          "&",
	Eq:           "=",
	NotEq:        "<>",
	Lt:           "<",
	LtEq:         "<=",
	Gt:           ">",
	GtEq:         ">=",
	LParen:       "(",
	RParen:       ")",
	LBracket:     "[",
	RBracket:     "]",
	Colon:        ":",
	Comma:        ",",
	Dot:          ".",
	DotDot:       "..",
	Pipe:         "|",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
