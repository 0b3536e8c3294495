package lexer

import (
	"notal/internal/source"
	"notal/internal/token"
)

// Lexer turns a file's bytes into a stream of tokens. It is total: any
// input, malformed included, yields a token sequence that terminates with
// EOF. Errors surface as token.Unknown tokens carrying the message as Text,
// never as a failure.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1-token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	if opts.Keywords == nil {
		opts.Keywords = token.NewKeywordTable()
	}
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// whitespace and {comments}; an unterminated comment surfaces as a token
	if bad := lx.skipTrivia(); bad != nil {
		return *bad
	}

	if lx.cursor.EOF() {
		return lx.emit(token.EOF, lx.emptySpan(), "")
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '\'' || ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// TokenizeAll drains the stream, EOF token included. Deterministic and
// total for any input.
func (lx *Lexer) TokenizeAll() []token.Token {
	toks := make([]token.Token, 0, 64)
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

// emit finalizes a token, resolving its line/column from the span start.
func (lx *Lexer) emit(k token.Kind, sp source.Span, text string) token.Token {
	return token.Token{
		Kind: k,
		Span: sp,
		Pos:  lx.file.Position(sp.Start),
		Text: text,
	}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
