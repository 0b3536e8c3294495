package driver

import (
	"notal/internal/diag"
	"notal/internal/lexer"
	"notal/internal/source"
	"notal/internal/token"
)

// TokenizeResult is the lex-only pipeline output.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Engine  *diag.Engine
}

// Tokenize lexes one file without parsing it.
func Tokenize(path string, opts CheckOptions) (*TokenizeResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fileSet, fileID, opts), nil
}

// TokenizeSource lexes already materialized text.
func TokenizeSource(name string, src []byte, opts CheckOptions) *TokenizeResult {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(name, src)
	return tokenizeFile(fileSet, fileID, opts)
}

func tokenizeFile(fileSet *source.FileSet, fileID source.FileID, opts CheckOptions) *TokenizeResult {
	file := fileSet.Get(fileID)
	eng := diag.NewEngine(file, opts.MaxDiagnostics)
	eng.WarningsAsErrors = opts.WarningsAsErrors
	eng.OnReport = opts.OnReport

	lx := lexer.New(file, lexer.Options{Reporter: eng})
	return &TokenizeResult{
		FileSet: fileSet,
		File:    file,
		Tokens:  lx.TokenizeAll(),
		Engine:  eng,
	}
}
