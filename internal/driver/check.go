package driver

import (
	"fortio.org/safecast"

	"notal/internal/ast"
	"notal/internal/diag"
	"notal/internal/lexer"
	"notal/internal/parser"
	"notal/internal/source"
	"notal/internal/token"
)

// CheckOptions configures one front-end run.
type CheckOptions struct {
	MaxDiagnostics   int
	WarningsAsErrors bool
	// OnReport, when set, is invoked synchronously for every diagnostic.
	OnReport func(diag.Diagnostic)
}

// Result bundles everything one run produced. Program is nil when the
// top-level skeleton could not be established; Engine always carries the
// full diagnostic record either way.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Builder *ast.Builder
	Program *ast.Program
	Engine  *diag.Engine
}

// Check loads a file from disk and runs the full front end over it.
func Check(path string, opts CheckOptions) (*Result, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	return checkFile(fileSet, fileID, opts), nil
}

// CheckSource runs the front end over already materialized text. The name
// is used only for diagnostic display.
func CheckSource(name string, src []byte, opts CheckOptions) *Result {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(name, src)
	return checkFile(fileSet, fileID, opts)
}

// checkFile is the single-file pipeline: lex everything up front, then
// parse the materialized token slice. Lexer and parser share one Engine,
// so lexical and syntax diagnostics come out interleaved in source order.
func checkFile(fileSet *source.FileSet, fileID source.FileID, opts CheckOptions) *Result {
	file := fileSet.Get(fileID)

	eng := diag.NewEngine(file, opts.MaxDiagnostics)
	eng.WarningsAsErrors = opts.WarningsAsErrors
	eng.OnReport = opts.OnReport

	lx := lexer.New(file, lexer.Options{Reporter: eng})
	toks := lx.TokenizeAll()

	builder := ast.NewBuilder(ast.Hints{})
	maxErrors, err := safecast.Conv[uint](max(opts.MaxDiagnostics, 0))
	if err != nil {
		maxErrors = 0
	}
	prog, _ := parser.Parse(toks, builder, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  eng,
	})

	return &Result{
		FileSet: fileSet,
		File:    file,
		Tokens:  toks,
		Builder: builder,
		Program: prog,
		Engine:  eng,
	}
}
