package parser

import (
	"fmt"
	"strings"
	"testing"

	"notal/internal/ast"
	"notal/internal/diag"
	"notal/internal/lexer"
	"notal/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, input string) (*ast.Builder, *ast.Program, *diag.Bag) {
	return parseSourceWithOptions(t, input, Options{})
}

func parseSourceWithOptions(t *testing.T, input string, opts Options) (*ast.Builder, *ast.Program, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ntl", []byte(input)))

	bag := diag.NewBag(100)
	reporter := &diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})

	if opts.MaxErrors == 0 {
		opts.MaxErrors = 100
	}
	opts.Reporter = reporter

	prog, _ := Parse(lx.TokenizeAll(), builder, opts)
	return builder, prog, bag
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

// requireClean fails the test when the bag holds errors.
func requireClean(t *testing.T, bag *diag.Bag) {
	t.Helper()
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
}

func TestMinimalProgram(t *testing.T) {
	input := `program hello
algoritma
    output("hi")
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	if prog == nil {
		t.Fatal("expected a program")
	}
	if got := builder.Name(prog.Name); got != "hello" {
		t.Errorf("program name: expected %q, got %q", "hello", got)
	}
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Body))
	}
	out, ok := builder.Stmts.Output(prog.Body[0])
	if !ok {
		t.Fatalf("expected an output statement, got kind %v", builder.Stmts.Get(prog.Body[0]).Kind)
	}
	if len(out.Args) != 1 {
		t.Errorf("expected 1 output argument, got %d", len(out.Args))
	}
}

func TestEmptyInput(t *testing.T) {
	_, prog, bag := parseSource(t, "")
	if prog != nil {
		t.Error("expected nil program for empty input")
	}
	if !hasCode(bag, diag.SynEmptyProgram) {
		t.Errorf("expected SynEmptyProgram, got %s", diagnosticsSummary(bag))
	}
}

func TestMissingAlgoritma(t *testing.T) {
	input := `program p
x <- 1
`
	_, prog, bag := parseSource(t, input)
	if prog != nil {
		t.Error("expected nil program without an algoritma section")
	}
	if !hasCode(bag, diag.SynExpectSection) {
		t.Errorf("expected SynExpectSection, got %s", diagnosticsSummary(bag))
	}
}

func TestKamusDeclarations(t *testing.T) {
	input := `program p
kamus
    constant MAX : integer = 100
    x, y : integer
    n : integer | n > 0
    type point : < px : integer, py : integer >
    type hari : (senin, selasa)
    type nat : integer | nat >= 0
    arr : array [1..10] of integer
    buf : array of real
    ptr : pointer to integer
algoritma
    x <- MAX
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	if len(prog.Decls) != 9 {
		t.Fatalf("expected 9 declarations, got %d: %s", len(prog.Decls), diagnosticsSummary(bag))
	}

	if c, ok := builder.Decls.Const(prog.Decls[0]); !ok {
		t.Error("decl 0: expected a constant")
	} else if builder.Name(c.Name) != "MAX" {
		t.Errorf("decl 0: expected name MAX, got %q", builder.Name(c.Name))
	}

	if v, ok := builder.Decls.Var(prog.Decls[1]); !ok {
		t.Error("decl 1: expected a variable")
	} else if len(v.Names) != 2 {
		t.Errorf("decl 1: expected 2 names, got %d", len(v.Names))
	}

	if v, ok := builder.Decls.Var(prog.Decls[2]); !ok {
		t.Error("decl 2: expected a variable")
	} else if v.Constraint == ast.NoExprID {
		t.Error("decl 2: expected a constraint predicate")
	}

	if r, ok := builder.Decls.Record(prog.Decls[3]); !ok {
		t.Error("decl 3: expected a record type")
	} else if len(r.Fields) != 2 {
		t.Errorf("decl 3: expected 2 fields, got %d", len(r.Fields))
	}

	if e, ok := builder.Decls.Enum(prog.Decls[4]); !ok {
		t.Error("decl 4: expected an enum type")
	} else if len(e.Members) != 2 {
		t.Errorf("decl 4: expected 2 members, got %d", len(e.Members))
	}

	if c, ok := builder.Decls.Constrained(prog.Decls[5]); !ok {
		t.Error("decl 5: expected a constrained type")
	} else if c.Constraint == ast.NoExprID {
		t.Error("decl 5: expected a constraint predicate")
	}

	if v, ok := builder.Decls.Var(prog.Decls[6]); !ok {
		t.Error("decl 6: expected a variable")
	} else if a, ok := builder.Types.ArrayStatic(v.Type); !ok {
		t.Error("decl 6: expected a static array type")
	} else if len(a.Bounds) != 1 {
		t.Errorf("decl 6: expected 1 bound pair, got %d", len(a.Bounds))
	}

	if v, ok := builder.Decls.Var(prog.Decls[7]); !ok {
		t.Error("decl 7: expected a variable")
	} else if _, ok := builder.Types.ArrayDyn(v.Type); !ok {
		t.Error("decl 7: expected a dynamic array type")
	}

	if v, ok := builder.Decls.Var(prog.Decls[8]); !ok {
		t.Error("decl 8: expected a variable")
	} else if _, ok := builder.Types.Pointer(v.Type); !ok {
		t.Error("decl 8: expected a pointer type")
	}
}

func TestIfElifElseChain(t *testing.T) {
	input := `program p
algoritma
    if x > 0 then
        output("pos")
    elif x < 0 then
        output("neg")
    else
        output("zero")
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Body))
	}
	ifData, ok := builder.Stmts.If(prog.Body[0])
	if !ok {
		t.Fatal("expected an if statement")
	}
	if len(ifData.Then) != 1 {
		t.Errorf("then branch: expected 1 statement, got %d", len(ifData.Then))
	}
	if ifData.ElseIf == ast.NoStmtID {
		t.Fatal("expected an elif continuation")
	}
	elif, ok := builder.Stmts.If(ifData.ElseIf)
	if !ok {
		t.Fatal("elif continuation is not an if node")
	}
	if !elif.IsElif {
		t.Error("elif continuation should be marked IsElif")
	}
	if len(elif.Else) != 1 {
		t.Errorf("else branch: expected 1 statement, got %d", len(elif.Else))
	}
}

func TestBodyMustIndentPastConstruct(t *testing.T) {
	// the would-be body sits at the same column as 'if', so the body is
	// empty and the statement belongs to the enclosing block
	input := `program p
algoritma
    if x > 0 then
    output("never a body")
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	if len(prog.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Body))
	}
	ifData, ok := builder.Stmts.If(prog.Body[0])
	if !ok {
		t.Fatal("expected an if statement first")
	}
	if len(ifData.Then) != 0 {
		t.Errorf("expected an empty then branch, got %d statements", len(ifData.Then))
	}
	if _, ok := builder.Stmts.Output(prog.Body[1]); !ok {
		t.Error("expected the output statement at the outer level")
	}
}

func TestMisalignedElse(t *testing.T) {
	input := `program p
algoritma
    if x > 0 then
        y <- 1
      else
        y <- 2
`
	builder, prog, bag := parseSource(t, input)
	if prog == nil {
		t.Fatal("recovery must still produce a program")
	}
	if !hasCode(bag, diag.SynMisalignedClause) {
		t.Fatalf("expected SynMisalignedClause, got %s", diagnosticsSummary(bag))
	}
	// the construct itself still yields a node
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Body))
	}
	ifData, ok := builder.Stmts.If(prog.Body[0])
	if !ok {
		t.Fatal("expected an if statement despite the misaligned clause")
	}
	if len(ifData.Else) != 0 {
		t.Error("misaligned else must not attach a branch")
	}
}

func TestNestedIfElseReturnsToOuter(t *testing.T) {
	// the else aligns with the outer if, so the nested if must end without
	// consuming it
	input := `program p
algoritma
    if x > 0 then
        if y > 0 then
            output(1)
    else
        output(2)
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Body))
	}
	outer, ok := builder.Stmts.If(prog.Body[0])
	if !ok {
		t.Fatal("expected an if statement")
	}
	if len(outer.Then) != 1 {
		t.Fatalf("then branch: expected the nested if only, got %d statements", len(outer.Then))
	}
	inner, ok := builder.Stmts.If(outer.Then[0])
	if !ok {
		t.Fatal("expected a nested if in the then branch")
	}
	if len(inner.Else) != 0 || inner.ElseIf != ast.NoStmtID {
		t.Error("the outer else must not attach to the nested if")
	}
	if len(outer.Else) != 1 {
		t.Errorf("else branch: expected 1 statement, got %d", len(outer.Else))
	}
}

func TestNestedIfElifReturnsToOuter(t *testing.T) {
	input := `program p
algoritma
    if x > 0 then
        if y > 0 then
            output(1)
    elif x < 0 then
        output(2)
    else
        output(3)
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Body))
	}
	outer, ok := builder.Stmts.If(prog.Body[0])
	if !ok {
		t.Fatal("expected an if statement")
	}
	if len(outer.Then) != 1 {
		t.Fatalf("then branch: expected the nested if only, got %d statements", len(outer.Then))
	}
	if _, ok := builder.Stmts.If(outer.Then[0]); !ok {
		t.Fatal("expected a nested if in the then branch")
	}
	if outer.ElseIf == ast.NoStmtID {
		t.Fatal("expected the elif to continue the outer chain")
	}
	elif, ok := builder.Stmts.If(outer.ElseIf)
	if !ok {
		t.Fatal("elif continuation is not an if node")
	}
	if len(elif.Then) != 1 || len(elif.Else) != 1 {
		t.Errorf("elif: expected 1 then and 1 else statement, got %d and %d",
			len(elif.Then), len(elif.Else))
	}
}

func TestMisalignedUntil(t *testing.T) {
	input := `program p
algoritma
    repeat
        x <- x + 1
      until x > 3
`
	_, prog, bag := parseSource(t, input)
	if prog == nil {
		t.Fatal("recovery must still produce a program")
	}
	if !hasCode(bag, diag.SynMisalignedClause) {
		t.Fatalf("expected SynMisalignedClause, got %s", diagnosticsSummary(bag))
	}
}

func TestThenSubstitution(t *testing.T) {
	input := `program p
algoritma
    if x > 0 do
        output(x)
`
	builder, prog, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("substitution must not count as an error: %s", diagnosticsSummary(bag))
	}
	if !hasCode(bag, diag.SynTokenSubstituted) {
		t.Fatalf("expected SynTokenSubstituted warning, got %s", diagnosticsSummary(bag))
	}
	ifData, ok := builder.Stmts.If(prog.Body[0])
	if !ok {
		t.Fatal("expected an if statement")
	}
	if len(ifData.Then) != 1 {
		t.Errorf("expected 1 then statement, got %d", len(ifData.Then))
	}
}

func TestDoSubstitution(t *testing.T) {
	input := `program p
algoritma
    while x < 10 then
        x <- x + 1
`
	builder, prog, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("substitution must not count as an error: %s", diagnosticsSummary(bag))
	}
	if !hasCode(bag, diag.SynTokenSubstituted) {
		t.Fatalf("expected SynTokenSubstituted warning, got %s", diagnosticsSummary(bag))
	}
	whileData, ok := builder.Stmts.While(prog.Body[0])
	if !ok {
		t.Fatal("expected a while statement")
	}
	if len(whileData.Body) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(whileData.Body))
	}
}

func TestPanicModeResync(t *testing.T) {
	// the broken first statement must not damage the loop that follows
	input := `program p
algoritma
    x <- <- 3
    while x < 10 do
        x <- x + 1
`
	builder, prog, bag := parseSource(t, input)
	if prog == nil {
		t.Fatal("recovery must still produce a program")
	}
	if !bag.HasErrors() {
		t.Fatal("expected at least one error")
	}
	if len(prog.Body) != 1 {
		t.Fatalf("expected the while loop to survive, got %d statements", len(prog.Body))
	}
	if _, ok := builder.Stmts.While(prog.Body[0]); !ok {
		t.Error("expected a while statement after resync")
	}
}

func TestErrorBudget(t *testing.T) {
	// every line is broken; the budget caps how many reports are emitted
	input := `program p
algoritma
    x <- <- 1
    y <- <- 2
    z <- <- 3
    w <- <- 4
`
	_, _, bag := parseSourceWithOptions(t, input, Options{MaxErrors: 2})
	errs := 0
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			errs++
		}
	}
	if errs > 2 {
		t.Errorf("expected at most 2 emitted errors, got %d: %s", errs, diagnosticsSummary(bag))
	}
}

func TestRepeatUntil(t *testing.T) {
	input := `program p
algoritma
    repeat
        x <- x + 1
    until x > 10
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	data, ok := builder.Stmts.RepeatUntil(prog.Body[0])
	if !ok {
		t.Fatal("expected a repeat-until statement")
	}
	if len(data.Body) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(data.Body))
	}
	if data.Cond == ast.NoExprID {
		t.Error("expected an until condition")
	}
}

func TestRepeatTimes(t *testing.T) {
	input := `program p
algoritma
    repeat 3 times
        output("x")
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	data, ok := builder.Stmts.RepeatTimesData(prog.Body[0])
	if !ok {
		t.Fatal("expected a counted repeat statement")
	}
	lit, ok := builder.Exprs.Literal(data.Count)
	if !ok || lit.Value.Int != 3 {
		t.Error("expected the literal count 3")
	}
	if len(data.Body) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(data.Body))
	}
}

func TestTraversal(t *testing.T) {
	input := `program p
algoritma
    i traversal [1..10 step 2]
        output(i)
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	data, ok := builder.Stmts.Traversal(prog.Body[0])
	if !ok {
		t.Fatal("expected a traversal statement")
	}
	if builder.Name(data.Iter) != "i" {
		t.Errorf("expected iterator i, got %q", builder.Name(data.Iter))
	}
	if data.Step == ast.NoExprID {
		t.Error("expected an explicit step")
	}
	if len(data.Body) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(data.Body))
	}
}

func TestTraversalImplicitStep(t *testing.T) {
	input := `program p
algoritma
    i traversal [1..n]
        output(i)
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	data, ok := builder.Stmts.Traversal(prog.Body[0])
	if !ok {
		t.Fatal("expected a traversal statement")
	}
	if data.Step != ast.NoExprID {
		t.Error("implicit step must stay unset")
	}
}

func TestIterateStop(t *testing.T) {
	input := `program p
algoritma
    iterate
        input(x)
    stop x = 0
        output(x)
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	data, ok := builder.Stmts.IterateStop(prog.Body[0])
	if !ok {
		t.Fatal("expected an iterate-stop statement")
	}
	if len(data.Pre) != 1 || len(data.Post) != 1 {
		t.Errorf("expected 1 pre and 1 post statement, got %d and %d", len(data.Pre), len(data.Post))
	}
	if data.Cond == ast.NoExprID {
		t.Error("expected a stop condition")
	}
}

func TestStopSkipStatements(t *testing.T) {
	input := `program p
algoritma
    while true do
        stop
        skip
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	whileData, ok := builder.Stmts.While(prog.Body[0])
	if !ok {
		t.Fatal("expected a while statement")
	}
	if len(whileData.Body) != 2 {
		t.Fatalf("expected 2 body statements, got %d", len(whileData.Body))
	}
	if builder.Stmts.Get(whileData.Body[0]).Kind != ast.StmtStop {
		t.Error("expected a stop statement")
	}
	if builder.Stmts.Get(whileData.Body[1]).Kind != ast.StmtSkip {
		t.Error("expected a skip statement")
	}
}

func TestDependDenseClassification(t *testing.T) {
	input := `program p
algoritma
    depend on (x)
        1 : output("one")
        2 : output("two")
        otherwise : output("many")
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	data, ok := builder.Stmts.Depend(prog.Body[0])
	if !ok {
		t.Fatal("expected a depend statement")
	}
	if data.Dispatch != ast.DependDense {
		t.Errorf("all-literal arms must classify as dense, got %v", data.Dispatch)
	}
	if len(data.Arms) != 2 {
		t.Errorf("expected 2 arms, got %d", len(data.Arms))
	}
	if len(data.Otherwise) != 1 {
		t.Errorf("expected 1 otherwise statement, got %d", len(data.Otherwise))
	}
}

func TestDependChainClassification(t *testing.T) {
	input := `program p
algoritma
    depend on (x)
        1 : output("one")
        x < 0 : output("neg")
        otherwise : output("rest")
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	data, ok := builder.Stmts.Depend(prog.Body[0])
	if !ok {
		t.Fatal("expected a depend statement")
	}
	if data.Dispatch != ast.DependChain {
		t.Errorf("one non-literal arm must force the chain form, got %v", data.Dispatch)
	}
}

func TestDependMultiSubject(t *testing.T) {
	input := `program p
algoritma
    depend on (x, y)
        1, 0 : output("a")
        0, 1 : output("b")
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	data, ok := builder.Stmts.Depend(prog.Body[0])
	if !ok {
		t.Fatal("expected a depend statement")
	}
	if len(data.Subjects) != 2 {
		t.Errorf("expected 2 subjects, got %d", len(data.Subjects))
	}
	if len(data.Arms) != 2 || len(data.Arms[0].Conds) != 2 {
		t.Errorf("expected 2 arms with 2 conditions each, got %d arms", len(data.Arms))
	}
	if data.Dispatch != ast.DependDense {
		t.Errorf("literal tuples must classify as dense, got %v", data.Dispatch)
	}
}

func TestDependWithoutArms(t *testing.T) {
	input := `program p
algoritma
    depend on (x)
    output("not an arm")
`
	_, _, bag := parseSource(t, input)
	if !hasCode(bag, diag.SynExpectCaseArm) {
		t.Errorf("expected SynExpectCaseArm, got %s", diagnosticsSummary(bag))
	}
}

func TestOperatorPrecedence(t *testing.T) {
	input := `program p
algoritma
    x <- 1 + 2 * 3
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	stmt, ok := builder.Stmts.ExprStmt(prog.Body[0])
	if !ok {
		t.Fatal("expected an expression statement")
	}
	assign, ok := builder.Exprs.Assign(stmt.Expr)
	if !ok {
		t.Fatal("expected an assignment")
	}
	add, ok := builder.Exprs.Binary(assign.Value)
	if !ok || add.Op != ast.ExprBinaryAdd {
		t.Fatal("expected '+' at the top of the value")
	}
	mul, ok := builder.Exprs.Binary(add.Right)
	if !ok || mul.Op != ast.ExprBinaryMul {
		t.Error("expected '*' to bind tighter than '+'")
	}
}

func TestPowerIsRightAssociative(t *testing.T) {
	input := `program p
algoritma
    x <- 2 ^ 3 ^ 2
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	stmt, _ := builder.Stmts.ExprStmt(prog.Body[0])
	assign, ok := builder.Exprs.Assign(stmt.Expr)
	if !ok {
		t.Fatal("expected an assignment")
	}
	outer, ok := builder.Exprs.Binary(assign.Value)
	if !ok || outer.Op != ast.ExprBinaryPow {
		t.Fatal("expected '^' at the top")
	}
	if lit, ok := builder.Exprs.Literal(outer.Left); !ok || lit.Value.Int != 2 {
		t.Error("expected 2 on the left of the outer '^'")
	}
	inner, ok := builder.Exprs.Binary(outer.Right)
	if !ok || inner.Op != ast.ExprBinaryPow {
		t.Error("'^' must group to the right")
	}
}

func TestUnaryBindsTighterThanBinary(t *testing.T) {
	input := `program p
algoritma
    x <- not a and b
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	stmt, _ := builder.Stmts.ExprStmt(prog.Body[0])
	assign, _ := builder.Exprs.Assign(stmt.Expr)
	and, ok := builder.Exprs.Binary(assign.Value)
	if !ok || and.Op != ast.ExprBinaryAnd {
		t.Fatal("expected 'and' at the top")
	}
	if un, ok := builder.Exprs.Unary(and.Left); !ok || un.Op != ast.ExprUnaryNot {
		t.Error("expected 'not' applied to the left operand only")
	}
}

func TestFieldAssignment(t *testing.T) {
	input := `program p
algoritma
    titik.px <- 3
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	stmt, _ := builder.Stmts.ExprStmt(prog.Body[0])
	fa, ok := builder.Exprs.FieldAssign(stmt.Expr)
	if !ok {
		t.Fatal("expected a field assignment")
	}
	if builder.Name(fa.Field) != "px" {
		t.Errorf("expected field px, got %q", builder.Name(fa.Field))
	}
}

func TestBadAssignTarget(t *testing.T) {
	input := `program p
algoritma
    f(x) <- 1
`
	_, _, bag := parseSource(t, input)
	if !hasCode(bag, diag.SynBadAssignTarget) {
		t.Errorf("expected SynBadAssignTarget, got %s", diagnosticsSummary(bag))
	}
}

func TestCallIndexField(t *testing.T) {
	input := `program p
algoritma
    x <- m[i, j].berat + f(1, 2)
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	stmt, _ := builder.Stmts.ExprStmt(prog.Body[0])
	assign, _ := builder.Exprs.Assign(stmt.Expr)
	add, ok := builder.Exprs.Binary(assign.Value)
	if !ok {
		t.Fatal("expected a binary value")
	}
	field, ok := builder.Exprs.Field(add.Left)
	if !ok {
		t.Fatal("expected a field access on the left")
	}
	if idx, ok := builder.Exprs.Index(field.Object); !ok || len(idx.Indices) != 2 {
		t.Error("expected a two-index access under the field")
	}
	if call, ok := builder.Exprs.Call(add.Right); !ok || len(call.Args) != 2 {
		t.Error("expected a two-argument call on the right")
	}
}

func TestOrphanClause(t *testing.T) {
	input := `program p
algoritma
    else
        output("nope")
`
	_, _, bag := parseSource(t, input)
	if !hasCode(bag, diag.SynOrphanClause) {
		t.Errorf("expected SynOrphanClause, got %s", diagnosticsSummary(bag))
	}
}

func TestFunctionAndProcedure(t *testing.T) {
	input := `program p
algoritma
    y <- tambah(1, 2)

function tambah(a : integer, b : integer) -> integer
algoritma
    return a + b

procedure tukar(a : pointer to integer)
kamus
    tmp : integer
algoritma
    output(tmp)
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	if len(prog.Subs) != 2 {
		t.Fatalf("expected 2 subprograms, got %d", len(prog.Subs))
	}

	fn := builder.Subs.Get(prog.Subs[0])
	if fn.Kind != ast.SubFunction {
		t.Error("expected a function first")
	}
	if builder.Name(fn.Name) != "tambah" {
		t.Errorf("expected name tambah, got %q", builder.Name(fn.Name))
	}
	if len(fn.Params) != 2 {
		t.Errorf("expected 2 parameters, got %d", len(fn.Params))
	}
	if fn.Result == ast.NoTypeID {
		t.Error("function must carry a result type")
	}
	if len(fn.Body) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(fn.Body))
	}
	ret, ok := builder.Stmts.Return(fn.Body[0])
	if !ok {
		t.Fatal("expected a return statement")
	}
	if ret.Value == ast.NoExprID {
		t.Error("expected a return value")
	}

	proc := builder.Subs.Get(prog.Subs[1])
	if proc.Kind != ast.SubProcedure {
		t.Error("expected a procedure second")
	}
	if proc.Result != ast.NoTypeID {
		t.Error("procedure must not carry a result type")
	}
	if len(proc.Decls) != 1 {
		t.Errorf("expected 1 local declaration, got %d", len(proc.Decls))
	}
}

func TestBareReturn(t *testing.T) {
	input := `program p
algoritma
    output("x")

procedure noop()
algoritma
    return
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	proc := builder.Subs.Get(prog.Subs[0])
	ret, ok := builder.Stmts.Return(proc.Body[0])
	if !ok {
		t.Fatal("expected a return statement")
	}
	if ret.Value != ast.NoExprID {
		t.Error("bare return must carry no value")
	}
}

func TestAllocateDeallocate(t *testing.T) {
	input := `program p
algoritma
    allocate(ptr)
    deallocate(ptr)
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	if len(prog.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Body))
	}
	if _, ok := builder.Stmts.Allocate(prog.Body[0]); !ok {
		t.Error("expected an allocate statement")
	}
	if _, ok := builder.Stmts.Deallocate(prog.Body[1]); !ok {
		t.Error("expected a deallocate statement")
	}
}

func TestInputOutputLists(t *testing.T) {
	input := `program p
algoritma
    input(a, b)
    output("sum:", a + b)
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	in, ok := builder.Stmts.Input(prog.Body[0])
	if !ok || len(in.Targets) != 2 {
		t.Error("expected input with 2 targets")
	}
	out, ok := builder.Stmts.Output(prog.Body[1])
	if !ok || len(out.Args) != 2 {
		t.Error("expected output with 2 arguments")
	}
}

func TestStringEscapes(t *testing.T) {
	input := `program p
algoritma
    output("line\nbreak")
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	out, _ := builder.Stmts.Output(prog.Body[0])
	lit, ok := builder.Exprs.Literal(out.Args[0])
	if !ok || lit.Value.Kind != ast.LitString {
		t.Fatal("expected a string literal")
	}
	if got := builder.Name(lit.Value.Str); got != "line\nbreak" {
		t.Errorf("expected the escape resolved, got %q", got)
	}
}

func TestNestedBlocks(t *testing.T) {
	input := `program p
algoritma
    while i < n do
        if a[i] > maks then
            maks <- a[i]
        i <- i + 1
`
	builder, prog, bag := parseSource(t, input)
	requireClean(t, bag)
	whileData, ok := builder.Stmts.While(prog.Body[0])
	if !ok {
		t.Fatal("expected a while statement")
	}
	if len(whileData.Body) != 2 {
		t.Fatalf("expected 2 loop statements, got %d", len(whileData.Body))
	}
	ifData, ok := builder.Stmts.If(whileData.Body[0])
	if !ok {
		t.Fatal("expected an if inside the loop")
	}
	if len(ifData.Then) != 1 {
		t.Errorf("expected 1 then statement, got %d", len(ifData.Then))
	}
}
