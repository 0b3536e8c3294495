package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"notal/internal/ast"
)

// FormatProgram renders the tree in a compact source-like form. The output
// is meant for the 'ast' command and for tests; it is not a formatter and
// makes no round-trip promise about whitespace or comments.
func FormatProgram(w io.Writer, b *ast.Builder, prog *ast.Program) {
	p := astPrinter{w: w, b: b}
	p.printf("program %s\n", b.Name(prog.Name))
	if len(prog.Decls) > 0 {
		p.printf("kamus\n")
		for _, id := range prog.Decls {
			p.writeDecl(1, id)
		}
	}
	p.printf("algoritma\n")
	for _, id := range prog.Body {
		p.writeStmt(1, id)
	}
	for _, id := range prog.Subs {
		p.writeSub(id)
	}
}

type astPrinter struct {
	w io.Writer
	b *ast.Builder
}

func (p *astPrinter) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *astPrinter) indent(depth int) string {
	return strings.Repeat("    ", depth)
}

func (p *astPrinter) writeSub(id ast.SubID) {
	sub := p.b.Subs.Get(id)
	p.printf("%s %s(", sub.Kind, p.b.Name(sub.Name))
	for i, param := range sub.Params {
		if i > 0 {
			p.printf(", ")
		}
		p.printf("%s : %s", p.b.Name(param.Name), p.typeString(param.Type))
	}
	p.printf(")")
	if sub.Result.IsValid() {
		p.printf(" -> %s", p.typeString(sub.Result))
	}
	p.printf("\n")
	if len(sub.Decls) > 0 {
		p.printf("kamus\n")
		for _, d := range sub.Decls {
			p.writeDecl(1, d)
		}
	}
	p.printf("algoritma\n")
	for _, s := range sub.Body {
		p.writeStmt(1, s)
	}
}

func (p *astPrinter) writeDecl(depth int, id ast.DeclID) {
	ind := p.indent(depth)
	decl := p.b.Decls.Get(id)
	switch decl.Kind {
	case ast.DeclVar:
		data, _ := p.b.Decls.Var(id)
		names := make([]string, len(data.Names))
		for i, n := range data.Names {
			names[i] = p.b.Name(n)
		}
		p.printf("%s%s : %s", ind, strings.Join(names, ", "), p.typeString(data.Type))
		if data.Constraint.IsValid() {
			p.printf(" | %s", p.exprString(data.Constraint))
		}
		p.printf("\n")
	case ast.DeclConst:
		data, _ := p.b.Decls.Const(id)
		p.printf("%sconstant %s : %s = %s\n", ind,
			p.b.Name(data.Name), p.typeString(data.Type), p.exprString(data.Value))
	case ast.DeclRecord:
		data, _ := p.b.Decls.Record(id)
		p.printf("%stype %s : <", ind, p.b.Name(data.Name))
		for i, f := range data.Fields {
			if i > 0 {
				p.printf(", ")
			}
			names := make([]string, len(f.Names))
			for j, n := range f.Names {
				names[j] = p.b.Name(n)
			}
			p.printf("%s : %s", strings.Join(names, ", "), p.typeString(f.Type))
		}
		p.printf(">\n")
	case ast.DeclEnum:
		data, _ := p.b.Decls.Enum(id)
		names := make([]string, len(data.Members))
		for i, m := range data.Members {
			names[i] = p.b.Name(m.Name)
		}
		p.printf("%stype %s : (%s)\n", ind, p.b.Name(data.Name), strings.Join(names, ", "))
	case ast.DeclConstrained:
		data, _ := p.b.Decls.Constrained(id)
		p.printf("%stype %s : %s", ind, p.b.Name(data.Name), p.typeString(data.Base))
		if data.Constraint.IsValid() {
			p.printf(" | %s", p.exprString(data.Constraint))
		}
		p.printf("\n")
	}
}

func (p *astPrinter) writeBlock(depth int, body []ast.StmtID) {
	for _, id := range body {
		p.writeStmt(depth, id)
	}
}

func (p *astPrinter) writeStmt(depth int, id ast.StmtID) {
	ind := p.indent(depth)
	stmt := p.b.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtExpr:
		data, _ := p.b.Stmts.ExprStmt(id)
		p.printf("%s%s\n", ind, p.exprString(data.Expr))
	case ast.StmtIf:
		p.writeIf(depth, id, false)
	case ast.StmtWhile:
		data, _ := p.b.Stmts.While(id)
		p.printf("%swhile %s do\n", ind, p.exprString(data.Cond))
		p.writeBlock(depth+1, data.Body)
	case ast.StmtRepeatUntil:
		data, _ := p.b.Stmts.RepeatUntil(id)
		p.printf("%srepeat\n", ind)
		p.writeBlock(depth+1, data.Body)
		p.printf("%suntil %s\n", ind, p.exprString(data.Cond))
	case ast.StmtRepeatTimes:
		data, _ := p.b.Stmts.RepeatTimesData(id)
		p.printf("%srepeat %s times\n", ind, p.exprString(data.Count))
		p.writeBlock(depth+1, data.Body)
	case ast.StmtTraversal:
		data, _ := p.b.Stmts.Traversal(id)
		p.printf("%s%s traversal [%s..%s", ind,
			p.b.Name(data.Iter), p.exprString(data.From), p.exprString(data.To))
		if data.Step.IsValid() {
			p.printf(" step %s", p.exprString(data.Step))
		}
		p.printf("]\n")
		p.writeBlock(depth+1, data.Body)
	case ast.StmtIterateStop:
		data, _ := p.b.Stmts.IterateStop(id)
		p.printf("%siterate\n", ind)
		p.writeBlock(depth+1, data.Pre)
		p.printf("%sstop %s\n", ind, p.exprString(data.Cond))
		p.writeBlock(depth+1, data.Post)
	case ast.StmtDepend:
		p.writeDepend(depth, id)
	case ast.StmtInput:
		data, _ := p.b.Stmts.Input(id)
		p.printf("%sinput(%s)\n", ind, p.exprList(data.Targets))
	case ast.StmtOutput:
		data, _ := p.b.Stmts.Output(id)
		p.printf("%soutput(%s)\n", ind, p.exprList(data.Args))
	case ast.StmtAllocate:
		data, _ := p.b.Stmts.Allocate(id)
		p.printf("%sallocate(%s)\n", ind, p.exprString(data.Target))
	case ast.StmtDeallocate:
		data, _ := p.b.Stmts.Deallocate(id)
		p.printf("%sdeallocate(%s)\n", ind, p.exprString(data.Target))
	case ast.StmtStop:
		p.printf("%sstop\n", ind)
	case ast.StmtSkip:
		p.printf("%sskip\n", ind)
	case ast.StmtReturn:
		data, _ := p.b.Stmts.Return(id)
		if data.Value.IsValid() {
			p.printf("%sreturn %s\n", ind, p.exprString(data.Value))
		} else {
			p.printf("%sreturn\n", ind)
		}
	}
}

func (p *astPrinter) writeIf(depth int, id ast.StmtID, asElif bool) {
	ind := p.indent(depth)
	data, _ := p.b.Stmts.If(id)
	kw := "if"
	if asElif {
		kw = "elif"
	}
	p.printf("%s%s %s then\n", ind, kw, p.exprString(data.Cond))
	p.writeBlock(depth+1, data.Then)
	if data.ElseIf.IsValid() {
		p.writeIf(depth, data.ElseIf, true)
	} else if len(data.Else) > 0 {
		p.printf("%selse\n", ind)
		p.writeBlock(depth+1, data.Else)
	}
}

func (p *astPrinter) writeDepend(depth int, id ast.StmtID) {
	ind := p.indent(depth)
	data, _ := p.b.Stmts.Depend(id)
	p.printf("%sdepend on (%s) { %s }\n", ind, p.exprList(data.Subjects), data.Dispatch)
	for _, arm := range data.Arms {
		p.printf("%s%s :\n", p.indent(depth+1), p.exprList(arm.Conds))
		p.writeBlock(depth+2, arm.Body)
	}
	if len(data.Otherwise) > 0 {
		p.printf("%sotherwise :\n", p.indent(depth+1))
		p.writeBlock(depth+2, data.Otherwise)
	}
}

func (p *astPrinter) exprList(ids []ast.ExprID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = p.exprString(id)
	}
	return strings.Join(parts, ", ")
}

func (p *astPrinter) exprString(id ast.ExprID) string {
	if !id.IsValid() {
		return "<none>"
	}
	expr := p.b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprIdent:
		data, _ := p.b.Exprs.Ident(id)
		return p.b.Name(data.Name)
	case ast.ExprLit:
		data, _ := p.b.Exprs.Literal(id)
		return p.litString(data.Value)
	case ast.ExprBinary:
		data, _ := p.b.Exprs.Binary(id)
		return "(" + p.exprString(data.Left) + " " + data.Op.String() + " " + p.exprString(data.Right) + ")"
	case ast.ExprUnary:
		data, _ := p.b.Exprs.Unary(id)
		if data.Op == ast.ExprUnaryNot {
			return "(not " + p.exprString(data.Operand) + ")"
		}
		return "(-" + p.exprString(data.Operand) + ")"
	case ast.ExprGroup:
		data, _ := p.b.Exprs.Group(id)
		return "(" + p.exprString(data.Inner) + ")"
	case ast.ExprAssign:
		data, _ := p.b.Exprs.Assign(id)
		return p.exprString(data.Target) + " <- " + p.exprString(data.Value)
	case ast.ExprFieldAssign:
		data, _ := p.b.Exprs.FieldAssign(id)
		return p.exprString(data.Object) + "." + p.b.Name(data.Field) + " <- " + p.exprString(data.Value)
	case ast.ExprCall:
		data, _ := p.b.Exprs.Call(id)
		return p.exprString(data.Callee) + "(" + p.exprList(data.Args) + ")"
	case ast.ExprField:
		data, _ := p.b.Exprs.Field(id)
		return p.exprString(data.Object) + "." + p.b.Name(data.Field)
	case ast.ExprIndex:
		data, _ := p.b.Exprs.Index(id)
		return p.exprString(data.Object) + "[" + p.exprList(data.Indices) + "]"
	default:
		return "<?>"
	}
}

func (p *astPrinter) litString(v ast.LitValue) string {
	switch v.Kind {
	case ast.LitInt:
		return strconv.FormatInt(v.Int, 10)
	case ast.LitReal:
		return strconv.FormatFloat(v.Real, 'g', -1, 64)
	case ast.LitString:
		return strconv.Quote(p.b.Name(v.Str))
	case ast.LitBool:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return "NULL"
	}
}

func (p *astPrinter) typeString(id ast.TypeID) string {
	if !id.IsValid() {
		return "<none>"
	}
	typ := p.b.Types.Get(id)
	switch typ.Kind {
	case ast.TypeName:
		data, _ := p.b.Types.Name(id)
		return p.b.Name(data.Name)
	case ast.TypeArrayStatic:
		data, _ := p.b.Types.ArrayStatic(id)
		bounds := make([]string, len(data.Bounds))
		for i, bd := range data.Bounds {
			bounds[i] = p.exprString(bd.Lo) + ".." + p.exprString(bd.Hi)
		}
		return "array [" + strings.Join(bounds, ", ") + "] of " + p.typeString(data.Elem)
	case ast.TypeArrayDyn:
		data, _ := p.b.Types.ArrayDyn(id)
		return "array of " + p.typeString(data.Elem)
	case ast.TypePointer:
		data, _ := p.b.Types.Pointer(id)
		return "pointer to " + p.typeString(data.Elem)
	default:
		return "<?>"
	}
}
