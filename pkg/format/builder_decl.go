package format

import (
	"github.com/yaklabco/jfmt/pkg/jast"
	"github.com/yaklabco/jfmt/pkg/style"
)

func (b *builder) compilationUnit(u *jast.CompilationUnit) {
	if u.Package != nil {
		b.flushLeading(u.Package.First())
		b.packageDecl(u.Package)
	}
	for i, imp := range u.Imports {
		switch {
		case i == 0:
			b.blankLine()
		case b.file.BlankLineBefore(imp.First()):
			b.blankLine()
		default:
			b.newline()
		}
		b.flushLeading(imp.First())
		b.importDecl(imp)
	}
	for _, t := range u.Types {
		b.blankLine()
		b.flushLeading(t.First())
		b.member(t)
	}

	eof := b.file.EOF()
	if len(b.file.Leading[eof]) > 0 {
		if b.file.BlankLineBefore(eof) {
			b.blankLine()
		} else {
			b.newline()
		}
		b.leading(eof)
	}
	b.pos = eof
}

func (b *builder) packageDecl(p *jast.PackageDecl) {
	for _, a := range p.Annotations {
		b.annotation(a)
		b.forced()
	}
	b.tok("package")
	b.space()
	b.name(p.Name)
	b.tok(";")
}

func (b *builder) importDecl(imp *jast.ImportDecl) {
	b.tok("import")
	b.space()
	if imp.Static {
		b.tok("static")
		b.space()
	}
	b.name(imp.Name)
	if imp.Wildcard {
		b.tok(".")
		b.tok("*")
	}
	b.tok(";")
}

// member emits a type declaration or class body member.
func (b *builder) member(m jast.Decl) {
	switch m := m.(type) {
	case *jast.ClassDecl:
		b.classDecl(m)
	case *jast.MethodDecl:
		b.method(m)
	case *jast.FieldDecl:
		b.declModifiers(m.Modifiers)
		b.varDecl(nil, m.Type, m.Vars, true)
	case *jast.InitializerDecl:
		if m.Static {
			b.tok("static")
			b.space()
		}
		b.block(m.Body)
	case *jast.EmptyDecl:
		b.tok(";")
	case *jast.PackageDecl:
		b.packageDecl(m)
	case *jast.ImportDecl:
		b.importDecl(m)
	default:
		b.failf("unexpected declaration %T", m)
	}
}

func (b *builder) classDecl(c *jast.ClassDecl) {
	b.declModifiers(c.Modifiers)
	b.open()
	if c.Kind == jast.KindAnnotation {
		b.tok("@")
		b.tok("interface")
	} else {
		b.tok(c.Kind.String())
	}
	b.space()
	b.tok(c.Name)
	if c.TypeParams != nil {
		b.typeParams(c.TypeParams)
	}
	if c.Components != nil {
		b.paramList(c.Components)
	}

	b.continuation()
	for _, clause := range []struct {
		keyword string
		types   []jast.TypeNode
	}{
		{"extends", c.Extends},
		{"implements", c.Implements},
		{"permits", c.Permits},
	} {
		if len(clause.types) == 0 {
			continue
		}
		b.brk(" ")
		b.tok(clause.keyword)
		b.space()
		b.typeList(clause.types)
	}
	b.close()
	b.close()

	b.space()
	b.classBody(c.Body)
}

// classBody emits "{ members }". Enum constants come first, one per line.
func (b *builder) classBody(body *jast.ClassBody) {
	b.tok("{")
	closeIdx := body.Last()
	if len(body.Constants) == 0 && !body.Semicolon && len(body.Members) == 0 &&
		len(b.file.Leading[closeIdx]) == 0 {
		b.tok("}")
		return
	}

	b.indented(func() {
		b.forced()
		content := b.enumConstants(body)
		for i, m := range body.Members {
			if i > 0 || content {
				b.separate(m.First())
			}
			b.flushLeading(m.First())
			b.member(m)
		}
		b.closingComments(closeIdx, content || len(body.Members) > 0)
	})
	b.forced()
	b.tok("}")
}

// enumConstants emits the constant list and reports whether anything was
// written.
func (b *builder) enumConstants(body *jast.ClassBody) bool {
	for i, c := range body.Constants {
		if i > 0 {
			b.tok(",")
			b.separate(c.First())
		}
		b.flushLeading(c.First())
		for _, a := range c.Annotations {
			b.annotation(a)
			b.space()
		}
		b.tok(c.Name)
		if c.Args != nil {
			b.args(c.Args)
		}
		if c.Body != nil {
			b.space()
			b.classBody(c.Body)
		}
	}
	if body.TrailingComma {
		b.tok(",")
	}
	if body.Semicolon {
		if len(body.Constants) == 0 {
			b.flushLeading(b.pos)
		}
		b.tok(";")
	}
	return len(body.Constants) > 0 || body.Semicolon
}

// separate ends the line before token i, keeping one blank line when the
// source had at least one.
func (b *builder) separate(i int) {
	if b.file.BlankLineBefore(i) {
		b.blankLine()
	} else {
		b.newline()
	}
}

func (b *builder) method(m *jast.MethodDecl) {
	b.declModifiers(m.Modifiers)
	b.open()
	if m.TypeParams != nil {
		b.typeParams(m.TypeParams)
		b.space()
	}
	if m.Result != nil {
		b.typ(m.Result)
		b.space()
	}
	b.tok(m.Name)
	if !m.Compact {
		b.paramList(m.Params.List)
	}
	b.dims(m.Dims)
	if len(m.Throws) > 0 {
		b.continuation()
		b.brk(" ")
		b.tok("throws")
		b.space()
		b.typeList(m.Throws)
		b.close()
	}
	b.close()

	if m.Default != nil {
		b.space()
		b.tok("default")
		b.space()
		b.expr(m.Default)
	}
	if m.Body == nil {
		b.tok(";")
		return
	}
	b.space()
	b.block(m.Body)
}

// paramList emits "(p1, p2)": the list moves to a continuation line when
// the header does not fit, then splits one parameter per line.
func (b *builder) paramList(params []*jast.Param) {
	b.tok("(")
	if len(params) == 0 {
		b.tok(")")
		return
	}
	b.open()
	b.continuation()
	b.brk("")
	b.open()
	for i, p := range params {
		if i > 0 {
			b.tok(",")
			b.brk(" ")
		}
		b.param(p)
	}
	b.close()
	b.close()
	b.close()
	b.tok(")")
}

func (b *builder) param(p *jast.Param) {
	b.inlineModifiers(p.Modifiers)
	if p.Type != nil {
		b.typ(p.Type)
		if p.Varargs {
			b.tok("...")
		}
		b.space()
	}
	b.tok(p.Name)
	b.dims(p.Dims)
}

// varDecl emits "T a = x" or "T a = x, b = y" with optional modifiers
// and terminator.
func (b *builder) varDecl(mods *jast.Modifiers, t jast.TypeNode, vars []*jast.VarDeclarator, semi bool) {
	b.open()
	b.inlineModifiers(mods)
	b.typ(t)
	if len(vars) == 1 {
		b.space()
		b.tok(vars[0].Name)
		b.dims(vars[0].Dims)
		if vars[0].Init != nil {
			b.assignTail("=", vars[0].Init)
		}
	} else {
		b.continuation()
		for i, v := range vars {
			if i > 0 {
				b.tok(",")
			}
			b.brk(" ")
			b.declarator(v)
		}
		b.close()
	}
	if semi {
		b.tok(";")
	}
	b.close()
}

// declarator emits one declarator of a multi-variable declaration. Its
// initializer breaks relative to the declarator's own column.
func (b *builder) declarator(v *jast.VarDeclarator) {
	b.tok(v.Name)
	b.dims(v.Dims)
	if v.Init == nil {
		return
	}
	b.open()
	switch {
	case !breaksBeforeValue(v.Init):
		b.space()
		b.tok("=")
		b.space()
		b.expr(v.Init)
	case b.opts.Placement() == style.OperatorBefore:
		b.brk(" ")
		b.tok("=")
		b.space()
		b.expr(v.Init)
	default:
		b.space()
		b.tok("=")
		b.continuation()
		b.brk(" ")
		b.expr(v.Init)
		b.close()
	}
	b.close()
}

// assignTail emits " op value" after an assignment target. The enclosing
// group decides whether the value moves to a continuation line.
func (b *builder) assignTail(op string, value jast.Expr) {
	switch {
	case !breaksBeforeValue(value):
		b.space()
		b.op(op)
		b.space()
		b.expr(value)
	case b.opts.Placement() == style.OperatorBefore:
		b.continuation()
		b.brk(" ")
		b.op(op)
		b.space()
		b.expr(value)
		b.close()
	default:
		b.space()
		b.op(op)
		b.continuation()
		b.brk(" ")
		b.expr(value)
		b.close()
	}
}

// breaksBeforeValue reports whether an assigned value may move to its own
// line. Values that open a body stay on the target's line.
func breaksBeforeValue(x jast.Expr) bool {
	switch x := x.(type) {
	case *jast.ArrayInit, *jast.SwitchExpr:
		return false
	case *jast.LambdaExpr:
		_, block := x.Body.(*jast.Block)
		return !block
	case *jast.NewClass:
		return x.Body == nil
	case *jast.NewArray:
		return x.Init == nil
	case *jast.Literal:
		return x.Kind != jast.TokTextBlock
	default:
		return true
	}
}

func (b *builder) dims(n int) {
	for range n {
		b.tok("[")
		b.tok("]")
	}
}

func (b *builder) annotation(a *jast.Annotation) {
	b.tok("@")
	b.name(a.Name)
	if !a.Parens {
		return
	}
	b.tok("(")
	if len(a.Args) == 0 {
		b.tok(")")
		return
	}
	b.open()
	b.continuation()
	b.brk("")
	b.open()
	for i, arg := range a.Args {
		if i > 0 {
			b.tok(",")
			b.brk(" ")
		}
		if arg.Name != "" {
			b.tok(arg.Name)
			b.space()
			b.tok("=")
			b.space()
		}
		b.expr(arg.Value)
	}
	b.close()
	b.close()
	b.close()
	b.tok(")")
}
