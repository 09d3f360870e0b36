package format

import "github.com/yaklabco/jfmt/pkg/jast"

// block emits "{}" or a brace-delimited statement list one level deeper.
func (b *builder) block(blk *jast.Block) {
	b.tok("{")
	closeIdx := blk.Last()
	if len(blk.Stmts) == 0 && len(b.file.Leading[closeIdx]) == 0 {
		b.tok("}")
		return
	}
	b.indented(func() {
		b.forced()
		b.stmts(blk.Stmts)
		b.closingComments(closeIdx, len(blk.Stmts) > 0)
	})
	b.forced()
	b.tok("}")
}

// stmts emits statements one per line, keeping at most one blank line
// between them.
func (b *builder) stmts(list []jast.Stmt) {
	for i, s := range list {
		if i > 0 {
			b.separate(s.First())
		}
		b.flushLeading(s.First())
		b.stmt(s)
	}
}

//nolint:gocyclo,cyclop,funlen // Statement dispatch.
func (b *builder) stmt(s jast.Stmt) {
	switch s := s.(type) {
	case *jast.Block:
		b.block(s)
	case *jast.LocalVarDecl:
		b.varDecl(s.Modifiers, s.Type, s.Vars, true)
	case *jast.LocalClassStmt:
		b.classDecl(s.Decl)
	case *jast.ExprStmt:
		b.open()
		b.expr(s.X)
		b.tok(";")
		b.close()
	case *jast.EmptyStmt:
		b.tok(";")
	case *jast.IfStmt:
		b.ifStmt(s)
	case *jast.WhileStmt:
		b.tok("while")
		b.space()
		b.parens(s.Cond)
		b.body(s.Body)
	case *jast.DoStmt:
		b.tok("do")
		b.body(s.Body)
		b.afterBody(s.Body)
		b.tok("while")
		b.space()
		b.parens(s.Cond)
		b.tok(";")
	case *jast.ForStmt:
		b.forStmt(s)
	case *jast.ForEachStmt:
		b.tok("for")
		b.space()
		b.tok("(")
		b.inlineModifiers(s.Modifiers)
		b.typ(s.Type)
		b.space()
		b.tok(s.Name)
		b.space()
		b.tok(":")
		b.space()
		b.expr(s.Iter)
		b.tok(")")
		b.body(s.Body)
	case *jast.ReturnStmt:
		b.keywordStmt("return", s.X)
	case *jast.ThrowStmt:
		b.keywordStmt("throw", s.X)
	case *jast.YieldStmt:
		b.keywordStmt("yield", s.X)
	case *jast.BreakStmt:
		b.jump("break", s.Label)
	case *jast.ContinueStmt:
		b.jump("continue", s.Label)
	case *jast.LabeledStmt:
		b.tok(s.Label)
		b.tok(":")
		b.newline()
		b.flushLeading(s.Body.First())
		b.stmt(s.Body)
	case *jast.SyncStmt:
		b.tok("synchronized")
		b.space()
		b.parens(s.Lock)
		b.space()
		b.block(s.Body)
	case *jast.AssertStmt:
		b.tok("assert")
		b.space()
		b.open()
		b.expr(s.Cond)
		if s.Msg != nil {
			b.continuation()
			b.brk(" ")
			b.tok(":")
			b.space()
			b.expr(s.Msg)
			b.close()
		}
		b.tok(";")
		b.close()
	case *jast.TryStmt:
		b.tryStmt(s)
	case *jast.SwitchStmt:
		b.switchBlock(s.Selector, s.Cases, s.Last())
	default:
		b.failf("unexpected statement %T", s)
	}
}

func (b *builder) keywordStmt(keyword string, x jast.Expr) {
	b.tok(keyword)
	if x != nil {
		b.space()
		b.expr(x)
	}
	b.tok(";")
}

func (b *builder) jump(keyword, label string) {
	b.tok(keyword)
	if label != "" {
		b.space()
		b.tok(label)
	}
	b.tok(";")
}

func (b *builder) parens(x jast.Expr) {
	b.tok("(")
	b.expr(x)
	b.tok(")")
}

// body emits the body of a control statement: a block after a space, or
// any other statement on its own line one level deeper.
func (b *builder) body(s jast.Stmt) {
	switch s := s.(type) {
	case *jast.Block:
		b.space()
		b.block(s)
	case *jast.EmptyStmt:
		b.tok(";")
	default:
		b.indented(func() {
			b.forced()
			b.flushLeading(s.First())
			b.stmt(s)
		})
	}
}

// afterBody separates a body from a following "else" or "while".
func (b *builder) afterBody(s jast.Stmt) {
	if _, ok := s.(*jast.Block); ok {
		b.space()
		return
	}
	b.newline()
}

func (b *builder) ifStmt(s *jast.IfStmt) {
	b.tok("if")
	b.space()
	b.parens(s.Cond)
	b.body(s.Then)
	if s.Else == nil {
		return
	}
	b.afterBody(s.Then)
	b.tok("else")
	if elif, ok := s.Else.(*jast.IfStmt); ok {
		b.space()
		b.ifStmt(elif)
		return
	}
	b.body(s.Else)
}

func (b *builder) forStmt(s *jast.ForStmt) {
	b.tok("for")
	b.space()
	b.tok("(")
	b.open()
	b.continuation()
	b.brk("")
	switch {
	case s.InitDecl != nil:
		b.varDecl(s.InitDecl.Modifiers, s.InitDecl.Type, s.InitDecl.Vars, false)
	case len(s.Init) > 0:
		b.exprList(s.Init)
	}
	b.tok(";")
	if s.Cond != nil {
		b.brk(" ")
		b.expr(s.Cond)
	}
	b.tok(";")
	if len(s.Update) > 0 {
		b.brk(" ")
		b.exprList(s.Update)
	}
	b.close()
	b.close()
	b.tok(")")
	b.body(s.Body)
}

func (b *builder) exprList(list []jast.Expr) {
	for i, x := range list {
		if i > 0 {
			b.tok(",")
			b.space()
		}
		b.expr(x)
	}
}

func (b *builder) tryStmt(s *jast.TryStmt) {
	b.tok("try")
	b.space()
	if s.Resources != nil {
		b.resources(s.Resources)
		b.space()
	}
	b.block(s.Body)
	for _, c := range s.Catches {
		b.space()
		b.tok("catch")
		b.space()
		b.tok("(")
		b.inlineModifiers(c.Modifiers)
		for i, t := range c.Types {
			if i > 0 {
				b.space()
				b.tok("|")
				b.space()
			}
			b.typ(t)
		}
		b.space()
		b.tok(c.Name)
		b.tok(")")
		b.space()
		b.block(c.Body)
	}
	if s.Finally != nil {
		b.space()
		b.tok("finally")
		b.space()
		b.block(s.Finally)
	}
}

func (b *builder) resources(res *jast.Resources) {
	b.tok("(")
	b.open()
	b.continuation()
	b.brk("")
	b.open()
	for i, r := range res.List {
		if i > 0 {
			b.tok(";")
			b.brk(" ")
		}
		if r.Type == nil {
			b.expr(r.Init)
			continue
		}
		b.open()
		b.inlineModifiers(r.Modifiers)
		b.typ(r.Type)
		b.space()
		b.tok(r.Name)
		b.assignTail("=", r.Init)
		b.close()
	}
	if res.TrailingSemi {
		b.tok(";")
	}
	b.close()
	b.close()
	b.close()
	b.tok(")")
}

// switchBlock emits a switch statement or expression. Case labels sit one
// level in, case bodies two.
func (b *builder) switchBlock(sel jast.Expr, cases []*jast.SwitchCase, closeIdx int) {
	b.tok("switch")
	b.space()
	b.parens(sel)
	b.space()
	b.tok("{")
	if len(cases) == 0 && len(b.file.Leading[closeIdx]) == 0 {
		b.tok("}")
		return
	}
	b.indented(func() {
		b.forced()
		for i, c := range cases {
			if i > 0 {
				b.separate(c.First())
			}
			b.flushLeading(c.First())
			b.switchCase(c)
		}
		b.closingComments(closeIdx, len(cases) > 0)
	})
	b.forced()
	b.tok("}")
}

func (b *builder) switchCase(c *jast.SwitchCase) {
	if c.Default {
		b.tok("default")
	} else {
		b.tok("case")
		b.space()
		for i, label := range c.Labels {
			if i > 0 {
				b.tok(",")
				b.space()
			}
			b.expr(label)
		}
		if c.Guard != nil {
			b.space()
			b.tok("when")
			b.space()
			b.expr(c.Guard)
		}
	}

	if !c.Arrow {
		b.tok(":")
		if len(c.Body) > 0 {
			b.indented(func() {
				b.forced()
				b.stmts(c.Body)
			})
		}
		return
	}

	b.space()
	switch body := c.Body[0].(type) {
	case *jast.ExprStmt:
		b.open()
		b.tok("->")
		b.continuation()
		b.brk(" ")
		b.expr(body.X)
		b.close()
		b.tok(";")
		b.close()
	default:
		b.tok("->")
		b.space()
		b.stmt(body)
	}
}
