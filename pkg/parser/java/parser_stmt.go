package java

import (
	"github.com/yaklabco/jfmt/pkg/jast"
)

func (p *parser) block() *jast.Block {
	start := p.expect("{")
	b := &jast.Block{}
	for !p.at("}") {
		if p.atEOF() {
			p.failf("expected \"}\", found end of file")
		}
		b.Stmts = append(b.Stmts, p.stmt())
	}
	p.next()
	b.Span = p.span(start)
	return b
}

//nolint:gocyclo,cyclop,funlen // Statement dispatch on the leading token.
func (p *parser) stmt() jast.Stmt {
	start := p.pos
	switch {
	case p.at("{"):
		return p.block()
	case p.at(";"):
		p.next()
		return &jast.EmptyStmt{Span: p.span(start)}
	case p.at("if"):
		return p.ifStmt()
	case p.at("while"):
		p.next()
		cond := p.parenExpr()
		body := p.stmt()
		return &jast.WhileStmt{Span: p.span(start), Cond: cond, Body: body}
	case p.at("do"):
		p.next()
		body := p.stmt()
		p.expect("while")
		cond := p.parenExpr()
		p.expect(";")
		return &jast.DoStmt{Span: p.span(start), Body: body, Cond: cond}
	case p.at("for"):
		return p.forStmt()
	case p.at("try"):
		return p.tryStmt()
	case p.at("switch"):
		p.next()
		sel, cases := p.switchBody()
		return &jast.SwitchStmt{Span: p.span(start), Selector: sel, Cases: cases}
	case p.at("return"):
		p.next()
		s := &jast.ReturnStmt{}
		if !p.at(";") {
			s.X = p.expr()
		}
		p.expect(";")
		s.Span = p.span(start)
		return s
	case p.at("throw"):
		p.next()
		x := p.expr()
		p.expect(";")
		return &jast.ThrowStmt{Span: p.span(start), X: x}
	case p.at("break"), p.at("continue"):
		kw := p.toks[p.next()].Text
		label := ""
		if p.atKind(jast.TokIdent) {
			label = p.ident()
		}
		p.expect(";")
		if kw == "break" {
			return &jast.BreakStmt{Span: p.span(start), Label: label}
		}
		return &jast.ContinueStmt{Span: p.span(start), Label: label}
	case p.at("synchronized") && p.peekIs(1, "("):
		p.next()
		lock := p.parenExpr()
		body := p.block()
		return &jast.SyncStmt{Span: p.span(start), Lock: lock, Body: body}
	case p.at("assert"):
		p.next()
		s := &jast.AssertStmt{Cond: p.expr()}
		if p.got(":") {
			s.Msg = p.expr()
		}
		p.expect(";")
		s.Span = p.span(start)
		return s
	case p.at("yield") && p.atKind(jast.TokIdent) && p.atYieldStmt():
		p.next()
		x := p.expr()
		p.expect(";")
		return &jast.YieldStmt{Span: p.span(start), X: x}
	case p.atKind(jast.TokIdent) && p.peekIs(1, ":"):
		label := p.ident()
		p.next()
		body := p.stmt()
		return &jast.LabeledStmt{Span: p.span(start), Label: label, Body: body}
	}

	if p.atTypeDeclStart() {
		decl := p.classDecl(nil)
		return &jast.LocalClassStmt{Span: decl.Span, Decl: decl}
	}

	mods := p.modifiers()
	if mods != nil {
		if p.atTypeDeclStart() {
			decl := p.classDecl(mods)
			return &jast.LocalClassStmt{Span: decl.Span, Decl: decl}
		}
		decl := p.localVarDecl(start, mods)
		p.expect(";")
		decl.Span = p.span(start)
		return decl
	}

	if p.atKind(jast.TokIdent) || (p.atKind(jast.TokKeyword) && jast.IsPrimitive(p.tok().Text)) {
		if decl, ok := attempt(p, func() *jast.LocalVarDecl { return p.localVarDeclHead(start) }); ok {
			decl.Vars = p.declarators()
			p.expect(";")
			decl.Span = p.span(start)
			return decl
		}
	}

	x := p.expr()
	p.expect(";")
	return &jast.ExprStmt{Span: p.span(start), X: x}
}

// atYieldStmt reports whether the contextual keyword "yield" at the current
// position starts a yield statement rather than an expression.
func (p *parser) atYieldStmt() bool {
	next := p.peekTok(1)
	switch next.Text {
	case "=", ".", "[", ";", ",", ")", "++", "--", "+=", "-=", "*=", "/=",
		"%=", "&=", "|=", "^=", "<<=", ">", "->", "::", "?", ":":
		return false
	}
	return next.Kind != jast.TokEOF
}

// localVarDeclHead parses the type of a local variable declaration and
// verifies a declarator follows. It fails when the tokens read as an
// expression instead.
func (p *parser) localVarDeclHead(start int) *jast.LocalVarDecl {
	typ := p.parseType()
	if !p.atKind(jast.TokIdent) {
		p.failf("expected identifier")
	}
	switch p.peekTok(1).Text {
	case "=", ";", ",", "[", ":":
	default:
		p.failf("expected declarator")
	}
	return &jast.LocalVarDecl{Span: jast.Span{FirstTok: start}, Type: typ}
}

func (p *parser) localVarDecl(start int, mods *jast.Modifiers) *jast.LocalVarDecl {
	decl := &jast.LocalVarDecl{Modifiers: mods, Type: p.parseType()}
	decl.Vars = p.declarators()
	decl.Span = p.span(start)
	return decl
}

func (p *parser) parenExpr() jast.Expr {
	p.expect("(")
	x := p.expr()
	p.expect(")")
	return x
}

func (p *parser) ifStmt() *jast.IfStmt {
	start := p.expect("if")
	s := &jast.IfStmt{Cond: p.parenExpr()}
	s.Then = p.stmt()
	if p.got("else") {
		s.Else = p.stmt()
	}
	s.Span = p.span(start)
	return s
}

func (p *parser) forStmt() jast.Stmt {
	start := p.expect("for")
	p.expect("(")

	if each, ok := attempt(p, func() *jast.ForEachStmt {
		s := &jast.ForEachStmt{Modifiers: p.modifiers()}
		s.Type = p.parseType()
		s.Name = p.ident()
		p.expect(":")
		return s
	}); ok {
		each.Iter = p.expr()
		p.expect(")")
		each.Body = p.stmt()
		each.Span = p.span(start)
		return each
	}

	s := &jast.ForStmt{}
	if !p.at(";") {
		initStart := p.pos
		if mods := p.modifiers(); mods != nil {
			s.InitDecl = p.localVarDecl(initStart, mods)
		} else if decl, ok := attempt(p, func() *jast.LocalVarDecl { return p.localVarDeclHead(initStart) }); ok {
			decl.Vars = p.declarators()
			decl.Span = p.span(initStart)
			s.InitDecl = decl
		} else {
			s.Init = p.exprList()
		}
	}
	p.expect(";")
	if !p.at(";") {
		s.Cond = p.expr()
	}
	p.expect(";")
	if !p.at(")") {
		s.Update = p.exprList()
	}
	p.expect(")")
	s.Body = p.stmt()
	s.Span = p.span(start)
	return s
}

func (p *parser) exprList() []jast.Expr {
	list := []jast.Expr{p.expr()}
	for p.got(",") {
		list = append(list, p.expr())
	}
	return list
}

func (p *parser) tryStmt() *jast.TryStmt {
	start := p.expect("try")
	s := &jast.TryStmt{}
	if p.at("(") {
		s.Resources = p.resources()
	}
	s.Body = p.block()
	for p.at("catch") {
		s.Catches = append(s.Catches, p.catchClause())
	}
	if p.got("finally") {
		s.Finally = p.block()
	}
	if s.Resources == nil && len(s.Catches) == 0 && s.Finally == nil {
		p.failf("expected \"catch\" or \"finally\"")
	}
	s.Span = p.span(start)
	return s
}

func (p *parser) resources() *jast.Resources {
	start := p.expect("(")
	res := &jast.Resources{}
	for {
		resStart := p.pos
		r, ok := attempt(p, func() *jast.Resource {
			r := &jast.Resource{Modifiers: p.modifiers()}
			r.Type = p.parseType()
			r.Name = p.ident()
			p.expect("=")
			return r
		})
		if ok {
			r.Init = p.expr()
		} else {
			r = &jast.Resource{Init: p.expr()}
		}
		r.Span = p.span(resStart)
		res.List = append(res.List, r)
		if !p.got(";") {
			break
		}
		if p.at(")") {
			res.TrailingSemi = true
			break
		}
	}
	p.expect(")")
	res.Span = p.span(start)
	return res
}

func (p *parser) catchClause() *jast.CatchClause {
	start := p.expect("catch")
	p.expect("(")
	c := &jast.CatchClause{Modifiers: p.modifiers()}
	c.Types = append(c.Types, p.parseType())
	for p.got("|") {
		c.Types = append(c.Types, p.parseType())
	}
	c.Name = p.ident()
	p.expect(")")
	c.Body = p.block()
	c.Span = p.span(start)
	return c
}

// switchBody parses "(selector) { cases }" after the switch keyword.
func (p *parser) switchBody() (jast.Expr, []*jast.SwitchCase) {
	sel := p.parenExpr()
	p.expect("{")
	var cases []*jast.SwitchCase
	for !p.at("}") {
		cases = append(cases, p.switchCase())
	}
	p.next()
	return sel, cases
}

func (p *parser) switchCase() *jast.SwitchCase {
	start := p.pos
	c := &jast.SwitchCase{}
	switch {
	case p.got("default"):
		c.Default = true
	case p.got("case"):
		c.Labels = p.caseLabels()
		if p.at("when") && p.atKind(jast.TokIdent) {
			p.next()
			saved := p.noLambda
			p.noLambda = true
			c.Guard = p.expr()
			p.noLambda = saved
		}
	default:
		p.failf("expected \"case\" or \"default\", found %s", p.describe())
	}

	if p.got("->") {
		c.Arrow = true
		switch {
		case p.at("{"):
			c.Body = []jast.Stmt{p.block()}
		case p.at("throw"):
			c.Body = []jast.Stmt{p.stmt()}
		default:
			bodyStart := p.pos
			x := p.expr()
			p.expect(";")
			c.Body = []jast.Stmt{&jast.ExprStmt{Span: p.span(bodyStart), X: x}}
		}
		c.Span = p.span(start)
		return c
	}

	p.expect(":")
	for !p.at("case") && !p.at("default") && !p.at("}") {
		if p.atEOF() {
			p.failf("expected \"}\", found end of file")
		}
		c.Body = append(c.Body, p.stmt())
	}
	c.Span = p.span(start)
	return c
}

func (p *parser) caseLabels() []jast.Expr {
	saved := p.noLambda
	p.noLambda = true
	defer func() { p.noLambda = saved }()

	var labels []jast.Expr
	for {
		labels = append(labels, p.caseLabel())
		if !p.got(",") {
			return labels
		}
	}
}

func (p *parser) caseLabel() jast.Expr {
	start := p.pos
	if p.at("default") {
		p.next()
		return &jast.Ident{Span: p.span(start), Name: "default"}
	}
	if pat, ok := attempt(p, p.pattern); ok {
		return pat
	}
	return p.ternary()
}

// pattern parses a type pattern or record pattern.
func (p *parser) pattern() jast.Expr {
	start := p.pos
	mods := p.modifiers()
	typ := p.parseType()
	if mods == nil && p.at("(") {
		p.next()
		rp := &jast.RecordPattern{Type: typ}
		if !p.at(")") {
			for {
				rp.Subs = append(rp.Subs, p.pattern())
				if !p.got(",") {
					break
				}
			}
		}
		p.expect(")")
		rp.Span = p.span(start)
		return rp
	}
	name := p.ident()
	return &jast.TypePattern{Span: p.span(start), Modifiers: mods, Type: typ, Name: name}
}
