package java

import (
	"github.com/yaklabco/jfmt/pkg/jast"
)

// binaryPrec maps binary operators to their precedence; higher binds
// tighter. instanceof shares the relational level.
//
//nolint:gochecknoglobals // Read-only lookup table.
var binaryPrec = map[string]int{
	"||": 1,
	"&&": 2,
	"|":  3,
	"^":  4,
	"&":  5,
	"==": 6, "!=": 6,
	"<": 7, ">": 7, "<=": 7, ">=": 7, "instanceof": 7,
	"<<": 8, ">>": 8, ">>>": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
}

// BinaryPrecedence returns the precedence of a binary operator, or 0.
func BinaryPrecedence(op string) int {
	return binaryPrec[op]
}

//nolint:gochecknoglobals // Read-only lookup table.
var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true, ">>>=": true,
}

// peekOp returns the operator at the current position and the number of
// tokens it spans. Shift operators and their compound assignments are
// assembled from adjacent ">" and ">=" tokens.
func (p *parser) peekOp() (string, int) {
	t := p.tok()
	if t.Kind != jast.TokOperator && t.Text != "instanceof" {
		return "", 0
	}
	if t.Text != ">" {
		return t.Text, 1
	}
	switch {
	case p.peekIs(1, ">=") && p.adjacent(0):
		return ">>=", 2
	case p.peekIs(1, ">") && p.adjacent(0):
		switch {
		case p.peekIs(2, ">=") && p.adjacent(1):
			return ">>>=", 3
		case p.peekIs(2, ">") && p.adjacent(1):
			return ">>>", 3
		default:
			return ">>", 2
		}
	default:
		return ">", 1
	}
}

func (p *parser) expr() jast.Expr {
	start := p.pos
	lhs := p.ternary()
	op, n := p.peekOp()
	if !assignOps[op] {
		return lhs
	}
	p.pos += n
	rhs := p.expr()
	return &jast.AssignExpr{Span: p.span(start), Op: op, LHS: lhs, RHS: rhs}
}

func (p *parser) ternary() jast.Expr {
	start := p.pos
	cond := p.binary(1)
	if !p.at("?") {
		return cond
	}
	p.next()
	then := p.ternaryOrLambda()
	p.expect(":")
	els := p.ternaryOrLambda()
	return &jast.CondExpr{Span: p.span(start), Cond: cond, Then: then, Else: els}
}

func (p *parser) ternaryOrLambda() jast.Expr {
	if p.atLambda() {
		return p.lambda()
	}
	return p.ternary()
}

func (p *parser) binary(minPrec int) jast.Expr {
	start := p.pos
	x := p.unary()
	for {
		op, n := p.peekOp()
		prec := binaryPrec[op]
		if prec == 0 || prec < minPrec {
			return x
		}
		if op == "instanceof" {
			p.next()
			x = p.instanceOf(start, x)
			continue
		}
		p.pos += n
		y := p.binary(prec + 1)
		x = &jast.BinaryExpr{Span: p.span(start), Op: op, X: x, Y: y}
	}
}

func (p *parser) instanceOf(start int, x jast.Expr) jast.Expr {
	io := &jast.InstanceOf{X: x}
	if pat, ok := attempt(p, p.pattern); ok {
		io.Pattern = pat
	} else {
		io.Type = p.parseType()
	}
	io.Span = p.span(start)
	return io
}

func (p *parser) unary() jast.Expr {
	start := p.pos
	switch {
	case p.at("+"), p.at("-"), p.at("++"), p.at("--"), p.at("!"), p.at("~"):
		op := p.toks[p.next()].Text
		x := p.unary()
		return &jast.UnaryExpr{Span: p.span(start), Op: op, X: x}
	case p.atLambda():
		return p.lambda()
	case p.at("("):
		if cast, ok := attempt(p, p.cast); ok {
			return cast
		}
	}
	return p.postfix(p.primary())
}

// atLambda reports whether a lambda expression starts here.
func (p *parser) atLambda() bool {
	if p.noLambda {
		return false
	}
	if p.atKind(jast.TokIdent) && p.peekIs(1, "->") {
		return true
	}
	if !p.at("(") {
		return false
	}
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		switch p.toks[i].Text {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return i+1 < len(p.toks) && p.toks[i+1].Text == "->"
			}
		case ";", "{", "}":
			return false
		}
	}
	return false
}

func (p *parser) lambda() jast.Expr {
	start := p.pos
	lam := &jast.LambdaExpr{}
	if p.atKind(jast.TokIdent) {
		idx := p.next()
		lam.Params = []*jast.Param{{Span: jast.Span{FirstTok: idx, LastTok: idx}, Name: p.toks[idx].Text}}
	} else {
		lam.Parens = true
		p.expect("(")
		if !p.at(")") {
			inferred := p.atKind(jast.TokIdent) && (p.peekIs(1, ",") || p.peekIs(1, ")"))
			for {
				if inferred {
					idx := p.pos
					name := p.ident()
					lam.Params = append(lam.Params, &jast.Param{Span: jast.Span{FirstTok: idx, LastTok: idx}, Name: name})
				} else {
					lam.Params = append(lam.Params, p.param())
				}
				if !p.got(",") {
					break
				}
			}
		}
		p.expect(")")
	}
	p.expect("->")
	if p.at("{") {
		lam.Body = p.block()
	} else {
		lam.Body = p.expr()
	}
	lam.Span = p.span(start)
	return lam
}

// cast parses "(T) x". It fails when the parenthesized tokens are not a
// type or when what follows cannot be a cast operand.
func (p *parser) cast() jast.Expr {
	start := p.expect("(")
	c := &jast.CastExpr{Types: []jast.TypeNode{p.parseType()}}
	for p.got("&") {
		c.Types = append(c.Types, p.parseType())
	}
	p.expect(")")

	_, primitive := c.Types[0].(*jast.PrimitiveType)
	if !primitive || len(c.Types) > 1 {
		if !p.atCastOperand() {
			p.failf("not a cast")
		}
	} else if p.at(".") || p.at("[") || p.at("::") {
		p.failf("not a cast")
	}
	c.X = p.unary()
	c.Span = p.span(start)
	return c
}

// atCastOperand reports whether the current token can start the operand of
// a reference type cast. Unary plus and minus cannot.
func (p *parser) atCastOperand() bool {
	t := p.tok()
	switch t.Kind {
	case jast.TokIdent, jast.TokInt, jast.TokFloat, jast.TokChar, jast.TokString, jast.TokTextBlock:
		return true
	case jast.TokKeyword:
		switch t.Text {
		case "this", "super", "new", "true", "false", "null", "switch":
			return true
		}
		return jast.IsPrimitive(t.Text)
	case jast.TokOperator:
		return t.Text == "(" || t.Text == "!" || t.Text == "~"
	default:
		return false
	}
}

//nolint:gocyclo,cyclop,funlen // Primary expression dispatch.
func (p *parser) primary() jast.Expr {
	start := p.pos
	t := p.tok()
	switch {
	case t.IsLiteral():
		p.next()
		return &jast.Literal{Span: p.span(start), Kind: t.Kind, Value: t.Text}

	case p.at("("):
		p.next()
		x := p.expr()
		p.expect(")")
		return &jast.ParenExpr{Span: p.span(start), X: x}

	case p.at("this"), p.at("super"):
		p.next()
		if p.at("(") {
			args := p.args()
			return &jast.MethodCall{Span: p.span(start), Name: t.Text, Args: args}
		}
		return &jast.Ident{Span: p.span(start), Name: t.Text}

	case p.at("new"):
		return p.creator(start, nil)

	case p.at("switch"):
		p.next()
		sel, cases := p.switchBody()
		return &jast.SwitchExpr{Span: p.span(start), Selector: sel, Cases: cases}

	case t.Kind == jast.TokKeyword && jast.IsPrimitive(t.Text), p.at("@"):
		typ := p.parseType()
		return p.typeSuffix(start, typ)

	case t.Kind == jast.TokIdent:
		if p.peekIs(1, "<") || (p.peekIs(1, "[") && p.peekIs(2, "]")) || p.peekIs(1, ".") {
			if x, ok := attempt(p, func() jast.Expr {
				typ := p.parseType()
				if _, isClass := typ.(*jast.ClassType); isClass && !p.at("::") {
					p.failf("not a type expression")
				}
				return p.typeSuffix(start, typ)
			}); ok {
				return x
			}
		}
		p.next()
		if p.at("(") {
			args := p.args()
			return &jast.MethodCall{Span: p.span(start), Name: t.Text, Args: args}
		}
		return &jast.Ident{Span: p.span(start), Name: t.Text}
	}

	p.failf("expected expression, found %s", p.describe())
	return nil
}

// typeSuffix completes a primary that starts with a type: "T.class" or
// "T::name".
func (p *parser) typeSuffix(start int, typ jast.TypeNode) jast.Expr {
	switch {
	case p.at(".") && p.peekIs(1, "class"):
		p.next()
		p.next()
		return &jast.ClassLit{Span: p.span(start), Type: typ}
	case p.at("::"):
		return p.methodRef(start, typ)
	default:
		p.failf("expected \".class\" or \"::\"")
		return nil
	}
}

func (p *parser) methodRef(start int, x jast.Node) jast.Expr {
	p.expect("::")
	ref := &jast.MethodRef{X: x}
	if p.at("<") {
		ref.TypeArgs = p.typeArgs()
	}
	if p.at("new") {
		p.next()
		ref.Name = "new"
	} else {
		ref.Name = p.ident()
	}
	ref.Span = p.span(start)
	return ref
}

//nolint:gocyclo,cyclop // Selector dispatch.
func (p *parser) postfix(x jast.Expr) jast.Expr {
	start := x.First()
	for {
		switch {
		case p.at("."):
			p.next()
			switch {
			case p.at("<"):
				typeArgs := p.typeArgs()
				name := p.memberName()
				args := p.args()
				x = &jast.MethodCall{Span: p.span(start), X: x, TypeArgs: typeArgs, Name: name, Args: args}
			case p.at("new"):
				x = p.creator(start, x)
			case p.at("class"):
				p.next()
				x = &jast.ClassLit{Span: p.span(start), Type: p.exprToType(x)}
			default:
				name := p.memberName()
				if p.at("(") {
					args := p.args()
					x = &jast.MethodCall{Span: p.span(start), X: x, Name: name, Args: args}
				} else {
					x = &jast.FieldAccess{Span: p.span(start), X: x, Name: name}
				}
			}
		case p.at("["):
			p.next()
			index := p.expr()
			p.expect("]")
			x = &jast.IndexExpr{Span: p.span(start), X: x, Index: index}
		case p.at("::"):
			x = p.methodRef(start, x)
		case p.at("++"), p.at("--"):
			op := p.toks[p.next()].Text
			x = &jast.UnaryExpr{Span: p.span(start), Op: op, X: x, Postfix: true}
		default:
			return x
		}
	}
}

// memberName parses the name after a dot: an identifier, this or super.
func (p *parser) memberName() string {
	if p.at("this") || p.at("super") {
		return p.toks[p.next()].Text
	}
	return p.ident()
}

func (p *parser) args() *jast.Args {
	start := p.expect("(")
	args := &jast.Args{}
	if !p.at(")") {
		args.List = p.exprList()
	}
	p.expect(")")
	args.Span = p.span(start)
	return args
}

// creator parses "new T(args) [body]" or an array creation. outer is the
// qualifying instance of an inner class creation.
func (p *parser) creator(start int, outer jast.Expr) jast.Expr {
	p.expect("new")
	var typeArgs *jast.TypeArgs
	if p.at("<") {
		typeArgs = p.typeArgs()
	}

	typeStart := p.pos
	anns := p.annotations()
	var typ jast.TypeNode
	if p.atKind(jast.TokKeyword) && jast.IsPrimitive(p.tok().Text) {
		name := p.toks[p.next()].Text
		typ = &jast.PrimitiveType{Span: p.span(typeStart), Annotations: anns, Name: name}
	} else {
		typ = p.classType(typeStart, anns)
	}

	if p.at("[") {
		arr := &jast.NewArray{Elem: typ}
		for p.at("[") && !p.peekIs(1, "]") {
			p.next()
			arr.DimExprs = append(arr.DimExprs, p.expr())
			p.expect("]")
		}
		for p.at("[") && p.peekIs(1, "]") {
			p.next()
			p.next()
			arr.ExtraDims++
		}
		if len(arr.DimExprs) == 0 {
			arr.Init = p.arrayInitWith(p.varInit)
		}
		arr.Span = p.span(start)
		return arr
	}

	nc := &jast.NewClass{Outer: outer, TypeArgs: typeArgs, Type: typ}
	nc.Args = p.args()
	if p.at("{") {
		nc.Body = p.classBody(jast.KindClass)
	}
	nc.Span = p.span(start)
	return nc
}

// arrayInitWith parses "{e, e, ...}" using elem for each element.
func (p *parser) arrayInitWith(elem func() jast.Expr) *jast.ArrayInit {
	start := p.expect("{")
	init := &jast.ArrayInit{}
	for !p.at("}") {
		if p.at(",") && len(init.Elems) == 0 {
			p.next()
			init.TrailingComma = true
			break
		}
		init.Elems = append(init.Elems, elem())
		if !p.got(",") {
			break
		}
		if p.at("}") {
			init.TrailingComma = true
		}
	}
	p.expect("}")
	init.Span = p.span(start)
	return init
}
