package format

import (
	"strings"

	"github.com/yaklabco/jfmt/pkg/jast"
	"github.com/yaklabco/jfmt/pkg/parser/java"
)

//nolint:gocyclo,cyclop,funlen // Expression dispatch.
func (b *builder) expr(x jast.Expr) {
	switch x := x.(type) {
	case *jast.Ident:
		b.tok(x.Name)
	case *jast.Literal:
		b.tok(x.Value)
	case *jast.FieldAccess, *jast.MethodCall:
		b.selectors(x)
	case *jast.Annotation:
		b.annotation(x)
	case *jast.NewClass:
		b.newClass(x)
	case *jast.NewArray:
		b.tok("new")
		b.space()
		b.typ(x.Elem)
		for _, dim := range x.DimExprs {
			b.tok("[")
			b.expr(dim)
			b.tok("]")
		}
		b.dims(x.ExtraDims)
		if x.Init != nil {
			b.space()
			b.arrayInit(x.Init)
		}
	case *jast.ArrayInit:
		b.arrayInit(x)
	case *jast.IndexExpr:
		b.expr(x.X)
		b.tok("[")
		b.expr(x.Index)
		b.tok("]")
	case *jast.UnaryExpr:
		b.unary(x)
	case *jast.BinaryExpr:
		b.binary(x)
	case *jast.InstanceOf:
		b.expr(x.X)
		b.space()
		b.tok("instanceof")
		b.space()
		if x.Type != nil {
			b.typ(x.Type)
		} else {
			b.expr(x.Pattern)
		}
	case *jast.CondExpr:
		b.open()
		b.expr(x.Cond)
		b.continuation()
		b.brk(" ")
		b.tok("?")
		b.space()
		b.expr(x.Then)
		b.brk(" ")
		b.tok(":")
		b.space()
		b.expr(x.Else)
		b.close()
		b.close()
	case *jast.AssignExpr:
		b.open()
		b.expr(x.LHS)
		b.assignTail(x.Op, x.RHS)
		b.close()
	case *jast.CastExpr:
		b.tok("(")
		for i, t := range x.Types {
			if i > 0 {
				b.space()
				b.tok("&")
				b.space()
			}
			b.typ(t)
		}
		b.tok(")")
		b.space()
		b.expr(x.X)
	case *jast.LambdaExpr:
		b.lambda(x)
	case *jast.MethodRef:
		b.node(x.X)
		b.tok("::")
		if x.TypeArgs != nil {
			b.typeArgs(x.TypeArgs)
		}
		b.tok(x.Name)
	case *jast.ParenExpr:
		b.tok("(")
		b.expr(x.X)
		b.tok(")")
	case *jast.ClassLit:
		b.typ(x.Type)
		b.tok(".")
		b.tok("class")
	case *jast.SwitchExpr:
		b.switchBlock(x.Selector, x.Cases, x.Last())
	case *jast.TypePattern:
		b.inlineModifiers(x.Modifiers)
		b.typ(x.Type)
		b.space()
		b.tok(x.Name)
	case *jast.RecordPattern:
		b.typ(x.Type)
		b.tok("(")
		for i, sub := range x.Subs {
			if i > 0 {
				b.tok(",")
				b.space()
			}
			b.expr(sub)
		}
		b.tok(")")
	default:
		b.failf("unexpected expression %T", x)
	}
}

// node emits an expression or type.
func (b *builder) node(n jast.Node) {
	switch n := n.(type) {
	case jast.TypeNode:
		b.typ(n)
	case jast.Expr:
		b.expr(n)
	default:
		b.failf("unexpected node %T", n)
	}
}

func (b *builder) unary(x *jast.UnaryExpr) {
	if x.Postfix {
		b.expr(x.X)
		b.tok(x.Op)
		return
	}
	b.tok(x.Op)
	// "- -x" and "+ +x" must not fuse into a decrement or increment.
	if (x.Op == "-" || x.Op == "+") && strings.HasPrefix(b.cur().Text, x.Op) {
		b.space()
	}
	b.expr(x.X)
}

// binary flattens a left-nested run of operators of equal precedence and
// breaks before each operator.
func (b *builder) binary(x *jast.BinaryExpr) {
	prec := java.BinaryPrecedence(x.Op)
	var operands []jast.Expr
	var ops []string
	var cur jast.Expr = x
	for {
		bin, ok := cur.(*jast.BinaryExpr)
		if !ok || java.BinaryPrecedence(bin.Op) != prec {
			break
		}
		operands = append(operands, bin.Y)
		ops = append(ops, bin.Op)
		cur = bin.X
	}
	operands = append(operands, cur)

	b.open()
	b.expr(operands[len(operands)-1])
	b.continuation()
	for i := len(ops) - 1; i >= 0; i-- {
		b.brk(" ")
		b.op(ops[i])
		b.space()
		b.expr(operands[i])
	}
	b.close()
	b.close()
}

func (b *builder) lambda(l *jast.LambdaExpr) {
	if !l.Parens {
		b.tok(l.Params[0].Name)
	} else {
		b.tok("(")
		for i, p := range l.Params {
			if i > 0 {
				b.tok(",")
				b.space()
			}
			b.param(p)
		}
		b.tok(")")
	}
	b.space()
	if body, ok := l.Body.(*jast.Block); ok {
		b.tok("->")
		b.space()
		b.block(body)
		return
	}
	b.open()
	b.tok("->")
	b.continuation()
	b.brk(" ")
	b.expr(l.Body.(jast.Expr))
	b.close()
	b.close()
}

// selectors emits a qualified name, field access or method call chain.
// A chain with two or more qualified calls keeps its receiver and first
// call together and puts every later selector on its own line when it does
// not fit.
func (b *builder) selectors(x jast.Expr) {
	root, links := selectorChain(x)
	calls := 0
	for _, l := range links {
		if _, ok := l.(*jast.MethodCall); ok {
			calls++
		}
	}

	if calls < 2 {
		b.chainRoot(root)
		for _, l := range links {
			b.link(l)
		}
		return
	}

	b.open()
	b.chainRoot(root)
	rest := links
	if _, ok := root.(*jast.MethodCall); !ok {
		for i, l := range links {
			b.link(l)
			if _, isCall := l.(*jast.MethodCall); isCall {
				rest = links[i+1:]
				break
			}
		}
	}
	b.continuation()
	for _, l := range rest {
		b.brk("")
		b.link(l)
	}
	b.close()
	b.close()
}

// selectorChain splits a selector expression into its innermost receiver
// and the qualified selectors applied to it, in source order.
func selectorChain(x jast.Expr) (jast.Expr, []jast.Expr) {
	var links []jast.Expr
	for {
		switch n := x.(type) {
		case *jast.MethodCall:
			if n.X == nil {
				return n, reverse(links)
			}
			links = append(links, n)
			x = n.X
		case *jast.FieldAccess:
			links = append(links, n)
			x = n.X
		default:
			return x, reverse(links)
		}
	}
}

func reverse(list []jast.Expr) []jast.Expr {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list
}

func (b *builder) chainRoot(root jast.Expr) {
	if call, ok := root.(*jast.MethodCall); ok && call.X == nil {
		if call.TypeArgs != nil {
			b.typeArgs(call.TypeArgs)
		}
		b.tok(call.Name)
		b.args(call.Args)
		return
	}
	b.expr(root)
}

// link emits ".name" or ".name(args)".
func (b *builder) link(l jast.Expr) {
	b.tok(".")
	switch l := l.(type) {
	case *jast.MethodCall:
		if l.TypeArgs != nil {
			b.typeArgs(l.TypeArgs)
		}
		b.tok(l.Name)
		b.args(l.Args)
	case *jast.FieldAccess:
		b.tok(l.Name)
	}
}

// args emits "(a, b)": the list moves to a continuation line when the
// call does not fit, then splits one argument per line.
func (b *builder) args(a *jast.Args) {
	b.tok("(")
	if len(a.List) == 0 {
		b.tok(")")
		return
	}
	b.open()
	b.continuation()
	b.brk("")
	b.open()
	for i, x := range a.List {
		if i > 0 {
			b.tok(",")
			b.brk(" ")
		}
		b.expr(x)
	}
	b.close()
	b.close()
	b.close()
	b.tok(")")
}

func (b *builder) newClass(x *jast.NewClass) {
	if x.Outer != nil {
		b.expr(x.Outer)
		b.tok(".")
	}
	b.tok("new")
	b.space()
	if x.TypeArgs != nil {
		b.typeArgs(x.TypeArgs)
	}
	b.typ(x.Type)
	b.args(x.Args)
	if x.Body != nil {
		b.space()
		b.classBody(x.Body)
	}
}

// arrayInit emits "{a, b}", or one element per line when it does not fit.
func (b *builder) arrayInit(a *jast.ArrayInit) {
	b.tok("{")
	if len(a.Elems) == 0 {
		if a.TrailingComma {
			b.tok(",")
		}
		b.tok("}")
		return
	}
	b.open()
	b.indented(func() {
		b.brk("")
		for i, x := range a.Elems {
			if i > 0 {
				b.tok(",")
				b.brk(" ")
			}
			b.expr(x)
		}
		if a.TrailingComma {
			b.tok(",")
		}
	})
	b.brk("")
	b.tok("}")
	b.close()
}
