package java

import (
	"github.com/yaklabco/jfmt/pkg/jast"
)

// parseType parses a primitive or reference type with optional array
// dimensions.
func (p *parser) parseType() jast.TypeNode {
	start := p.pos
	anns := p.annotations()

	var typ jast.TypeNode
	if p.atKind(jast.TokKeyword) && jast.IsPrimitive(p.tok().Text) {
		name := p.toks[p.next()].Text
		typ = &jast.PrimitiveType{Span: p.span(start), Annotations: anns, Name: name}
	} else {
		typ = p.classType(start, anns)
	}
	return p.dims(start, typ)
}

// dims wraps typ in an ArrayType when "[]" pairs follow.
func (p *parser) dims(start int, typ jast.TypeNode) jast.TypeNode {
	n := 0
	for p.at("[") && p.peekIs(1, "]") {
		p.next()
		p.next()
		n++
	}
	if n == 0 {
		return typ
	}
	return &jast.ArrayType{Span: p.span(start), Elem: typ, Dims: n}
}

func (p *parser) classType(start int, anns []*jast.Annotation) *jast.ClassType {
	typ := &jast.ClassType{Annotations: anns, Name: p.ident()}
	if p.at("<") {
		typ.Args = p.typeArgs()
	}
	typ.Span = p.span(start)

	for p.at(".") && (p.peekTok(1).Kind == jast.TokIdent || p.peekIs(1, "@")) {
		p.next()
		inner := &jast.ClassType{Outer: typ, Annotations: p.annotations(), Name: p.ident()}
		if p.at("<") {
			inner.Args = p.typeArgs()
		}
		inner.Span = p.span(start)
		typ = inner
	}
	return typ
}

func (p *parser) typeArgs() *jast.TypeArgs {
	start := p.expect("<")
	args := &jast.TypeArgs{}
	if !p.at(">") {
		for {
			args.Args = append(args.Args, p.typeArg())
			if !p.got(",") {
				break
			}
		}
	}
	p.expect(">")
	args.Span = p.span(start)
	return args
}

func (p *parser) typeArg() jast.TypeNode {
	start := p.pos
	anns := p.annotations()
	if !p.at("?") {
		if len(anns) > 0 {
			p.pos = start
		}
		return p.parseType()
	}
	p.next()
	w := &jast.WildcardType{Annotations: anns}
	if p.at("extends") || p.at("super") {
		w.Bound = p.toks[p.next()].Text
		w.Type = p.parseType()
	}
	w.Span = p.span(start)
	return w
}

func (p *parser) typeParams() *jast.TypeParams {
	start := p.expect("<")
	params := &jast.TypeParams{}
	for {
		paramStart := p.pos
		tp := &jast.TypeParam{Annotations: p.annotations()}
		tp.Name = p.ident()
		if p.got("extends") {
			tp.Bounds = append(tp.Bounds, p.parseType())
			for p.got("&") {
				tp.Bounds = append(tp.Bounds, p.parseType())
			}
		}
		tp.Span = p.span(paramStart)
		params.Params = append(params.Params, tp)
		if !p.got(",") {
			break
		}
	}
	p.expect(">")
	params.Span = p.span(start)
	return params
}

// exprToType converts a name expression such as "a.b.C" to a class type.
func (p *parser) exprToType(x jast.Expr) jast.TypeNode {
	switch x := x.(type) {
	case *jast.Ident:
		return &jast.ClassType{Span: x.Span, Name: x.Name}
	case *jast.FieldAccess:
		outer, ok := p.exprToType(x.X).(*jast.ClassType)
		if !ok {
			break
		}
		return &jast.ClassType{Span: x.Span, Outer: outer, Name: x.Name}
	}
	p.failf("expected type name")
	return nil
}
