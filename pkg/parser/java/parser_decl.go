package java

import (
	"github.com/yaklabco/jfmt/pkg/jast"
)

func (p *parser) compilationUnit() *jast.CompilationUnit {
	unit := &jast.CompilationUnit{}
	start := p.pos

	mods := p.modifiers()
	if p.at("package") {
		unit.Package = p.packageDecl(start, mods)
		mods = nil
	}
	for mods.Empty() && p.at("import") {
		unit.Imports = append(unit.Imports, p.importDecl())
	}
	for {
		if mods.Empty() {
			if p.atEOF() {
				break
			}
			if p.at(";") {
				semi := p.next()
				unit.Types = append(unit.Types, &jast.EmptyDecl{Span: jast.Span{FirstTok: semi, LastTok: semi}})
				continue
			}
			if p.at("import") {
				p.failf("imports must precede type declarations")
			}
			mods = p.modifiers()
		}
		if !p.atTypeDeclStart() {
			p.failf("expected type declaration, found %s", p.describe())
		}
		unit.Types = append(unit.Types, p.classDecl(mods))
		mods = nil
	}
	unit.Span = jast.Span{FirstTok: start, LastTok: p.pos}
	return unit
}

func (p *parser) packageDecl(start int, mods *jast.Modifiers) *jast.PackageDecl {
	decl := &jast.PackageDecl{}
	if mods != nil {
		if len(mods.Keywords()) > 0 {
			p.failf("unexpected modifier before package declaration")
		}
		decl.Annotations = mods.Annotations()
	}
	p.expect("package")
	decl.Name = p.qualifiedName()
	p.expect(";")
	decl.Span = p.span(start)
	return decl
}

func (p *parser) importDecl() *jast.ImportDecl {
	start := p.expect("import")
	decl := &jast.ImportDecl{}
	if p.at("static") {
		p.next()
		decl.Static = true
	}
	decl.Name = p.qualifiedName()
	if p.at(".") && p.peekIs(1, "*") {
		p.next()
		p.next()
		decl.Wildcard = true
	}
	p.expect(";")
	decl.Span = p.span(start)
	return decl
}

// modifiers parses annotations and modifier keywords. It returns nil when
// there are none.
func (p *parser) modifiers() *jast.Modifiers {
	start := p.pos
	mods := &jast.Modifiers{}
	for {
		switch {
		case p.at("@") && !p.peekIs(1, "interface"):
			mods.Items = append(mods.Items, p.annotation())
		case p.atKind(jast.TokKeyword) && jast.IsModifierKeyword(p.tok().Text):
			idx := p.next()
			mods.Items = append(mods.Items, &jast.Keyword{
				Span: jast.Span{FirstTok: idx, LastTok: idx},
				Name: p.toks[idx].Text,
			})
		case p.at("sealed") && p.atKind(jast.TokIdent) && p.peekStartsDecl(1):
			idx := p.next()
			mods.Items = append(mods.Items, &jast.Keyword{
				Span: jast.Span{FirstTok: idx, LastTok: idx},
				Name: "sealed",
			})
		case p.at("non") && p.peekIs(1, "-") && p.peekIs(2, "sealed") && p.adjacent(0) && p.adjacent(1):
			first := p.next()
			p.next()
			last := p.next()
			mods.Items = append(mods.Items, &jast.Keyword{
				Span: jast.Span{FirstTok: first, LastTok: last},
				Name: "non-sealed",
			})
		default:
			if len(mods.Items) == 0 {
				return nil
			}
			mods.Span = p.span(start)
			return mods
		}
	}
}

// peekStartsDecl reports whether the token n ahead continues a modified
// type declaration, which disambiguates the contextual keyword "sealed".
func (p *parser) peekStartsDecl(n int) bool {
	t := p.peekTok(n)
	if t.Kind == jast.TokKeyword {
		return t.Text == "class" || t.Text == "interface" || jast.IsModifierKeyword(t.Text)
	}
	return t.Text == "non" || t.Text == "record" || t.Text == "@"
}

func (p *parser) annotation() *jast.Annotation {
	start := p.expect("@")
	ann := &jast.Annotation{Name: p.qualifiedName()}
	if p.at("(") {
		p.next()
		ann.Parens = true
		if !p.at(")") {
			if p.atKind(jast.TokIdent) && p.peekIs(1, "=") {
				for {
					argStart := p.pos
					name := p.ident()
					p.expect("=")
					value := p.elementValue()
					ann.Args = append(ann.Args, &jast.AnnotationArg{Span: p.span(argStart), Name: name, Value: value})
					if !p.got(",") {
						break
					}
				}
			} else {
				argStart := p.pos
				value := p.elementValue()
				ann.Args = append(ann.Args, &jast.AnnotationArg{Span: p.span(argStart), Value: value})
			}
		}
		p.expect(")")
	}
	ann.Span = p.span(start)
	return ann
}

func (p *parser) elementValue() jast.Expr {
	switch {
	case p.at("@"):
		return p.annotation()
	case p.at("{"):
		return p.arrayInitWith(p.elementValue)
	default:
		return p.ternary()
	}
}

func (p *parser) annotations() []*jast.Annotation {
	var out []*jast.Annotation
	for p.at("@") && !p.peekIs(1, "interface") {
		out = append(out, p.annotation())
	}
	return out
}

// atTypeDeclStart reports whether a class, interface, enum, record or
// annotation type declaration starts at the current token.
func (p *parser) atTypeDeclStart() bool {
	switch {
	case p.at("class"), p.at("interface"), p.at("enum"):
		return true
	case p.at("@") && p.peekIs(1, "interface"):
		return true
	case p.at("record") && p.atKind(jast.TokIdent) && p.peekTok(1).Kind == jast.TokIdent &&
		(p.peekIs(2, "(") || p.peekIs(2, "<")):
		return true
	default:
		return false
	}
}

//nolint:funlen // Declaration header grammar.
func (p *parser) classDecl(mods *jast.Modifiers) *jast.ClassDecl {
	start := p.pos
	if mods != nil {
		start = mods.FirstTok
	}
	decl := &jast.ClassDecl{Modifiers: mods}

	switch {
	case p.at("class"):
		decl.Kind = jast.KindClass
	case p.at("interface"):
		decl.Kind = jast.KindInterface
	case p.at("enum"):
		decl.Kind = jast.KindEnum
	case p.at("record"):
		decl.Kind = jast.KindRecord
	case p.at("@"):
		decl.Kind = jast.KindAnnotation
		p.next()
	}
	p.next()
	decl.Name = p.ident()

	if p.at("<") {
		decl.TypeParams = p.typeParams()
	}
	if decl.Kind == jast.KindRecord {
		decl.Components = p.params().List
		if decl.Components == nil {
			decl.Components = []*jast.Param{}
		}
	}
	if p.got("extends") {
		decl.Extends = p.typeList()
	}
	if p.got("implements") {
		decl.Implements = p.typeList()
	}
	if p.at("permits") && p.atKind(jast.TokIdent) {
		p.next()
		decl.Permits = p.typeList()
	}
	decl.Body = p.classBody(decl.Kind)
	decl.Span = p.span(start)
	return decl
}

func (p *parser) typeList() []jast.TypeNode {
	list := []jast.TypeNode{p.parseType()}
	for p.got(",") {
		list = append(list, p.parseType())
	}
	return list
}

func (p *parser) classBody(kind jast.ClassKind) *jast.ClassBody {
	start := p.expect("{")
	body := &jast.ClassBody{}
	if kind == jast.KindEnum {
		p.enumConstants(body)
	}
	for !p.at("}") {
		if p.atEOF() {
			p.failf("expected \"}\", found end of file")
		}
		body.Members = append(body.Members, p.member(kind))
	}
	p.next()
	body.Span = p.span(start)
	return body
}

func (p *parser) enumConstants(body *jast.ClassBody) {
	for !p.at(";") && !p.at("}") {
		start := p.pos
		c := &jast.EnumConstant{Annotations: p.annotations()}
		c.Name = p.ident()
		if p.at("(") {
			c.Args = p.args()
		}
		if p.at("{") {
			c.Body = p.classBody(jast.KindClass)
		}
		c.Span = p.span(start)
		body.Constants = append(body.Constants, c)
		if !p.got(",") {
			break
		}
		if p.at(";") || p.at("}") {
			body.TrailingComma = true
		}
	}
	if p.got(";") {
		body.Semicolon = true
	}
}

func (p *parser) member(kind jast.ClassKind) jast.Decl {
	start := p.pos
	switch {
	case p.at(";"):
		p.next()
		return &jast.EmptyDecl{Span: p.span(start)}
	case p.at("{"):
		return &jast.InitializerDecl{Body: p.block(), Span: p.span(start)}
	case p.at("static") && p.peekIs(1, "{"):
		p.next()
		return &jast.InitializerDecl{Static: true, Body: p.block(), Span: p.span(start)}
	}

	mods := p.modifiers()
	if p.atTypeDeclStart() {
		return p.classDecl(mods)
	}

	var typeParams *jast.TypeParams
	if p.at("<") {
		typeParams = p.typeParams()
	}

	// Constructors and compact constructors have no result type.
	if p.atKind(jast.TokIdent) && p.peekIs(1, "(") {
		return p.method(start, mods, typeParams, nil)
	}
	if kind == jast.KindRecord && p.atKind(jast.TokIdent) && p.peekIs(1, "{") {
		return p.method(start, mods, typeParams, nil)
	}

	typ := p.parseType()
	if p.atKind(jast.TokIdent) && p.peekIs(1, "(") {
		return p.method(start, mods, typeParams, typ)
	}
	if typeParams != nil {
		p.failf("expected method declaration after type parameters")
	}

	field := &jast.FieldDecl{Modifiers: mods, Type: typ, Vars: p.declarators()}
	p.expect(";")
	field.Span = p.span(start)
	return field
}

func (p *parser) method(start int, mods *jast.Modifiers, typeParams *jast.TypeParams, result jast.TypeNode) *jast.MethodDecl {
	m := &jast.MethodDecl{Modifiers: mods, TypeParams: typeParams, Result: result}
	m.Name = p.ident()
	if p.at("(") {
		m.Params = p.params()
	} else {
		m.Compact = true
	}
	for p.at("[") && p.peekIs(1, "]") {
		p.next()
		p.next()
		m.Dims++
	}
	if p.got("throws") {
		m.Throws = p.typeList()
	}
	if p.got("default") {
		m.Default = p.elementValue()
	}
	if p.at("{") {
		m.Body = p.block()
	} else {
		p.expect(";")
	}
	m.Span = p.span(start)
	return m
}

func (p *parser) params() *jast.Params {
	start := p.expect("(")
	list := &jast.Params{}
	if !p.at(")") {
		for {
			list.List = append(list.List, p.param())
			if !p.got(",") {
				break
			}
		}
	}
	p.expect(")")
	list.Span = p.span(start)
	return list
}

func (p *parser) param() *jast.Param {
	start := p.pos
	param := &jast.Param{Modifiers: p.modifiers()}
	param.Type = p.parseType()
	if p.got("...") {
		param.Varargs = true
	}
	if p.at("this") {
		p.next()
		param.Name = "this"
	} else {
		param.Name = p.ident()
	}
	for p.at("[") && p.peekIs(1, "]") {
		p.next()
		p.next()
		param.Dims++
	}
	if param.Modifiers != nil {
		start = param.Modifiers.FirstTok
	}
	param.Span = p.span(start)
	return param
}

// declarators parses one or more comma separated variable declarators.
func (p *parser) declarators() []*jast.VarDeclarator {
	var vars []*jast.VarDeclarator
	for {
		start := p.pos
		v := &jast.VarDeclarator{Name: p.ident()}
		for p.at("[") && p.peekIs(1, "]") {
			p.next()
			p.next()
			v.Dims++
		}
		if p.got("=") {
			v.Init = p.varInit()
		}
		v.Span = p.span(start)
		vars = append(vars, v)
		if !p.got(",") {
			return vars
		}
	}
}

func (p *parser) varInit() jast.Expr {
	if p.at("{") {
		return p.arrayInitWith(p.varInit)
	}
	return p.expr()
}
