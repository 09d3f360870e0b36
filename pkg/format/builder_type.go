package format

import "github.com/yaklabco/jfmt/pkg/jast"

func (b *builder) typ(t jast.TypeNode) {
	switch t := t.(type) {
	case *jast.PrimitiveType:
		b.typeAnnotations(t.Annotations)
		b.tok(t.Name)
	case *jast.ClassType:
		if t.Outer != nil {
			b.typ(t.Outer)
			b.tok(".")
		}
		b.typeAnnotations(t.Annotations)
		b.tok(t.Name)
		if t.Args != nil {
			b.typeArgs(t.Args)
		}
	case *jast.ArrayType:
		b.typ(t.Elem)
		b.dims(t.Dims)
	case *jast.WildcardType:
		b.typeAnnotations(t.Annotations)
		b.tok("?")
		if t.Bound != "" {
			b.space()
			b.tok(t.Bound)
			b.space()
			b.typ(t.Type)
		}
	default:
		b.failf("unexpected type %T", t)
	}
}

func (b *builder) typeAnnotations(list []*jast.Annotation) {
	for _, a := range list {
		b.annotation(a)
		b.space()
	}
}

// typeArgs emits "<A, B>" or the diamond "<>".
func (b *builder) typeArgs(args *jast.TypeArgs) {
	b.tok("<")
	for i, t := range args.Args {
		if i > 0 {
			b.tok(",")
			b.space()
		}
		b.typ(t)
	}
	b.tok(">")
}

func (b *builder) typeParams(tp *jast.TypeParams) {
	b.tok("<")
	for i, p := range tp.Params {
		if i > 0 {
			b.tok(",")
			b.space()
		}
		b.typeAnnotations(p.Annotations)
		b.tok(p.Name)
		for j, bound := range p.Bounds {
			b.space()
			if j == 0 {
				b.tok("extends")
			} else {
				b.tok("&")
			}
			b.space()
			b.typ(bound)
		}
	}
	b.tok(">")
}

func (b *builder) typeList(list []jast.TypeNode) {
	for i, t := range list {
		if i > 0 {
			b.tok(",")
			b.space()
		}
		b.typ(t)
	}
}
