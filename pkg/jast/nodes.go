package jast

// Node is implemented by every syntax tree node. The set of node types is
// closed; consumers switch exhaustively over the concrete types.
type Node interface {
	// First returns the index of the first token covered by the node.
	First() int

	// Last returns the index of the last token covered by the node.
	Last() int

	node()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is a declaration node: a type declaration or a class body member.
type Decl interface {
	Node
	declNode()
}

// TypeNode is a type reference.
type TypeNode interface {
	Node
	typeNode()
}

// Span is the inclusive range of token indices a node covers.
type Span struct {
	FirstTok int
	LastTok  int
}

// First returns the index of the first covered token.
func (s Span) First() int { return s.FirstTok }

// Last returns the index of the last covered token.
func (s Span) Last() int { return s.LastTok }

func (Span) node() {}

// Contains reports whether token index i lies within the span.
func (s Span) Contains(i int) bool {
	return i >= s.FirstTok && i <= s.LastTok
}

type (
	expr     struct{}
	stmt     struct{}
	decl     struct{}
	typeExpr struct{}
)

func (expr) exprNode()     {}
func (stmt) stmtNode()     {}
func (decl) declNode()     {}
func (typeExpr) typeNode() {}

// Keyword is a modifier keyword such as public or static.
type Keyword struct {
	Span
	Name string
}

// Modifiers is the ordered list of annotations and modifier keywords that
// precede a declaration. Items are *Keyword or *Annotation.
type Modifiers struct {
	Span
	Items []Node
}

// Keywords returns the keyword items in source order.
func (m *Modifiers) Keywords() []*Keyword {
	if m == nil {
		return nil
	}
	var out []*Keyword
	for _, item := range m.Items {
		if kw, ok := item.(*Keyword); ok {
			out = append(out, kw)
		}
	}
	return out
}

// Annotations returns the annotation items in source order.
func (m *Modifiers) Annotations() []*Annotation {
	if m == nil {
		return nil
	}
	var out []*Annotation
	for _, item := range m.Items {
		if a, ok := item.(*Annotation); ok {
			out = append(out, a)
		}
	}
	return out
}

// Empty reports whether there are no modifiers.
func (m *Modifiers) Empty() bool {
	return m == nil || len(m.Items) == 0
}

// Annotation is "@Name", "@Name(value)" or "@Name(k = v, ...)". It is also
// an element value, so it implements Expr.
type Annotation struct {
	Span
	expr

	// Name is the dotted annotation type name.
	Name string

	// Parens is set when the annotation has an argument list, even an empty
	// one.
	Parens bool

	Args []*AnnotationArg
}

// AnnotationArg is one element of an annotation argument list. Name is
// empty for the single-element shorthand.
type AnnotationArg struct {
	Span
	Name  string
	Value Expr
}

// PrimitiveType is a primitive type or void.
type PrimitiveType struct {
	Span
	typeExpr
	Annotations []*Annotation
	Name        string
}

// ClassType is a possibly qualified, possibly parameterized reference type.
// "a.b.C<T>" nests as C{Outer: b{Outer: a}}.
type ClassType struct {
	Span
	typeExpr
	Outer       *ClassType
	Annotations []*Annotation
	Name        string
	Args        *TypeArgs
}

// ArrayType is an element type followed by one or more "[]".
type ArrayType struct {
	Span
	typeExpr
	Elem TypeNode
	Dims int
}

// WildcardType is "?", "? extends T" or "? super T".
type WildcardType struct {
	Span
	typeExpr
	Annotations []*Annotation

	// Bound is "extends", "super" or empty.
	Bound string
	Type  TypeNode
}

// TypeArgs is a type argument list. An empty list is the diamond "<>".
type TypeArgs struct {
	Span
	Args []TypeNode
}

// TypeParam is a type parameter declaration.
type TypeParam struct {
	Span
	Annotations []*Annotation
	Name        string
	Bounds      []TypeNode
}

// TypeParams is a type parameter list.
type TypeParams struct {
	Span
	Params []*TypeParam
}
