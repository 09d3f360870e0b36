package jast

// Ident is a simple name, including this and super.
type Ident struct {
	Span
	expr
	Name string
}

// Literal is a literal token. Text blocks keep their exact source text.
type Literal struct {
	Span
	expr
	Kind  TokenKind
	Value string
}

// FieldAccess is "x.name". Name is "this" or "super" for qualified forms
// such as "Outer.this".
type FieldAccess struct {
	Span
	expr
	X    Expr
	Name string
}

// Args is a parenthesized argument list.
type Args struct {
	Span
	List []Expr
}

// MethodCall is "[x.][<T>]name(args)".
type MethodCall struct {
	Span
	expr

	// X is nil for unqualified calls.
	X        Expr
	TypeArgs *TypeArgs
	Name     string
	Args     *Args
}

// NewClass is a class instance creation expression.
type NewClass struct {
	Span
	expr

	// Outer is the qualifying instance of "outer.new Inner()".
	Outer    Expr
	TypeArgs *TypeArgs
	Type     TypeNode
	Args     *Args
	Body     *ClassBody
}

// NewArray is an array creation expression.
type NewArray struct {
	Span
	expr
	Elem      TypeNode
	DimExprs  []Expr
	ExtraDims int
	Init      *ArrayInit
}

// ArrayInit is "{a, b, c}".
type ArrayInit struct {
	Span
	expr
	Elems         []Expr
	TrailingComma bool
}

// IndexExpr is "x[index]".
type IndexExpr struct {
	Span
	expr
	X     Expr
	Index Expr
}

// UnaryExpr is a prefix or postfix unary operation.
type UnaryExpr struct {
	Span
	expr
	Op      string
	X       Expr
	Postfix bool
}

// BinaryExpr is "x op y". Shift operators are assembled from adjacent
// ">" tokens by the parser.
type BinaryExpr struct {
	Span
	expr
	Op string
	X  Expr
	Y  Expr
}

// InstanceOf is "x instanceof T" or "x instanceof pattern". Exactly one of
// Type and Pattern is set.
type InstanceOf struct {
	Span
	expr
	X       Expr
	Type    TypeNode
	Pattern Expr
}

// CondExpr is "cond ? then : else".
type CondExpr struct {
	Span
	expr
	Cond Expr
	Then Expr
	Else Expr
}

// AssignExpr is a simple or compound assignment.
type AssignExpr struct {
	Span
	expr
	Op  string
	LHS Expr
	RHS Expr
}

// CastExpr is "(T) x" or "(A & B) x".
type CastExpr struct {
	Span
	expr
	Types []TypeNode
	X     Expr
}

// LambdaExpr is "params -> body". Body is an Expr or *Block.
type LambdaExpr struct {
	Span
	expr

	// Parens is false for the single bare identifier form "x -> ...".
	Parens bool
	Params []*Param
	Body   Node
}

// MethodRef is "x::name" or "T::new". X is an Expr or a TypeNode.
type MethodRef struct {
	Span
	expr
	X        Node
	TypeArgs *TypeArgs
	Name     string
}

// ParenExpr is "(x)".
type ParenExpr struct {
	Span
	expr
	X Expr
}

// ClassLit is "T.class".
type ClassLit struct {
	Span
	expr
	Type TypeNode
}

// SwitchExpr is a switch used as an expression.
type SwitchExpr struct {
	Span
	expr
	Selector Expr
	Cases    []*SwitchCase
}

// TypePattern is "T name" in instanceof and case labels.
type TypePattern struct {
	Span
	expr
	Modifiers *Modifiers
	Type      TypeNode
	Name      string
}

// RecordPattern is "T(p1, p2)".
type RecordPattern struct {
	Span
	expr
	Type TypeNode
	Subs []Expr
}
