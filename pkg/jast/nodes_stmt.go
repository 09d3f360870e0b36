package jast

// Block is a brace-delimited statement list.
type Block struct {
	Span
	stmt
	Stmts []Stmt
}

// LocalVarDecl declares local variables. As a statement its span includes
// the terminating ";"; inside a for header it does not.
type LocalVarDecl struct {
	Span
	stmt
	Modifiers *Modifiers
	Type      TypeNode
	Vars      []*VarDeclarator
}

// LocalClassStmt is a type declaration inside a block.
type LocalClassStmt struct {
	Span
	stmt
	Decl *ClassDecl
}

// ExprStmt is an expression followed by ";".
type ExprStmt struct {
	Span
	stmt
	X Expr
}

// EmptyStmt is a lone ";".
type EmptyStmt struct {
	Span
	stmt
}

// IfStmt is "if (cond) then [else else]".
type IfStmt struct {
	Span
	stmt
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt is "while (cond) body".
type WhileStmt struct {
	Span
	stmt
	Cond Expr
	Body Stmt
}

// DoStmt is "do body while (cond);".
type DoStmt struct {
	Span
	stmt
	Body Stmt
	Cond Expr
}

// ForStmt is a basic for loop. At most one of InitDecl and Init is set.
type ForStmt struct {
	Span
	stmt
	InitDecl *LocalVarDecl
	Init     []Expr
	Cond     Expr
	Update   []Expr
	Body     Stmt
}

// ForEachStmt is an enhanced for loop.
type ForEachStmt struct {
	Span
	stmt
	Modifiers *Modifiers
	Type      TypeNode
	Name      string
	Iter      Expr
	Body      Stmt
}

// ReturnStmt is "return [x];".
type ReturnStmt struct {
	Span
	stmt
	X Expr
}

// ThrowStmt is "throw x;".
type ThrowStmt struct {
	Span
	stmt
	X Expr
}

// YieldStmt is "yield x;".
type YieldStmt struct {
	Span
	stmt
	X Expr
}

// BreakStmt is "break [label];".
type BreakStmt struct {
	Span
	stmt
	Label string
}

// ContinueStmt is "continue [label];".
type ContinueStmt struct {
	Span
	stmt
	Label string
}

// LabeledStmt is "label: body".
type LabeledStmt struct {
	Span
	stmt
	Label string
	Body  Stmt
}

// SyncStmt is "synchronized (lock) body".
type SyncStmt struct {
	Span
	stmt
	Lock Expr
	Body *Block
}

// AssertStmt is "assert cond [: msg];".
type AssertStmt struct {
	Span
	stmt
	Cond Expr
	Msg  Expr
}

// TryStmt is a try statement, with or without resources.
type TryStmt struct {
	Span
	stmt

	// Resources is nil when there is no resource specification.
	Resources *Resources
	Body      *Block
	Catches   []*CatchClause
	Finally   *Block
}

// Resources is the parenthesized resource specification of a try.
type Resources struct {
	Span
	List []*Resource

	// TrailingSemi is set when the last resource is followed by ";".
	TrailingSemi bool
}

// Resource is a declared resource or, when Type is nil, a reference to an
// effectively final variable held in Init.
type Resource struct {
	Span
	Modifiers *Modifiers
	Type      TypeNode
	Name      string
	Init      Expr
}

// CatchClause is "catch (T1 | T2 name) body".
type CatchClause struct {
	Span
	Modifiers *Modifiers
	Types     []TypeNode
	Name      string
	Body      *Block
}

// SwitchStmt is a switch statement.
type SwitchStmt struct {
	Span
	stmt
	Selector Expr
	Cases    []*SwitchCase
}

// SwitchCase is one case group. Labels is empty for "default". Arrow cases
// hold exactly one body statement: an expression statement, block or
// throw.
type SwitchCase struct {
	Span
	Default bool
	Labels  []Expr
	Guard   Expr
	Arrow   bool
	Body    []Stmt
}
