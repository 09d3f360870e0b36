package jast

// ClassKind distinguishes the forms of a type declaration.
type ClassKind uint8

const (
	KindClass ClassKind = iota
	KindInterface
	KindEnum
	KindRecord
	KindAnnotation
)

// String returns the declaring keyword of the kind.
func (k ClassKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindRecord:
		return "record"
	case KindAnnotation:
		return "@interface"
	default:
		return "unknown"
	}
}

// CompilationUnit is the root of a file's syntax tree.
type CompilationUnit struct {
	Span
	Package *PackageDecl
	Imports []*ImportDecl
	Types   []Decl
}

// PackageDecl is "package a.b.c;".
type PackageDecl struct {
	Span
	decl
	Annotations []*Annotation
	Name        string
}

// ImportDecl is an import declaration.
type ImportDecl struct {
	Span
	decl
	Static   bool
	Name     string
	Wildcard bool
}

// ClassDecl is a class, interface, enum, record or annotation type.
type ClassDecl struct {
	Span
	decl
	Modifiers  *Modifiers
	Kind       ClassKind
	Name       string
	TypeParams *TypeParams

	// Components holds the record header; nil for other kinds.
	Components []*Param
	Extends    []TypeNode
	Implements []TypeNode
	Permits    []TypeNode
	Body       *ClassBody
}

// ClassBody is a brace-delimited member list. For enums, the constants
// precede the members.
type ClassBody struct {
	Span
	Constants []*EnumConstant

	// TrailingComma is set when the constant list ends with ",".
	TrailingComma bool

	// Semicolon is set when a ";" separates constants from members.
	Semicolon bool
	Members   []Decl
}

// EnumConstant is one constant of an enum body.
type EnumConstant struct {
	Span
	Annotations []*Annotation
	Name        string

	// Args is nil when the constant has no argument list.
	Args *Args
	Body *ClassBody
}

// MethodDecl is a method, constructor, compact constructor or annotation
// type element.
type MethodDecl struct {
	Span
	decl
	Modifiers  *Modifiers
	TypeParams *TypeParams

	// Result is nil for constructors.
	Result TypeNode
	Name   string

	// Compact is set for record compact constructors, which have no
	// parameter list.
	Compact bool
	Params  *Params
	Dims    int
	Throws  []TypeNode

	// Default is the annotation element default value.
	Default Expr

	// Body is nil for abstract and native methods.
	Body *Block
}

// Params is a parenthesized formal parameter list.
type Params struct {
	Span
	List []*Param
}

// Param is a formal parameter, record component or lambda parameter.
// Type is nil for inferred lambda parameters.
type Param struct {
	Span
	Modifiers *Modifiers
	Type      TypeNode
	Varargs   bool
	Name      string
	Dims      int
}

// FieldDecl declares one or more fields.
type FieldDecl struct {
	Span
	decl
	Modifiers *Modifiers
	Type      TypeNode
	Vars      []*VarDeclarator
}

// VarDeclarator is "name", "name[]" or "name = init".
type VarDeclarator struct {
	Span
	Name string
	Dims int
	Init Expr
}

// InitializerDecl is an instance or static initializer block.
type InitializerDecl struct {
	Span
	decl
	Static bool
	Body   *Block
}

// EmptyDecl is a stray ";" among declarations.
type EmptyDecl struct {
	Span
	decl
}
