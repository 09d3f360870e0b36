package jast

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a syntax tree in depth-first source order.
// If visitor returns false, children are not visited.
//
//nolint:gocyclo,cyclop,funlen,maintidx // One case per node type.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *CompilationUnit:
		if n.Package != nil {
			Walk(n.Package, v)
		}
		for _, imp := range n.Imports {
			Walk(imp, v)
		}
		walkDecls(n.Types, v)

	case *PackageDecl:
		walkAnnotations(n.Annotations, v)

	case *ImportDecl, *EmptyDecl, *Keyword, *Ident, *Literal,
		*EmptyStmt, *BreakStmt, *ContinueStmt:

	case *ClassDecl:
		walkModifiers(n.Modifiers, v)
		walkTypeParams(n.TypeParams, v)
		for _, c := range n.Components {
			Walk(c, v)
		}
		walkTypes(n.Extends, v)
		walkTypes(n.Implements, v)
		walkTypes(n.Permits, v)
		Walk(n.Body, v)

	case *ClassBody:
		for _, c := range n.Constants {
			Walk(c, v)
		}
		walkDecls(n.Members, v)

	case *EnumConstant:
		walkAnnotations(n.Annotations, v)
		if n.Args != nil {
			Walk(n.Args, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}

	case *MethodDecl:
		walkModifiers(n.Modifiers, v)
		walkTypeParams(n.TypeParams, v)
		if n.Result != nil {
			Walk(n.Result, v)
		}
		if n.Params != nil {
			Walk(n.Params, v)
		}
		walkTypes(n.Throws, v)
		if n.Default != nil {
			Walk(n.Default, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}

	case *Params:
		for _, p := range n.List {
			Walk(p, v)
		}

	case *Param:
		walkModifiers(n.Modifiers, v)
		if n.Type != nil {
			Walk(n.Type, v)
		}

	case *FieldDecl:
		walkModifiers(n.Modifiers, v)
		Walk(n.Type, v)
		for _, d := range n.Vars {
			Walk(d, v)
		}

	case *VarDeclarator:
		if n.Init != nil {
			Walk(n.Init, v)
		}

	case *InitializerDecl:
		Walk(n.Body, v)

	case *Modifiers:
		for _, item := range n.Items {
			Walk(item, v)
		}

	case *Annotation:
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *AnnotationArg:
		Walk(n.Value, v)

	case *PrimitiveType:
		walkAnnotations(n.Annotations, v)

	case *ClassType:
		if n.Outer != nil {
			Walk(n.Outer, v)
		}
		walkAnnotations(n.Annotations, v)
		if n.Args != nil {
			Walk(n.Args, v)
		}

	case *ArrayType:
		Walk(n.Elem, v)

	case *WildcardType:
		walkAnnotations(n.Annotations, v)
		if n.Type != nil {
			Walk(n.Type, v)
		}

	case *TypeArgs:
		walkTypes(n.Args, v)

	case *TypeParams:
		for _, p := range n.Params {
			Walk(p, v)
		}

	case *TypeParam:
		walkAnnotations(n.Annotations, v)
		walkTypes(n.Bounds, v)

	case *Block:
		walkStmts(n.Stmts, v)

	case *LocalVarDecl:
		walkModifiers(n.Modifiers, v)
		Walk(n.Type, v)
		for _, d := range n.Vars {
			Walk(d, v)
		}

	case *LocalClassStmt:
		Walk(n.Decl, v)

	case *ExprStmt:
		Walk(n.X, v)

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *DoStmt:
		Walk(n.Body, v)
		Walk(n.Cond, v)

	case *ForStmt:
		if n.InitDecl != nil {
			Walk(n.InitDecl, v)
		}
		walkExprs(n.Init, v)
		if n.Cond != nil {
			Walk(n.Cond, v)
		}
		walkExprs(n.Update, v)
		Walk(n.Body, v)

	case *ForEachStmt:
		walkModifiers(n.Modifiers, v)
		Walk(n.Type, v)
		Walk(n.Iter, v)
		Walk(n.Body, v)

	case *ReturnStmt:
		if n.X != nil {
			Walk(n.X, v)
		}

	case *ThrowStmt:
		Walk(n.X, v)

	case *YieldStmt:
		Walk(n.X, v)

	case *LabeledStmt:
		Walk(n.Body, v)

	case *SyncStmt:
		Walk(n.Lock, v)
		Walk(n.Body, v)

	case *AssertStmt:
		Walk(n.Cond, v)
		if n.Msg != nil {
			Walk(n.Msg, v)
		}

	case *TryStmt:
		if n.Resources != nil {
			Walk(n.Resources, v)
		}
		Walk(n.Body, v)
		for _, c := range n.Catches {
			Walk(c, v)
		}
		if n.Finally != nil {
			Walk(n.Finally, v)
		}

	case *Resources:
		for _, r := range n.List {
			Walk(r, v)
		}

	case *Resource:
		walkModifiers(n.Modifiers, v)
		if n.Type != nil {
			Walk(n.Type, v)
		}
		Walk(n.Init, v)

	case *CatchClause:
		walkModifiers(n.Modifiers, v)
		walkTypes(n.Types, v)
		Walk(n.Body, v)

	case *SwitchStmt:
		Walk(n.Selector, v)
		for _, c := range n.Cases {
			Walk(c, v)
		}

	case *SwitchExpr:
		Walk(n.Selector, v)
		for _, c := range n.Cases {
			Walk(c, v)
		}

	case *SwitchCase:
		walkExprs(n.Labels, v)
		if n.Guard != nil {
			Walk(n.Guard, v)
		}
		walkStmts(n.Body, v)

	case *FieldAccess:
		Walk(n.X, v)

	case *Args:
		walkExprs(n.List, v)

	case *MethodCall:
		if n.X != nil {
			Walk(n.X, v)
		}
		if n.TypeArgs != nil {
			Walk(n.TypeArgs, v)
		}
		Walk(n.Args, v)

	case *NewClass:
		if n.Outer != nil {
			Walk(n.Outer, v)
		}
		if n.TypeArgs != nil {
			Walk(n.TypeArgs, v)
		}
		Walk(n.Type, v)
		Walk(n.Args, v)
		if n.Body != nil {
			Walk(n.Body, v)
		}

	case *NewArray:
		Walk(n.Elem, v)
		walkExprs(n.DimExprs, v)
		if n.Init != nil {
			Walk(n.Init, v)
		}

	case *ArrayInit:
		walkExprs(n.Elems, v)

	case *IndexExpr:
		Walk(n.X, v)
		Walk(n.Index, v)

	case *UnaryExpr:
		Walk(n.X, v)

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *InstanceOf:
		Walk(n.X, v)
		if n.Type != nil {
			Walk(n.Type, v)
		}
		if n.Pattern != nil {
			Walk(n.Pattern, v)
		}

	case *CondExpr:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		Walk(n.Else, v)

	case *AssignExpr:
		Walk(n.LHS, v)
		Walk(n.RHS, v)

	case *CastExpr:
		walkTypes(n.Types, v)
		Walk(n.X, v)

	case *LambdaExpr:
		for _, p := range n.Params {
			Walk(p, v)
		}
		Walk(n.Body, v)

	case *MethodRef:
		Walk(n.X, v)
		if n.TypeArgs != nil {
			Walk(n.TypeArgs, v)
		}

	case *ParenExpr:
		Walk(n.X, v)

	case *ClassLit:
		Walk(n.Type, v)

	case *TypePattern:
		walkModifiers(n.Modifiers, v)
		Walk(n.Type, v)

	case *RecordPattern:
		Walk(n.Type, v)
		walkExprs(n.Subs, v)
	}
}

func walkModifiers(m *Modifiers, v Visitor) {
	if m != nil {
		Walk(m, v)
	}
}

func walkTypeParams(tp *TypeParams, v Visitor) {
	if tp != nil {
		Walk(tp, v)
	}
}

func walkAnnotations(list []*Annotation, v Visitor) {
	for _, a := range list {
		Walk(a, v)
	}
}

func walkTypes(list []TypeNode, v Visitor) {
	for _, t := range list {
		Walk(t, v)
	}
}

func walkExprs(list []Expr, v Visitor) {
	for _, x := range list {
		Walk(x, v)
	}
}

func walkStmts(list []Stmt, v Visitor) {
	for _, s := range list {
		Walk(s, v)
	}
}

func walkDecls(list []Decl, v Visitor) {
	for _, d := range list {
		Walk(d, v)
	}
}
