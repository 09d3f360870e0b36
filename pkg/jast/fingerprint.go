package jast

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Fingerprint is a layout-independent summary of a file. Two files with
// equal fingerprints have the same syntax tree, the same identifiers and
// literals, the same modifier sets and the same comment prose.
type Fingerprint struct {
	Nodes    []string
	Comments []string
}

// Equal reports whether two fingerprints match.
func (fp Fingerprint) Equal(other Fingerprint) bool {
	return slices.Equal(fp.Nodes, other.Nodes) && slices.Equal(fp.Comments, other.Comments)
}

// FingerprintOf computes the fingerprint of a parsed file. Comments are
// kept in source order, except that the comments inside one modifier run
// are compared as a set since reordering modifiers carries them along.
func FingerprintOf(f *File) Fingerprint {
	var fp Fingerprint
	var runs []Span
	var visit Visitor
	visit = func(n Node) bool {
		if mods, ok := n.(*Modifiers); ok {
			if !mods.Empty() {
				runs = append(runs, mods.Span)
			}
			names := make([]string, 0, len(mods.Items))
			for _, kw := range mods.Keywords() {
				names = append(names, kw.Name)
			}
			sort.Strings(names)
			fp.Nodes = append(fp.Nodes, "Modifiers["+strings.Join(names, " ")+"]")
			for _, a := range mods.Annotations() {
				Walk(a, visit)
			}
			return false
		}
		fp.Nodes = append(fp.Nodes, describe(n))
		return true
	}
	if f.Unit != nil {
		Walk(f.Unit, visit)
	}

	fp.Comments = commentSequence(f.Comments, runs)
	return fp
}

// commentSequence lists normalized comment text in source order. The
// comments owned by tokens of one modifier run are sorted and emitted
// together where the first of them appears.
func commentSequence(comments []*Comment, runs []Span) []string {
	runOf := func(c *Comment) int {
		for i, r := range runs {
			if r.Contains(c.Token) {
				return i
			}
		}
		return -1
	}

	grouped := make(map[int][]string)
	for _, c := range comments {
		if run := runOf(c); run >= 0 {
			grouped[run] = append(grouped[run], c.Normalized())
		}
	}

	out := make([]string, 0, len(comments))
	emitted := make(map[int]bool)
	for _, c := range comments {
		run := runOf(c)
		if run < 0 {
			out = append(out, c.Normalized())
			continue
		}
		if emitted[run] {
			continue
		}
		emitted[run] = true
		texts := grouped[run]
		sort.Strings(texts)
		out = append(out, texts...)
	}
	return out
}

//nolint:gocyclo,cyclop,funlen // One case per node type carrying text.
func describe(n Node) string {
	kind := strings.TrimPrefix(fmt.Sprintf("%T", n), "*jast.")
	switch n := n.(type) {
	case *PackageDecl:
		return kind + " " + n.Name
	case *ImportDecl:
		return fmt.Sprintf("%s %s static=%t wildcard=%t", kind, n.Name, n.Static, n.Wildcard)
	case *ClassDecl:
		return fmt.Sprintf("%s %s %s", kind, n.Kind, n.Name)
	case *ClassBody:
		return fmt.Sprintf("%s comma=%t semi=%t", kind, n.TrailingComma, n.Semicolon)
	case *EnumConstant:
		return kind + " " + n.Name
	case *MethodDecl:
		return fmt.Sprintf("%s %s compact=%t dims=%d", kind, n.Name, n.Compact, n.Dims)
	case *Param:
		return fmt.Sprintf("%s %s varargs=%t dims=%d", kind, n.Name, n.Varargs, n.Dims)
	case *VarDeclarator:
		return fmt.Sprintf("%s %s dims=%d", kind, n.Name, n.Dims)
	case *InitializerDecl:
		return fmt.Sprintf("%s static=%t", kind, n.Static)
	case *Keyword:
		return kind + " " + n.Name
	case *Annotation:
		return fmt.Sprintf("%s %s parens=%t", kind, n.Name, n.Parens)
	case *AnnotationArg:
		return kind + " " + n.Name
	case *PrimitiveType:
		return kind + " " + n.Name
	case *ClassType:
		return kind + " " + n.Name
	case *ArrayType:
		return fmt.Sprintf("%s dims=%d", kind, n.Dims)
	case *WildcardType:
		return kind + " " + n.Bound
	case *TypeParam:
		return kind + " " + n.Name
	case *ForEachStmt:
		return kind + " " + n.Name
	case *BreakStmt:
		return kind + " " + n.Label
	case *ContinueStmt:
		return kind + " " + n.Label
	case *LabeledStmt:
		return kind + " " + n.Label
	case *Resources:
		return fmt.Sprintf("%s semi=%t", kind, n.TrailingSemi)
	case *Resource:
		return kind + " " + n.Name
	case *CatchClause:
		return kind + " " + n.Name
	case *SwitchCase:
		return fmt.Sprintf("%s default=%t arrow=%t", kind, n.Default, n.Arrow)
	case *Ident:
		return kind + " " + n.Name
	case *Literal:
		return fmt.Sprintf("%s %s %s", kind, n.Kind, strings.Join(SplitLines(n.Value), "\n"))
	case *FieldAccess:
		return kind + " " + n.Name
	case *MethodCall:
		return kind + " " + n.Name
	case *NewArray:
		return fmt.Sprintf("%s dims=%d", kind, n.ExtraDims)
	case *ArrayInit:
		return fmt.Sprintf("%s comma=%t", kind, n.TrailingComma)
	case *UnaryExpr:
		return fmt.Sprintf("%s %s postfix=%t", kind, n.Op, n.Postfix)
	case *BinaryExpr:
		return kind + " " + n.Op
	case *AssignExpr:
		return kind + " " + n.Op
	case *LambdaExpr:
		return fmt.Sprintf("%s parens=%t", kind, n.Parens)
	case *MethodRef:
		return kind + " " + n.Name
	case *TypePattern:
		return kind + " " + n.Name
	default:
		return kind
	}
}
