// Package jast defines the token, comment and syntax tree model of a parsed
// Java compilation unit.
//
// A File is produced by a parser (see pkg/parser/java) and is read only to
// every consumer. Nodes reference the token span they cover by index into
// File.Tokens; comments are attached to exactly one token.
package jast

// TokenKind classifies a lexical token.
type TokenKind uint8

// Token kinds. Whitespace and comments are not tokens.
const (
	TokEOF TokenKind = iota
	TokIdent
	TokKeyword
	TokInt
	TokFloat
	TokChar
	TokString
	TokTextBlock
	TokOperator
)

// String returns the name of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokEOF:
		return "EOF"
	case TokIdent:
		return "Ident"
	case TokKeyword:
		return "Keyword"
	case TokInt:
		return "Int"
	case TokFloat:
		return "Float"
	case TokChar:
		return "Char"
	case TokString:
		return "String"
	case TokTextBlock:
		return "TextBlock"
	case TokOperator:
		return "Operator"
	default:
		return "Unknown"
	}
}

// Token is a single lexical token of the source.
type Token struct {
	// Kind classifies the token.
	Kind TokenKind

	// Text is the exact source text of the token.
	Text string

	// StartOffset is the byte index where the token begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the token ends (exclusive).
	EndOffset int

	// Index is the position of the token in File.Tokens.
	Index int
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}

// IsLiteral reports whether the token is a literal value.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case TokInt, TokFloat, TokChar, TokString, TokTextBlock:
		return true
	case TokKeyword:
		return t.Text == "true" || t.Text == "false" || t.Text == "null"
	default:
		return false
	}
}

// Adjacent reports whether next starts exactly where t ends.
func (t Token) Adjacent(next Token) bool {
	return t.EndOffset == next.StartOffset
}

// keywords is the set of reserved Java keywords, including the literal
// keywords true, false and null.
//
//nolint:gochecknoglobals // Read-only lookup table.
var keywords = map[string]struct{}{
	"abstract": {}, "assert": {}, "boolean": {}, "break": {}, "byte": {},
	"case": {}, "catch": {}, "char": {}, "class": {}, "const": {},
	"continue": {}, "default": {}, "do": {}, "double": {}, "else": {},
	"enum": {}, "extends": {}, "final": {}, "finally": {}, "float": {},
	"for": {}, "goto": {}, "if": {}, "implements": {}, "import": {},
	"instanceof": {}, "int": {}, "interface": {}, "long": {}, "native": {},
	"new": {}, "package": {}, "private": {}, "protected": {}, "public": {},
	"return": {}, "short": {}, "static": {}, "strictfp": {}, "super": {},
	"switch": {}, "synchronized": {}, "this": {}, "throw": {}, "throws": {},
	"transient": {}, "try": {}, "void": {}, "volatile": {}, "while": {},
	"true": {}, "false": {}, "null": {},
}

// IsKeyword reports whether s is a reserved word.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// IsPrimitive reports whether s names a primitive type or void.
func IsPrimitive(s string) bool {
	switch s {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double", "void":
		return true
	default:
		return false
	}
}

// IsModifierKeyword reports whether s is a declaration modifier keyword.
// The contextual keyword "sealed" is included.
func IsModifierKeyword(s string) bool {
	switch s {
	case "public", "protected", "private", "abstract", "default", "static",
		"final", "sealed", "transient", "volatile", "synchronized", "native", "strictfp":
		return true
	default:
		return false
	}
}
