package jast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jfmt/pkg/jast"
)

func TestToken(t *testing.T) {
	t.Parallel()

	tok := jast.Token{Kind: jast.TokIdent, Text: "name", StartOffset: 4, EndOffset: 8}
	assert.Equal(t, 4, tok.Len())
	assert.False(t, tok.IsLiteral())
	assert.True(t, tok.Adjacent(jast.Token{StartOffset: 8, EndOffset: 9}))
	assert.False(t, tok.Adjacent(jast.Token{StartOffset: 9, EndOffset: 10}))

	tests := []struct {
		tok  jast.Token
		want bool
	}{
		{jast.Token{Kind: jast.TokInt, Text: "1"}, true},
		{jast.Token{Kind: jast.TokTextBlock, Text: `"""` + "\nx\"\"\""}, true},
		{jast.Token{Kind: jast.TokKeyword, Text: "null"}, true},
		{jast.Token{Kind: jast.TokKeyword, Text: "true"}, true},
		{jast.Token{Kind: jast.TokKeyword, Text: "class"}, false},
		{jast.Token{Kind: jast.TokOperator, Text: "+"}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tok.IsLiteral(), tt.tok.Text)
	}
}

func TestTokenKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "EOF", jast.TokEOF.String())
	assert.Equal(t, "TextBlock", jast.TokTextBlock.String())
	assert.Equal(t, "Unknown", jast.TokenKind(99).String())
}

func TestWordClasses(t *testing.T) {
	t.Parallel()

	assert.True(t, jast.IsKeyword("synchronized"))
	assert.True(t, jast.IsKeyword("null"))
	assert.False(t, jast.IsKeyword("var"), "contextual keywords are identifiers")
	assert.False(t, jast.IsKeyword("record"))

	assert.True(t, jast.IsPrimitive("void"))
	assert.False(t, jast.IsPrimitive("String"))

	assert.True(t, jast.IsModifierKeyword("sealed"))
	assert.True(t, jast.IsModifierKeyword("default"))
	assert.False(t, jast.IsModifierKeyword("non-sealed"), "hyphenated form is three tokens")
	assert.False(t, jast.IsModifierKeyword("class"))
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"a", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\rc\n", []string{"a", "b", "c", ""}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, jast.SplitLines(tt.in), "%q", tt.in)
	}
}

func TestCommentNormalized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		comment jast.Comment
		want    string
	}{
		{
			name:    "line",
			comment: jast.Comment{Text: "//   hello   world", Style: jast.CommentLine},
			want:    "hello world",
		},
		{
			name:    "block",
			comment: jast.Comment{Text: "/* a\n   b */", Style: jast.CommentBlock},
			want:    "a b",
		},
		{
			name:    "javadoc stars",
			comment: jast.Comment{Text: "/**\n * Returns the\n * name.\n */", Style: jast.CommentJavadoc},
			want:    "Returns the name.",
		},
		{
			name:    "rewrapped javadoc is equal",
			comment: jast.Comment{Text: "/** Returns the name. */", Style: jast.CommentJavadoc},
			want:    "Returns the name.",
		},
		{
			name:    "markdown",
			comment: jast.Comment{Text: "/// First\n/// second", Style: jast.CommentMarkdownDoc},
			want:    "First second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.comment.Normalized())
		})
	}
}

func TestCommentClassification(t *testing.T) {
	t.Parallel()

	line := &jast.Comment{Style: jast.CommentLine}
	block := &jast.Comment{Style: jast.CommentBlock}
	javadoc := &jast.Comment{Style: jast.CommentJavadoc}
	markdown := &jast.Comment{Style: jast.CommentMarkdownDoc}

	assert.True(t, line.IsLine())
	assert.True(t, markdown.IsLine())
	assert.False(t, block.IsLine())

	assert.True(t, javadoc.Reflowable())
	assert.True(t, markdown.Reflowable())
	assert.False(t, block.Reflowable())
	assert.False(t, line.Reflowable())
}

func TestDetectNewline(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\n", jast.DetectNewline([]byte("class A {}")))
	assert.Equal(t, "\n", jast.DetectNewline([]byte("a\nb\r\n")))
	assert.Equal(t, "\r\n", jast.DetectNewline([]byte("a\r\nb\n")))
	assert.Equal(t, "\r", jast.DetectNewline([]byte("a\rb")))
}

func TestFileLines(t *testing.T) {
	t.Parallel()

	f := jast.NewFile([]byte("ab\r\ncd\n\nef"))
	assert.Equal(t, "\r\n", f.Newline)
	assert.Equal(t, 4, f.LineCount())

	line, col := f.LineAt(0)
	assert.Equal(t, [2]int{1, 1}, [2]int{line, col})
	line, col = f.LineAt(5)
	assert.Equal(t, [2]int{2, 2}, [2]int{line, col})
	line, col = f.LineAt(8)
	assert.Equal(t, [2]int{4, 1}, [2]int{line, col})

	assert.Equal(t, 0, f.LineStartOffset(0))
	assert.Equal(t, 4, f.LineStartOffset(2))
	assert.Equal(t, len(f.Source), f.LineStartOffset(99))
	assert.Equal(t, 4, f.LineStart(5))

	assert.Equal(t, 3, f.Newlines(0, len(f.Source)))
	assert.Equal(t, 2, f.Newlines(6, 9))
	assert.Equal(t, 0, f.Newlines(-5, 2))

	assert.True(t, f.OnlySpaceBefore(4))
	assert.False(t, f.OnlySpaceBefore(5))
}

func TestFileSpans(t *testing.T) {
	t.Parallel()

	// Tokens: int(0) x(1) ;(2) int(3) y(4) ;(5) EOF(6)
	src := "int x; // one\n\n/* two */ int y;"
	f := jast.NewFile([]byte(src))
	f.Tokens = []jast.Token{
		{Kind: jast.TokKeyword, Text: "int", StartOffset: 0, EndOffset: 3, Index: 0},
		{Kind: jast.TokIdent, Text: "x", StartOffset: 4, EndOffset: 5, Index: 1},
		{Kind: jast.TokOperator, Text: ";", StartOffset: 5, EndOffset: 6, Index: 2},
		{Kind: jast.TokKeyword, Text: "int", StartOffset: 25, EndOffset: 28, Index: 3},
		{Kind: jast.TokIdent, Text: "y", StartOffset: 29, EndOffset: 30, Index: 4},
		{Kind: jast.TokOperator, Text: ";", StartOffset: 30, EndOffset: 31, Index: 5},
		{Kind: jast.TokEOF, StartOffset: 31, EndOffset: 31, Index: 6},
	}
	trailing := &jast.Comment{Text: "// one", StartOffset: 7, EndOffset: 13, Token: 2}
	leading := &jast.Comment{Text: "/* two */", StartOffset: 15, EndOffset: 24, Token: 3}
	f.Trailing[2] = []*jast.Comment{trailing}
	f.Leading[3] = []*jast.Comment{leading}

	assert.Equal(t, 6, f.EOF())
	assert.Equal(t, "y", f.Text(4))
	assert.Equal(t, 13, f.SpanEnd(2))
	assert.Equal(t, 5, f.SpanEnd(1))
	assert.Equal(t, 15, f.SpanStart(3))
	assert.Equal(t, 4, f.SpanStart(1))

	assert.True(t, f.BlankLineBefore(3))
	assert.False(t, f.BlankLineBefore(1))
	assert.False(t, f.BlankLineBefore(0))
}

func TestModifiers(t *testing.T) {
	t.Parallel()

	var none *jast.Modifiers
	assert.True(t, none.Empty())
	assert.Nil(t, none.Keywords())
	assert.Nil(t, none.Annotations())

	mods := &jast.Modifiers{Items: []jast.Node{
		&jast.Annotation{Name: "Override"},
		&jast.Keyword{Name: "public"},
		&jast.Keyword{Name: "static"},
	}}
	assert.False(t, mods.Empty())
	require.Len(t, mods.Keywords(), 2)
	assert.Equal(t, "static", mods.Keywords()[1].Name)
	require.Len(t, mods.Annotations(), 1)
	assert.Equal(t, "Override", mods.Annotations()[0].Name)
}

func TestSpan(t *testing.T) {
	t.Parallel()

	s := jast.Span{FirstTok: 3, LastTok: 7}
	assert.Equal(t, 3, s.First())
	assert.Equal(t, 7, s.Last())
	assert.True(t, s.Contains(3))
	assert.True(t, s.Contains(7))
	assert.False(t, s.Contains(8))
}

func TestWalk_SkipsChildren(t *testing.T) {
	t.Parallel()

	body := &jast.ClassBody{Members: []jast.Decl{&jast.FieldDecl{Vars: []*jast.VarDeclarator{{Name: "x"}}}}}
	unit := &jast.CompilationUnit{Types: []jast.Decl{&jast.ClassDecl{Name: "A", Body: body}}}

	var all []string
	jast.Walk(unit, func(n jast.Node) bool {
		switch n := n.(type) {
		case *jast.ClassDecl:
			all = append(all, "class "+n.Name)
		case *jast.VarDeclarator:
			all = append(all, "var "+n.Name)
		}
		return true
	})
	assert.Equal(t, []string{"class A", "var x"}, all)

	var pruned []string
	jast.Walk(unit, func(n jast.Node) bool {
		if c, ok := n.(*jast.ClassDecl); ok {
			pruned = append(pruned, c.Name)
			return false
		}
		_, isVar := n.(*jast.VarDeclarator)
		assert.False(t, isVar, "children of a pruned node are not visited")
		return true
	})
	assert.Equal(t, []string{"A"}, pruned)
}

func TestFingerprint_IgnoresModifierOrder(t *testing.T) {
	t.Parallel()

	field := func(names ...string) *jast.File {
		mods := &jast.Modifiers{}
		for _, n := range names {
			mods.Items = append(mods.Items, &jast.Keyword{Name: n})
		}
		f := jast.NewFile(nil)
		f.Unit = &jast.CompilationUnit{Types: []jast.Decl{&jast.ClassDecl{
			Name: "A",
			Body: &jast.ClassBody{Members: []jast.Decl{
				&jast.FieldDecl{Modifiers: mods, Vars: []*jast.VarDeclarator{{Name: "x"}}},
			}},
		}}}
		return f
	}

	a := jast.FingerprintOf(field("static", "final"))
	b := jast.FingerprintOf(field("final", "static"))
	c := jast.FingerprintOf(field("final"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestFingerprint_CommentOrder(t *testing.T) {
	t.Parallel()

	block := func(text string, token int) *jast.Comment {
		return &jast.Comment{Text: "/* " + text + " */", Style: jast.CommentBlock, Token: token}
	}
	file := func(comments ...*jast.Comment) *jast.File {
		mods := &jast.Modifiers{
			Span:  jast.Span{FirstTok: 3, LastTok: 4},
			Items: []jast.Node{&jast.Keyword{Name: "public"}, &jast.Keyword{Name: "static"}},
		}
		f := jast.NewFile(nil)
		f.Unit = &jast.CompilationUnit{Types: []jast.Decl{&jast.ClassDecl{
			Name: "A",
			Body: &jast.ClassBody{Members: []jast.Decl{
				&jast.FieldDecl{Modifiers: mods, Vars: []*jast.VarDeclarator{{Name: "x"}}},
			}},
		}}}
		f.Comments = comments
		return f
	}

	tests := []struct {
		name  string
		a, b  *jast.File
		equal bool
	}{
		{
			name:  "same order",
			a:     file(block("a", 1), block("b", 6)),
			b:     file(block("a", 1), block("b", 6)),
			equal: true,
		},
		{
			name:  "swapped across declarations",
			a:     file(block("a", 1), block("b", 6)),
			b:     file(block("b", 1), block("a", 6)),
			equal: false,
		},
		{
			name:  "swapped within a modifier run",
			a:     file(block("x", 1), block("a", 3), block("b", 4)),
			b:     file(block("x", 1), block("b", 3), block("a", 4)),
			equal: true,
		},
		{
			name:  "moved out of a modifier run",
			a:     file(block("a", 3), block("b", 6)),
			b:     file(block("b", 3), block("a", 6)),
			equal: false,
		},
		{
			name:  "dropped",
			a:     file(block("a", 1), block("b", 6)),
			b:     file(block("a", 1)),
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.equal, jast.FingerprintOf(tt.a).Equal(jast.FingerprintOf(tt.b)))
		})
	}
}
