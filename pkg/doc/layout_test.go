package doc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jfmt/pkg/doc"
)

func layout(root doc.Node, width int) string {
	return doc.Render(root, doc.Resolve(root, width, 0, 2), 2)
}

// call builds "name(arg, arg, ...)" with the arguments in a nested group.
func call(b *doc.Builder, name string, args ...string) {
	b.Text(name + "(")
	b.Open()
	b.OpenIndent(2)
	b.Break("")
	b.Open()
	for i, a := range args {
		if i > 0 {
			b.Text(",")
			b.Break(" ")
		}
		b.Text(a)
	}
	b.Close()
	b.Close()
	b.Close()
	b.Text(")")
}

func TestResolve_GroupFitsStaysFlat(t *testing.T) {
	t.Parallel()

	b := doc.NewBuilder()
	call(b, "foo", "a", "b", "c")
	b.Text(";")

	assert.Equal(t, "foo(a, b, c);", layout(b.Doc(), 100))
}

func TestResolve_OuterGroupBreaksFirst(t *testing.T) {
	t.Parallel()

	b := doc.NewBuilder()
	call(b, "method", "alpha", "beta", "gamma")
	b.Text(";")

	// The argument list moves to its own line and still fits there.
	assert.Equal(t, "method(\n    alpha, beta, gamma);", layout(b.Doc(), 25))
}

func TestResolve_InnerGroupBreaksWhenStillTooWide(t *testing.T) {
	t.Parallel()

	b := doc.NewBuilder()
	call(b, "foo", "alpha", "beta", "gamma")
	b.Text(";")

	assert.Equal(t, "foo(\n    alpha,\n    beta,\n    gamma);", layout(b.Doc(), 12))
}

func TestResolve_TrailingTextCountsTowardsFit(t *testing.T) {
	t.Parallel()

	b := doc.NewBuilder()
	b.Open()
	b.Text("x =")
	b.OpenIndent(2)
	b.Break(" ")
	b.Text("value")
	b.Close()
	b.Close()
	b.Text(".suffix;")

	// "x = value" fits in 10 columns but not with ".suffix;" attached.
	assert.Equal(t, "x =\n    value.suffix;", layout(b.Doc(), 10))
	assert.Equal(t, "x = value.suffix;", layout(b.Doc(), 17))
}

func TestResolve_ForcedBreakBreaksEnclosingGroups(t *testing.T) {
	t.Parallel()

	b := doc.NewBuilder()
	b.Open()
	b.Text("a")
	b.Break(" ")
	b.Open()
	b.Text("b")
	b.Forced()
	b.Text("c")
	b.Close()
	b.Close()

	assert.Equal(t, "a\nb\nc", layout(b.Doc(), 100))
}

func TestResolve_MultilineTextBreaksEnclosingGroup(t *testing.T) {
	t.Parallel()

	b := doc.NewBuilder()
	b.Open()
	b.Text("a")
	b.Break(" ")
	b.Text("/* one\n two */")
	b.Close()

	assert.Equal(t, "a\n/* one\n two */", layout(b.Doc(), 100))
}

func TestResolve_LongAtomIsEmittedVerbatim(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 30)
	b := doc.NewBuilder()
	b.Open()
	b.Text("a =")
	b.OpenIndent(1)
	b.Break(" ")
	b.Text(long)
	b.Close()
	b.Close()

	assert.Equal(t, "a =\n  "+long, layout(b.Doc(), 10))
}

func TestResolve_IsDeterministic(t *testing.T) {
	t.Parallel()

	b := doc.NewBuilder()
	call(b, "method", "first", "second", "third", "fourth")
	root := b.Doc()

	first := doc.Resolve(root, 24, 0, 2)
	for range 10 {
		again := doc.Resolve(root, 24, 0, 2)
		require.Len(t, again, len(first))
		for br, broken := range first {
			assert.Equal(t, broken, again[br])
		}
	}
}

func TestResolve_StartColumn(t *testing.T) {
	t.Parallel()

	b := doc.NewBuilder()
	call(b, "f", "aaaa", "bbbb")
	root := b.Doc()

	assert.Equal(t, "f(aaaa, bbbb)", doc.Render(root, doc.Resolve(root, 20, 0, 2), 2))

	// Starting further right leaves too little room for the flat form.
	decisions := doc.Resolve(root, 20, 10, 2)
	assert.Equal(t, "f(\n    aaaa, bbbb)", doc.Render(root, decisions, 2))
}

func TestRender_IndentIsLazyAndTrailingBlanksTrimmed(t *testing.T) {
	t.Parallel()

	b := doc.NewBuilder()
	b.OpenIndent(2)
	b.Text("{")
	b.OpenIndent(1)
	b.Forced()
	b.Text("a; ")
	b.Forced()
	b.Forced()
	b.Text("b;")
	b.Close()
	b.Forced()
	b.Text("}")
	b.Close()

	assert.Equal(t, "    {\n      a;\n\n      b;\n    }", layout(b.Doc(), 100))
}

func TestRender_ReindentsBlockComment(t *testing.T) {
	t.Parallel()

	b := doc.NewBuilder()
	b.OpenIndent(1)
	b.Reindented("/*\n        * one\n   */")
	b.Forced()
	b.Text("x;")
	b.Close()

	assert.Equal(t, "  /*\n   * one\n   */\n  x;", layout(b.Doc(), 100))
}

func TestRender_VerbatimTextKeepsLines(t *testing.T) {
	t.Parallel()

	b := doc.NewBuilder()
	b.OpenIndent(2)
	b.Text("s = \"\"\"\n  keep  \n\"\"\";")
	b.Close()

	assert.Equal(t, "    s = \"\"\"\n  keep  \n\"\"\";", layout(b.Doc(), 100))
}

func TestWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "ascii", in: "hello", want: 5},
		{name: "empty", in: "", want: 0},
		{name: "accented", in: "héllo", want: 5},
		{name: "wide", in: "日本", want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, doc.Width(tt.in))
		})
	}
}
