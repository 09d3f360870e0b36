package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jfmt/pkg/jast"
	"github.com/yaklabco/jfmt/pkg/parser/java"
)

const rangesSource = `package p;

import java.util.List;

class A {
  int field;

  void f(int k) {
    int a = 1;
    if (a > 0) {
      b();
    }
    switch (k) {
      case 1:
        c();
        break;
      default -> {
        d();
      }
    }
  }
}

class B {}
`

func parse(t *testing.T, src string) *jast.File {
	t.Helper()

	file, err := java.Parse([]byte(src))
	require.NoError(t, err)
	return file
}

// unitText returns the source text of the tokens of u.
func unitText(file *jast.File, u Unit) string {
	return string(file.Source[file.Tokens[u.first()].StartOffset:file.Tokens[u.last()].EndOffset])
}

func TestCollectUnits_Depths(t *testing.T) {
	t.Parallel()

	file := parse(t, rangesSource)
	depths := make(map[string]int)
	for _, u := range collectUnits(file) {
		depths[unitText(file, u)] = u.Depth
	}

	assert.Equal(t, 0, depths["package p;"])
	assert.Equal(t, 0, depths["import java.util.List;"])
	assert.Equal(t, 0, depths["class B {}"])
	assert.Equal(t, 1, depths["int field;"])
	assert.Equal(t, 2, depths["int a = 1;"])
	assert.Equal(t, 3, depths["b();"])
	assert.Equal(t, 4, depths["c();"])
	assert.Equal(t, 4, depths["break;"])
	assert.Equal(t, 4, depths["d();"])
}

func TestMapRanges(t *testing.T) {
	t.Parallel()

	file := parse(t, rangesSource)
	at := func(s string) int {
		i := strings.Index(rangesSource, s)
		require.GreaterOrEqual(t, i, 0, "%q not found", s)
		return i
	}

	tests := []struct {
		name   string
		ranges []Range
		want   []string
	}{
		{
			name:   "caret in statement",
			ranges: []Range{{Start: at("a = 1"), End: at("a = 1")}},
			want:   []string{"int a = 1;"},
		},
		{
			name:   "nested statement",
			ranges: []Range{{Start: at("b()"), End: at("b()") + 1}},
			want:   []string{"b();"},
		},
		{
			name:   "range spanning statements selects the enclosing block owner",
			ranges: []Range{{Start: at("int a"), End: at("b()") + 1}},
			want:   []string{unitText(file, methodUnit(t, file))},
		},
		{
			name:   "range spanning top-level declarations",
			ranges: []Range{{Start: at("}\n\nclass B"), End: at("class B") + 5}},
			want:   []string{unitText(file, Unit{Node: file.Unit.Types[0]}), "class B {}"},
		},
		{
			name:   "blank line selects nothing",
			ranges: []Range{{Start: at("\n\n  void") + 1, End: at("\n\n  void") + 2}},
		},
		{
			name: "duplicates and nested units collapse",
			ranges: []Range{
				{Start: at("c()"), End: at("c()") + 1},
				{Start: at("switch"), End: at("switch") + 1},
				{Start: at("c()"), End: at("c()") + 2},
			},
			want: []string{unitText(file, switchUnit(t, file))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			units, err := MapRanges(file, tt.ranges)
			require.NoError(t, err)
			got := make([]string, 0, len(units))
			for _, u := range units {
				got = append(got, unitText(file, u))
			}
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func methodUnit(t *testing.T, file *jast.File) Unit {
	t.Helper()

	class, ok := file.Unit.Types[0].(*jast.ClassDecl)
	require.True(t, ok)
	return Unit{Node: class.Body.Members[1], Depth: 1}
}

func switchUnit(t *testing.T, file *jast.File) Unit {
	t.Helper()

	m, ok := methodUnit(t, file).Node.(*jast.MethodDecl)
	require.True(t, ok)
	return Unit{Node: m.Body.Stmts[2], Depth: 2}
}

func TestMapRanges_InvalidRanges(t *testing.T) {
	t.Parallel()

	file := parse(t, "class A {}")
	for _, r := range [][]Range{
		nil,
		{{Start: -1, End: 0}},
		{{Start: 3, End: 2}},
		{{Start: 0, End: 11}},
	} {
		_, err := MapRanges(file, r)
		assert.True(t, IsInputError(err), "ranges %v: got %v", r, err)
	}
}
