package fix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jfmt/pkg/fix"
)

func TestGenerateDiff_NoChanges(t *testing.T) {
	t.Parallel()

	assert.Nil(t, fix.GenerateDiff("A.java", nil, nil))
	src := []byte("class A {}\n")
	d := fix.GenerateDiff("A.java", src, src)
	assert.Nil(t, d)
	assert.False(t, d.HasChanges())
	assert.Empty(t, d.FullString())
}

func TestGenerateDiff_SingleChange(t *testing.T) {
	t.Parallel()

	before := "class A {\n  int  x;\n}\n"
	after := "class A {\n  int x;\n}\n"

	d := fix.GenerateDiff("src/A.java", []byte(before), []byte(after))
	require.NotNil(t, d)
	assert.Equal(t, 1, d.Additions)
	assert.Equal(t, 1, d.Deletions)

	want := strings.Join([]string{
		"--- a/src/A.java",
		"+++ b/src/A.java",
		"@@ -1,3 +1,3 @@",
		" class A {",
		"-  int  x;",
		"+  int x;",
		" }",
		"",
	}, "\n")
	assert.Equal(t, want, d.String())
	assert.Equal(t, "diff --git a/src/A.java b/src/A.java\n"+want, d.FullString())
}

func TestGenerateDiff_CarriageReturnLines(t *testing.T) {
	t.Parallel()

	d := fix.GenerateDiff("A.java", []byte("a\r\nb\r\n"), []byte("a\r\nc\r\n"))
	require.NotNil(t, d)
	assert.Contains(t, d.String(), "-b\n+c\n")
	assert.NotContains(t, d.String(), "\r")
}

func TestGenerateDiff_SeparateHunks(t *testing.T) {
	t.Parallel()

	var before, after []string
	for i := range 20 {
		line := "line" + string(rune('a'+i))
		before = append(before, line)
		switch i {
		case 1, 18:
			after = append(after, strings.ToUpper(line))
		default:
			after = append(after, line)
		}
	}

	d := fix.GenerateDiff("A.java",
		[]byte(strings.Join(before, "\n")+"\n"),
		[]byte(strings.Join(after, "\n")+"\n"))
	require.NotNil(t, d)
	require.Len(t, d.Hunks, 2)
	assert.Equal(t, 1, d.Hunks[0].OriginalStart)
	assert.Equal(t, 16, d.Hunks[1].OriginalStart)
	assert.Equal(t, "@@ -16,5 +16,5 @@", d.Hunks[1].Header())
}

func TestGenerateDiff_AddedTail(t *testing.T) {
	t.Parallel()

	d := fix.GenerateDiff("A.java", []byte("a\nb\n"), []byte("a\nb\nc\n"))
	require.NotNil(t, d)
	assert.Equal(t, 1, d.Additions)
	assert.Zero(t, d.Deletions)
	assert.Contains(t, d.String(), "+c\n")
}

func FuzzGenerateDiff(f *testing.F) {
	f.Add([]byte(""), []byte("x"))
	f.Add([]byte("a\nb\nc\n"), []byte("a\nx\nc\n"))
	f.Add([]byte("a\r\nb"), []byte("a\nb"))

	f.Fuzz(func(t *testing.T, original, modified []byte) {
		d := fix.GenerateDiff("A.java", original, modified)
		if d == nil {
			assert.Equal(t, string(original), string(modified))
			return
		}
		for _, h := range d.Hunks {
			assert.GreaterOrEqual(t, h.OriginalStart, 1)
			assert.GreaterOrEqual(t, h.ModifiedStart, 1)
			assert.Len(t, h.Lines, max(h.OriginalCount, h.ModifiedCount)+min(
				h.OriginalCount, h.ModifiedCount)-countContext(h))
		}
	})
}

func countContext(h fix.Hunk) int {
	n := 0
	for _, l := range h.Lines {
		if l.Kind == fix.LineContext {
			n++
		}
	}
	return n
}
