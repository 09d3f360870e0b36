package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReflowJavadoc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{
			name:  "empty",
			input: "/**\n */",
			width: 100,
			want:  []string{"/** */"},
		},
		{
			name:  "fits on one line",
			input: "/**\n * Returns the\n * value.\n */",
			width: 100,
			want:  []string{"/** Returns the value. */"},
		},
		{
			name:  "wraps paragraph",
			input: "/** alpha beta gamma delta epsilon zeta eta */",
			width: 30,
			want:  []string{"/**", "* alpha beta gamma delta", "* epsilon zeta eta", "*/"},
		},
		{
			name:  "block tags",
			input: "/**\n * Sum.\n *\n * @param a first\n * @return total\n */",
			width: 100,
			want:  []string{"/**", "* Sum.", "*", "* @param a first", "* @return total", "*/"},
		},
		{
			name:  "tag continuation is indented",
			input: "/** @param value the value to store in the holder */",
			width: 30,
			want:  []string{"/**", "* @param value the value to", "*     store in the holder", "*/"},
		},
		{
			name:  "preformatted lines are kept",
			input: "/**\n * Example:\n * <pre>\n *   a(  b );\n * </pre>\n */",
			width: 100,
			want:  []string{"/**", "* Example:", "*", "* <pre>", "*   a(  b );", "* </pre>", "*/"},
		},
		{
			name:  "inline tag stays whole",
			input: "/** Calls {@code foo bar} now. */",
			width: 24,
			want:  []string{"/**", "* Calls {@code foo bar}", "* now.", "*/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := reflowJavadoc(tt.input, tt.width)
			assert.Equal(t, strings.Join(tt.want, "\n"), got)
		})
	}
}

func TestReflowJavadoc_Idempotent(t *testing.T) {
	t.Parallel()

	input := "/**\n * First paragraph that is long enough to be wrapped when the width is small.\n *\n" +
		" * <p>Second paragraph.\n * @param x the x\n * @throws IllegalStateException when broken\n */"
	once := reflowJavadoc(input, 40)
	assert.Equal(t, once, reflowJavadoc(once, 40))
}

func TestWrapWords_HazardNeverStartsLine(t *testing.T) {
	t.Parallel()

	words := strings.Fields("one two three @four five")
	got := wrapWords(words, 9, "", isJavadocLineHazard)
	for _, line := range got {
		assert.False(t, strings.HasPrefix(line, "@"), "line %q", line)
	}
	assert.Equal(t, "one two three @four five", strings.Join(got, " "))
}

func TestReflowMarkdownDoc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{
			name:  "joins paragraph",
			input: "/// Returns\n/// the value.",
			width: 100,
			want:  []string{"/// Returns the value."},
		},
		{
			name:  "wraps paragraph",
			input: "/// alpha beta gamma delta epsilon",
			width: 20,
			want:  []string{"/// alpha beta gamma", "/// delta epsilon"},
		},
		{
			name:  "keeps lists and blank lines",
			input: "/// Items:\n///\n/// - one\n/// - two",
			width: 100,
			want:  []string{"/// Items:", "///", "/// - one", "/// - two"},
		},
		{
			name:  "keeps fenced code",
			input: "/// ```\n/// a(  b );\n/// ```",
			width: 100,
			want:  []string{"/// ```", "/// a(  b );", "/// ```"},
		},
		{
			name:  "list marker never starts a wrapped line",
			input: "/// aaaa bbbb - cccc",
			width: 13,
			want:  []string{"/// aaaa bbbb -", "/// cccc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, reflowMarkdownDoc(tt.input, tt.width))
		})
	}
}
