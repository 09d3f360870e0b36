package format

import (
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// markdownBlockStart matches words that would open a block construct when
// placed at the start of a line.
var markdownBlockStart = regexp.MustCompile(`^([-+*>#=|]|\d+[.)]|` + "```" + `|~~~)`)

// reflowMarkdownDoc rewraps the top-level paragraphs of a "///" comment so
// that lines rendered as "/// text" fit in width columns. Every other block
// (lists, code, headings, quotes, html) is kept line for line.
func reflowMarkdownDoc(comment string, width int) []string {
	raw := strings.Split(comment, "\n")
	content := make([]string, len(raw))
	for i, line := range raw {
		line = strings.TrimLeft(line, " \t")
		line = strings.TrimPrefix(line, "///")
		content[i] = strings.TrimPrefix(line, " ")
	}

	src := []byte(strings.Join(content, "\n"))
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	starts := make([]int, 0, len(content))
	offset := 0
	for _, line := range content {
		starts = append(starts, offset)
		offset += len(line) + 1
	}
	lineOf := func(pos int) int {
		return sort.Search(len(starts), func(i int) bool { return starts[i] > pos }) - 1
	}

	// paragraph[i] holds the index of the paragraph covering line i, or -1.
	paragraph := make([]int, len(content))
	for i := range paragraph {
		paragraph[i] = -1
	}
	id := 0
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() != ast.KindParagraph || hasHardBreak(content, n, lineOf) {
			continue
		}
		segs := n.Lines()
		for k := range segs.Len() {
			paragraph[lineOf(segs.At(k).Start)] = id
		}
		id++
	}

	avail := max(width-len("/// "), 1)
	var out []string
	for i := 0; i < len(content); {
		if paragraph[i] < 0 {
			out = append(out, markdownLine(content[i]))
			i++
			continue
		}
		var words []string
		j := i
		for ; j < len(content) && paragraph[j] == paragraph[i]; j++ {
			words = append(words, strings.Fields(content[j])...)
		}
		for _, line := range wrapWords(words, avail, "", isMarkdownLineHazard) {
			out = append(out, markdownLine(line))
		}
		i = j
	}
	return out
}

func markdownLine(s string) string {
	if strings.TrimSpace(s) == "" {
		return "///"
	}
	return "/// " + s
}

// hasHardBreak reports whether a paragraph relies on its line structure.
func hasHardBreak(content []string, n ast.Node, lineOf func(int) int) bool {
	segs := n.Lines()
	for k := range segs.Len() - 1 {
		line := content[lineOf(segs.At(k).Start)]
		if strings.HasSuffix(line, "  ") || strings.HasSuffix(line, `\`) {
			return true
		}
	}
	return false
}

func isMarkdownLineHazard(word string) bool {
	return markdownBlockStart.MatchString(word) || strings.HasPrefix(word, "<")
}
