package format

import (
	"strings"

	"github.com/yaklabco/jfmt/pkg/doc"
	"github.com/yaklabco/jfmt/pkg/jast"
)

type javadocKind uint8

const (
	jdText javadocKind = iota
	jdTag
	jdPre
)

// javadocBlock is a paragraph, block tag or preformatted section.
type javadocBlock struct {
	kind        javadocKind
	blankBefore bool
	words       []string
	lines       []string
}

// tagIndent prefixes continuation lines of a block tag.
const tagIndent = "    "

// htmlBlockPrefixes start a new output line.
//
//nolint:gochecknoglobals // Read-only lookup table.
var htmlBlockPrefixes = []string{
	"<ul", "</ul", "<ol", "</ol", "<li", "</li", "<dl", "</dl", "<dt", "<dd",
	"<table", "</table", "<tr", "</tr", "<blockquote", "</blockquote",
	"<h1", "<h2", "<h3", "<h4", "<h5", "<h6",
}

// reflowJavadoc rewraps the prose of a documentation comment so that lines
// rendered as " * text" fit in width columns. Words, including inline tags
// such as {@code a b}, are never split or joined, and <pre> sections are
// copied line for line. The result uses "\n" and starts with "/**".
func reflowJavadoc(text string, width int) string {
	blocks := parseJavadoc(text)
	avail := max(width-len(" * "), 1)

	if len(blocks) == 0 {
		return "/** */"
	}
	if len(blocks) == 1 && blocks[0].kind == jdText {
		one := "/** " + strings.Join(blocks[0].words, " ") + " */"
		if doc.Width(one) <= width {
			return one
		}
	}

	out := []string{"/**"}
	for i, blk := range blocks {
		if i > 0 && blk.blankBefore {
			out = append(out, "*")
		}
		switch blk.kind {
		case jdPre:
			for _, line := range blk.lines {
				out = append(out, starLine(line))
			}
		case jdTag:
			for _, line := range wrapWords(blk.words, avail, tagIndent, isJavadocLineHazard) {
				out = append(out, starLine(line))
			}
		case jdText:
			for _, line := range wrapWords(blk.words, avail, "", isJavadocLineHazard) {
				out = append(out, starLine(line))
			}
		}
	}
	out = append(out, "*/")
	return strings.Join(out, "\n")
}

func starLine(line string) string {
	if line == "" {
		return "*"
	}
	return "* " + line
}

// javadocContent strips the delimiters and the star margin of each line.
func javadocContent(text string) []string {
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimSuffix(text, "*/")
	lines := jast.SplitLines(text)
	for i, line := range lines {
		line = strings.TrimLeft(line, " \t")
		if strings.HasPrefix(line, "*") {
			line = strings.TrimPrefix(line, "*")
			line = strings.TrimPrefix(line, " ")
		}
		lines[i] = strings.TrimRight(line, " \t")
	}
	return lines
}

//nolint:gocognit,cyclop,funlen // Single pass over comment lines.
func parseJavadoc(text string) []javadocBlock {
	var (
		blocks  []javadocBlock
		cur     *javadocBlock
		blank   bool
		pending string
		inPre   bool
	)

	finish := func() {
		if pending != "" && cur != nil {
			cur.words = append(cur.words, pending)
		}
		pending = ""
		if cur != nil && (len(cur.words) > 0 || len(cur.lines) > 0) {
			blocks = append(blocks, *cur)
		}
		cur = nil
	}
	start := func(kind javadocKind, blankBefore bool) {
		finish()
		cur = &javadocBlock{kind: kind, blankBefore: blankBefore}
	}
	sawContent := func() bool {
		return len(blocks) > 0 || (cur != nil && len(cur.words) > 0)
	}
	lastIsTag := func() bool {
		if cur != nil && len(cur.words) > 0 {
			return cur.kind == jdTag
		}
		return len(blocks) > 0 && blocks[len(blocks)-1].kind == jdTag
	}

	for _, line := range javadocContent(text) {
		if inPre {
			cur.lines = append(cur.lines, line)
			if strings.Contains(strings.ToLower(line), "</pre>") {
				inPre = false
				finish()
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if pending == "" {
				finish()
				blank = true
			}
			continue
		}

		if pending == "" && strings.HasPrefix(strings.ToLower(trimmed), "<pre>") {
			start(jdPre, blank || sawContent())
			blank = false
			cur.lines = append(cur.lines, line)
			if strings.Contains(strings.ToLower(trimmed[len("<pre>"):]), "</pre>") {
				finish()
			} else {
				inPre = true
			}
			continue
		}

		if pending == "" && isBlockTag(trimmed) {
			start(jdTag, sawContent() && (!lastIsTag() || blank))
			blank = false
		}

		for _, word := range strings.Fields(trimmed) {
			if pending != "" {
				pending += " " + word
				if braceBalanced(pending) {
					cur.words = append(cur.words, pending)
					pending = ""
				}
				continue
			}
			switch {
			case strings.HasPrefix(strings.ToLower(word), "<p>"):
				start(jdText, sawContent())
			case isHTMLBlockWord(word):
				start(jdText, blank)
			case cur == nil || blank:
				start(jdText, blank && sawContent())
			}
			blank = false
			if strings.Contains(word, "{@") && !braceBalanced(word) {
				pending = word
				continue
			}
			cur.words = append(cur.words, word)
		}
	}
	finish()
	return blocks
}

// isBlockTag reports whether a line starts a block tag such as @param.
func isBlockTag(line string) bool {
	if len(line) < 2 || line[0] != '@' {
		return false
	}
	c := line[1]
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isHTMLBlockWord(word string) bool {
	lower := strings.ToLower(word)
	for _, prefix := range htmlBlockPrefixes {
		if strings.HasPrefix(lower, prefix) {
			rest := lower[len(prefix):]
			if rest == "" || rest[0] == '>' || rest[0] == ' ' {
				return true
			}
		}
	}
	return false
}

func braceBalanced(s string) bool {
	return strings.Count(s, "{") <= strings.Count(s, "}")
}

// isJavadocLineHazard reports whether a word would change the structure of
// the comment if it started a line.
func isJavadocLineHazard(word string) bool {
	return strings.HasPrefix(word, "@") || strings.HasPrefix(strings.ToLower(word), "<pre>")
}

// wrapWords fills lines greedily. Continuation lines start with indent. A
// word for which hazard returns true never starts a continuation line.
func wrapWords(words []string, width int, indent string, hazard func(string) bool) []string {
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, w := range words {
		ww := doc.Width(w)
		switch {
		case lineWidth == 0:
			line.WriteString(w)
			lineWidth = ww
			continue
		case lineWidth+1+ww <= width, hazard(w):
			line.WriteString(" ")
			line.WriteString(w)
			lineWidth += 1 + ww
			continue
		}
		lines = append(lines, line.String())
		line.Reset()
		line.WriteString(indent)
		line.WriteString(w)
		lineWidth = len(indent) + ww
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
