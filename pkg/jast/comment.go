package jast

import "strings"

// CommentStyle distinguishes the lexical forms of a comment.
type CommentStyle uint8

const (
	// CommentLine is a "//" comment.
	CommentLine CommentStyle = iota

	// CommentBlock is a "/* */" comment.
	CommentBlock

	// CommentJavadoc is a "/** */" documentation comment.
	CommentJavadoc

	// CommentMarkdownDoc is a run of consecutive "///" documentation lines.
	CommentMarkdownDoc
)

// Attachment describes where a comment sits relative to its owning token.
type Attachment uint8

const (
	// AttachLeading comments precede their token.
	AttachLeading Attachment = iota

	// AttachTrailing comments follow their token on the same line and are
	// themselves followed by more code on that line.
	AttachTrailing

	// AttachTrailingLine comments follow their token and end the line.
	AttachTrailingLine
)

// Comment is a source comment attached to exactly one token.
type Comment struct {
	// Text is the comment text including its delimiters. Markdown doc
	// comments hold one "///" line per text line, without indentation.
	Text string

	// StartOffset is the byte index where the comment begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the comment ends (exclusive).
	EndOffset int

	// Style is the lexical form of the comment.
	Style CommentStyle

	// Attach is the relation to the owning token.
	Attach Attachment

	// Token is the index of the owning token in File.Tokens.
	Token int

	// OwnLine is set for leading comments followed by a line break.
	OwnLine bool

	// BlankBefore is set for leading comments preceded by a blank line.
	BlankBefore bool
}

// Reflowable reports whether the comment is a documentation comment whose
// prose may be re-wrapped.
func (c *Comment) Reflowable() bool {
	return c.Style == CommentJavadoc || c.Style == CommentMarkdownDoc
}

// IsLine reports whether the comment must be followed by a line break.
func (c *Comment) IsLine() bool {
	return c.Style == CommentLine || c.Style == CommentMarkdownDoc
}

// Lines splits the comment text on line terminators.
func (c *Comment) Lines() []string {
	return SplitLines(c.Text)
}

// Normalized returns the comment prose with delimiters, leading stars and
// whitespace differences removed. Two comments whose normalized forms are
// equal carry the same content.
func (c *Comment) Normalized() string {
	text := c.Text
	switch c.Style {
	case CommentLine:
		text = strings.TrimPrefix(text, "//")
	case CommentBlock, CommentJavadoc:
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
	case CommentMarkdownDoc:
	}

	lines := SplitLines(text)
	for i, line := range lines {
		line = strings.TrimSpace(line)
		switch c.Style {
		case CommentMarkdownDoc:
			line = strings.TrimPrefix(line, "///")
		case CommentBlock, CommentJavadoc:
			line = strings.TrimLeft(line, "*")
		case CommentLine:
		}
		lines[i] = line
	}
	return strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
}

// SplitLines splits s on "\r\n", "\r" and "\n".
func SplitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
