// Package doc implements the abstract layout document, the layout engine
// that decides which optional breaks become newlines, and the renderer.
//
// A document is a tree of Text atoms, Break points, Indent scopes and
// Groups. A Group is laid out flat when it contains no forced break and fits
// on the current line together with the text that follows it up to the next
// break; otherwise its own breaks become newlines and nested groups are
// decided independently.
package doc

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Node is a document node: *Text, *Break, *Indent or *Group.
type Node interface {
	docNode()
}

// Text is a literal atom. Text containing newlines spans several lines and
// forces every enclosing group to break.
type Text struct {
	S string

	// Reindent re-indents continuation lines of a multi-line atom to the
	// current indentation plus one space, which keeps the stars of a block
	// comment aligned.
	Reindent bool
}

// BreakKind distinguishes optional from forced breaks.
type BreakKind uint8

const (
	// Optional breaks render as Flat or as a newline, as decided by layout.
	Optional BreakKind = iota

	// Forced breaks always render as a newline.
	Forced
)

// Break is a point where a newline plus indentation may be inserted.
type Break struct {
	Kind BreakKind

	// Flat is rendered when the break is not taken: usually "" or " ".
	Flat string
}

// Indent adds Delta indentation units to every line started within it.
type Indent struct {
	Delta    int
	Children []Node
}

// Group is evaluated as a whole for whether it fits on the current line.
type Group struct {
	Children []Node
}

func (*Text) docNode()   {}
func (*Break) docNode()  {}
func (*Indent) docNode() {}
func (*Group) docNode()  {}

// Multiline reports whether the atom spans several lines.
func (t *Text) Multiline() bool {
	return strings.Contains(t.S, "\n")
}

// Width returns the display width of s in terminal columns.
func Width(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return uniseg.StringWidth(s)
		}
	}
	return len(s)
}
