package doc

import (
	"strings"
)

// Render flattens root into text using the decisions of Resolve. Lines are
// joined with "\n" and never end in spaces. Render has no state beyond its
// arguments.
func Render(root Node, decisions Decisions, indentWidth int) string {
	r := &renderer{decisions: decisions, indentWidth: indentWidth, bol: true}
	r.node(root, 0)
	return string(r.buf)
}

type renderer struct {
	decisions   Decisions
	indentWidth int
	buf         []byte
	col         int
	bol         bool
}

func (r *renderer) node(n Node, indent int) {
	switch n := n.(type) {
	case *Text:
		r.text(n, indent)
	case *Break:
		switch {
		case r.decisions.Broken(n):
			r.newline()
		case !r.bol:
			r.buf = append(r.buf, n.Flat...)
			r.col += Width(n.Flat)
		}
	case *Indent:
		for _, c := range n.Children {
			r.node(c, indent+n.Delta*r.indentWidth)
		}
	case *Group:
		for _, c := range n.Children {
			r.node(c, indent)
		}
	}
}

func (r *renderer) text(t *Text, indent int) {
	if r.bol {
		r.buf = append(r.buf, strings.Repeat(" ", indent)...)
		r.col = indent
		r.bol = false
	}
	start := r.col
	if !t.Multiline() {
		r.buf = append(r.buf, t.S...)
		r.col += Width(t.S)
		return
	}

	lines := strings.Split(t.S, "\n")
	r.buf = append(r.buf, lines[0]...)
	for _, line := range lines[1:] {
		if t.Reindent {
			r.newline()
		} else {
			// Verbatim atoms such as text blocks keep their trailing blanks.
			r.buf = append(r.buf, '\n')
		}
		r.bol = false
		if t.Reindent {
			line = strings.TrimLeft(line, " \t")
			if line != "" {
				r.buf = append(r.buf, strings.Repeat(" ", start+1)...)
			}
		}
		r.buf = append(r.buf, line...)
	}
	r.col = advance(start, t)
}

// newline trims trailing blanks from the current line and starts a new one.
func (r *renderer) newline() {
	end := len(r.buf)
	for end > 0 && (r.buf[end-1] == ' ' || r.buf[end-1] == '\t') {
		end--
	}
	r.buf = append(r.buf[:end], '\n')
	r.bol = true
	r.col = 0
}
