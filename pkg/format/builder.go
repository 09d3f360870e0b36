// Package format turns parsed Java source into layout documents and renders
// them: whole files through Full and Formatter.FormatSource, selected
// character ranges through Ranges.
package format

import (
	"fmt"
	"strings"

	"github.com/yaklabco/jfmt/pkg/doc"
	"github.com/yaklabco/jfmt/pkg/jast"
	"github.com/yaklabco/jfmt/pkg/style"
)

// builder walks the syntax tree and emits every token exactly once, in
// source order, together with the comments attached to it.
type builder struct {
	file *jast.File
	opts style.Options
	d    *doc.Builder

	// pos is the index of the next token to emit.
	pos int

	// level is the block nesting of the current line, in indent units.
	level int

	leadDone map[int]bool

	// pendingForce turns the next break into a newline, or inserts one
	// before the next atom. Set after line comments.
	pendingForce bool

	// pendingSpace separates an inline block comment from what follows.
	pendingSpace bool

	lastBreak *doc.Break
	newlines  int
	fresh     bool
}

// buildError carries an internal failure out of the builder.
type buildError struct {
	err error
}

func newBuilder(file *jast.File, opts style.Options) *builder {
	return &builder{
		file:     file,
		opts:     opts,
		d:        doc.NewBuilder(),
		leadDone: make(map[int]bool),
		fresh:    true,
	}
}

func (b *builder) failf(format string, args ...any) {
	panic(buildError{err: &InternalConsistencyError{Message: fmt.Sprintf(format, args...)}})
}

// run executes fn and converts builder panics into errors.
func (b *builder) run(fn func()) (root *doc.Group, err error) {
	defer func() {
		if r := recover(); r != nil {
			be, ok := r.(buildError)
			if !ok {
				panic(r)
			}
			err = be.err
		}
	}()
	fn()
	return b.d.Doc(), nil
}

// buildFile builds the document of a whole compilation unit.
func buildFile(file *jast.File, opts style.Options) (*doc.Group, error) {
	b := newBuilder(file, opts)
	return b.run(func() {
		b.compilationUnit(file.Unit)
		if b.pos != file.EOF() {
			b.failf("token %d of %d left unformatted", b.pos, file.EOF())
		}
	})
}

// buildUnit builds the document of one formattable unit nested depth
// indent units deep.
func buildUnit(file *jast.File, opts style.Options, u Unit) (*doc.Group, error) {
	b := newBuilder(file, opts)
	b.pos = u.Node.First()
	b.level = u.Depth
	return b.run(func() {
		b.d.OpenIndent(u.Depth)
		b.flushLeading(b.pos)
		switch n := u.Node.(type) {
		case *jast.PackageDecl:
			b.packageDecl(n)
		case *jast.ImportDecl:
			b.importDecl(n)
		case jast.Decl:
			b.member(n)
		case jast.Stmt:
			b.stmt(n)
		default:
			b.failf("cannot format %T as a unit", u.Node)
		}
		b.d.Close()
		if b.pos != u.Node.Last()+1 {
			b.failf("unit ended at token %d, want %d", b.pos, u.Node.Last()+1)
		}
	})
}

// cur returns the next token to emit.
func (b *builder) cur() jast.Token {
	if b.pos >= len(b.file.Tokens) {
		b.failf("read past end of input")
	}
	return b.file.Tokens[b.pos]
}

// tok emits the next token, which must have the given text.
func (b *builder) tok(text string) {
	t := b.cur()
	if t.Text != text {
		line, col := b.file.LineAt(t.StartOffset)
		b.failf("expected %q at %d:%d, found %q", text, line, col, t.Text)
	}
	b.emitTok(b.pos)
	b.pos++
}

// op emits an operator that may span several adjacent tokens, such as the
// shift operators built from ">" tokens.
func (b *builder) op(op string) {
	got := ""
	for got != op {
		t := b.cur().Text
		if !strings.HasPrefix(op, got+t) {
			b.failf("expected operator %q, found %q", op, t)
		}
		b.tok(t)
		got += t
	}
}

// name emits a dotted name token by token.
func (b *builder) name(dotted string) {
	for i, part := range strings.Split(dotted, ".") {
		if i > 0 {
			b.tok(".")
		}
		b.tok(part)
	}
}

// emitTok writes token i with its leading and trailing comments. It does
// not move the cursor.
func (b *builder) emitTok(i int) {
	b.leading(i)
	text := b.file.Tokens[i].Text
	if text == "," || text == ";" {
		// Separators follow a block comment directly.
		b.pendingSpace = false
	}
	if b.file.Tokens[i].Kind == jast.TokTextBlock {
		text = strings.Join(jast.SplitLines(text), "\n")
	}
	b.text(text)
	b.trailing(i)
}

func (b *builder) text(s string) {
	switch {
	case b.pendingForce:
		b.forced()
	case b.pendingSpace:
		b.d.Text(" ")
	}
	b.pendingSpace = false
	b.d.Text(s)
	b.lastBreak = nil
	b.newlines = 0
	b.fresh = false
}

// space emits a single blank unless a newline is pending.
func (b *builder) space() {
	if b.pendingForce {
		b.forced()
		return
	}
	if b.atLineStart() {
		return
	}
	b.pendingSpace = false
	b.d.Text(" ")
}

// brk emits an optional break.
func (b *builder) brk(flat string) *doc.Break {
	if b.pendingForce {
		return b.forced()
	}
	if b.pendingSpace && flat == "" {
		flat = " "
	}
	b.pendingSpace = false
	br := b.d.Break(flat)
	b.lastBreak = br
	return br
}

func (b *builder) forced() *doc.Break {
	br := b.d.Forced()
	b.pendingForce = false
	b.pendingSpace = false
	b.lastBreak = br
	b.newlines++
	return br
}

func (b *builder) atLineStart() bool {
	return b.fresh || b.newlines > 0
}

// newline ends the current line unless it is empty. An optional break
// emitted just before becomes forced instead of adding a second newline.
func (b *builder) newline() {
	if b.atLineStart() {
		return
	}
	if b.lastBreak != nil {
		b.lastBreak.Kind = doc.Forced
		b.pendingForce = false
		b.pendingSpace = false
		b.newlines = 1
		return
	}
	b.forced()
}

// blankLine ends the current line and adds one empty line.
func (b *builder) blankLine() {
	if b.fresh {
		return
	}
	b.newline()
	if b.newlines < 2 {
		b.forced()
	}
}

func (b *builder) open() {
	b.d.Open()
}

func (b *builder) openIndent(units int) {
	b.d.OpenIndent(units)
}

func (b *builder) close() {
	b.d.Close()
}

// continuation opens an indent scope for continuation lines.
func (b *builder) continuation() {
	b.d.OpenIndent(style.ContinuationUnits)
}

// indented runs fn one block level deeper.
func (b *builder) indented(fn func()) {
	b.d.OpenIndent(1)
	b.level++
	fn()
	b.level--
	b.d.Close()
}

// leading emits the leading comments of token i once.
func (b *builder) leading(i int) {
	if b.leadDone[i] {
		return
	}
	b.leadDone[i] = true
	for n, c := range b.file.Leading[i] {
		if c.OwnLine || c.IsLine() {
			if n > 0 && c.BlankBefore {
				b.blankLine()
			} else {
				b.newline()
			}
			b.comment(c)
			b.pendingForce = true
			continue
		}
		b.comment(c)
		b.pendingSpace = true
	}
}

// flushLeading emits the leading comments of token i and ends their line,
// so that a following group does not see the comment's newline.
func (b *builder) flushLeading(i int) {
	b.leading(i)
	if b.pendingForce {
		b.forced()
	}
}

// trailing emits the comments that follow token i on its line.
func (b *builder) trailing(i int) {
	for _, c := range b.file.Trailing[i] {
		b.pendingSpace = false
		b.d.Text(" ")
		b.comment(c)
		if c.Attach == jast.AttachTrailingLine || c.IsLine() {
			b.pendingForce = true
		} else {
			b.pendingSpace = true
		}
	}
}

// closingComments emits the comments in front of a closing brace inside
// the body they belong to.
func (b *builder) closingComments(closeIdx int, afterContent bool) {
	if len(b.file.Leading[closeIdx]) == 0 {
		return
	}
	if afterContent {
		if b.file.BlankLineBefore(closeIdx) {
			b.blankLine()
		} else {
			b.newline()
		}
	}
	b.leading(closeIdx)
}

func (b *builder) comment(c *jast.Comment) {
	switch {
	case c.Style == jast.CommentMarkdownDoc:
		lines := strings.Split(c.Text, "\n")
		if b.opts.ReflowJavadoc {
			lines = reflowMarkdownDoc(c.Text, b.docWidth())
		}
		for k, line := range lines {
			if k > 0 {
				b.forced()
			}
			b.text(line)
		}
	case c.Style == jast.CommentJavadoc && b.opts.ReflowJavadoc && c.OwnLine:
		b.multiline(reflowJavadoc(c.Text, b.docWidth()))
	default:
		b.multiline(strings.Join(jast.SplitLines(c.Text), "\n"))
	}
}

// multiline emits comment text. Comments whose continuation lines all
// start with "*" are re-indented to keep the stars aligned; any other
// multi-line comment is kept verbatim.
func (b *builder) multiline(s string) {
	if !strings.Contains(s, "\n") {
		b.text(s)
		return
	}
	b.text("")
	lines := strings.Split(s, "\n")
	for _, line := range lines[1:] {
		if !strings.HasPrefix(strings.TrimLeft(line, " \t"), "*") {
			b.d.Text(s)
			return
		}
	}
	b.d.Reindented(s)
}

// docWidth is the width available to a documentation comment at the
// current block level.
func (b *builder) docWidth() int {
	return max(b.opts.MaxWidth-b.level*b.opts.IndentWidth, style.MinMaxWidth/2)
}
