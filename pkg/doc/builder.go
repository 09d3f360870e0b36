package doc

// Builder assembles a document with a stack of open groups and indent
// scopes.
type Builder struct {
	root  *Group
	stack []*[]Node
}

// NewBuilder creates a builder whose root is an implicit, always broken
// group.
func NewBuilder() *Builder {
	root := &Group{}
	return &Builder{root: root, stack: []*[]Node{&root.Children}}
}

func (b *Builder) add(n Node) {
	top := b.stack[len(b.stack)-1]
	*top = append(*top, n)
}

// Text appends a literal atom. Empty strings are dropped.
func (b *Builder) Text(s string) {
	if s != "" {
		b.add(&Text{S: s})
	}
}

// Reindented appends a multi-line atom whose continuation lines follow the
// current indentation.
func (b *Builder) Reindented(s string) {
	b.add(&Text{S: s, Reindent: true})
}

// Break appends an optional break rendered as flat when not taken.
func (b *Builder) Break(flat string) *Break {
	br := &Break{Kind: Optional, Flat: flat}
	b.add(br)
	return br
}

// Forced appends a forced break.
func (b *Builder) Forced() *Break {
	br := &Break{Kind: Forced}
	b.add(br)
	return br
}

// Open starts a group.
func (b *Builder) Open() {
	g := &Group{}
	b.add(g)
	b.stack = append(b.stack, &g.Children)
}

// OpenIndent starts an indent scope of delta units.
func (b *Builder) OpenIndent(delta int) {
	ind := &Indent{Delta: delta}
	b.add(ind)
	b.stack = append(b.stack, &ind.Children)
}

// Close ends the innermost open group or indent scope.
func (b *Builder) Close() {
	if len(b.stack) == 1 {
		panic("doc: Close without matching Open")
	}
	b.stack = b.stack[:len(b.stack)-1]
}

// Depth returns the number of open groups and indent scopes.
func (b *Builder) Depth() int {
	return len(b.stack) - 1
}

// Doc returns the root group. All scopes must be closed.
func (b *Builder) Doc() *Group {
	if len(b.stack) != 1 {
		panic("doc: unclosed group or indent scope")
	}
	return b.root
}
