package format

import (
	"slices"
	"sort"

	"github.com/yaklabco/jfmt/pkg/doc"
	"github.com/yaklabco/jfmt/pkg/fix"
	"github.com/yaklabco/jfmt/pkg/jast"
	"github.com/yaklabco/jfmt/pkg/style"
)

// Range is a half-open byte range [Start, End) of the source.
type Range struct {
	Start int
	End   int
}

// Unit is a formattable unit: a package, import or type declaration, a
// class body member, or a statement directly inside a block, switch case
// or class body. Depth is its indentation in indent units when the whole
// file is formatted.
type Unit struct {
	Node  jast.Node
	Depth int
}

func (u Unit) first() int { return u.Node.First() }
func (u Unit) last() int  { return u.Node.Last() }

func (u Unit) contains(other Unit) bool {
	return u.first() <= other.first() && other.last() <= u.last()
}

// validateRanges checks ranges against a source of length n.
func validateRanges(ranges []Range, n int) error {
	if len(ranges) == 0 {
		return inputErrorf("no ranges requested")
	}
	for _, r := range ranges {
		switch {
		case r.Start < 0:
			return inputErrorf("range [%d, %d) starts before the source", r.Start, r.End)
		case r.Start > r.End:
			return inputErrorf("range [%d, %d) ends before it starts", r.Start, r.End)
		case r.End > n:
			return inputErrorf("range [%d, %d) ends past the source length %d", r.Start, r.End, n)
		}
	}
	return nil
}

// MapRanges selects the units to reformat for ranges. Each range maps to
// the smallest unit covering every token it touches; a range spanning
// several top-level declarations maps to each of them. Ranges touching
// only whitespace or comments select nothing. The result is sorted, free
// of duplicates and of units nested in other selected units.
func MapRanges(file *jast.File, ranges []Range) ([]Unit, error) {
	if err := validateRanges(ranges, len(file.Source)); err != nil {
		return nil, err
	}
	units := collectUnits(file)

	var selected []Unit
	for _, r := range ranges {
		lo, hi, ok := touchedTokens(file, r)
		if !ok {
			continue
		}
		best := -1
		for i, u := range units {
			if u.first() > lo || u.last() < hi {
				continue
			}
			if best < 0 || u.last()-u.first() < units[best].last()-units[best].first() {
				best = i
			}
		}
		if best >= 0 {
			selected = append(selected, units[best])
			continue
		}
		for _, u := range units {
			if u.Depth == 0 && u.first() <= hi && u.last() >= lo {
				selected = append(selected, u)
			}
		}
	}
	return pruneUnits(selected), nil
}

// touchedTokens returns the first and last token overlapping r. An empty
// range touches the token containing its offset.
func touchedTokens(file *jast.File, r Range) (int, int, bool) {
	toks := file.Tokens[:file.EOF()]
	i := sort.Search(len(toks), func(i int) bool { return toks[i].EndOffset > r.Start })
	if i == len(toks) {
		return 0, 0, false
	}
	if r.Start == r.End {
		if toks[i].StartOffset <= r.Start {
			return i, i, true
		}
		return 0, 0, false
	}
	if toks[i].StartOffset >= r.End {
		return 0, 0, false
	}
	j := i
	for j+1 < len(toks) && toks[j+1].StartOffset < r.End {
		j++
	}
	return i, j, true
}

func pruneUnits(units []Unit) []Unit {
	slices.SortFunc(units, func(a, b Unit) int {
		if a.first() != b.first() {
			return a.first() - b.first()
		}
		return b.last() - a.last()
	})
	var out []Unit
	for _, u := range units {
		if len(out) > 0 && out[len(out)-1].contains(u) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// ApplyPartial renders every unit at its full-file indentation and returns
// the edits replacing the units whose text changes. A unit that shares its
// first line with preceding code moves to a line of its own.
func ApplyPartial(file *jast.File, units []Unit, opts style.Options) ([]fix.TextEdit, error) {
	var edits []fix.TextEdit
	for _, u := range units {
		root, err := buildUnit(file, opts, u)
		if err != nil {
			return nil, err
		}
		text := doc.Render(root, doc.Resolve(root, opts.MaxWidth, 0, opts.IndentWidth), opts.IndentWidth)

		start := file.SpanStart(u.first())
		end := file.SpanEnd(u.last())
		if onlySpaceBefore(file, start) {
			start = lineStart(file, start)
		} else {
			for start > 0 && (file.Source[start-1] == ' ' || file.Source[start-1] == '\t') {
				start--
			}
			text = "\n" + text
		}
		text = convertNewlines(text, file.Newline)
		if string(file.Source[start:end]) == text {
			continue
		}
		edits = append(edits, fix.TextEdit{StartOffset: start, EndOffset: end, NewText: text})
	}

	prepared, err := fix.PrepareEdits(edits, len(file.Source))
	if err != nil {
		return nil, &InternalConsistencyError{Message: "unit edits: " + err.Error()}
	}
	return prepared, nil
}

// unitCollector lists every formattable unit in source order.
type unitCollector struct {
	units []Unit
}

func collectUnits(file *jast.File) []Unit {
	c := &unitCollector{}
	u := file.Unit
	if u.Package != nil {
		c.add(u.Package, 0)
	}
	for _, imp := range u.Imports {
		c.add(imp, 0)
	}
	for _, t := range u.Types {
		c.decl(t, 0)
	}
	return c.units
}

func (c *unitCollector) add(n jast.Node, depth int) {
	c.units = append(c.units, Unit{Node: n, Depth: depth})
}

func (c *unitCollector) decl(d jast.Decl, depth int) {
	c.add(d, depth)
	switch d := d.(type) {
	case *jast.ClassDecl:
		c.classBody(d.Body, depth+1)
	case *jast.MethodDecl:
		if d.Body != nil {
			c.block(d.Body, depth+1)
		}
	case *jast.InitializerDecl:
		c.block(d.Body, depth+1)
	}
}

func (c *unitCollector) classBody(body *jast.ClassBody, depth int) {
	for _, k := range body.Constants {
		if k.Body != nil {
			c.classBody(k.Body, depth+1)
		}
	}
	for _, m := range body.Members {
		c.decl(m, depth)
	}
}

func (c *unitCollector) block(b *jast.Block, depth int) {
	for _, s := range b.Stmts {
		c.add(s, depth)
		c.nested(s, depth)
	}
}

// nested collects the units inside statement s, which sits at depth.
func (c *unitCollector) nested(s jast.Stmt, depth int) {
	switch s := s.(type) {
	case *jast.Block:
		c.block(s, depth+1)
	case *jast.IfStmt:
		c.body(s.Then, depth)
		if s.Else != nil {
			if elif, ok := s.Else.(*jast.IfStmt); ok {
				c.nested(elif, depth)
			} else {
				c.body(s.Else, depth)
			}
		}
	case *jast.WhileStmt:
		c.body(s.Body, depth)
	case *jast.DoStmt:
		c.body(s.Body, depth)
	case *jast.ForStmt:
		c.body(s.Body, depth)
	case *jast.ForEachStmt:
		c.body(s.Body, depth)
	case *jast.LabeledStmt:
		c.nested(s.Body, depth)
	case *jast.SyncStmt:
		c.block(s.Body, depth+1)
	case *jast.TryStmt:
		c.block(s.Body, depth+1)
		for _, cc := range s.Catches {
			c.block(cc.Body, depth+1)
		}
		if s.Finally != nil {
			c.block(s.Finally, depth+1)
		}
	case *jast.SwitchStmt:
		for _, sc := range s.Cases {
			if !sc.Arrow {
				c.block(&jast.Block{Stmts: sc.Body}, depth+2)
				continue
			}
			if blk, ok := sc.Body[0].(*jast.Block); ok {
				c.block(blk, depth+2)
			}
		}
	case *jast.LocalClassStmt:
		c.classBody(s.Decl.Body, depth+1)
	}
}

// body collects the units inside the body of a control statement at depth.
func (c *unitCollector) body(s jast.Stmt, depth int) {
	if blk, ok := s.(*jast.Block); ok {
		c.block(blk, depth+1)
		return
	}
	c.nested(s, depth+1)
}
