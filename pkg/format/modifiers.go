package format

import (
	"cmp"
	"slices"

	"github.com/yaklabco/jfmt/pkg/jast"
)

// modifierRank is the canonical modifier order of JLS 8.1.1, 8.3.1, 8.4.3
// and 9.4.
//
//nolint:gochecknoglobals // Read-only lookup table.
var modifierRank = map[string]int{
	"public":       0,
	"protected":    1,
	"private":      2,
	"abstract":     3,
	"default":      4,
	"static":       5,
	"final":        6,
	"sealed":       7,
	"non-sealed":   8,
	"transient":    9,
	"volatile":     10,
	"synchronized": 11,
	"native":       12,
	"strictfp":     13,
}

// orderModifiers returns the modifier items in output order. Annotations
// keep their positions; keywords fill the keyword positions in canonical
// order when reorder is set.
func orderModifiers(m *jast.Modifiers, reorder bool) []jast.Node {
	items := slices.Clone(m.Items)
	if !reorder {
		return items
	}
	keywords := m.Keywords()
	slices.SortStableFunc(keywords, func(a, b *jast.Keyword) int {
		return cmp.Compare(modifierRank[a.Name], modifierRank[b.Name])
	})
	k := 0
	for i, item := range items {
		if _, ok := item.(*jast.Keyword); ok {
			items[i] = keywords[k]
			k++
		}
	}
	return items
}

// declModifiers emits the modifiers of a type, method or field. Leading
// annotations get a line of their own.
func (b *builder) declModifiers(m *jast.Modifiers) {
	b.modifiers(m, true)
}

// inlineModifiers emits the modifiers of a parameter, local variable or
// pattern on the current line.
func (b *builder) inlineModifiers(m *jast.Modifiers) {
	b.modifiers(m, false)
}

func (b *builder) modifiers(m *jast.Modifiers, annotationLines bool) {
	if m.Empty() {
		return
	}
	if b.pos != m.First() {
		b.failf("modifiers start at token %d, cursor at %d", m.First(), b.pos)
	}
	leadingAnnotation := true
	for _, item := range orderModifiers(m, b.opts.ReorderModifiers) {
		switch it := item.(type) {
		case *jast.Annotation:
			b.pos = it.First()
			b.annotation(it)
			if annotationLines && leadingAnnotation {
				b.forced()
			} else {
				b.space()
			}
		case *jast.Keyword:
			leadingAnnotation = false
			for i := it.First(); i <= it.Last(); i++ {
				b.emitTok(i)
			}
			b.space()
		}
	}
	b.pos = m.Last() + 1
}
