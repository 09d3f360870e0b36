package doc

import "strings"

// Decisions maps every break of a resolved document to whether it renders
// as a newline.
type Decisions map[*Break]bool

// Broken reports whether br renders as a newline. Breaks missing from the
// table are broken only when forced.
func (d Decisions) Broken(br *Break) bool {
	if broken, ok := d[br]; ok {
		return broken
	}
	return br.Kind == Forced
}

type eventKind uint8

const (
	evText eventKind = iota
	evBreak
	evGroupOpen
	evGroupClose
	evIndentOpen
	evIndentClose
)

type event struct {
	kind  eventKind
	text  *Text
	brk   *Break
	group *Group
	delta int
}

type groupInfo struct {
	// flat is the width of the group rendered on one line.
	flat int

	// forced is set when the group holds a forced break or multi-line text.
	forced bool

	// trailing is the width of the text following the group up to the next
	// break.
	trailing int
}

// Resolve decides every break of root for the given maximum width. The
// first line starts at startColumn; a zero column means the first atom is
// indented like any other line start. The outermost node always breaks.
//
// Groups are decided outer first: a group that does not fit breaks all of
// its own breaks before its nested groups are considered, each at the
// column where it then starts.
func Resolve(root Node, maxWidth, startColumn, indentWidth int) Decisions {
	events := flatten(root)
	info := measure(events)
	decisions := make(Decisions)

	col := startColumn
	bol := startColumn == 0
	indents := []int{0}
	flats := make([]bool, 0, 8)

	for i, ev := range events {
		indent := indents[len(indents)-1]
		switch ev.kind {
		case evGroupOpen:
			var flat bool
			switch {
			case i == 0:
			case flats[len(flats)-1]:
				flat = true
			default:
				gi := info[ev.group]
				start := col
				if bol {
					start = indent
				}
				flat = !gi.forced && start+gi.flat+gi.trailing <= maxWidth
			}
			flats = append(flats, flat)

		case evGroupClose:
			flats = flats[:len(flats)-1]

		case evIndentOpen:
			indents = append(indents, indent+ev.delta*indentWidth)

		case evIndentClose:
			indents = indents[:len(indents)-1]

		case evText:
			if bol {
				col = indent
				bol = false
			}
			col = advance(col, ev.text)

		case evBreak:
			broken := ev.brk.Kind == Forced || len(flats) == 0 || !flats[len(flats)-1]
			decisions[ev.brk] = broken
			switch {
			case broken:
				bol = true
				col = indent
			case !bol:
				col += Width(ev.brk.Flat)
			}
		}
	}
	return decisions
}

// advance returns the column after rendering t starting at col.
func advance(col int, t *Text) int {
	if !t.Multiline() {
		return col + Width(t.S)
	}
	last := t.S[strings.LastIndexByte(t.S, '\n')+1:]
	if t.Reindent {
		return col + 1 + Width(strings.TrimLeft(last, " \t"))
	}
	return Width(last)
}

func flatten(root Node) []event {
	var events []event
	var walk func(n Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Text:
			events = append(events, event{kind: evText, text: n})
		case *Break:
			events = append(events, event{kind: evBreak, brk: n})
		case *Indent:
			events = append(events, event{kind: evIndentOpen, delta: n.Delta})
			for _, c := range n.Children {
				walk(c)
			}
			events = append(events, event{kind: evIndentClose})
		case *Group:
			events = append(events, event{kind: evGroupOpen, group: n})
			for _, c := range n.Children {
				walk(c)
			}
			events = append(events, event{kind: evGroupClose, group: n})
		}
	}
	if _, ok := root.(*Group); !ok {
		root = &Group{Children: []Node{root}}
	}
	walk(root)
	return events
}

// measure computes flat width, forced state and trailing width of every
// group in one right-to-left pass.
func measure(events []event) map[*Group]groupInfo {
	info := make(map[*Group]groupInfo)
	type frame struct {
		width  int
		forced bool
	}
	frames := []frame{{}}
	dist := 0

	for i := len(events) - 1; i >= 0; i-- {
		ev := events[i]
		top := &frames[len(frames)-1]
		switch ev.kind {
		case evGroupClose:
			info[ev.group] = groupInfo{trailing: dist}
			frames = append(frames, frame{})

		case evGroupOpen:
			done := frames[len(frames)-1]
			frames = frames[:len(frames)-1]
			gi := info[ev.group]
			gi.flat = done.width
			gi.forced = done.forced
			info[ev.group] = gi
			parent := &frames[len(frames)-1]
			parent.width += done.width
			parent.forced = parent.forced || done.forced

		case evText:
			if ev.text.Multiline() {
				top.forced = true
				first := ev.text.S[:strings.IndexByte(ev.text.S, '\n')]
				top.width += Width(first)
				dist = Width(first)
				continue
			}
			w := Width(ev.text.S)
			top.width += w
			dist += w

		case evBreak:
			top.width += Width(ev.brk.Flat)
			if ev.brk.Kind == Forced {
				top.forced = true
			}
			dist = 0

		case evIndentOpen, evIndentClose:
		}
	}
	return info
}
