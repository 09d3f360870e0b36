package fix

import (
	"fmt"
	"strings"
)

// LineKind classifies a line of a diff hunk.
type LineKind int

const (
	// LineContext is a line present in both versions.
	LineContext LineKind = iota

	// LineAdded is a line present only in the formatted version.
	LineAdded

	// LineRemoved is a line present only in the original version.
	LineRemoved
)

// DiffLine is one line of a hunk, without its prefix or terminator.
type DiffLine struct {
	Kind    LineKind
	Content string
}

// Hunk is a run of changes with surrounding context. Line numbers are
// 1-based.
type Hunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []DiffLine
}

// Diff is a line diff between the original and formatted text of a file.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// contextLines is the number of unchanged lines shown around changes.
const contextLines = 3

// GenerateDiff compares original and modified line by line. Lines may end
// in "\n", "\r\n" or "\r"; a change of terminator alone counts as a change.
// It returns nil when the contents are equal.
func GenerateDiff(path string, original, modified []byte) *Diff {
	if string(original) == string(modified) {
		return nil
	}
	before := splitKeepEnds(string(original))
	after := splitKeepEnds(string(modified))

	ops := diffLines(before, after)
	hunks := groupHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, h := range hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case LineAdded:
				d.Additions++
			case LineRemoved:
				d.Deletions++
			case LineContext:
			}
		}
	}
	return d
}

// HasChanges reports whether the diff holds any hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String renders the diff in unified format without the git header.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n", path)
	fmt.Fprintf(&sb, "+++ b/%s\n", path)
	for _, h := range d.Hunks {
		sb.WriteString(h.Header())
		sb.WriteByte('\n')
		for _, l := range h.Lines {
			sb.WriteString(l.Prefix())
			sb.WriteString(l.Content)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// FullString renders the diff with its git header.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// Header returns the "@@ -a,b +c,d @@" line of the hunk.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
}

// Prefix returns the unified diff marker of the line.
func (l DiffLine) Prefix() string {
	switch l.Kind {
	case LineAdded:
		return "+"
	case LineRemoved:
		return "-"
	default:
		return " "
	}
}

// splitKeepEnds splits s into lines that keep their terminators.
func splitKeepEnds(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i+1])
			start = i + 1
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			lines = append(lines, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

type lineOp struct {
	kind    LineKind
	content string
}

// diffLines computes an edit script between two line slices. The common
// prefix and suffix are matched directly; the middle uses a longest common
// subsequence table.
func diffLines(a, b []string) []lineOp {
	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix &&
		a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	ops := make([]lineOp, 0, len(a)+len(b))
	for _, l := range a[:prefix] {
		ops = append(ops, lineOp{LineContext, l})
	}
	ops = append(ops, lcsOps(a[prefix:len(a)-suffix], b[prefix:len(b)-suffix])...)
	for _, l := range a[len(a)-suffix:] {
		ops = append(ops, lineOp{LineContext, l})
	}
	return ops
}

func lcsOps(a, b []string) []lineOp {
	n, m := len(a), len(b)
	// table[i][j] is the LCS length of a[i:] and b[j:].
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else {
				table[i][j] = max(table[i+1][j], table[i][j+1])
			}
		}
	}

	var ops []lineOp
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			ops = append(ops, lineOp{LineContext, a[i]})
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			ops = append(ops, lineOp{LineRemoved, a[i]})
			i++
		default:
			ops = append(ops, lineOp{LineAdded, b[j]})
			j++
		}
	}
	for ; i < n; i++ {
		ops = append(ops, lineOp{LineRemoved, a[i]})
	}
	for ; j < m; j++ {
		ops = append(ops, lineOp{LineAdded, b[j]})
	}
	return ops
}

// groupHunks collects changed lines with their context into hunks,
// merging changes separated by at most twice the context.
func groupHunks(ops []lineOp) []Hunk {
	var hunks []Hunk
	for i := 0; i < len(ops); {
		if ops[i].kind == LineContext {
			i++
			continue
		}
		end := i
		for k := i; k < len(ops); k++ {
			if ops[k].kind != LineContext {
				end = k + 1
				continue
			}
			if k-end >= 2*contextLines {
				break
			}
		}
		hunks = append(hunks, buildHunk(ops, max(i-contextLines, 0), min(end+contextLines, len(ops))))
		i = end
	}
	return hunks
}

func buildHunk(ops []lineOp, from, to int) Hunk {
	h := Hunk{OriginalStart: 1, ModifiedStart: 1}
	for _, op := range ops[:from] {
		if op.kind != LineAdded {
			h.OriginalStart++
		}
		if op.kind != LineRemoved {
			h.ModifiedStart++
		}
	}
	for _, op := range ops[from:to] {
		h.Lines = append(h.Lines, DiffLine{Kind: op.kind, Content: strings.TrimRight(op.content, "\r\n")})
		if op.kind != LineAdded {
			h.OriginalCount++
		}
		if op.kind != LineRemoved {
			h.ModifiedCount++
		}
	}
	return h
}
