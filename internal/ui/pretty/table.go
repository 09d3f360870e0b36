package pretty

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/jfmt/pkg/style"
)

const (
	tablePadding   = 2
	heavySeparator = "="
	defaultMarker  = "*"
)

// FormatPresetTable renders the style presets as a table. The preset named
// current is marked.
func (s *Styles) FormatPresetTable(presets []style.Preset, current style.Name) string {
	header := []string{"", "NAME", "INDENT", "WIDTH", "OPERATORS", "DESCRIPTION"}
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		marker := ""
		if p.Name == current {
			marker = defaultMarker
		}
		rows = append(rows, []string{
			marker,
			string(p.Name),
			strconv.Itoa(p.IndentWidth),
			strconv.Itoa(p.MaxWidth),
			p.Placement.String(),
			p.Description,
		})
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	total := 0
	for _, w := range widths {
		total += w + tablePadding
	}
	sep := s.TableBorder.Render(strings.Repeat(heavySeparator, total-tablePadding))

	b.WriteString(s.TableHeader.Render(formatRow(header, widths)))
	b.WriteByte('\n')
	b.WriteString(sep)
	b.WriteByte('\n')
	for _, row := range rows {
		line := formatRow(row, widths)
		if row[0] != "" {
			line = s.Accent.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(sep)
	b.WriteByte('\n')
	return b.String()
}

// formatRow pads cells to their column widths by display width.
func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		b.WriteString(cell)
		if i == len(cells)-1 {
			break
		}
		b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+tablePadding))
	}
	return strings.TrimRight(b.String(), " ")
}
