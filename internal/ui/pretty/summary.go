package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/jfmt/pkg/runner"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// FormatSummaryOneLine renders run statistics as one line, e.g.
// "12 files checked, 3 reformatted, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, wrote bool) string {
	parts := []string{plural(stats.FilesFormatted+stats.FilesErrored, "file", "files") + " checked"}

	verb := "need formatting"
	if wrote {
		verb = "reformatted"
	}
	switch {
	case stats.FilesChanged == 0 && stats.FilesErrored == 0:
		parts = append(parts, s.Success.Render("all formatted"))
	case stats.FilesChanged > 0:
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d %s", stats.FilesChanged, verb)))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}
	return strings.Join(parts, ", ") + "\n"
}

// FormatFileError renders a per-file failure line.
func (s *Styles) FormatFileError(err error) string {
	return s.Error.Render("error:") + " " + err.Error() + "\n"
}
