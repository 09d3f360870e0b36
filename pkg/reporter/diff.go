package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/jfmt/internal/ui/pretty"
	"github.com/yaklabco/jfmt/pkg/fix"
	"github.com/yaklabco/jfmt/pkg/runner"
)

// DiffReporter writes a git-style unified diff for every changed file.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	errs   *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	opts = opts.withDefaults()
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		errs:   pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.ErrorWriter)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("flush output: %w", flushErr)
		}
	}()
	if result == nil {
		return nil
	}

	var files, additions, deletions int
	for _, file := range result.Files {
		if file.Error != nil {
			if err := r.bw.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}
			if _, err := io.WriteString(r.opts.ErrorWriter, r.errs.FormatFileError(file.Error)); err != nil {
				return fmt.Errorf("write error: %w", err)
			}
			continue
		}
		if !file.Changed {
			continue
		}

		diff := fix.GenerateDiff(displayPath(file.Path, r.opts.WorkingDir), file.Original, file.Formatted)
		if !diff.HasChanges() {
			continue
		}
		files++
		additions += diff.Additions
		deletions += diff.Deletions
		r.writeDiff(diff)
	}

	if r.opts.ShowSummary && files > 0 {
		r.writeSummary(files, additions, deletions)
	}
	return nil
}

func (r *DiffReporter) writeDiff(diff *fix.Diff) {
	fmt.Fprintln(r.bw, r.styles.DiffHeader.Render(diff.GitHeader()))
	for _, line := range strings.Split(strings.TrimSuffix(diff.String(), "\n"), "\n") {
		fmt.Fprintln(r.bw, r.styleLine(line))
	}
}

func (r *DiffReporter) styleLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return r.styles.DiffHeader.Render(line)
	case strings.HasPrefix(line, "@@"):
		return r.styles.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		return r.styles.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		return r.styles.DiffRemove.Render(line)
	default:
		return r.styles.DiffContext.Render(line)
	}
}

func (r *DiffReporter) writeSummary(files, additions, deletions int) {
	parts := []string{pluralize(files, "file", "files") + " changed"}
	if additions > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(pluralize(additions, "insertion", "insertions")+"(+)"))
	}
	if deletions > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(pluralize(deletions, "deletion", "deletions")+"(-)"))
	}
	fmt.Fprintln(r.bw, strings.Join(parts, ", "))
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
