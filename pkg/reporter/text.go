package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/jfmt/internal/ui/pretty"
	"github.com/yaklabco/jfmt/pkg/config"
	"github.com/yaklabco/jfmt/pkg/runner"
)

// TextReporter prints formatted source in print mode and the names of
// changed files otherwise.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	errs   *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	opts = opts.withDefaults()
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		errs:   pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.ErrorWriter)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("flush output: %w", flushErr)
		}
	}()
	if result == nil {
		return nil
	}

	for _, file := range result.Files {
		if file.Error != nil {
			// Keep stdout and stderr in order when they share a terminal.
			if err := r.bw.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}
			if _, err := io.WriteString(r.opts.ErrorWriter, r.errs.FormatFileError(file.Error)); err != nil {
				return fmt.Errorf("write error: %w", err)
			}
			continue
		}
		if file.Skipped != "" {
			continue
		}

		if r.opts.Mode == config.ModePrint {
			if _, err := r.bw.Write(file.Formatted); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			continue
		}
		if file.Changed {
			fmt.Fprintln(r.bw, r.styles.FilePath.Render(displayPath(file.Path, r.opts.WorkingDir)))
		}
	}

	if r.opts.ShowSummary {
		if err := r.bw.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
		line := r.errs.FormatSummaryOneLine(result.Stats, r.opts.Mode == config.ModeReplace)
		if _, err := io.WriteString(r.opts.ErrorWriter, line); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}
