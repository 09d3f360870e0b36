package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/jfmt/pkg/fix"
	"github.com/yaklabco/jfmt/pkg/format"
	"github.com/yaklabco/jfmt/pkg/runner"
)

// jsonSchemaVersion identifies the layout of JSONOutput.
const jsonSchemaVersion = "1"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult is the outcome of one file.
type JSONFileResult struct {
	Path    string      `json:"path"`
	Changed bool        `json:"changed"`
	Written bool        `json:"written,omitempty"`
	Skipped string      `json:"skipped,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
	Diff    *JSONDiffed `json:"diff,omitempty"`
}

// JSONError describes a failure. Line and Column are set for syntax errors.
type JSONError struct {
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// JSONDiffed counts the changed lines of a file.
type JSONDiffed struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Hunks     int `json:"hunks"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesFormatted  int `json:"filesFormatted"`
	FilesChanged    int `json:"filesChanged"`
	FilesWritten    int `json:"filesWritten"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesErrored    int `json:"filesErrored"`
}

// JSONReporter writes the result as one JSON document.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	opts = opts.withDefaults()
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("flush output: %w", flushErr)
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(r.buildOutput(result)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{Version: jsonSchemaVersion, Files: []JSONFileResult{}}
	if result == nil {
		return output
	}

	s := result.Stats
	output.Summary = JSONSummary{
		FilesDiscovered: s.FilesDiscovered,
		FilesFormatted:  s.FilesFormatted,
		FilesChanged:    s.FilesChanged,
		FilesWritten:    s.FilesWritten,
		FilesSkipped:    s.FilesSkipped,
		FilesErrored:    s.FilesErrored,
	}

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)
		fr := JSONFileResult{
			Path:    path,
			Changed: file.Changed,
			Written: file.Written,
			Skipped: file.Skipped,
		}
		if file.Error != nil {
			fr.Error = jsonError(file.Error)
		}
		if file.Changed {
			if d := fix.GenerateDiff(path, file.Original, file.Formatted); d.HasChanges() {
				fr.Diff = &JSONDiffed{Additions: d.Additions, Deletions: d.Deletions, Hunks: len(d.Hunks)}
			}
		}
		output.Files = append(output.Files, fr)
	}
	return output
}

func jsonError(err error) *JSONError {
	je := &JSONError{Message: err.Error()}
	if se, ok := format.AsSyntaxError(err); ok {
		je.Line = se.Line
		je.Column = se.Column
	}
	return je
}
