// Package reporter writes the outcome of a formatting run: formatted
// source or changed file names as text, unified diffs, or one JSON
// document.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/jfmt/pkg/config"
	"github.com/yaklabco/jfmt/pkg/runner"
)

// Reporter writes a run result.
type Reporter interface {
	Report(ctx context.Context, result *runner.Result) error
}

// New creates a Reporter for opts.Format.
func New(opts Options) (Reporter, error) {
	opts = opts.withDefaults()

	switch opts.Format {
	case config.FormatText:
		return NewTextReporter(opts), nil
	case config.FormatDiff:
		return NewDiffReporter(opts), nil
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

// displayPath returns path relative to workDir when it lies below it.
func displayPath(path, workDir string) string {
	if workDir == "" || !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
