package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/jfmt/internal/logging"
	"github.com/yaklabco/jfmt/pkg/config"
	"github.com/yaklabco/jfmt/pkg/format"
	"github.com/yaklabco/jfmt/pkg/fsutil"
)

// Runner formats files with one Formatter.
type Runner struct {
	Formatter *format.Formatter
}

// New returns a Runner using f.
func New(f *format.Formatter) *Runner {
	return &Runner{Formatter: f}
}

// Run discovers files and formats them concurrently. Per-file failures are
// recorded in the outcomes; the returned error is set only when discovery
// fails or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	logger.Debug("discovered files",
		logging.FieldFilesDiscovered, len(files),
		logging.FieldStyle, r.Formatter.Options().Style,
		logging.FieldMode, opts.Mode)

	outcomes := make([]FileOutcome, len(files))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.FormatFile(gctx, path, opts)
			return nil
		})
	}
	runErr := g.Wait()

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	for _, o := range outcomes {
		if o.Path != "" {
			result.Add(o)
		}
	}

	if runErr == nil {
		runErr = ctx.Err()
	}
	if runErr != nil {
		return result, fmt.Errorf("run cancelled: %w", runErr)
	}

	logger.Debug("run finished",
		logging.FieldFilesFormatted, result.Stats.FilesFormatted,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesFailed, result.Stats.FilesErrored)
	return result, nil
}

// FormatFile reads, formats and, in replace mode, rewrites one file.
func (r *Runner) FormatFile(ctx context.Context, path string, opts Options) FileOutcome {
	ctx = logging.WithFields(ctx, logging.FieldPath, path)
	logger := logging.FromContext(ctx)
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Original = content

	if !opts.IncludeGenerated && isGenerated(path, content) {
		logger.Debug("skipping generated file")
		outcome.Skipped = "generated"
		return outcome
	}

	formatted, err := r.Formatter.Full(content)
	if err != nil {
		outcome.Error = &FileError{Path: path, Err: err}
		return outcome
	}
	outcome.Formatted = []byte(formatted)
	outcome.Changed = !bytes.Equal(content, outcome.Formatted)
	logger.Debug("formatted", logging.FieldBytes, len(formatted), "changed", outcome.Changed)

	if opts.Mode != config.ModeReplace || !outcome.Changed {
		return outcome
	}

	err = fsutil.ReplaceFile(ctx, info, content, outcome.Formatted, fsutil.ReplaceOptions{Backup: opts.Backup})
	if err != nil {
		if errors.Is(err, fsutil.ErrConcurrentModification) {
			logger.Warn("file changed while formatting; left untouched")
		}
		outcome.Error = err
		return outcome
	}
	outcome.Written = true
	return outcome
}

// FileError attaches the file path to a formatting error.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if format.IsSyntaxError(e.Err) {
		return e.Path + ":" + e.Err.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}
