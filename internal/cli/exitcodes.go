package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/yaklabco/jfmt/internal/configloader"
	"github.com/yaklabco/jfmt/pkg/format"
	"github.com/yaklabco/jfmt/pkg/fsutil"
	"github.com/yaklabco/jfmt/pkg/runner"
)

// Exit codes for jfmt.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFilesChanged indicates --check found files that need formatting.
	ExitFilesChanged = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitSyntaxError indicates input that is not valid Java.
	ExitSyntaxError = 66

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrFilesChanged is returned by format --check when a file would change.
var ErrFilesChanged = errors.New("files need formatting")

// UsageError reports invalid flags or arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ReportedError wraps failures the reporter has already shown.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// IsSilent reports whether err needs no further message on exit.
func IsSilent(err error) bool {
	var reported *ReportedError
	return errors.Is(err, ErrFilesChanged) || errors.As(err, &reported)
}

// ExitCode maps a command error to the process exit code. When err joins
// several failures the most severe class wins: internal, then syntax, then
// I/O.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		usage      *UsageError
		validation *configloader.ValidationError
	)
	switch {
	case format.IsInternalError(err):
		return ExitInternalError
	case errors.As(err, &validation):
		return ExitConfigError
	case errors.As(err, &usage), errors.Is(err, runner.ErrNotJava), format.IsInputError(err):
		return ExitInvalidUsage
	case format.IsSyntaxError(err):
		return ExitSyntaxError
	case isIOError(err):
		return ExitIOError
	case errors.Is(err, ErrFilesChanged):
		return ExitFilesChanged
	default:
		return ExitInternalError
	}
}

func isIOError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) ||
		errors.Is(err, fsutil.ErrNotFound) ||
		errors.Is(err, fsutil.ErrPermissionDenied) ||
		errors.Is(err, fsutil.ErrIsDirectory) ||
		errors.Is(err, fsutil.ErrConcurrentModification)
}
