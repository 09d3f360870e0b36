package format

import (
	"errors"
	"fmt"

	"github.com/yaklabco/jfmt/pkg/parser/java"
)

// SyntaxError reports source text that is not valid Java. The position is
// 1-based.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// InputError reports a malformed range or option.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Message
}

// InternalConsistencyError reports formatted output that failed the self
// check. Diff describes the first differences between the syntax
// fingerprints of input and output.
type InternalConsistencyError struct {
	Message string
	Diff    []string
}

func (e *InternalConsistencyError) Error() string {
	if len(e.Diff) == 0 {
		return "internal consistency error: " + e.Message
	}
	return fmt.Sprintf("internal consistency error: %s (first difference: %s)", e.Message, e.Diff[0])
}

func inputErrorf(format string, args ...any) error {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// wrapParseError converts a parser failure into the package error type.
func wrapParseError(err error) error {
	if se, ok := java.AsSyntaxError(err); ok {
		return &SyntaxError{Line: se.Line, Column: se.Column, Message: se.Msg}
	}
	return err
}

// IsSyntaxError reports whether err is or wraps a *SyntaxError.
func IsSyntaxError(err error) bool {
	_, ok := AsSyntaxError(err)
	return ok
}

// AsSyntaxError returns the *SyntaxError in err's chain.
func AsSyntaxError(err error) (*SyntaxError, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsInputError reports whether err is or wraps an *InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// IsInternalError reports whether err is or wraps an
// *InternalConsistencyError.
func IsInternalError(err error) bool {
	var ie *InternalConsistencyError
	return errors.As(err, &ie)
}
