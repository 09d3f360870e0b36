package java

import (
	"fmt"

	"github.com/yaklabco/jfmt/pkg/jast"
)

// SyntaxError describes source text that is not valid Java.
type SyntaxError struct {
	// Offset is the byte index of the offending position.
	Offset int

	// Line is the 1-based line of the offending position.
	Line int

	// Column is the 1-based byte column of the offending position.
	Column int

	// Msg describes what was expected or found.
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

func newSyntaxError(file *jast.File, offset int, format string, args ...any) *SyntaxError {
	line, col := file.LineAt(offset)
	return &SyntaxError{
		Offset: offset,
		Line:   line,
		Column: col,
		Msg:    fmt.Sprintf(format, args...),
	}
}
