package format

import (
	"strings"

	"github.com/yaklabco/jfmt/pkg/doc"
	"github.com/yaklabco/jfmt/pkg/fix"
	"github.com/yaklabco/jfmt/pkg/jast"
	"github.com/yaklabco/jfmt/pkg/parser/java"
	"github.com/yaklabco/jfmt/pkg/style"
)

const bom = "\ufeff"

// Full formats a whole compilation unit. The output uses the first line
// terminator of src, ends with one newline and keeps a leading byte order
// mark. Empty or blank input formats to "".
func Full(src []byte, opts style.Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", &InputError{Message: err.Error()}
	}
	file, err := java.Parse(src)
	if err != nil {
		return "", wrapParseError(err)
	}

	root, err := buildFile(file, opts)
	if err != nil {
		return "", err
	}
	text := doc.Render(root, doc.Resolve(root, opts.MaxWidth, 0, opts.IndentWidth), opts.IndentWidth)
	if text != "" {
		text += "\n"
	}
	text = convertNewlines(text, file.Newline)
	if hasBOM(src) {
		text = bom + text
	}

	if err := verify(file, []byte(text)); err != nil {
		return "", err
	}
	return text, nil
}

// Ranges formats the units of src touched by ranges and returns the edits
// that apply the new layout. Bytes outside the returned edits keep their
// original content. The result is sorted and free of overlaps.
func Ranges(src []byte, opts style.Options, ranges []Range) ([]fix.TextEdit, error) {
	if err := opts.Validate(); err != nil {
		return nil, &InputError{Message: err.Error()}
	}
	if err := validateRanges(ranges, len(src)); err != nil {
		return nil, err
	}
	file, err := java.Parse(src)
	if err != nil {
		return nil, wrapParseError(err)
	}

	units, err := MapRanges(file, ranges)
	if err != nil {
		return nil, err
	}
	edits, err := ApplyPartial(file, units, opts)
	if err != nil {
		return nil, err
	}
	if len(edits) == 0 {
		return nil, nil
	}
	if err := verify(file, fix.ApplyEdits(src, edits)); err != nil {
		return nil, err
	}
	return edits, nil
}

// Formatter formats source text with fixed options.
type Formatter struct {
	opts style.Options
}

// New returns a Formatter for opts.
func New(opts style.Options) (*Formatter, error) {
	if err := opts.Validate(); err != nil {
		return nil, &InputError{Message: err.Error()}
	}
	return &Formatter{opts: opts}, nil
}

// Options returns the options of the formatter.
func (f *Formatter) Options() style.Options {
	return f.opts
}

// Full formats a whole file.
func (f *Formatter) Full(src []byte) (string, error) {
	return Full(src, f.opts)
}

// Ranges formats the units touched by ranges.
func (f *Formatter) Ranges(src []byte, ranges []Range) ([]fix.TextEdit, error) {
	return Ranges(src, f.opts, ranges)
}

// FormatSource returns src with the units touched by ranges reformatted,
// or the whole file formatted when ranges is empty.
func (f *Formatter) FormatSource(src string, ranges []Range) (string, error) {
	if len(ranges) == 0 {
		return f.Full([]byte(src))
	}
	edits, err := f.Ranges([]byte(src), ranges)
	if err != nil {
		return "", err
	}
	return string(fix.ApplyEdits([]byte(src), edits)), nil
}

func convertNewlines(s, newline string) string {
	if newline == "\n" {
		return s
	}
	return strings.ReplaceAll(s, "\n", newline)
}

func hasBOM(src []byte) bool {
	return strings.HasPrefix(string(src[:min(len(bom), len(src))]), bom)
}

// lineStart returns the start of the line holding offset, skipping a
// leading byte order mark.
func lineStart(file *jast.File, offset int) int {
	start := file.LineStart(offset)
	if start == 0 && hasBOM(file.Source) {
		return len(bom)
	}
	return start
}

// onlySpaceBefore reports whether offset is preceded on its line by blanks
// only.
func onlySpaceBefore(file *jast.File, offset int) bool {
	for i := lineStart(file, offset); i < offset; i++ {
		switch file.Source[i] {
		case ' ', '\t', '\f':
		default:
			return false
		}
	}
	return true
}
