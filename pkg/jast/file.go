package jast

import "sort"

// File is the parsed form of one Java source file.
type File struct {
	// Source is the original source text.
	Source []byte

	// Tokens holds every token in source order. The last token is always
	// TokEOF positioned at len(Source).
	Tokens []Token

	// Comments holds every comment in source order.
	Comments []*Comment

	// Leading maps a token index to its leading comments in source order.
	Leading map[int][]*Comment

	// Trailing maps a token index to its trailing comments in source order.
	Trailing map[int][]*Comment

	// Unit is the root of the syntax tree.
	Unit *CompilationUnit

	// Newline is the first line terminator found in Source, or "\n".
	Newline string

	lineStarts []int
}

// NewFile creates a File shell for src and indexes its lines.
func NewFile(src []byte) *File {
	f := &File{
		Source:   src,
		Leading:  make(map[int][]*Comment),
		Trailing: make(map[int][]*Comment),
		Newline:  DetectNewline(src),
	}
	f.lineStarts = append(f.lineStarts, 0)
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\n':
			f.lineStarts = append(f.lineStarts, i+1)
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
	return f
}

// DetectNewline returns the first line terminator in src, or "\n".
func DetectNewline(src []byte) string {
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\n':
			return "\n"
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				return "\r\n"
			}
			return "\r"
		}
	}
	return "\n"
}

// EOF returns the index of the EOF token.
func (f *File) EOF() int {
	return len(f.Tokens) - 1
}

// LineCount returns the number of lines in the source.
func (f *File) LineCount() int {
	return len(f.lineStarts)
}

// LineAt returns the 1-based line and column for a byte offset.
func (f *File) LineAt(offset int) (int, int) {
	idx := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return idx + 1, offset - f.lineStarts[idx] + 1
}

// LineStartOffset returns the byte offset of the start of a 1-based line.
// Lines past the end map to len(Source).
func (f *File) LineStartOffset(line int) int {
	if line < 1 {
		return 0
	}
	if line > len(f.lineStarts) {
		return len(f.Source)
	}
	return f.lineStarts[line-1]
}

// LineStart returns the offset of the start of the line containing offset.
func (f *File) LineStart(offset int) int {
	line, _ := f.LineAt(offset)
	return f.lineStarts[line-1]
}

// Newlines counts the line terminators in Source[from:to].
func (f *File) Newlines(from, to int) int {
	if from < 0 {
		from = 0
	}
	if to > len(f.Source) {
		to = len(f.Source)
	}
	count := 0
	for i := from; i < to; i++ {
		switch f.Source[i] {
		case '\n':
			count++
		case '\r':
			if i+1 < to && f.Source[i+1] == '\n' {
				i++
			}
			count++
		}
	}
	return count
}

// OnlySpaceBefore reports whether only spaces and tabs precede offset on
// its line.
func (f *File) OnlySpaceBefore(offset int) bool {
	for i := f.LineStart(offset); i < offset; i++ {
		if f.Source[i] != ' ' && f.Source[i] != '\t' && f.Source[i] != '\f' {
			return false
		}
	}
	return true
}

// Text returns the source text of the token at index i.
func (f *File) Text(i int) string {
	return f.Tokens[i].Text
}

// SpanStart returns the offset where the code and comments owned by token i
// begin: its first leading comment, or the token itself.
func (f *File) SpanStart(i int) int {
	if lead := f.Leading[i]; len(lead) > 0 {
		return lead[0].StartOffset
	}
	return f.Tokens[i].StartOffset
}

// SpanEnd returns the offset where token i and its trailing comments end.
func (f *File) SpanEnd(i int) int {
	if trail := f.Trailing[i]; len(trail) > 0 {
		return trail[len(trail)-1].EndOffset
	}
	return f.Tokens[i].EndOffset
}

// BlankLineBefore reports whether a blank line separates token i (or its
// first leading comment) from the preceding token and its trailing comments.
func (f *File) BlankLineBefore(i int) bool {
	if i <= 0 {
		return false
	}
	return f.Newlines(f.SpanEnd(i-1), f.SpanStart(i)) > 1
}
