package java

import (
	"github.com/yaklabco/jfmt/pkg/jast"
)

// attachComments assigns every comment to exactly one token.
//
// A comment that starts on the same line as the preceding token trails that
// token. Every other comment leads the next token; comments after the last
// token lead the EOF token.
func attachComments(file *jast.File) {
	tokIdx := 0
	for ci, c := range file.Comments {
		for tokIdx < len(file.Tokens)-1 && file.Tokens[tokIdx].StartOffset < c.StartOffset {
			tokIdx++
		}
		next := tokIdx
		prev := next - 1

		// Where the code or comment before this comment ends.
		prevEnd := 0
		if prev >= 0 {
			prevEnd = file.Tokens[prev].EndOffset
		}
		if ci > 0 && file.Comments[ci-1].EndOffset > prevEnd {
			prevEnd = file.Comments[ci-1].EndOffset
		}

		// Where the code or comment after this comment starts.
		nextStart := file.Tokens[next].StartOffset
		if ci+1 < len(file.Comments) && file.Comments[ci+1].StartOffset < nextStart {
			nextStart = file.Comments[ci+1].StartOffset
		}
		lineEnds := file.Newlines(c.EndOffset, nextStart) > 0 || next == file.EOF()

		if prev >= 0 && file.Newlines(file.Tokens[prev].EndOffset, c.StartOffset) == 0 &&
			c.Style != jast.CommentMarkdownDoc {
			c.Token = prev
			c.Attach = jast.AttachTrailing
			if c.IsLine() || lineEnds {
				c.Attach = jast.AttachTrailingLine
			}
			file.Trailing[prev] = append(file.Trailing[prev], c)
			continue
		}

		c.Token = next
		c.Attach = jast.AttachLeading
		c.OwnLine = c.IsLine() || lineEnds
		c.BlankBefore = prevEnd > 0 && file.Newlines(prevEnd, c.StartOffset) > 1
		file.Leading[next] = append(file.Leading[next], c)
	}
}
