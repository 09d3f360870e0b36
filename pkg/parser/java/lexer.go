package java

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/jfmt/pkg/jast"
)

// operators lists punctuation and operators, longest first within each
// leading character. Shift operators and ">=" compounds built from ">" are
// left to the parser so that nested type argument lists close cleanly.
//
//nolint:gochecknoglobals // Read-only lookup table.
var operators = []string{
	"...", "<<=", "->", "::", "++", "--", "&&", "||", "==", "!=", "<=", ">=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<",
	"(", ")", "{", "}", "[", "]", ";", ",", ".", "@", "=", ">", "<", "!",
	"~", "?", ":", "+", "-", "*", "/", "&", "|", "^", "%",
}

// lexer splits source text into tokens and comments.
type lexer struct {
	src      []byte
	pos      int
	tokens   []jast.Token
	comments []*jast.Comment
	file     *jast.File
}

func lex(file *jast.File) error {
	lx := &lexer{src: file.Source, file: file}
	if err := lx.run(); err != nil {
		return err
	}
	file.Tokens = lx.tokens
	file.Comments = mergeMarkdownDocs(file, lx.comments)
	return nil
}

func (lx *lexer) errorf(offset int, format string, args ...any) error {
	return newSyntaxError(lx.file, offset, format, args...)
}

//nolint:gocyclo,cyclop // Dispatch on the first character of each token.
func (lx *lexer) run() error {
	// A leading byte order mark is not part of any token.
	if strings.HasPrefix(string(lx.src[:min(3, len(lx.src))]), "\ufeff") {
		lx.pos = 3
	}

	for {
		lx.skipSpace()
		if lx.pos >= len(lx.src) {
			lx.emit(jast.TokEOF, len(lx.src), len(lx.src))
			return nil
		}

		start := lx.pos
		ch := lx.src[lx.pos]
		var err error
		switch {
		case ch == '/' && lx.peek(1) == '/':
			lx.lineComment()
			continue
		case ch == '/' && lx.peek(1) == '*':
			err = lx.blockComment()
			if err == nil {
				continue
			}
		case ch == '"':
			err = lx.stringLit()
		case ch == '\'':
			err = lx.charLit()
		case isDigit(ch) || (ch == '.' && isDigit(lx.peek(1))):
			lx.number()
		default:
			r, size := utf8.DecodeRune(lx.src[lx.pos:])
			if isIdentStart(r) {
				lx.pos += size
				lx.ident(start)
				continue
			}
			err = lx.operator()
		}
		if err != nil {
			return err
		}
	}
}

func (lx *lexer) peek(n int) byte {
	if lx.pos+n < len(lx.src) {
		return lx.src[lx.pos+n]
	}
	return 0
}

func (lx *lexer) emit(kind jast.TokenKind, start, end int) {
	lx.tokens = append(lx.tokens, jast.Token{
		Kind:        kind,
		Text:        string(lx.src[start:end]),
		StartOffset: start,
		EndOffset:   end,
		Index:       len(lx.tokens),
	})
}

func (lx *lexer) skipSpace() {
	for lx.pos < len(lx.src) {
		switch lx.src[lx.pos] {
		case ' ', '\t', '\f', '\n', '\r':
			lx.pos++
		default:
			return
		}
	}
}

func (lx *lexer) lineComment() {
	start := lx.pos
	for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' && lx.src[lx.pos] != '\r' {
		lx.pos++
	}
	// Trailing whitespace is not part of the comment.
	end := lx.pos
	for end > start+2 && (lx.src[end-1] == ' ' || lx.src[end-1] == '\t') {
		end--
	}
	text := string(lx.src[start:end])
	style := jast.CommentLine
	if strings.HasPrefix(text, "///") && !strings.HasPrefix(text, "////") {
		style = jast.CommentMarkdownDoc
	}
	lx.comments = append(lx.comments, &jast.Comment{
		Text:        text,
		StartOffset: start,
		EndOffset:   end,
		Style:       style,
	})
}

func (lx *lexer) blockComment() error {
	start := lx.pos
	idx := strings.Index(string(lx.src[start+2:]), "*/")
	if idx < 0 {
		return lx.errorf(start, "unterminated comment")
	}
	lx.pos = start + 2 + idx + 2
	text := string(lx.src[start:lx.pos])
	style := jast.CommentBlock
	if strings.HasPrefix(text, "/**") && text != "/**/" {
		style = jast.CommentJavadoc
	}
	lx.comments = append(lx.comments, &jast.Comment{
		Text:        text,
		StartOffset: start,
		EndOffset:   lx.pos,
		Style:       style,
	})
	return nil
}

func (lx *lexer) stringLit() error {
	start := lx.pos
	if lx.peek(1) == '"' && lx.peek(2) == '"' {
		return lx.textBlock()
	}
	lx.pos++
	for {
		if lx.pos >= len(lx.src) || lx.src[lx.pos] == '\n' || lx.src[lx.pos] == '\r' {
			return lx.errorf(start, "unterminated string literal")
		}
		switch lx.src[lx.pos] {
		case '\\':
			lx.pos += 2
		case '"':
			lx.pos++
			lx.emit(jast.TokString, start, lx.pos)
			return nil
		default:
			lx.pos++
		}
	}
}

func (lx *lexer) textBlock() error {
	start := lx.pos
	lx.pos += 3
	for lx.pos < len(lx.src) && (lx.src[lx.pos] == ' ' || lx.src[lx.pos] == '\t' || lx.src[lx.pos] == '\f') {
		lx.pos++
	}
	if lx.pos >= len(lx.src) || (lx.src[lx.pos] != '\n' && lx.src[lx.pos] != '\r') {
		return lx.errorf(start, "text block opening delimiter must be followed by a line terminator")
	}
	for lx.pos < len(lx.src) {
		switch {
		case lx.src[lx.pos] == '\\':
			lx.pos += 2
		case lx.src[lx.pos] == '"' && lx.peek(1) == '"' && lx.peek(2) == '"':
			lx.pos += 3
			lx.emit(jast.TokTextBlock, start, lx.pos)
			return nil
		default:
			lx.pos++
		}
	}
	return lx.errorf(start, "unterminated text block")
}

func (lx *lexer) charLit() error {
	start := lx.pos
	lx.pos++
	for {
		if lx.pos >= len(lx.src) || lx.src[lx.pos] == '\n' || lx.src[lx.pos] == '\r' {
			return lx.errorf(start, "unterminated character literal")
		}
		switch lx.src[lx.pos] {
		case '\\':
			lx.pos += 2
		case '\'':
			lx.pos++
			lx.emit(jast.TokChar, start, lx.pos)
			return nil
		default:
			lx.pos++
		}
	}
}

func (lx *lexer) number() {
	start := lx.pos
	kind := jast.TokInt
	if lx.src[lx.pos] == '0' && (lx.peek(1) == 'x' || lx.peek(1) == 'X' || lx.peek(1) == 'b' || lx.peek(1) == 'B') {
		hex := lx.peek(1) == 'x' || lx.peek(1) == 'X'
		lx.pos += 2
		for lx.pos < len(lx.src) {
			ch := lx.src[lx.pos]
			switch {
			case isHexDigit(ch) || ch == '_':
				lx.pos++
			case hex && ch == '.':
				kind = jast.TokFloat
				lx.pos++
			case hex && (ch == 'p' || ch == 'P'):
				kind = jast.TokFloat
				lx.pos++
				if lx.pos < len(lx.src) && (lx.src[lx.pos] == '+' || lx.src[lx.pos] == '-') {
					lx.pos++
				}
			default:
				lx.finishNumber(start, kind)
				return
			}
		}
		lx.finishNumber(start, kind)
		return
	}

	lx.digits()
	if lx.pos < len(lx.src) && lx.src[lx.pos] == '.' && !isIdentStartByte(lx.peek(1)) && lx.peek(1) != '.' {
		kind = jast.TokFloat
		lx.pos++
		lx.digits()
	} else if lx.pos < len(lx.src) && lx.src[lx.pos] == '.' && isExponentOrSuffix(lx.peek(1)) {
		kind = jast.TokFloat
		lx.pos++
	}
	if lx.pos < len(lx.src) && (lx.src[lx.pos] == 'e' || lx.src[lx.pos] == 'E') {
		kind = jast.TokFloat
		lx.pos++
		if lx.pos < len(lx.src) && (lx.src[lx.pos] == '+' || lx.src[lx.pos] == '-') {
			lx.pos++
		}
		lx.digits()
	}
	lx.finishNumber(start, kind)
}

func (lx *lexer) finishNumber(start int, kind jast.TokenKind) {
	if lx.pos < len(lx.src) {
		switch lx.src[lx.pos] {
		case 'l', 'L':
			lx.pos++
		case 'f', 'F', 'd', 'D':
			kind = jast.TokFloat
			lx.pos++
		}
	}
	lx.emit(kind, start, lx.pos)
}

func (lx *lexer) digits() {
	for lx.pos < len(lx.src) && (isDigit(lx.src[lx.pos]) || lx.src[lx.pos] == '_') {
		lx.pos++
	}
}

func (lx *lexer) ident(start int) {
	for lx.pos < len(lx.src) {
		r, size := utf8.DecodeRune(lx.src[lx.pos:])
		if !isIdentPart(r) {
			break
		}
		lx.pos += size
	}
	kind := jast.TokIdent
	if jast.IsKeyword(string(lx.src[start:lx.pos])) {
		kind = jast.TokKeyword
	}
	lx.emit(kind, start, lx.pos)
}

func (lx *lexer) operator() error {
	rest := lx.src[lx.pos:]
	for _, op := range operators {
		if len(rest) >= len(op) && string(rest[:len(op)]) == op {
			start := lx.pos
			lx.pos += len(op)
			lx.emit(jast.TokOperator, start, lx.pos)
			return nil
		}
	}
	r, _ := utf8.DecodeRune(rest)
	return lx.errorf(lx.pos, "unexpected character %q", r)
}

// mergeMarkdownDocs joins runs of "///" comments on consecutive lines into a
// single markdown documentation comment.
func mergeMarkdownDocs(file *jast.File, comments []*jast.Comment) []*jast.Comment {
	out := make([]*jast.Comment, 0, len(comments))
	for _, c := range comments {
		if len(out) > 0 && c.Style == jast.CommentMarkdownDoc {
			prev := out[len(out)-1]
			between := file.Source[prev.EndOffset:c.StartOffset]
			if prev.Style == jast.CommentMarkdownDoc && strings.TrimSpace(string(between)) == "" &&
				file.Newlines(prev.EndOffset, c.StartOffset) == 1 &&
				file.OnlySpaceBefore(prev.StartOffset) && file.OnlySpaceBefore(c.StartOffset) {
				prev.Text += "\n" + c.Text
				prev.EndOffset = c.EndOffset
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isExponentOrSuffix(ch byte) bool {
	switch ch {
	case 'e', 'E', 'f', 'F', 'd', 'D':
		return true
	default:
		return false
	}
}

func isIdentStartByte(ch byte) bool {
	return ch == '_' || ch == '$' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= utf8.RuneSelf
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}
