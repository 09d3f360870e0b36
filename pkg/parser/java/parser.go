// Package java parses Java source text into the jast model: tokens,
// attached comments and a syntax tree.
//
// The parser is a hand-written recursive descent parser over the token
// slice. It backtracks by token index where the grammar needs more than one
// token of lookahead, such as telling local variable declarations from
// expression statements or casts from parenthesized expressions.
package java

import (
	"errors"

	"github.com/yaklabco/jfmt/pkg/jast"
)

// Parse lexes and parses src. The returned file carries the token stream,
// comments attached to their tokens and the syntax tree. Invalid input
// fails with a *SyntaxError.
func Parse(src []byte) (*jast.File, error) {
	file := jast.NewFile(src)
	if err := lex(file); err != nil {
		return nil, err
	}
	attachComments(file)

	p := &parser{file: file, toks: file.Tokens}
	unit, err := p.parseUnit()
	if err != nil {
		return nil, err
	}
	file.Unit = unit
	return file, nil
}

// bailout carries a syntax error up the parser's call stack.
type bailout struct {
	err *SyntaxError
}

type parser struct {
	file *jast.File
	toks []jast.Token
	pos  int

	// noLambda disables lambda recognition while parsing case labels,
	// where "x ->" introduces the case body.
	noLambda bool
}

func (p *parser) parseUnit() (unit *jast.CompilationUnit, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			err = b.err
		}
	}()
	return p.compilationUnit(), nil
}

// attempt runs fn speculatively. On a syntax error the parser position is
// restored and ok is false.
func attempt[T any](p *parser, fn func() T) (result T, ok bool) {
	saved := p.pos
	savedNoLambda := p.noLambda
	defer func() {
		if r := recover(); r != nil {
			if _, isBailout := r.(bailout); !isBailout {
				panic(r)
			}
			p.pos = saved
			p.noLambda = savedNoLambda
			var zero T
			result, ok = zero, false
		}
	}()
	return fn(), true
}

func (p *parser) tok() jast.Token {
	return p.toks[p.pos]
}

func (p *parser) peekTok(n int) jast.Token {
	if p.pos+n < len(p.toks) {
		return p.toks[p.pos+n]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) at(text string) bool {
	t := p.toks[p.pos]
	return t.Text == text && t.Kind != jast.TokEOF
}

func (p *parser) peekIs(n int, text string) bool {
	t := p.peekTok(n)
	return t.Text == text && t.Kind != jast.TokEOF
}

func (p *parser) atKind(kind jast.TokenKind) bool {
	return p.toks[p.pos].Kind == kind
}

func (p *parser) atEOF() bool {
	return p.toks[p.pos].Kind == jast.TokEOF
}

// adjacent reports whether the tokens at offsets n and n+1 from the
// current position touch.
func (p *parser) adjacent(n int) bool {
	return p.peekTok(n).Adjacent(p.peekTok(n + 1))
}

func (p *parser) next() int {
	idx := p.pos
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return idx
}

func (p *parser) got(text string) bool {
	if p.at(text) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(text string) int {
	if !p.at(text) {
		p.failf("expected %q, found %s", text, p.describe())
	}
	return p.next()
}

func (p *parser) ident() string {
	if !p.atKind(jast.TokIdent) {
		p.failf("expected identifier, found %s", p.describe())
	}
	return p.toks[p.next()].Text
}

func (p *parser) describe() string {
	t := p.tok()
	if t.Kind == jast.TokEOF {
		return "end of file"
	}
	return "\"" + t.Text + "\""
}

func (p *parser) failf(format string, args ...any) {
	panic(bailout{err: newSyntaxError(p.file, p.tok().StartOffset, format, args...)})
}

// span closes a node that started at token index start.
func (p *parser) span(start int) jast.Span {
	return jast.Span{FirstTok: start, LastTok: p.pos - 1}
}

// qualifiedName parses "a.b.c" and returns it joined with dots.
func (p *parser) qualifiedName() string {
	name := p.ident()
	for p.at(".") && p.peekTok(1).Kind == jast.TokIdent {
		p.next()
		name += "." + p.ident()
	}
	return name
}

// AsSyntaxError extracts the *SyntaxError from err, if any.
func AsSyntaxError(err error) (*SyntaxError, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
