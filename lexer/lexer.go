// Package lexer tokenizes Hawk source text into a token.Token stream.
package lexer

import (
	"strconv"

	"github.com/AlexCouch/hawk-lang/diag"
	"github.com/AlexCouch/hawk-lang/token"
)

// Lexer scans a single source file left to right, tracking line, column,
// and byte offset as it goes.
type Lexer struct {
	path   string
	src    []byte
	offset int
	line   int
	col    int
}

// New creates a Lexer over src, attributing positions to path.
func New(src string, path string) *Lexer {
	return &Lexer{
		path: path,
		src:  []byte(src),
		line: 1,
		col:  1,
	}
}

func (l *Lexer) pos() diag.Pos {
	return diag.Pos{Path: l.path, Offset: l.offset, Line: l.line, Col: l.col}
}

func (l *Lexer) atEnd() bool {
	return l.offset >= len(l.src)
}

func (l *Lexer) peek() byte {
	return l.src[l.offset]
}

// advance consumes one byte, keeping line/col bookkeeping in sync with
// the tokenizer's tab/newline rules.
func (l *Lexer) advance() byte {
	c := l.src[l.offset]
	l.offset++
	switch c {
	case '\n':
		l.line++
		l.col = 1
	case '\t':
		l.col += 3
	default:
		l.col++
	}
	return c
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isIdentCont(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

// Scan tokenizes the whole source, returning whatever tokens were produced
// before an abort (on overflow) along with any diagnostics.
func (l *Lexer) Scan() ([]token.Token, diag.Diagnostics) {
	var out []token.Token
	var diags diag.Diagnostics

	for !l.atEnd() {
		c := l.peek()
		switch {
		case c == ' ':
			l.advance()
		case c == '\n' || c == '\t':
			l.advance()
		case isDigit(c):
			tok, ok := l.scanInteger(&diags)
			if !ok {
				return out, diags
			}
			out = append(out, tok)
		case isLetter(c):
			out = append(out, l.scanIdentifier())
		default:
			if kind, ok := token.Punctuation[c]; ok {
				start := l.pos()
				l.advance()
				out = append(out, token.Token{Kind: kind, Start: start, End: l.pos()})
			} else {
				l.advance()
			}
		}
	}
	return out, diags
}

func (l *Lexer) scanInteger(diags *diag.Diagnostics) (token.Token, bool) {
	start := l.pos()
	startOffset := l.offset
	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}
	text := string(l.src[startOffset:l.offset])
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		diags.Add(diag.Span{Start: start, End: l.pos()}, "integer literal %s overflows a 32-bit signed integer", text)
		return token.Token{}, false
	}
	return token.Token{Kind: token.Integer, Data: int32(v), Start: start, End: l.pos()}, true
}

func (l *Lexer) scanIdentifier() token.Token {
	start := l.pos()
	startOffset := l.offset
	l.advance()
	for !l.atEnd() && isIdentCont(l.peek()) {
		l.advance()
	}
	text := string(l.src[startOffset:l.offset])
	return token.Token{Kind: token.Identifier, Data: text, Start: start, End: l.pos()}
}
