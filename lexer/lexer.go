package lexer

import (
	"unicode"

	"github.com/insomnimus/chatmark/token"
)

// Lexer splits a message into line tokens. Only '\n' separates lines;
// any '\r' stays part of the line content.
type Lexer struct {
	doc          []rune
	ch           rune
	pos, readpos int
	line         int
	done         bool
}

func New(s string) *Lexer {
	l := &Lexer{
		doc:  []rune(s),
		line: 1,
		done: s == "",
	}
	l.read()
	return l
}

// Next returns the next line. Once the input is exhausted it keeps
// returning an EOF token.
func (l *Lexer) Next() token.Token {
	if l.done {
		return token.Token{Type: token.EOF, Line: l.line, Col: 1}
	}
	start := l.pos
	for !l.eof() && l.ch != '\n' {
		l.read()
	}
	text := l.doc[start:l.pos]
	n := l.line
	if l.eof() {
		l.done = true
	} else {
		// step over the newline; a trailing one still yields an empty line
		l.read()
		l.line++
	}
	return classify(text, n)
}

// classify reports a line starting with '-' or '*' plus one whitespace
// rune as a bullet and strips both.
func classify(text []rune, line int) token.Token {
	if isBullet(text) {
		return token.Token{
			Type:    token.Bullet,
			Literal: string(text[2:]),
			Marker:  text[0],
			Line:    line,
			Col:     3,
		}
	}
	return token.Token{
		Type:    token.Line,
		Literal: string(text),
		Line:    line,
		Col:     1,
	}
}

func isBullet(text []rune) bool {
	if len(text) < 2 {
		return false
	}
	return (text[0] == '-' || text[0] == '*') && unicode.IsSpace(text[1])
}
