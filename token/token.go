package token

import "fmt"

type TokenType uint8

const (
	_ TokenType = iota
	EOF
	Line
	Bullet
)

var names = [...]string{
	EOF:    "EOF",
	Line:   "Line",
	Bullet: "Bullet",
}

func (t TokenType) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Token is one input line. For a Bullet, Literal is the content after
// the marker and Marker holds the marker rune ('-' or '*').
// Line and Col are 1-based; Col is where Literal starts.
type Token struct {
	Type      TokenType
	Literal   string
	Marker    rune
	Line, Col int
}

func (t Token) GoString() string {
	return fmt.Sprintf("Token{\n"+
		"\tType: %s,\n"+
		"\tLiteral: %q,\n"+
		"\tMarker: %q,\n"+
		"\tLine: %d,\n"+
		"\tCol: %d,\n}", t.Type, t.Literal, t.Marker, t.Line, t.Col)
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q)", t.Type, t.Literal)
}

// Delim is an inline style delimiter.
type Delim rune

const (
	Star  Delim = '*'
	Under Delim = '_'
	Tilde Delim = '~'
	Tick  Delim = '`'
)

// Fence is the code span delimiter.
const Fence = "```"
