package ast

// Paragraph is one plain input line. Content is empty for a blank line.
type Paragraph struct {
	Content []Inline
}

// List is a run of consecutive bullet lines, one item per line.
type List struct {
	Items [][]Inline
}

type Text struct {
	Text string
}

type Bold struct {
	Children []Inline
}

type Italic struct {
	Children []Inline
}

type Strike struct {
	Children []Inline
}

// Code is a fenced span; Text is kept verbatim.
type Code struct {
	Text string
}
