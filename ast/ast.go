package ast

import "strings"

// Node is any element of a formatted message: a Block or an Inline.
type Node interface {
	node()
}

// Block is a top level element, either *Paragraph or *List.
type Block interface {
	Node
	block()
}

// Inline is a styled run within a line: *Text, *Bold, *Italic, *Strike
// or *Code.
type Inline interface {
	Node
	inline()
}

func (*Paragraph) node() {}
func (*List) node()      {}
func (*Text) node()      {}
func (*Bold) node()      {}
func (*Italic) node()    {}
func (*Strike) node()    {}
func (*Code) node()      {}

func (*Paragraph) block() {}
func (*List) block()      {}

func (*Text) inline()   {}
func (*Bold) inline()   {}
func (*Italic) inline() {}
func (*Strike) inline() {}
func (*Code) inline()   {}

// Children returns the nested inlines of a styled node, or nil for leaves.
func Children(n Inline) []Inline {
	switch n := n.(type) {
	case *Bold:
		return n.Children
	case *Italic:
		return n.Children
	case *Strike:
		return n.Children
	default:
		return nil
	}
}

// Bare returns the text of nodes with all markup removed.
func Bare(nodes []Inline) string {
	var out strings.Builder
	writeBare(&out, nodes)
	return out.String()
}

func writeBare(out *strings.Builder, nodes []Inline) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Text:
			out.WriteString(n.Text)
		case *Code:
			out.WriteString(n.Text)
		default:
			writeBare(out, Children(n))
		}
	}
}

// BlockText returns the bare text of a block. List items are joined
// with newlines.
func BlockText(b Block) string {
	switch b := b.(type) {
	case *Paragraph:
		return Bare(b.Content)
	case *List:
		items := make([]string, len(b.Items))
		for i, item := range b.Items {
			items[i] = Bare(item)
		}
		return strings.Join(items, "\n")
	default:
		return ""
	}
}
