package ast

// Visitor's Visit method is called for each node encountered by Walk.
// If the returned visitor w is not nil, Walk visits each child of node
// with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a tree in depth-first order.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	switch n := node.(type) {
	case *Paragraph:
		walkList(v, n.Content)
	case *List:
		for _, item := range n.Items {
			walkList(v, item)
		}
	case *Bold:
		walkList(v, n.Children)
	case *Italic:
		walkList(v, n.Children)
	case *Strike:
		walkList(v, n.Children)
	}
	v.Visit(nil)
}

func walkList(v Visitor, nodes []Inline) {
	for _, n := range nodes {
		Walk(v, n)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses a tree in depth-first order, calling f for each node
// and then f(nil) after its children. Returning false skips the children.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
