// Package parser formats WhatsApp-style chat text into an ast tree.
//
// Each input line is a block of its own: lines starting with "- " or
// "* " are gathered into lists, every other line (blank ones included)
// becomes a paragraph. Within a line the styles are found in a fixed
// order:
//
//	```code```  opaque, never styled
//	*bold*      may contain italic and strike
//	_italic_    may contain strike
//	~strike~    plain text only
//
// A delimiter opens a span only when the next rune is not a space, and
// closes it only when the previous rune is not a space. The leftmost
// opener is paired with the nearest closer; spans never overlap. Anything
// that does not pair up is kept as literal text, so formatting never
// fails.
//
// Example usage:
//
//	blocks := parser.Format("*hello* _world_\n- one\n- two")
//
//	p := parser.New(msg)
//	for b := p.Next(); b != nil; b = p.Next() {
//	    // ...
//	}
//	for _, w := range p.Warnings() {
//	    fmt.Println(w)
//	}
package parser
