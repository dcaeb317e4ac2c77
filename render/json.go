package render

import (
	"encoding/json"
	"io"

	"github.com/insomnimus/chatmark/ast"
)

// JSON writes the tree as tagged objects, for example
// {"type":"bold","children":[{"type":"text","text":"hi"}]}.
type JSON struct{}

type jsonNode struct {
	Type     string       `json:"type"`
	Text     *string      `json:"text,omitempty"`
	Content  []jsonNode   `json:"content,omitempty"`
	Children []jsonNode   `json:"children,omitempty"`
	Items    [][]jsonNode `json:"items,omitempty"`
}

func (*JSON) Render(w io.Writer, blocks []ast.Block) error {
	doc := make([]jsonNode, 0, len(blocks))
	for _, b := range blocks {
		switch b := b.(type) {
		case *ast.Paragraph:
			doc = append(doc, jsonNode{Type: "paragraph", Content: jsonInlines(b.Content)})
		case *ast.List:
			items := make([][]jsonNode, len(b.Items))
			for i, item := range b.Items {
				items[i] = jsonInlines(item)
				if items[i] == nil {
					items[i] = []jsonNode{}
				}
			}
			doc = append(doc, jsonNode{Type: "list", Items: items})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

func jsonInlines(nodes []ast.Inline) []jsonNode {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]jsonNode, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *ast.Text:
			s := n.Text
			out = append(out, jsonNode{Type: "text", Text: &s})
		case *ast.Code:
			s := n.Text
			out = append(out, jsonNode{Type: "code", Text: &s})
		case *ast.Bold:
			out = append(out, jsonNode{Type: "bold", Children: jsonInlines(n.Children)})
		case *ast.Italic:
			out = append(out, jsonNode{Type: "italic", Children: jsonInlines(n.Children)})
		case *ast.Strike:
			out = append(out, jsonNode{Type: "strike", Children: jsonInlines(n.Children)})
		}
	}
	return out
}
