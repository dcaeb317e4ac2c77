package render

import (
	"io"
	"strings"

	"github.com/insomnimus/chatmark/ast"
)

const (
	bullet      = "• "
	bulletWidth = 2
)

// Text strips all markup. Each paragraph and each list item is one line.
type Text struct{}

func (*Text) Render(w io.Writer, blocks []ast.Block) error {
	var out strings.Builder
	for _, b := range blocks {
		switch b := b.(type) {
		case *ast.Paragraph:
			out.WriteString(ast.Bare(b.Content))
			out.WriteRune('\n')
		case *ast.List:
			for _, item := range b.Items {
				out.WriteString(bullet)
				out.WriteString(ast.Bare(item))
				out.WriteRune('\n')
			}
		}
	}
	_, err := io.WriteString(w, out.String())
	return err
}
