package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/insomnimus/chatmark/ast"
)

var escape = html.EscapeString

// HTML renders paragraphs as <p> and lists as <ul>.
type HTML struct {
	Standalone bool
	Title      string
}

func (h *HTML) Render(w io.Writer, blocks []ast.Block) error {
	var out strings.Builder
	if h.Standalone {
		out.WriteString("<html>\n")
		if h.Title != "" {
			fmt.Fprintf(&out, "<head><title>%s</title></head>\n", escape(h.Title))
		}
		out.WriteString("<body>\n")
	}
	for _, b := range blocks {
		writeHTMLBlock(&out, b)
		out.WriteRune('\n')
	}
	if h.Standalone {
		out.WriteString("</body>\n</html>\n")
	}
	_, err := io.WriteString(w, out.String())
	return err
}

func writeHTMLBlock(out *strings.Builder, b ast.Block) {
	switch b := b.(type) {
	case *ast.Paragraph:
		if len(b.Content) == 0 {
			// keep the vertical space of a blank line
			out.WriteString("<p><br></p>")
			return
		}
		out.WriteString("<p>")
		writeHTMLInline(out, b.Content)
		out.WriteString("</p>")
	case *ast.List:
		out.WriteString("<ul>\n")
		for _, item := range b.Items {
			out.WriteString("<li>")
			writeHTMLInline(out, item)
			out.WriteString("</li>\n")
		}
		out.WriteString("</ul>")
	}
}

func writeHTMLInline(out *strings.Builder, nodes []ast.Inline) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *ast.Text:
			out.WriteString(escape(n.Text))
		case *ast.Code:
			fmt.Fprintf(out, "<code>%s</code>", escape(n.Text))
		case *ast.Bold:
			out.WriteString("<b>")
			writeHTMLInline(out, n.Children)
			out.WriteString("</b>")
		case *ast.Italic:
			out.WriteString("<i>")
			writeHTMLInline(out, n.Children)
			out.WriteString("</i>")
		case *ast.Strike:
			out.WriteString("<s>")
			writeHTMLInline(out, n.Children)
			out.WriteString("</s>")
		}
	}
}
