package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/insomnimus/chatmark/ast"
)

// Glamour converts the tree to markdown and renders it with glamour.
type Glamour struct {
	Width int
	// Style is a glamour style name or path; empty or "auto" detects the
	// terminal background.
	Style string
}

func (g *Glamour) Render(w io.Writer, blocks []ast.Block) error {
	var md strings.Builder
	if err := (&Markdown{}).Render(&md, blocks); err != nil {
		return err
	}

	opts := []glamour.TermRendererOption{glamour.WithEmoji()}
	if g.Style == "" || g.Style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(g.Style))
	}
	if g.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(g.Width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	rendered, err := r.Render(md.String())
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	// glamour pads the output with blank lines
	rendered = strings.Trim(rendered, "\n")
	_, err = io.WriteString(w, rendered+"\n")
	return err
}
