package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/muesli/termenv"

	"github.com/insomnimus/chatmark/ast"
)

// ANSI styles text for a terminal with lipgloss. Color detection follows
// the writer passed to Render, so piped output stays plain unless
// ForceColor is set.
type ANSI struct {
	Width      int
	Theme      Theme
	ForceColor bool
}

func (a *ANSI) Render(w io.Writer, blocks []ast.Block) error {
	r := lipgloss.NewRenderer(w)
	if a.ForceColor {
		r.SetColorProfile(termenv.ANSI256)
	}
	_, err := io.WriteString(w, a.render(r, blocks))
	return err
}

// Lines renders blocks with r and returns the output lines; the preview
// uses it to fill its viewport.
func (a *ANSI) Lines(r *lipgloss.Renderer, blocks []ast.Block) []string {
	s := strings.TrimSuffix(a.render(r, blocks), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (a *ANSI) render(r *lipgloss.Renderer, blocks []ast.Block) string {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	code := base
	if a.Theme.CodeForeground != "" {
		code = code.Foreground(lipgloss.Color(a.Theme.CodeForeground))
	}
	if a.Theme.CodeBackground != "" {
		code = code.Background(lipgloss.Color(a.Theme.CodeBackground))
	}
	mark := base
	if a.Theme.Bullet != "" {
		mark = mark.Foreground(lipgloss.Color(a.Theme.Bullet))
	}
	st := ansiStyles{code: code}

	var out strings.Builder
	for _, b := range blocks {
		switch b := b.(type) {
		case *ast.Paragraph:
			var line strings.Builder
			st.write(&line, base, b.Content)
			out.WriteString(a.wrap(line.String(), 0))
			out.WriteRune('\n')
		case *ast.List:
			for _, item := range b.Items {
				var line strings.Builder
				st.write(&line, base, item)
				wrapped := strings.Split(a.wrap(line.String(), bulletWidth), "\n")
				for i, l := range wrapped {
					if i == 0 {
						out.WriteString(mark.Render(bullet))
					} else {
						out.WriteString(strings.Repeat(" ", bulletWidth))
					}
					out.WriteString(l)
					out.WriteRune('\n')
				}
			}
		}
	}
	return out.String()
}

// wrap word-wraps s to the configured width minus indent, breaking words
// that are longer than a line.
func (a *ANSI) wrap(s string, indent int) string {
	width := a.Width - indent
	if a.Width <= 0 || width <= 0 {
		return s
	}
	return wrap.String(wordwrap.String(s, width), width)
}

type ansiStyles struct {
	code lipgloss.Style
}

// write renders nodes, layering each style on top of the enclosing one.
func (st ansiStyles) write(out *strings.Builder, cur lipgloss.Style, nodes []ast.Inline) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *ast.Text:
			out.WriteString(cur.Render(n.Text))
		case *ast.Code:
			out.WriteString(st.code.Inherit(cur).Render(n.Text))
		case *ast.Bold:
			st.write(out, cur.Bold(true), n.Children)
		case *ast.Italic:
			st.write(out, cur.Italic(true), n.Children)
		case *ast.Strike:
			st.write(out, cur.Strikethrough(true), n.Children)
		}
	}
}
