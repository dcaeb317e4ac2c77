package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/insomnimus/chatmark/ast"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Renderer writes formatted blocks to w.
type Renderer interface {
	Render(w io.Writer, blocks []ast.Block) error
}

// Theme holds the colors used by terminal output. Values are anything
// lipgloss.Color accepts.
type Theme struct {
	CodeForeground string `yaml:"code_foreground" toml:"code_foreground" json:"code_foreground"`
	CodeBackground string `yaml:"code_background" toml:"code_background" json:"code_background"`
	Bullet         string `yaml:"bullet" toml:"bullet" json:"bullet"`
}

type Options struct {
	// Width wraps terminal output; 0 disables wrapping.
	Width int
	// Style names a glamour style ("auto", "dark", "light", "notty", ...).
	Style string
	// Standalone wraps HTML output in a full document.
	Standalone bool
	Title      string
	Theme      Theme
	// ForceColor keeps ANSI styling when the output is not a terminal.
	ForceColor bool
}

var formats = []struct {
	name, ext string
}{
	{"html", ".html"},
	{"markdown", ".md"},
	{"text", ".txt"},
	{"ansi", ".ans"},
	{"glamour", ".ans"},
	{"json", ".json"},
}

// Formats lists the names accepted by New.
func Formats() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.name
	}
	return names
}

// Extension returns the file extension for a format, with the dot.
func Extension(format string) string {
	format = normalize(format)
	for _, f := range formats {
		if f.name == format {
			return f.ext
		}
	}
	return ".out"
}

func normalize(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "md":
		return "markdown"
	case "txt", "plain":
		return "text"
	case "terminal", "term":
		return "ansi"
	}
	return format
}

func New(format string, opts Options) (Renderer, error) {
	switch normalize(format) {
	case "html":
		return &HTML{Standalone: opts.Standalone, Title: opts.Title}, nil
	case "markdown":
		return &Markdown{}, nil
	case "text":
		return &Text{}, nil
	case "ansi":
		return &ANSI{Width: opts.Width, Theme: opts.Theme, ForceColor: opts.ForceColor}, nil
	case "glamour":
		return &Glamour{Width: opts.Width, Style: opts.Style}, nil
	case "json":
		return &JSON{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)",
			ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}

// String renders blocks into a string.
func String(r Renderer, blocks []ast.Block) (string, error) {
	var out strings.Builder
	if err := r.Render(&out, blocks); err != nil {
		return "", err
	}
	return out.String(), nil
}
