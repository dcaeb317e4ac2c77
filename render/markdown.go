package render

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/insomnimus/chatmark/ast"
)

// Markdown re-emits the tree as CommonMark with GFM strikethrough.
// Paragraphs are separated by blank lines; leading indentation is
// dropped so it cannot turn into an indented code block.
//
// Styles use `**`, `*` and `~~` where CommonMark's flanking rules let
// those delimiters open and close the span. Where they would not, as in
// a*"q"*, the span is written as inline HTML (<strong>, <em>, <del>).
type Markdown struct{}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`~`, `\~`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
	`|`, `\|`,
	`&`, `\&`,
)

func (*Markdown) Render(w io.Writer, blocks []ast.Block) error {
	var out strings.Builder
	for i, b := range blocks {
		if i > 0 {
			out.WriteRune('\n')
		}
		switch b := b.(type) {
		case *ast.Paragraph:
			line := markdownLine(b.Content)
			if line == "" {
				line = "&nbsp;"
			}
			out.WriteString(line)
			out.WriteRune('\n')
		case *ast.List:
			for _, item := range b.Items {
				out.WriteString("- ")
				out.WriteString(markdownLine(item))
				out.WriteRune('\n')
			}
		}
	}
	_, err := io.WriteString(w, out.String())
	return err
}

func markdownLine(nodes []ast.Inline) string {
	var out strings.Builder
	writeMarkdownInline(&out, nodes, 0)
	return escapeLeader(strings.TrimLeftFunc(out.String(), unicode.IsSpace))
}

// escapeLeader escapes characters that would start a block construct
// at the beginning of a line.
func escapeLeader(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '-', '+', '=':
		return `\` + s
	}
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(s) && (s[digits] == '.' || s[digits] == ')') {
		return s[:digits] + `\` + s[digits:]
	}
	return s
}

// writeMarkdownInline writes nodes to out. next is the first rune that
// follows nodes in the output, 0 at the end of the line.
func writeMarkdownInline(out *strings.Builder, nodes []ast.Inline, next rune) {
	for i, n := range nodes {
		after := next
		if r, ok := leadRune(nodes[i+1:]); ok {
			after = r
		}
		switch n := n.(type) {
		case *ast.Text:
			out.WriteString(mdEscaper.Replace(n.Text))
		case *ast.Code:
			out.WriteString(codeSpan(n.Text))
		case *ast.Bold:
			writeEmphasis(out, "**", "strong", n.Children, after)
		case *ast.Italic:
			writeEmphasis(out, "*", "em", n.Children, after)
		case *ast.Strike:
			writeEmphasis(out, "~~", "del", n.Children, after)
		}
	}
}

func writeEmphasis(out *strings.Builder, delim, tag string, children []ast.Inline, after rune) {
	var inner strings.Builder
	writeMarkdownInline(&inner, children, rune(delim[0]))
	s := inner.String()

	prev, _ := utf8.DecodeLastRuneInString(out.String())
	if out.Len() == 0 {
		prev = 0
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	if s != "" && leftFlanking(prev, first) && rightFlanking(last, after) {
		out.WriteString(delim)
		out.WriteString(s)
		out.WriteString(delim)
		return
	}
	out.WriteString("<" + tag + ">")
	out.WriteString(s)
	out.WriteString("</" + tag + ">")
}

// leadRune returns the first rune nodes render to, if they render to
// anything. Styled spans start with a delimiter or a tag, both
// punctuation.
func leadRune(nodes []ast.Inline) (rune, bool) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *ast.Text:
			if n.Text != "" {
				r, _ := utf8.DecodeRuneInString(mdEscaper.Replace(n.Text))
				return r, true
			}
		case *ast.Code:
			if n.Text != "" {
				return '`', true
			}
		default:
			return '*', true
		}
	}
	return 0, false
}

// 0 stands for the start or end of the line.
func isMarkdownSpace(r rune) bool { return r == 0 || unicode.IsSpace(r) }

func isMarkdownPunct(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) }

// leftFlanking reports whether a delimiter run between prev and next can
// open emphasis.
func leftFlanking(prev, next rune) bool {
	if isMarkdownSpace(next) {
		return false
	}
	return !isMarkdownPunct(next) || isMarkdownSpace(prev) || isMarkdownPunct(prev)
}

// rightFlanking reports whether a delimiter run between prev and next
// can close emphasis.
func rightFlanking(prev, next rune) bool {
	if isMarkdownSpace(prev) {
		return false
	}
	return !isMarkdownPunct(prev) || isMarkdownSpace(next) || isMarkdownPunct(next)
}

// codeSpan fences s with one more backtick than its longest backtick run.
func codeSpan(s string) string {
	if s == "" {
		return ""
	}
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return fence + s + fence
}
