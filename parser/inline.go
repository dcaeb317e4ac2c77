package parser

import (
	"unicode"

	"github.com/insomnimus/chatmark/ast"
	"github.com/insomnimus/chatmark/token"
)

type style struct {
	delim rune
	name  string
	wrap  func([]ast.Inline) ast.Inline
}

// cascade lists the styles in nesting order. A span of one style only
// ever contains styles that come after it.
var cascade = [...]style{
	{rune(token.Star), "bold", func(c []ast.Inline) ast.Inline { return &ast.Bold{Children: c} }},
	{rune(token.Under), "italic", func(c []ast.Inline) ast.Inline { return &ast.Italic{Children: c} }},
	{rune(token.Tilde), "strikethrough", func(c []ast.Inline) ast.Inline { return &ast.Strike{Children: c} }},
}

// FormatInline formats a single line without looking for bullets.
func FormatInline(s string) []ast.Inline {
	ip := inlineParser{line: 1, col: 1}
	return ip.parse([]rune(s))
}

type inlineParser struct {
	line, col int
	warn      func(line, col int, format string, args ...interface{})
}

// parse pulls out code spans first; everything between them goes
// through the style cascade.
func (ip *inlineParser) parse(s []rune) []ast.Inline {
	var nodes []ast.Inline
	start := 0
	for {
		open, close := findFence(s, start)
		if close < 0 {
			if open >= 0 {
				ip.warnf(open, "code span not terminated with %q", token.Fence)
			}
			break
		}
		nodes = append(nodes, ip.styled(0, s[start:open], start)...)
		nodes = append(nodes, &ast.Code{Text: string(s[open+len(token.Fence) : close])})
		start = close + len(token.Fence)
	}
	return append(nodes, ip.styled(0, s[start:], start)...)
}

// styled applies cascade[lvl] to s; off is the index of s in the line.
// Empty segments produce no nodes.
func (ip *inlineParser) styled(lvl int, s []rune, off int) []ast.Inline {
	if len(s) == 0 {
		return nil
	}
	if lvl == len(cascade) {
		return []ast.Inline{&ast.Text{Text: string(s)}}
	}
	st := cascade[lvl]
	var nodes []ast.Inline
	start := 0
	for {
		open, close := findSpan(s, start, st.delim)
		if close < 0 {
			if open >= 0 && boundary(s, open) {
				ip.warnf(off+open, "%s opened with %q but never closed", st.name, st.delim)
			}
			break
		}
		nodes = append(nodes, ip.styled(lvl+1, s[start:open], off+start)...)
		nodes = append(nodes, st.wrap(ip.styled(lvl+1, s[open+1:close], off+open+1)))
		start = close + 1
	}
	return append(nodes, ip.styled(lvl+1, s[start:], off+start)...)
}

func (ip *inlineParser) warnf(idx int, format string, args ...interface{}) {
	if ip.warn == nil {
		return
	}
	ip.warn(ip.line, ip.col+idx, format, args...)
}

// findSpan finds the leftmost opener at or after from and its nearest
// closer. An opener is d followed by a rune that is neither space nor d;
// a closer is d preceded by a non-space rune, at least one rune later.
// close is -1 when nothing closes; open is -1 when nothing opens.
func findSpan(s []rune, from int, d rune) (open, close int) {
	for i := from; i+1 < len(s); i++ {
		if s[i] != d || s[i+1] == d || unicode.IsSpace(s[i+1]) {
			continue
		}
		for j := i + 2; j < len(s); j++ {
			if s[j] == d && !unicode.IsSpace(s[j-1]) {
				return i, j
			}
		}
		// any closer for a later opener would have closed this one
		return i, -1
	}
	return -1, -1
}

// findFence finds the first fence at or after from and the next fence
// after it.
func findFence(s []rune, from int) (open, close int) {
	open = indexFence(s, from)
	if open < 0 {
		return -1, -1
	}
	return open, indexFence(s, open+len(token.Fence))
}

func indexFence(s []rune, from int) int {
	for i := from; i+2 < len(s); i++ {
		if s[i] == rune(token.Tick) && s[i+1] == rune(token.Tick) && s[i+2] == rune(token.Tick) {
			return i
		}
	}
	return -1
}

// boundary reports whether s[i] starts a word, so snake_case names and
// arithmetic do not produce warnings.
func boundary(s []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev := s[i-1]
	return unicode.IsSpace(prev) || unicode.IsPunct(prev)
}
