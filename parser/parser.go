package parser

import (
	"github.com/insomnimus/chatmark/ast"
	"github.com/insomnimus/chatmark/lexer"
	"github.com/insomnimus/chatmark/token"
)

// Parser turns a chat message into blocks, one at a time.
// A Parser is not safe for concurrent use; Format is.
type Parser struct {
	l        *lexer.Lexer
	cur      token.Token
	warnings []*Warning
}

func New(s string) *Parser {
	p := &Parser{l: lexer.New(s)}
	p.advance()
	return p
}

// Format parses the whole message. An empty message yields no blocks.
func Format(s string) []ast.Block {
	return New(s).All()
}

// All drains the parser.
func (p *Parser) All() []ast.Block {
	var blocks []ast.Block
	for b := p.Next(); b != nil; b = p.Next() {
		blocks = append(blocks, b)
	}
	return blocks
}

// Next returns the next block, or nil once the input is exhausted.
// Consecutive bullet lines are grouped into one *ast.List; every other
// line, blank ones included, becomes an *ast.Paragraph.
func (p *Parser) Next() ast.Block {
	var items [][]ast.Inline
	for {
		switch p.cur.Type {
		case token.Bullet:
			items = append(items, p.inline(p.cur))
			p.advance()
		case token.Line:
			if len(items) > 0 {
				return &ast.List{Items: items}
			}
			para := &ast.Paragraph{Content: p.inline(p.cur)}
			p.advance()
			return para
		default:
			if len(items) > 0 {
				return &ast.List{Items: items}
			}
			return nil
		}
	}
}

func (p *Parser) advance() {
	p.cur = p.l.Next()
}

func (p *Parser) inline(t token.Token) []ast.Inline {
	ip := inlineParser{
		line: t.Line,
		col:  t.Col,
		warn: p.warnAt,
	}
	return ip.parse([]rune(t.Literal))
}
