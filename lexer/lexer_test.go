package lexer

import (
	"testing"

	"github.com/insomnimus/chatmark/token"
)

func TestNext(t *testing.T) {
	tk := func(ty token.TokenType, s string) token.Token {
		return token.Token{
			Type:    ty,
			Literal: s,
		}
	}

	doc := "hello *there*\n" +
		"- one\n" +
		"*\ttwo\n" +
		"-three\n" +
		"\n" +
		"* \n" +
		"** not a bullet\n" +
		"  - indented\n" +
		"-"

	tests := []token.Token{
		tk(token.Line, "hello *there*"),
		tk(token.Bullet, "one"),
		tk(token.Bullet, "two"),
		tk(token.Line, "-three"),
		tk(token.Line, ""),
		tk(token.Bullet, ""),
		tk(token.Line, "** not a bullet"),
		tk(token.Line, "  - indented"),
		tk(token.Line, "-"),
		tk(token.EOF, ""),
		tk(token.EOF, ""),
	}

	l := New(doc)
	for i, test := range tests {
		got := l.Next()
		if got.Type != test.Type {
			t.Errorf("%d: type mismatch:\nexpected %s\ngot %s", i, test, got)
		}
		if test.Literal != got.Literal {
			t.Errorf("%d: literal mismatch:\nexpected: %v\ngot: %v", i, test, got)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	l := New("")
	if got := l.Next(); got.Type != token.EOF {
		t.Errorf("expected EOF for empty input, got %s", got)
	}
}

func TestTrailingNewline(t *testing.T) {
	l := New("a\n")
	var got []token.Token
	for tok := l.Next(); tok.Type != token.EOF; tok = l.Next() {
		got = append(got, tok)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(got), got)
	}
	if got[1].Literal != "" || got[1].Line != 2 {
		t.Errorf("expected empty second line, got %#v", got[1])
	}
}

func TestPositions(t *testing.T) {
	l := New("x\n- y\r")
	first := l.Next()
	if first.Line != 1 || first.Col != 1 {
		t.Errorf("first line position = %d:%d, want 1:1", first.Line, first.Col)
	}
	second := l.Next()
	if second.Type != token.Bullet {
		t.Fatalf("expected bullet, got %s", second)
	}
	if second.Line != 2 || second.Col != 3 || second.Marker != '-' {
		t.Errorf("bullet = %#v", second)
	}
	if second.Literal != "y\r" {
		t.Errorf("carriage return should be kept, got %q", second.Literal)
	}
}
