package parser_test

import (
	"fmt"

	"github.com/insomnimus/chatmark/ast"
	"github.com/insomnimus/chatmark/parser"
)

func ExampleFormat() {
	for _, b := range parser.Format("*Order* _#42_ shipped\n- 2x ~red~ blue shirt\n- ```TRACK-9```") {
		switch b := b.(type) {
		case *ast.Paragraph:
			fmt.Printf("paragraph: %q\n", ast.Bare(b.Content))
		case *ast.List:
			for _, item := range b.Items {
				fmt.Printf("item: %q\n", ast.Bare(item))
			}
		}
	}
	// Output:
	// paragraph: "Order #42 shipped"
	// item: "2x red blue shirt"
	// item: "TRACK-9"
}

func ExampleParser_Warnings() {
	p := parser.New("price: *10 EUR")
	p.All()
	for _, w := range p.Warnings() {
		fmt.Println(w)
	}
	// Output:
	// line 1:8: bold opened with '*' but never closed
}
