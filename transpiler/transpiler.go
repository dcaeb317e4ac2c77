package transpiler

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/insomnimus/chatmark/ast"
	"github.com/insomnimus/chatmark/parser"
	"github.com/insomnimus/chatmark/render"
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

type Options struct {
	// NormalizeNewlines folds CRLF and CR into LF before formatting.
	NormalizeNewlines bool
	// Name identifies the input in log messages.
	Name   string
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Parse formats s and logs every parser warning.
func Parse(s string, opts Options) []ast.Block {
	if opts.NormalizeNewlines {
		s = newlines.Replace(s)
	}
	p := parser.New(s)
	blocks := p.All()

	log := opts.logger()
	for _, w := range p.Warnings() {
		log.Warn("markup kept as literal text",
			zap.String("input", opts.Name),
			zap.Int("line", w.Line),
			zap.Int("col", w.Col),
			zap.String("reason", w.Message()))
	}
	return blocks
}

// Transpile reads all of in, formats it and writes it to out with r.
func Transpile(ctx context.Context, in io.Reader, out io.Writer, r render.Renderer, opts Options) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	blocks := Parse(string(data), opts)
	opts.logger().Debug("formatted input",
		zap.String("input", opts.Name),
		zap.Int("bytes", len(data)),
		zap.Int("blocks", len(blocks)))
	if err := r.Render(out, blocks); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}
