package transpiler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/insomnimus/chatmark/render"
)

type BatchOptions struct {
	Options
	Format      string
	Render      render.Options
	OutDir      string
	Concurrency int
}

// OutputPath returns where Batch writes the rendering of file.
func OutputPath(file, outDir, format string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+render.Extension(format))
}

// Batch renders files concurrently into opts.OutDir and returns the
// written paths in input order. The first failure cancels the files
// not yet started.
func Batch(ctx context.Context, files []string, opts BatchOptions) ([]string, error) {
	r, err := render.New(opts.Format, opts.Render)
	if err != nil {
		return nil, err
	}

	outputs := make([]string, len(files))
	seen := make(map[string]string, len(files))
	for i, f := range files {
		out := OutputPath(f, opts.OutDir, opts.Format)
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("%s and %s would both be written to %s", prev, f, out)
		}
		seen[out] = f
		outputs[i] = out
	}
	for _, out := range outputs {
		for _, f := range files {
			if sameFile(f, out) {
				return nil, fmt.Errorf("%s would overwrite its input %s", out, f)
			}
		}
	}

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	log := opts.logger()
	g, ctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fo := opts.Options
			fo.Name = f
			if err := transpileFile(ctx, f, outputs[i], r, fo); err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
			log.Info("rendered file", zap.String("input", f), zap.String("output", outputs[i]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func transpileFile(ctx context.Context, in, out string, r render.Renderer, opts Options) error {
	fi, err := os.Open(in)
	if err != nil {
		return err
	}
	defer fi.Close()

	fo, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := Transpile(ctx, fi, fo, r, opts); err != nil {
		fo.Close()
		os.Remove(out)
		return err
	}
	return fo.Close()
}

// sameFile reports whether a and b name the same file, either by path
// or, when both exist, by identity.
func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}
	fa, err := os.Stat(a)
	if err != nil {
		return false
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(fa, fb)
}
