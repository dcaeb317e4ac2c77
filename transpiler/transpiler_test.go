package transpiler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/insomnimus/chatmark/ast"
	"github.com/insomnimus/chatmark/render"
)

func TestTranspile(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		normalize bool
		expected  string
	}{
		{
			name:     "html",
			input:    "*hi*\n- a",
			expected: "<p><b>hi</b></p>\n<ul>\n<li>a</li>\n</ul>\n",
		},
		{
			name:      "crlf normalized",
			input:     "a\r\n- b\r\n",
			normalize: true,
			expected:  "<p>a</p>\n<ul>\n<li>b</li>\n</ul>\n<p><br></p>\n",
		},
		{
			name:     "crlf kept",
			input:    "a\r\nb",
			expected: "<p>a\r</p>\n<p>b</p>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Transpile(context.Background(), strings.NewReader(tt.input), &out, &render.HTML{},
				Options{NormalizeNewlines: tt.normalize})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestTranspileCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Transpile(ctx, strings.NewReader("x"), &bytes.Buffer{}, &render.Text{}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

type failingRenderer struct{}

func (failingRenderer) Render(_ io.Writer, _ []ast.Block) error { return errors.New("boom") }

func TestTranspileRenderError(t *testing.T) {
	err := Transpile(context.Background(), strings.NewReader("x"), &bytes.Buffer{}, failingRenderer{}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestParseLogsWarnings(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	blocks := Parse("ok\n*open", Options{Name: "msg.txt", Logger: zap.New(core)})
	assert.Len(t, blocks, 2)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "msg.txt", fields["input"])
	assert.EqualValues(t, 2, fields["line"])
	assert.EqualValues(t, 1, fields["col"])
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "chat.html"), OutputPath("in/chat.txt", "out", "html"))
	assert.Equal(t, filepath.Join("out", "notes.md"), OutputPath("notes", "out", "md"))
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("*"+name+"*"), 0644))
		files = append(files, path)
	}
	outDir := filepath.Join(dir, "out")

	outputs, err := Batch(context.Background(), files, BatchOptions{
		Format:      "text",
		OutDir:      outDir,
		Concurrency: 2,
	})
	require.NoError(t, err)
	require.Len(t, outputs, 3)

	for i, out := range outputs {
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, filepath.Base(files[i])+"\n", string(data))
	}
}

func TestBatchErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Batch(context.Background(), []string{"x.txt"}, BatchOptions{Format: "nope", OutDir: dir})
	assert.ErrorIs(t, err, render.ErrUnknownFormat)

	_, err = Batch(context.Background(), []string{"a/x.txt", "b/x.txt"}, BatchOptions{Format: "html", OutDir: dir})
	assert.Error(t, err)

	_, err = Batch(context.Background(), []string{filepath.Join(dir, "missing.txt")}, BatchOptions{Format: "html", OutDir: dir})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBatchRefusesToOverwriteInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(in, []byte("*hello* world"), 0644))

	_, err := Batch(context.Background(), []string{in}, BatchOptions{Format: "text", OutDir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would overwrite its input")

	data, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, "*hello* world", string(data))

	// the same file reached through a relative path
	t.Chdir(dir)
	_, err = Batch(context.Background(), []string{"notes.txt"}, BatchOptions{Format: "plain", OutDir: "."})
	assert.Error(t, err)
}

func TestTranspileFileRemovesPartialOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "a.txt")
	out := filepath.Join(dir, "a.html")
	require.NoError(t, os.WriteFile(in, []byte("x"), 0644))

	err := transpileFile(context.Background(), in, out, failingRenderer{}, Options{})
	require.Error(t, err)
	_, err = os.Stat(out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
