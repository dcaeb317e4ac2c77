package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/insomnimus/chatmark/config"
	"github.com/insomnimus/chatmark/render"
	"github.com/insomnimus/chatmark/transpiler"
)

// app holds the flag values and what PersistentPreRunE builds from them.
type app struct {
	cfgPath    string
	verbose    bool
	format     string
	width      int
	style      string
	standalone bool
	title      string
	forceColor bool
	copy       bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "chatmark [input] [output]",
		Short: "Render WhatsApp-style chat markup",
		Long: `chatmark formats chat text written with WhatsApp markup
(*bold*, _italic_, ~strike~, ` + "```code```" + ` and "-" or "*" bullets) and renders it.

With no arguments it reads stdin and writes stdout. With one argument it
reads that file; with two it also writes the second.`,
		Args:              cobra.MaximumNArgs(2),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runRender,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (yaml, toml or json)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&a.format, "format", "f", "", "output format: "+strings.Join(render.Formats(), ", "))
	pf.IntVarP(&a.width, "width", "w", 0, "wrap terminal output at this width (0 disables)")
	pf.StringVar(&a.style, "style", "", "glamour style (auto, dark, light, notty, ...)")
	pf.BoolVar(&a.standalone, "standalone", false, "wrap html output in a full document")
	pf.StringVar(&a.title, "title", "", "document title for standalone html")
	pf.BoolVar(&a.forceColor, "color", false, "keep ansi styling when not writing to a terminal")
	root.Flags().BoolVar(&a.copy, "copy", false, "also copy the rendered output to the clipboard")

	root.AddCommand(a.batchCmd(), a.watchCmd(), a.previewCmd(), a.configCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	zcfg := zap.NewProductionConfig()
	if a.verbose {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	// flags win over the config file, but only when given
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("width") {
		cfg.Width = a.width
	}
	if flags.Changed("style") {
		cfg.Style = a.style
	}
	if flags.Changed("standalone") {
		cfg.Standalone = a.standalone
	}
	if flags.Changed("title") {
		cfg.Title = a.title
	}
	a.cfg = cfg
	logger.Debug("configuration loaded", zap.String("path", a.cfgPath), zap.String("format", cfg.Format))
	return nil
}

func (a *app) renderOptions() render.Options {
	opts := a.cfg.RenderOptions()
	opts.ForceColor = a.forceColor
	return opts
}

func (a *app) renderer() (render.Renderer, error) {
	return render.New(a.cfg.Format, a.renderOptions())
}

func (a *app) transpileOptions(name string) transpiler.Options {
	return transpiler.Options{
		NormalizeNewlines: a.cfg.NormalizeNewlines,
		Name:              name,
		Logger:            a.logger,
	}
}

func (a *app) runRender(cmd *cobra.Command, args []string) error {
	r, err := a.renderer()
	if err != nil {
		return err
	}
	var (
		in   io.Reader = cmd.InOrStdin()
		out  io.Writer = cmd.OutOrStdout()
		name           = "<stdin>"
	)
	if len(args) > 0 {
		fi, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer fi.Close()
		in = fi
		name = args[0]
	}
	if len(args) > 1 {
		fo, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer fo.Close()
		out = fo
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	if !a.copy {
		return transpiler.Transpile(ctx, in, out, r, a.transpileOptions(name))
	}
	var buf bytes.Buffer
	if err := transpiler.Transpile(ctx, in, &buf, r, a.transpileOptions(name)); err != nil {
		return err
	}
	if err := clipboard.WriteAll(buf.String()); err != nil {
		a.logger.Warn("failed to copy output to clipboard", zap.Error(err))
	}
	_, err = out.Write(buf.Bytes())
	return err
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
