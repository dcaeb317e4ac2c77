package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/insomnimus/chatmark/transpiler"
)

func (a *app) batchCmd() *cobra.Command {
	var (
		outDir string
		jobs   int
	)
	cmd := &cobra.Command{
		Use:   "batch <files...>",
		Short: "Render many files into a directory",
		Long: `Renders every file concurrently. Each input name.txt is written to
<out>/name.<ext>, where the extension follows the output format.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("jobs") {
				a.cfg.Concurrency = jobs
			}
			ctx, stop := signalContext(cmd.Context())
			defer stop()

			outputs, err := transpiler.Batch(ctx, args, transpiler.BatchOptions{
				Options:     a.transpileOptions(""),
				Format:      a.cfg.Format,
				Render:      a.renderOptions(),
				OutDir:      outDir,
				Concurrency: a.cfg.Concurrency,
			})
			if err != nil {
				return err
			}
			for _, out := range outputs {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files rendered at once (default from config)")
	return cmd
}
