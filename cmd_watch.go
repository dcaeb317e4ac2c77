package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/insomnimus/chatmark/transpiler"
	"github.com/insomnimus/chatmark/watch"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <input> [output]",
		Short: "Re-render a file every time it changes",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer()
			if err != nil {
				return err
			}
			ctx, stop := signalContext(cmd.Context())
			defer stop()

			input := args[0]
			render := func() error {
				fi, err := os.Open(input)
				if err != nil {
					return err
				}
				defer fi.Close()

				var buf bytes.Buffer
				if err := transpiler.Transpile(ctx, fi, &buf, r, a.transpileOptions(input)); err != nil {
					return err
				}
				if len(args) == 2 {
					return os.WriteFile(args[1], buf.Bytes(), 0644)
				}
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			return watch.Run(ctx, input, render, watch.Options{Logger: a.logger})
		},
	}
}
