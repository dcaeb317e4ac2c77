package main

import (
	"errors"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/insomnimus/chatmark/preview"
	"github.com/insomnimus/chatmark/transpiler"
	"github.com/insomnimus/chatmark/watch"
)

func (a *app) previewCmd() *cobra.Command {
	var follow bool
	cmd := &cobra.Command{
		Use:   "preview <input>",
		Short: "Show a file formatted in a scrollable terminal view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			data, err := os.ReadFile(input)
			if err != nil {
				return err
			}
			blocks := transpiler.Parse(string(data), a.transpileOptions(input))

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			m := preview.New(filepath.Base(input), blocks, a.cfg.Theme)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

			if follow {
				// the logger writes to stderr, which the alt screen would garble
				opts := a.transpileOptions(input)
				opts.Logger = zap.NewNop()
				go func() {
					err := watch.Run(ctx, input, func() error {
						data, err := os.ReadFile(input)
						if err != nil {
							return err
						}
						p.Send(preview.BlocksMsg(transpiler.Parse(string(data), opts)))
						return nil
					}, watch.Options{})
					if err != nil {
						a.logger.Debug("preview watch stopped", zap.Error(err))
					}
				}()
			}

			_, err = p.Run()
			if errors.Is(err, tea.ErrProgramKilled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&follow, "follow", false, "reload the view when the file changes")
	return cmd
}
