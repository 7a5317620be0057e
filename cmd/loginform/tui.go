package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/loginform/internal/login"
	"github.com/dmitrymomot/loginform/internal/tui"
	"github.com/dmitrymomot/loginform/pkg/form"
)

func newTUICmd(current appFunc, setup setupFunc) *cobra.Command {
	var (
		logFile string
		closer  io.Closer
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Fill in the login form in the terminal",
		Args:  cobra.NoArgs,
		// Logs would corrupt the screen, so they go to a file or nowhere.
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var out io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return err
				}
				out, closer = f, f
			}
			return setup(out)(cmd, args)
		},
		PostRunE: func(*cobra.Command, []string) error {
			if closer != nil {
				return closer.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := current()
			ctx := cmd.Context()

			s, err := a.schema(a.locale)
			if err != nil {
				return err
			}
			c, err := login.NewForm(s, form.WithLogger(a.log))
			if err != nil {
				return err
			}
			texts := a.texts(a.locale)

			p := tea.NewProgram(tui.New(ctx, c, texts),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}

			if m, ok := final.(tui.Model); ok {
				if values, accepted := m.Values(); accepted {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", texts.Accepted, values[login.FieldEmail])
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd
}
