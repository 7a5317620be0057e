// Command loginform runs the login form in a terminal, serves it over HTTP
// or validates a single record.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errInvalidRecord) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

type (
	preRunFunc func(cmd *cobra.Command, args []string) error
	setupFunc  func(logOut io.Writer) preRunFunc
	appFunc    func() *app
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		flags appFlags
		a     *app
	)

	root := &cobra.Command{
		Use:           "loginform",
		Short:         "Login form with live validation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.locale, "locale", "", "message language (pt-BR, en)")
	root.PersistentFlags().StringVar(&flags.schema, "schema", "", "form declaration file (YAML or JSON)")
	root.SetOut(stdout)
	root.SetErr(stderr)

	setup := func(logOut io.Writer) preRunFunc {
		return func(cmd *cobra.Command, _ []string) error {
			var err error
			a, err = newApp(cmd.Context(), flags, logOut)
			return err
		}
	}
	current := func() *app { return a }

	root.AddCommand(
		newTUICmd(current, setup),
		newServeCmd(current, setup(stderr)),
		newValidateCmd(current, setup(io.Discard)),
	)
	return root
}
