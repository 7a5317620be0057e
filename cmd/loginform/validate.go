package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/loginform/internal/login"
	"github.com/dmitrymomot/loginform/pkg/schema"
)

var errInvalidRecord = errors.New("record is invalid")

func newValidateCmd(current appFunc, preRun preRunFunc) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:     "validate",
		Short:   "Validate one login record and print its errors",
		Args:    cobra.NoArgs,
		PreRunE: preRun,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := current()
			s, err := a.schema(a.locale)
			if err != nil {
				return err
			}

			errs := schema.ValidateRecord(s, map[string]string{
				login.FieldEmail:    email,
				login.FieldPassword: password,
			})
			out := cmd.OutOrStdout()
			if errs.IsEmpty() {
				fmt.Fprintln(out, a.texts(a.locale).Accepted)
				return nil
			}
			for _, e := range errs {
				fmt.Fprintf(out, "%s: %s\n", e.Field, e.Message)
			}
			return errInvalidRecord
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email value")
	cmd.Flags().StringVar(&password, "password", "", "password value")
	return cmd
}
