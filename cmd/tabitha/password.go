package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/tabitha/internal/cli"
	"github.com/aretw0/tabitha/pkg/validation"
)

var passwordCmd = &cobra.Command{
	Use:   "password <value>",
	Short: "Check a password against the sign-up rules",
	Long:  `Reports every rule the password breaks: length, uppercase, lowercase and digit.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := validation.ValidatePassword(args[0])

		var errs []validation.FieldError
		for _, msg := range res.Errors {
			errs = append(errs, validation.FieldError{Field: "password", Message: msg})
		}
		logger.Debug("password checked", "valid", res.IsValid, "errors", len(errs))

		if err := cli.NewPrinter(cmd.OutOrStdout(), settings.Format).Print(cli.NewReport("password", errs, nil)); err != nil {
			return err
		}
		if !res.IsValid {
			return errInvalid
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(passwordCmd)
}
