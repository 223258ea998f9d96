package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tabitha/internal/cli"
	"github.com/aretw0/tabitha/pkg/auth"
	"github.com/aretw0/tabitha/pkg/form"
)

var registerCmd = &cobra.Command{
	Use:   "register [file|-]",
	Short: "Run the sign-up checks on a registration payload",
	Long: `Reads a registration (email, password, name, age, gender, parentEmail) and
runs the checks performed before an account is created. On success the
metadata sent to the auth provider is included in the report.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cli.StdinName
		if len(args) > 0 {
			path = args[0]
		}

		payload, err := cli.ReadPayload(path, cmd.InOrStdin())
		if err != nil {
			return err
		}
		m, ok := payload.(map[string]any)
		if !ok {
			return fmt.Errorf("registration must be an object, got %T", payload)
		}

		var reg auth.Registration
		if err := form.Decode(m, &reg); err != nil {
			return fmt.Errorf("failed to read registration: %w", err)
		}
		reg.Email = auth.NormalizeEmail(reg.Email)

		errs := auth.ValidateSignUp(reg)
		logger.Info("registration checked", "valid", len(errs) == 0, "errors", len(errs))

		var data map[string]any
		if len(errs) == 0 {
			data = auth.SignUpMetadata(reg)
		}
		if err := cli.NewPrinter(cmd.OutOrStdout(), settings.Format).Print(cli.NewReport("registration", errs, data)); err != nil {
			return err
		}
		if len(errs) > 0 {
			return errInvalid
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
