package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/tabitha/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate <schema> [file|-]",
	Short: "Validate a JSON or YAML payload against a named schema",
	Long: `Reads a payload from a file, or from stdin when the file is "-" or omitted,
and reports every field that breaks the schema. Run "tabitha schemas" for the
list of names. Exits with status 1 when the payload is invalid.`,
	Args: cobra.RangeArgs(1, 2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		return schemas.Names(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cli.StdinName
		if len(args) > 1 {
			path = args[1]
		}
		return runValidate(cmd.OutOrStdout(), cmd.InOrStdin(), args[0], path)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(out io.Writer, in io.Reader, name, path string) error {
	if _, err := schemas.Lookup(name); err != nil {
		return err
	}

	payload, err := cli.ReadPayload(path, in)
	if err != nil {
		return err
	}

	res, err := schemas.Validate(name, payload)
	if err != nil {
		return err
	}
	logger.Info("payload validated", "schema", name, "valid", res.Success, "errors", len(res.Errors))

	if err := cli.NewPrinter(out, settings.Format).Print(cli.NewReport(name, res.Errors, res.Data)); err != nil {
		return err
	}
	if !res.Success {
		return errInvalid
	}
	return nil
}
