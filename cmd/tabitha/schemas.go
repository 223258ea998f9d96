package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas [name]",
	Short: "List the schema names accepted by validate",
	Long:  `Without arguments lists every schema. With a name prints its fields and types as JSON.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			e, err := schemas.Lookup(args[0])
			if err != nil {
				return err
			}
			raw, err := json.MarshalIndent(e.Validator.Schema(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(raw))
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, name := range schemas.Names() {
			e, _ := schemas.Lookup(name)
			fmt.Fprintf(w, "%s\t%s\n", name, e.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(schemasCmd)
}
