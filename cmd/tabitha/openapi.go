package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/tabitha/pkg/api"
)

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Print the OpenAPI 3 document of the API contract",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := api.Document()
		if err := doc.Validate(cmd.Context()); err != nil {
			return fmt.Errorf("openapi document is invalid: %w", err)
		}

		raw, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}

		asYAML, _ := cmd.Flags().GetBool("yaml")
		if !asYAML {
			fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return nil
		}

		// JSON is valid YAML; re-encoding gives block style output.
		var v any
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	openapiCmd.Flags().Bool("yaml", false, "Print YAML instead of JSON")
	rootCmd.AddCommand(openapiCmd)
}
