package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/tabitha"
	"github.com/aretw0/tabitha/internal/presentation/tui"
	"github.com/aretw0/tabitha/pkg/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tabitha",
	Run: func(cmd *cobra.Command, args []string) {
		if banner, _ := cmd.Flags().GetBool("banner"); banner {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "tabitha version %s (constants %s)\n", strings.TrimSpace(tabitha.Version), config.Version)
	},
}

func init() {
	versionCmd.Flags().Bool("banner", false, "Print the banner first")
	rootCmd.AddCommand(versionCmd)
}
