package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/loom"
	"github.com/aretw0/loom/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of loom",
	Run: func(cmd *cobra.Command, args []string) {
		if tui.IsTerminal() {
			tui.PrintBanner()
		}
		fmt.Printf("loom version %s\n", loom.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
