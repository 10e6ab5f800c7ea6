package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/loom/internal/cli"
)

// explainCmd prints a rendered overview of a machine file.
var explainCmd = &cobra.Command{
	Use:   "explain <machine-file>",
	Short: "Summarize a machine file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := cli.LoadMachine(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		markdown := cli.Summarize(filepath.Base(args[0]), m)
		rendered, err := cli.RenderMarkdown(markdown)
		if err != nil {
			// Fall back to the raw markdown on unusual terminals.
			fmt.Println(markdown)
			return
		}
		fmt.Print(rendered)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
