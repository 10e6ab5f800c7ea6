package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/loom/internal/cli"
)

// validateCmd checks a machine file for format errors.
var validateCmd = &cobra.Command{
	Use:   "validate <machine-file>",
	Short: "Check a machine file for format errors",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := cli.LoadMachine(args[0])
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Machine is valid: %d states, %d transitions\n",
			len(m.States()), m.Len())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
