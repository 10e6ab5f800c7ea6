package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/loom/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "loom",
	Short: "Loom is a Turing-machine simulator and combinator toolkit",
	Long: `Loom simulates single-tape deterministic Turing machines and builds
composite machines out of small combinators. Machines live in a simple
line-oriented text format or as YAML blueprints.`,
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")
}

func buildLogger(cmd *cobra.Command) (*slog.Logger, func() error, error) {
	level, _ := cmd.Flags().GetString("log-level")
	logFile, _ := cmd.Flags().GetString("log-file")
	return cli.BuildLogger(level, logFile)
}
