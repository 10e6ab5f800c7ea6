package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/loom/internal/cli"
	"github.com/aretw0/loom/internal/skyline"
	"github.com/aretw0/loom/pkg/machine"
)

// runCmd simulates a machine on an input string.
var runCmd = &cobra.Command{
	Use:   "run [machine-file] <input>",
	Short: "Run a machine on an input string",
	Long: `Loads a machine from its textual description and steps it on the input
until it accepts, rejects or halts. With --skyline the built-in puzzle
decider is used and no machine file is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMachine(cmd, args); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runMachine(cmd *cobra.Command, args []string) error {
	useSkyline, _ := cmd.Flags().GetBool("skyline")
	trace, _ := cmd.Flags().GetBool("trace")
	stats, _ := cmd.Flags().GetBool("stats")
	maxSteps, _ := cmd.Flags().GetInt("max-steps")

	var m *machine.Machine
	var input string
	var err error

	if useSkyline {
		if len(args) != 1 {
			return fmt.Errorf("usage: loom run --skyline <input>")
		}
		m = skyline.Solver()
		input = args[0]
	} else {
		if len(args) != 2 {
			return fmt.Errorf("usage: loom run <machine-file> <input>")
		}
		m, err = cli.LoadMachine(args[0])
		if err != nil {
			return err
		}
		input = args[1]
	}

	logger, closeLog, err := buildLogger(cmd)
	if err != nil {
		return err
	}
	if closeLog != nil {
		defer closeLog()
	}

	return cli.RunSession(m, input, cli.RunOptions{
		Trace:    trace,
		Stats:    stats,
		MaxSteps: maxSteps,
		Logger:   logger,
	})
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("skyline", false, "Run the built-in skyline puzzle decider")
	runCmd.Flags().Bool("trace", false, "Print a tape frame per step")
	runCmd.Flags().Bool("stats", false, "Print run metrics after the outcome")
	runCmd.Flags().Int("max-steps", 0, "Step bound before the run is declared stuck")
}
