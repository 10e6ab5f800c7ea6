package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/loom/internal/cli"
	"github.com/aretw0/loom/internal/skyline"
	"github.com/aretw0/loom/pkg/machine"
)

// buildCmd emits a composite machine in the textual format.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Emit a composite machine as text",
	Long: `Builds a machine and writes its textual description to stdout or to a
file. By default the built-in skyline puzzle decider is emitted; with
--blueprint a YAML recipe is compiled instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBuild(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runBuild(cmd *cobra.Command) error {
	blueprintPath, _ := cmd.Flags().GetString("blueprint")
	outPath, _ := cmd.Flags().GetString("output")

	var m *machine.Machine
	var err error
	if blueprintPath != "" {
		m, err = cli.LoadBlueprint(blueprintPath)
		if err != nil {
			return err
		}
	} else {
		m = skyline.Solver()
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return machine.WriteMachine(out, m)
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().String("blueprint", "", "Compile this YAML blueprint instead of the skyline decider")
	buildCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
}
