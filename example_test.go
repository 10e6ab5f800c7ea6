package loom_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/aretw0/loom"
	"github.com/aretw0/loom/pkg/builder"
	"github.com/aretw0/loom/pkg/compose"
	"github.com/aretw0/loom/pkg/machine"
)

// Build a machine that skips leading 'a's and then requires a 'b',
// and run it through the Runner.
func Example() {
	alphabet := machine.NewAlphabet("ab_")

	skip := compose.Repeat(
		builder.Consume('a', machine.Right, "eat"),
		compose.DoWhile, 'a', alphabet, "skip_as",
	)
	m := compose.Concat(skip, builder.Consume('b', machine.Right, "want_b"), alphabet, "skip_then_b")

	runner := loom.NewRunner()
	for _, input := range []string{"aaab", "b", "aac"} {
		status, err := runner.Run(m, input)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %s\n", input, status.Message())
	}

	// Output:
	// aaab: Machine accepted.
	// b: Machine accepted.
	// aac: Machine rejected.
}

// Machines round-trip through the line-oriented textual format.
func Example_textualFormat() {
	m := builder.Consume('a', machine.Right, "eat")

	var text strings.Builder
	if err := machine.WriteMachine(&text, m); err != nil {
		log.Fatal(err)
	}

	parsed, err := machine.ReadMachine(strings.NewReader(text.String()))
	if err != nil {
		log.Fatal(err)
	}

	runner := loom.NewRunner()
	status, _ := runner.Run(parsed, "a")
	fmt.Println(status.Message())

	// Output:
	// Machine accepted.
}
