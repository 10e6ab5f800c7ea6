package builder_test

import (
	"testing"

	"github.com/aretw0/loom/pkg/compose"
	"github.com/aretw0/loom/pkg/machine"
)

// runToTerminal drives m on input until a terminal status, returning
// the status and the statuses observed along the way.
func runToTerminal(t *testing.T, m *machine.Machine, input string) (machine.Status, []machine.Status) {
	t.Helper()
	m.LoadInput(input)
	var seen []machine.Status
	for range 100000 {
		status := m.Step()
		seen = append(seen, status)
		if status.Terminal() {
			return status, seen
		}
	}
	t.Fatal("machine did not terminate")
	return machine.Running, nil
}

func mustConcat(t *testing.T, a, b *machine.Machine, alphabet machine.Alphabet) *machine.Machine {
	t.Helper()
	return compose.Concat(a, b, alphabet, "chain")
}
