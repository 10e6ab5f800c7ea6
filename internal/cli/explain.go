package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/loom/pkg/machine"
)

// Summarize produces a markdown overview of a machine: the
// distinguished states, the table size, and the symbols the table
// actually mentions.
func Summarize(name string, m *machine.Machine) string {
	symbols := make(map[rune]struct{})
	for key, reaction := range m.Transitions() {
		symbols[key.Symbol] = struct{}{}
		symbols[reaction.Symbol] = struct{}{}
	}
	observed := make([]rune, 0, len(symbols))
	for s := range symbols {
		observed = append(observed, s)
	}
	alphabet := machine.NewAlphabet(string(observed))

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Initial state | `%s` |\n", m.Initial())
	fmt.Fprintf(&b, "| Accept state | `%s` |\n", m.Accept())
	fmt.Fprintf(&b, "| States | %d |\n", len(m.States()))
	fmt.Fprintf(&b, "| Transitions | %d |\n", m.Len())
	fmt.Fprintf(&b, "| Symbols observed | `%s` |\n", alphabet)
	return b.String()
}

// RenderMarkdown renders markdown for the terminal.
func RenderMarkdown(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
