package builder

import "github.com/aretw0/loom/pkg/machine"

// Consume emits a single-symbol matcher: one transition that matches
// symbol under the head and moves past it in dir. Any other symbol
// rejects. The initial state is named after the symbol itself.
func Consume(symbol rune, dir machine.Direction, title string) *machine.Machine {
	m := machine.New()
	m.SetInitial(string(symbol))
	m.SetTitle(title)
	m.AddTransition(
		machine.Key{State: m.Initial(), Symbol: symbol},
		machine.Reaction{State: m.Accept(), Symbol: symbol, Move: dir},
	)
	return m
}
