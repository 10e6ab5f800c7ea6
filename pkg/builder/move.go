package builder

import (
	"strconv"

	"github.com/aretw0/loom/pkg/machine"
)

// Move emits a straight-line mover: states "0".."n", shifting the head
// one cell in dir per step regardless of the symbol. Initial "0",
// accept "n". n must be at least 1.
func Move(n int, dir machine.Direction, title string, alphabet machine.Alphabet) *machine.Machine {
	m := machine.New()
	m.SetInitial("0")
	m.SetAccept(strconv.Itoa(n))
	m.SetTitle(title)

	for _, symbol := range alphabet {
		for i := range n {
			m.AddTransition(
				machine.Key{State: strconv.Itoa(i), Symbol: symbol},
				machine.Reaction{State: strconv.Itoa(i + 1), Symbol: symbol, Move: dir},
			)
		}
	}
	return m
}

// MoveRight is Move toward higher positions.
func MoveRight(n int, title string, alphabet machine.Alphabet) *machine.Machine {
	return Move(n, machine.Right, title, alphabet)
}

// MoveLeft is Move toward lower positions.
func MoveLeft(n int, title string, alphabet machine.Alphabet) *machine.Machine {
	return Move(n, machine.Left, title, alphabet)
}
