package builder

import "github.com/aretw0/loom/pkg/machine"

// Find emits an unbounded search: a single looping "search" state that
// slides the head in dir until needle is under it, then holds and
// accepts. The search runs forever if the needle never appears in dir
// (the tape is blank-filled on demand), so callers aim it at symbols
// they know are present.
func Find(needle rune, dir machine.Direction, title string, alphabet machine.Alphabet) *machine.Machine {
	m := machine.New()
	m.SetInitial("search")
	m.SetTitle(title)

	for _, symbol := range alphabet {
		if symbol == needle {
			m.AddTransition(
				machine.Key{State: "search", Symbol: symbol},
				machine.Reaction{State: m.Accept(), Symbol: symbol, Move: machine.Hold},
			)
		} else {
			m.AddTransition(
				machine.Key{State: "search", Symbol: symbol},
				machine.Reaction{State: "search", Symbol: symbol, Move: dir},
			)
		}
	}
	return m
}

// FindRight searches toward higher positions.
func FindRight(needle rune, title string, alphabet machine.Alphabet) *machine.Machine {
	return Find(needle, machine.Right, title, alphabet)
}

// FindLeft searches toward lower positions.
func FindLeft(needle rune, title string, alphabet machine.Alphabet) *machine.Machine {
	return Find(needle, machine.Left, title, alphabet)
}
