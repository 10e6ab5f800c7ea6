package compose

import "github.com/aretw0/loom/pkg/machine"

// Variant selects the loop flavor of Repeat.
type Variant int

const (
	// DoWhile loops while the guard symbol is under the head at the
	// loop check.
	DoWhile Variant = iota
	// DoUntil loops until the guard symbol is under the head.
	DoUntil
)

// Fresh labels introduced by Repeat. The body is embedded prefixed, so
// these cannot collide with body states.
const (
	checkState = "check"
	breakState = "break"
)

// Repeat loops a body machine on a guard symbol. The body is embedded
// prefixed by its title; a check state routes either back to the body
// or out to a fresh break state, with the single (check, guard) entry
// overriding the blanket redirect installed just before it. The
// override must come second; reversing the order silently breaks the
// loop.
//
// The result starts at the check state, so zero iterations are
// possible: on entry, DoUntil accepts immediately when the guard is
// already under the head, and DoWhile accepts immediately when it is
// not.
func Repeat(body *machine.Machine, variant Variant, guard rune, alphabet machine.Alphabet, title string) *machine.Machine {
	result := body.Prefixed()
	bodyInitial := result.Initial()

	result.RedirectState(result.Accept(), checkState, alphabet)

	switch variant {
	case DoUntil:
		result.RedirectState(checkState, bodyInitial, alphabet)
		result.AddTransition(
			machine.Key{State: checkState, Symbol: guard},
			machine.Reaction{State: breakState, Symbol: guard, Move: machine.Hold},
		)
	case DoWhile:
		result.RedirectState(checkState, breakState, alphabet)
		result.AddTransition(
			machine.Key{State: checkState, Symbol: guard},
			machine.Reaction{State: bodyInitial, Symbol: guard, Move: machine.Hold},
		)
	}

	result.SetInitial(checkState)
	result.SetAccept(breakState)
	result.SetTitle(title)
	return result
}
