package builder

import (
	"github.com/aretw0/loom/pkg/compose"
	"github.com/aretw0/loom/pkg/machine"
)

// Expect emits a linear recognizer for a fixed symbol sequence laid out
// on the tape in direction dir. distances[i] is the cell gap between
// match i and match i+1; nil means adjacent cells throughout. The head
// ends one cell past the last matched symbol.
//
// Construction: a leading consumer for seq[0], then one carrier per
// later symbol. A carrier is a shared mover covering distances[i]-1
// cells (skipped when the gap is 1) followed by a consumer for the next
// symbol, linked by hold transitions keyed on that symbol. Sub-machines
// are prefixed by the consumed-prefix string, so Expects over sequences
// with a common prefix share states (a trie); Multiunion of such
// Expects therefore stays deterministic, branching on the first
// differing symbol. All Expects share the "start" initial and the
// default accept.
func Expect(seq string, dir machine.Direction, distances []int, title string, alphabet machine.Alphabet) *machine.Machine {
	symbols := []rune(seq)

	m := machine.New()
	m.SetInitial("start")
	m.SetTitle(title)

	prefix := string(symbols[0])
	lead := Consume(symbols[0], dir, "lead").Prefix(prefix)
	m.AddTransitions(lead.Transitions())
	m.AddTransition(
		machine.Key{State: m.Initial(), Symbol: symbols[0]},
		machine.Reaction{State: lead.Initial(), Symbol: symbols[0], Move: machine.Hold},
	)
	tail := lead.Accept()

	for i, next := range symbols[1:] {
		gap := 1
		if distances != nil {
			gap = distances[i]
		}
		if gap > 1 {
			shift := Move(gap-1, dir, "shift", alphabet).Prefix(prefix + ">")
			m.AddTransitions(shift.Transitions())
			m.RedirectState(tail, shift.Initial(), alphabet)
			tail = shift.Accept()
		}

		prefix += string(next)
		take := Consume(next, dir, "take").Prefix(prefix)
		m.AddTransitions(take.Transitions())
		m.AddTransition(
			machine.Key{State: tail, Symbol: next},
			machine.Reaction{State: take.Initial(), Symbol: next, Move: machine.Hold},
		)
		tail = take.Accept()
	}

	m.RedirectState(tail, m.Accept(), alphabet)
	return m
}

// AnyOf emits a recognizer accepting any of a finite set of fixed
// sequences, as the union of their Expect machines. All sequences use
// the same distances. The shared prefix-trie naming of Expect keeps the
// union deterministic.
func AnyOf(seqs []string, dir machine.Direction, distances []int, title string, alphabet machine.Alphabet) *machine.Machine {
	machines := make([]*machine.Machine, len(seqs))
	for i, seq := range seqs {
		machines[i] = Expect(seq, dir, distances, title, alphabet)
	}
	// Nonempty by the package's precondition convention.
	result, _ := compose.Multiunion(machines, title)
	return result
}
