package compose

import (
	"errors"

	"github.com/aretw0/loom/pkg/machine"
)

// ErrEmptySequence is returned when a fold over machines is given
// nothing to fold.
var ErrEmptySequence = errors.New("compose: empty machine sequence")

// Concat sequences two machines: the result runs a to acceptance, then
// b from the tape a left behind. Both operands are embedded prefixed by
// their titles, which disjoints their state spaces; callers must
// therefore give a and b distinct titles. Neither operand is mutated.
func Concat(a, b *machine.Machine, alphabet machine.Alphabet, title string) *machine.Machine {
	result := a.Prefixed()
	second := b.Prefixed()

	result.RedirectState(result.Accept(), second.Initial(), alphabet)
	result.AddTransitions(second.Transitions())
	result.SetAccept(second.Accept())
	result.SetTitle(title)
	return result
}

// Multiconcat left-folds Concat over a nonempty sequence, starting from
// the prefixed first element: sequential composition of N machines.
func Multiconcat(machines []*machine.Machine, alphabet machine.Alphabet, title string) (*machine.Machine, error) {
	if len(machines) == 0 {
		return nil, ErrEmptySequence
	}

	result := machines[0].Prefixed()
	for _, m := range machines[1:] {
		next := m.Prefixed()
		result.RedirectState(result.Accept(), next.Initial(), alphabet)
		result.AddTransitions(next.Transitions())
		result.SetAccept(next.Accept())
	}
	result.SetTitle(title)
	return result, nil
}

// Multiunion merges subsequent machines' transition tables into the
// first, without renaming and without redirecting accept states. It is
// for machines whose state names the caller has already disambiguated,
// or that deliberately share an entry/exit protocol; initial and accept
// are inherited from the first element.
func Multiunion(machines []*machine.Machine, title string) (*machine.Machine, error) {
	if len(machines) == 0 {
		return nil, ErrEmptySequence
	}

	result := machines[0].Clone()
	for _, m := range machines[1:] {
		result.AddTransitions(m.Transitions())
	}
	result.SetTitle(title)
	return result, nil
}
