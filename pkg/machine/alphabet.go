package machine

import "slices"

// Alphabet is the symbol set a builder enumerates when emitting blanket
// transitions. It is kept sorted so generated tables are reproducible.
type Alphabet []rune

// NewAlphabet builds an Alphabet from the distinct runes of symbols.
func NewAlphabet(symbols string) Alphabet {
	runes := []rune(symbols)
	slices.Sort(runes)
	return Alphabet(slices.Compact(runes))
}

// Contains reports whether r is part of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, found := slices.BinarySearch(a, r)
	return found
}

func (a Alphabet) String() string {
	return string(a)
}
