package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/loom/pkg/builder"
	"github.com/aretw0/loom/pkg/machine"
)

func TestExpectAdjacent(t *testing.T) {
	alphabet := machine.NewAlphabet("abc_")
	m := builder.Expect("abc", machine.Right, nil, "abc", alphabet)

	assert.Equal(t, "start", m.Initial())

	status, _ := runToTerminal(t, m, "abc")
	assert.Equal(t, machine.Accept, status)
	assert.Equal(t, 3, m.HeadIndex(), "head ends one past the last match")

	status, _ = runToTerminal(t, m, "abx")
	assert.Equal(t, machine.Reject, status)

	status, _ = runToTerminal(t, m, "xbc")
	assert.Equal(t, machine.Reject, status)
}

func TestExpectSparse(t *testing.T) {
	alphabet := machine.NewAlphabet("abcx_")
	m := builder.Expect("abc", machine.Right, []int{2, 2}, "sparse", alphabet)

	// Matches positions 0, 2 and 4; the filler cells are skipped
	// regardless of their symbols.
	status, _ := runToTerminal(t, m, "axbxc")
	assert.Equal(t, machine.Accept, status)
	assert.Equal(t, 5, m.HeadIndex())

	status, _ = runToTerminal(t, m, "axbxx")
	assert.Equal(t, machine.Reject, status)

	// Adjacent symbols do not satisfy the gaps.
	status, _ = runToTerminal(t, m, "abc")
	assert.Equal(t, machine.Reject, status)
}

func TestExpectLeftward(t *testing.T) {
	alphabet := machine.NewAlphabet("abc_")
	m := builder.Expect("cba", machine.Left, nil, "back", alphabet)

	// Starting on the 'c', the matches walk leftward.
	start := builder.FindRight('c', "to_c", alphabet)
	chain := mustConcat(t, start, m, alphabet)

	status, _ := runToTerminal(t, chain, "abc")
	assert.Equal(t, machine.Accept, status)
	assert.Equal(t, -1, chain.HeadIndex())
}

func TestAnyOf(t *testing.T) {
	alphabet := machine.NewAlphabet("abcx_")
	m := builder.AnyOf([]string{"abc", "acb", "bac"}, machine.Right, nil, "any", alphabet)

	for _, tc := range []struct {
		input string
		want  machine.Status
	}{
		{"abc", machine.Accept},
		{"acb", machine.Accept},
		{"bac", machine.Accept},
		{"bca", machine.Reject},
		{"ab", machine.Reject},
	} {
		status, _ := runToTerminal(t, m, tc.input)
		assert.Equal(t, tc.want, status, "input %q", tc.input)
	}
}

// Sequences with a common prefix share trie states, so their union
// stays deterministic and no smaller than either part.
func TestAnyOfSharesPrefixStates(t *testing.T) {
	alphabet := machine.NewAlphabet("abc_")
	ab := builder.Expect("ab", machine.Right, nil, "p", alphabet)
	ac := builder.Expect("ac", machine.Right, nil, "p", alphabet)
	union := builder.AnyOf([]string{"ab", "ac"}, machine.Right, nil, "p", alphabet)

	shared := 0
	acTable := ac.Transitions()
	for key, reaction := range ab.Transitions() {
		if other, ok := acTable[key]; ok && other == reaction {
			shared++
		}
	}
	assert.Greater(t, shared, 0, "the 'a' consumer is shared")
	assert.Equal(t, ab.Len()+ac.Len()-shared, union.Len())
}
