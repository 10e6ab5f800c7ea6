package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/loom/pkg/builder"
	"github.com/aretw0/loom/pkg/machine"
)

func TestFindRight(t *testing.T) {
	alphabet := machine.NewAlphabet("abcde:_")
	m := builder.FindRight(':', "find", alphabet)

	status, seen := runToTerminal(t, m, "abc:de")
	assert.Equal(t, machine.Accept, status)
	assert.Len(t, seen, 4, "three slides, then the hold onto the needle")
	assert.Equal(t, 3, m.HeadIndex())
	assert.Equal(t, "abc:de", m.Tape(), "tape unchanged")
}

func TestFindLeftReachesBlank(t *testing.T) {
	alphabet := machine.NewAlphabet("ab_")
	m := builder.FindLeft('_', "rewind", alphabet)

	status, _ := runToTerminal(t, m, "ab")
	assert.Equal(t, machine.Accept, status)
	assert.Equal(t, -1, m.HeadIndex(), "found the blank before cell 0")
}

func TestFindAcceptsImmediatelyOnNeedle(t *testing.T) {
	alphabet := machine.NewAlphabet("a:_")
	m := builder.FindRight(':', "find", alphabet)

	status, seen := runToTerminal(t, m, ":a")
	assert.Equal(t, machine.Accept, status)
	assert.Len(t, seen, 1)
	assert.Equal(t, 0, m.HeadIndex())
}

func TestConsume(t *testing.T) {
	m := builder.Consume('a', machine.Right, "eat")

	assert.Equal(t, "a", m.Initial(), "initial named after the symbol")

	status, _ := runToTerminal(t, m, "ab")
	assert.Equal(t, machine.Accept, status)
	assert.Equal(t, 1, m.HeadIndex())

	status, _ = runToTerminal(t, m, "ba")
	assert.Equal(t, machine.Reject, status)
}
