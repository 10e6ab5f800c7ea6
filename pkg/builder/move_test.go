package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/loom/pkg/builder"
	"github.com/aretw0/loom/pkg/machine"
)

func TestMoveRight(t *testing.T) {
	alphabet := machine.NewAlphabet("ab_")
	m := builder.MoveRight(3, "m3", alphabet)

	assert.Equal(t, "0", m.Initial())
	assert.Equal(t, "3", m.Accept())

	status, seen := runToTerminal(t, m, "ab")
	assert.Equal(t,
		[]machine.Status{machine.Running, machine.Running, machine.Accept}, seen)
	assert.Equal(t, machine.Accept, status)
	assert.Equal(t, 3, m.HeadIndex())
	assert.Equal(t, "ab__", m.Tape(), "tape grew behind the head")
}

func TestMoveLeftGrowsLeftTape(t *testing.T) {
	alphabet := machine.NewAlphabet("ab_")
	m := builder.MoveLeft(1, "m", alphabet)

	status, _ := runToTerminal(t, m, "ab")
	assert.Equal(t, machine.Accept, status)
	assert.Equal(t, -1, m.HeadIndex())
	assert.Equal(t, "_ab", m.Tape())
}

func TestMoveIgnoresSymbols(t *testing.T) {
	alphabet := machine.NewAlphabet("ab_")
	m := builder.MoveRight(2, "m", alphabet)

	for _, input := range []string{"aa", "bb", "ab", ""} {
		status, _ := runToTerminal(t, m, input)
		assert.Equal(t, machine.Accept, status, "input %q", input)
	}
}
