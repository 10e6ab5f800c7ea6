package compose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/loom/pkg/builder"
	"github.com/aretw0/loom/pkg/compose"
	"github.com/aretw0/loom/pkg/machine"
)

func TestRepeatDoUntil(t *testing.T) {
	alphabet := machine.NewAlphabet("abc_")
	body := builder.Consume('a', machine.Right, "eat")
	loop := compose.Repeat(body, compose.DoUntil, 'b', alphabet, "until_b")

	t.Run("consumes until guard", func(t *testing.T) {
		status, steps := runToTerminal(t, loop, "aaab")
		assert.Equal(t, machine.Accept, status)
		assert.Equal(t, 10, steps)
		assert.Equal(t, 3, loop.HeadIndex(), "head parked on the guard")
	})

	t.Run("guard already present accepts with zero iterations", func(t *testing.T) {
		status, steps := runToTerminal(t, loop, "b")
		assert.Equal(t, machine.Accept, status)
		assert.Equal(t, 1, steps)
		assert.Equal(t, 0, loop.HeadIndex())
	})

	t.Run("neither body symbol nor guard rejects", func(t *testing.T) {
		status, _ := runToTerminal(t, loop, "aac")
		assert.Equal(t, machine.Reject, status)
		assert.Equal(t, 2, loop.HeadIndex())
	})
}

func TestRepeatDoWhile(t *testing.T) {
	alphabet := machine.NewAlphabet("abc_")
	body := builder.Consume('a', machine.Right, "eat")
	loop := compose.Repeat(body, compose.DoWhile, 'a', alphabet, "while_a")

	t.Run("loops while guard holds", func(t *testing.T) {
		status, _ := runToTerminal(t, loop, "aaab")
		assert.Equal(t, machine.Accept, status)
		assert.Equal(t, 3, loop.HeadIndex())
	})

	t.Run("zero iterations on non-guard", func(t *testing.T) {
		status, steps := runToTerminal(t, loop, "b")
		assert.Equal(t, machine.Accept, status)
		assert.Equal(t, 1, steps)
	})

	t.Run("stops on first non-guard", func(t *testing.T) {
		status, _ := runToTerminal(t, loop, "aac")
		assert.Equal(t, machine.Accept, status)
		assert.Equal(t, 2, loop.HeadIndex())
	})
}

// The single (check, guard) entry must override the blanket redirect
// installed before it.
func TestRepeatOverrideWins(t *testing.T) {
	alphabet := machine.NewAlphabet("ab_")
	body := builder.Consume('a', machine.Right, "eat")
	loop := compose.Repeat(body, compose.DoUntil, 'b', alphabet, "until_b")

	reaction, ok := loop.Transitions()[machine.Key{State: "check", Symbol: 'b'}]
	assert.True(t, ok)
	assert.Equal(t, "break", reaction.State)
}

func TestRepeatStartsAtCheck(t *testing.T) {
	alphabet := machine.NewAlphabet("ab_")
	loop := compose.Repeat(builder.Consume('a', machine.Right, "eat"), compose.DoWhile, 'a', alphabet, "w")

	assert.Equal(t, "check", loop.Initial())
	assert.Equal(t, "break", loop.Accept())
}
