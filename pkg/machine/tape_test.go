package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/loom/pkg/machine"
)

func TestLoadInputEmpty(t *testing.T) {
	m := machine.New()
	m.LoadInput("")

	assert.Equal(t, "_", m.Tape(), "empty input becomes a single blank")
	assert.Equal(t, 1, m.TapeLen())
}

func TestTapeConcatenatesSides(t *testing.T) {
	m := machine.New()
	m.AddTransition(
		machine.Key{State: "qStart", Symbol: 'a'},
		machine.Reaction{State: "l", Symbol: 'a', Move: machine.Left},
	)
	m.AddTransition(
		machine.Key{State: "l", Symbol: '_'},
		machine.Reaction{State: "l2", Symbol: 'x', Move: machine.Left},
	)

	m.LoadInput("ab")
	m.Step()
	m.Step()

	assert.Equal(t, -2, m.HeadIndex())
	assert.Equal(t, "_xab", m.Tape())
	assert.Equal(t, 4, m.TapeLen())
}

func TestHeadRendering(t *testing.T) {
	m := machine.New()
	m.AddTransition(
		machine.Key{State: "qStart", Symbol: 'a'},
		machine.Reaction{State: "next", Symbol: 'a', Move: machine.Right},
	)

	m.LoadInput("ab")
	assert.Equal(t, "v_ (qStart)", m.Head())

	m.Step()
	assert.Equal(t, "_v (next)", m.Head())
}
