package machine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/loom/pkg/machine"
)

const sampleText = `init: qStart
accept: Y

qStart,a
mid,b,>

mid,_
Y,_,-
`

func TestReadMachine(t *testing.T) {
	m, err := machine.ReadMachine(strings.NewReader(sampleText))
	require.NoError(t, err)

	assert.Equal(t, "qStart", m.Initial())
	assert.Equal(t, "Y", m.Accept())
	require.Equal(t, 2, m.Len())

	reaction := m.Transitions()[machine.Key{State: "qStart", Symbol: 'a'}]
	assert.Equal(t, machine.Reaction{State: "mid", Symbol: 'b', Move: machine.Right}, reaction)
}

func TestReadMachineSkipsComments(t *testing.T) {
	text := "init: s\naccept: f\n\n// a comment\n\ns,x\nf,x,-\n"
	m, err := machine.ReadMachine(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
}

func TestReadMachineFormatErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"missing init header", "accept: Y\n"},
		{"missing accept header", "init: qStart\n"},
		{"headers out of order", "accept: Y\ninit: qStart\n"},
		{"empty header state", "init:\naccept: Y\n"},
		{"key too few fields", "init: s\naccept: f\n\nonlystate\nf,x,-\n"},
		{"missing reaction line", "init: s\naccept: f\n\ns,x\n"},
		{"reaction too few fields", "init: s\naccept: f\n\ns,x\nf,x\n"},
		{"unknown direction", "init: s\naccept: f\n\ns,x\nf,x,^\n"},
		{"empty symbol field", "init: s\naccept: f\n\ns,\nf,x,-\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := machine.ReadMachine(strings.NewReader(tc.text))
			require.Error(t, err)

			var formatErr *machine.FormatError
			assert.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestWriteMachineDeterministic(t *testing.T) {
	m, err := machine.ReadMachine(strings.NewReader(sampleText))
	require.NoError(t, err)

	var first, second strings.Builder
	require.NoError(t, machine.WriteMachine(&first, m))
	require.NoError(t, machine.WriteMachine(&second, m))
	assert.Equal(t, first.String(), second.String())
}

func TestRoundTrip(t *testing.T) {
	m := machine.New()
	m.SetInitial("begin")
	m.SetAccept("end")
	m.SetTitle("untitled on the wire")
	m.AddTransition(
		machine.Key{State: "begin", Symbol: ':'},
		machine.Reaction{State: "scan", Symbol: ':', Move: machine.Right},
	)
	m.AddTransition(
		machine.Key{State: "scan", Symbol: '_'},
		machine.Reaction{State: "end", Symbol: '#', Move: machine.Left},
	)

	var buf strings.Builder
	require.NoError(t, machine.WriteMachine(&buf, m))

	parsed, err := machine.ReadMachine(strings.NewReader(buf.String()))
	require.NoError(t, err)

	assert.Equal(t, m.Initial(), parsed.Initial())
	assert.Equal(t, m.Accept(), parsed.Accept())
	assert.Equal(t, m.Transitions(), parsed.Transitions())
	assert.Equal(t, machine.DefaultTitle, parsed.Title(), "title is not serialized")

	// Serialize -> parse -> serialize is the identity.
	var again strings.Builder
	require.NoError(t, machine.WriteMachine(&again, parsed))
	assert.Equal(t, buf.String(), again.String())
}
