package machine

import (
	"fmt"
	"maps"
	"slices"
)

// Default distinguished state labels and title.
const (
	DefaultInitial = "qStart"
	DefaultAccept  = "Y"
	DefaultHalt    = "H"
	DefaultTitle   = "MyMachine"
)

// Blank is the reserved tape-fill symbol. It must not appear in user
// input but may appear on the tape.
const Blank = '_'

// Key identifies a transition: the state the machine is in and the
// symbol under the head.
type Key struct {
	State  string
	Symbol rune
}

// Reaction is what a transition prescribes: the next state, the symbol
// written into the cell under the head, and the head motion.
type Reaction struct {
	State  string
	Symbol rune
	Move   Direction
}

// Table maps keys to reactions. At most one reaction per key.
type Table map[Key]Reaction

// Machine is a single-tape deterministic Turing machine. The zero value
// is not usable; construct with New or FromTable.
//
// Machines have value semantics: Clone, TransformStates and Prefix
// produce independent copies, and the composition operators in
// pkg/compose never mutate their operands. A Machine is not safe for
// concurrent Step calls, but independently cloned machines share no
// mutable state.
type Machine struct {
	transitions Table

	initial string
	accept  string
	halt    string
	title   string

	tapeRight []rune
	tapeLeft  []rune
	head      int
	current   string
}

// New returns an empty machine with the default distinguished states.
func New() *Machine {
	return &Machine{
		transitions: make(Table),
		initial:     DefaultInitial,
		accept:      DefaultAccept,
		halt:        DefaultHalt,
		title:       DefaultTitle,
		current:     DefaultInitial,
	}
}

// FromTable returns a machine seeded with a copy of the given table.
func FromTable(t Table) *Machine {
	m := New()
	maps.Copy(m.transitions, t)
	return m
}

// Entry pairs a key with its reaction, for literal machine construction.
type Entry struct {
	Key      Key
	Reaction Reaction
}

// FromTransitions builds a machine from a literal transition list.
// Later entries win on duplicate keys.
func FromTransitions(entries []Entry) *Machine {
	m := New()
	for _, e := range entries {
		m.transitions[e.Key] = e.Reaction
	}
	return m
}

// AddTransition installs a single transition, replacing any prior
// reaction for the same key.
func (m *Machine) AddTransition(key Key, reaction Reaction) {
	m.transitions[key] = reaction
}

// AddTransitions merges a table into the machine. Keys already present
// are replaced.
func (m *Machine) AddTransitions(t Table) {
	maps.Copy(m.transitions, t)
}

// RedirectState installs, for every symbol in the alphabet, a hold
// transition from one state to another. Prior transitions out of the
// source state for symbols not in the alphabet are untouched; entries
// for alphabet symbols are replaced, which makes the operation
// idempotent. This is the mechanism by which accept and loop-check
// states become through-states.
func (m *Machine) RedirectState(from, to string, alphabet Alphabet) {
	for _, symbol := range alphabet {
		m.AddTransition(
			Key{State: from, Symbol: symbol},
			Reaction{State: to, Symbol: symbol, Move: Hold},
		)
	}
}

// SetInitial renames the initial state label.
func (m *Machine) SetInitial(name string) { m.initial = name }

// SetAccept renames the accept state label.
func (m *Machine) SetAccept(name string) { m.accept = name }

// SetHalt renames the neutral halt state label.
func (m *Machine) SetHalt(name string) { m.halt = name }

// SetTitle sets the title used as the prefix when the machine is
// embedded into a composite.
func (m *Machine) SetTitle(title string) { m.title = title }

// Initial returns the initial state label.
func (m *Machine) Initial() string { return m.initial }

// Accept returns the accept state label.
func (m *Machine) Accept() string { return m.accept }

// HaltState returns the neutral halt state label.
func (m *Machine) HaltState() string { return m.halt }

// Title returns the machine title.
func (m *Machine) Title() string { return m.title }

// Current returns the state the simulation is in. Meaningful only after
// LoadInput.
func (m *Machine) Current() string { return m.current }

// Transitions returns a copy of the transition table.
func (m *Machine) Transitions() Table {
	return maps.Clone(m.transitions)
}

// Len returns the number of transitions.
func (m *Machine) Len() int { return len(m.transitions) }

// States returns the sorted set of state labels occurring in the table,
// as keys or as reaction targets.
func (m *Machine) States() []string {
	seen := make(map[string]struct{}, len(m.transitions))
	for key, reaction := range m.transitions {
		seen[key.State] = struct{}{}
		seen[reaction.State] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Clone returns an independent deep copy, including any run-state.
func (m *Machine) Clone() *Machine {
	clone := *m
	clone.transitions = maps.Clone(m.transitions)
	clone.tapeRight = slices.Clone(m.tapeRight)
	clone.tapeLeft = slices.Clone(m.tapeLeft)
	return &clone
}

// TransformStates returns a new machine whose every state label has
// been rewritten by fn: table keys, reaction targets, and the initial,
// accept and halt labels, uniformly. The title carries over; run-state
// does not.
func (m *Machine) TransformStates(fn func(string) string) *Machine {
	out := New()
	for key, reaction := range m.transitions {
		out.transitions[Key{State: fn(key.State), Symbol: key.Symbol}] = Reaction{
			State:  fn(reaction.State),
			Symbol: reaction.Symbol,
			Move:   reaction.Move,
		}
	}
	out.initial = fn(m.initial)
	out.accept = fn(m.accept)
	out.halt = fn(m.halt)
	out.title = m.title
	out.current = out.initial
	return out
}

// Prefix returns a copy with every state label q renamed to "[p]q".
// Prefixing two machines with distinct prefixes disjoints their state
// spaces, which is the hygiene the composition algebra relies on.
func (m *Machine) Prefix(p string) *Machine {
	return m.TransformStates(func(state string) string {
		return fmt.Sprintf("[%s]%s", p, state)
	})
}

// Prefixed is Prefix with the machine's own title.
func (m *Machine) Prefixed() *Machine {
	return m.Prefix(m.title)
}
