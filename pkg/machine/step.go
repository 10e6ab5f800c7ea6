package machine

// Step advances the simulation by one transition and classifies the
// result. A missing transition for the current (state, symbol) pair
// rejects without changing the tape or the state, so the caller may
// inspect both. Otherwise the reaction is applied atomically: write the
// prescribed symbol, adopt the next state, move the head, and
// materialize a blank if the head entered a virgin cell.
//
// LoadInput must have been called first.
func (m *Machine) Step() Status {
	key := Key{State: m.current, Symbol: m.symbolAtHead()}
	reaction, ok := m.transitions[key]
	if !ok {
		return Reject
	}

	m.writeAtHead(reaction.Symbol)
	m.current = reaction.State
	m.head += reaction.Move.offset()
	m.growTape()

	switch m.current {
	case m.halt:
		return Halt
	case m.accept:
		return Accept
	}
	return Running
}
