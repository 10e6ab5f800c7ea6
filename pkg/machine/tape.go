package machine

import "strings"

// LoadInput resets the run-state: the head returns to cell 0, the left
// tape empties, and the right tape holds the input (a single blank for
// empty input). It may be called repeatedly to rerun the machine.
func (m *Machine) LoadInput(input string) {
	m.current = m.initial
	m.head = 0
	m.tapeLeft = nil

	if input == "" {
		m.tapeRight = []rune{Blank}
	} else {
		m.tapeRight = []rune(input)
	}
}

// Position p lives in tapeRight[p] for p >= 0 and tapeLeft[-p-1] for
// p < 0.

func (m *Machine) symbolAtHead() rune {
	if m.head >= 0 {
		return m.tapeRight[m.head]
	}
	return m.tapeLeft[-m.head-1]
}

func (m *Machine) writeAtHead(symbol rune) {
	if m.head >= 0 {
		m.tapeRight[m.head] = symbol
	} else {
		m.tapeLeft[-m.head-1] = symbol
	}
}

// growTape materializes the cell under the head as blank when a step
// moved it one past either end.
func (m *Machine) growTape() {
	if m.head == len(m.tapeRight) {
		m.tapeRight = append(m.tapeRight, Blank)
	}
	if -m.head-1 == len(m.tapeLeft) {
		m.tapeLeft = append(m.tapeLeft, Blank)
	}
}

// Tape returns the touched portion of the tape, left side reversed so
// the string reads in position order.
func (m *Machine) Tape() string {
	var b strings.Builder
	b.Grow(len(m.tapeLeft) + len(m.tapeRight))
	for i := len(m.tapeLeft) - 1; i >= 0; i-- {
		b.WriteRune(m.tapeLeft[i])
	}
	for _, r := range m.tapeRight {
		b.WriteRune(r)
	}
	return b.String()
}

// Head renders the head position as a caret line aligned with Tape,
// followed by the current state. Display only.
func (m *Machine) Head() string {
	var b strings.Builder
	caret := len(m.tapeLeft) + m.head
	b.WriteString(strings.Repeat(string(Blank), caret))
	b.WriteRune('v')
	b.WriteString(strings.Repeat(string(Blank), len(m.tapeRight)-m.head-1))
	b.WriteString(" (")
	b.WriteString(m.current)
	b.WriteString(")")
	return b.String()
}

// HeadIndex returns the signed head cursor.
func (m *Machine) HeadIndex() int { return m.head }

// TapeLen returns the number of materialized cells.
func (m *Machine) TapeLen() int { return len(m.tapeLeft) + len(m.tapeRight) }
