package machine

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
)

// FormatError reports a malformed line in the textual machine format.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("machine format: line %d: %s", e.Line, e.Msg)
}

// The textual format is line oriented:
//
//	init: <state>
//	accept: <state>
//
//	<from_state>,<from_symbol>
//	<to_state>,<to_symbol>,<dir>
//
// with one blank line between transition records. Directions are "<"
// (left), ">" (right) and "-" (hold). Blank lines and lines starting
// with "//" are skipped between records. The two header lines must come
// first, in order. Title and halt are not serialized; both reset to
// their defaults on read.

type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func (lr *lineReader) next() (string, bool) {
	if !lr.scanner.Scan() {
		return "", false
	}
	lr.line++
	return lr.scanner.Text(), true
}

func (lr *lineReader) errorf(format string, args ...any) error {
	return &FormatError{Line: lr.line, Msg: fmt.Sprintf(format, args...)}
}

// ReadMachine parses the textual format into a fresh machine.
func ReadMachine(r io.Reader) (*Machine, error) {
	lr := &lineReader{scanner: bufio.NewScanner(r)}
	m := New()

	initial, err := readHeader(lr, "init")
	if err != nil {
		return nil, err
	}
	m.SetInitial(initial)

	accept, err := readHeader(lr, "accept")
	if err != nil {
		return nil, err
	}
	m.SetAccept(accept)

	for {
		line, ok := lr.next()
		if !ok {
			break
		}
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		key, err := parseKey(lr, line)
		if err != nil {
			return nil, err
		}

		line, ok = lr.next()
		if !ok {
			return nil, lr.errorf("transition missing reaction line")
		}
		reaction, err := parseReaction(lr, line)
		if err != nil {
			return nil, err
		}

		m.AddTransition(key, reaction)
	}
	if err := lr.scanner.Err(); err != nil {
		return nil, err
	}

	m.current = m.initial
	return m, nil
}

func readHeader(lr *lineReader, name string) (string, error) {
	line, ok := lr.next()
	if !ok {
		return "", lr.errorf("missing %q header", name)
	}
	label, value, found := strings.Cut(line, ":")
	if !found || strings.TrimSpace(label) != name {
		return "", lr.errorf("expected %q header, got %q", name, line)
	}
	state := strings.TrimSpace(value)
	if state == "" {
		return "", lr.errorf("%q header names no state", name)
	}
	return state, nil
}

func parseKey(lr *lineReader, line string) (Key, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return Key{}, lr.errorf("transition key needs state and symbol, got %q", line)
	}
	symbol, err := parseSymbol(lr, fields[1])
	if err != nil {
		return Key{}, err
	}
	return Key{State: fields[0], Symbol: symbol}, nil
}

func parseReaction(lr *lineReader, line string) (Reaction, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return Reaction{}, lr.errorf("reaction needs state, symbol and direction, got %q", line)
	}
	symbol, err := parseSymbol(lr, fields[1])
	if err != nil {
		return Reaction{}, err
	}
	dir, err := ParseDirection(fields[2])
	if err != nil {
		return Reaction{}, lr.errorf("%v", err)
	}
	return Reaction{State: fields[0], Symbol: symbol, Move: dir}, nil
}

func parseSymbol(lr *lineReader, field string) (rune, error) {
	runes := []rune(field)
	if len(runes) != 1 {
		return 0, lr.errorf("symbol field must be a single character, got %q", field)
	}
	return runes[0], nil
}

// WriteMachine emits the textual format. Transitions are sorted by
// (state, symbol) so output is deterministic and round-trip stable.
func WriteMachine(w io.Writer, m *Machine) error {
	if _, err := fmt.Fprintf(w, "init: %s\naccept: %s\n\n", m.initial, m.accept); err != nil {
		return err
	}

	keys := make([]Key, 0, len(m.transitions))
	for key := range m.transitions {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b Key) int {
		if c := cmp.Compare(a.State, b.State); c != 0 {
			return c
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})

	for _, key := range keys {
		reaction := m.transitions[key]
		_, err := fmt.Fprintf(w, "%s,%c\n%s,%c,%s\n\n",
			key.State, key.Symbol,
			reaction.State, reaction.Symbol, reaction.Move.Specifier())
		if err != nil {
			return err
		}
	}
	return nil
}
