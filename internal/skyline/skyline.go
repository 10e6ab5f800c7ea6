// Package skyline builds a decider for a 4x4 Latin-square puzzle with
// edge visibility clues ("skyscrapers") out of the loom combinators. It
// is a client of pkg/builder and pkg/compose, not part of the machine
// library itself.
package skyline

import (
	"strings"

	"github.com/aretw0/loom/pkg/builder"
	"github.com/aretw0/loom/pkg/compose"
	"github.com/aretw0/loom/pkg/machine"
)

// Grid digits, the row separators, the block terminator and the blank.
const alphabetSymbols = "1234:#_"

// Alphabet returns the tape alphabet the decider is built over.
func Alphabet() machine.Alphabet {
	return machine.NewAlphabet(alphabetSymbols)
}

// Puzzle is a filled 4x4 grid plus its visibility clues. Grid rows and
// clue strings are 4 characters of "1"-"4" each; Top/Bottom read left
// to right, Left/Right read top to bottom.
type Puzzle struct {
	Grid   [4]string
	Top    string
	Bottom string
	Left   string
	Right  string
}

// Tape layout: six 9-cell blocks.
//
//	#:TTTT:##   top clues, cells at offsets 2..5
//	L:cccc:R#   rows 1..4
//	#:BBBB:##   bottom clues
//
// Row r (1-based) occupies positions 9r..9r+8 with grid cells at
// 9r+2..9r+5. The stride between vertically adjacent cells is 9.

// Encode lays the puzzle out on a tape string.
func Encode(p Puzzle) string {
	var b strings.Builder
	b.WriteString("#:")
	b.WriteString(p.Top)
	b.WriteString(":##")
	for r, row := range p.Grid {
		b.WriteByte(p.Left[r])
		b.WriteByte(':')
		b.WriteString(row)
		b.WriteByte(':')
		b.WriteByte(p.Right[r])
		b.WriteByte('#')
	}
	b.WriteString("#:")
	b.WriteString(p.Bottom)
	b.WriteString(":##")
	return b.String()
}

// DeriveClues fills in the visibility clues of a solved grid, for
// constructing test inputs.
func DeriveClues(grid [4]string) Puzzle {
	p := Puzzle{Grid: grid}
	var top, bottom, left, right strings.Builder
	for c := range 4 {
		var col [4]byte
		for r := range 4 {
			col[r] = grid[r][c]
		}
		column := string(col[:])
		top.WriteByte('0' + byte(visible(column)))
		bottom.WriteByte('0' + byte(visible(reversed(column))))
	}
	for r := range 4 {
		left.WriteByte('0' + byte(visible(grid[r])))
		right.WriteByte('0' + byte(visible(reversed(grid[r]))))
	}
	p.Top, p.Bottom = top.String(), bottom.String()
	p.Left, p.Right = left.String(), right.String()
	return p
}

// visible counts the towers seen from the start of the sequence: each
// new maximum is visible.
func visible(seq string) int {
	highest, n := byte(0), 0
	for i := 0; i < len(seq); i++ {
		if seq[i] > highest {
			highest = seq[i]
			n++
		}
	}
	return n
}

func reversed(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// permutations returns the 24 orderings of "1234".
func permutations() []string {
	var out []string
	var recurse func(prefix string, rest []byte)
	recurse = func(prefix string, rest []byte) {
		if len(rest) == 0 {
			out = append(out, prefix)
			return
		}
		for i, c := range rest {
			remaining := make([]byte, 0, len(rest)-1)
			remaining = append(remaining, rest[:i]...)
			remaining = append(remaining, rest[i+1:]...)
			recurse(prefix+string(c), remaining)
		}
	}
	recurse("", []byte("1234"))
	return out
}

// towerPatterns returns the clue-prefixed patterns a visibility check
// matches: for each permutation, its clue followed by the first three
// cells in view order (three cells identify the permutation, the fourth
// is forced). fromFarEnd selects the view from the far end.
func towerPatterns(fromFarEnd bool) []string {
	perms := permutations()
	patterns := make([]string, 0, len(perms))
	for _, p := range perms {
		view := p
		if fromFarEnd {
			view = reversed(p)
		}
		patterns = append(patterns, string('0'+byte(visible(view)))+view[:3])
	}
	return patterns
}

// rewind is the coda every phase ends with: search left for the blank
// before cell 0, then step back onto cell 0.
func rewind(alphabet machine.Alphabet) []*machine.Machine {
	return []*machine.Machine{
		builder.FindLeft(machine.Blank, "rewind", alphabet),
		builder.Consume(machine.Blank, machine.Right, "to_start"),
	}
}

func phase(parts []*machine.Machine, alphabet machine.Alphabet, title string) *machine.Machine {
	m, err := compose.Multiconcat(parts, alphabet, title)
	if err != nil {
		// Phases are statically nonempty.
		panic(err)
	}
	return m
}

// checkRows verifies each row is a permutation of 1..4. Entry walks to
// the row-1 left clue; the loop body crosses the clue and separator,
// matches any permutation over the four cells, and advances to the next
// row's clue slot, which holds the terminator '#' after row 4.
func checkRows(alphabet machine.Alphabet) *machine.Machine {
	row := builder.AnyOf(permutations(), machine.Right, nil, "row_perm", alphabet)
	body := phase([]*machine.Machine{
		builder.MoveRight(2, "to_cells", alphabet),
		row,
		builder.MoveRight(3, "to_next_row", alphabet),
	}, alphabet, "row_body")

	parts := []*machine.Machine{
		builder.MoveRight(9, "to_row1", alphabet),
		compose.Repeat(body, compose.DoUntil, '#', alphabet, "row_loop"),
	}
	return phase(append(parts, rewind(alphabet)...), alphabet, "check_rows")
}

// checkCols verifies each column is a permutation, matching the four
// cells at stride 9. After the fourth column the landing cell is the
// row separator ':'.
func checkCols(alphabet machine.Alphabet) *machine.Machine {
	col := builder.AnyOf(permutations(), machine.Right, []int{9, 9, 9}, "col_perm", alphabet)
	body := phase([]*machine.Machine{
		col,
		builder.MoveLeft(27, "to_next_col", alphabet),
	}, alphabet, "col_body")

	parts := []*machine.Machine{
		builder.MoveRight(11, "to_col1", alphabet),
		compose.Repeat(body, compose.DoUntil, ':', alphabet, "col_loop"),
	}
	return phase(append(parts, rewind(alphabet)...), alphabet, "check_cols")
}

// towersRows verifies the left and right visibility clues. The left
// pattern runs rightward from the clue across the separator; the right
// pattern runs leftward from the far clue.
func towersRows(alphabet machine.Alphabet) *machine.Machine {
	left := builder.AnyOf(towerPatterns(false), machine.Right, []int{2, 1, 1}, "tower_left", alphabet)
	right := builder.AnyOf(towerPatterns(true), machine.Left, []int{2, 1, 1}, "tower_right", alphabet)
	body := phase([]*machine.Machine{
		left,
		builder.MoveRight(2, "to_right_clue", alphabet),
		right,
		builder.MoveRight(7, "to_next_row", alphabet),
	}, alphabet, "tower_row_body")

	parts := []*machine.Machine{
		builder.MoveRight(9, "to_row1", alphabet),
		compose.Repeat(body, compose.DoUntil, '#', alphabet, "tower_row_loop"),
	}
	return phase(append(parts, rewind(alphabet)...), alphabet, "towers_rows")
}

// towersCols verifies the top and bottom visibility clues at stride 9,
// downward from the top clue row and upward from the bottom one.
func towersCols(alphabet machine.Alphabet) *machine.Machine {
	up := builder.AnyOf(towerPatterns(false), machine.Right, []int{9, 9, 9}, "tower_up", alphabet)
	down := builder.AnyOf(towerPatterns(true), machine.Left, []int{9, 9, 9}, "tower_down", alphabet)
	body := phase([]*machine.Machine{
		up,
		builder.MoveRight(17, "to_bottom_clue", alphabet),
		down,
		builder.MoveLeft(16, "to_next_col", alphabet),
	}, alphabet, "tower_col_body")

	parts := []*machine.Machine{
		builder.MoveRight(2, "to_top1", alphabet),
		compose.Repeat(body, compose.DoUntil, ':', alphabet, "tower_col_loop"),
	}
	return phase(append(parts, rewind(alphabet)...), alphabet, "towers_cols")
}

// Solver assembles the full decider: rows, columns, then the four
// visibility sweeps, each returning the head to cell 0. The composite
// accept is redirected onto the plain "Y" label.
func Solver() *machine.Machine {
	alphabet := Alphabet()
	m := phase([]*machine.Machine{
		checkRows(alphabet),
		checkCols(alphabet),
		towersRows(alphabet),
		towersCols(alphabet),
	}, alphabet, "solver")

	m.RedirectState(m.Accept(), machine.DefaultAccept, alphabet)
	m.SetAccept(machine.DefaultAccept)
	return m
}
