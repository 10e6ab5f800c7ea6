package blueprint

import (
	"fmt"

	"github.com/aretw0/loom/pkg/builder"
	"github.com/aretw0/loom/pkg/compose"
	"github.com/aretw0/loom/pkg/machine"
)

var directions = map[string]machine.Direction{
	"left":  machine.Left,
	"right": machine.Right,
	"hold":  machine.Hold,
}

var variants = map[string]compose.Variant{
	"do-while": compose.DoWhile,
	"do-until": compose.DoUntil,
}

// Compile lowers the blueprint to one machine: each step becomes a
// small machine and the pipeline is multiconcatenated under the
// blueprint title.
func (b *Blueprint) Compile() (*machine.Machine, error) {
	machines, err := compileSteps(b.Steps, b.Alphabet)
	if err != nil {
		return nil, err
	}
	result, err := compose.Multiconcat(machines, b.Alphabet, b.Title)
	if err != nil {
		return nil, fmt.Errorf("blueprint %q: %w", b.Title, err)
	}
	return result, nil
}

func compileSteps(steps []Step, alphabet machine.Alphabet) ([]*machine.Machine, error) {
	machines := make([]*machine.Machine, 0, len(steps))
	for i, step := range steps {
		m, err := compileStep(step, i, alphabet)
		if err != nil {
			return nil, err
		}
		machines = append(machines, m)
	}
	return machines, nil
}

func compileStep(step Step, index int, alphabet machine.Alphabet) (*machine.Machine, error) {
	title := step.Title
	if title == "" {
		title = fmt.Sprintf("%s_%d", step.Kind, index+1)
	}
	fail := func(format string, args ...any) error {
		return fmt.Errorf("blueprint: step %d (%s): %s", index+1, step.Kind, fmt.Sprintf(format, args...))
	}

	switch step.Kind {
	case "move":
		if step.Count < 1 {
			return nil, fail("count must be at least 1")
		}
		dir, err := direction(step.Direction)
		if err != nil {
			return nil, fail("%v", err)
		}
		return builder.Move(step.Count, dir, title, alphabet), nil

	case "find":
		symbol, err := symbol(step.Symbol)
		if err != nil {
			return nil, fail("%v", err)
		}
		dir, err := direction(step.Direction)
		if err != nil {
			return nil, fail("%v", err)
		}
		return builder.Find(symbol, dir, title, alphabet), nil

	case "consume":
		symbol, err := symbol(step.Symbol)
		if err != nil {
			return nil, fail("%v", err)
		}
		dir, err := direction(step.Direction)
		if err != nil {
			return nil, fail("%v", err)
		}
		return builder.Consume(symbol, dir, title), nil

	case "expect":
		if step.Sequence == "" {
			return nil, fail("missing sequence")
		}
		dir, err := direction(step.Direction)
		if err != nil {
			return nil, fail("%v", err)
		}
		if err := checkDistances(step.Distances, step.Sequence); err != nil {
			return nil, fail("%v", err)
		}
		return builder.Expect(step.Sequence, dir, step.Distances, title, alphabet), nil

	case "any-of":
		if len(step.Sequences) == 0 {
			return nil, fail("missing sequences")
		}
		dir, err := direction(step.Direction)
		if err != nil {
			return nil, fail("%v", err)
		}
		if err := checkDistances(step.Distances, step.Sequences[0]); err != nil {
			return nil, fail("%v", err)
		}
		return builder.AnyOf(step.Sequences, dir, step.Distances, title, alphabet), nil

	case "repeat":
		variant, ok := variants[step.Variant]
		if !ok {
			return nil, fail("unknown variant %q", step.Variant)
		}
		guard, err := symbol(step.Guard)
		if err != nil {
			return nil, fail("guard: %v", err)
		}
		bodySteps, err := decodeSteps(step.Body)
		if err != nil {
			return nil, err
		}
		bodyMachines, err := compileSteps(bodySteps, alphabet)
		if err != nil {
			return nil, err
		}
		body, err := compose.Multiconcat(bodyMachines, alphabet, title+"_body")
		if err != nil {
			return nil, fail("empty body")
		}
		return compose.Repeat(body, variant, guard, alphabet, title), nil
	}

	return nil, fail("unknown kind")
}

func direction(name string) (machine.Direction, error) {
	dir, ok := directions[name]
	if !ok {
		return machine.Hold, fmt.Errorf("unknown direction %q", name)
	}
	return dir, nil
}

func symbol(field string) (rune, error) {
	runes := []rune(field)
	if len(runes) != 1 {
		return 0, fmt.Errorf("symbol must be a single character, got %q", field)
	}
	return runes[0], nil
}

func checkDistances(distances []int, seq string) error {
	if distances == nil {
		return nil
	}
	if len(distances) != len([]rune(seq))-1 {
		return fmt.Errorf("need %d distances for a %d-symbol sequence, got %d",
			len([]rune(seq))-1, len([]rune(seq)), len(distances))
	}
	for _, d := range distances {
		if d < 1 {
			return fmt.Errorf("distances must be at least 1")
		}
	}
	return nil
}
