/*
Package blueprint compiles declarative YAML machine recipes onto the
builder and composition layers. A blueprint names an alphabet and a
pipeline of steps; each step lowers to one small machine and the
pipeline is concatenated in order:

	title: strip-leading-a
	alphabet: "ab_"
	steps:
	  - kind: repeat
	    variant: do-while
	    guard: a
	    body:
	      - kind: consume
	        symbol: a
	        direction: right
	  - kind: find
	    symbol: _
	    direction: right
*/
package blueprint

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/loom/pkg/machine"
)

// Step is one entry of a blueprint pipeline. Fields beyond Kind are
// kind-dependent; unknown fields are rejected at decode time.
type Step struct {
	Kind  string `mapstructure:"kind"`
	Title string `mapstructure:"title"`

	// move
	Count     int    `mapstructure:"count"`
	Direction string `mapstructure:"direction"`

	// find, consume
	Symbol string `mapstructure:"symbol"`

	// expect, any-of
	Sequence  string   `mapstructure:"sequence"`
	Sequences []string `mapstructure:"sequences"`
	Distances []int    `mapstructure:"distances"`

	// repeat
	Variant string           `mapstructure:"variant"`
	Guard   string           `mapstructure:"guard"`
	Body    []map[string]any `mapstructure:"body"`
}

// Blueprint is a parsed machine recipe.
type Blueprint struct {
	Title    string
	Alphabet machine.Alphabet
	Steps    []Step
}

type document struct {
	Title    string           `yaml:"title"`
	Alphabet string           `yaml:"alphabet"`
	Steps    []map[string]any `yaml:"steps"`
}

// Parse decodes a YAML blueprint. Step payloads are loosely typed in
// YAML, so each one is decoded strictly into a Step via mapstructure.
func Parse(data []byte) (*Blueprint, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("blueprint: %w", err)
	}
	if doc.Title == "" {
		return nil, fmt.Errorf("blueprint: missing title")
	}
	if doc.Alphabet == "" {
		return nil, fmt.Errorf("blueprint: missing alphabet")
	}

	steps, err := decodeSteps(doc.Steps)
	if err != nil {
		return nil, err
	}

	return &Blueprint{
		Title:    doc.Title,
		Alphabet: machine.NewAlphabet(doc.Alphabet),
		Steps:    steps,
	}, nil
}

func decodeSteps(raw []map[string]any) ([]Step, error) {
	steps := make([]Step, 0, len(raw))
	for i, payload := range raw {
		var step Step
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &step,
			ErrorUnused: true,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(payload); err != nil {
			return nil, fmt.Errorf("blueprint: step %d: %w", i+1, err)
		}
		if step.Kind == "" {
			return nil, fmt.Errorf("blueprint: step %d: missing kind", i+1)
		}
		steps = append(steps, step)
	}
	return steps, nil
}
