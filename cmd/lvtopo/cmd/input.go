// SPDX-License-Identifier: MIT
// Package: lvtopo/cmd/lvtopo/cmd
//
// input.go - YAML complex and event files.
//
// Complex file:
//
//	simplices:
//	  - {vertices: [0], value: 0}
//	  - {vertices: [0, 1], value: 1.5}
//	subcomplex:          # optional, relative variant only
//	  - [0]
//
// or a named fixture with an optional seed and edge probability:
//
//	fixture: random-flag
//	vertices: 12
//	probability: 0.3
//	seed: 7
//
// Event file:
//
//	events:
//	  - add: [0]
//	  - add: [1]
//	  - add: [0, 1]
//	  - remove: [0, 1]

package cmd

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/stream"
)

// ErrInvalidInput indicates a malformed input file.
var ErrInvalidInput = errors.New("lvtopo: invalid input")

// SimplexEntry is one simplex of a complex file.
type SimplexEntry struct {
	Vertices []int   `yaml:"vertices"`
	Value    float64 `yaml:"value"`
}

// ComplexFile is the YAML form of a filtered complex.
type ComplexFile struct {
	Simplices   []SimplexEntry `yaml:"simplices"`
	Subcomplex  [][]int        `yaml:"subcomplex"`
	Fixture     string         `yaml:"fixture"`
	Vertices    int            `yaml:"vertices"`
	Probability float64        `yaml:"probability"`
	Seed        int64          `yaml:"seed"`
	ValueStep   float64        `yaml:"value_step"`
}

// Event is one step of an event file; exactly one of Add and Remove is set.
type Event struct {
	Add    []int `yaml:"add"`
	Remove []int `yaml:"remove"`
}

// EventFile is the YAML form of a zigzag sequence.
type EventFile struct {
	Events []Event `yaml:"events"`
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrInvalidInput, err)
	}

	return nil
}

// readComplex loads a complex file into a finalized stream and returns the
// subcomplex predicate, nil when the file lists none.
func readComplex(path string) (*stream.SimplexStream, func(stream.Simplex) bool, error) {
	var f ComplexFile
	if err := decodeFile(path, &f); err != nil {
		return nil, nil, err
	}
	s, err := f.Stream()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, f.subcomplex(), nil
}

// Stream builds the finalized stream described by f.
func (f *ComplexFile) Stream() (*stream.SimplexStream, error) {
	if f.Fixture != "" {
		if len(f.Simplices) > 0 {
			return nil, fmt.Errorf("both fixture and simplices given: %w", ErrInvalidInput)
		}
		return f.fixture()
	}
	if len(f.Simplices) == 0 {
		return nil, fmt.Errorf("no simplices: %w", ErrInvalidInput)
	}
	s := stream.NewSimplexStream()
	for i, e := range f.Simplices {
		if len(e.Vertices) == 0 {
			return nil, fmt.Errorf("simplex %d: no vertices: %w", i, ErrInvalidInput)
		}
		if err := s.AddSimplex(e.Value, e.Vertices...); err != nil {
			return nil, fmt.Errorf("simplex %d: %w", i, err)
		}
	}
	if err := s.Finalize(); err != nil {
		return nil, err
	}

	return s, nil
}

func (f *ComplexFile) fixture() (*stream.SimplexStream, error) {
	var ctor builder.Constructor
	switch f.Fixture {
	case "triangle":
		ctor = builder.Triangle()
	case "filled-triangle":
		ctor = builder.FilledTriangle()
	case "circle":
		ctor = builder.Circle(f.Vertices)
	case "sphere":
		ctor = builder.SimplexBoundary(f.Vertices - 1)
	case "octahedron":
		ctor = builder.Octahedron()
	case "torus":
		ctor = builder.Torus()
	case "projective-plane":
		ctor = builder.ProjectivePlane()
	case "zomorodian-carlsson":
		ctor = builder.ZomorodianCarlsson()
	case "random-flag":
		ctor = builder.RandomFlag(f.Vertices, f.Probability)
	default:
		return nil, fmt.Errorf("fixture %q: %w", f.Fixture, ErrInvalidInput)
	}
	opts := []builder.Option{builder.WithSeed(f.Seed)}
	if f.ValueStep > 0 {
		opts = append(opts, builder.WithValueStep(f.ValueStep))
	}

	return builder.BuildStream(opts, ctor)
}

func (f *ComplexFile) subcomplex() func(stream.Simplex) bool {
	if len(f.Subcomplex) == 0 {
		return nil
	}
	in := make(map[stream.Simplex]bool, len(f.Subcomplex))
	for _, vs := range f.Subcomplex {
		in[stream.NewSimplex(vs...)] = true
	}

	return func(s stream.Simplex) bool { return in[s] }
}

// readEvents loads an event file and validates that each event names one action.
func readEvents(path string) ([]Event, error) {
	var f EventFile
	if err := decodeFile(path, &f); err != nil {
		return nil, err
	}
	for i, e := range f.Events {
		if (len(e.Add) == 0) == (len(e.Remove) == 0) {
			return nil, fmt.Errorf("%s: event %d: need exactly one of add or remove: %w", path, i, ErrInvalidInput)
		}
	}

	return f.Events, nil
}
