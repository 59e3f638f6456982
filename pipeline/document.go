// Package pipeline compiles YAML pipeline documents into lazy integer
// sequences and runs them.
//
// A document names one source, a list of stages applied in order and one
// terminal operation:
//
//	source:
//	  generate: {seed: 0, step: 1}
//	stages:
//	  - takeWhile: le:100
//	terminal: sum
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the decoded form of a pipeline file.
type Document struct {
	Source   Source  `yaml:"source"`
	Stages   []Stage `yaml:"stages"`
	Terminal string  `yaml:"terminal"`
}

// Source selects where elements come from. Exactly one field must be set.
type Source struct {
	Range    *RangeSource    `yaml:"range,omitempty"`
	Generate *GenerateSource `yaml:"generate,omitempty"`
	Values   []int64         `yaml:"values,omitempty"`
}

// RangeSource yields From up to but excluding To.
type RangeSource struct {
	From int64 `yaml:"from"`
	To   int64 `yaml:"to"`
}

// GenerateSource yields Seed, Seed+Step, ... without end.
type GenerateSource struct {
	Seed int64 `yaml:"seed"`
	Step int64 `yaml:"step"`
}

// Stage is one intermediate operation. Exactly one field must be set.
type Stage struct {
	Map       string `yaml:"map,omitempty"`
	Filter    string `yaml:"filter,omitempty"`
	TakeWhile string `yaml:"takeWhile,omitempty"`
	DropWhile string `yaml:"dropWhile,omitempty"`
	Take      *int   `yaml:"take,omitempty"`
	Drop      *int   `yaml:"drop,omitempty"`
	Distinct  bool   `yaml:"distinct,omitempty"`
}

// Parse decodes a document from r. Unknown keys are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("pipeline: empty document")
		}
		return nil, fmt.Errorf("pipeline: decode: %w", err)
	}
	return &doc, nil
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// String renders the stage as name(argument), e.g. "map(square)".
func (s Stage) String() string {
	switch {
	case s.Map != "":
		return "map(" + s.Map + ")"
	case s.Filter != "":
		return "filter(" + s.Filter + ")"
	case s.TakeWhile != "":
		return "takeWhile(" + s.TakeWhile + ")"
	case s.DropWhile != "":
		return "dropWhile(" + s.DropWhile + ")"
	case s.Take != nil:
		return fmt.Sprintf("take(%d)", *s.Take)
	case s.Drop != nil:
		return fmt.Sprintf("drop(%d)", *s.Drop)
	case s.Distinct:
		return "distinct"
	}
	return "empty"
}

func (s Stage) fieldCount() int {
	n := 0
	for _, set := range []bool{
		s.Map != "", s.Filter != "", s.TakeWhile != "", s.DropWhile != "",
		s.Take != nil, s.Drop != nil, s.Distinct,
	} {
		if set {
			n++
		}
	}
	return n
}

func (s Stage) bounds() bool {
	return s.TakeWhile != "" || s.Take != nil
}
