// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// File is the top-level shape of a problem file.
type File struct {
	Problems []Entry `yaml:"problems"`
}

// Entry is one raw problem as written in the file.
type Entry struct {
	Name   string         `yaml:"name"`
	Method string         `yaml:"method"`
	Params map[string]any `yaml:"params"`
}

// Problem is a decoded, ready-to-run task.
type Problem struct {
	Name   string
	Method Method
	Params Params
}

// New returns a problem for m with the method defaults.
func New(name string, m Method) Problem {
	return Problem{Name: name, Method: m, Params: Defaults(m)}
}

// LoadFile reads and decodes the problem file at path.
func LoadFile(path string) ([]Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open problem file: %w", err)
	}
	defer f.Close()

	problems, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return problems, nil
}

// Decode reads a YAML problem file from r.
//
// Implementation:
//   - Stage 1: unmarshal the document into File.
//   - Stage 2: for each entry, resolve the method and decode params over
//     Defaults(method) with DecodeParams.
//
// Errors:
//   - ErrNoProblems for a file without entries.
//   - ErrUnknownMethod, or a mapstructure decoding error, prefixed with the
//     1-based entry index and name.
func Decode(r io.Reader) ([]Problem, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse problem file: %w", err)
	}
	if len(file.Problems) == 0 {
		return nil, ErrNoProblems
	}

	out := make([]Problem, 0, len(file.Problems))
	for i, e := range file.Problems {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("problem %d", i+1)
		}
		m, err := ParseMethod(e.Method)
		if err != nil {
			return nil, fmt.Errorf("problem %d (%s): %w", i+1, name, err)
		}
		p, err := DecodeParams(m, e.Params)
		if err != nil {
			return nil, fmt.Errorf("problem %d (%s): %w", i+1, name, err)
		}
		out = append(out, Problem{Name: name, Method: m, Params: p})
	}

	return out, nil
}

// DecodeParams overlays raw onto Defaults(m). Values are converted weakly
// ("1e-4" → 1e-4, a single string → one equation); unknown keys are errors.
func DecodeParams(m Method, raw map[string]any) (Params, error) {
	p := Defaults(m)
	if len(raw) == 0 {
		return p, nil
	}
	// mapstructure decodes into existing slice elements; a shorter list
	// must not keep the tail of the default.
	if _, ok := raw["equations"]; ok {
		p.Equations = nil
	}
	if _, ok := raw["guess"]; ok {
		p.Guess = nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Params{}, fmt.Errorf("params decoder: %w", err)
	}
	if err = dec.Decode(raw); err != nil {
		return Params{}, fmt.Errorf("params: %w", err)
	}

	return p, nil
}
