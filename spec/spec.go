//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package spec defines synthesis specifications.
package spec

import (
	"fmt"
	"io"

	"github.com/markkurossi/esyn/tt"
	"github.com/pkg/errors"
)

// Spec specifies the functions to synthesize. The function tables
// are shared with the value that created the Spec: a Spec never
// copies or modifies them.
type Spec struct {
	NumInputs int
	Functions []*tt.Dynamic
}

// New creates a new specification with numInputs inputs and
// numOutputs unset functions.
func New(numInputs, numOutputs int) *Spec {
	return &Spec{
		NumInputs: numInputs,
		Functions: make([]*tt.Dynamic, numOutputs),
	}
}

// ForFunction creates a single-output specification for the function
// f. The number of inputs is the number of variables of f.
func ForFunction(f *tt.Dynamic) *Spec {
	s := New(f.NumVars(), 1)
	s.Functions[0] = f
	return s
}

// Load parses the truth table string either as hex or as a binary
// string.
func Load(truthTable string, binary bool) (*tt.Dynamic, error) {
	var f *tt.Dynamic
	var err error
	if binary {
		f, err = tt.ParseBinary(truthTable)
	} else {
		f, err = tt.ParseHex(truthTable)
	}
	if err != nil {
		return nil, errors.Wrap(err, "invalid truth table")
	}
	return f, nil
}

// NumOutputs returns the number of output functions.
func (s *Spec) NumOutputs() int {
	return len(s.Functions)
}

// Validate checks that all functions are set and that they match the
// number of inputs.
func (s *Spec) Validate() error {
	if len(s.Functions) == 0 {
		return errors.New("specification has no functions")
	}
	for idx, f := range s.Functions {
		if f == nil {
			return errors.Errorf("function f_%d not set", idx+1)
		}
		if f.NumVars() != s.NumInputs {
			return errors.Errorf("function f_%d has %d variables, expected %d",
				idx+1, f.NumVars(), s.NumInputs)
		}
	}
	return nil
}

// Describe returns a short description of the specification.
func (s *Spec) Describe() string {
	var hex string
	if len(s.Functions) > 0 && s.Functions[0] != nil {
		hex = s.Functions[0].Hex()
	}
	return fmt.Sprintf("(%d, %d, %s)", s.NumInputs, s.NumOutputs(), hex)
}

// Print prints the specification to out.
func (s *Spec) Print(out io.Writer) {
	fmt.Fprintf(out, "SPECIFICATION\n")
	fmt.Fprintf(out, "Nr. inputs = %d\n", s.NumInputs)
	fmt.Fprintf(out, "Nr. outputs = %d\n", s.NumOutputs())
	for idx, f := range s.Functions {
		if f == nil {
			continue
		}
		fmt.Fprintf(out, "f_%d = %s (hex) -- %s (bin)\n",
			idx+1, f.Hex(), f.Binary())
	}
}
