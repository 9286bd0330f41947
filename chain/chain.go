//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package chain implements Boolean chains: circuits of primary inputs
// and an ordered sequence of steps where every step has the same
// fanin arity.
package chain

import (
	"fmt"

	"github.com/markkurossi/esyn/spec"
	"github.com/markkurossi/esyn/tt"
	"github.com/pkg/errors"
)

// Supported fanin arities.
const (
	MinFanin = 2
	MaxFanin = 5
)

// Chain specifies a Boolean chain. Node IDs below NumInputs are primary
// inputs and ID NumInputs+i is the output of step i.
type Chain struct {
	numInputs int
	fanin     int
	steps     [][]int
	operators []tt.Static
	outputs   []int
}

// New creates an empty chain with numInputs primary inputs and the
// fanin arity fanin.
func New(numInputs, fanin int) (*Chain, error) {
	c := new(Chain)
	if err := c.Reset(numInputs, fanin); err != nil {
		return nil, err
	}
	return c, nil
}

// Reset clears the chain and sets its primary input count and fanin
// arity.
func (c *Chain) Reset(numInputs, fanin int) error {
	if fanin < MinFanin || fanin > MaxFanin {
		return errors.Errorf("unsupported fanin size %d", fanin)
	}
	if numInputs < 0 {
		return errors.Errorf("invalid number of inputs %d", numInputs)
	}
	c.numInputs = numInputs
	c.fanin = fanin
	c.Clear()
	return nil
}

// Clear removes all steps and outputs from the chain.
func (c *Chain) Clear() {
	c.steps = c.steps[:0]
	c.operators = c.operators[:0]
	c.outputs = c.outputs[:0]
}

func (c *Chain) String() string {
	return fmt.Sprintf("#in=%d k=%d #steps=%d #out=%d",
		c.numInputs, c.fanin, len(c.steps), len(c.outputs))
}

// NumInputs returns the number of primary inputs.
func (c *Chain) NumInputs() int {
	return c.numInputs
}

// FaninSize returns the fanin arity of the chain steps.
func (c *Chain) FaninSize() int {
	return c.fanin
}

// NumNodes returns the number of steps.
func (c *Chain) NumNodes() int {
	return len(c.steps)
}

// NumOutputs returns the number of designated outputs.
func (c *Chain) NumOutputs() int {
	return len(c.outputs)
}

// Outputs returns the node IDs of the chain outputs.
func (c *Chain) Outputs() []int {
	return c.outputs
}

// Fanin returns the fanin IDs of step i.
func (c *Chain) Fanin(i int) []int {
	return c.steps[i]
}

// Operator returns the operator of step i.
func (c *Chain) Operator(i int) tt.Table {
	return c.operators[i]
}

// StaticOperator returns the fixed-width operator of step i.
func (c *Chain) StaticOperator(i int) tt.Static {
	return c.operators[i]
}

// AddStep adds a new step with the fanin IDs and operator op. The
// function returns the node ID of the step output.
func (c *Chain) AddStep(fanin []int, op tt.Static) (int, error) {
	if len(fanin) != c.fanin {
		return 0, errors.Errorf("step has %d fanins, chain fanin size is %d",
			len(fanin), c.fanin)
	}
	if op.NumVars() != c.fanin {
		return 0, errors.Errorf("operator has %d variables, expected %d",
			op.NumVars(), c.fanin)
	}
	id := c.numInputs + len(c.steps)
	for _, f := range fanin {
		if f < 0 || f >= id {
			return 0, errors.Errorf("step %d: invalid fanin %d", len(c.steps), f)
		}
	}
	step := make([]int, len(fanin))
	copy(step, fanin)
	c.steps = append(c.steps, step)
	c.operators = append(c.operators, op)
	return id, nil
}

// AddOutput designates the node id as a chain output.
func (c *Chain) AddOutput(id int) error {
	if id < 0 || id >= c.numInputs+len(c.steps) {
		return errors.Errorf("invalid output node %d", id)
	}
	c.outputs = append(c.outputs, id)
	return nil
}

// ForeachVertex calls fn for each step in creation order.
func (c *Chain) ForeachVertex(fn func(fanin []int, i int)) {
	for i, step := range c.steps {
		fn(step, i)
	}
}

// ForeachFanin calls fn for each fanin ID of the step.
func (c *Chain) ForeachFanin(step []int, fn func(id, j int)) {
	for j, id := range step {
		fn(id, j)
	}
}

// Simulate computes the functions of all chain nodes over the primary
// inputs. The result has one table per node, primary inputs first.
func (c *Chain) Simulate() []*tt.Dynamic {
	values := make([]*tt.Dynamic, 0, c.numInputs+len(c.steps))
	for i := 0; i < c.numInputs; i++ {
		values = append(values, tt.Nth(c.numInputs, i))
	}
	args := make([]*tt.Dynamic, c.fanin)
	c.ForeachVertex(func(step []int, i int) {
		c.ForeachFanin(step, func(id, j int) {
			args[j] = values[id]
		})
		values = append(values, tt.Compose(c.operators[i], args))
	})
	return values
}

// SatisfiesSpec tests if the chain outputs compute the functions of
// the specification s.
func (c *Chain) SatisfiesSpec(s *spec.Spec) bool {
	if s.NumInputs != c.numInputs || len(s.Functions) != len(c.outputs) {
		return false
	}
	if c.numInputs == 0 {
		return false
	}
	values := c.Simulate()
	for idx, out := range c.outputs {
		if s.Functions[idx] == nil || !tt.Equal(values[out], s.Functions[idx]) {
			return false
		}
	}
	return true
}
