//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package network

import (
	"github.com/markkurossi/esyn/chain"
	"github.com/markkurossi/esyn/tt"
	"github.com/pkg/errors"
)

// Normalize converts the fixed-arity chain c into an arity-erased
// network. The fanin tuples are copied verbatim and the operators are
// converted into dynamic truth tables of 2^len(fanin) bits.
func Normalize(c *chain.Chain) (*Network, error) {
	if c.NumNodes() == 0 {
		return nil, ErrEmptyChain
	}
	n := &Network{
		numInputs: c.NumInputs(),
		nodes:     make([]Node, 0, c.NumNodes()),
	}

	var err error
	c.ForeachVertex(func(step []int, i int) {
		if err != nil {
			return
		}
		var fanin []int
		c.ForeachFanin(step, func(id, j int) {
			fanin = append(fanin, id)
		})
		var op *tt.Dynamic
		op, err = tt.Convert(c.Operator(i), len(fanin))
		if err != nil {
			err = errors.Wrapf(err, "step %d", i)
			return
		}
		n.nodes = append(n.nodes, Node{
			Fanin: fanin,
			Op:    op,
		})
	})
	if err != nil {
		return nil, err
	}
	n.outputs = append(n.outputs, c.Outputs()...)

	return n, nil
}
