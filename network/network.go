//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package network implements arity-erased logic networks. A network
// stores the result of an exact synthesis independently of the fanin
// arity the chain was synthesized with.
package network

import (
	"fmt"

	"github.com/markkurossi/esyn/tt"
	"github.com/pkg/errors"
)

// ErrEmptyChain is returned when normalizing a chain without steps.
var ErrEmptyChain = errors.New("chain has no steps")

// Node specifies a network node. The operator has 2^len(Fanin) bits.
type Node struct {
	Fanin []int
	Op    *tt.Dynamic
}

// Network specifies an arity-erased logic network. Node IDs below
// NumInputs are primary inputs and ID NumInputs+i is node i. A node
// may only reference primary inputs and earlier nodes.
type Network struct {
	numInputs int
	nodes     []Node
	outputs   []int
}

// New creates a new network from the nodes and outputs. The function
// checks the network invariants.
func New(numInputs int, nodes []Node, outputs []int) (*Network, error) {
	if numInputs < 0 {
		return nil, errors.Errorf("invalid number of inputs %d", numInputs)
	}
	for i, n := range nodes {
		if n.Op == nil {
			return nil, errors.Errorf("node %d: operator not set", i)
		}
		if n.Op.NumVars() != len(n.Fanin) {
			return nil, errors.Errorf("node %d: %d-variable operator for %d fanins",
				i, n.Op.NumVars(), len(n.Fanin))
		}
		for _, f := range n.Fanin {
			if f < 0 || f >= numInputs+i {
				return nil, errors.Errorf("node %d: invalid fanin %d", i, f)
			}
		}
	}
	for _, o := range outputs {
		if o < 0 || o >= numInputs+len(nodes) {
			return nil, errors.Errorf("invalid output node %d", o)
		}
	}
	return &Network{
		numInputs: numInputs,
		nodes:     nodes,
		outputs:   outputs,
	}, nil
}

// NumInputs returns the number of primary inputs.
func (n *Network) NumInputs() int {
	return n.numInputs
}

// NumNodes returns the number of nodes.
func (n *Network) NumNodes() int {
	return len(n.nodes)
}

// NumOutputs returns the number of outputs.
func (n *Network) NumOutputs() int {
	return len(n.outputs)
}

// Node returns node i.
func (n *Network) Node(i int) Node {
	return n.nodes[i]
}

// Fanin returns the fanin IDs of node i.
func (n *Network) Fanin(i int) []int {
	return n.nodes[i].Fanin
}

// Operator returns the operator of node i.
func (n *Network) Operator(i int) tt.Table {
	return n.nodes[i].Op
}

// FaninSize returns the common fanin size of the network nodes. It
// returns 0 if the network has no nodes or if the fanin sizes of its
// nodes differ.
func (n *Network) FaninSize() int {
	if len(n.nodes) == 0 {
		return 0
	}
	k := len(n.nodes[0].Fanin)
	for _, node := range n.nodes[1:] {
		if len(node.Fanin) != k {
			return 0
		}
	}
	return k
}

// Outputs returns the output node IDs.
func (n *Network) Outputs() []int {
	return n.outputs
}

// Describe returns a short description of the network.
func (n *Network) Describe() string {
	return fmt.Sprintf("(%d, %d, %d)", n.numInputs, len(n.nodes),
		len(n.outputs))
}

func (n *Network) String() string {
	return fmt.Sprintf("#in=%d #nodes=%d #out=%d", n.numInputs, len(n.nodes),
		len(n.outputs))
}

// Simulate computes the functions of all network nodes over the
// primary inputs, primary inputs first.
func (n *Network) Simulate() []*tt.Dynamic {
	values := make([]*tt.Dynamic, 0, n.numInputs+len(n.nodes))
	for i := 0; i < n.numInputs; i++ {
		values = append(values, tt.Nth(n.numInputs, i))
	}
	for _, node := range n.nodes {
		args := make([]*tt.Dynamic, len(node.Fanin))
		for j, f := range node.Fanin {
			args[j] = values[f]
		}
		values = append(values, tt.Compose(node.Op, args))
	}
	return values
}
