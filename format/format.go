//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package format implements the textual circuit formats: the native
// debug listing and the IWLS 2018 contest format.
package format

import (
	"io"

	"github.com/markkurossi/esyn/tt"
	"github.com/pkg/errors"
)

// Errors returned by the serializers.
var (
	ErrOutputCount      = errors.New("IWLS format requires exactly one output")
	ErrUnsupportedFanin = errors.New("unsupported fanin size")
	ErrSyntax           = errors.New("syntax error")
)

// Listing defines the circuit view the serializers need. It is
// implemented by chains and networks.
type Listing interface {
	NumInputs() int
	NumNodes() int
	Fanin(i int) []int
	Operator(i int) tt.Table
}

// Circuit defines a fixed-arity circuit with designated outputs. It
// is implemented by chains and normalized networks.
type Circuit interface {
	Listing
	FaninSize() int
	NumOutputs() int
}

// Symbol returns the display symbol of the node id in a circuit of
// numInputs primary inputs. Primary inputs are lowercase letters from
// 'a' and nodes uppercase letters from 'A'+numInputs. Circuits
// with more than 26 inputs and nodes run out of letters and get
// colliding symbols.
func Symbol(id, numInputs int) byte {
	if id < numInputs {
		return byte('a' + id)
	}
	return byte('A' + id)
}

// Marshal writes the circuit l in the named format: "native", "iwls",
// or "dot".
func Marshal(out io.Writer, l Listing, name string) error {
	switch name {
	case "native":
		return WriteNative(out, l)
	case "iwls":
		c, ok := l.(Circuit)
		if !ok {
			return errors.Errorf("IWLS format requires a circuit, got %T", l)
		}
		return WriteIWLS(out, c)
	case "dot":
		return WriteDot(out, l)
	default:
		return errors.Errorf("unsupported circuit format: %s", name)
	}
}
