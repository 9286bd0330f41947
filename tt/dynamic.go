//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tt

import (
	"fmt"
)

// Dynamic implements a truth table whose width is selected at run
// time.
type Dynamic struct {
	numVars int
	words   []uint64
}

// NewDynamic creates a new all-zero truth table of numVars variables.
func NewDynamic(numVars int) *Dynamic {
	if numVars < 0 {
		panic(fmt.Sprintf("invalid truth table width %d", numVars))
	}
	numWords := (1<<uint(numVars) + 63) / 64
	return &Dynamic{
		numVars: numVars,
		words:   make([]uint64, numWords),
	}
}

// Nth creates the projection function of variable v over numVars
// variables.
func Nth(numVars, v int) *Dynamic {
	t := NewDynamic(numVars)
	for i := 0; i < t.NumBits(); i++ {
		if i&(1<<uint(v)) != 0 {
			t.SetBit(i)
		}
	}
	return t
}

// NumVars implements Table.NumVars.
func (t *Dynamic) NumVars() int {
	return t.numVars
}

// NumBits implements Table.NumBits.
func (t *Dynamic) NumBits() int {
	return 1 << uint(t.numVars)
}

// Bit implements Table.Bit.
func (t *Dynamic) Bit(i int) bool {
	return t.words[i/64]&(uint64(1)<<uint(i%64)) != 0
}

// SetBit sets bit i of the table.
func (t *Dynamic) SetBit(i int) {
	if i < 0 || i >= t.NumBits() {
		panic(fmt.Sprintf("bit %d out of range for %d-bit table",
			i, t.NumBits()))
	}
	t.words[i/64] |= uint64(1) << uint(i%64)
}

// ClearBit clears bit i of the table.
func (t *Dynamic) ClearBit(i int) {
	t.words[i/64] &^= uint64(1) << uint(i%64)
}

// Clone creates an independent copy of the table.
func (t *Dynamic) Clone() *Dynamic {
	words := make([]uint64, len(t.words))
	copy(words, t.words)
	return &Dynamic{
		numVars: t.numVars,
		words:   words,
	}
}

// Binary returns the table as a binary string, most significant bit
// first.
func (t *Dynamic) Binary() string {
	return Binary(t)
}

// Hex returns the table as a hex string, most significant nibble
// first.
func (t *Dynamic) Hex() string {
	return Hex(t)
}

func (t *Dynamic) String() string {
	return Binary(t)
}

// Compose computes the function of a gate with the operator op whose
// fanin functions are args: bit t of the result is the bit of op
// indexed by the values of args at bit t, args[0] being the least
// significant index bit. All args must have the same width.
func Compose(op Table, args []*Dynamic) *Dynamic {
	if len(args) != op.NumVars() {
		panic(fmt.Sprintf("operator of %d variables applied to %d arguments",
			op.NumVars(), len(args)))
	}
	if len(args) == 0 {
		panic("compose without arguments")
	}
	result := NewDynamic(args[0].numVars)
	for t := 0; t < result.NumBits(); t++ {
		var p int
		for m, arg := range args {
			if arg.Bit(t) {
				p |= 1 << uint(m)
			}
		}
		if op.Bit(p) {
			result.SetBit(t)
		}
	}
	return result
}
