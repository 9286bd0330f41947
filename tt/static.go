//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tt

import (
	"fmt"
)

// MaxStaticVars is the maximum number of variables for Static truth
// tables.
const MaxStaticVars = 6

// Static implements a fixed-width truth table. The width is selected
// when the table is created and it is used for the operators of
// chains where every step has the same fanin arity.
type Static struct {
	numVars int
	bits    uint64
}

// NewStatic creates a new all-zero static truth table of numVars
// variables.
func NewStatic(numVars int) Static {
	if numVars < 0 || numVars > MaxStaticVars {
		panic(fmt.Sprintf("invalid static truth table width %d", numVars))
	}
	return Static{
		numVars: numVars,
	}
}

// StaticFromBits creates a static truth table of numVars variables
// from the bit vector bits. Bits above the table width are ignored.
func StaticFromBits(numVars int, bits uint64) Static {
	t := NewStatic(numVars)
	t.bits = bits & t.mask()
	return t
}

func (t Static) mask() uint64 {
	if t.numVars == MaxStaticVars {
		return ^uint64(0)
	}
	return (uint64(1) << (uint(1) << uint(t.numVars))) - 1
}

// NumVars implements Table.NumVars.
func (t Static) NumVars() int {
	return t.numVars
}

// NumBits implements Table.NumBits.
func (t Static) NumBits() int {
	return 1 << uint(t.numVars)
}

// Bit implements Table.Bit.
func (t Static) Bit(i int) bool {
	return t.bits&(uint64(1)<<uint(i)) != 0
}

// SetBit sets bit i of the table.
func (t *Static) SetBit(i int) {
	if i < 0 || i >= t.NumBits() {
		panic(fmt.Sprintf("bit %d out of range for %d-bit table",
			i, t.NumBits()))
	}
	t.bits |= uint64(1) << uint(i)
}

// Bits returns the table contents as a bit vector.
func (t Static) Bits() uint64 {
	return t.bits
}

func (t Static) String() string {
	return Binary(t)
}
