//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package tt implements truth tables for Boolean functions. A truth
// table of n variables has 2^n bits and bit t holds the function
// value for the input assignment t, variable 0 being the least
// significant bit of t.
package tt

import (
	"strings"
)

// Table defines the read-only view shared by the fixed and dynamic
// width truth tables.
type Table interface {
	// NumVars returns the number of function variables.
	NumVars() int
	// NumBits returns the number of bits in the table, 2^NumVars.
	NumBits() int
	// Bit returns the value of bit i.
	Bit(i int) bool
}

// Binary formats the table as a binary string, most significant bit
// first.
func Binary(t Table) string {
	var sb strings.Builder
	for i := t.NumBits() - 1; i >= 0; i-- {
		if t.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Hex formats the table as a hex string, most significant nibble
// first. Tables with less than four bits are formatted as one digit.
func Hex(t Table) string {
	numBits := t.NumBits()
	digits := numBits / 4
	if digits == 0 {
		digits = 1
	}
	var sb strings.Builder
	for d := digits - 1; d >= 0; d-- {
		var v int
		for b := 3; b >= 0; b-- {
			i := d*4 + b
			v <<= 1
			if i < numBits && t.Bit(i) {
				v |= 1
			}
		}
		sb.WriteByte("0123456789abcdef"[v])
	}
	return sb.String()
}

// Equal tests if the tables a and b have the same width and the same
// bit contents.
func Equal(a, b Table) bool {
	if a.NumVars() != b.NumVars() {
		return false
	}
	for i := 0; i < a.NumBits(); i++ {
		if a.Bit(i) != b.Bit(i) {
			return false
		}
	}
	return true
}
