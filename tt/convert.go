//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tt

import (
	"github.com/pkg/errors"
)

// ErrWidthMismatch is returned when a conversion would lose set bits.
var ErrWidthMismatch = errors.New("truth table width mismatch")

// Convert converts the table src into a dynamic table of numVars
// variables. Bit b of src is bit b of the result. When the result is
// wider than src, the extra bits are zero. When it is narrower, all
// src bits above the result width must be clear.
func Convert(src Table, numVars int) (*Dynamic, error) {
	if numVars < 0 {
		return nil, errors.Errorf("invalid truth table width %d", numVars)
	}
	dst := NewDynamic(numVars)
	for b := 0; b < src.NumBits(); b++ {
		if !src.Bit(b) {
			continue
		}
		if b >= dst.NumBits() {
			return nil, errors.Wrapf(ErrWidthMismatch,
				"bit %d set in %d-variable table, target has %d variables",
				b, src.NumVars(), numVars)
		}
		dst.SetBit(b)
	}
	return dst, nil
}

// ToStatic converts the table src into a static table of numVars
// variables with the same rules as Convert.
func ToStatic(src Table, numVars int) (Static, error) {
	if numVars < 0 || numVars > MaxStaticVars {
		return Static{}, errors.Errorf("invalid static truth table width %d",
			numVars)
	}
	dst := NewStatic(numVars)
	for b := 0; b < src.NumBits(); b++ {
		if !src.Bit(b) {
			continue
		}
		if b >= dst.NumBits() {
			return Static{}, errors.Wrapf(ErrWidthMismatch,
				"bit %d set in %d-variable table, target has %d variables",
				b, src.NumVars(), numVars)
		}
		dst.SetBit(b)
	}
	return dst, nil
}
