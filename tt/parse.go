//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tt

import (
	"github.com/pkg/errors"
)

// log2 returns the base-2 logarithm of n if n is a power of two.
func log2(n int) (int, bool) {
	if n <= 0 || n&(n-1) != 0 {
		return 0, false
	}
	var l int
	for n > 1 {
		n >>= 1
		l++
	}
	return l, true
}

// ParseBinary parses a binary truth table string, most significant bit
// first. The string length must be a power of two and it defines the
// number of variables.
func ParseBinary(s string) (*Dynamic, error) {
	numVars, ok := log2(len(s))
	if !ok {
		return nil, errors.Errorf("invalid binary truth table length %d",
			len(s))
	}
	t := NewDynamic(numVars)
	for i, ch := range []byte(s) {
		bit := len(s) - 1 - i
		switch ch {
		case '0':
		case '1':
			t.SetBit(bit)
		default:
			return nil, errors.Errorf("invalid binary digit '%c' in '%s'",
				ch, s)
		}
	}
	return t, nil
}

// ParseHex parses a hex truth table string, most significant nibble
// first. Each digit holds four bits so the number of variables is
// log2(4*len(s)).
func ParseHex(s string) (*Dynamic, error) {
	numVars, ok := log2(len(s) * 4)
	if !ok {
		return nil, errors.Errorf("invalid hex truth table length %d", len(s))
	}
	t := NewDynamic(numVars)
	for i, ch := range []byte(s) {
		var v int
		switch {
		case '0' <= ch && ch <= '9':
			v = int(ch - '0')
		case 'a' <= ch && ch <= 'f':
			v = int(ch-'a') + 10
		case 'A' <= ch && ch <= 'F':
			v = int(ch-'A') + 10
		default:
			return nil, errors.Errorf("invalid hex digit '%c' in '%s'", ch, s)
		}
		base := (len(s) - 1 - i) * 4
		for b := 0; b < 4; b++ {
			if v&(1<<uint(b)) != 0 {
				t.SetBit(base + b)
			}
		}
	}
	return t, nil
}
