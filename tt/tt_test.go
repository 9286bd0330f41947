//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tt

import (
	"testing"

	"github.com/pkg/errors"
)

var binaryTests = []struct {
	numVars int
	bits    uint64
	binary  string
	hex     string
}{
	{
		numVars: 1,
		bits:    0x1,
		binary:  "01",
		hex:     "1",
	},
	{
		numVars: 2,
		bits:    0x8,
		binary:  "1000",
		hex:     "8",
	},
	{
		numVars: 2,
		bits:    0x6,
		binary:  "0110",
		hex:     "6",
	},
	{
		numVars: 3,
		bits:    0x96,
		binary:  "10010110",
		hex:     "96",
	},
	{
		numVars: 4,
		bits:    0x8001,
		binary:  "1000000000000001",
		hex:     "8001",
	},
}

func TestBinary(t *testing.T) {
	for idx, test := range binaryTests {
		s := StaticFromBits(test.numVars, test.bits)
		if got := Binary(s); got != test.binary {
			t.Errorf("test-%d: Binary=%s, expected %s", idx, got, test.binary)
		}
		if got := Hex(s); got != test.hex {
			t.Errorf("test-%d: Hex=%s, expected %s", idx, got, test.hex)
		}
		d, err := ParseBinary(test.binary)
		if err != nil {
			t.Fatalf("test-%d: ParseBinary failed: %v", idx, err)
		}
		if !Equal(s, d) {
			t.Errorf("test-%d: ParseBinary=%s, expected %s", idx, d, s)
		}
	}
}

func TestParseHex(t *testing.T) {
	d, err := ParseHex("e8")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if d.NumVars() != 3 {
		t.Fatalf("NumVars=%d, expected 3", d.NumVars())
	}
	if d.Binary() != "11101000" {
		t.Errorf("Binary=%s, expected 11101000", d.Binary())
	}
	if d.Hex() != "e8" {
		t.Errorf("Hex=%s, expected e8", d.Hex())
	}

	wide, err := ParseHex("0123456789abcdef0123456789ABCDEF")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if wide.NumVars() != 7 {
		t.Fatalf("NumVars=%d, expected 7", wide.NumVars())
	}
	if wide.Hex() != "0123456789abcdef0123456789abcdef" {
		t.Errorf("Hex=%s", wide.Hex())
	}

	for _, input := range []string{"", "abc", "x8"} {
		if _, err := ParseHex(input); err == nil {
			t.Errorf("ParseHex(%q) succeeded", input)
		}
	}
	for _, input := range []string{"", "101", "1020"} {
		if _, err := ParseBinary(input); err == nil {
			t.Errorf("ParseBinary(%q) succeeded", input)
		}
	}
}

func TestConvert(t *testing.T) {
	for k := 2; k <= 5; k++ {
		for _, bits := range []uint64{0, 1, 0x8, 0x96, 0xdeadbeef} {
			src := StaticFromBits(k, bits)
			dst, err := Convert(src, k)
			if err != nil {
				t.Fatalf("k=%d: Convert failed: %v", k, err)
			}
			if dst.NumBits() != src.NumBits() {
				t.Fatalf("k=%d: NumBits=%d, expected %d",
					k, dst.NumBits(), src.NumBits())
			}
			for b := 0; b < src.NumBits(); b++ {
				if src.Bit(b) != dst.Bit(b) {
					t.Errorf("k=%d, bits=%x: bit %d differs", k, bits, b)
				}
			}
		}
	}
}

func TestConvertWiden(t *testing.T) {
	dst, err := Convert(StaticFromBits(2, 0x8), 3)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if dst.Binary() != "00001000" {
		t.Errorf("Binary=%s, expected 00001000", dst.Binary())
	}
}

func TestConvertNarrow(t *testing.T) {
	dst, err := Convert(StaticFromBits(3, 0x8), 2)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if dst.Binary() != "1000" {
		t.Errorf("Binary=%s, expected 1000", dst.Binary())
	}

	_, err = Convert(StaticFromBits(3, 0x80), 2)
	if !errors.Is(err, ErrWidthMismatch) {
		t.Errorf("Convert returned %v, expected ErrWidthMismatch", err)
	}
	_, err = ToStatic(StaticFromBits(3, 0x10), 2)
	if !errors.Is(err, ErrWidthMismatch) {
		t.Errorf("ToStatic returned %v, expected ErrWidthMismatch", err)
	}
}

func TestCompose(t *testing.T) {
	a := Nth(3, 0)
	b := Nth(3, 1)
	c := Nth(3, 2)

	and := StaticFromBits(2, 0x8)
	xor := StaticFromBits(2, 0x6)

	ab := Compose(and, []*Dynamic{a, b})
	if ab.Binary() != "10001000" {
		t.Errorf("a&b=%s", ab.Binary())
	}
	parity := Compose(xor, []*Dynamic{Compose(xor, []*Dynamic{a, b}), c})
	if parity.Hex() != "96" {
		t.Errorf("a^b^c=%s, expected 96", parity.Hex())
	}
	maj := Compose(StaticFromBits(3, 0xe8), []*Dynamic{a, b, c})
	if maj.Hex() != "e8" {
		t.Errorf("maj=%s, expected e8", maj.Hex())
	}
}
