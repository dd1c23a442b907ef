// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitsOps(t *testing.T) {
	a := assert.New(t)
	b := ZeroBits(Binary16)
	a.Equal(Bits("0000000000000000"), b)

	b = b.Toggle(0)
	a.Equal(Bits("1000000000000000"), b)
	a.True(b.Neg())
	a.Equal(Bits("0000000000000000"), b.Toggle(0))

	b = b.SetFrom(6, '1')
	a.Equal(Bits("1000001111111111"), b)
	a.Equal(Bits("1000000000000000"), b.SetFrom(1, '0'))
	a.Equal(Bits("1000001111111110"), b.SetFrom(15, '0'))

	a.Equal(Bits("0111110000000000"), b.Invert())
	a.Equal(b, b.Invert().Invert())
	a.Equal(Bits("1111111111111111"), b.SetAll('1'))
	a.Equal(Bits("0000000000000000"), b.SetAll('0'))

	// the receiver is never changed.
	a.Equal(Bits("1000001111111111"), b)
}

func TestBitsPanics(t *testing.T) {
	a := assert.New(t)
	b := ZeroBits(Binary16)
	a.Panics(func() { b.Toggle(-1) })
	a.Panics(func() { b.Toggle(16) })
	a.Panics(func() { b.SetFrom(16, '1') })
	a.Panics(func() { b.SetFrom(3, 'x') })
	a.Panics(func() { b.SetAll(1) })
	a.Panics(func() { b.Fields(Binary32) })
	a.Panics(func() { ZeroBits(Format{ExpBits: 1, MantBits: 10}) })
}

func TestBitsFields(t *testing.T) {
	a := assert.New(t)
	b := MustEncode("-1.5", Binary32)
	sign, exp, mant := b.Fields(Binary32)
	a.Equal("1", sign)
	a.Equal("01111111", exp)
	a.Equal("10000000000000000000000", mant)
	a.Equal("1 01111111 10000000000000000000000", b.Grouped(Binary32))
}

func TestHex(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		bits string
		hex  string
	}{
		{"0000", "0x0"},
		{"1111", "0xF"},
		{"10000", "0x10"},
		{"00000", "0x00"},
		{"11111", "0x1F"},
		{"0 01111111 00000000000000000000000", "0x3F800000"},
		{"1 11111111 00000000000000000000000", "0xFF800000"},
		{"0 00 01", "0x01"},
		{"0 11111 1111111111", "0x7FFF"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.hex, grouped(test.bits).Hex())
		})
	}
	a.Equal("0x", Bits("").Hex())
}

func TestParseBits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s    string
		f    Format
		bits Bits
		err  string
	}{
		{"0 01111111 00000000000000000000000", Binary32, MustEncode("1", Binary32), ""},
		{"0_01111_0000000000", Binary16, MustEncode("1", Binary16), ""},
		{"0011110000000000", Binary16, MustEncode("1", Binary16), ""},
		{"0 01111 000000000", Binary16, "", `parsing "0 01111 000000000" failed: got 15 bits, want 16 for e5m10`},
		{"0 01121 0000000000", Binary16, "", `parsing "0 01121 0000000000" failed: unexpected symbol '2' at pos 6`},
		{"", Binary16, "", `parsing "" failed: got 0 bits, want 16 for e5m10`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			b, err := ParseBits(test.s, test.f)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.bits, b)
				}
			} else {
				a.EqualError(err, test.err)
				a.True(errors.Is(err, ErrInvalidInput))
				a.Panics(func() {
					MustParseBits(test.s, test.f)
				})
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s    string
		f    Format
		bits Bits
		err  string
	}{
		{"0x3F800000", Binary32, MustEncode("1", Binary32), ""},
		{"0X3f80_0000", Binary32, MustEncode("1", Binary32), ""},
		{"3C00", Binary16, MustEncode("1", Binary16), ""},
		{" 0x0 ", Binary16, ZeroBits(Binary16), ""},
		{"0x1F", MustFormat(2, 2), "11111", ""},
		{"0x20", MustFormat(2, 2), "", `parsing "0x20" failed: value does not fit 5 bits`},
		{"0x", Binary16, "", `parsing "0x" failed: not a hexadecimal number`},
		{"0xZZ", Binary16, "", `parsing "0xZZ" failed: not a hexadecimal number`},
		{"-0x1", Binary16, "", `parsing "-0x1" failed: not a hexadecimal number`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			b, err := ParseHex(test.s, test.f)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.bits, b)
					a.Equal(b, MustParseBits(b.Grouped(test.f), test.f))
				}
			} else {
				a.EqualError(err, test.err)
			}
		})
	}
}
