// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"fmt"
	"math/big"
	"strings"

	su "github.com/avdva/floatbits/internal/strutil"
)

// Bits is a bit pattern of a floating-point number, one '0' or '1' per bit.
// The most significant bit (the sign) goes first.
// Bits values are immutable, all the methods return a new pattern.
type Bits string

// ZeroBits returns an all-zero bit pattern for given format.
func ZeroBits(f Format) Bits {
	f.mustBeValid()
	return Bits(strings.Repeat("0", f.TotalBits()))
}

// ParseBits parses a bit string for given format.
// Spaces and underscores between bits are ignored, so the output of Grouped is accepted.
func ParseBits(s string, f Format) (Bits, error) {
	var b strings.Builder
	for i, r := range s {
		switch r {
		case '0', '1':
			b.WriteRune(r)
		case ' ', '_':
		default:
			return "", newInputError(s, &su.PosError{Err: fmt.Sprintf("unexpected symbol %q", r), Pos: i + 1})
		}
	}
	if b.Len() != f.TotalBits() {
		return "", newInputError(s, fmt.Errorf("got %d bits, want %d for %s", b.Len(), f.TotalBits(), f))
	}
	return Bits(b.String()), nil
}

// ParseHex parses a hexadecimal number with an optional `0x` prefix into a bit pattern for given format.
func ParseHex(s string, f Format) (Bits, error) {
	h := strings.TrimSpace(s)
	if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}
	h = strings.ReplaceAll(h, "_", "")
	n, ok := new(big.Int).SetString(h, 16)
	if !ok || n.Sign() < 0 {
		return "", newInputError(s, fmt.Errorf("not a hexadecimal number"))
	}
	if n.BitLen() > f.TotalBits() {
		return "", newInputError(s, fmt.Errorf("value does not fit %d bits", f.TotalBits()))
	}
	return Bits(su.PadLeft(n.Text(2), '0', f.TotalBits())), nil
}

// MustParseBits is like ParseBits, but panics on error.
func MustParseBits(s string, f Format) Bits {
	b, err := ParseBits(s, f)
	if err != nil {
		panic(err)
	}
	return b
}

// Fields splits b into sign, exponent, and mantissa fields.
func (b Bits) Fields(f Format) (sign, exp, mant string) {
	b.mustMatch(f)
	s := string(b)
	return s[:1], s[1 : 1+f.ExpBits], s[1+f.ExpBits:]
}

// Neg returns true, if the sign bit is set.
func (b Bits) Neg() bool {
	return len(b) > 0 && b[0] == '1'
}

// Toggle flips the bit at index i.
func (b Bits) Toggle(i int) Bits {
	b.mustHaveIndex(i)
	buf := []byte(b)
	buf[i] ^= '0' ^ '1'
	return Bits(buf)
}

// SetFrom sets all bits in [i, len(b)) to v.
func (b Bits) SetFrom(i int, v byte) Bits {
	b.mustHaveIndex(i)
	mustBeBit(v)
	return b[:i] + Bits(strings.Repeat(string(v), len(b)-i))
}

// SetAll sets all the bits to v.
func (b Bits) SetAll(v byte) Bits {
	mustBeBit(v)
	return Bits(strings.Repeat(string(v), len(b)))
}

// Invert flips all the bits.
func (b Bits) Invert() Bits {
	buf := []byte(b)
	for i := range buf {
		buf[i] ^= '0' ^ '1'
	}
	return Bits(buf)
}

// Grouped returns b with the fields separated by spaces, like `0 01111111 00000000000000000000000`.
func (b Bits) Grouped(f Format) string {
	sign, exp, mant := b.Fields(f)
	return sign + " " + exp + " " + mant
}

// Hex returns an uppercase hexadecimal representation of b, like `0x3F800000`.
// It is zero-padded to ceil(len(b)/4) digits.
func (b Bits) Hex() string {
	if len(b) == 0 {
		return "0x"
	}
	return "0x" + strings.ToUpper(su.PadLeft(b.bigInt().Text(16), '0', (len(b)+3)/4))
}

// String returns b as is.
func (b Bits) String() string {
	return string(b)
}

func (b Bits) bigInt() *big.Int {
	n, ok := new(big.Int).SetString(string(b), 2)
	if !ok {
		panic(fmt.Sprintf("bad bit string %q", string(b)))
	}
	return n
}

func (b Bits) mustMatch(f Format) {
	if len(b) != f.TotalBits() {
		panic(fmt.Sprintf("bit string of length %d does not match format %s", len(b), f))
	}
	for i := 0; i < len(b); i++ {
		mustBeBit(b[i])
	}
}

func (b Bits) mustHaveIndex(i int) {
	if i < 0 || i >= len(b) {
		panic(fmt.Sprintf("bit index %d out of range [0, %d)", i, len(b)))
	}
}

func mustBeBit(v byte) {
	if v != '0' && v != '1' {
		panic(fmt.Sprintf("bad bit value %q", v))
	}
}

func isAll(s string, v byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != v {
			return false
		}
	}
	return true
}
