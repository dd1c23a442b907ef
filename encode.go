// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/floatbits/internal/mathutil"
	su "github.com/avdva/floatbits/internal/strutil"
)

// Encode converts a decimal literal into a bit pattern of given format.
// Accepted input is a decimal number with an optional sign and exponent, like `-1.5e-3`,
// or one of `inf`, `infinity`, `nan` in any case.
// Values are rounded to the nearest representable number, half-way values are rounded away from zero.
// Values too large for the format become infinities, values below half of the smallest
// denormal become zeros. Both keep the sign of the input.
// Returns an *InputError if the text can't be parsed.
func Encode(text string, f Format) (Bits, error) {
	f.mustBeValid()
	s, offset, neg := su.PrepareString(text)
	switch strings.ToLower(s) {
	case "inf", "infinity":
		return f.inf(neg), nil
	case "nan":
		return f.nan(neg), nil
	}
	if err := su.ScanDecimal(s); err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return "", newInputError(text, su.AddPosErrorOffset(err, offset+1))
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", newInputError(text, err)
	}
	return encode(d, neg, f), nil
}

// MustEncode is like Encode, but panics on error.
func MustEncode(text string, f Format) Bits {
	b, err := Encode(text, f)
	if err != nil {
		panic(err)
	}
	return b
}

// EncodeDecimal converts d into a bit pattern of given format.
// See Encode for the rounding rules.
func EncodeDecimal(d decimal.Decimal, f Format) Bits {
	f.mustBeValid()
	return encode(d.Abs(), d.Sign() < 0, f)
}

func encode(d decimal.Decimal, neg bool, f Format) Bits {
	if d.IsZero() {
		return f.zero(neg)
	}
	minExp, maxExp := f.MinNormalExponent(), f.MaxNormalExponent()
	if lo, hi := mu.Log2Bounds(mu.Log10(d)); lo >= maxExp {
		return f.inf(neg)
	} else if hi <= minExp-f.MantBits-1 {
		return f.zero(neg)
	}
	var expField int
	var mant *big.Int
	switch e := mu.FloorLog2(d); {
	case e > maxExp:
		return f.inf(neg)
	case e < minExp: // a denormal, or zero after rounding
		mant = mu.MulPow2(d, f.MantBits-minExp).Round(0).BigInt()
		if mant.Sign() == 0 {
			return f.zero(neg)
		}
	default:
		expField = e + f.Bias()
		// 1 <= d/2^e < 2, drop the implicit bit.
		mant = mu.MulPow2(d, f.MantBits-e).Round(0).BigInt()
		mant.Sub(mant, mu.Lsh1(f.MantBits))
	}
	if mant.Cmp(mu.Lsh1(f.MantBits)) >= 0 { // rounded up to the next power of two.
		mant.SetInt64(0)
		expField++
		if expField >= f.maxExpField() {
			return f.inf(neg)
		}
	}
	return f.compose(neg, expField, mant)
}

func (f Format) compose(neg bool, expField int, mant *big.Int) Bits {
	var b strings.Builder
	b.Grow(f.TotalBits())
	b.WriteString(signBit(neg))
	b.WriteString(su.PadLeft(strconv.FormatInt(int64(expField), 2), '0', f.ExpBits))
	b.WriteString(su.PadLeft(mant.Text(2), '0', f.MantBits))
	return Bits(b.String())
}

func (f Format) zero(neg bool) Bits {
	return Bits(signBit(neg) + strings.Repeat("0", f.ExpBits+f.MantBits))
}

func (f Format) inf(neg bool) Bits {
	return Bits(signBit(neg) + strings.Repeat("1", f.ExpBits) + strings.Repeat("0", f.MantBits))
}

// nan returns a quiet not-a-number with all the mantissa bits set.
func (f Format) nan(neg bool) Bits {
	return Bits(signBit(neg) + strings.Repeat("1", f.ExpBits+f.MantBits))
}

func signBit(neg bool) string {
	if neg {
		return "1"
	}
	return "0"
}
