// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/floatbits/internal/mathutil"
	su "github.com/avdva/floatbits/internal/strutil"
)

// Class is a class of a floating-point value.
type Class int

const (
	// Normal is a number with the implicit leading mantissa bit.
	Normal Class = iota
	// Denormal is a number with a zero exponent field and a non-zero mantissa.
	Denormal
	// Zero is a positive or a negative zero.
	Zero
	// Infinity is a positive or a negative infinity.
	Infinity
	// NaN is not-a-number.
	NaN
)

var (
	classNames = [...]string{"Normal", "Denormal", "Zero", "Infinity", "NaN"}
)

// String returns the name of the class.
func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "Class(" + strconv.Itoa(int(c)) + ")"
	}
	return classNames[c]
}

// MarshalText returns the name of the class.
func (c Class) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(classNames) {
		return nil, fmt.Errorf("unknown class %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText parses a class name, case-insensitive.
func (c *Class) UnmarshalText(data []byte) error {
	for i, name := range classNames {
		if strings.EqualFold(name, string(data)) {
			*c = Class(i)
			return nil
		}
	}
	return fmt.Errorf("unknown class %q", string(data))
}

// Decoded is a decoded bit pattern.
// Value is a decimal number rounded to Format.Precision() significant digits,
// or one of `Infinity`, `-Infinity`, `NaN`.
type Decoded struct {
	Value string `json:"value" cbor:"value"`
	Class Class  `json:"class" cbor:"class"`
}

// Classify returns the class of a bit pattern.
// The sign bit is not taken into account.
func Classify(b Bits, f Format) Class {
	_, exp, mant := b.Fields(f)
	return classify(exp, mant)
}

func classify(exp, mant string) Class {
	mantZeros := isAll(mant, '0')
	switch {
	case isAll(exp, '1'):
		if mantZeros {
			return Infinity
		}
		return NaN
	case isAll(exp, '0'):
		if mantZeros {
			return Zero
		}
		return Denormal
	default:
		return Normal
	}
}

// Decode converts a bit pattern of given format into a decimal string.
// Every pattern of the right length decodes to something: zeros become `0` regardless of the sign,
// all not-a-numbers become `NaN`.
// Decode panics, if b does not match f.
func Decode(b Bits, f Format) Decoded {
	v, c := DecodeValue(b, f)
	switch c {
	case Infinity:
		if b.Neg() {
			return Decoded{Value: "-Infinity", Class: c}
		}
		return Decoded{Value: "Infinity", Class: c}
	case NaN:
		return Decoded{Value: "NaN", Class: c}
	case Zero:
		return Decoded{Value: "0", Class: c}
	}
	return Decoded{Value: su.Precision(v, f.Precision()), Class: c}
}

// DecodeValue returns the exact value of a bit pattern and its class.
// For infinities and not-a-numbers the value is zero.
func DecodeValue(b Bits, f Format) (decimal.Decimal, Class) {
	sign, expStr, mantStr := b.Fields(f)
	c := classify(expStr, mantStr)
	switch c {
	case Infinity, NaN, Zero:
		return decimal.Zero, c
	}
	mant, _ := new(big.Int).SetString(mantStr, 2)
	exp := f.MinNormalExponent()
	if c == Normal {
		e, _ := strconv.ParseInt(expStr, 2, 32)
		exp = int(e) - f.Bias()
		mant.SetBit(mant, f.MantBits, 1)
	}
	v := mu.MulPow2(decimal.NewFromBigInt(mant, 0), exp-f.MantBits)
	if sign == "1" {
		v = v.Neg()
	}
	return v, c
}
