// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floatbits converts arbitrary-precision decimal numbers to and from
// binary floating-point bit patterns with configurable field widths.
//
// A format is defined by the number of exponent and mantissa bits:
//   0       1            1+ExpBits                    TotalBits
//   ________|____________|_______________________________
//   seeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
//
// The layout follows IEEE-754: a biased exponent, an implicit leading mantissa bit
// for normal numbers, denormals, signed zeros, infinities and not-a-numbers.
// Binary16, bfloat16, binary32, binary64 and binary128 are all members of the family.
package floatbits

import (
	"errors"
	"fmt"
)

const (
	// MinExpBits is the minimum width of the exponent field.
	MinExpBits = 2
	// MaxExpBits is the maximum width of the exponent field.
	MaxExpBits = 15
	// MinMantBits is the minimum width of the mantissa field.
	MinMantBits = 2
	// MaxMantBits is the maximum width of the mantissa field.
	MaxMantBits = 112

	// wider mantissas get more digits when formatted.
	doubleMantBits = 53
)

var (
	// ErrFormatRange is returned for field widths outside of the supported bounds.
	ErrFormatRange = errors.New("format out of range")
)

// Format describes a binary floating-point format.
// The zero value is not a valid format, use NewFormat, MustFormat, or a preset.
type Format struct {
	ExpBits  int `json:"exp" toml:"exp" cbor:"exp"`
	MantBits int `json:"man" toml:"man" cbor:"man"`
}

// NewFormat returns a format with given exponent and mantissa widths.
// Returns ErrFormatRange if any of them is out of bounds.
func NewFormat(expBits, mantBits int) (Format, error) {
	f := Format{ExpBits: expBits, MantBits: mantBits}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// MustFormat is like NewFormat, but panics on error.
func MustFormat(expBits, mantBits int) Format {
	f, err := NewFormat(expBits, mantBits)
	if err != nil {
		panic(err)
	}
	return f
}

// Configure returns a format for given widths and an all-zero bit pattern for it.
// Bits from a previous format must never be reused with the new one.
func Configure(expBits, mantBits int) (Format, Bits, error) {
	f, err := NewFormat(expBits, mantBits)
	if err != nil {
		return Format{}, "", err
	}
	return f, ZeroBits(f), nil
}

// Validate checks the field widths.
func (f Format) Validate() error {
	if f.ExpBits < MinExpBits || f.ExpBits > MaxExpBits {
		return fmt.Errorf("%w: exponent bits %d not in [%d, %d]", ErrFormatRange, f.ExpBits, MinExpBits, MaxExpBits)
	}
	if f.MantBits < MinMantBits || f.MantBits > MaxMantBits {
		return fmt.Errorf("%w: mantissa bits %d not in [%d, %d]", ErrFormatRange, f.MantBits, MinMantBits, MaxMantBits)
	}
	return nil
}

// Bias returns the exponent bias, 2^(ExpBits-1) - 1.
func (f Format) Bias() int {
	return 1<<(f.ExpBits-1) - 1
}

// MinNormalExponent returns the unbiased exponent of the smallest normal number.
// Denormals use it as well.
func (f Format) MinNormalExponent() int {
	return 1 - f.Bias()
}

// MaxNormalExponent returns the unbiased exponent of the largest finite number.
func (f Format) MaxNormalExponent() int {
	return f.maxExpField() - 1 - f.Bias()
}

// TotalBits returns the length of a bit pattern: sign, exponent and mantissa.
func (f Format) TotalBits() int {
	return 1 + f.ExpBits + f.MantBits
}

// Precision returns the number of significant digits used to print decoded values.
func (f Format) Precision() int {
	if f.MantBits <= doubleMantBits {
		return 17
	}
	return 30
}

// String returns a short name of the format, like `e8m23`.
func (f Format) String() string {
	return fmt.Sprintf("e%dm%d", f.ExpBits, f.MantBits)
}

// maxExpField is the all-ones exponent field value.
func (f Format) maxExpField() int {
	return 1<<f.ExpBits - 1
}

func (f Format) mustBeValid() {
	if err := f.Validate(); err != nil {
		panic(err)
	}
}
