// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"github.com/shopspring/decimal"

	mu "github.com/avdva/floatbits/internal/mathutil"
	su "github.com/avdva/floatbits/internal/strutil"
)

// Info describes a format. All the values are formatted with Format.Precision() significant digits.
type Info struct {
	Bias        int    `json:"bias" cbor:"bias"`
	Epsilon     string `json:"epsilon" cbor:"epsilon"`
	MaxNormal   string `json:"maxNormal" cbor:"maxNormal"`
	MinNormal   string `json:"minNormal" cbor:"minNormal"`
	MinDenormal string `json:"minDenormal" cbor:"minDenormal"`
}

// Characteristics returns the properties of given format.
func Characteristics(f Format) Info {
	f.mustBeValid()
	prec := f.Precision()
	epsilon := mu.Pow2(-f.MantBits)
	// (2 - 2^-m) * 2^maxExp
	maxNormal := mu.MulPow2(decimal.New(2, 0).Sub(epsilon), f.MaxNormalExponent())
	return Info{
		Bias:        f.Bias(),
		Epsilon:     su.Precision(epsilon, prec),
		MaxNormal:   su.Precision(maxNormal, prec),
		MinNormal:   su.Precision(mu.Pow2(f.MinNormalExponent()), prec),
		MinDenormal: su.Precision(mu.Pow2(1-f.Bias()-f.MantBits), prec),
	}
}
