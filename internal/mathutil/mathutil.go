package mathutil

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	bigOne  = big.NewInt(1)
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)

	// log10(2)
	log10Of2 = math.Log10(2)
)

// Pow2 returns 2^pow as an exact decimal.
// Negative powers are exact too, since 2^-n = 5^n * 10^-n.
func Pow2(pow int) decimal.Decimal {
	if pow >= 0 {
		return decimal.NewFromBigInt(new(big.Int).Lsh(bigOne, uint(pow)), 0)
	}
	n := int64(-pow)
	return decimal.NewFromBigInt(new(big.Int).Exp(bigFive, big.NewInt(n), nil), int32(pow))
}

// MulPow2 returns d * 2^pow without any loss of precision.
func MulPow2(d decimal.Decimal, pow int) decimal.Decimal {
	if pow == 0 {
		return d
	}
	return d.Mul(Pow2(pow))
}

// Pow10 returns 10^pow for pow >= 0.
func Pow10(pow int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(pow)), nil)
}

// Lsh1 returns 1<<n.
func Lsh1(n int) *big.Int {
	return new(big.Int).Lsh(bigOne, uint(n))
}

// DecimalDigits returns the number of decimal digits in abs(value).
func DecimalDigits(value *big.Int) int {
	if value.Sign() == 0 {
		return 1
	}
	return len(new(big.Int).Abs(value).Text(10))
}

// Log10 returns such e, that 10^e <= abs(d) < 10^(e+1).
// d must not be zero.
func Log10(d decimal.Decimal) int {
	return DecimalDigits(d.Coefficient()) - 1 + int(d.Exponent())
}

// FloorLog2 returns floor(log2(d)) for a positive d.
// The result is exact: d = c * 10^x is compared against powers of two on big integers.
func FloorLog2(d decimal.Decimal) int {
	c, x := d.Coefficient(), int(d.Exponent())
	if c.Sign() <= 0 {
		panic("FloorLog2 of a non-positive value")
	}
	if x >= 0 {
		return new(big.Int).Mul(c, Pow10(x)).BitLen() - 1
	}
	q := Pow10(-x)
	// 2^(k-1) < c/q < 2^(k+1)
	k := c.BitLen() - q.BitLen()
	if k >= 0 {
		if c.Cmp(new(big.Int).Lsh(q, uint(k))) < 0 {
			k--
		}
	} else if new(big.Int).Lsh(c, uint(-k)).Cmp(q) < 0 {
		k--
	}
	return k
}

// Log2Bounds returns a conservative range [lo, hi] of binary exponents
// a value with the given decimal exponent may have.
func Log2Bounds(decExp int) (lo, hi int) {
	lo = int(math.Floor(float64(decExp)/log10Of2)) - 1
	hi = int(math.Ceil(float64(decExp+1)/log10Of2)) + 1
	return lo, hi
}
