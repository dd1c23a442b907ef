package strutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/floatbits/internal/mathutil"
)

const (
	delim = '.'

	// values with a decimal exponent at or below this are written in exponential notation.
	expNeg = -7
)

var (
	manyZeros = bytes.Repeat([]byte{'0'}, 256)
)

// PosError is an error with a position in the input string.
type PosError struct {
	Pos int
	Err string
}

func newPosError(err string, pos int) *PosError {
	return &PosError{Err: err, Pos: pos}
}

func (pe PosError) Error() string {
	return pe.Err + fmt.Sprintf(" at pos %d", pe.Pos)
}

// AddPosErrorOffset shifts the position of a *PosError inside err by offset.
func AddPosErrorOffset(err error, offset int) error {
	var pe *PosError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.Pos += offset
	return err
}

// PrepareString cleans the string from ",-,+ symbols, and spaces.
// offset is the number of bytes trimmed from the beginning of s.
func PrepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
		offset++
	}
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	}
	if len(s) > 0 && s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

// ScanDecimal checks that s is a decimal literal: digits with an optional delimiter,
// followed by an optional exponent, like `12.5e-3`.
// Positions in the returned error are 0-based.
func ScanDecimal(s string) error {
	if len(s) == 0 {
		return fmt.Errorf("empty input")
	}
	delimPos, digits := -1, 0
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			digits++
		case r == delim:
			if delimPos != -1 {
				return newPosError("unexpected delimeter", i)
			}
			delimPos = i
		case r == 'e' || r == 'E':
			if digits == 0 {
				return newPosError("no digits before exponent", i)
			}
			if _, err := strconv.ParseInt(s[i+1:], 10, 32); err != nil {
				return newPosError("error parsing exponent: "+err.Error(), i+1)
			}
			return nil
		default:
			return newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if digits == 0 {
		return newPosError("no digits", 0)
	}
	return nil
}

// FormatPrecision writes d rounded to sd significant digits.
// Half-way values are rounded away from zero.
// Exponential notation, like `1.5e-45` or `3.4e+38`, is used when the decimal exponent
// of the rounded value is less than or equal to -7 or is not less than sd.
func FormatPrecision(d decimal.Decimal, sd int, w io.Writer) {
	if sd < 1 {
		sd = 1
	}
	if d.IsZero() {
		w.Write([]byte{'0'})
		if sd > 1 {
			w.Write([]byte{delim})
			w.Write(zeroBytes(sd - 1))
		}
		return
	}
	if d.Sign() < 0 {
		w.Write([]byte{'-'})
		d = d.Abs()
	}
	e := mu.Log10(d)
	d = d.Round(int32(sd - 1 - e))
	e = mu.Log10(d) // rounding may have carried into a new digit, like 9.99 -> 10.0
	digits := d.Shift(int32(sd - 1 - e)).BigInt().Text(10)
	switch {
	case e <= expNeg || e >= sd:
		w.Write([]byte(digits[:1]))
		if sd > 1 {
			w.Write([]byte{delim})
			w.Write([]byte(digits[1:]))
		}
		w.Write([]byte{'e'})
		if e >= 0 {
			w.Write([]byte{'+'})
		}
		w.Write([]byte(strconv.Itoa(e)))
	case e >= 0:
		w.Write([]byte(digits[:e+1]))
		if e+1 < sd {
			w.Write([]byte{delim})
			w.Write([]byte(digits[e+1:]))
		}
	default: // add leading zeros and a delimiter
		w.Write([]byte{'0', delim})
		w.Write(zeroBytes(-e - 1))
		w.Write([]byte(digits))
	}
}

// Precision returns d rounded to sd significant digits as a string.
// See FormatPrecision.
func Precision(d decimal.Decimal, sd int) string {
	var b strings.Builder
	FormatPrecision(d, sd, &b)
	return b.String()
}

// PadLeft returns s prepended with c up to the given width.
func PadLeft(s string, c byte, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(string(c), width-len(s)) + s
}

func zeroBytes(count int) []byte {
	if count <= len(manyZeros) {
		return manyZeros[:count]
	}
	result := bytes.Repeat(manyZeros, count/len(manyZeros))
	if rem := count % len(manyZeros); rem > 0 {
		result = append(result, manyZeros[:rem]...)
	}
	return result
}
