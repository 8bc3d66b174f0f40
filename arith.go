// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal

import "fmt"

// Add returns d + other with the larger of the two scales.
func (d Decimal) Add(other Decimal) Decimal {
	return fromDec(d.dec.Add(other.dec), maxScale(d, other))
}

// Sub returns d - other with the larger of the two scales.
func (d Decimal) Sub(other Decimal) Decimal {
	return fromDec(d.dec.Sub(other.dec), maxScale(d, other))
}

// Mul returns d * other with the larger of the two scales.
// The exact product is truncated, so 0.1 * 0.2 is 0.0.
func (d Decimal) Mul(other Decimal) Decimal {
	return fromDec(d.dec.Mul(other.dec), maxScale(d, other))
}

// Div returns d / other with the larger of the two scales.
// The quotient is truncated toward zero: 10 / 3.00 = 3.33.
// Returns ErrDivisionByZero if other is zero.
func (d Decimal) Div(other Decimal) (Decimal, error) {
	if other.dec.IsZero() {
		return Decimal{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, d, other)
	}
	scale := maxScale(d, other)
	quo, _ := d.dec.QuoRem(other.dec, int32(scale))
	return fromDec(quo, scale), nil
}

// MustDiv is like Div, but panics if other is zero.
func (d Decimal) MustDiv(other Decimal) Decimal {
	quo, err := d.Div(other)
	if err != nil {
		panic(err)
	}
	return quo
}

// Floor returns d with the given number of digits after the delimiter.
// Despite the name, it truncates toward zero: -1.789 becomes -1.7, not -1.8.
// If precision exceeds the scale of d, zeros are appended.
func (d Decimal) Floor(precision int) (Decimal, error) {
	return FromStringWithScale(d.String(), precision)
}

// Trunc returns the integer part of d with scale 0.
func (d Decimal) Trunc() Decimal {
	return fromDec(d.dec, 0)
}

func maxScale(a, b Decimal) int {
	if a.scale > b.scale {
		return a.scale
	}
	return b.scale
}
