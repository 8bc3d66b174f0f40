// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package decimal implements an immutable fixed-scale decimal number.
// Each value carries its own scale, the number of digits after the delimiter.
// Values are truncated to their scale, never rounded, and arithmetic
// results get the larger scale of the two operands.
// The arithmetic is exact up to that truncation, as it is performed
// on arbitrary-precision integers.
package decimal

import (
	"fmt"
	"math"
	"strconv"

	sd "github.com/shopspring/decimal"

	su "github.com/avdva/decimal/internal/strutil"
)

const (
	// MaxScale is the maximum supported scale.
	MaxScale = math.MaxInt32
)

// Decimal is a decimal number with a fixed scale.
// The zero value is 0 with scale 0.
// Decimal values are immutable and can be shared between goroutines.
type Decimal struct {
	value string
	scale int
	dec   sd.Decimal
}

// New creates a decimal from a string, a float, an integer, or another Decimal.
// If scale is omitted, it is detected from the textual form of value,
// see FromString and FromFloat64 for details.
func New(value interface{}, scale ...int) (Decimal, error) {
	if len(scale) > 1 {
		return Decimal{}, fmt.Errorf("%w: expected at most one scale, got %d", ErrInvalidScale, len(scale))
	}
	var text string
	switch v := value.(type) {
	case string:
		text = v
	case Decimal:
		text = v.String()
	case float64:
		return fromFloat(v, 64, scale)
	case float32:
		return fromFloat(float64(v), 32, scale)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		text = fmt.Sprint(v)
	default:
		return Decimal{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, value)
	}
	if len(scale) == 0 {
		return FromString(text)
	}
	return FromStringWithScale(text, scale[0])
}

// Must is like New, but panics on error.
func Must(value interface{}, scale ...int) Decimal {
	d, err := New(value, scale...)
	if err != nil {
		panic(err)
	}
	return d
}

// FromString parses s, using the number of characters after the delimiter as the scale.
// Trailing zeros are significant: "1.200" has scale 3.
func FromString(s string) (Decimal, error) {
	return FromStringWithScale(s, su.DetectScale(s))
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Decimal {
	d, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromStringWithScale parses s and truncates it to the given scale.
// If s has fewer fractional digits, zeros are appended.
func FromStringWithScale(s string, scale int) (Decimal, error) {
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}
	n, err := su.Parse(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: parsing %q failed: %w", ErrInvalidValue, s, err)
	}
	dec, err := sd.NewFromString(n.String())
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return fromDec(dec, scale), nil
}

// FromInt64 returns a decimal with scale 0.
func FromInt64(i int64) Decimal {
	return fromDec(sd.NewFromInt(i), 0)
}

// FromInt64WithScale returns i with 'scale' zero digits after the delimiter.
func FromInt64WithScale(i int64, scale int) (Decimal, error) {
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}
	return fromDec(sd.NewFromInt(i), scale), nil
}

// FromFloat64 returns a decimal for f.
// The scale is detected from the shortest representation of f, which
// is not necessarily the literal the caller had in mind.
// Returns an error for infinities and not-a-numbers.
func FromFloat64(f float64) (Decimal, error) {
	return fromFloat(f, 64, nil)
}

// FromFloat64WithScale returns a decimal for f, rounded half away from zero to the given scale.
// Returns an error for infinities and not-a-numbers.
func FromFloat64WithScale(f float64, scale int) (Decimal, error) {
	return fromFloat(f, 64, []int{scale})
}

// fromFloat detects the scale from the raw float first, and only then formats it.
func fromFloat(f float64, bitSize int, scale []int) (Decimal, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Decimal{}, fmt.Errorf("%w: bad float number %v", ErrInvalidValue, f)
	}
	var s int
	if len(scale) > 0 {
		s = scale[0]
	} else {
		s = su.DetectScale(strconv.FormatFloat(f, 'f', -1, bitSize))
	}
	if err := checkScale(s); err != nil {
		return Decimal{}, err
	}
	var dec sd.Decimal
	if bitSize == 32 {
		dec = sd.NewFromFloat32(float32(f))
	} else {
		dec = sd.NewFromFloat(f)
	}
	return FromStringWithScale(dec.StringFixed(int32(s)), s)
}

// fromDec truncates dec to the scale and renders it with exactly 'scale' fractional digits.
func fromDec(dec sd.Decimal, scale int) Decimal {
	dec = dec.Truncate(int32(scale))
	return Decimal{value: dec.StringFixed(int32(scale)), scale: scale, dec: dec}
}

func checkScale(scale int) error {
	if scale < 0 || scale > MaxScale {
		return fmt.Errorf("%w: %d is out of range [0, %d]", ErrInvalidScale, scale, MaxScale)
	}
	return nil
}

// Scale returns the number of digits after the delimiter.
func (d Decimal) Scale() int {
	return d.scale
}

// String returns the canonical representation of d,
// which has exactly Scale() digits after the delimiter.
func (d Decimal) String() string {
	if len(d.value) == 0 {
		return "0"
	}
	return d.value
}

// GoString returns debug string representation.
func (d Decimal) GoString() string {
	return d.String() + fmt.Sprintf(" {scale %d}", d.scale)
}
