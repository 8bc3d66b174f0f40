// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package strutil contains helpers for validating and inspecting decimal strings.
package strutil

import (
	"fmt"
	"strings"
)

const (
	delim = '.'
)

// PosError describes a parsing error at a given position of the input.
// Positions start from 1.
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

// Number is a validated decimal string split into its parts.
// Int and Frac contain digits only, Int has no leading zeros and is never empty.
type Number struct {
	Neg  bool
	Int  string
	Frac string
}

// String returns n as -?int(.frac)?
func (n Number) String() string {
	var b strings.Builder
	if n.Neg {
		b.WriteByte('-')
	}
	b.WriteString(n.Int)
	if len(n.Frac) > 0 {
		b.WriteByte(delim)
		b.WriteString(n.Frac)
	}
	return b.String()
}

// Parse checks that s is a plain decimal number: an optional sign, digits,
// and an optional delimiter followed by digits. At least one digit is required.
// "5." and ".5" are accepted.
func Parse(s string) (Number, error) {
	var n Number
	if len(s) == 0 {
		return n, fmt.Errorf("empty input")
	}
	offset := 0
	switch s[0] {
	case '-':
		n.Neg = true
		offset++
	case '+':
		offset++
	}
	delimPos, digits := -1, 0
	for i, r := range s[offset:] {
		i += offset
		switch {
		case '0' <= r && r <= '9':
			digits++
		case r == delim:
			if delimPos >= 0 {
				return Number{}, newPosError("unexpected delimiter", i+1)
			}
			delimPos = i
		default:
			return Number{}, newPosError(fmt.Sprintf("unexpected symbol %q", r), i+1)
		}
	}
	if digits == 0 {
		return Number{}, fmt.Errorf("no digits in %q", s)
	}
	intPart, frac := s[offset:], ""
	if delimPos >= 0 {
		intPart, frac = s[offset:delimPos], s[delimPos+1:]
	}
	if intPart = strings.TrimLeft(intPart, "0"); len(intPart) == 0 {
		intPart = "0"
	}
	n.Int, n.Frac = intPart, frac
	return n, nil
}

// DetectScale returns the number of characters after the first delimiter in s,
// or 0, if there is no delimiter. Trailing zeros are counted.
func DetectScale(s string) int {
	pos := strings.IndexByte(s, delim)
	if pos < 0 {
		return 0
	}
	return len(s) - pos - 1
}
