// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal

import "errors"

var (
	// ErrInvalidValue is returned when the input cannot be interpreted as a decimal number.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidScale is returned for negative scales and scales above MaxScale.
	ErrInvalidScale = errors.New("invalid scale")
	// ErrDivisionByZero is returned by Div when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
)
