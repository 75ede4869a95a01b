package calc

import "errors"

var (
	// ErrDivisionByZero is reported by Err after equals with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNonFinite is reported when a result overflows to an infinity.
	ErrNonFinite = errors.New("result out of range")

	ErrInvalidToken     = errors.New("invalid digit token")
	ErrInvalidOperation = errors.New("invalid operation")
)
