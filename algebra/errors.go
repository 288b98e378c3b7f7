// SPDX-License-Identifier: MIT

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidModulus is returned when a modular field is requested for a
	// value that is not a prime in [2, MaxModulus].
	ErrInvalidModulus = errors.New("algebra: modulus must be a prime in [2, 2^31)")

	// ErrNegativeExponent is returned by Power when n < 0 on a structure that
	// is not known to be a field.
	ErrNegativeExponent = errors.New("algebra: negative exponent on a ring")

	// ErrDivisionByZero is carried by the panic raised when zero is inverted.
	ErrDivisionByZero = errors.New("algebra: division by zero")
)

// divisionByZero builds the panic value for op; errors.Is(v, ErrDivisionByZero) holds.
func divisionByZero(op string) error {
	return fmt.Errorf("%s: %w", op, ErrDivisionByZero)
}
