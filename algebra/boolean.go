// SPDX-License-Identifier: MIT

package algebra

// Boolean is the field GF(2) over bool. The zero value is ready to use.
//
// Coefficients are either absent (false) or exactly one (true), which is why
// formal sums and boundary columns over Boolean are stored as sets.
type Boolean struct{}

// BooleanField returns the GF(2) field.
func BooleanField() Boolean { return Boolean{} }

// Add is exclusive or.
func (Boolean) Add(a, b bool) bool { return a != b }

// Subtract equals Add in characteristic 2.
func (Boolean) Subtract(a, b bool) bool { return a != b }

// Multiply is logical and.
func (Boolean) Multiply(a, b bool) bool { return a && b }

// Negate is the identity.
func (Boolean) Negate(a bool) bool { return a }

// ValueOf maps n to its parity.
func (Boolean) ValueOf(n int) bool { return n%2 != 0 }

func (Boolean) Zero() bool        { return false }
func (Boolean) One() bool         { return true }
func (Boolean) NegativeOne() bool { return true }

func (Boolean) IsZero(a bool) bool   { return !a }
func (Boolean) IsOne(a bool) bool    { return a }
func (Boolean) IsUnit(a bool) bool   { return a }
func (Boolean) Equal(a, b bool) bool { return a == b }

// Characteristic is 2.
func (Boolean) Characteristic() int { return 2 }

// Divide returns a / b; b must be true.
func (Boolean) Divide(a, b bool) bool {
	if !b {
		panic(divisionByZero("Boolean.Divide"))
	}

	return a
}

// Invert returns 1 / a; a must be true.
func (Boolean) Invert(a bool) bool {
	if !a {
		panic(divisionByZero("Boolean.Invert"))
	}

	return true
}
