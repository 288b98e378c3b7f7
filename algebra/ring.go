// SPDX-License-Identifier: MIT
// Package: lvtopo/algebra
//
// ring.go - the Ring/Field contracts and the shared square-and-multiply power.
//
// Contract (strict):
//   • Implementations are stateless apart from configuration (e.g. the prime).
//   • Every returned element is canonical: Equal is decidable and IsZero is O(1).
//   • ValueOf(n) equals n·One (|n| repeated additions, negated for n < 0).
//   • Field.Divide(a, b) == Multiply(a, Invert(b)); inverting zero panics.

package algebra

// Ring is a commutative ring with identity over elements of type T.
type Ring[T any] interface {
	// Add returns a + b.
	Add(a, b T) T
	// Subtract returns a - b.
	Subtract(a, b T) T
	// Multiply returns a · b.
	Multiply(a, b T) T
	// Negate returns the additive inverse -a.
	Negate(a T) T
	// ValueOf returns the image of the integer n in the ring.
	ValueOf(n int) T
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// NegativeOne returns -1.
	NegativeOne() T
	// IsZero reports a == 0.
	IsZero(a T) bool
	// IsOne reports a == 1.
	IsOne(a T) bool
	// IsUnit reports whether a has a multiplicative inverse.
	IsUnit(a T) bool
	// Equal reports a == b as ring elements.
	Equal(a, b T) bool
	// Characteristic returns the smallest n > 0 with n·1 = 0, or 0 if none exists.
	Characteristic() int
}

// Field is a Ring in which every nonzero element is a unit.
type Field[T any] interface {
	Ring[T]
	// Divide returns a · b⁻¹. Panics (ErrDivisionByZero) when b is zero.
	Divide(a, b T) T
	// Invert returns a⁻¹. Panics (ErrDivisionByZero) when a is zero.
	Invert(a T) T
}

// Power returns a^n for n ≥ 0 by binary exponentiation.
//
// Sequence (fixed, relied upon by tests):
//
//	result = 1
//	while n > 0:
//	    if n is odd: result = result · a
//	    a = a · a
//	    n = n / 2
//
// Returns ErrNegativeExponent when n < 0; use FieldPower for inverses.
// Complexity: O(log n) multiplications.
func Power[T any](r Ring[T], a T, n int) (T, error) {
	if n < 0 {
		return r.Zero(), ErrNegativeExponent
	}

	return squareAndMultiply(r, a, n), nil
}

// FieldPower returns a^n for any integer n. For n < 0 it raises Invert(a) to -n,
// so a zero base with a negative exponent panics like Invert does.
func FieldPower[T any](f Field[T], a T, n int) T {
	if n < 0 {
		return squareAndMultiply[T](f, f.Invert(a), -n)
	}

	return squareAndMultiply[T](f, a, n)
}

func squareAndMultiply[T any](r Ring[T], a T, n int) T {
	result := r.One()
	for n > 0 {
		if n&1 == 1 {
			result = r.Multiply(result, a)
		}
		a = r.Multiply(a, a)
		n /= 2
	}

	return result
}

// IsBoolean reports whether r is the GF(2) boolean field, which algorithms
// use to select set/bitmap storage instead of coefficient maps.
func IsBoolean[T any](r Ring[T]) bool {
	_, ok := any(r).(Boolean)
	if !ok {
		_, ok = any(r).(*Boolean)
	}

	return ok
}
