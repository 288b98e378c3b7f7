// SPDX-License-Identifier: MIT

package algebra

import "math/big"

// Rational is the field Q over *big.Rat. Operands are never mutated; every
// operation allocates its result. A nil *big.Rat is read as zero.
type Rational struct{}

// RationalField returns the field of rational numbers.
func RationalField() Rational { return Rational{} }

func val(a *big.Rat) *big.Rat {
	if a == nil {
		return new(big.Rat)
	}

	return a
}

func (Rational) Add(a, b *big.Rat) *big.Rat      { return new(big.Rat).Add(val(a), val(b)) }
func (Rational) Subtract(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(val(a), val(b)) }
func (Rational) Multiply(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(val(a), val(b)) }
func (Rational) Negate(a *big.Rat) *big.Rat      { return new(big.Rat).Neg(val(a)) }

// ValueOf returns n/1.
func (Rational) ValueOf(n int) *big.Rat { return new(big.Rat).SetInt64(int64(n)) }

func (Rational) Zero() *big.Rat        { return new(big.Rat) }
func (Rational) One() *big.Rat         { return big.NewRat(1, 1) }
func (Rational) NegativeOne() *big.Rat { return big.NewRat(-1, 1) }

func (Rational) IsZero(a *big.Rat) bool { return a == nil || a.Sign() == 0 }

func (Rational) IsOne(a *big.Rat) bool {
	return a != nil && a.IsInt() && a.Num().IsInt64() && a.Num().Int64() == 1
}

func (r Rational) IsUnit(a *big.Rat) bool { return !r.IsZero(a) }

func (Rational) Equal(a, b *big.Rat) bool { return val(a).Cmp(val(b)) == 0 }

// Characteristic is 0.
func (Rational) Characteristic() int { return 0 }

// Invert returns 1/a. Panics with ErrDivisionByZero when a is zero.
func (r Rational) Invert(a *big.Rat) *big.Rat {
	if r.IsZero(a) {
		panic(divisionByZero("Rational.Invert"))
	}

	return new(big.Rat).Inv(a)
}

// Divide returns a/b. Panics with ErrDivisionByZero when b is zero.
func (r Rational) Divide(a, b *big.Rat) *big.Rat {
	if r.IsZero(b) {
		panic(divisionByZero("Rational.Divide"))
	}

	return new(big.Rat).Quo(val(a), b)
}
