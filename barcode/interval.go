// SPDX-License-Identifier: MIT

package barcode

import (
	"cmp"
	"fmt"
)

// Number is the endpoint type of an interval.
type Number interface {
	~int | ~float64
}

// Interval is a half-open persistence interval [Birth, Death), or [Birth, ∞)
// when Infinite is set (Death is then ignored).
type Interval[T Number] struct {
	Birth    T
	Death    T
	Infinite bool
}

// Finite returns [birth, death).
func Finite[T Number](birth, death T) Interval[T] {
	return Interval[T]{Birth: birth, Death: death}
}

// RightInfinite returns [birth, ∞).
func RightInfinite[T Number](birth T) Interval[T] {
	return Interval[T]{Birth: birth, Infinite: true}
}

// Contains reports Birth ≤ t < Death.
func (iv Interval[T]) Contains(t T) bool {
	return iv.Birth <= t && (iv.Infinite || t < iv.Death)
}

// Empty reports a finite interval with Death ≤ Birth.
func (iv Interval[T]) Empty() bool { return !iv.Infinite && iv.Death <= iv.Birth }

// String renders "[b, d)" or "[b, ∞)".
func (iv Interval[T]) String() string {
	if iv.Infinite {
		return fmt.Sprintf("[%v, ∞)", iv.Birth)
	}

	return fmt.Sprintf("[%v, %v)", iv.Birth, iv.Death)
}

// Compare orders by birth, then death, infinite deaths last.
func Compare[T Number](a, b Interval[T]) int {
	if c := cmp.Compare(a.Birth, b.Birth); c != 0 {
		return c
	}
	switch {
	case a.Infinite && b.Infinite:
		return 0
	case a.Infinite:
		return 1
	case b.Infinite:
		return -1
	}

	return cmp.Compare(a.Death, b.Death)
}
