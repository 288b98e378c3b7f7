// SPDX-License-Identifier: MIT
// Package: lvtopo/algebra
//
// modular.go - the prime field Z/pZ over int.
//
// Invariants:
//   • Every value returned by a Modular method lies in [0, p).
//   • Inputs may be any int; they are reduced before use, so callers can feed
//     raw incidence numbers (e.g. -1) without normalizing first.
//   • Products are computed in int64, so no intermediate wraps for p < 2^31.

package algebra

import (
	"fmt"
	"sync"
)

// MaxModulus is the largest accepted prime bound (exclusive): p < 2^31.
const MaxModulus = 1<<31 - 1

// Modular is the field of integers modulo a prime p.
// Obtain instances through NewModular or ModularField.
type Modular struct {
	p        int
	inverses []int // inverses[a] = a⁻¹ mod p, inverses[0] = 0; nil for large p
}

// inverseTableLimit bounds the size of the precomputed inverse table; larger
// primes fall back to the extended Euclidean algorithm.
const inverseTableLimit = 1 << 16

var (
	modularMu    sync.Mutex
	modularCache = map[int]*Modular{}
)

// NewModular builds Z/pZ, validating that p is a prime below MaxModulus.
// Complexity: O(√p) primality check + O(p) inverse table when p ≤ 65536.
func NewModular(p int) (*Modular, error) {
	if p < 2 || p > MaxModulus || !isPrime(p) {
		return nil, fmt.Errorf("NewModular(%d): %w", p, ErrInvalidModulus)
	}
	m := &Modular{p: p}
	if p <= inverseTableLimit {
		m.inverses = modularInverses(p)
	}

	return m, nil
}

// ModularField returns the shared instance for p, creating it on first use.
// Safe for concurrent use.
func ModularField(p int) (*Modular, error) {
	modularMu.Lock()
	defer modularMu.Unlock()

	if m, ok := modularCache[p]; ok {
		return m, nil
	}
	m, err := NewModular(p)
	if err != nil {
		return nil, err
	}
	modularCache[p] = m

	return m, nil
}

// MustModular is ModularField that panics on an invalid prime.
// Intended for package-level fixtures and tests.
func MustModular(p int) *Modular {
	m, err := ModularField(p)
	if err != nil {
		panic(err)
	}

	return m
}

// Prime returns p.
func (m *Modular) Prime() int { return m.p }

func (m *Modular) norm(a int) int {
	r := a % m.p
	if r < 0 {
		r += m.p
	}

	return r
}

func (m *Modular) Add(a, b int) int      { return m.norm(m.norm(a) + m.norm(b)) }
func (m *Modular) Subtract(a, b int) int { return m.norm(m.norm(a) - m.norm(b)) }

// Multiply reduces both operands and multiplies in int64.
func (m *Modular) Multiply(a, b int) int {
	return int(int64(m.norm(a)) * int64(m.norm(b)) % int64(m.p))
}

func (m *Modular) Negate(a int) int  { return m.norm(-m.norm(a)) }
func (m *Modular) ValueOf(n int) int { return m.norm(n) }
func (m *Modular) Zero() int         { return 0 }
func (m *Modular) One() int          { return 1 }
func (m *Modular) NegativeOne() int  { return m.p - 1 }

func (m *Modular) IsZero(a int) bool   { return m.norm(a) == 0 }
func (m *Modular) IsOne(a int) bool    { return m.norm(a) == 1 }
func (m *Modular) IsUnit(a int) bool   { return m.norm(a) != 0 }
func (m *Modular) Equal(a, b int) bool { return m.norm(a) == m.norm(b) }

// Characteristic returns p.
func (m *Modular) Characteristic() int { return m.p }

// Invert returns a⁻¹ mod p. Panics with ErrDivisionByZero when a ≡ 0.
func (m *Modular) Invert(a int) int {
	r := m.norm(a)
	if r == 0 {
		panic(divisionByZero("Modular.Invert"))
	}
	if m.inverses != nil {
		return m.inverses[r]
	}

	return inverseMod(r, m.p)
}

// Divide returns a · b⁻¹ mod p.
func (m *Modular) Divide(a, b int) int {
	if m.norm(b) == 0 {
		panic(divisionByZero("Modular.Divide"))
	}

	return m.Multiply(a, m.Invert(b))
}

// String renders the field as "Z/pZ".
func (m *Modular) String() string { return fmt.Sprintf("Z/%dZ", m.p) }

// modularInverses tabulates inverses with the recurrence
// inv[i] = -(p/i)·inv[p mod i] mod p, which is O(p) in total.
func modularInverses(p int) []int {
	inv := make([]int, p)
	if p > 1 {
		inv[1] = 1
	}
	for i := 2; i < p; i++ {
		inv[i] = int(int64(p-p/i) * int64(inv[p%i]) % int64(p))
	}

	return inv
}

// inverseMod runs the extended Euclidean algorithm on (a, p).
func inverseMod(a, p int) int {
	t, newT := int64(0), int64(1)
	r, newR := int64(p), int64(a)
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if t < 0 {
		t += int64(p)
	}

	return int(t)
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}
