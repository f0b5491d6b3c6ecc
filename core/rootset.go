package core

import "fmt"

// MaxRoots is the capacity of a Roots value: a real polynomial of degree
// ≤4 has at most four real roots.
const MaxRoots = 4

// Roots is a sorted, duplicate-free set of 0–4 real roots, stored inline.
//
// The zero value is the empty set. Roots is a value type: Insert returns a
// new set and never mutates its receiver, so returned sets can be shared
// freely. Elements are strictly increasing.
type Roots[F Float] struct {
	buf [MaxRoots]F
	n   int
}

// Empty returns the zero-element set.
func Empty[F Float]() Roots[F] { return Roots[F]{} }

// Single returns the one-element set {x}.
func Single[F Float](x F) Roots[F] {
	return Roots[F]{buf: [MaxRoots]F{x}, n: 1}
}

// Len reports the number of roots in the set.
func (r Roots[F]) Len() int { return r.n }

// At returns the i-th root in ascending order. It panics if i is out of
// range, like any slice access.
func (r Roots[F]) At(i int) F {
	if i < 0 || i >= r.n {
		panic(fmt.Sprintf("core: root index %d out of range [0,%d)", i, r.n))
	}

	return r.buf[i]
}

// All returns the roots in ascending order as a freshly built slice.
// Mutating the result does not affect the set.
func (r Roots[F]) All() []F {
	out := make([]F, r.n)
	copy(out, r.buf[:r.n])

	return out
}

// Insert returns a new set containing all prior elements plus x, kept in
// ascending order. If x exactly equals an existing element it is dropped
// silently — multiple roots computed twice through identical arithmetic
// collapse to one entry. Inserting a fifth distinct value panics: the
// solver call graph is bounded by degree 4, so overflow means misuse.
func (r Roots[F]) Insert(x F) Roots[F] {
	// 1) Locate the insertion position; bail out on an exact duplicate.
	pos := 0
	for ; pos < r.n; pos++ {
		if r.buf[pos] == x {
			return r
		}
		if r.buf[pos] > x {
			break
		}
	}

	// 2) Enforce the degree bound. Unreachable through this module.
	if r.n == MaxRoots {
		panic("core: cannot insert a fifth root into a Roots set")
	}

	// 3) Shift the tail right and place x.
	out := r
	copy(out.buf[pos+1:out.n+1], r.buf[pos:r.n])
	out.buf[pos] = x
	out.n++

	return out
}
