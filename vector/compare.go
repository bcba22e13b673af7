package vector

import (
	"github.com/npillmayer/vek"
)

// Equal reports element-wise equality. Different lengths short-circuit to
// false.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	bs := b.st.live()
	for i, x := range a.st.live() {
		if x != bs[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	bs := b.st.live()
	for i, x := range a.st.live() {
		if !eq(x, bs[i]) {
			return false
		}
	}
	return true
}

// Compare orders vectors by length first and element-wise second: a
// shorter vector precedes a longer one regardless of contents. Returns
// -1, 0 or +1.
func Compare[T vek.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case y < x:
			return 1
		}
		return 0
	})
}

// CompareFunc is Compare with a caller-supplied element ordering (negative,
// zero, positive).
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	if a.Len() != b.Len() {
		if a.Len() < b.Len() {
			return -1
		}
		return 1
	}
	bs := b.st.live()
	for i, x := range a.st.live() {
		if c := cmp(x, bs[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether a precedes b in the length-first ordering.
func Less[T vek.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessEq is the dual of Less: a <= b iff !(b < a).
func LessEq[T vek.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports whether b precedes a.
func Greater[T vek.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterEq is the dual of Greater.
func GreaterEq[T vek.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
