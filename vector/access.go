package vector

import (
	"fmt"
	"strings"

	"github.com/npillmayer/vek/alloc"
	"github.com/npillmayer/vek/maybe"
)

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.st.size }

// Cap returns the capacity of the underlying buffer.
func (v *Vector[T]) Cap() int { return v.st.capacity() }

// Available returns the spare capacity, Cap() - Len().
func (v *Vector[T]) Available() int { return v.st.available() }

// Empty is true for a vector without live elements.
func (v *Vector[T]) Empty() bool { return v.st.empty() }

// Full is true when the next append will have to grow the buffer.
func (v *Vector[T]) Full() bool { return v.st.full() }

// At returns the element at index i, or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.st.size {
		var zero T
		return zero, fmt.Errorf("index %d of vector with %d element(s): %w",
			i, v.st.size, ErrOutOfRange)
	}
	return v.st.data[i], nil
}

// Get returns the element at index i. i must be a valid index.
func (v *Vector[T]) Get(i int) T {
	assertThat(i >= 0 && i < v.st.size, "index %d out of range", i)
	return v.st.data[i]
}

// Ref returns a pointer to the element at index i, valid until the next
// reallocation. i must be a valid index.
func (v *Vector[T]) Ref(i int) *T {
	assertThat(i >= 0 && i < v.st.size, "index %d out of range", i)
	return &v.st.data[i]
}

// Set overwrites the element at index i with a copy of val. i must be a
// valid index.
func (v *Vector[T]) Set(i int, val T) {
	assertThat(i >= 0 && i < v.st.size, "index %d out of range", i)
	v.st.cont.CopyAssign(&v.st.data[i], val)
}

// Front returns the first element, or Nothing for an empty vector.
func (v *Vector[T]) Front() maybe.Maybe[T] {
	if v.st.empty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.st.data[0])
}

// Back returns the last element, or Nothing for an empty vector.
func (v *Vector[T]) Back() maybe.Maybe[T] {
	if v.st.empty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.st.data[v.st.size-1])
}

// Slice returns the live range as a slice sharing the vector's buffer. It
// is valid until the next reallocation and must not be fed back into
// mutating bulk operations of the same vector.
func (v *Vector[T]) Slice() []T { return v.st.live() }

// Allocator returns the allocator in use.
func (v *Vector[T]) Allocator() alloc.Allocator[T] { return v.st.cont.Allocator() }

// Traits returns the element traits in use.
func (v *Vector[T]) Traits() alloc.Traits[T] { return v.st.cont.Traits() }

func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.st.live() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteByte(']')
	return b.String()
}
