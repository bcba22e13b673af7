package vector

import (
	"fmt"

	"github.com/npillmayer/vek/maybe"
)

// Erase removes the element at index i, shifting the tail towards the
// front. No-op on an empty vector. Returns i, now the index of the element
// that followed the removed one.
func (v *Vector[T]) Erase(i int) int {
	if v.st.empty() {
		return i
	}
	return v.EraseRange(i, i+1)
}

// EraseRange removes the elements at [i, j). Capacity is retained; erasing
// through the end degenerates to truncation. Returns i.
func (v *Vector[T]) EraseRange(i, j int) int {
	s := &v.st
	assertThat(0 <= i && i <= j && j <= s.size, "erase range [%d, %d) out of range", i, j)
	s.eraseRange(i, j)
	return i
}

// Clear removes all elements, retaining capacity.
func (v *Vector[T]) Clear() {
	v.st.truncate(0)
}

// Release removes all elements and returns the buffer to the allocator.
func (v *Vector[T]) Release() {
	v.st.release()
}

// TakeBack removes the last element and hands it to the caller, or Nothing
// when the vector is empty.
func (v *Vector[T]) TakeBack() maybe.Maybe[T] {
	s := &v.st
	if s.empty() {
		return maybe.Nothing[T]()
	}
	s.size--
	val := s.cont.Traits().Move(&s.data[s.size])
	s.cont.Destroy(&s.data[s.size])
	return maybe.Just(val)
}

// TakeAt removes the element at index i and hands it to the caller.
func (v *Vector[T]) TakeAt(i int) (T, error) {
	s := &v.st
	if i < 0 || i >= s.size {
		var zero T
		return zero, fmt.Errorf("index %d of vector with %d element(s): %w",
			i, s.size, ErrOutOfRange)
	}
	val := s.cont.Traits().Move(&s.data[i])
	s.eraseRange(i, i+1)
	return val, nil
}

// TakeRange removes the elements at [i, j), handing each one to out in
// order. Returns the number of elements taken.
func (v *Vector[T]) TakeRange(i, j int, out func(T)) (int, error) {
	s := &v.st
	if i < 0 || j < i || j > s.size {
		return 0, fmt.Errorf("range [%d, %d) of vector with %d element(s): %w",
			i, j, s.size, ErrOutOfRange)
	}
	tr := s.cont.Traits()
	for k := i; k < j; k++ {
		out(tr.Move(&s.data[k]))
	}
	s.eraseRange(i, j)
	return j - i, nil
}
