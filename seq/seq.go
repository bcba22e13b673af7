package seq

// Seq is a single-pass source of elements. Next returns the next element and
// true, or the zero value and false once the sequence is exhausted. A Seq
// stays exhausted: after the first false, every further call returns false.
type Seq[T any] interface {
	Next() (T, bool)
}

// Multipass is a sequence that additionally knows its length and can be
// traversed more than once. Len reports how many elements Next will still
// deliver, so consumers can size buffers for partially drained sequences.
// Rewind resets the sequence to its first element.
type Multipass[T any] interface {
	Seq[T]
	Len() int
	Rewind()
}

// AsMultipass probes s for multipass capability.
func AsMultipass[T any](s Seq[T]) (Multipass[T], bool) {
	mp, ok := s.(Multipass[T])
	return mp, ok
}

// FromSlice returns a multipass sequence over xs. The slice is not copied;
// callers must not mutate it while the sequence is in use.
func FromSlice[T any](xs []T) Multipass[T] {
	return &sliceSeq[T]{xs: xs}
}

// Values returns a multipass sequence over the given values.
func Values[T any](xs ...T) Multipass[T] {
	return &sliceSeq[T]{xs: xs}
}

// Empty returns a multipass sequence with no elements.
func Empty[T any]() Multipass[T] {
	return &sliceSeq[T]{}
}

type sliceSeq[T any] struct {
	xs  []T
	pos int
}

func (s *sliceSeq[T]) Next() (T, bool) {
	if s.pos >= len(s.xs) {
		var zero T
		return zero, false
	}
	v := s.xs[s.pos]
	s.pos++
	return v, true
}

func (s *sliceSeq[T]) Len() int {
	return len(s.xs) - s.pos
}

func (s *sliceSeq[T]) Rewind() {
	s.pos = 0
}

// FromFunc wraps a generator function as a single-pass sequence. f is called
// until it reports false; from then on the sequence is exhausted and f will
// not be called again.
func FromFunc[T any](f func() (T, bool)) Seq[T] {
	return &funcSeq[T]{f: f}
}

type funcSeq[T any] struct {
	f    func() (T, bool)
	done bool
}

func (s *funcSeq[T]) Next() (T, bool) {
	if s.done {
		var zero T
		return zero, false
	}
	v, ok := s.f()
	if !ok {
		s.done = true
		var zero T
		return zero, false
	}
	return v, true
}

// Collect drains s into a fresh slice. Mainly useful in tests.
func Collect[T any](s Seq[T]) []T {
	var xs []T
	if mp, ok := AsMultipass(s); ok {
		xs = make([]T, 0, mp.Len())
	}
	for {
		v, ok := s.Next()
		if !ok {
			break
		}
		xs = append(xs, v)
	}
	tracer().Debugf("collected %d elements from sequence", len(xs))
	return xs
}
