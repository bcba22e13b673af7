package vector

import (
	"errors"

	"github.com/npillmayer/vek/alloc"
	"github.com/npillmayer/vek/seq"
)

// ErrOutOfRange is returned by checked element access with an invalid
// index.
var ErrOutOfRange = errors.New("index out of range")

// Vector is a growable array of T backed by a single contiguous buffer.
// Vectors are created with New, which binds allocator and element traits;
// a zero Vector reports itself empty but cannot grow.
type Vector[T any] struct {
	st storage[T]
}

// Option configures a Vector under construction.
type Option[T any] func(*config[T])

type config[T any] struct {
	capacity int
	size     int
	fill     func(c alloc.Container[T], buf []T)
	alloc    alloc.Allocator[T]
	traits   alloc.Traits[T]
}

// WithCapacity pre-allocates room for n elements.
func WithCapacity[T any](n int) Option[T] {
	return func(cfg *config[T]) {
		cfg.capacity = n
	}
}

// WithSize starts the vector off with n default-constructed elements.
func WithSize[T any](n int) Option[T] {
	return func(cfg *config[T]) {
		cfg.size = n
		cfg.fill = nil
	}
}

// WithFill starts the vector off with n copies of val.
func WithFill[T any](n int, val T) Option[T] {
	return func(cfg *config[T]) {
		cfg.size = n
		cfg.fill = func(c alloc.Container[T], buf []T) {
			c.FillRange(buf, val)
		}
	}
}

// WithAllocator makes the vector draw its memory from a.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(cfg *config[T]) {
		cfg.alloc = a
	}
}

// WithTraits sets the element traits, replacing the Plain default.
func WithTraits[T any](tr alloc.Traits[T]) Option[T] {
	return func(cfg *config[T]) {
		cfg.traits = tr
	}
}

// New creates a vector.
//
//	v, err := vector.New(vector.WithCapacity[int](100))
//	w, err := vector.New(vector.WithFill(4, "-"), vector.WithAllocator(a))
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	cfg := config[T]{traits: alloc.Plain[T]()}
	for _, opt := range opts {
		opt(&cfg)
	}
	v := &Vector[T]{}
	v.st.cont = alloc.NewContainer(cfg.alloc, cfg.traits)
	capacity := cfg.capacity
	if cfg.size > capacity {
		capacity = cfg.size
	}
	if capacity > 0 {
		if err := v.st.reallocate(capacity); err != nil {
			return nil, err
		}
	}
	if cfg.size > 0 {
		buf := v.st.data[:cfg.size]
		if cfg.fill != nil {
			cfg.fill(v.st.cont, buf)
		} else {
			v.st.cont.ConstructRange(buf) // fresh buffers arrive zeroed
		}
		v.st.size = cfg.size
	}
	return v, nil
}

// FromSlice creates a vector holding copies of the elements of xs.
func FromSlice[T any](xs []T, opts ...Option[T]) (*Vector[T], error) {
	v, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if len(xs) > 0 {
		if err := v.st.reallocate(v.st.size + len(xs)); err != nil {
			v.st.release()
			return nil, err
		}
		v.st.cont.CopyFrom(v.st.data[v.st.size:v.st.size+len(xs)], xs)
		v.st.size += len(xs)
	}
	return v, nil
}

// FromSeq creates a vector by draining src.
func FromSeq[T any](src seq.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	v, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if _, err := v.Append(src); err != nil {
		v.st.release()
		return nil, err
	}
	return v, nil
}

// Clone returns an independent copy of v. The copy's capacity equals its
// length.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.CloneWith(v.st.cont.SelectOnCopy())
}

// CloneWith is Clone with the copy bound to allocator a.
func (v *Vector[T]) CloneWith(a alloc.Allocator[T]) (*Vector[T], error) {
	w := &Vector[T]{}
	w.st.cont = alloc.NewContainer(a, v.st.cont.Traits())
	if v.st.size > 0 {
		if err := w.st.reallocate(v.st.size); err != nil {
			return nil, err
		}
		w.st.cont.CopyFrom(w.st.data[:v.st.size], v.st.live())
		w.st.size = v.st.size
	}
	return w, nil
}

// CopyFrom makes v an element-wise copy of other, honoring the incoming
// allocator's copy-propagation policy. When the allocator propagates but
// cannot take over the current buffer, the buffer is released up front.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	incoming := other.st.cont.SelectOnCopy()
	if incoming.Policy().PropagateOnCopy {
		if !v.st.cont.CanExchange(incoming) {
			v.st.release()
		}
		v.st.cont.SetAllocator(incoming)
	}
	return v.assignSlice(other.st.live())
}

// MoveFrom moves other's contents into v, leaving other empty. The buffer
// is handed over whenever the allocators permit it; otherwise every element
// is moved individually.
func (v *Vector[T]) MoveFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	p := other.st.cont.Policy()
	if p.PropagateOnMove || v.st.cont.CanExchange(other.st.cont.Allocator()) {
		v.st.release()
		if p.PropagateOnMove {
			v.st.cont.SetAllocator(other.st.cont.Allocator())
		}
		v.st.data = other.st.data
		v.st.size = other.st.size
		other.st.data = nil
		other.st.size = 0
		return nil
	}
	tracer().Debugf("move between unrelated allocators falls back to element-wise move")
	if err := v.moveElementsFrom(other); err != nil {
		return err
	}
	other.st.truncate(0)
	return nil
}

// Swap exchanges contents with other in constant time. Allocators travel
// along only when their policy says so; otherwise both vectors keep their
// own allocator, which must then be interchangeable with the other's.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	if !v.st.cont.Policy().PropagateOnSwap {
		assertThat(v.st.cont.CanExchange(other.st.cont.Allocator()),
			"swap without propagation requires interchangeable allocators")
		vc, oc := v.st.cont, other.st.cont
		v.st, other.st = other.st, v.st
		v.st.cont, other.st.cont = vc, oc
		return
	}
	v.st, other.st = other.st, v.st
}

// SetAllocator rebinds v to allocator a. When a cannot take over the
// current buffer, the contents are relocated into a buffer obtained from a
// first.
func (v *Vector[T]) SetAllocator(a alloc.Allocator[T]) error {
	s := &v.st
	if s.cont.CanExchange(a) || s.data == nil {
		s.cont.SetAllocator(a)
		return nil
	}
	if s.empty() {
		s.release()
		s.cont.SetAllocator(a)
		return nil
	}
	fresh := alloc.NewContainer(a, s.cont.Traits())
	newData, err := fresh.Allocate(len(s.data))
	if err != nil {
		return err
	}
	fresh.MoveFrom(newData[:s.size], s.live())
	s.cont.DestroyRange(s.live())
	s.cont.Deallocate(s.data)
	s.data = newData
	s.cont = fresh
	return nil
}

// assignSlice replaces the contents with copies of xs. Live elements are
// overwritten in place when that pays off; otherwise the vector is rebuilt
// from scratch.
func (v *Vector[T]) assignSlice(xs []T) error {
	s := &v.st
	n := len(xs)
	tr := s.cont.Traits()
	if tr.TrivialDestroy || n > len(s.data) {
		if err := s.reallocate(n); err != nil {
			return err
		}
		s.truncate(0)
		s.cont.CopyFrom(s.data[:n], xs)
		s.size = n
		return nil
	}
	k := min(n, s.size)
	s.cont.CopyAssignFrom(s.data[:k], xs[:k])
	if n > s.size {
		s.cont.CopyFrom(s.data[s.size:n], xs[s.size:])
		s.size = n
	} else {
		s.truncate(n)
	}
	return nil
}

// moveElementsFrom is the element-wise flavor of MoveFrom, used when the
// buffer cannot change hands.
func (v *Vector[T]) moveElementsFrom(other *Vector[T]) error {
	s, o := &v.st, &other.st
	n := o.size
	tr := s.cont.Traits()
	if tr.TrivialDestroy || n > len(s.data) {
		if err := s.reallocate(n); err != nil {
			return err
		}
		s.truncate(0)
		s.cont.MoveFrom(s.data[:n], o.live())
		s.size = n
		return nil
	}
	k := min(n, s.size)
	s.cont.MoveAssignFrom(s.data[:k], o.data[:k])
	if n > s.size {
		s.cont.MoveFrom(s.data[s.size:n], o.data[s.size:n])
		s.size = n
	} else {
		s.truncate(n)
	}
	return nil
}
