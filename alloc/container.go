package alloc

import "github.com/npillmayer/vek/seq"

// Container binds an allocator to element traits and offers the range-level
// operations containers are built from. Buffers handed to the construct,
// destroy and deallocate operations must have come from this container's
// allocator (or an equal one).
//
// Containers are cheap values; copying one shares the allocator.
type Container[T any] struct {
	alloc  Allocator[T]
	traits Traits[T]
}

// NewContainer binds a to tr. A nil allocator defaults to Std, nil trait
// functions to stock behaviour.
func NewContainer[T any](a Allocator[T], tr Traits[T]) Container[T] {
	if a == nil {
		a = Std[T]()
	}
	return Container[T]{alloc: a, traits: tr.normalized()}
}

// Allocator returns the bound allocator.
func (c Container[T]) Allocator() Allocator[T] {
	return c.alloc
}

// SetAllocator rebinds the container to a. Callers are responsible for
// migrating buffers held under the previous allocator first.
func (c *Container[T]) SetAllocator(a Allocator[T]) {
	if a == nil {
		a = Std[T]()
	}
	c.alloc = a
}

// Traits returns the bound element traits, with nil fields normalized.
func (c Container[T]) Traits() Traits[T] {
	return c.traits
}

// Policy returns the bound allocator's propagation policy.
func (c Container[T]) Policy() Policy {
	return c.alloc.Policy()
}

// SelectOnCopy returns the allocator a copy of the owning container should
// use.
func (c Container[T]) SelectOnCopy() Allocator[T] {
	return c.alloc
}

// CanExchange reports whether buffers may be handed over between this
// container's allocator and other. Equal covers always-equal allocator
// kinds, since their Equal accepts any instance of the same kind.
func (c Container[T]) CanExchange(other Allocator[T]) bool {
	return c.alloc.Equal(other)
}

// Allocate requests storage for n elements.
func (c Container[T]) Allocate(n int) ([]T, error) {
	buf, err := c.alloc.Allocate(n)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("allocated buffer for %d element(s)", n)
	return buf, nil
}

// Deallocate releases a buffer produced by Allocate.
func (c Container[T]) Deallocate(buf []T) {
	if buf != nil {
		c.alloc.Deallocate(buf)
	}
}

// --- Single-element operations ---------------------------------------------

// Construct default-constructs the element at p. Elided for trivially
// constructible types.
func (c Container[T]) Construct(p *T) {
	if !c.traits.TrivialConstruct {
		*p = c.traits.Default()
	}
}

// Destroy disposes the element at p. Elided for trivially destroyable types.
func (c Container[T]) Destroy(p *T) {
	if !c.traits.TrivialDestroy {
		c.traits.Destroy(p)
	}
}

// CopyAssign overwrites the live element at dst with a copy of v, disposing
// the previous value if disposal is non-trivial.
func (c Container[T]) CopyAssign(dst *T, v T) {
	if !c.traits.TrivialDestroy {
		c.traits.Destroy(dst)
	}
	*dst = c.traits.Copy(v)
}

// MoveAssign overwrites the live element at dst with the value relocated
// out of src.
func (c Container[T]) MoveAssign(dst, src *T) {
	if !c.traits.TrivialDestroy {
		c.traits.Destroy(dst)
	}
	*dst = c.traits.Move(src)
}

// --- Range operations ------------------------------------------------------

// ConstructRange default-constructs every element of raw storage xs.
func (c Container[T]) ConstructRange(xs []T) {
	if c.traits.TrivialConstruct {
		return
	}
	for i := range xs {
		xs[i] = c.traits.Default()
	}
}

// DestroyRange disposes every live element of xs.
func (c Container[T]) DestroyRange(xs []T) {
	if c.traits.TrivialDestroy {
		return
	}
	for i := range xs {
		c.traits.Destroy(&xs[i])
	}
}

// FillRange copy-constructs val into every element of raw storage xs.
func (c Container[T]) FillRange(xs []T, val T) {
	for i := range xs {
		xs[i] = c.traits.Copy(val)
	}
}

// AssignFill overwrites every live element of xs with a copy of val.
// Collapses into FillRange for trivially destroyable types.
func (c Container[T]) AssignFill(xs []T, val T) {
	if c.traits.TrivialDestroy {
		c.FillRange(xs, val)
		return
	}
	for i := range xs {
		c.traits.Destroy(&xs[i])
		xs[i] = c.traits.Copy(val)
	}
}

// ZeroRange overwrites raw storage xs with default values. Unlike
// ConstructRange this is never elided: the slots may hold residue of
// previously truncated elements.
func (c Container[T]) ZeroRange(xs []T) {
	for i := range xs {
		xs[i] = c.traits.Default()
	}
}

// AssignZero overwrites live elements of xs with default values.
func (c Container[T]) AssignZero(xs []T) {
	if c.traits.TrivialDestroy {
		c.ZeroRange(xs)
		return
	}
	for i := range xs {
		c.traits.Destroy(&xs[i])
		xs[i] = c.traits.Default()
	}
}

// CopyFrom copy-constructs the elements of src into raw storage dst, which
// must hold at least len(src) slots.
func (c Container[T]) CopyFrom(dst, src []T) {
	for i := range src {
		dst[i] = c.traits.Copy(src[i])
	}
}

// MoveFrom move-constructs the elements of src into raw storage dst,
// leaving disposable values behind in src. dst must hold at least len(src)
// slots and must not overlap src.
func (c Container[T]) MoveFrom(dst, src []T) {
	for i := range src {
		dst[i] = c.traits.Move(&src[i])
	}
}

// CopyAssignFrom overwrites live elements of dst with copies from src.
// Collapses into CopyFrom for trivially destroyable types.
func (c Container[T]) CopyAssignFrom(dst, src []T) {
	if c.traits.TrivialDestroy {
		c.CopyFrom(dst, src)
		return
	}
	for i := range src {
		c.traits.Destroy(&dst[i])
		dst[i] = c.traits.Copy(src[i])
	}
}

// MoveAssignFrom overwrites live elements of dst with values relocated out
// of src. Iteration is in forward order, so overlapping ranges are safe
// when dst precedes src (shifting elements towards the front).
func (c Container[T]) MoveAssignFrom(dst, src []T) {
	if c.traits.TrivialDestroy {
		copy(dst, src)
		return
	}
	for i := range src {
		c.traits.Destroy(&dst[i])
		dst[i] = c.traits.Move(&src[i])
	}
}

// --- Sequence operations ---------------------------------------------------

// CopyFromSeq copy-constructs elements drawn from src into raw storage dst
// until either is exhausted. Returns the number of elements constructed.
func (c Container[T]) CopyFromSeq(dst []T, src seq.Seq[T]) int {
	n := 0
	for n < len(dst) {
		v, ok := src.Next()
		if !ok {
			break
		}
		dst[n] = c.traits.Copy(v)
		n++
	}
	return n
}

// AssignFromSeq overwrites live elements of dst with elements drawn from
// src until either is exhausted. Returns the number of elements assigned.
func (c Container[T]) AssignFromSeq(dst []T, src seq.Seq[T]) int {
	if c.traits.TrivialDestroy {
		return c.CopyFromSeq(dst, src)
	}
	n := 0
	for n < len(dst) {
		v, ok := src.Next()
		if !ok {
			break
		}
		c.traits.Destroy(&dst[n])
		dst[n] = c.traits.Copy(v)
		n++
	}
	return n
}
