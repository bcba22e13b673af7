package alloc

import "fmt"

// Policy describes how an allocator travels with the container owning it.
// Containers consult it during copy-assign, move-assign and swap, and to
// decide whether a buffer may be handed from one allocator instance to
// another.
type Policy struct {
	PropagateOnCopy bool // copy-assign replaces the target's allocator
	PropagateOnMove bool // move-assign replaces the target's allocator
	PropagateOnSwap bool // swap exchanges the allocators
	AlwaysEqual     bool // all instances are interchangeable
}

// Failure reports that an allocator could not satisfy a request. Allocation
// failure is not retried; callers propagate it with the container left in
// its previous state.
type Failure struct {
	Count int // requested number of elements
}

func (f *Failure) Error() string {
	return fmt.Sprintf("alloc: cannot allocate storage for %d element(s)", f.Count)
}

// Allocator hands out element buffers. Allocate returns storage for exactly
// n elements (len == n) or a *Failure; it never returns partial storage.
// Deallocate takes back a buffer previously returned by Allocate of this or
// an equal allocator.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(buf []T)
	Policy() Policy
	Equal(other Allocator[T]) bool
}

// Std returns the default heap allocator. It is stateless: all instances
// are equal and propagate freely.
func Std[T any]() Allocator[T] {
	return stdAlloc[T]{}
}

type stdAlloc[T any] struct{}

func (stdAlloc[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, &Failure{Count: n}
	}
	return make([]T, n), nil
}

func (stdAlloc[T]) Deallocate(buf []T) {}

func (stdAlloc[T]) Policy() Policy {
	return Policy{
		PropagateOnCopy: true,
		PropagateOnMove: true,
		PropagateOnSwap: true,
		AlwaysEqual:     true,
	}
}

func (stdAlloc[T]) Equal(other Allocator[T]) bool {
	_, ok := other.(stdAlloc[T])
	return ok
}

// Bounded returns an allocator with a fixed element budget. Requests beyond
// the remaining budget fail; Deallocate returns elements to the budget.
// Instances are stateful and therefore unequal, and do not propagate.
func Bounded[T any](limit int) Allocator[T] {
	return &boundedAlloc[T]{limit: limit}
}

type boundedAlloc[T any] struct {
	limit int
	used  int
}

func (a *boundedAlloc[T]) Allocate(n int) ([]T, error) {
	if n < 0 || a.used+n > a.limit {
		tracer().Debugf("bounded allocator refuses %d elements, %d of %d in use", n, a.used, a.limit)
		return nil, &Failure{Count: n}
	}
	a.used += n
	return make([]T, n), nil
}

func (a *boundedAlloc[T]) Deallocate(buf []T) {
	a.used -= len(buf)
	if a.used < 0 {
		a.used = 0
	}
}

// Used returns the number of budget elements currently handed out.
func (a *boundedAlloc[T]) Used() int {
	return a.used
}

func (a *boundedAlloc[T]) Policy() Policy {
	return Policy{}
}

func (a *boundedAlloc[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*boundedAlloc[T])
	return ok && o == a
}
