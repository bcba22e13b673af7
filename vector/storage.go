package vector

import (
	"fmt"

	"github.com/npillmayer/vek/alloc"
)

// storage is the memory controller underneath Vector: a buffer of capacity
// slots, the first size of which hold live elements.
type storage[T any] struct {
	cont alloc.Container[T]
	data []T // len(data) is the capacity; nil in the unallocated state
	size int // live range is data[:size]
}

func (s *storage[T]) capacity() int  { return len(s.data) }
func (s *storage[T]) available() int { return len(s.data) - s.size }
func (s *storage[T]) empty() bool    { return s.size == 0 }
func (s *storage[T]) full() bool     { return s.size == len(s.data) }
func (s *storage[T]) live() []T      { return s.data[:s.size] }

// firstCapacityIncrement is the capacity after growing out of the
// unallocated state.
const firstCapacityIncrement = 2

// singlePassPrealloc is the buffer size allocated up front when filling an
// empty vector from a single-pass sequence of unknown length: the second
// step of the growth schedule.
const singlePassPrealloc = 4

// nextCapacity is the geometric growth schedule: 0 grows to 2, everything
// else doubles.
func nextCapacity(cur int) int {
	if cur == 0 {
		return firstCapacityIncrement
	}
	return cur * 2
}

// bestCapacity picks the larger of the next schedule step and needed, so
// growth stays geometric even for bulk insertions.
func (s *storage[T]) bestCapacity(needed int) int {
	if next := nextCapacity(len(s.data)); next > needed {
		return next
	}
	return needed
}

// reallocate grows the buffer to at least newCap slots. No-op when the
// current buffer is already large enough. On allocation failure the storage
// is untouched.
func (s *storage[T]) reallocate(newCap int) error {
	if newCap <= len(s.data) {
		return nil
	}
	return s.exchangeBuffer(newCap)
}

// exchangeBuffer unconditionally allocates a buffer of newCap slots,
// relocates the live range into it and releases the old buffer.
func (s *storage[T]) exchangeBuffer(newCap int) error {
	assertThat(newCap >= s.size, "buffer exchange would drop live elements")
	newData, err := s.cont.Allocate(newCap)
	if err != nil {
		return err
	}
	tracer().Debugf("relocating %d element(s) into buffer of capacity %d", s.size, newCap)
	if s.data != nil {
		s.cont.MoveFrom(newData, s.live())
		s.cont.DestroyRange(s.live())
		s.cont.Deallocate(s.data)
	}
	s.data = newData
	return nil
}

// moveForward1 shifts data[pos:size] one slot towards the back, extending
// the live range by one. The vacated slot at pos still holds a moved-from
// element unless destruction is trivial; callers overwrite it either way.
func (s *storage[T]) moveForward1(pos int) {
	assertThat(!s.full(), "attempt to shift elements beyond capacity")
	assertThat(pos < s.size, "attempt to shift an empty suffix")
	last := s.size
	s.size++
	tr := s.cont.Traits()
	if tr.TrivialDestroy {
		copy(s.data[pos+1:last+1], s.data[pos:last])
		return
	}
	// backmost element moves into raw storage, the rest move-assign into
	// the slot their successor vacated
	s.data[last] = tr.Move(&s.data[last-1])
	for dest := last - 1; dest > pos; dest-- {
		s.cont.MoveAssign(&s.data[dest], &s.data[dest-1])
	}
}

// moveForwardN shifts data[pos:size] n slots towards the back, extending
// the live range by n and opening a gap at data[pos:pos+n]. The return
// value marks where the uninitialised portion of the gap begins: gap slots
// before the marker still hold moved-from elements and want assignment,
// slots from the marker on are raw storage and want construction.
func (s *storage[T]) moveForwardN(pos, n int) int {
	assertThat(n > 0, "gap size must be positive")
	assertThat(pos < s.size, "attempt to shift an empty suffix")
	last := s.size
	assertThat(last+n <= len(s.data), "attempt to shift elements beyond capacity")
	s.size = last + n
	tr := s.cont.Traits()
	if tr.TrivialDestroy {
		copy(s.data[pos+n:last+n], s.data[pos:last])
		return pos + n // assignment equals construction, marker is moot
	}
	src, dest := last, last+n
	for dest > last && src > pos { // move-construct into raw storage
		src--
		dest--
		s.data[dest] = tr.Move(&s.data[src])
	}
	for src > pos { // move-assign into vacated slots
		src--
		dest--
		s.cont.MoveAssign(&s.data[dest], &s.data[src])
	}
	if pos+n < last { // gap lies entirely within the old live range
		return pos + n
	}
	return last
}

// makeGap1 opens a one-slot gap at pos, reallocating when full. The boolean
// is true when the gap slot is raw storage (wants construction), false when
// it still holds a moved-from element (wants assignment).
func (s *storage[T]) makeGap1(pos int) (bool, error) {
	if s.full() {
		newCap := nextCapacity(len(s.data))
		newData, err := s.cont.Allocate(newCap)
		if err != nil {
			return false, err
		}
		tracer().Debugf("gap at %d forces reallocation to capacity %d", pos, newCap)
		s.cont.MoveFrom(newData[:pos], s.data[:pos])
		s.cont.MoveFrom(newData[pos+1:s.size+1], s.data[pos:s.size])
		s.cont.DestroyRange(s.live())
		s.cont.Deallocate(s.data)
		s.data = newData
		s.size++
		return true, nil
	}
	s.moveForward1(pos)
	return s.cont.Traits().TrivialDestroy, nil
}

// makeGapN opens an n-slot gap at data[pos:pos+n], reallocating when the
// spare capacity does not suffice. Returns the marker separating the
// initialised from the uninitialised portion of the gap, as moveForwardN
// does; after a reallocation the whole gap is raw storage.
func (s *storage[T]) makeGapN(pos, n int) (int, error) {
	if s.size+n > len(s.data) {
		newCap := s.bestCapacity(s.size + n)
		newData, err := s.cont.Allocate(newCap)
		if err != nil {
			return 0, err
		}
		tracer().Debugf("gap of %d at %d forces reallocation to capacity %d", n, pos, newCap)
		s.cont.MoveFrom(newData[:pos], s.data[:pos])
		s.cont.MoveFrom(newData[pos+n:pos+n+s.size-pos], s.data[pos:s.size])
		s.cont.DestroyRange(s.live())
		s.cont.Deallocate(s.data)
		s.data = newData
		s.size += n
		return pos, nil
	}
	return s.moveForwardN(pos, n), nil
}

// truncate destroys the live elements beyond newSize. Capacity is retained.
func (s *storage[T]) truncate(newSize int) {
	assertThat(newSize <= s.size, "truncation cannot grow the live range")
	s.cont.DestroyRange(s.data[newSize:s.size])
	s.size = newSize
}

// eraseRange removes data[i:j], closing the hole by shifting the tail
// towards the front. Capacity is retained.
func (s *storage[T]) eraseRange(i, j int) {
	if i == j {
		return
	}
	s.cont.MoveAssignFrom(s.data[i:], s.data[j:s.size])
	s.truncate(s.size - (j - i))
}

// release destroys all elements, returns the buffer to the allocator and
// re-enters the unallocated state.
func (s *storage[T]) release() {
	if s.data == nil {
		s.size = 0
		return
	}
	s.truncate(0)
	s.cont.Deallocate(s.data)
	s.data = nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
