package vector

import (
	"github.com/npillmayer/vek/seq"
)

// Single-pass sources of unknown length cannot be measured up front, so
// bulk insertion cannot allocate the right buffer in one go. The chaining
// strategy below drains the source into a series of geometrically growing
// buffers and combines them afterwards, keeping the cost at O(existing)
// element moves plus O(input) element constructions. Every drawn element is
// constructed exactly once and moved at most once.

// segment is one temporary buffer in the chain. Elements fill it circularly:
// the first lands at index start, successors follow and wrap around at the
// end of the buffer.
type segment[T any] struct {
	buf   []T
	start int // index of the first inserted element
	n     int // number of inserted elements
}

// tailLen returns how many of the segment's elements sit at [start, ...),
// before the circular wrap.
func (g segment[T]) tailLen() int {
	if g.start+g.n > len(g.buf) {
		return len(g.buf) - g.start
	}
	return g.n
}

func (g segment[T]) wrapped() bool {
	return g.start+g.n > len(g.buf)
}

// destroySegment disposes a segment's inserted elements and returns its
// buffer.
func (s *storage[T]) destroySegment(g segment[T]) {
	tail := g.tailLen()
	s.cont.DestroyRange(g.buf[g.start : g.start+tail])
	if rest := g.n - tail; rest > 0 {
		s.cont.DestroyRange(g.buf[:rest])
	}
	s.cont.Deallocate(g.buf)
}

// insertHorrible drains first and the remainder of src into a chain of
// buffers and combines them into a single buffer in which the drawn
// elements sit at [index, end), with every other slot raw storage. The
// size and capacity arguments describe the vector the elements are destined
// for: size existing elements, index of them preceding the insertion point.
// The caller relocates its prefix and suffix around the returned range and
// adopts the buffer.
//
// The last chained buffer is reused as the combination target when the
// final contents fit into it and its fill did not wrap; otherwise a fresh
// buffer is allocated and all segments are move-combined into it.
func (s *storage[T]) insertHorrible(index, size, capacity int, first T, src seq.Seq[T]) (buf []T, end int, err error) {
	tr := s.cont.Traits()
	var segs []segment[T]
	curSize, curCap, curIndex := size, capacity, index
	v, more := first, true

	for more {
		c := nextCapacity(curCap)
		for c < curSize {
			c = nextCapacity(c)
		}
		b, aerr := s.cont.Allocate(c)
		if aerr != nil {
			for _, g := range segs {
				s.destroySegment(g)
			}
			return nil, 0, aerr
		}
		g := segment[T]{buf: b, start: curIndex}
		tracer().Debugf("insert chains buffer #%d of capacity %d, fill starts at %d",
			len(segs)+1, c, curIndex)
		for more && g.n < c {
			p := g.start + g.n
			if p >= c {
				p -= c
			}
			b[p] = tr.Copy(v)
			g.n++
			v, more = src.Next()
		}
		segs = append(segs, g)
		curSize += g.n
		curIndex += g.n
		curCap = c
	}

	// combine: reuse the last buffer when everything fits in place
	last := segs[len(segs)-1]
	reuse := curSize <= len(last.buf) && !last.wrapped()
	combine := segs
	var final []T
	if reuse {
		final = last.buf
		combine = segs[:len(segs)-1]
	} else {
		for curSize > curCap {
			curCap = nextCapacity(curCap)
		}
		final, err = s.cont.Allocate(curCap)
		if err != nil {
			for _, g := range segs {
				s.destroySegment(g)
			}
			return nil, 0, err
		}
		tracer().Debugf("combining %d chained buffer(s) into capacity %d", len(segs), curCap)
	}
	pos := index
	for _, g := range combine {
		tail := g.tailLen()
		s.cont.MoveFrom(final[pos:pos+tail], g.buf[g.start:g.start+tail])
		if rest := g.n - tail; rest > 0 {
			s.cont.MoveFrom(final[pos+tail:pos+g.n], g.buf[:rest])
		}
		s.destroySegment(g)
		pos += g.n
	}
	if reuse {
		assertThat(pos == last.start, "chained buffers must abut the reused buffer's fill start")
		return final, last.start + last.n, nil
	}
	return final, pos, nil
}

// appendSeq appends every element of a single-pass sequence. When the spare
// capacity runs out mid-stream, the remainder goes through buffer chaining.
// On allocation failure the vector is restored to its previous length, but
// input elements drawn from src are lost.
func (s *storage[T]) appendSeq(src seq.Seq[T]) error {
	v, more := src.Next()
	if !more {
		return nil
	}
	if s.data == nil {
		if err := s.reallocate(singlePassPrealloc); err != nil {
			return err
		}
	}
	origSize := s.size
	tr := s.cont.Traits()
	for more && !s.full() {
		s.data[s.size] = tr.Copy(v)
		s.size++
		v, more = src.Next()
	}
	if !more {
		return nil
	}
	buf, end, err := s.insertHorrible(s.size, s.size, len(s.data), v, src)
	if err != nil {
		s.truncate(origSize)
		return err
	}
	s.cont.MoveFrom(buf[:s.size], s.live())
	s.cont.DestroyRange(s.live())
	s.cont.Deallocate(s.data)
	s.data = buf
	s.size = end
	return nil
}

// insertSeqAt inserts a single-pass sequence before position pos < size.
// The spare capacity is tried first through a temporary buffer; inputs
// exceeding it go through buffer chaining, with the temporary treated as
// part of the prefix.
func (s *storage[T]) insertSeqAt(pos int, src seq.Seq[T]) error {
	assertThat(pos < s.size, "interior insert position %d beyond live range", pos)
	v, more := src.Next()
	if !more {
		return nil
	}
	tr := s.cont.Traits()
	var tmp []T
	k := 0
	if n := s.available(); n > 0 {
		var err error
		if tmp, err = s.cont.Allocate(n); err != nil {
			return err
		}
		for more && k < n {
			tmp[k] = tr.Copy(v)
			k++
			v, more = src.Next()
		}
		if !more {
			// input fits into the spare capacity: open the gap in place
			marker := s.moveForwardN(pos, k)
			i := pos
			for ; i < marker; i++ {
				s.cont.MoveAssign(&s.data[i], &tmp[i-pos])
			}
			for ; i < pos+k; i++ {
				s.data[i] = tr.Move(&tmp[i-pos])
			}
			s.cont.DestroyRange(tmp[:k])
			s.cont.Deallocate(tmp)
			return nil
		}
	}
	newIndex := pos + k
	buf, end, err := s.insertHorrible(newIndex, s.size+k, len(s.data), v, src)
	if err != nil {
		if tmp != nil {
			s.cont.DestroyRange(tmp[:k])
			s.cont.Deallocate(tmp)
		}
		return err
	}
	s.cont.MoveFrom(buf[:pos], s.data[:pos])
	if tmp != nil {
		s.cont.MoveFrom(buf[pos:newIndex], tmp[:k])
		s.cont.DestroyRange(tmp[:k])
		s.cont.Deallocate(tmp)
	}
	suffix := s.size - pos
	s.cont.MoveFrom(buf[end:end+suffix], s.data[pos:s.size])
	s.cont.DestroyRange(s.live())
	s.cont.Deallocate(s.data)
	s.data = buf
	s.size = end + suffix
	return nil
}

// assignSeq replaces the contents with a single-pass sequence: live
// elements are overwritten while input lasts, surplus elements are
// truncated, surplus input is appended.
func (s *storage[T]) assignSeq(src seq.Seq[T]) error {
	n := s.cont.AssignFromSeq(s.live(), src)
	if n < s.size {
		s.truncate(n)
		return nil
	}
	return s.appendSeq(src)
}
