package vector

import (
	"github.com/npillmayer/vek/seq"
)

// Push appends a copy of val. val may alias an element of v.
func (v *Vector[T]) Push(val T) error {
	s := &v.st
	if !s.full() || s.cont.Traits().NoAlias {
		return v.XPush(val)
	}
	// secure the copy before any element is relocated
	tr := s.cont.Traits()
	tmp := tr.Copy(val)
	if err := s.exchangeBuffer(nextCapacity(len(s.data))); err != nil {
		s.cont.Destroy(&tmp)
		return err
	}
	s.data[s.size] = tr.Move(&tmp)
	s.size++
	return nil
}

// XPush appends a copy of val, assuming val does not alias an element of
// v. Saves a temporary on the growth path.
func (v *Vector[T]) XPush(val T) error {
	s := &v.st
	if s.full() {
		if err := s.exchangeBuffer(nextCapacity(len(s.data))); err != nil {
			return err
		}
	}
	s.data[s.size] = s.cont.Traits().Copy(val)
	s.size++
	return nil
}

// PushWith appends the element produced by mk, constructing it directly in
// its final slot.
func (v *Vector[T]) PushWith(mk func() T) error {
	s := &v.st
	if s.full() {
		if err := s.exchangeBuffer(nextCapacity(len(s.data))); err != nil {
			return err
		}
	}
	s.data[s.size] = mk()
	s.size++
	return nil
}

// PushZero appends a default-constructed element.
func (v *Vector[T]) PushZero() error {
	s := &v.st
	if s.full() {
		if err := s.exchangeBuffer(nextCapacity(len(s.data))); err != nil {
			return err
		}
	}
	// the slot may hold residue of a truncated element, so write
	// unconditionally
	s.data[s.size] = s.cont.Traits().Default()
	s.size++
	return nil
}

// Pop removes the last element; no-op on an empty vector.
func (v *Vector[T]) Pop() {
	if v.st.empty() {
		return
	}
	v.st.truncate(v.st.size - 1)
}

// Insert inserts a copy of val before index i; i == Len() appends. Returns
// the index of the inserted element. val may alias an element of v.
func (v *Vector[T]) Insert(i int, val T) (int, error) {
	s := &v.st
	assertThat(i >= 0 && i <= s.size, "insert position %d out of range", i)
	if s.cont.Traits().NoAlias {
		return v.XInsert(i, val)
	}
	if i == s.size {
		return i, v.Push(val)
	}
	tmp := s.cont.Traits().Copy(val)
	return i, v.emplaceMove(i, &tmp)
}

// XInsert is Insert under the assumption that val does not alias an
// element of v.
func (v *Vector[T]) XInsert(i int, val T) (int, error) {
	s := &v.st
	assertThat(i >= 0 && i <= s.size, "insert position %d out of range", i)
	if i == s.size {
		return i, v.XPush(val)
	}
	if s.full() {
		return i, v.xinsertGrow(i, val)
	}
	raw, err := s.makeGap1(i)
	if err != nil {
		return i, err
	}
	if raw {
		s.data[i] = s.cont.Traits().Copy(val)
	} else {
		s.cont.CopyAssign(&s.data[i], val)
	}
	return i, nil
}

// InsertWith inserts the element produced by mk before index i.
func (v *Vector[T]) InsertWith(i int, mk func() T) (int, error) {
	s := &v.st
	assertThat(i >= 0 && i <= s.size, "insert position %d out of range", i)
	if i == s.size {
		return i, v.PushWith(mk)
	}
	tmp := mk()
	return i, v.emplaceMove(i, &tmp)
}

// emplaceMove opens a gap at i and relocates *tmp into it. On failure the
// temporary is disposed.
func (v *Vector[T]) emplaceMove(i int, tmp *T) error {
	s := &v.st
	raw, err := s.makeGap1(i)
	if err != nil {
		s.cont.Destroy(tmp)
		return err
	}
	if raw {
		s.data[i] = s.cont.Traits().Move(tmp)
	} else {
		s.cont.MoveAssign(&s.data[i], tmp)
	}
	return nil
}

// xinsertGrow constructs the new element directly into the grown buffer
// before relocating the existing elements around it, saving a temporary.
// Only safe when val does not alias an element.
func (v *Vector[T]) xinsertGrow(i int, val T) error {
	s := &v.st
	newData, err := s.cont.Allocate(nextCapacity(len(s.data)))
	if err != nil {
		return err
	}
	newData[i] = s.cont.Traits().Copy(val)
	s.cont.MoveFrom(newData[:i], s.data[:i])
	s.cont.MoveFrom(newData[i+1:s.size+1], s.data[i:s.size])
	s.cont.DestroyRange(s.live())
	s.cont.Deallocate(s.data)
	s.data = newData
	s.size++
	return nil
}

// InsertN inserts n copies of val before index i. Returns the index of the
// first inserted element. val may alias an element of v.
func (v *Vector[T]) InsertN(i, n int, val T) (int, error) {
	s := &v.st
	assertThat(i >= 0 && i <= s.size, "insert position %d out of range", i)
	if n <= 0 {
		return i, nil
	}
	// secure the exemplar before any element is relocated
	tmp := s.cont.Traits().Copy(val)
	defer s.cont.Destroy(&tmp)
	if i == s.size {
		if err := s.reallocate(s.bestCapacity(s.size + n)); err != nil {
			return i, err
		}
		s.cont.FillRange(s.data[s.size:s.size+n], tmp)
		s.size += n
		return i, nil
	}
	marker, err := s.makeGapN(i, n)
	if err != nil {
		return i, err
	}
	s.cont.AssignFill(s.data[i:marker], tmp)
	s.cont.FillRange(s.data[marker:i+n], tmp)
	return i, nil
}

// Append appends every element of src. Returns the index of the first
// appended element.
func (v *Vector[T]) Append(src seq.Seq[T]) (int, error) {
	s := &v.st
	first := s.size
	if mp, ok := seq.AsMultipass[T](src); ok {
		n := mp.Len()
		if n == 0 {
			return first, nil
		}
		if err := s.reallocate(s.bestCapacity(s.size + n)); err != nil {
			return first, err
		}
		k := s.cont.CopyFromSeq(s.data[s.size:s.size+n], mp)
		s.size += k
		return first, nil
	}
	return first, s.appendSeq(src)
}

// InsertSeq inserts every element of src before index i. Multipass sources
// are measured up front and inserted with at most one allocation;
// single-pass sources go through incremental buffer chaining. Returns the
// index of the first inserted element.
func (v *Vector[T]) InsertSeq(i int, src seq.Seq[T]) (int, error) {
	s := &v.st
	assertThat(i >= 0 && i <= s.size, "insert position %d out of range", i)
	if i == s.size {
		return v.Append(src)
	}
	if mp, ok := seq.AsMultipass[T](src); ok {
		n := mp.Len()
		if n == 0 {
			return i, nil
		}
		marker, err := s.makeGapN(i, n)
		if err != nil {
			return i, err
		}
		s.cont.AssignFromSeq(s.data[i:marker], mp)
		s.cont.CopyFromSeq(s.data[marker:i+n], mp)
		return i, nil
	}
	return i, s.insertSeqAt(i, src)
}

// InsertSlice inserts copies of xs before index i.
func (v *Vector[T]) InsertSlice(i int, xs ...T) (int, error) {
	return v.InsertSeq(i, seq.FromSlice(xs))
}
