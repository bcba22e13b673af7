package vector

import (
	"github.com/npillmayer/vek/seq"
)

// Reserve grows the capacity to at least n. Never shrinks.
func (v *Vector[T]) Reserve(n int) error {
	return v.st.reallocate(n)
}

// Resize appends default values or truncates until the length is n.
func (v *Vector[T]) Resize(n int) error {
	s := &v.st
	assertThat(n >= 0, "cannot resize to negative length %d", n)
	if n <= s.size {
		s.truncate(n)
		return nil
	}
	if err := s.reallocate(n); err != nil {
		return err
	}
	s.cont.ZeroRange(s.data[s.size:n])
	s.size = n
	return nil
}

// ResizeFill is Resize with copies of val instead of default values. val
// may alias an element of v.
func (v *Vector[T]) ResizeFill(n int, val T) error {
	s := &v.st
	assertThat(n >= 0, "cannot resize to negative length %d", n)
	if n <= s.size {
		s.truncate(n)
		return nil
	}
	tmp := s.cont.Traits().Copy(val) // val may be about to be relocated
	defer s.cont.Destroy(&tmp)
	if err := s.reallocate(s.bestCapacity(n)); err != nil {
		return err
	}
	s.cont.FillRange(s.data[s.size:n], tmp)
	s.size = n
	return nil
}

// ShrinkToFit reallocates so that capacity equals length; an empty vector
// returns its buffer altogether.
func (v *Vector[T]) ShrinkToFit() error {
	s := &v.st
	if s.size == len(s.data) {
		return nil
	}
	if s.empty() {
		s.release()
		return nil
	}
	return s.exchangeBuffer(s.size)
}

// Fill replaces the contents with n copies of val.
func (v *Vector[T]) Fill(n int, val T) error {
	s := &v.st
	assertThat(n >= 0, "cannot fill to negative length %d", n)
	tr := s.cont.Traits()
	tmp := tr.Copy(val)
	defer s.cont.Destroy(&tmp)
	if tr.TrivialDestroy || n > len(s.data) {
		if err := s.reallocate(n); err != nil {
			return err
		}
		s.truncate(0)
		s.cont.FillRange(s.data[:n], tmp)
		s.size = n
		return nil
	}
	k := min(n, s.size)
	s.cont.AssignFill(s.data[:k], tmp)
	if n > s.size {
		s.cont.FillRange(s.data[s.size:n], tmp)
		s.size = n
	} else {
		s.truncate(n)
	}
	return nil
}

// Assign replaces the contents with the elements of src. Live elements are
// overwritten in place when that pays off; otherwise the vector is rebuilt.
func (v *Vector[T]) Assign(src seq.Seq[T]) error {
	s := &v.st
	if mp, ok := seq.AsMultipass[T](src); ok {
		n := mp.Len()
		tr := s.cont.Traits()
		if tr.TrivialDestroy || n > len(s.data) {
			if err := s.reallocate(n); err != nil {
				return err
			}
			s.truncate(0)
			s.cont.CopyFromSeq(s.data[:n], mp)
			s.size = n
			return nil
		}
		k := s.cont.AssignFromSeq(s.live(), mp)
		if n > s.size {
			s.cont.CopyFromSeq(s.data[s.size:n], mp)
			s.size = n
		} else {
			s.truncate(k)
		}
		return nil
	}
	return s.assignSeq(src)
}
