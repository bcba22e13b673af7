package vector

import (
	"github.com/npillmayer/vek/seq"
)

// Replace substitutes the elements at [i, j) with the elements of src.
// Shrinking replacements overwrite and erase the leftover range; growing
// replacements reserve the needed capacity up front, then overwrite and
// insert the remainder before j. Returns the index one past the last
// replacement element.
//
// A single-pass src is drained as it is read: when growing the vector
// afterwards fails, elements of [i, j) already overwritten keep their new
// values.
func (v *Vector[T]) Replace(i, j int, src seq.Seq[T]) (int, error) {
	s := &v.st
	assertThat(0 <= i && i <= j && j <= s.size, "replace range [%d, %d) out of range", i, j)
	if mp, ok := seq.AsMultipass[T](src); ok {
		n := mp.Len()
		if n <= j-i {
			s.cont.AssignFromSeq(s.data[i:i+n], mp)
			s.eraseRange(i+n, j)
			return i + n, nil
		}
		// secure the storage before the first element is overwritten
		if err := s.reallocate(s.bestCapacity(s.size + n - (j - i))); err != nil {
			return i, err
		}
		s.cont.AssignFromSeq(s.data[i:j], mp)
		if _, err := v.InsertSeq(j, mp); err != nil {
			return j, err
		}
		return i + n, nil
	}
	// single-pass: overwrite while input lasts, then erase the leftover
	// range or insert the remainder
	k := s.cont.AssignFromSeq(s.data[i:j], src)
	if k < j-i {
		s.eraseRange(i+k, j)
		return i + k, nil
	}
	if j == s.size {
		if err := s.appendSeq(src); err != nil {
			return j, err
		}
		return s.size, nil
	}
	grown := s.size
	if err := s.insertSeqAt(j, src); err != nil {
		return j, err
	}
	return j + (s.size - grown), nil
}

// ReplaceFill substitutes the elements at [i, j) with n copies of val.
// The first copy is committed into the vector and then used as the
// exemplar for the remaining ones, which keeps val usable even when it
// aliases a replaced element. Returns the index one past the last
// replacement element.
func (v *Vector[T]) ReplaceFill(i, j, n int, val T) (int, error) {
	s := &v.st
	assertThat(0 <= i && i <= j && j <= s.size, "replace range [%d, %d) out of range", i, j)
	assertThat(n >= 0, "cannot replace with negative count %d", n)
	m := j - i
	if n == 0 {
		s.eraseRange(i, j)
		return i, nil
	}
	if m == 0 {
		if _, err := v.InsertN(i, n, val); err != nil {
			return i, err
		}
		return i + n, nil
	}
	// secure the storage before the first element is overwritten
	if n > m {
		if err := s.reallocate(s.bestCapacity(s.size + n - m)); err != nil {
			return i, err
		}
	}
	s.cont.CopyAssign(&s.data[i], val)
	if n <= m {
		s.cont.AssignFill(s.data[i+1:i+n], s.data[i])
		s.eraseRange(i+n, j)
		return i + n, nil
	}
	s.cont.AssignFill(s.data[i+1:j], s.data[i])
	if _, err := v.InsertN(j, n-m, s.data[i]); err != nil {
		return j, err
	}
	return i + n, nil
}

// ReplaceZero substitutes the elements at [i, j) with n default values.
// Returns the index one past the last replacement element.
func (v *Vector[T]) ReplaceZero(i, j, n int) (int, error) {
	s := &v.st
	assertThat(0 <= i && i <= j && j <= s.size, "replace range [%d, %d) out of range", i, j)
	assertThat(n >= 0, "cannot replace with negative count %d", n)
	m := j - i
	if n <= m {
		s.cont.AssignZero(s.data[i : i+n])
		s.eraseRange(i+n, j)
		return i + n, nil
	}
	// secure the storage before the first element is overwritten
	r := n - m
	if err := s.reallocate(s.bestCapacity(s.size + r)); err != nil {
		return i, err
	}
	s.cont.AssignZero(s.data[i:j])
	if j == s.size {
		s.cont.ZeroRange(s.data[s.size : s.size+r])
		s.size += r
	} else {
		marker, err := s.makeGapN(j, r)
		if err != nil {
			return j, err
		}
		s.cont.AssignZero(s.data[j:marker])
		s.cont.ZeroRange(s.data[marker : j+r])
	}
	return i + n, nil
}
