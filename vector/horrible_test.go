package vector

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vek/alloc"
	"github.com/npillmayer/vek/seq"
)

func countingSeq(from, to int) seq.Seq[int] {
	n := from - 1
	return seq.FromFunc(func() (int, bool) {
		n++
		return n, n <= to
	})
}

func TestAppendSeqWithinPrealloc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.vector")
	defer teardown()
	//
	s := intStorage()
	if err := s.appendSeq(countingSeq(1, 3)); err != nil {
		t.Fatal(err)
	}
	if s.size != 3 || s.capacity() != singlePassPrealloc {
		t.Errorf("expected size 3 in the preallocated buffer, have size %d cap %d",
			s.size, s.capacity())
	}
	for i := 0; i < 3; i++ {
		if s.data[i] != i+1 {
			t.Fatalf("expected element %d to be %d, is %d", i, i+1, s.data[i])
		}
	}
}

func TestAppendSeqReusesExactlyFullBuffer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.vector")
	defer teardown()
	//
	// 4 elements fill the preallocated buffer, 4 more exactly fill the
	// single chained buffer of capacity 8, which then serves as the final
	// buffer without another copy.
	s := intStorage()
	if err := s.appendSeq(countingSeq(1, 8)); err != nil {
		t.Fatal(err)
	}
	if s.size != 8 || s.capacity() != 8 {
		t.Errorf("expected the chained buffer to be reused, have size %d cap %d",
			s.size, s.capacity())
	}
	for i := 0; i < 8; i++ {
		if s.data[i] != i+1 {
			t.Fatalf("expected element %d to be %d, is %d", i, i+1, s.data[i])
		}
	}
}

func TestAppendSeqChainsAndCombines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.vector")
	defer teardown()
	//
	// 100 elements: 4 into the preallocation, the rest wraps through
	// chained buffers and forces a combining allocation.
	s := intStorage()
	if err := s.appendSeq(countingSeq(1, 100)); err != nil {
		t.Fatal(err)
	}
	if s.size != 100 {
		t.Fatalf("expected size 100, is %d", s.size)
	}
	if s.capacity() < 100 {
		t.Errorf("expected capacity of at least 100, is %d", s.capacity())
	}
	for i := 0; i < 100; i++ {
		if s.data[i] != i+1 {
			t.Fatalf("expected element %d to be %d, is %d", i, i+1, s.data[i])
		}
	}
}

func TestInsertSeqAtMiddleSinglePass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.vector")
	defer teardown()
	//
	s := intStorage(1, 2, 3, 4)
	if err := s.insertSeqAt(2, countingSeq(100, 129)); err != nil {
		t.Fatal(err)
	}
	if s.size != 34 {
		t.Fatalf("expected size 34, is %d", s.size)
	}
	want := []int{1, 2}
	for i := 100; i <= 129; i++ {
		want = append(want, i)
	}
	want = append(want, 3, 4)
	for i, w := range want {
		if s.data[i] != w {
			t.Fatalf("expected element %d to be %d, is %d", i, w, s.data[i])
		}
	}
}

func TestInsertSeqAtFitsSpareCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.vector")
	defer teardown()
	//
	s := intStorage(1, 2, 3, 4)
	if err := s.reallocate(16); err != nil {
		t.Fatal(err)
	}
	if err := s.insertSeqAt(1, countingSeq(7, 9)); err != nil {
		t.Fatal(err)
	}
	if s.capacity() != 16 {
		t.Errorf("expected the insert to run in place, capacity is %d", s.capacity())
	}
	for i, w := range []int{1, 7, 8, 9, 2, 3, 4} {
		if s.data[i] != w {
			t.Fatalf("expected element %d to be %d, is %d", i, w, s.data[i])
		}
	}
}

func TestAppendSeqAllocationFailureRollsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.vector")
	defer teardown()
	//
	// enough budget for the preallocation, not for the chain
	s := storage[int]{cont: alloc.NewContainer(alloc.Bounded[int](20), alloc.Plain[int]())}
	err := s.appendSeq(countingSeq(1, 50))
	var fail *alloc.Failure
	if !errors.As(err, &fail) {
		t.Fatalf("expected an allocation failure, got %v", err)
	}
	if s.size != 0 {
		t.Errorf("expected the append to roll back to the previous length, size is %d", s.size)
	}
}
