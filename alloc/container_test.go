package alloc_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vek/alloc"
	"github.com/npillmayer/vek/seq"
	"github.com/stretchr/testify/require"
)

// counting traits for a type owning a (pretend) resource; destruction and
// copies are tallied so tests can check element lifecycles.
type tally struct {
	copies, destroys int
}

func countingTraits(tl *tally) alloc.Traits[int] {
	return alloc.Traits[int]{
		Copy: func(x int) int {
			tl.copies++
			return x
		},
		Destroy: func(p *int) {
			if *p != 0 {
				tl.destroys++
			}
			*p = 0
		},
	}
}

func TestContainerDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.alloc")
	defer teardown()
	//
	c := alloc.NewContainer(nil, alloc.Plain[int]())
	if c.Allocator() == nil {
		t.Fatal("expected nil allocator to default to Std")
	}
	buf, err := c.Allocate(3)
	require.NoError(t, err)
	c.FillRange(buf, 7)
	require.Equal(t, []int{7, 7, 7}, buf)
	c.Deallocate(buf)
}

func TestContainerTrivialCollapse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.alloc")
	defer teardown()
	//
	tl := &tally{}
	tr := countingTraits(tl)
	tr.TrivialDestroy = true // assignment now equals construction
	c := alloc.NewContainer(alloc.Std[int](), tr)
	//
	xs := []int{1, 2, 3}
	c.AssignFill(xs, 9)
	if tl.destroys != 0 {
		t.Errorf("expected no destroys for trivially destroyable type, got %d", tl.destroys)
	}
	require.Equal(t, []int{9, 9, 9}, xs)
}

func TestContainerAssignDestroysTarget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.alloc")
	defer teardown()
	//
	tl := &tally{}
	c := alloc.NewContainer(alloc.Std[int](), countingTraits(tl))
	//
	xs := []int{1, 2, 3}
	c.AssignFill(xs, 9)
	if tl.destroys != 3 {
		t.Errorf("expected 3 destroys of overwritten elements, got %d", tl.destroys)
	}
	if tl.copies != 3 {
		t.Errorf("expected 3 copies of the fill value, got %d", tl.copies)
	}
}

func TestContainerMoveFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.alloc")
	defer teardown()
	//
	c := alloc.NewContainer(alloc.Std[int](), alloc.Traits[int]{})
	src := []int{1, 2, 3}
	dst := make([]int, 3)
	c.MoveFrom(dst, src)
	require.Equal(t, []int{1, 2, 3}, dst)
	require.Equal(t, []int{0, 0, 0}, src, "relocation leaves zero values behind")
}

func TestContainerMoveAssignOverlap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.alloc")
	defer teardown()
	//
	c := alloc.NewContainer(alloc.Std[int](), alloc.Traits[int]{})
	xs := []int{1, 2, 3, 4, 5}
	c.MoveAssignFrom(xs[1:], xs[2:]) // shift front-wards, as erase does
	require.Equal(t, []int{1, 3, 4, 5}, xs[:4])
}

func TestContainerFromSeq(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.alloc")
	defer teardown()
	//
	c := alloc.NewContainer(alloc.Std[int](), alloc.Plain[int]())
	dst := make([]int, 4)
	n := c.CopyFromSeq(dst, seq.Values(1, 2))
	if n != 2 {
		t.Errorf("expected 2 elements from short sequence, got %d", n)
	}
	n = c.CopyFromSeq(dst, seq.Values(1, 2, 3, 4, 5, 6))
	if n != 4 {
		t.Errorf("expected to stop at destination capacity 4, got %d", n)
	}
	require.Equal(t, []int{1, 2, 3, 4}, dst)
}
