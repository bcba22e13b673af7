package vector

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vek/alloc"
	"github.com/npillmayer/vek/seq"
)

// handle pretends to own a resource; its traits tally copies and disposals
// so tests can check element lifecycles.
type handle struct {
	id   int
	open bool
}

type ledger struct {
	copies, disposals int
}

func (l *ledger) traits() alloc.Traits[handle] {
	return alloc.Traits[handle]{
		Copy: func(h handle) handle {
			l.copies++
			return handle{id: h.id, open: true}
		},
		Destroy: func(h *handle) {
			if h.open {
				l.disposals++
			}
			*h = handle{}
		},
	}
}

func handleVec(l *ledger, ids ...int) *Vector[handle] {
	hs := make([]handle, len(ids))
	for i, id := range ids {
		hs[i] = handle{id: id, open: true}
	}
	v, err := FromSlice(hs, WithTraits(l.traits()))
	if err != nil {
		panic(err)
	}
	return v
}

func ids(v *Vector[handle]) []int {
	out := make([]int, v.Len())
	for i := range out {
		out[i] = v.Get(i).id
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLifecyclePushPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.vector")
	defer teardown()
	//
	l := &ledger{}
	v := handleVec(l, 1, 2, 3)
	if l.copies != 3 {
		t.Errorf("expected 3 copies on construction, have %d", l.copies)
	}
	v.Pop()
	if l.disposals != 1 {
		t.Errorf("expected 1 disposal after Pop, have %d", l.disposals)
	}
	v.Clear()
	if l.disposals != 3 {
		t.Errorf("expected all elements disposed after Clear, have %d", l.disposals)
	}
	if l.copies != 3 {
		t.Errorf("expected no further copies, have %d", l.copies)
	}
}

func TestLifecycleRelocation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.vector")
	defer teardown()
	//
	l := &ledger{}
	v := handleVec(l, 1, 2, 3)
	if err := v.Reserve(32); err != nil {
		t.Fatal(err)
	}
	// relocation moves, it must not copy or dispose live elements
	if l.copies != 3 || l.disposals != 0 {
		t.Errorf("expected relocation without copies or disposals, have %d/%d",
			l.copies, l.disposals)
	}
	if !equalInts(ids(v), []int{1, 2, 3}) {
		t.Errorf("expected handles to survive relocation, have %v", ids(v))
	}
	v.Release()
	if l.disposals != 3 {
		t.Errorf("expected all elements disposed on release, have %d", l.disposals)
	}
}

func TestLifecycleInsertMiddle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.vector")
	defer teardown()
	//
	l := &ledger{}
	v := handleVec(l, 1, 2, 3, 4)
	if _, err := v.Insert(1, handle{id: 99, open: true}); err != nil {
		t.Fatal(err)
	}
	if !equalInts(ids(v), []int{1, 99, 2, 3, 4}) {
		t.Errorf("expected 99 inserted at 1, have %v", ids(v))
	}
	v.Release()
	if l.disposals != l.copies {
		t.Errorf("expected every copy disposed, copies %d, disposals %d",
			l.copies, l.disposals)
	}
}

func TestLifecycleInsertNoAlias(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.vector")
	defer teardown()
	//
	moves := 0
	tr := alloc.Traits[handle]{
		Copy: func(h handle) handle { return handle{id: h.id, open: true} },
		Move: func(h *handle) handle {
			moves++
			m := *h
			*h = handle{}
			return m
		},
		Destroy: func(h *handle) { *h = handle{} },
		NoAlias: true,
	}
	v, err := FromSlice([]handle{{id: 1, open: true}, {id: 2, open: true}},
		WithTraits(tr), WithCapacity[handle](4))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := v.Insert(0, handle{id: 9, open: true}); err != nil {
		t.Fatal(err)
	}
	if !equalInts(ids(v), []int{9, 1, 2}) {
		t.Errorf("expected 9 in front, have %v", ids(v))
	}
	// shifting 1 and 2 moves twice; no-alias traits assign the new element
	// into the gap without a temporary
	if moves != 2 {
		t.Errorf("expected exactly 2 element moves, have %d", moves)
	}
}

func TestLifecycleTakeTransfersOwnership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.vector")
	defer teardown()
	//
	l := &ledger{}
	v := handleVec(l, 1, 2)
	h := v.TakeBack().WithDefault(handle{})
	if h.id != 2 || !h.open {
		t.Errorf("expected to take an open handle 2, have %+v", h)
	}
	if l.disposals != 0 {
		t.Errorf("expected taking to transfer, not dispose, have %d disposals", l.disposals)
	}
	v.Release()
	if l.disposals != 1 {
		t.Errorf("expected only the remaining element disposed, have %d", l.disposals)
	}
}

func TestLifecycleAssignSeq(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vek.vector")
	defer teardown()
	//
	l := &ledger{}
	v := handleVec(l, 1, 2, 3, 4, 5)
	err := v.Assign(seq.FromFunc(func() (handle, bool) {
		return handle{id: 9, open: true}, false
	}))
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 0 {
		t.Errorf("expected assign from empty sequence to clear, size is %d", v.Len())
	}
	if l.disposals != 5 {
		t.Errorf("expected 5 disposals, have %d", l.disposals)
	}
}
