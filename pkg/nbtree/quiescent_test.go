// pkg/nbtree/quiescent_test.go
package nbtree

import "testing"

func TestCheckQuiescentPassesOnEmptyTree(t *testing.T) {
	tr := newTestTree(t)
	if err := CheckQuiescent(tr); err != nil {
		t.Errorf("CheckQuiescent() on empty tree = %v, want nil", err)
	}
}

func TestCheckQuiescentPassesAfterInsertsAndDeletes(t *testing.T) {
	tr := newTestTree(t)
	for _, k := range []int64{5, 3, 7, 1, 9, 4} {
		tr.Insert(k)
	}
	tr.Delete(int64(3))
	tr.Delete(int64(9))

	if err := CheckQuiescent(tr); err != nil {
		t.Errorf("CheckQuiescent() = %v, want nil", err)
	}
}

func TestCheckQuiescentCatchesNonCleanState(t *testing.T) {
	tr := newTestTree(t)
	tr.Insert(int64(1))

	tr.root.state.Store(&update[int64]{state: iflag, info: &insertInfo[int64]{}})

	if err := CheckQuiescent(tr); err == nil {
		t.Error("CheckQuiescent() = nil, want error for IFLAG root")
	}
}
