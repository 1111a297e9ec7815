package workload

import (
	"testing"

	"nbst/pkg/nbtree"
)

func newTestSet(t *testing.T) *nbtree.Tree[int64] {
	t.Helper()
	tr, err := nbtree.New(int64(1<<31-2), int64(1<<31-1))
	if err != nil {
		t.Fatalf("nbtree.New: %v", err)
	}
	return tr
}

func TestRunConvergesToQuiescentTree(t *testing.T) {
	tr := newTestSet(t)

	Run(tr, Config{
		Workers:      6,
		OpsPerWorker: 2000,
		KeySpace:     200,
		InsertBias:   0.5,
	})

	if err := nbtree.CheckQuiescent(tr); err != nil {
		t.Errorf("CheckQuiescent() after Run = %v, want nil", err)
	}

	keys, err := tr.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if uint64(len(keys)) != tr.Size() {
		t.Errorf("len(Snapshot())=%d != Size()=%d", len(keys), tr.Size())
	}
}

func TestRunRangeInsertsDisjointKeys(t *testing.T) {
	tr := newTestSet(t)

	const workers = 4
	const rangeSize = 500
	RunRange[int64](tr, workers, rangeSize, func(worker, i int) int64 {
		return int64(worker*rangeSize + i)
	})

	if tr.Size() != uint64(workers*rangeSize) {
		t.Errorf("Size() = %d, want %d", tr.Size(), workers*rangeSize)
	}

	keys, err := tr.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	for i, k := range keys {
		if k != int64(i) {
			t.Fatalf("Snapshot()[%d] = %d, want %d", i, k, i)
		}
	}
}
