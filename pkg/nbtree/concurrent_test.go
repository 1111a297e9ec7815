// pkg/nbtree/concurrent_test.go
package nbtree

import (
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
)

func TestConcurrentInsertDisjointRanges(t *testing.T) {
	tr := newTestTree(t)

	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			base := int64(worker * perWorker)
			for i := int64(0); i < perWorker; i++ {
				if ok, err := tr.Insert(base + i); err != nil || !ok {
					t.Errorf("Insert(%d) = %v, %v; want true, nil", base+i, ok, err)
				}
			}
		}(w)
	}
	wg.Wait()

	got := mustSnapshot(t, tr)
	if len(got) != workers*perWorker {
		t.Fatalf("Snapshot() has %d keys, want %d", len(got), workers*perWorker)
	}
	for i, k := range got {
		if k != int64(i) {
			t.Fatalf("Snapshot()[%d] = %d, want %d", i, k, i)
		}
	}
	if tr.Size() != uint64(workers*perWorker) {
		t.Errorf("Size() = %d, want %d", tr.Size(), workers*perWorker)
	}
}

func TestConcurrentInsertDeleteSameKey(t *testing.T) {
	tr := newTestTree(t)

	const key = int64(100)
	const workers = 2
	const iterations = 100000

	var insertedCount, deletedCount int64
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				if ok, err := tr.Insert(key); err != nil {
					t.Errorf("Insert: %v", err)
				} else if ok {
					atomic.AddInt64(&insertedCount, 1)
				}
				if ok, err := tr.Delete(key); err != nil {
					t.Errorf("Delete: %v", err)
				} else if ok {
					atomic.AddInt64(&deletedCount, 1)
				}
			}
		}()
	}
	wg.Wait()

	if insertedCount != deletedCount {
		t.Errorf("insertedCount=%d deletedCount=%d, want equal", insertedCount, deletedCount)
	}

	got := mustSnapshot(t, tr)
	if len(got) != 0 {
		t.Errorf("Snapshot() = %v, want empty", got)
	}
	if tr.Size() != 0 {
		t.Errorf("Size() = %d, want 0", tr.Size())
	}
	if ok, _ := tr.Contains(key); ok {
		t.Error("Contains(key) = true after final delete, want false")
	}
}

// TestQuiescentInvariants exercises a mixed concurrent workload, then
// checks the structural invariants §8 requires hold once all goroutines
// have finished: BST ordering, every internal node has two children, and
// every state field is CLEAN.
func TestQuiescentInvariants(t *testing.T) {
	tr := newTestTree(t)

	const workers = 6
	const ops = 5000

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < ops; i++ {
				key := int64(rng.Intn(500))
				if rng.Intn(2) == 0 {
					tr.Insert(key)
				} else {
					tr.Delete(key)
				}
			}
		}(int64(w + 1))
	}
	wg.Wait()

	got := mustSnapshot(t, tr)
	if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i] < got[j] }) {
		t.Errorf("Snapshot() not sorted: %v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Errorf("Snapshot() has duplicate key %d", got[i])
		}
	}

	if err := CheckQuiescent(tr); err != nil {
		t.Error(err)
	}
}
