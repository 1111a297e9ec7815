// Package workload drives randomized concurrent traffic against a
// tree.Set for stress-testing and demonstration. It is an external
// collaborator: it only ever calls the five operations a Set exposes,
// the same way the core package's own concurrent tests do.
package workload

import (
	"cmp"
	"math/rand"
	"sync"

	"nbst/pkg/tree"
)

// Config describes one randomized run.
type Config struct {
	Workers      int
	OpsPerWorker int
	KeySpace     int64   // keys drawn from [0, KeySpace)
	InsertBias   float64 // probability of choosing Insert over Delete, in [0,1]
}

// Result summarizes what a run actually did.
type Result struct {
	Inserted int64
	Deleted  int64
}

// Run fires Config.Workers goroutines, each performing Config.OpsPerWorker
// random Insert/Delete calls against set, keys drawn uniformly from
// [0, KeySpace). It blocks until every worker has finished.
func Run(set tree.Set[int64], cfg Config) Result {
	var wg sync.WaitGroup
	var inserted, deleted int64
	var mu sync.Mutex

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))

			var localInserted, localDeleted int64
			for i := 0; i < cfg.OpsPerWorker; i++ {
				key := rng.Int63n(cfg.KeySpace)
				if rng.Float64() < cfg.InsertBias {
					if ok, _ := set.Insert(key); ok {
						localInserted++
					}
				} else {
					if ok, _ := set.Delete(key); ok {
						localDeleted++
					}
				}
			}

			mu.Lock()
			inserted += localInserted
			deleted += localDeleted
			mu.Unlock()
		}(int64(w + 1))
	}
	wg.Wait()

	return Result{Inserted: inserted, Deleted: deleted}
}

// RunRange has each of workers goroutines insert rangeSize keys, the i-th
// being base(worker, i). With base(worker, i) = worker*rangeSize+i the
// ranges are disjoint and ascending, mirroring the disjoint-range
// insertion scenario the core package's own tests exercise. It exists for
// demonstrator/benchmark use where deterministic, non-overlapping coverage
// is wanted instead of random traffic.
func RunRange[K cmp.Ordered](set tree.Set[K], workers int, rangeSize int, base func(worker, i int) K) {
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < rangeSize; i++ {
				set.Insert(base(worker, i))
			}
		}(w)
	}
	wg.Wait()
}
