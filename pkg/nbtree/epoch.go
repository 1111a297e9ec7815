// pkg/nbtree/epoch.go
package nbtree

import (
	"sync"
	"sync/atomic"
)

// epochManager provides epoch-based memory reclamation bookkeeping for the
// tree. Go's garbage collector is what actually frees unlinked nodes and
// descriptors - the spec permits that ("a garbage-collected runtime" is
// listed alongside EBR and hazard pointers as an acceptable scheme, §5) -
// but the epoch discipline is still implemented and wired through every
// reader and writer path so that the reclamation contract (readers never
// observe a freed node; retirement only happens after every reader that
// could have seen the node has left) is enforced and observable the same
// way it would be in a non-GC'd implementation.
//
// 1. The global epoch is a monotonically increasing counter.
// 2. Readers "enter" an epoch before traversing the tree and "leave" when
//    done.
// 3. Writers advance the epoch after making changes visible.
// 4. Retired nodes are only reclaimed once no reader remains in an epoch
//    in which they could have been visible.
type epochManager struct {
	globalEpoch uint64

	readers sync.Map // readerID -> *readerState

	retiredMu sync.Mutex
	retired   map[uint64][]any

	nextReaderID uint64
}

type readerState struct {
	epoch  uint64
	active int32
}

func newEpochManager() *epochManager {
	return &epochManager{
		globalEpoch: 1, // epoch 0 means "not set"
		retired:     make(map[uint64][]any),
	}
}

// readerGuard represents an active reader session. It must be released
// with leave().
type readerGuard struct {
	mgr      *epochManager
	state    *readerState
	readerID uint64
}

// enter begins a read operation, recording the current epoch.
func (e *epochManager) enter() *readerGuard {
	readerID := atomic.AddUint64(&e.nextReaderID, 1)
	state := &readerState{epoch: atomic.LoadUint64(&e.globalEpoch)}
	atomic.StoreInt32(&state.active, 1)

	e.readers.Store(readerID, state)

	return &readerGuard{mgr: e, state: state, readerID: readerID}
}

// leave ends a read operation, allowing epoch advancement to proceed past
// the epoch this reader entered at.
func (g *readerGuard) leave() {
	if g == nil || g.state == nil {
		return
	}
	atomic.StoreInt32(&g.state.active, 0)
	g.mgr.readers.Delete(g.readerID)
}

// advance increments the global epoch and returns the new value. Called by
// writers after their mutation is visible.
func (e *epochManager) advance() uint64 {
	return atomic.AddUint64(&e.globalEpoch, 1)
}

// retire marks one or more unlinked objects (nodes, descriptors) for later
// reclamation once it is safe.
func (e *epochManager) retire(objs ...any) {
	if len(objs) == 0 {
		return
	}
	epoch := atomic.LoadUint64(&e.globalEpoch)

	e.retiredMu.Lock()
	e.retired[epoch] = append(e.retired[epoch], objs...)
	e.retiredMu.Unlock()
}

// tryReclaim drops retired entries from epochs that no active reader can
// still be observing. Under Go's GC this simply lets the slice entries
// become unreachable; it returns the number of entries released.
func (e *epochManager) tryReclaim() int {
	minEpoch := e.findMinActiveEpoch()

	e.retiredMu.Lock()
	defer e.retiredMu.Unlock()

	reclaimed := 0
	for epoch, objs := range e.retired {
		if epoch < minEpoch {
			reclaimed += len(objs)
			delete(e.retired, epoch)
		}
	}
	return reclaimed
}

func (e *epochManager) findMinActiveEpoch() uint64 {
	minEpoch := atomic.LoadUint64(&e.globalEpoch)

	e.readers.Range(func(_, value any) bool {
		state := value.(*readerState)
		if atomic.LoadInt32(&state.active) == 1 && state.epoch < minEpoch {
			minEpoch = state.epoch
		}
		return true
	})

	return minEpoch
}

// pendingCount returns the number of objects awaiting reclamation.
func (e *epochManager) pendingCount() int {
	e.retiredMu.Lock()
	defer e.retiredMu.Unlock()

	count := 0
	for _, objs := range e.retired {
		count += len(objs)
	}
	return count
}

// activeReaderCount returns the number of readers currently inside a
// guarded section.
func (e *epochManager) activeReaderCount() int {
	count := 0
	e.readers.Range(func(_, value any) bool {
		if atomic.LoadInt32(&value.(*readerState).active) == 1 {
			count++
		}
		return true
	})
	return count
}
