// pkg/nbtree/iterator.go
package nbtree

import "cmp"

// Snapshot returns the keys currently present, in ascending order,
// excluding both sentinels. It performs a wait-free, CAS-free in-order
// traversal starting from the root's left subtree (every user key lives
// there; the root's right child is always the permanent sentinel2 leaf).
// Because it takes no lock and installs no descriptor, it may observe a
// leaf that a concurrent delete is in the middle of removing, or miss one
// a concurrent insert has not yet published - an unavoidable property of
// snapshotting a lock-free structure without a global barrier.
func (t *Tree[K]) Snapshot() ([]K, error) {
	guard := t.epoch.enter()
	defer guard.leave()

	var keys []K
	t.walk(t.root.left.Load(), &keys)
	return keys, nil
}

func (t *Tree[K]) walk(n *node[K], out *[]K) {
	if n == nil {
		return
	}
	if n.isLeaf {
		if n.key != t.sentinel1 && n.key != t.sentinel2 {
			*out = append(*out, n.key)
		}
		return
	}
	t.walk(n.left.Load(), out)
	t.walk(n.right.Load(), out)
}

// Iterator is a one-shot cursor over a Snapshot taken at construction
// time. It does not re-read the tree: once built, it yields only from its
// captured sequence.
type Iterator[K cmp.Ordered] struct {
	tree *Tree[K]
	keys []K
	pos  int

	hasCurrent bool
	current    K
}

// NewIterator captures a snapshot and returns an iterator over it.
func (t *Tree[K]) NewIterator() (*Iterator[K], error) {
	keys, err := t.Snapshot()
	if err != nil {
		return nil, err
	}
	return &Iterator[K]{tree: t, keys: keys}, nil
}

// Next advances the iterator and reports whether a key was produced.
func (it *Iterator[K]) Next() (K, bool) {
	if it.pos >= len(it.keys) {
		var zero K
		it.hasCurrent = false
		return zero, false
	}
	it.current = it.keys[it.pos]
	it.hasCurrent = true
	it.pos++
	return it.current, true
}

// Remove deletes the key most recently returned by Next from the backing
// set. It fails with ErrNoCurrentElement if Next has not been called, or
// has already returned false.
func (it *Iterator[K]) Remove() (bool, error) {
	if !it.hasCurrent {
		return false, ErrNoCurrentElement
	}
	return it.tree.Delete(it.current)
}
