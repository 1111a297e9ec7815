// pkg/nbtree/descriptor.go
package nbtree

import "cmp"

// insertInfo describes an in-flight insert. It is published into parent's
// state under IFLAG and drives helpInsert to completion; any thread that
// observes it can finish the splice.
type insertInfo[K cmp.Ordered] struct {
	parent      *node[K]
	newInternal *node[K]
	oldLeaf     *node[K]
}

// deleteInfo describes an in-flight delete. It is published into
// grandparent's state under DFLAG, then (if the parent can be marked)
// into parent's state under MARK. parentUpdate is the (info, state) pair
// read from parent during the search that located leaf; it is the CAS
// "expected" value for the MARK attempt.
type deleteInfo[K cmp.Ordered] struct {
	grandparent  *node[K]
	parent       *node[K]
	leaf         *node[K]
	parentUpdate *update[K]
}

// searchResult carries everything a caller needs to decide whether to
// retry, help, or act: the terminating leaf, its parent and grandparent,
// and the (info, state) pairs observed on parent and grandparent during
// the descent. Those pairs may be stale by the time the caller acts on
// them - that staleness is what drives the retry/backtrack logic.
type searchResult[K cmp.Ordered] struct {
	leaf        *node[K]
	parent      *node[K]
	grandparent *node[K]

	parentUpdate      *update[K]
	grandparentUpdate *update[K]
}
