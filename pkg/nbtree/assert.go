// pkg/nbtree/assert.go
package nbtree

import "nbst/pkg/tree"

var _ tree.Set[int64] = (*Tree[int64])(nil)
