// pkg/nbtree/errors.go
package nbtree

import "errors"

// ErrInvalidArgument is returned when a key is greater than or equal to
// the tree's first sentinel, or when the tree is constructed with
// sentinels that are not strictly ordered.
var ErrInvalidArgument = errors.New("nbtree: invalid argument")

// ErrNoCurrentElement is returned by Iterator.Remove when Next has not
// yet been called, or has already returned false.
var ErrNoCurrentElement = errors.New("nbtree: no current element")
