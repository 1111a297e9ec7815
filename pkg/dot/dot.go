// Package dot renders a tree's internal structure as Graphviz DOT text,
// for the demonstrator's visualization subcommand. It is a read-only
// collaborator: it consumes nbtree.Tree.Visit and writes text only,
// never touching the tree's CAS-protected fields directly.
package dot

import (
	"cmp"
	"fmt"
	"io"

	"nbst/pkg/nbtree"
)

// visitable is the narrow surface dot needs from a tree: a wait-free,
// read-only preorder walk. nbtree.Tree satisfies it directly.
type visitable[K cmp.Ordered] interface {
	Visit(fn func(nbtree.VisitedNode[K]))
}

// Write renders t as a DOT digraph to w. Leaves are drawn as boxes
// labeled with their key; internal nodes are drawn as ellipses labeled
// with their routing key and current state.
func Write[K cmp.Ordered](w io.Writer, t visitable[K]) error {
	var err error
	write := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	write("digraph tree {\n")

	type frame struct {
		id    int
		depth int
	}
	var stack []frame
	nextID := 0

	t.Visit(func(n nbtree.VisitedNode[K]) {
		if err != nil {
			return
		}
		nodeID := nextID
		nextID++

		if n.IsLeaf {
			write("  n%d [shape=box,label=%q];\n", nodeID, fmt.Sprintf("%v", n.Key))
		} else {
			write("  n%d [shape=ellipse,label=%q];\n", nodeID, fmt.Sprintf("%v (%s)", n.Key, n.State))
		}

		for len(stack) > 0 && stack[len(stack)-1].depth >= n.Depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			write("  n%d -> n%d;\n", stack[len(stack)-1].id, nodeID)
		}
		stack = append(stack, frame{id: nodeID, depth: n.Depth})
	})

	write("}\n")
	return err
}
