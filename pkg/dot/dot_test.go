package dot

import (
	"bytes"
	"strings"
	"testing"

	"nbst/pkg/nbtree"
)

func newTestTree(t *testing.T) *nbtree.Tree[int64] {
	t.Helper()
	tr, err := nbtree.New(int64(1<<31-2), int64(1<<31-1))
	if err != nil {
		t.Fatalf("nbtree.New: %v", err)
	}
	return tr
}

func TestWriteEmitsBalancedDigraph(t *testing.T) {
	tr := newTestTree(t)
	tr.Insert(int64(5))
	tr.Insert(int64(3))
	tr.Insert(int64(7))

	var buf bytes.Buffer
	if err := Write[int64](&buf, tr); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "digraph tree {\n") {
		t.Errorf("output does not start with digraph header: %q", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("output does not end with closing brace: %q", out)
	}
	if strings.Count(out, "{") != strings.Count(out, "}") {
		t.Errorf("unbalanced braces in output: %q", out)
	}

	// One node statement per visited node: 5 leaves (3 keys + 2 sentinels)
	// + 4 internal routing nodes (the root plus one per insert). Only the
	// presence of node statements is checked here.
	nodeStatements := strings.Count(out, "[shape=")
	if nodeStatements == 0 {
		t.Error("no node statements emitted")
	}
}

func TestWriteOnEmptyTreeEmitsOnlySentinels(t *testing.T) {
	tr := newTestTree(t)

	var buf bytes.Buffer
	if err := Write[int64](&buf, tr); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := buf.String()
	// root + 2 sentinel leaves = 3 node statements
	if got := strings.Count(out, "[shape="); got != 3 {
		t.Errorf("node statement count = %d, want 3", got)
	}
	if strings.Count(out, "->") != 2 {
		t.Errorf("edge count = %d, want 2", strings.Count(out, "->"))
	}
}
