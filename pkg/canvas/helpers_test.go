package canvas

import (
	"testing"

	"github.com/matzehuels/jsoncanvas/pkg/geometry"
)

// checkInvariants fails the test if the document violates referential
// integrity, the hierarchy links or the containment rule.
func checkInvariants(t *testing.T, c *Canvas) {
	t.Helper()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

// checkNoOverlap fails the test if any two of the given nodes intersect.
func checkNoOverlap(t *testing.T, nodes ...*Node) {
	t.Helper()
	for i, a := range nodes {
		for _, b := range nodes[i+1:] {
			if a.Bounds.Intersects(b.Bounds) {
				t.Errorf("%s %v overlaps %s %v", a.ID, a.Bounds, b.ID, b.Bounds)
			}
		}
	}
}

func mustAdd(t *testing.T, c *Canvas, n Node) *Node {
	t.Helper()
	got, err := c.AddOrGetNode(n)
	if err != nil {
		t.Fatalf("AddOrGetNode(%s): %v", n.ID, err)
	}
	checkInvariants(t, c)
	return got
}

func text(id string, x, y, w, h int) Node { return NewText(id, geometry.R(x, y, w, h), id) }

func group(id string, x, y, w, h int) Node { return NewGroup(id, geometry.R(x, y, w, h), id) }

func parentID(c *Canvas, id string) string {
	p, ok := c.Parent(id)
	if !ok {
		return ""
	}
	return p.ID
}
