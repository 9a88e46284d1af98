package canvas

import (
	"testing"

	"github.com/matzehuels/jsoncanvas/pkg/geometry"
)

func TestResizeForNodeKeepsAspectRatio(t *testing.T) {
	tests := []struct {
		name  string
		group geometry.Rect
		child geometry.Rect
		want  geometry.Rect
	}{
		{
			name:  "Inside",
			group: geometry.R(0, 0, 200, 100),
			child: geometry.R(10, 10, 20, 20),
			want:  geometry.R(0, 0, 200, 100),
		},
		{
			name:  "PastRight",
			group: geometry.R(0, 0, 200, 100),
			child: geometry.R(250, 10, 50, 50),
			want:  geometry.R(0, 0, 310, 155),
		},
		{
			name:  "PastBottom",
			group: geometry.R(0, 0, 200, 100),
			child: geometry.R(10, 150, 50, 50),
			want:  geometry.R(0, 0, 420, 210),
		},
		{
			name:  "PastLeft",
			group: geometry.R(100, 100, 100, 100),
			child: geometry.R(50, 120, 20, 20),
			want:  geometry.R(40, 100, 160, 160),
		},
		{
			name:  "PastTop",
			group: geometry.R(100, 100, 100, 100),
			child: geometry.R(120, 50, 20, 20),
			want:  geometry.R(100, 40, 160, 160),
		},
		{
			name:  "PastTopLeft",
			group: geometry.R(100, 100, 100, 100),
			child: geometry.R(0, 0, 20, 20),
			want:  geometry.R(-10, -10, 320, 320),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(DefaultConfig())
			g := mustAdd(t, c, NewGroup("g", tt.group, ""))
			if err := c.resizeForNode(g, tt.child); err != nil {
				t.Fatalf("resizeForNode: %v", err)
			}
			if g.Bounds != tt.want {
				t.Errorf("Bounds = %v, want %v", g.Bounds, tt.want)
			}
			if !g.Bounds.Contains(tt.child) {
				t.Errorf("Bounds = %v does not contain %v", g.Bounds, tt.child)
			}
		})
	}
}

func TestResizePropagatesToParent(t *testing.T) {
	c := New(DefaultConfig())
	outer := mustAdd(t, c, group("outer", 0, 0, 150, 150))
	inner := mustAdd(t, c, group("inner", 10, 10, 100, 100))
	mustAdd(t, c, text("c", 20, 20, 50, 50))

	n, err := c.AddOrGetNodeInGroup("inner", text("n", 1000, 1000, 80, 80))
	if err != nil {
		t.Fatalf("AddOrGetNodeInGroup: %v", err)
	}
	checkInvariants(t, c)

	if want := geometry.R(20, 120, 80, 80); n.Bounds != want {
		t.Errorf("n.Bounds = %v, want %v", n.Bounds, want)
	}
	if want := geometry.R(10, 10, 200, 200); inner.Bounds != want {
		t.Errorf("inner.Bounds = %v, want %v", inner.Bounds, want)
	}
	if want := geometry.R(0, 0, 220, 220); outer.Bounds != want {
		t.Errorf("outer.Bounds = %v, want %v", outer.Bounds, want)
	}
	if n.Z != 2 {
		t.Errorf("n.Z = %d, want 2", n.Z)
	}
}

func TestResizeTakesInSiblings(t *testing.T) {
	c := New(DefaultConfig())
	g := mustAdd(t, c, group("G", 0, 0, 100, 100))
	mustAdd(t, c, text("C", 10, 10, 80, 80))
	s := mustAdd(t, c, text("S", 120, 10, 30, 30))

	if _, err := c.AddOrGetNodeInGroup("G", text("n", 1000, 1000, 50, 50)); err != nil {
		t.Fatalf("AddOrGetNodeInGroup: %v", err)
	}
	checkInvariants(t, c)

	if want := geometry.R(0, 0, 170, 170); g.Bounds != want {
		t.Errorf("G.Bounds = %v, want %v", g.Bounds, want)
	}
	if got := parentID(c, "S"); got != "G" {
		t.Errorf("parent(S) = %q, want G", got)
	}
	if s.Z != 1 {
		t.Errorf("S.Z = %d, want 1", s.Z)
	}
}

func TestResizeGroup(t *testing.T) {
	c := New(DefaultConfig())
	g := mustAdd(t, c, group("G", 0, 0, 100, 100))
	child := mustAdd(t, c, text("C", 10, 10, 50, 50))

	// Simulate an external edit that pushes the child past the border.
	child.Bounds = geometry.R(80, 10, 50, 50)
	if err := c.ResizeGroup("G"); err != nil {
		t.Fatalf("ResizeGroup: %v", err)
	}
	checkInvariants(t, c)
	if want := geometry.R(0, 0, 140, 140); g.Bounds != want {
		t.Errorf("G.Bounds = %v, want %v", g.Bounds, want)
	}

	if err := c.ResizeGroup("C"); err == nil {
		t.Error("ResizeGroup on a text node must fail")
	}
}
