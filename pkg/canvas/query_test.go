package canvas

import (
	"testing"

	"github.com/matzehuels/jsoncanvas/pkg/geometry"
)

func ids(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func queryCanvas(t *testing.T) *Canvas {
	t.Helper()
	c := New(DefaultConfig())
	mustAdd(t, c, group("G", 0, 0, 400, 400))
	mustAdd(t, c, text("T", 100, 100, 50, 50))
	mustAdd(t, c, text("U", 200, 100, 50, 50))
	mustAdd(t, c, text("far", 1000, 0, 50, 50))
	return c
}

func TestNodeAt(t *testing.T) {
	c := queryCanvas(t)

	tests := []struct {
		name         string
		p            geometry.Point
		ignoreGroups bool
		want         string
	}{
		{"ChildAboveGroup", geometry.Point{X: 120, Y: 120}, false, "T"},
		{"GroupOnly", geometry.Point{X: 10, Y: 10}, false, "G"},
		{"IgnoreGroups", geometry.Point{X: 10, Y: 10}, true, ""},
		{"Border", geometry.Point{X: 150, Y: 150}, true, "T"},
		{"Empty", geometry.Point{X: 700, Y: 700}, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := c.NodeAt(tt.p, tt.ignoreGroups)
			got := ""
			if ok {
				got = n.ID
			}
			if got != tt.want {
				t.Errorf("NodeAt(%v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestSpatialQueries(t *testing.T) {
	c := queryCanvas(t)

	tests := []struct {
		name string
		got  []*Node
		want []string
	}{
		{"NodesAt", c.NodesAt(geometry.Point{X: 120, Y: 120}), []string{"G", "T"}},
		{"Overlapping", c.NodesOverlapping(geometry.R(140, 90, 70, 20), false), []string{"G", "T", "U"}},
		{"OverlappingIgnoreGroups", c.NodesOverlapping(geometry.R(140, 90, 70, 20), true), []string{"T", "U"}},
		{"ContainedBy", c.NodesContainedBy(geometry.R(90, 90, 120, 120)), []string{"T"}},
		{"Containing", c.NodesContaining(geometry.R(110, 110, 10, 10)), []string{"G", "T"}},
		{"ChildrenOverlapping", c.ChildrenOverlapping("G", geometry.R(190, 0, 100, 500)), []string{"U"}},
		{"ChildrenOverlappingUnknown", c.ChildrenOverlapping("ghost", geometry.R(0, 0, 10, 10)), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(tt.got)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}
