package canvas

import (
	"testing"

	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
	"github.com/matzehuels/jsoncanvas/pkg/geometry"
)

func TestConnect(t *testing.T) {
	c := New(DefaultConfig())
	mustAdd(t, c, text("A", 0, 0, 100, 100))
	mustAdd(t, c, text("B", 150, 0, 100, 100))

	e, err := c.Connect("A", "B", ConnectOptions{Label: "calls", Color: "4"})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	checkInvariants(t, c)

	if e.FromSide != geometry.SideRight || e.ToSide != geometry.SideLeft {
		t.Errorf("sides = (%v, %v), want (right, left)", e.FromSide, e.ToSide)
	}
	if e.FromEnd != EndNone || e.ToEnd != EndArrow {
		t.Errorf("ends = (%v, %v), want (none, arrow)", e.FromEnd, e.ToEnd)
	}
	if e.Label != "calls" || e.Color != "4" {
		t.Errorf("label/color = %q/%q, want calls/4", e.Label, e.Color)
	}
	if e.ID == "" {
		t.Error("edge id not generated")
	}
}

func TestConnectSpreadsAcrossSides(t *testing.T) {
	c := New(DefaultConfig())
	mustAdd(t, c, text("A", 0, 0, 100, 100))
	mustAdd(t, c, text("B", 150, 0, 100, 100))

	first, err := c.Connect("A", "B", ConnectOptions{})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	second, err := c.Connect("A", "B", ConnectOptions{})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if second.FromSide == first.FromSide {
		t.Errorf("second edge reuses source side %v", first.FromSide)
	}
	if second.ToSide == first.ToSide {
		t.Errorf("second edge reuses destination side %v", first.ToSide)
	}
	if second.FromSide != geometry.SideBottom || second.ToSide != geometry.SideBottom {
		t.Errorf("sides = (%v, %v), want (bottom, bottom)", second.FromSide, second.ToSide)
	}
}

func TestConnectIsIdempotentByID(t *testing.T) {
	c := New(DefaultConfig())
	mustAdd(t, c, text("A", 0, 0, 100, 100))
	mustAdd(t, c, text("B", 150, 0, 100, 100))

	first, _ := c.Connect("A", "B", ConnectOptions{ID: "e"})
	again, err := c.Connect("A", "B", ConnectOptions{ID: "e"})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if again != first || c.EdgeCount() != 1 {
		t.Errorf("Connect with an existing id must return it, EdgeCount = %d", c.EdgeCount())
	}
}

func TestConnectErrors(t *testing.T) {
	c := New(DefaultConfig())
	mustAdd(t, c, text("A", 0, 0, 100, 100))
	mustAdd(t, c, text("twin", 0, 0, 100, 100))

	if _, err := c.Connect("A", "ghost", ConnectOptions{}); cerrors.GetCode(err) != cerrors.ErrCodeUnknownNode {
		t.Errorf("Connect to missing node: code = %v, want %v", cerrors.GetCode(err), cerrors.ErrCodeUnknownNode)
	}

	a, _ := c.Node("A")
	twin, _ := c.Node("twin")
	// Inserting twin moved A out of the way; stack them again.
	twin.Bounds = a.Bounds
	_, err := c.Connect("A", "twin", ConnectOptions{})
	if !cerrors.IsInvariant(err) {
		t.Errorf("Connect between coincident nodes: err = %v, want invariant violation", err)
	}
	if c.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, failed connects must not register edges", c.EdgeCount())
	}
}

func TestRouteSidesDoesNotMutate(t *testing.T) {
	c := New(DefaultConfig())
	mustAdd(t, c, text("A", 0, 0, 100, 100))
	mustAdd(t, c, text("B", 0, 200, 100, 100))

	from, to, err := c.RouteSides("A", "B")
	if err != nil {
		t.Fatalf("RouteSides: %v", err)
	}
	if from != geometry.SideBottom || to != geometry.SideTop {
		t.Errorf("RouteSides = (%v, %v), want (bottom, top)", from, to)
	}
	if c.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", c.EdgeCount())
	}
}
