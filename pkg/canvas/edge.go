package canvas

import (
	"fmt"

	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
	"github.com/matzehuels/jsoncanvas/pkg/geometry"
)

// End is the marker drawn at one end of an edge.
type End int

const (
	// EndDefault leaves the end unset, so readers apply the format default
	// (no marker at the source, an arrow at the destination).
	EndDefault End = iota
	EndNone
	EndArrow
)

var endNames = [...]string{
	EndDefault: "",
	EndNone:    "none",
	EndArrow:   "arrow",
}

// String returns the JSON Canvas name of the end, or "" for EndDefault.
func (e End) String() string {
	if e < 0 || int(e) >= len(endNames) {
		return fmt.Sprintf("End(%d)", int(e))
	}
	return endNames[e]
}

// ParseEnd converts a JSON Canvas end value. The empty string yields
// EndDefault.
func ParseEnd(s string) (End, error) {
	for e, name := range endNames {
		if name == s {
			return End(e), nil
		}
	}
	return EndDefault, cerrors.New(cerrors.ErrCodeInvalidFormat, "unknown edge end %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (e End) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *End) UnmarshalText(b []byte) error {
	v, err := ParseEnd(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Edge is a directed connector between two nodes, anchored at a side of
// each. SideNone leaves the side to the renderer.
type Edge struct {
	ID       string
	FromNode string
	ToNode   string
	FromSide geometry.Side
	ToSide   geometry.Side
	FromEnd  End
	ToEnd    End
	Color    string
	Label    string
}

// NewEdge returns an edge between two node ids. An empty id is replaced with
// a generated one.
func NewEdge(id, from, to string) Edge {
	if id == "" {
		id = NewID()
	}
	return Edge{ID: id, FromNode: from, ToNode: to}
}

// Validate checks the edge identifier and that both endpoints are named.
func (e *Edge) Validate() error {
	if err := cerrors.ValidateID(e.ID); err != nil {
		return err
	}
	if e.FromNode == "" || e.ToNode == "" {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "edge %s must name both endpoints", e.ID)
	}
	return nil
}
