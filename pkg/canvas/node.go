package canvas

import (
	"fmt"

	"github.com/google/uuid"

	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
	"github.com/matzehuels/jsoncanvas/pkg/geometry"
)

// Kind identifies the node variant. The set is fixed by the JSON Canvas
// format.
type Kind int

const (
	KindText Kind = iota
	KindFile
	KindLink
	KindGroup
)

var kindNames = [...]string{
	KindText:  "text",
	KindFile:  "file",
	KindLink:  "link",
	KindGroup: "group",
}

// String returns the JSON Canvas type name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts a JSON Canvas "type" value into a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, cerrors.New(cerrors.ErrCodeInvalidFormat, "unknown node type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, cerrors.New(cerrors.ErrCodeInvalidFormat, "unknown node kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// BackgroundStyle controls how a group's background image is drawn.
type BackgroundStyle string

const (
	BackgroundUnset  BackgroundStyle = ""
	BackgroundCover  BackgroundStyle = "cover"
	BackgroundRatio  BackgroundStyle = "ratio"
	BackgroundRepeat BackgroundStyle = "repeat"
)

// Valid reports whether s is unset or one of the known styles.
func (s BackgroundStyle) Valid() bool {
	switch s {
	case BackgroundUnset, BackgroundCover, BackgroundRatio, BackgroundRepeat:
		return true
	}
	return false
}

// Node is a positioned rectangle on the canvas. The fields after Z are
// kind-specific; constructors set the ones relevant to each kind.
//
// Hierarchy is not stored on the node. Use [Canvas.Parent] and
// [Canvas.Children].
type Node struct {
	ID     string
	Kind   Kind
	Bounds geometry.Rect
	Color  string
	Z      int

	// Text
	Text string

	// File
	File    string
	Subpath string

	// Link
	URL string

	// Group
	Label           string
	Background      string
	BackgroundStyle BackgroundStyle
}

// NewID returns a fresh random identifier.
func NewID() string {
	return uuid.NewString()
}

func newNode(id string, kind Kind, bounds geometry.Rect) Node {
	if id == "" {
		id = NewID()
	}
	return Node{ID: id, Kind: kind, Bounds: bounds}
}

// NewText returns a text node. An empty id is replaced with a generated one.
func NewText(id string, bounds geometry.Rect, text string) Node {
	n := newNode(id, KindText, bounds)
	n.Text = text
	return n
}

// NewFile returns a file node referencing a path and optional subpath.
func NewFile(id string, bounds geometry.Rect, file, subpath string) Node {
	n := newNode(id, KindFile, bounds)
	n.File = file
	n.Subpath = subpath
	return n
}

// NewLink returns a link node.
func NewLink(id string, bounds geometry.Rect, url string) Node {
	n := newNode(id, KindLink, bounds)
	n.URL = url
	return n
}

// NewGroup returns a group node with an optional label.
func NewGroup(id string, bounds geometry.Rect, label string) Node {
	n := newNode(id, KindGroup, bounds)
	n.Label = label
	return n
}

// IsGroup reports whether the node can contain other nodes.
func (n *Node) IsGroup() bool { return n.Kind == KindGroup }

// Validate checks the identifier, the bounds and the kind-specific fields.
func (n *Node) Validate() error {
	if err := cerrors.ValidateID(n.ID); err != nil {
		return err
	}
	if !n.Bounds.Valid() {
		return cerrors.Wrap(cerrors.ErrCodeInvalidGeometry, ErrInvalidBounds,
			"node %s has bounds %v", n.ID, n.Bounds)
	}
	switch n.Kind {
	case KindText:
	case KindFile:
		if err := cerrors.ValidatePath(n.File); err != nil {
			return cerrors.Wrap(cerrors.GetCode(err), err, "file node %s", n.ID)
		}
	case KindLink:
		if err := cerrors.ValidateURL(n.URL); err != nil {
			return cerrors.Wrap(cerrors.GetCode(err), err, "link node %s", n.ID)
		}
	case KindGroup:
		if !n.BackgroundStyle.Valid() {
			return cerrors.New(cerrors.ErrCodeInvalidInput,
				"group %s has unknown background style %q", n.ID, n.BackgroundStyle)
		}
	default:
		return cerrors.New(cerrors.ErrCodeInvalidInput, "node %s has unknown kind %v", n.ID, n.Kind)
	}
	return nil
}
