package canvas

import "errors"

var (
	// ErrDuplicateNodeID is returned by [FromRecords] when two node records
	// share an id.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrDuplicateEdgeID is returned by [FromRecords] when two edge records
	// share an id.
	ErrDuplicateEdgeID = errors.New("duplicate edge ID")

	// ErrUnknownNode is returned when an operation references a node id that
	// is not registered, including edges loaded with a missing endpoint.
	ErrUnknownNode = errors.New("unknown node")

	// ErrInvalidBounds is returned for nodes with a negative width or height.
	ErrInvalidBounds = errors.New("invalid node bounds")

	// ErrNotAGroup is returned when a non-group node is used as a parent.
	ErrNotAGroup = errors.New("node is not a group")

	// ErrSelfParent is returned when a node would become its own parent.
	ErrSelfParent = errors.New("node cannot be its own parent")

	// ErrParentCycle is returned when a reparent would make a node a
	// descendant of itself.
	ErrParentCycle = errors.New("parent cycle")

	// ErrContainment is returned by [Canvas.Validate] when a child lies
	// outside its parent's bounds.
	ErrContainment = errors.New("child outside parent bounds")

	// ErrHierarchyMismatch is returned by [Canvas.Validate] when parent and
	// children links disagree.
	ErrHierarchyMismatch = errors.New("parent and children links disagree")
)
