package canvas

import (
	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
	"github.com/matzehuels/jsoncanvas/pkg/geometry"
	"github.com/matzehuels/jsoncanvas/pkg/observability"
	"github.com/matzehuels/jsoncanvas/pkg/route"
)

// ConnectOptions configures an edge created by [Canvas.Connect].
type ConnectOptions struct {
	// ID of the new edge. Empty generates one.
	ID    string
	Label string
	Color string
}

// Connect creates an edge between two placed nodes, anchored at the closest
// pair of visible sides not yet used by the source's outgoing or the
// destination's incoming edges. The edge has no marker at the source and an
// arrow at the destination. An existing edge with opts.ID is returned
// unchanged.
func (c *Canvas) Connect(fromID, toID string, opts ConnectOptions) (*Edge, error) {
	if existing, ok := c.edgeIndex[opts.ID]; ok && opts.ID != "" {
		return existing, nil
	}
	fromSide, toSide, err := c.RouteSides(fromID, toID)
	if err != nil {
		return nil, err
	}

	e := NewEdge(opts.ID, fromID, toID)
	e.FromSide, e.ToSide = fromSide, toSide
	e.FromEnd, e.ToEnd = EndNone, EndArrow
	e.Label, e.Color = opts.Label, opts.Color
	if err := e.Validate(); err != nil {
		return nil, err
	}

	edge := &e
	c.registerEdge(edge)
	c.logger.Debug("edge connected", "id", e.ID, "from", fromID, "fromSide", fromSide, "to", toID, "toSide", toSide)
	observability.Layout().OnEdgeRouted(e.ID, fromSide, toSide)
	return edge, nil
}

// RouteSides reports the sides [Canvas.Connect] would use for a new edge
// between two nodes, without changing the document.
func (c *Canvas) RouteSides(fromID, toID string) (geometry.Side, geometry.Side, error) {
	from, ok := c.nodeIndex[fromID]
	if !ok {
		return geometry.SideNone, geometry.SideNone, cerrors.Wrap(cerrors.ErrCodeUnknownNode, ErrUnknownNode, "node %s", fromID)
	}
	to, ok := c.nodeIndex[toID]
	if !ok {
		return geometry.SideNone, geometry.SideNone, cerrors.Wrap(cerrors.ErrCodeUnknownNode, ErrUnknownNode, "node %s", toID)
	}

	var usedFrom, usedTo []geometry.Side
	for _, e := range c.EdgesOf(fromID) {
		if e.FromNode == fromID && e.FromSide != geometry.SideNone {
			usedFrom = append(usedFrom, e.FromSide)
		}
	}
	for _, e := range c.EdgesOf(toID) {
		if e.ToNode == toID && e.ToSide != geometry.SideNone {
			usedTo = append(usedTo, e.ToSide)
		}
	}

	return route.Sides(from.Bounds, to.Bounds, route.Options{
		UsedFrom: usedFrom,
		UsedTo:   usedTo,
		Logger:   c.logger,
	})
}
