package canvas

import (
	"maps"

	"github.com/matzehuels/jsoncanvas/pkg/geometry"
)

// Relayout runs every node back through the layout engine in registry
// order, as if the document were built from scratch by successive inserts.
// Nodes enclosed by a later non-group node are moved out of its way, and the
// hierarchy and z order are re-derived. Node and edge identities are
// preserved. On error the canvas is left as it was before the call.
func (c *Canvas) Relayout() error {
	return c.relayout(c.insert)
}

func (c *Canvas) relayout(insert func(*Node) error) error {
	snap := c.snapshot()
	nodes := c.nodes
	c.nodes = nil
	c.nodeIndex = make(map[string]*Node, len(nodes))
	c.parent = make(map[string]string)
	c.children = make(map[string][]string)
	c.hasBoundary = false

	c.logger.Debug("relayout", "nodes", len(nodes))
	for _, n := range nodes {
		n.Z = 0
		if err := insert(n); err != nil {
			c.logger.Debug("relayout failed, restoring", "node", n.ID, "err", err)
			c.restore(snap)
			return err
		}
	}
	return nil
}

// layoutState is the part of a canvas that layout mutates.
type layoutState struct {
	nodes       []*Node
	values      []Node
	parent      map[string]string
	children    map[string][]string
	boundary    geometry.Rect
	hasBoundary bool
}

func (c *Canvas) snapshot() layoutState {
	s := layoutState{
		nodes:       c.nodes,
		values:      make([]Node, len(c.nodes)),
		parent:      maps.Clone(c.parent),
		children:    make(map[string][]string, len(c.children)),
		boundary:    c.boundary,
		hasBoundary: c.hasBoundary,
	}
	for i, n := range c.nodes {
		s.values[i] = *n
	}
	for id, kids := range c.children {
		s.children[id] = append([]string(nil), kids...)
	}
	return s
}

func (c *Canvas) restore(s layoutState) {
	c.nodes = s.nodes
	c.nodeIndex = make(map[string]*Node, len(s.nodes))
	for i, n := range s.nodes {
		*n = s.values[i]
		c.nodeIndex[n.ID] = n
	}
	c.parent = s.parent
	c.children = s.children
	c.boundary, c.hasBoundary = s.boundary, s.hasBoundary
}
