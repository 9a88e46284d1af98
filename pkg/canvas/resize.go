package canvas

import (
	"math"
	"slices"

	"github.com/matzehuels/jsoncanvas/pkg/geometry"
	"github.com/matzehuels/jsoncanvas/pkg/observability"
)

// ResizeGroup grows a group until every child fits inside it, then
// propagates the growth to its ancestors.
func (c *Canvas) ResizeGroup(id string) error {
	g, err := c.group(id)
	if err != nil {
		return err
	}
	return c.resizeForChildren(g)
}

// resizeForNode grows g so that r lies inside it with a margin to spare.
// Each edge r crosses is pushed out past r, and the other dimension is then
// raised to keep g's aspect ratio. Every step only enlarges, and no step
// moves an already-fixed edge inward, so one pass over the four edges is
// enough.
func (c *Canvas) resizeForNode(g *Node, r geometry.Rect) error {
	m := c.cfg.Margin
	old := g.Bounds
	b := g.Bounds
	ratio := aspect(b)

	fitHeight := func() {
		if ratio > 0 {
			b.Height = max(b.Height, int(math.Ceil(float64(b.Width)/ratio)))
		}
	}
	fitWidth := func() {
		if ratio > 0 {
			b.Width = max(b.Width, int(math.Ceil(float64(b.Height)*ratio)))
		}
	}

	if r.Right() > b.Right() {
		b.Width = r.Right() + m - b.X
		fitHeight()
	}
	if r.Bottom() > b.Bottom() {
		b.Height = r.Bottom() + m - b.Y
		fitWidth()
	}
	if r.Left() < b.Left() {
		right := b.Right()
		b.X = r.Left() - m
		b.Width = right - b.X
		fitHeight()
	}
	if r.Top() < b.Top() {
		bottom := b.Bottom()
		b.Y = r.Top() - m
		b.Height = bottom - b.Y
		fitWidth()
	}
	if b == old {
		return nil
	}

	g.Bounds = b
	c.expandBoundary(b)
	c.logger.Debug("group resized", "id", g.ID, "from", old, "to", b)
	observability.Layout().OnGroupResized(g.ID, old, b)
	return c.resizeForChildren(g)
}

// resizeForChildren makes sure g holds all its children, takes in
// same-level nodes that now lie inside it, and grows g's parent if g
// outgrew it.
func (c *Canvas) resizeForChildren(g *Node) error {
	for _, cid := range slices.Clone(c.children[g.ID]) {
		child := c.nodeIndex[cid]
		if !g.Bounds.Contains(child.Bounds) {
			if err := c.resizeForNode(g, child.Bounds); err != nil {
				return err
			}
		}
	}

	pid, hasParent := c.parent[g.ID]
	for _, n := range c.nodes {
		if n == g || n.Bounds == g.Bounds || !g.Bounds.Contains(n.Bounds) {
			continue
		}
		if npid, ok := c.parent[n.ID]; ok != hasParent || npid != pid {
			continue
		}
		c.logger.Debug("group takes in sibling", "group", g.ID, "node", n.ID)
		if err := c.attach(n, g); err != nil {
			return err
		}
	}

	if !hasParent {
		return nil
	}
	p := c.nodeIndex[pid]
	if p.Bounds.Contains(g.Bounds) {
		return nil
	}
	return c.resizeForNode(p, g.Bounds)
}
