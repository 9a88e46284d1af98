package canvas

import "github.com/matzehuels/jsoncanvas/pkg/geometry"

// Spatial queries are linear scans over the registry. Results are in
// registry order.

// NodeAt returns the topmost node containing p: the highest z, and for
// equal z the one registered last, since it draws last.
func (c *Canvas) NodeAt(p geometry.Point, ignoreGroups bool) (*Node, bool) {
	var top *Node
	for _, n := range c.nodes {
		if ignoreGroups && n.IsGroup() {
			continue
		}
		if n.Bounds.ContainsPoint(p) && (top == nil || n.Z >= top.Z) {
			top = n
		}
	}
	return top, top != nil
}

// NodesAt returns every node containing p.
func (c *Canvas) NodesAt(p geometry.Point) []*Node {
	return c.filter(func(n *Node) bool { return n.Bounds.ContainsPoint(p) })
}

// NodesOverlapping returns the nodes intersecting r.
func (c *Canvas) NodesOverlapping(r geometry.Rect, ignoreGroups bool) []*Node {
	return c.filter(func(n *Node) bool {
		return !(ignoreGroups && n.IsGroup()) && n.Bounds.Intersects(r)
	})
}

// NodesContainedBy returns the nodes lying entirely inside r.
func (c *Canvas) NodesContainedBy(r geometry.Rect) []*Node {
	return c.filter(func(n *Node) bool { return r.Contains(n.Bounds) })
}

// NodesContaining returns the nodes whose bounds enclose r.
func (c *Canvas) NodesContaining(r geometry.Rect) []*Node {
	return c.filter(func(n *Node) bool { return n.Bounds.Contains(r) })
}

// ChildrenOverlapping returns the direct children of a group intersecting r.
func (c *Canvas) ChildrenOverlapping(groupID string, r geometry.Rect) []*Node {
	var out []*Node
	for _, cid := range c.children[groupID] {
		if n := c.nodeIndex[cid]; n.Bounds.Intersects(r) {
			out = append(out, n)
		}
	}
	return out
}

func (c *Canvas) filter(keep func(*Node) bool) []*Node {
	var out []*Node
	for _, n := range c.nodes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
