package canvas

import (
	"cmp"
	"slices"

	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
	"github.com/matzehuels/jsoncanvas/pkg/geometry"
	"github.com/matzehuels/jsoncanvas/pkg/observability"
)

// resolve folds a freshly registered node into the group hierarchy.
//
// The node joins the innermost group containing it and draws above every
// containing group. A new group adopts the nodes it encloses. A new non-group
// node cannot legitimately enclose anything, so enclosed nodes are moved
// out of its way.
func (c *Canvas) resolve(n *Node) error {
	containing := c.NodesContaining(n.Bounds)
	containing = slices.DeleteFunc(containing, func(g *Node) bool {
		return g == n || !g.IsGroup() || c.isAncestor(n.ID, g.ID)
	})
	n.Z = len(containing)

	// Outermost first, so each step can only move the node deeper.
	slices.SortStableFunc(containing, func(a, b *Node) int {
		return cmp.Compare(b.Bounds.Area(), a.Bounds.Area())
	})
	for _, g := range containing {
		if err := c.joinContaining(n, g); err != nil {
			return err
		}
	}

	if n.IsGroup() {
		return c.adoptEnclosed(n)
	}
	return c.displaceEnclosed(n)
}

func (c *Canvas) joinContaining(n, g *Node) error {
	pid, hasParent := c.parent[n.ID]
	switch {
	case !hasParent:
		return c.attach(n, g)
	case pid == g.ID:
		return nil
	case c.nodeIndex[pid].Bounds.Contains(g.Bounds) && !c.isAncestor(g.ID, pid):
		// g sits inside the current parent: it is the tighter fit.
		return c.attach(n, g)
	}
	root := c.root(n)
	if root == g || c.isAncestor(root.ID, g.ID) || !g.Bounds.Contains(root.Bounds) {
		return nil
	}
	return c.attach(root, g)
}

// adoptEnclosed attaches to group g the topmost enclosed node of every
// subtree that lies inside g.
func (c *Canvas) adoptEnclosed(g *Node) error {
	for _, m := range c.NodesContainedBy(g.Bounds) {
		if m == g || c.isAncestor(m.ID, g.ID) {
			continue
		}
		top := m
		for {
			pid, ok := c.parent[top.ID]
			if !ok || pid == g.ID {
				break
			}
			p := c.nodeIndex[pid]
			if !g.Bounds.Contains(p.Bounds) || c.isAncestor(p.ID, g.ID) {
				break
			}
			top = p
		}
		pid, ok := c.parent[top.ID]
		if ok && pid == g.ID {
			continue
		}
		if ok && !c.isAncestor(pid, g.ID) && c.nodeIndex[pid].Bounds.Area() <= g.Bounds.Area() {
			// Already held by a group at least as tight as g.
			continue
		}
		c.logger.Debug("group adopts node", "group", g.ID, "node", top.ID)
		if err := c.attach(top, g); err != nil {
			return err
		}
	}
	return nil
}

// displaceEnclosed relocates every subtree lying inside the non-group node n.
func (c *Canvas) displaceEnclosed(n *Node) error {
	enclosed := slices.DeleteFunc(c.NodesContainedBy(n.Bounds), func(m *Node) bool {
		return m == n || c.isAncestor(m.ID, n.ID)
	})
	for _, m := range enclosed {
		if slices.ContainsFunc(enclosed, func(o *Node) bool { return o != m && c.isAncestor(o.ID, m.ID) }) {
			continue // moves with its ancestor
		}
		if !n.Bounds.Contains(m.Bounds) {
			continue // an earlier relocation already moved it
		}
		c.logger.Debug("collision", "node", n.ID, "displaces", m.ID)
		if err := c.relocate(m, n); err != nil {
			return err
		}
	}
	return nil
}

// relocate finds a new home for m inside its current parent, or on the
// canvas when it has none. The node that caused the collision is avoided
// even when it is not a sibling.
func (c *Canvas) relocate(m, cause *Node) error {
	from := m.Bounds
	if pid, ok := c.parent[m.ID]; ok {
		if err := c.relocateInGroup(m, c.nodeIndex[pid], cause); err != nil {
			return err
		}
	} else {
		c.moveTo(m, c.findSpace(m.Bounds.Width, m.Bounds.Height, m).TopLeft())
	}
	c.logger.Debug("node relocated", "id", m.ID, "from", from, "to", m.Bounds)
	observability.Layout().OnNodeRelocated(m.ID, from, m.Bounds)
	return nil
}

// relocateInGroup moves m to the first slot of its parent p that clears
// cause: the interior scan, then the new column, then the new row. When
// cause covers all of them, m leaves p for free space on the canvas.
func (c *Canvas) relocateInGroup(m, p, cause *Node) error {
	w, h := m.Bounds.Width, m.Bounds.Height
	column, row := c.overflowSlots(p)
	for _, slot := range []geometry.Point{c.searchInGroup(p, m, cause), column, row} {
		if cause.Bounds.Intersects(geometry.R(slot.X, slot.Y, w, h)) {
			continue
		}
		c.moveTo(m, slot)
		if p.Bounds.Contains(m.Bounds) {
			return nil
		}
		return c.resizeForNode(p, m.Bounds)
	}

	c.logger.Debug("no room left in group", "node", m.ID, "group", p.ID, "cause", cause.ID)
	c.detach(m)
	c.moveTo(m, c.findSpace(w, h, m).TopLeft())
	return nil
}

// moveTo places n's top-left corner at p and carries its descendants along.
func (c *Canvas) moveTo(n *Node, p geometry.Point) {
	dx, dy := p.X-n.Bounds.X, p.Y-n.Bounds.Y
	if dx == 0 && dy == 0 {
		return
	}
	c.translate(n, dx, dy)
	c.expandBoundary(n.Bounds)
}

func (c *Canvas) translate(n *Node, dx, dy int) {
	n.Bounds = n.Bounds.Translate(dx, dy)
	for _, cid := range c.children[n.ID] {
		c.translate(c.nodeIndex[cid], dx, dy)
	}
}

// ===== Hierarchy links =====

// attach makes g the parent of n and restacks n's subtree above g.
func (c *Canvas) attach(n, g *Node) error {
	if n == g {
		return cerrors.Wrap(cerrors.ErrCodeInvariant, ErrSelfParent, "node %s", n.ID)
	}
	if !g.IsGroup() {
		return cerrors.Wrap(cerrors.ErrCodeInvalidInput, ErrNotAGroup, "node %s is a %v node", g.ID, g.Kind)
	}
	if c.isAncestor(n.ID, g.ID) {
		return cerrors.Wrap(cerrors.ErrCodeInvariant, ErrParentCycle, "%s is an ancestor of %s", n.ID, g.ID)
	}
	old := c.parent[n.ID]
	if old == g.ID {
		return nil
	}
	c.unlink(n.ID)
	c.link(n.ID, g.ID)
	c.restack(n, g.Z+1)
	c.logger.Debug("reparent", "node", n.ID, "from", old, "to", g.ID, "z", n.Z)
	observability.Layout().OnReparent(n.ID, old, g.ID)
	return nil
}

// detach turns n into a top-level node. Its subtree keeps drawing above it.
func (c *Canvas) detach(n *Node) {
	old, ok := c.parent[n.ID]
	if !ok {
		return
	}
	c.unlink(n.ID)
	n.Z = 0
	c.restack(n, 0)
	c.logger.Debug("reparent", "node", n.ID, "from", old, "to", "", "z", n.Z)
	observability.Layout().OnReparent(n.ID, old, "")
}

func (c *Canvas) link(childID, groupID string) {
	c.parent[childID] = groupID
	c.children[groupID] = append(c.children[groupID], childID)
}

func (c *Canvas) unlink(childID string) {
	pid, ok := c.parent[childID]
	if !ok {
		return
	}
	c.children[pid] = slices.DeleteFunc(c.children[pid], func(id string) bool { return id == childID })
	if len(c.children[pid]) == 0 {
		delete(c.children, pid)
	}
	delete(c.parent, childID)
}

// restack raises n's z to at least minZ and keeps every descendant above its
// parent.
func (c *Canvas) restack(n *Node, minZ int) {
	n.Z = max(n.Z, minZ)
	for _, cid := range c.children[n.ID] {
		c.restack(c.nodeIndex[cid], n.Z+1)
	}
}

// isAncestor reports whether a is a proper ancestor of b.
func (c *Canvas) isAncestor(a, b string) bool {
	cur := b
	for range len(c.nodes) + 1 {
		p, ok := c.parent[cur]
		if !ok {
			return false
		}
		if p == a {
			return true
		}
		cur = p
	}
	return false
}

// root returns the outermost ancestor of n, or n itself.
func (c *Canvas) root(n *Node) *Node {
	cur := n
	for range len(c.nodes) + 1 {
		p, ok := c.parent[cur.ID]
		if !ok {
			break
		}
		cur = c.nodeIndex[p]
	}
	return cur
}
