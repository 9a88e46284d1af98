package canvas

import (
	"slices"

	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
	"github.com/matzehuels/jsoncanvas/pkg/geometry"
)

// FindSpace returns a w x h rectangle that overlaps no registered node.
//
// Each node, in registry order, proposes the slot one margin to its right at
// its own top. The first free proposal wins. Failing that, the search scans
// rightward in margin steps from the top-left of the canvas boundary. The
// result depends only on the registry, so the same insertion sequence always
// yields the same layout.
func (c *Canvas) FindSpace(w, h int) geometry.Rect {
	return c.findSpace(w, h, nil)
}

// findSpace ignores moving and its descendants, which are about to be
// relocated.
func (c *Canvas) findSpace(w, h int, moving *Node) geometry.Rect {
	skip := func(n *Node) bool {
		return moving != nil && (n == moving || c.isAncestor(moving.ID, n.ID))
	}
	free := func(r geometry.Rect) bool {
		for _, n := range c.nodes {
			if !skip(n) && n.Bounds.Intersects(r) {
				return false
			}
		}
		return true
	}

	m := c.cfg.Margin
	for _, n := range c.nodes {
		if skip(n) {
			continue
		}
		cand := geometry.R(n.Bounds.Right()+m, n.Bounds.Top(), w, h)
		if free(cand) {
			return cand
		}
	}

	var x, y int
	if c.hasBoundary {
		x, y = c.boundary.Left(), c.boundary.Top()
	}
	for {
		cand := geometry.R(x, y, w, h)
		if free(cand) {
			return cand
		}
		x += m
	}
}

// FindSpaceInGroup returns the top-left position for n inside the group. A
// node that already overlaps the group keeps its position. Otherwise the
// group's interior is scanned row by row, and when it is full the position
// returned lies in a new column to the right or a new row below, where the
// group must grow to hold it.
//
// n need not be registered. A registered n is excluded from the overlap
// test together with its ancestors.
func (c *Canvas) FindSpaceInGroup(groupID string, n Node) (geometry.Point, error) {
	g, err := c.group(groupID)
	if err != nil {
		return geometry.Point{}, err
	}
	if n.ID == g.ID {
		return geometry.Point{}, cerrors.Wrap(cerrors.ErrCodeInvariant, ErrSelfParent, "node %s", n.ID)
	}
	return c.findSpaceInGroup(g, &n), nil
}

func (c *Canvas) findSpaceInGroup(g, n *Node) geometry.Point {
	if g.Bounds.Intersects(n.Bounds) {
		return n.Bounds.TopLeft()
	}
	return c.searchInGroup(g, n)
}

// searchInGroup scans g's interior for a slot that overlaps none of g's
// other children nor any of the extra nodes to avoid.
func (c *Canvas) searchInGroup(g, n *Node, avoid ...*Node) geometry.Point {
	m := c.cfg.Margin
	pb := g.Bounds
	w, h := n.Bounds.Width, n.Bounds.Height

	var obstacles []*Node
	for _, cid := range c.children[g.ID] {
		o := c.nodeIndex[cid]
		if o.ID == n.ID || c.isAncestor(o.ID, n.ID) {
			continue
		}
		obstacles = append(obstacles, o)
	}
	for _, o := range avoid {
		if o != nil && o.ID != n.ID && !slices.Contains(obstacles, o) && !c.isAncestor(o.ID, n.ID) {
			obstacles = append(obstacles, o)
		}
	}

	x, y := pb.Left()+m, pb.Top()+m
	for {
		cand := geometry.R(x, y, w, h)
		farthest, hit := 0, false
		for _, o := range obstacles {
			if o.Bounds.Intersects(cand) {
				if !hit || o.Bounds.Right() > farthest {
					farthest = o.Bounds.Right()
				}
				hit = true
			}
		}
		if !hit {
			return cand.TopLeft()
		}

		x = farthest + m
		if x+w > pb.Right()+m {
			x = pb.Left() + m
			y += m
		}
		if y+h > pb.Bottom()+m {
			return c.overflowSlot(g, n)
		}
	}
}

// overflowSlot decides where a child goes once the group is full: a new
// column to the right when growing the group at its aspect ratio would add
// room for the child and its margins horizontally, else a new row below.
func (c *Canvas) overflowSlot(g, n *Node) geometry.Point {
	column, row := c.overflowSlots(g)
	ratio := aspect(g.Bounds)
	newH := g.Bounds.Height + n.Bounds.Height + 2*c.cfg.Margin
	added := int(ratio*float64(newH)) - g.Bounds.Width
	if added > n.Bounds.Width+2*c.cfg.Margin {
		c.logger.Debug("group full, new column", "group", g.ID, "node", n.ID)
		return column
	}
	c.logger.Debug("group full, new row", "group", g.ID, "node", n.ID)
	return row
}

// overflowSlots returns the top-left corners of a new column right of g and
// a new row below it.
func (c *Canvas) overflowSlots(g *Node) (column, row geometry.Point) {
	m := c.cfg.Margin
	pb := g.Bounds
	return geometry.Point{X: pb.Right() + m, Y: pb.Top() + m}, geometry.Point{X: pb.Left() + m, Y: pb.Bottom() + m}
}

// aspect returns width/height, or 0 when either dimension is zero.
func aspect(r geometry.Rect) float64 {
	if r.Width == 0 || r.Height == 0 {
		return 0
	}
	return float64(r.Width) / float64(r.Height)
}
