package canvas

import (
	"slices"

	"github.com/charmbracelet/log"

	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
	"github.com/matzehuels/jsoncanvas/pkg/geometry"
	"github.com/matzehuels/jsoncanvas/pkg/observability"
)

// Canvas is a node/edge document with an attached layout engine.
//
// The zero value is not usable - use New or FromRecords.
type Canvas struct {
	cfg    Config
	logger *log.Logger

	nodes     []*Node // registry order
	nodeIndex map[string]*Node
	edges     []*Edge
	edgeIndex map[string]*Edge

	parent   map[string]string   // child ID -> group ID
	children map[string][]string // group ID -> child IDs, ordered
	incident map[string][]string // node ID -> edge IDs

	boundary    geometry.Rect
	hasBoundary bool
}

// New creates an empty canvas. Non-positive values in cfg are replaced by
// the defaults; use [Config.Validate] to reject them instead.
func New(cfg Config) *Canvas {
	cfg = cfg.withDefaults()
	return &Canvas{
		cfg:       cfg,
		logger:    cfg.Logger,
		nodeIndex: make(map[string]*Node),
		edgeIndex: make(map[string]*Edge),
		parent:    make(map[string]string),
		children:  make(map[string][]string),
		incident:  make(map[string][]string),
	}
}

// FromRecords builds a canvas from already-positioned records, as read from
// a document. Nodes keep their bounds and z; the group hierarchy is derived
// from geometry. Duplicate ids and edges with a missing endpoint fail with a
// validation error naming the offending id.
func FromRecords(nodes []Node, edges []Edge, cfg Config) (*Canvas, error) {
	c := New(cfg)
	for i := range nodes {
		n := nodes[i]
		if err := n.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.nodeIndex[n.ID]; ok {
			return nil, cerrors.Wrap(cerrors.ErrCodeDuplicateID, ErrDuplicateNodeID, "node %s", n.ID)
		}
		c.register(&n)
	}
	for i := range edges {
		e := edges[i]
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.edgeIndex[e.ID]; ok {
			return nil, cerrors.Wrap(cerrors.ErrCodeDuplicateID, ErrDuplicateEdgeID, "edge %s", e.ID)
		}
		for _, end := range []string{e.FromNode, e.ToNode} {
			if _, ok := c.nodeIndex[end]; !ok {
				return nil, cerrors.Wrap(cerrors.ErrCodeUnknownNode, ErrUnknownNode,
					"edge %s references node %s", e.ID, end)
			}
		}
		c.registerEdge(&e)
	}
	c.deriveHierarchy()
	c.logger.Debug("canvas loaded", "nodes", len(c.nodes), "edges", len(c.edges))
	return c, nil
}

// deriveHierarchy attaches every node to its innermost containing group.
// For equal areas the group earlier in registry order is the outer one.
func (c *Canvas) deriveHierarchy() {
	pos := make(map[string]int, len(c.nodes))
	for i, n := range c.nodes {
		pos[n.ID] = i
	}
	encloses := func(g, n *Node) bool {
		if g == n || !g.IsGroup() || !g.Bounds.Contains(n.Bounds) {
			return false
		}
		ga, na := g.Bounds.Area(), n.Bounds.Area()
		return ga > na || (ga == na && pos[g.ID] < pos[n.ID])
	}
	for _, n := range c.nodes {
		var best *Node
		for _, g := range c.nodes {
			if !encloses(g, n) {
				continue
			}
			if best == nil || g.Bounds.Area() < best.Bounds.Area() ||
				(g.Bounds.Area() == best.Bounds.Area() && pos[g.ID] > pos[best.ID]) {
				best = g
			}
		}
		if best != nil {
			c.link(n.ID, best.ID)
		}
	}
	for _, n := range c.nodes {
		if _, ok := c.parent[n.ID]; !ok {
			c.restack(n, 0)
		}
	}
}

// ===== Accessors =====

// Config returns the effective layout configuration.
func (c *Canvas) Config() Config { return c.cfg }

// Node returns the node with the given id.
func (c *Canvas) Node(id string) (*Node, bool) {
	n, ok := c.nodeIndex[id]
	return n, ok
}

// Edge returns the edge with the given id.
func (c *Canvas) Edge(id string) (*Edge, bool) {
	e, ok := c.edgeIndex[id]
	return e, ok
}

// Nodes returns all nodes in registry order.
func (c *Canvas) Nodes() []*Node { return slices.Clone(c.nodes) }

// Edges returns all edges in registry order.
func (c *Canvas) Edges() []*Edge { return slices.Clone(c.edges) }

// NodeCount returns the number of registered nodes.
func (c *Canvas) NodeCount() int { return len(c.nodes) }

// EdgeCount returns the number of registered edges.
func (c *Canvas) EdgeCount() int { return len(c.edges) }

// Parent returns the group directly containing the node, if any.
func (c *Canvas) Parent(id string) (*Node, bool) {
	p, ok := c.parent[id]
	if !ok {
		return nil, false
	}
	return c.nodeIndex[p], true
}

// Children returns the direct children of a group in attachment order.
func (c *Canvas) Children(id string) []*Node {
	ids := c.children[id]
	out := make([]*Node, len(ids))
	for i, cid := range ids {
		out[i] = c.nodeIndex[cid]
	}
	return out
}

// EdgesOf returns the edges touching a node, in registration order.
func (c *Canvas) EdgesOf(id string) []*Edge {
	ids := c.incident[id]
	out := make([]*Edge, len(ids))
	for i, eid := range ids {
		out[i] = c.edgeIndex[eid]
	}
	return out
}

// Boundary returns the running bounding rectangle of the document. It
// reports false for an empty canvas.
func (c *Canvas) Boundary() (geometry.Rect, bool) {
	return c.boundary, c.hasBoundary
}

// ===== Nodes =====

// AddOrGetNode registers n and folds it into the group hierarchy. If a node
// with the same id exists, the stored node is returned unchanged.
func (c *Canvas) AddOrGetNode(n Node) (*Node, error) {
	if existing, ok := c.nodeIndex[n.ID]; ok {
		return existing, nil
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	node := &n
	if err := c.insert(node); err != nil {
		return nil, err
	}
	return node, nil
}

// AddOrGetNodeID returns the node with the given id, creating a default
// sized text node in free space if it does not exist. An empty id creates a
// node with a generated id.
func (c *Canvas) AddOrGetNodeID(id string) (*Node, error) {
	if existing, ok := c.nodeIndex[id]; ok {
		return existing, nil
	}
	return c.PlaceNode(NewText(id, geometry.Rect{}, ""))
}

// PlaceNode registers n at the first free slot of the canvas-level search,
// ignoring its position. A zero width or height takes the configured
// default. Like [Canvas.AddOrGetNode], an existing id returns the stored
// node unchanged.
func (c *Canvas) PlaceNode(n Node) (*Node, error) {
	if existing, ok := c.nodeIndex[n.ID]; ok {
		return existing, nil
	}
	if err := c.defaultSize(&n); err != nil {
		return nil, err
	}
	n.Bounds = c.FindSpace(n.Bounds.Width, n.Bounds.Height)
	return c.AddOrGetNode(n)
}

// AddOrGetNodeInGroup places n inside the given group, keeping its position
// if it already overlaps the group and otherwise searching the group's free
// space. The group grows when the node does not fit.
func (c *Canvas) AddOrGetNodeInGroup(groupID string, n Node) (*Node, error) {
	return c.addInGroup(groupID, n, false)
}

// PlaceNodeInGroup is [Canvas.AddOrGetNodeInGroup] for a node without a
// meaningful position: the group's interior is always searched, and a zero
// width or height takes the configured default.
func (c *Canvas) PlaceNodeInGroup(groupID string, n Node) (*Node, error) {
	return c.addInGroup(groupID, n, true)
}

func (c *Canvas) addInGroup(groupID string, n Node, search bool) (*Node, error) {
	if existing, ok := c.nodeIndex[n.ID]; ok {
		return existing, nil
	}
	g, err := c.group(groupID)
	if err != nil {
		return nil, err
	}
	if search {
		if err := c.defaultSize(&n); err != nil {
			return nil, err
		}
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	if search {
		n.Bounds = n.Bounds.MoveTo(c.searchInGroup(g, &n))
	} else {
		n.Bounds = n.Bounds.MoveTo(c.findSpaceInGroup(g, &n))
	}
	if !g.Bounds.Contains(n.Bounds) {
		if err := c.resizeForNode(g, n.Bounds); err != nil {
			return nil, err
		}
	}
	node := &n
	if err := c.insert(node); err != nil {
		return nil, err
	}
	return node, nil
}

// defaultSize fills a zero width or height with the configured default.
func (c *Canvas) defaultSize(n *Node) error {
	if n.Bounds.Width == 0 {
		n.Bounds.Width = c.cfg.DefaultWidth
	}
	if n.Bounds.Height == 0 {
		n.Bounds.Height = c.cfg.DefaultHeight
	}
	if !n.Bounds.Valid() {
		return cerrors.Wrap(cerrors.ErrCodeInvalidGeometry, ErrInvalidBounds, "node %s has size %dx%d",
			n.ID, n.Bounds.Width, n.Bounds.Height)
	}
	return nil
}

// AddToGroup makes an existing node a child of an existing group, moving it
// into the group's free space if it lies outside.
func (c *Canvas) AddToGroup(nodeID, groupID string) error {
	n, ok := c.nodeIndex[nodeID]
	if !ok {
		return cerrors.Wrap(cerrors.ErrCodeUnknownNode, ErrUnknownNode, "node %s", nodeID)
	}
	g, err := c.group(groupID)
	if err != nil {
		return err
	}
	if err := c.attach(n, g); err != nil {
		return err
	}
	if g.Bounds.Contains(n.Bounds) {
		return nil
	}
	c.moveTo(n, c.findSpaceInGroup(g, n))
	if g.Bounds.Contains(n.Bounds) {
		return nil
	}
	return c.resizeForNode(g, n.Bounds)
}

// insert registers a validated node and runs the containment resolver.
func (c *Canvas) insert(n *Node) error {
	c.register(n)
	c.logger.Debug("node added", "id", n.ID, "kind", n.Kind, "bounds", n.Bounds)
	observability.Layout().OnNodeAdded(n.ID, n.Kind.String(), n.Bounds)
	return c.resolve(n)
}

func (c *Canvas) register(n *Node) {
	c.nodes = append(c.nodes, n)
	c.nodeIndex[n.ID] = n
	c.expandBoundary(n.Bounds)
}

func (c *Canvas) group(id string) (*Node, error) {
	g, ok := c.nodeIndex[id]
	if !ok {
		return nil, cerrors.Wrap(cerrors.ErrCodeUnknownNode, ErrUnknownNode, "group %s", id)
	}
	if !g.IsGroup() {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidInput, ErrNotAGroup, "node %s is a %v node", id, g.Kind)
	}
	return g, nil
}

// RemoveNode deletes a node together with the edges touching it. Children
// of a removed group are handed to the group's own parent. It reports
// whether a node was removed.
func (c *Canvas) RemoveNode(id string) bool {
	n, ok := c.nodeIndex[id]
	if !ok {
		return false
	}
	for _, eid := range slices.Clone(c.incident[id]) {
		c.RemoveEdge(eid)
	}
	delete(c.incident, id)

	p, hasParent := c.parent[id]
	for _, cid := range slices.Clone(c.children[id]) {
		c.unlink(cid)
		if hasParent {
			c.link(cid, p)
			observability.Layout().OnReparent(cid, id, p)
		} else {
			observability.Layout().OnReparent(cid, id, "")
		}
	}
	delete(c.children, id)
	c.unlink(id)

	c.nodes = slices.DeleteFunc(c.nodes, func(x *Node) bool { return x == n })
	delete(c.nodeIndex, id)
	c.recomputeBoundary()

	c.logger.Debug("node removed", "id", id)
	observability.Layout().OnNodeRemoved(id)
	return true
}

// ===== Edges =====

// AddOrGetEdge registers e, creating any missing endpoint node by id. If an
// edge with the same id exists, the stored edge is returned unchanged.
func (c *Canvas) AddOrGetEdge(e Edge) (*Edge, error) {
	if existing, ok := c.edgeIndex[e.ID]; ok {
		return existing, nil
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if _, err := c.AddOrGetNodeID(e.FromNode); err != nil {
		return nil, err
	}
	if _, err := c.AddOrGetNodeID(e.ToNode); err != nil {
		return nil, err
	}
	edge := &e
	c.registerEdge(edge)
	c.logger.Debug("edge added", "id", e.ID, "from", e.FromNode, "to", e.ToNode)
	return edge, nil
}

func (c *Canvas) registerEdge(e *Edge) {
	c.edges = append(c.edges, e)
	c.edgeIndex[e.ID] = e
	c.incident[e.FromNode] = append(c.incident[e.FromNode], e.ID)
	if e.ToNode != e.FromNode {
		c.incident[e.ToNode] = append(c.incident[e.ToNode], e.ID)
	}
}

// RemoveEdge deletes an edge and reports whether it existed.
func (c *Canvas) RemoveEdge(id string) bool {
	e, ok := c.edgeIndex[id]
	if !ok {
		return false
	}
	drop := func(nodeID string) {
		c.incident[nodeID] = slices.DeleteFunc(c.incident[nodeID], func(x string) bool { return x == id })
	}
	drop(e.FromNode)
	drop(e.ToNode)
	c.edges = slices.DeleteFunc(c.edges, func(x *Edge) bool { return x == e })
	delete(c.edgeIndex, id)
	return true
}

// ===== Boundary =====

func (c *Canvas) expandBoundary(r geometry.Rect) {
	padded := r.Expand(c.cfg.Margin)
	if !c.hasBoundary {
		c.boundary, c.hasBoundary = padded, true
		return
	}
	c.boundary = c.boundary.Union(padded)
}

// recomputeBoundary sets the boundary to the tight union of all node bounds.
func (c *Canvas) recomputeBoundary() {
	c.hasBoundary = len(c.nodes) > 0
	c.boundary = geometry.Rect{}
	for i, n := range c.nodes {
		if i == 0 {
			c.boundary = n.Bounds
			continue
		}
		c.boundary = c.boundary.Union(n.Bounds)
	}
}

// ===== Validation =====

// Validate checks the structural invariants of the document: unique ids,
// edge endpoints present, parent and children links in agreement, an
// acyclic hierarchy, children inside their parent's bounds and drawn above
// it.
func (c *Canvas) Validate() error {
	if len(c.nodeIndex) != len(c.nodes) {
		return cerrors.Wrap(cerrors.ErrCodeDuplicateID, ErrDuplicateNodeID, "registry holds %d nodes under %d ids",
			len(c.nodes), len(c.nodeIndex))
	}
	if len(c.edgeIndex) != len(c.edges) {
		return cerrors.Wrap(cerrors.ErrCodeDuplicateID, ErrDuplicateEdgeID, "registry holds %d edges under %d ids",
			len(c.edges), len(c.edgeIndex))
	}
	for _, e := range c.edges {
		for _, end := range []string{e.FromNode, e.ToNode} {
			if _, ok := c.nodeIndex[end]; !ok {
				return cerrors.Wrap(cerrors.ErrCodeUnknownNode, ErrUnknownNode, "edge %s references node %s", e.ID, end)
			}
			if !slices.Contains(c.incident[end], e.ID) {
				return cerrors.Wrap(cerrors.ErrCodeInvariant, ErrHierarchyMismatch,
					"edge %s missing from the edge list of node %s", e.ID, end)
			}
		}
	}
	for childID, parentID := range c.parent {
		child, ok := c.nodeIndex[childID]
		if !ok {
			return cerrors.Wrap(cerrors.ErrCodeUnknownNode, ErrUnknownNode, "parent link from %s", childID)
		}
		p, ok := c.nodeIndex[parentID]
		if !ok {
			return cerrors.Wrap(cerrors.ErrCodeUnknownNode, ErrUnknownNode, "parent %s of %s", parentID, childID)
		}
		if !slices.Contains(c.children[parentID], childID) {
			return cerrors.Wrap(cerrors.ErrCodeInvariant, ErrHierarchyMismatch, "%s not listed under %s", childID, parentID)
		}
		if !p.Bounds.Contains(child.Bounds) {
			return cerrors.Wrap(cerrors.ErrCodeInvariant, ErrContainment, "%s %v not inside %s %v",
				childID, child.Bounds, parentID, p.Bounds)
		}
		if child.Z <= p.Z {
			return cerrors.New(cerrors.ErrCodeInvariant, "%s (z=%d) not above parent %s (z=%d)",
				childID, child.Z, parentID, p.Z)
		}
		if c.isAncestor(childID, parentID) {
			return cerrors.Wrap(cerrors.ErrCodeInvariant, ErrParentCycle, "%s", childID)
		}
	}
	for parentID, ids := range c.children {
		for _, cid := range ids {
			if c.parent[cid] != parentID {
				return cerrors.Wrap(cerrors.ErrCodeInvariant, ErrHierarchyMismatch,
					"%s listed under %s but its parent is %q", cid, parentID, c.parent[cid])
			}
		}
	}
	return nil
}
