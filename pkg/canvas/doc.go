// Package canvas provides the document model and layout engine for JSON
// Canvas style node/edge diagrams.
//
// # Overview
//
// A [Canvas] owns an ordered registry of rectangular nodes (text, file, link
// and group) and the directed edges between them. Every insertion runs
// through the layout engine, which keeps the document in a consistent shape:
//
//   - New nodes without an explicit position are placed in free space so they
//     never overlap an existing sibling.
//   - Group membership is derived from geometry. A node whose bounds lie
//     inside a group becomes a child of the innermost such group.
//   - Draw order (z) follows nesting depth, so children render above their
//     groups.
//   - Groups grow, keeping their aspect ratio, when a child has to be placed
//     beyond their current bounds.
//
// # Basic Usage
//
//	c := canvas.New(canvas.DefaultConfig())
//	a, _ := c.AddOrGetNodeID("a")
//	b, _ := c.AddOrGetNodeID("b")
//	e, _ := c.Connect(a.ID, b.ID, canvas.ConnectOptions{Label: "uses"})
//
// Documents read from disk are loaded with [FromRecords], which validates
// identifiers and edge endpoints and derives the group hierarchy without
// moving anything. [Canvas.Relayout] re-runs the layout engine over a loaded
// document.
//
// # Hierarchy
//
// Nodes do not hold references to their canvas or their parent. The canvas
// stores parent and children links by id, and exposes them through
// [Canvas.Parent] and [Canvas.Children]. [Canvas.Validate] re-checks the
// invariants: referential integrity of edges, parent/child agreement, an
// acyclic hierarchy, and every child lying inside its parent's bounds.
//
// # Idempotency
//
// Adding a node or edge whose id is already registered returns the stored
// entity unchanged. Re-applying the same insertion sequence is therefore safe.
//
// # Concurrency
//
// A Canvas is not safe for concurrent use. Callers sharing a document across
// goroutines must serialize access themselves.
package canvas
