// Package geometry provides the integer rectangle primitives used by the
// canvas layout engine.
//
// # Coordinates
//
// The coordinate system follows the JSON Canvas convention: x grows to the
// right, y grows downward, and a [Rect] is anchored at its top-left corner.
// All values are integers; derived positions such as side midpoints use
// integer division (floor for non-negative dimensions).
//
// # Closed Rectangles
//
// Rectangles are treated as closed sets. [Rect.Contains] is inclusive on all
// four edges, and [Rect.Intersects] reports true for rectangles that merely
// share a border. Layout code relies on this: a candidate placed exactly
// against a neighbour counts as overlapping, so the engine always keeps at
// least one margin of space between placed elements.
//
// # Sides
//
// A [Side] names one of the four faces of a rectangle. Sides anchor edges
// (see the route package) and describe which faces of two rectangles touch
// (see [Touching]). The zero Side is [SideNone] and means "unset".
//
// All functions are total over well-formed rectangles (Width, Height >= 0)
// and never return errors.
package geometry
