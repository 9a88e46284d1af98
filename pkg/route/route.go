// Package route chooses the sides at which an edge attaches to its two
// endpoint nodes.
//
// The router works on plain rectangles, so it can be used without a canvas:
//
//	from, to, err := route.Sides(srcBounds, dstBounds, route.Options{})
//
// Selection runs in stages:
//
//  1. Directional hints. A source strictly left of its destination starts
//     from its right side and arrives on the destination's left side, and so
//     on for the other directions. On an axis where the rectangles overlap,
//     both sides of that axis stay candidates.
//  2. Touching faces. When a face of the source lies flush against the facing
//     face of the destination, that face is removed from the source
//     candidates and its opposite from the destination candidates.
//  3. Occupied faces. Sides already used by the source's outgoing edges and
//     by the destination's incoming edges are never chosen.
//  4. Shortest pair. Every remaining (from, to) combination is scored by the
//     Euclidean distance between side midpoints. A zero distance means the
//     edge would be invisible: both sides are struck and the evaluation
//     restarts without them.
//
// If the hinted candidates leave no usable pair, the search widens to all
// four sides minus the struck and occupied ones. If that fails as well,
// [Sides] returns an invariant violation rather than guessing.
package route

import (
	"errors"
	"io"
	"math"
	"slices"

	"github.com/charmbracelet/log"

	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
	"github.com/matzehuels/jsoncanvas/pkg/geometry"
)

// ErrNoVisibleSides is wrapped by the error returned from [Sides] when every
// side combination has been eliminated.
var ErrNoVisibleSides = errors.New("no visible side pair")

// Options carries the occupancy state of the two endpoints.
type Options struct {
	// UsedFrom lists sides already used by the source's outgoing edges.
	UsedFrom []geometry.Side
	// UsedTo lists sides already used by the destination's incoming edges.
	UsedTo []geometry.Side
	// Logger receives debug output about candidate sets. Nil discards.
	Logger *log.Logger
}

var discard = log.New(io.Discard)

// Sides picks the (fromSide, toSide) pair for an edge from src to dst.
func Sides(src, dst geometry.Rect, opts Options) (geometry.Side, geometry.Side, error) {
	logger := opts.Logger
	if logger == nil {
		logger = discard
	}

	from, to := Hints(src, dst)
	if side, ok := geometry.Touching(src, dst); ok {
		logger.Debug("nodes touch", "side", side)
		from = remove(from, side)
		to = remove(to, side.Opposite())
	}

	r := router{
		src:        src,
		dst:        dst,
		struckFrom: slices.Clone(opts.UsedFrom),
		struckTo:   slices.Clone(opts.UsedTo),
		logger:     logger,
	}

	logger.Debug("route candidates", "from", from, "to", to, "usedFrom", opts.UsedFrom, "usedTo", opts.UsedTo)
	if f, t, ok := r.shortest(from, to); ok {
		return f, t, nil
	}

	logger.Debug("no visible pair among hinted sides, widening search")
	if f, t, ok := r.shortest(geometry.AllSides, geometry.AllSides); ok {
		return f, t, nil
	}

	return geometry.SideNone, geometry.SideNone, cerrors.Wrap(cerrors.ErrCodeInvariant, ErrNoVisibleSides,
		"cannot route between %v and %v", src, dst)
}

// Hints derives the directional candidate sides for an edge from src to
// dst. Horizontal hints come first, then vertical ones.
func Hints(src, dst geometry.Rect) (from, to []geometry.Side) {
	switch {
	case geometry.LeftOf(src, dst):
		from = append(from, geometry.SideRight)
		to = append(to, geometry.SideLeft)
	case geometry.RightOf(src, dst):
		from = append(from, geometry.SideLeft)
		to = append(to, geometry.SideRight)
	default:
		from = append(from, geometry.SideLeft, geometry.SideRight)
		to = append(to, geometry.SideLeft, geometry.SideRight)
	}

	switch {
	case geometry.Below(src, dst):
		from = append(from, geometry.SideTop)
		to = append(to, geometry.SideBottom)
	case geometry.Above(src, dst):
		from = append(from, geometry.SideBottom)
		to = append(to, geometry.SideTop)
	default:
		from = append(from, geometry.SideBottom, geometry.SideTop)
		to = append(to, geometry.SideBottom, geometry.SideTop)
	}
	return from, to
}

type router struct {
	src, dst   geometry.Rect
	struckFrom []geometry.Side
	struckTo   []geometry.Side
	logger     *log.Logger
}

// shortest evaluates every non-struck pair, restarting whenever a
// zero-length pair strikes two more sides.
func (r *router) shortest(from, to []geometry.Side) (geometry.Side, geometry.Side, bool) {
	for {
		best := math.Inf(1)
		var bestFrom, bestTo geometry.Side
		restart := false

	scan:
		for _, f := range from {
			if slices.Contains(r.struckFrom, f) {
				continue
			}
			p := r.src.Midpoint(f)
			for _, t := range to {
				if slices.Contains(r.struckTo, t) {
					continue
				}
				d := geometry.Distance(p, r.dst.Midpoint(t))
				if d == 0 {
					r.logger.Debug("invisible edge, striking sides", "from", f, "to", t)
					r.struckFrom = append(r.struckFrom, f)
					r.struckTo = append(r.struckTo, t)
					restart = true
					break scan
				}
				if d < best {
					best, bestFrom, bestTo = d, f, t
				}
			}
		}

		if restart {
			continue
		}
		if bestFrom == geometry.SideNone {
			return geometry.SideNone, geometry.SideNone, false
		}
		r.logger.Debug("route chosen", "from", bestFrom, "to", bestTo, "distance", best)
		return bestFrom, bestTo, true
	}
}

func remove(sides []geometry.Side, s geometry.Side) []geometry.Side {
	return slices.DeleteFunc(slices.Clone(sides), func(x geometry.Side) bool { return x == s })
}
