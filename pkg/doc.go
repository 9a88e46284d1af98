// Package pkg provides the core libraries for jsoncanvas, a layout engine for
// JSON Canvas documents.
//
// # Overview
//
// A canvas is an infinite 2D board of text, file, link and group nodes
// connected by edges. jsoncanvas keeps such a board consistent while it is
// edited programmatically: new nodes are placed in free space, groups adopt
// the nodes they enclose and grow to fit new children, and edges are routed
// between the closest pair of free sides.
//
// The pkg directory is organized as follows:
//
//  1. [geometry] - Integer rectangles, points and sides
//  2. [canvas] - The document model and the layout/containment engine
//  3. [route] - Edge side selection between two rectangles
//  4. [io] - JSON Canvas reading and writing
//  5. [cache] - Layout result caching (file, Redis, null backends)
//  6. [errors] - Coded errors shared by every package
//  7. [observability] - Hooks for layout, cache and HTTP events
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/jsoncanvas/pkg/canvas"
//	    "github.com/matzehuels/jsoncanvas/pkg/geometry"
//	    "github.com/matzehuels/jsoncanvas/pkg/io"
//	)
//
//	c, _ := io.ImportJSON("board.canvas", canvas.DefaultConfig())
//
//	a, _ := c.PlaceNode(canvas.NewText("a", geometry.Rect{}, "first"))
//	b, _ := c.PlaceNode(canvas.NewText("b", geometry.Rect{}, "second"))
//	c.Connect(a.ID, b.ID, canvas.ConnectOptions{Label: "next"})
//
//	_ = io.ExportJSON(c, "board.canvas")
//
// # Testing
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/canvas/...     # Specific package
//	go test -run Example ./...   # Examples only
//
// [geometry]: https://pkg.go.dev/github.com/matzehuels/jsoncanvas/pkg/geometry
// [canvas]: https://pkg.go.dev/github.com/matzehuels/jsoncanvas/pkg/canvas
// [route]: https://pkg.go.dev/github.com/matzehuels/jsoncanvas/pkg/route
// [io]: https://pkg.go.dev/github.com/matzehuels/jsoncanvas/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/jsoncanvas/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/jsoncanvas/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/jsoncanvas/pkg/observability
package pkg
