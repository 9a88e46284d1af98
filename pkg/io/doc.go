// Package io reads and writes canvas documents in the JSON Canvas format.
//
// # Overview
//
// The layout engine in [canvas] works on plain records. This package is the
// bridge between those records and the JSON Canvas file format used by
// note-taking tools:
//
//	{
//	  "nodes": [
//	    {"id": "g", "type": "group", "x": 0, "y": 0, "width": 400, "height": 300, "label": "Ideas"},
//	    {"id": "a", "type": "text", "x": 20, "y": 20, "width": 250, "height": 60, "text": "hello"}
//	  ],
//	  "edges": [
//	    {"id": "e", "fromNode": "a", "fromSide": "right", "toNode": "b", "toSide": "left"}
//	  ]
//	}
//
// # Node Fields
//
// Every node has id, type, x, y, width and height, plus an optional color.
// The type selects the remaining fields:
//
//   - text: text
//   - file: file, subpath
//   - link: url
//   - group: label, background, backgroundStyle (cover, ratio or repeat)
//
// # Import
//
// [ReadJSON] and [ImportJSON] decode a document and build the canvas with
// [canvas.FromRecords]: identifiers and edge endpoints are validated, the
// group hierarchy is derived from geometry, and nothing is moved.
//
//	c, err := io.ImportJSON("board.canvas", canvas.DefaultConfig())
//
// # Export
//
// [WriteJSON] and [ExportJSON] write nodes in ascending z order, so readers
// that draw in file order put children above their groups. Edges keep their
// registry order.
//
// Malformed input fails with an INVALID_FORMAT error from
// [github.com/matzehuels/jsoncanvas/pkg/errors].
package io
