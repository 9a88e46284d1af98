package io

import (
	"cmp"
	"slices"

	"github.com/matzehuels/jsoncanvas/pkg/canvas"
	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
	"github.com/matzehuels/jsoncanvas/pkg/geometry"
)

// Document is the top-level JSON Canvas object.
type Document struct {
	Nodes []NodeRecord `json:"nodes"`
	Edges []EdgeRecord `json:"edges"`
}

// NodeRecord is a node as it appears on disk.
type NodeRecord struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Color  string `json:"color,omitempty"`

	Text    string `json:"text,omitempty"`
	File    string `json:"file,omitempty"`
	Subpath string `json:"subpath,omitempty"`
	URL     string `json:"url,omitempty"`

	Label           string `json:"label,omitempty"`
	Background      string `json:"background,omitempty"`
	BackgroundStyle string `json:"backgroundStyle,omitempty"`
}

// EdgeRecord is an edge as it appears on disk.
type EdgeRecord struct {
	ID       string `json:"id"`
	FromNode string `json:"fromNode"`
	FromSide string `json:"fromSide,omitempty"`
	FromEnd  string `json:"fromEnd,omitempty"`
	ToNode   string `json:"toNode"`
	ToSide   string `json:"toSide,omitempty"`
	ToEnd    string `json:"toEnd,omitempty"`
	Color    string `json:"color,omitempty"`
	Label    string `json:"label,omitempty"`
}

// Node converts the record into an engine node.
func (r NodeRecord) Node() (canvas.Node, error) {
	kind, err := canvas.ParseKind(r.Type)
	if err != nil {
		return canvas.Node{}, cerrors.Wrap(cerrors.ErrCodeInvalidFormat, err, "node %s", r.ID)
	}
	return canvas.Node{
		ID:              r.ID,
		Kind:            kind,
		Bounds:          geometry.R(r.X, r.Y, r.Width, r.Height),
		Color:           r.Color,
		Text:            r.Text,
		File:            r.File,
		Subpath:         r.Subpath,
		URL:             r.URL,
		Label:           r.Label,
		Background:      r.Background,
		BackgroundStyle: canvas.BackgroundStyle(r.BackgroundStyle),
	}, nil
}

// Edge converts the record into an engine edge.
func (r EdgeRecord) Edge() (canvas.Edge, error) {
	e := canvas.Edge{ID: r.ID, FromNode: r.FromNode, ToNode: r.ToNode, Color: r.Color, Label: r.Label}
	var err error
	if e.FromSide, err = geometry.ParseSide(r.FromSide); err != nil {
		return e, cerrors.Wrap(cerrors.ErrCodeInvalidFormat, err, "edge %s", r.ID)
	}
	if e.ToSide, err = geometry.ParseSide(r.ToSide); err != nil {
		return e, cerrors.Wrap(cerrors.ErrCodeInvalidFormat, err, "edge %s", r.ID)
	}
	if e.FromEnd, err = canvas.ParseEnd(r.FromEnd); err != nil {
		return e, cerrors.Wrap(cerrors.ErrCodeInvalidFormat, err, "edge %s", r.ID)
	}
	if e.ToEnd, err = canvas.ParseEnd(r.ToEnd); err != nil {
		return e, cerrors.Wrap(cerrors.ErrCodeInvalidFormat, err, "edge %s", r.ID)
	}
	return e, nil
}

// NodeRecordOf converts an engine node into its on-disk record.
func NodeRecordOf(n *canvas.Node) NodeRecord {
	return NodeRecord{
		ID:              n.ID,
		Type:            n.Kind.String(),
		X:               n.Bounds.X,
		Y:               n.Bounds.Y,
		Width:           n.Bounds.Width,
		Height:          n.Bounds.Height,
		Color:           n.Color,
		Text:            n.Text,
		File:            n.File,
		Subpath:         n.Subpath,
		URL:             n.URL,
		Label:           n.Label,
		Background:      n.Background,
		BackgroundStyle: string(n.BackgroundStyle),
	}
}

// EdgeRecordOf converts an engine edge into its on-disk record.
func EdgeRecordOf(e *canvas.Edge) EdgeRecord {
	return EdgeRecord{
		ID:       e.ID,
		FromNode: e.FromNode,
		FromSide: e.FromSide.String(),
		FromEnd:  e.FromEnd.String(),
		ToNode:   e.ToNode,
		ToSide:   e.ToSide.String(),
		ToEnd:    e.ToEnd.String(),
		Color:    e.Color,
		Label:    e.Label,
	}
}

// Decode builds a canvas from a document.
func Decode(doc Document, cfg canvas.Config) (*canvas.Canvas, error) {
	nodes := make([]canvas.Node, len(doc.Nodes))
	for i, r := range doc.Nodes {
		n, err := r.Node()
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	edges := make([]canvas.Edge, len(doc.Edges))
	for i, r := range doc.Edges {
		e, err := r.Edge()
		if err != nil {
			return nil, err
		}
		edges[i] = e
	}
	return canvas.FromRecords(nodes, edges, cfg)
}

// Encode converts a canvas into a document with nodes in ascending z order.
func Encode(c *canvas.Canvas) Document {
	nodes := c.Nodes()
	slices.SortStableFunc(nodes, func(a, b *canvas.Node) int { return cmp.Compare(a.Z, b.Z) })

	doc := Document{
		Nodes: make([]NodeRecord, len(nodes)),
		Edges: make([]EdgeRecord, c.EdgeCount()),
	}
	for i, n := range nodes {
		doc.Nodes[i] = NodeRecordOf(n)
	}
	for i, e := range c.Edges() {
		doc.Edges[i] = EdgeRecordOf(e)
	}
	return doc
}
