package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/jsoncanvas/pkg/canvas"
	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
	"github.com/matzehuels/jsoncanvas/pkg/geometry"
	cio "github.com/matzehuels/jsoncanvas/pkg/io"
)

// loadCanvas reads a JSON Canvas file with the configured layout parameters.
func (c *CLI) loadCanvas(path string) (*canvas.Canvas, error) {
	doc, err := cio.ImportJSON(path, c.canvasConfig())
	if err != nil {
		return nil, fmt.Errorf("load canvas %s: %w", path, err)
	}
	return doc, nil
}

// saveCanvas writes doc to output, or back to input when output is empty,
// and returns the path written.
func saveCanvas(doc *canvas.Canvas, input, output string) (string, error) {
	path := output
	if path == "" {
		path = input
	}
	if err := cio.ExportJSON(doc, path); err != nil {
		return "", fmt.Errorf("write canvas %s: %w", path, err)
	}
	return path, nil
}

// parseInts parses exactly n comma-separated integers.
func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, cerrors.New(cerrors.ErrCodeInvalidInput, "expected %d comma-separated integers, got %q", n, s)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "parse %q", s)
		}
		out[i] = v
	}
	return out, nil
}

// parsePoint parses "X,Y".
func parsePoint(s string) (geometry.Point, error) {
	v, err := parseInts(s, 2)
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Point{X: v[0], Y: v[1]}, nil
}

// parseRect parses "X,Y,W,H".
func parseRect(s string) (geometry.Rect, error) {
	v, err := parseInts(s, 4)
	if err != nil {
		return geometry.Rect{}, err
	}
	r := geometry.R(v[0], v[1], v[2], v[3])
	if !r.Valid() {
		return r, cerrors.New(cerrors.ErrCodeInvalidGeometry, "rectangle %q has negative size", s)
	}
	return r, nil
}
