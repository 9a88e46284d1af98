package io

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/jsoncanvas/pkg/canvas"
	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
)

// ReadJSON decodes a JSON Canvas document from r and builds the canvas.
//
// ReadJSON returns an error if:
//   - The JSON is malformed, or a type, side or end value is unknown
//   - A node or edge id is duplicated
//   - An edge references an unknown node id
//   - A node record fails validation (negative size, bad file path or URL)
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader, cfg canvas.Config) (*canvas.Canvas, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidFormat, err, "decode canvas")
	}
	return Decode(doc, cfg)
}

// ImportJSON reads a JSON Canvas file at path. A missing file fails with
// FILE_NOT_FOUND.
func ImportJSON(path string, cfg canvas.Config) (*canvas.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cerrors.Wrap(cerrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f, cfg)
}
