package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/matzehuels/jsoncanvas/pkg/buildinfo"
	"github.com/matzehuels/jsoncanvas/pkg/cache"
	"github.com/matzehuels/jsoncanvas/pkg/canvas"
	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
	"github.com/matzehuels/jsoncanvas/pkg/geometry"
	cio "github.com/matzehuels/jsoncanvas/pkg/io"
	"github.com/matzehuels/jsoncanvas/pkg/route"
)

const layoutOperation = "http-layout"

// LayoutRequest is the body of POST /v1/layout.
type LayoutRequest struct {
	// Canvas is an optional JSON Canvas document to start from.
	Canvas json.RawMessage `json:"canvas,omitempty"`
	Nodes  []NodeRequest   `json:"nodes,omitempty"`
	Edges  []EdgeRequest   `json:"edges,omitempty"`
}

// NodeRequest is a node record plus placement instructions. Place ignores
// the record's position and searches for free space, inside Group when it
// is set. A zero width or height then takes the configured default. Without
// Place the record keeps its position unless Group is set and the node does
// not overlap that group.
type NodeRequest struct {
	cio.NodeRecord
	Group string `json:"group,omitempty"`
	Place bool   `json:"place,omitempty"`
}

// EdgeRequest asks for an auto-routed edge between two nodes.
type EdgeRequest struct {
	ID    string `json:"id,omitempty"`
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
	Color string `json:"color,omitempty"`
}

// RouteRequest is the body of POST /v1/route.
type RouteRequest struct {
	From     geometry.Rect   `json:"from"`
	To       geometry.Rect   `json:"to"`
	UsedFrom []geometry.Side `json:"usedFrom,omitempty"`
	UsedTo   []geometry.Side `json:"usedTo,omitempty"`
}

// RouteResponse carries the chosen sides.
type RouteResponse struct {
	FromSide geometry.Side `json:"fromSide"`
	ToSide   geometry.Side `json:"toSide"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    cerrors.Code `json:"code"`
	Message string       `json:"message"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Build: buildinfo.Current()})
}

func (s *Server) layout(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	ctx := r.Context()
	opts := cache.LayoutKeyOpts{
		Operation:     layoutOperation,
		Margin:        s.cfg.Margin,
		DefaultWidth:  s.cfg.DefaultWidth,
		DefaultHeight: s.cfg.DefaultHeight,
	}
	if data, hit, err := s.layouts.Get(ctx, body, opts); err != nil {
		s.logger.Warn("layout cache read failed", "error", err)
	} else if hit {
		w.Header().Set("X-Cache", "HIT")
		s.respondRaw(w, http.StatusOK, data)
		return
	}

	var req LayoutRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.respondError(w, cerrors.Wrap(cerrors.ErrCodeInvalidFormat, err, "decode request"))
		return
	}
	c, err := s.buildCanvas(req)
	if err != nil {
		s.respondError(w, err)
		return
	}

	out, err := json.Marshal(cio.Encode(c))
	if err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.layouts.Put(ctx, body, opts, out); err != nil {
		s.logger.Warn("layout cache write failed", "error", err)
	}
	w.Header().Set("X-Cache", "MISS")
	s.respondRaw(w, http.StatusOK, out)
}

// buildCanvas applies the request to its starting document: nodes first, in
// request order, then edges.
func (s *Server) buildCanvas(req LayoutRequest) (*canvas.Canvas, error) {
	var c *canvas.Canvas
	if len(req.Canvas) > 0 && !bytes.Equal(req.Canvas, []byte("null")) {
		var err error
		if c, err = cio.ReadJSON(bytes.NewReader(req.Canvas), s.cfg); err != nil {
			return nil, err
		}
	} else {
		c = canvas.New(s.cfg)
	}

	for _, nr := range req.Nodes {
		n, err := nr.Node()
		if err != nil {
			return nil, err
		}
		switch {
		case nr.Group != "" && nr.Place:
			_, err = c.PlaceNodeInGroup(nr.Group, n)
		case nr.Group != "":
			_, err = c.AddOrGetNodeInGroup(nr.Group, n)
		case nr.Place:
			_, err = c.PlaceNode(n)
		default:
			_, err = c.AddOrGetNode(n)
		}
		if err != nil {
			return nil, err
		}
	}

	for _, er := range req.Edges {
		if _, err := c.Connect(er.From, er.To, canvas.ConnectOptions{ID: er.ID, Label: er.Label, Color: er.Color}); err != nil {
			return nil, err
		}
	}
	s.logger.Debug("layout built", "nodes", c.NodeCount(), "edges", c.EdgeCount())
	return c, nil
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	var req RouteRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.respondError(w, cerrors.Wrap(cerrors.ErrCodeInvalidFormat, err, "decode request"))
		return
	}
	if !req.From.Valid() || !req.To.Valid() {
		s.respondError(w, cerrors.New(cerrors.ErrCodeInvalidGeometry, "rectangles must have non-negative size"))
		return
	}

	from, to, err := route.Sides(req.From, req.To, route.Options{
		UsedFrom: req.UsedFrom,
		UsedTo:   req.UsedTo,
		Logger:   s.logger,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, RouteResponse{FromSide: from, ToSide: to})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "read request body")
	}
	return body, nil
}

// ===== Responses =====

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode response", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.respondRaw(w, status, data)
}

func (s *Server) respondRaw(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		s.logger.Debug("write response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	resp := ErrorResponse{Code: cerrors.GetCode(err), Message: cerrors.UserMessage(err)}
	if resp.Code == "" {
		resp.Code = cerrors.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
		if cerrors.GetCode(err) == "" {
			resp.Message = "internal error"
		}
	}
	s.respondJSON(w, status, resp)
}

// statusOf maps an error to its HTTP status.
func statusOf(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case cerrors.IsValidation(err):
		return http.StatusBadRequest
	case cerrors.IsInvariant(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
