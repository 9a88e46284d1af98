package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/jsoncanvas/pkg/geometry"
)

// logHooks writes observability events to the CLI logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnNodeAdded(id, kind string, bounds geometry.Rect) {
	h.logger.Debug("node added", "id", id, "type", kind, "bounds", bounds)
}

func (h *logHooks) OnNodeRemoved(id string) {
	h.logger.Debug("node removed", "id", id)
}

func (h *logHooks) OnNodeRelocated(id string, from, to geometry.Rect) {
	h.logger.Debug("node relocated", "id", id, "from", from, "to", to)
}

func (h *logHooks) OnReparent(id, oldParent, newParent string) {
	h.logger.Debug("node reparented", "id", id, "from", oldParent, "to", newParent)
}

func (h *logHooks) OnGroupResized(id string, from, to geometry.Rect) {
	h.logger.Debug("group resized", "id", id, "from", from, "to", to)
}

func (h *logHooks) OnEdgeRouted(edgeID string, fromSide, toSide geometry.Side) {
	h.logger.Debug("edge routed", "id", edgeID, "fromSide", fromSide, "toSide", toSide)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
