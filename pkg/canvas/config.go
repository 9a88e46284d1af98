package canvas

import (
	"io"

	"github.com/charmbracelet/log"

	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
)

// Layout defaults used by [DefaultConfig].
const (
	DefaultMargin     = 10
	DefaultNodeWidth  = 250
	DefaultNodeHeight = 60
)

// Config holds the layout parameters of a canvas.
type Config struct {
	// Margin is the spacing kept between placed nodes and between a group's
	// border and its children. Must be positive.
	Margin int
	// DefaultWidth and DefaultHeight size nodes created from a bare id.
	DefaultWidth  int
	DefaultHeight int
	// Logger receives debug output from the layout engine. Nil discards.
	Logger *log.Logger
}

// DefaultConfig returns the standard layout parameters.
func DefaultConfig() Config {
	return Config{
		Margin:        DefaultMargin,
		DefaultWidth:  DefaultNodeWidth,
		DefaultHeight: DefaultNodeHeight,
	}
}

// Validate reports an INVALID_CONFIG error for non-positive values.
func (c Config) Validate() error {
	if c.Margin <= 0 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "margin must be positive, got %d", c.Margin)
	}
	if c.DefaultWidth <= 0 || c.DefaultHeight <= 0 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig,
			"default node size must be positive, got %dx%d", c.DefaultWidth, c.DefaultHeight)
	}
	return nil
}

// withDefaults replaces unset or invalid values with the defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Margin <= 0 {
		c.Margin = d.Margin
	}
	if c.DefaultWidth <= 0 {
		c.DefaultWidth = d.DefaultWidth
	}
	if c.DefaultHeight <= 0 {
		c.DefaultHeight = d.DefaultHeight
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return c
}
