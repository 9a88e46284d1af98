package cache

import (
	"context"
	"time"

	"github.com/matzehuels/jsoncanvas/pkg/observability"
)

const layoutKeyType = "layout"

// Layouts is the layout result store used by the CLI and the server. It
// reports hits, misses and writes to the observability cache hooks.
type Layouts struct {
	cache Cache
	keyer Keyer
	ttl   time.Duration
}

// NewLayouts wraps c. A nil keyer means the default keyer.
func NewLayouts(c Cache, keyer Keyer, ttl time.Duration) *Layouts {
	if keyer == nil {
		keyer = NewDefaultKeyer()
	}
	return &Layouts{cache: c, keyer: keyer, ttl: ttl}
}

// Get returns a cached layout for the input document bytes.
func (l *Layouts) Get(ctx context.Context, input []byte, opts LayoutKeyOpts) ([]byte, bool, error) {
	data, hit, err := l.cache.Get(ctx, l.key(input, opts))
	if err != nil {
		return nil, false, err
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, layoutKeyType)
	} else {
		observability.Cache().OnCacheMiss(ctx, layoutKeyType)
	}
	return data, hit, nil
}

// Put stores the layout produced for the input document bytes.
func (l *Layouts) Put(ctx context.Context, input []byte, opts LayoutKeyOpts, output []byte) error {
	if err := l.cache.Set(ctx, l.key(input, opts), output, l.ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, layoutKeyType, len(output))
	return nil
}

func (l *Layouts) key(input []byte, opts LayoutKeyOpts) string {
	return l.keyer.LayoutKey(Hash(input), opts)
}
