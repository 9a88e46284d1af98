package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jsoncanvas/pkg/cache"
	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
	cio "github.com/matzehuels/jsoncanvas/pkg/io"
)

const relayoutOperation = "relayout"

// layoutCommand creates the layout command for re-running containment over
// a whole document.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "layout [file.canvas]",
		Short: "Re-run the layout engine over a whole canvas",
		Long: `Re-run the layout engine over a whole canvas.

Every node is inserted again in document order, as if the canvas had been
built one node at a time: nodes covered by a later node are moved out of its
way, groups adopt the nodes they enclose and grow when needed, and z order is
re-derived from the group hierarchy. Use it to clean up documents written by
other tools.

Results are cached, keyed by the input bytes and the layout parameters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runLayout loads the canvas, lays it out (or fetches the cached result),
// and writes output.
func (c *CLI) runLayout(ctx context.Context, input, output string, noCache bool) error {
	prog := newProgress(loggerFromContext(ctx), relayoutOperation, input)

	data, err := os.ReadFile(input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cerrors.Wrap(cerrors.ErrCodeFileNotFound, err, "open %s", input)
		}
		return fmt.Errorf("read %s: %w", input, err)
	}

	layouts, backend, err := c.newLayouts(ctx, noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer backend.Close()

	cfg := c.canvasConfig()
	opts := cache.LayoutKeyOpts{
		Operation:     relayoutOperation,
		Margin:        cfg.Margin,
		DefaultWidth:  cfg.DefaultWidth,
		DefaultHeight: cfg.DefaultHeight,
	}

	result, hit, err := layouts.Get(ctx, data, opts)
	if err != nil {
		c.Logger.Warn("cache read failed", "error", err)
		hit = false
	}
	var stats canvasStats
	if !hit {
		doc, err := cio.ReadJSON(bytes.NewReader(data), cfg)
		if err != nil {
			return fmt.Errorf("load canvas %s: %w", input, err)
		}
		if err := doc.Relayout(); err != nil {
			return fmt.Errorf("layout %s: %w", input, err)
		}
		var buf bytes.Buffer
		if err := cio.WriteJSON(doc, &buf); err != nil {
			return err
		}
		result = buf.Bytes()
		stats = statsOf(doc)
		if err := layouts.Put(ctx, data, opts, result); err != nil {
			c.Logger.Warn("cache write failed", "error", err)
		}
	} else if doc, err := cio.ReadJSON(bytes.NewReader(result), cfg); err == nil {
		stats = statsOf(doc)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = input
	}
	if err := os.WriteFile(outputPath, result, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	prog.done(stats)

	state := cacheFresh
	if hit {
		state = cacheHit
	}
	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(stats, state)
	printNextStep("Check", appName+" validate "+outputPath)

	return nil
}
