package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jsoncanvas/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout engine over HTTP",
		Long: `Serve the layout engine over HTTP.

Routes:
  GET  /healthz     liveness probe
  POST /v1/layout   add nodes and connect edges on a canvas
  POST /v1/route    choose edge sides for two rectangles

Layout results are cached in Redis when cache.redis_url is configured, and in
the local cache directory otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.config()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			layouts, backend, err := c.newLayouts(ctx, noCache)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer backend.Close()

			srv := server.New(c.canvasConfig(), layouts, c.Logger)
			printInfo("Serving on %s", styleAddr.Render(addr))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
