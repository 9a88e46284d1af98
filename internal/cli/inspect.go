package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jsoncanvas/pkg/canvas"
	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
)

// routeCommand creates the route command.
func (c *CLI) routeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "route [file.canvas] [from] [to]",
		Short: "Show the sides a new edge between two nodes would use",
		Long: `Show the sides a new edge between two nodes would use.

This runs the same side selection as 'connect' without changing the file.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadCanvas(args[0])
			if err != nil {
				return err
			}
			from, to, err := doc.RouteSides(args[1], args[2])
			if err != nil {
				return fmt.Errorf("route %s to %s: %w", args[1], args[2], err)
			}
			printInfo("%s", formatRoute(args[1], from, args[2], to))
			printKeyValue("fromSide", from.String())
			printKeyValue("toSide", to.String())
			return nil
		},
	}
}

// queryOptions holds the flags of the query command.
type queryOptions struct {
	at           string
	overlapping  string
	containedBy  string
	containing   string
	ignoreGroups bool
}

// queryCommand creates the query command.
func (c *CLI) queryCommand() *cobra.Command {
	var opts queryOptions

	cmd := &cobra.Command{
		Use:   "query [file.canvas]",
		Short: "Find nodes by position",
		Long: `Find nodes by position.

Exactly one of the selectors must be given:
  --at X,Y                   the topmost node under a point
  --overlapping X,Y,W,H      nodes overlapping a rectangle
  --contained-by X,Y,W,H     nodes entirely inside a rectangle
  --containing X,Y,W,H       nodes entirely enclosing a rectangle

Borders count: a node touching a rectangle overlaps it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadCanvas(args[0])
			if err != nil {
				return err
			}
			nodes, err := runQuery(doc, opts)
			if err != nil {
				return err
			}
			if len(nodes) == 0 {
				printInfo("No matching nodes")
				return nil
			}
			for _, n := range nodes {
				printInfo("%s", formatNode(n))
				if p, ok := doc.Parent(n.ID); ok {
					printDetail("in %s", p.ID)
				}
			}
			printDetail("%s matched", plural(len(nodes), "node"))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.at, "at", "", "point X,Y")
	cmd.Flags().StringVar(&opts.overlapping, "overlapping", "", "rectangle X,Y,W,H")
	cmd.Flags().StringVar(&opts.containedBy, "contained-by", "", "rectangle X,Y,W,H")
	cmd.Flags().StringVar(&opts.containing, "containing", "", "rectangle X,Y,W,H")
	cmd.Flags().BoolVar(&opts.ignoreGroups, "ignore-groups", false, "skip group nodes (--at, --overlapping)")
	cmd.MarkFlagsMutuallyExclusive("at", "overlapping", "contained-by", "containing")
	cmd.MarkFlagsOneRequired("at", "overlapping", "contained-by", "containing")

	return cmd
}

// errNoSelector is returned when the query flags select nothing.
var errNoSelector = errors.New("no query selector")

func runQuery(doc *canvas.Canvas, opts queryOptions) ([]*canvas.Node, error) {
	switch {
	case opts.at != "":
		p, err := parsePoint(opts.at)
		if err != nil {
			return nil, err
		}
		if n, ok := doc.NodeAt(p, opts.ignoreGroups); ok {
			return []*canvas.Node{n}, nil
		}
		return nil, nil
	case opts.overlapping != "":
		r, err := parseRect(opts.overlapping)
		if err != nil {
			return nil, err
		}
		return doc.NodesOverlapping(r, opts.ignoreGroups), nil
	case opts.containedBy != "":
		r, err := parseRect(opts.containedBy)
		if err != nil {
			return nil, err
		}
		return doc.NodesContainedBy(r), nil
	case opts.containing != "":
		r, err := parseRect(opts.containing)
		if err != nil {
			return nil, err
		}
		return doc.NodesContaining(r), nil
	}
	return nil, cerrors.Wrap(cerrors.ErrCodeInvalidInput, errNoSelector, "use --at, --overlapping, --contained-by or --containing")
}
