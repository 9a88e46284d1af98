package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jsoncanvas/pkg/canvas"
	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
	"github.com/matzehuels/jsoncanvas/pkg/geometry"
)

// addOptions holds the flags of the add command.
type addOptions struct {
	id      string
	kind    string
	text    string
	file    string
	subpath string
	url     string
	label   string
	color   string
	width   int
	height  int
	x, y    int
	group   string
	output  string
}

// addCommand creates the add command.
func (c *CLI) addCommand() *cobra.Command {
	opts := addOptions{kind: canvas.KindText.String()}

	cmd := &cobra.Command{
		Use:   "add [file.canvas]",
		Short: "Add a node to a canvas",
		Long: `Add a node to a canvas.

Without --x and --y the node is placed in free space, inside --group when one
is given. With a position the node stays where it is put: it joins the
innermost group enclosing it, and nodes it covers are moved out of its way.
A zero width or height takes the configured default size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			positioned := cmd.Flags().Changed("x") || cmd.Flags().Changed("y")
			return c.runAdd(args[0], opts, positioned)
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "node id (default: generated)")
	cmd.Flags().StringVarP(&opts.kind, "type", "t", opts.kind, "node type: text, file, link, group")
	cmd.Flags().StringVar(&opts.text, "text", "", "markdown text (text nodes)")
	cmd.Flags().StringVar(&opts.file, "file", "", "vault-relative file path (file nodes)")
	cmd.Flags().StringVar(&opts.subpath, "subpath", "", "heading or block subpath (file nodes)")
	cmd.Flags().StringVar(&opts.url, "url", "", "URL (link nodes)")
	cmd.Flags().StringVar(&opts.label, "label", "", "label (group nodes)")
	cmd.Flags().StringVar(&opts.color, "color", "", "preset 1-6 or hex color")
	cmd.Flags().IntVar(&opts.width, "width", 0, "width (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "height (default from config)")
	cmd.Flags().IntVar(&opts.x, "x", 0, "left edge")
	cmd.Flags().IntVar(&opts.y, "y", 0, "top edge")
	cmd.Flags().StringVarP(&opts.group, "group", "g", "", "place inside this group")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

func (c *CLI) runAdd(input string, opts addOptions, positioned bool) error {
	doc, err := c.loadCanvas(input)
	if err != nil {
		return err
	}
	if _, exists := doc.Node(opts.id); exists && opts.id != "" {
		printWarning("Node %s already exists, canvas unchanged", opts.id)
		return nil
	}

	if positioned {
		cfg := doc.Config()
		if opts.width == 0 {
			opts.width = cfg.DefaultWidth
		}
		if opts.height == 0 {
			opts.height = cfg.DefaultHeight
		}
	}
	n, err := newNodeFromFlags(opts)
	if err != nil {
		return err
	}

	var node *canvas.Node
	switch {
	case positioned && opts.group != "":
		node, err = doc.AddOrGetNodeInGroup(opts.group, n)
	case positioned:
		node, err = doc.AddOrGetNode(n)
	case opts.group != "":
		node, err = doc.PlaceNodeInGroup(opts.group, n)
	default:
		node, err = doc.PlaceNode(n)
	}
	if err != nil {
		return fmt.Errorf("add node: %w", err)
	}

	path, err := saveCanvas(doc, input, opts.output)
	if err != nil {
		return err
	}

	printSuccess("Added %s", formatNode(node))
	if p, ok := doc.Parent(node.ID); ok {
		printDetail("Inside group %s", p.ID)
	}
	printFile(path)
	printStats(statsOf(doc), cacheUnused)
	return nil
}

// newNodeFromFlags builds the node described by the add flags.
func newNodeFromFlags(opts addOptions) (canvas.Node, error) {
	kind, err := canvas.ParseKind(opts.kind)
	if err != nil {
		return canvas.Node{}, err
	}
	bounds := geometry.R(opts.x, opts.y, opts.width, opts.height)

	var n canvas.Node
	switch kind {
	case canvas.KindText:
		n = canvas.NewText(opts.id, bounds, opts.text)
	case canvas.KindFile:
		if opts.file == "" {
			return n, cerrors.New(cerrors.ErrCodeInvalidInput, "file nodes need --file")
		}
		n = canvas.NewFile(opts.id, bounds, opts.file, opts.subpath)
	case canvas.KindLink:
		if opts.url == "" {
			return n, cerrors.New(cerrors.ErrCodeInvalidInput, "link nodes need --url")
		}
		n = canvas.NewLink(opts.id, bounds, opts.url)
	case canvas.KindGroup:
		n = canvas.NewGroup(opts.id, bounds, opts.label)
	}
	n.Color = opts.color
	return n, nil
}

// connectCommand creates the connect command.
func (c *CLI) connectCommand() *cobra.Command {
	var (
		id     string
		label  string
		color  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "connect [file.canvas] [from] [to]",
		Short: "Connect two nodes with an auto-routed edge",
		Long: `Connect two nodes with an auto-routed edge.

The edge leaves and enters at the closest pair of visible sides, skipping
sides the source already uses for outgoing edges and sides the destination
already uses for incoming edges. The edge ends in an arrow.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadCanvas(args[0])
			if err != nil {
				return err
			}
			e, err := doc.Connect(args[1], args[2], canvas.ConnectOptions{ID: id, Label: label, Color: color})
			if err != nil {
				return fmt.Errorf("connect %s to %s: %w", args[1], args[2], err)
			}

			path, err := saveCanvas(doc, args[0], output)
			if err != nil {
				return err
			}
			printSuccess("Connected %s", formatRoute(e.FromNode, e.FromSide, e.ToNode, e.ToSide))
			printDetail("Edge %s", e.ID)
			printFile(path)
			printStats(statsOf(doc), cacheUnused)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "edge id (default: generated)")
	cmd.Flags().StringVar(&label, "label", "", "edge label")
	cmd.Flags().StringVar(&color, "color", "", "preset 1-6 or hex color")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

// removeCommand creates the remove command.
func (c *CLI) removeCommand() *cobra.Command {
	var (
		output string
		edge   bool
	)

	cmd := &cobra.Command{
		Use:   "remove [file.canvas] [id]",
		Short: "Remove a node or edge from a canvas",
		Long: `Remove a node or edge from a canvas.

Removing a node also removes every edge touching it. The children of a
removed group are handed to the group's own parent.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadCanvas(args[0])
			if err != nil {
				return err
			}

			what := "node"
			var removed bool
			if edge {
				what = "edge"
				removed = doc.RemoveEdge(args[1])
			} else {
				removed = doc.RemoveNode(args[1])
			}
			if !removed {
				return cerrors.Wrap(cerrors.ErrCodeNotFound, canvas.ErrUnknownNode, "%s %s", what, args[1])
			}

			path, err := saveCanvas(doc, args[0], output)
			if err != nil {
				return err
			}
			printSuccess("Removed %s %s", what, args[1])
			printFile(path)
			printStats(statsOf(doc), cacheUnused)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&edge, "edge", "e", false, "remove an edge instead of a node")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}
