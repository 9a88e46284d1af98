package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file.canvas]",
		Short: "Check a JSON Canvas document",
		Long: `Check a JSON Canvas document.

Loading fails on duplicate node or edge ids, edges whose endpoints do not
exist, unknown node types and malformed file paths or URLs. The derived group
hierarchy is then checked: every child lies inside its group and is drawn
above it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(cmd.Context()), "validate", args[0])

			doc, err := c.loadCanvas(args[0])
			if err != nil {
				printError("Invalid canvas")
				return err
			}
			if err := doc.Validate(); err != nil {
				printError("Invalid canvas")
				return fmt.Errorf("validate %s: %w", args[0], err)
			}
			stats := statsOf(doc)
			prog.done(stats)

			printSuccess("Canvas is valid")
			printFile(args[0])
			printKeyValue("nodes", strconv.Itoa(stats.Nodes))
			printKeyValue("groups", strconv.Itoa(stats.Groups))
			printKeyValue("edges", strconv.Itoa(stats.Edges))
			if b, ok := doc.Boundary(); ok {
				printKeyValue("boundary", b.String())
			}
			return nil
		},
	}
}
