package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/jsoncanvas/pkg/canvas"
	"github.com/matzehuels/jsoncanvas/pkg/geometry"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // groups, addresses
	colorGreen  = lipgloss.Color("35")  // success, cache hits
	colorYellow = lipgloss.Color("220") // warnings
	colorRed    = lipgloss.Color("167") // errors
	colorBlue   = lipgloss.Color("75")  // sides, commands
	colorWhite  = lipgloss.Color("255") // ids, values
	colorGray   = lipgloss.Color("245") // labels
	colorDim    = lipgloss.Color("240") // geometry, paths
)

var (
	styleOK      = lipgloss.NewStyle().Foreground(colorGreen)
	styleFail    = lipgloss.NewStyle().Foreground(colorRed)
	styleWarn    = lipgloss.NewStyle().Foreground(colorYellow)
	styleNote    = lipgloss.NewStyle().Foreground(colorGray)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleID      = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleGroup   = lipgloss.NewStyle().Foreground(colorCyan)
	styleSide    = lipgloss.NewStyle().Foreground(colorBlue)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleAddr    = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(keyWidth)
)

// keyWidth fits the longest key printed by validate and route ("boundary").
const keyWidth = 10

const (
	markOK   = "✓"
	markFail = "✗"
	markWarn = "!"
	markNote = "›"
	arrow    = "→"
	dot      = " · "
)

// =============================================================================
// Status lines
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleOK.Render(markOK) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleFail.Render(markFail) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleWarn.Render(markWarn) + " " + styleWarn.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleNote.Render(markNote) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + styleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the document a command wrote to.
func printFile(path string) {
	fmt.Println("  " + styleDim.Render(arrow) + " " + styleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + styleValue.Render(value))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println()
	fmt.Println(styleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Canvas output
// =============================================================================

// canvasStats counts what a document holds. Groups are counted among the
// nodes as well.
type canvasStats struct {
	Nodes  int
	Groups int
	Edges  int
}

func statsOf(doc *canvas.Canvas) canvasStats {
	s := canvasStats{Nodes: doc.NodeCount(), Edges: doc.EdgeCount()}
	for _, n := range doc.Nodes() {
		if n.IsGroup() {
			s.Groups++
		}
	}
	return s
}

// cacheState tells printStats whether the layout cache was involved.
type cacheState int

const (
	cacheUnused cacheState = iota
	cacheFresh
	cacheHit
)

// formatStats renders "3 nodes · 1 group · 2 edges", followed by the cache
// state when a cache was consulted.
func formatStats(s canvasStats, state cacheState) string {
	parts := []string{plural(s.Nodes, "node")}
	if s.Groups > 0 {
		parts = append(parts, plural(s.Groups, "group"))
	}
	parts = append(parts, plural(s.Edges, "edge"))
	for i, p := range parts {
		parts[i] = styleDim.Render(p)
	}
	switch state {
	case cacheHit:
		parts = append(parts, styleOK.Render("cached"))
	case cacheFresh:
		parts = append(parts, styleNote.Render("fresh"))
	}
	return "  " + strings.Join(parts, styleDim.Render(dot))
}

func printStats(s canvasStats, state cacheState) {
	fmt.Println(formatStats(s, state))
}

// formatNode renders a node for listings: id, kind, bounds and z, followed by
// its label, first text line, file or URL.
func formatNode(n *canvas.Node) string {
	kind := styleDim.Render(n.Kind.String())
	if n.IsGroup() {
		kind = styleGroup.Render(n.Kind.String())
	}
	s := styleID.Render(n.ID) + " " + kind + " " + styleDim.Render(fmt.Sprintf("%v z=%d", n.Bounds, n.Z))
	switch {
	case n.Label != "":
		s += " " + styleValue.Render(fmt.Sprintf("%q", n.Label))
	case n.Text != "":
		s += " " + styleValue.Render(fmt.Sprintf("%q", firstLine(n.Text)))
	case n.File != "":
		s += " " + styleValue.Render(n.File)
	case n.URL != "":
		s += " " + styleValue.Render(n.URL)
	}
	return s
}

// formatRoute renders an edge anchor pair as "a/right → b/left".
func formatRoute(from string, fromSide geometry.Side, to string, toSide geometry.Side) string {
	end := func(id string, side geometry.Side) string {
		return styleID.Render(id) + styleDim.Render("/") + styleSide.Render(side.String())
	}
	return end(from, fromSide) + " " + styleDim.Render(arrow) + " " + end(to, toSide)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
