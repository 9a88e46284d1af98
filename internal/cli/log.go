// Package cli implements the jsoncanvas command-line interface.
//
// Each command loads a JSON Canvas file, applies one engine operation and
// writes the document back (or to --output). The CLI is built using cobra
// and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - validate: Check ids, edge endpoints and the group hierarchy
//   - add, connect, remove: Edit a document through the layout engine
//   - route, query: Inspect a document without changing it
//   - layout: Re-run containment over a whole document, with caching
//   - serve: Expose the engine over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports every placement, reparent, resize and edge route. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/jsoncanvas/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Debug output from the layout engine
// shares it, so every line carries a centisecond timestamp to order
// placement events.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one operation on a canvas file.
type progress struct {
	logger *log.Logger
	op     string
	path   string
	start  time.Time
}

// newProgress starts timing op (for example "validate" or "layout") on the
// document at path.
func newProgress(l *log.Logger, op, path string) *progress {
	l.Debug(op+" started", "file", path)
	return &progress{logger: l, op: op, path: path, start: time.Now()}
}

// done logs the finished operation with the document's counts, e.g.
//
//	14:32:01.45 INFO layout file=board.canvas nodes=12 groups=2 edges=9 elapsed=4ms
func (p *progress) done(s canvasStats) {
	p.logger.Info(p.op,
		"file", p.path,
		"nodes", s.Nodes,
		"groups", s.Groups,
		"edges", s.Edges,
		"elapsed", time.Since(p.start).Round(time.Millisecond),
	)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches the command logger to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the command logger, or log.Default() when a
// command runs outside the root pre-run (as in unit tests).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
