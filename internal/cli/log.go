// Package cli implements the copybook command-line interface.
//
// This package provides commands for laying out practice sheets, browsing
// the poetry library, looking up stroke counts, serving the HTTP API, and
// managing the cache. The CLI is built using cobra and logs through the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - grid: Lay out a sheet from text or a poem and write JSON or a text preview
//   - poem: List, show, pick, or seed library poems
//   - strokes: Look up stroke counts
//   - serve: Run the HTTP API
//   - cache: Clear the cache or print its location
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, and --trace
// to log pipeline, cache, and HTTP events. Loggers are passed through
// context.Context.
//
// # Example
//
//	import "github.com/matzehuels/copybook/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
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

// newLogger returns a logger writing to w at level, stamped "15:04:05.00".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long a command step took, e.g.
// "Laid out 20 characters as full-row-words (1.234s)".
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default when ctx carries no logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
