package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/copybook/pkg/cache"
	"github.com/matzehuels/copybook/pkg/config"
	"github.com/matzehuels/copybook/pkg/pipeline"
	"github.com/matzehuels/copybook/pkg/strokes"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "copybook"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string // --config; empty uses config.DefaultPath
	trace      bool   // --trace
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the configuration file selected by --config.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	c.Logger.Debug("loaded config", "path", c.configPath, "cache", cfg.Cache.Backend)
	return cfg, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// runnerOpts controls how a runner is assembled for one command.
type runnerOpts struct {
	noCache bool // use a NullCache for layouts, renderings and strokes
	refresh bool // refetch stroke data
}

// newRunner assembles a pipeline runner from the configuration: the cache
// backend, the stroke-data client and the poem library. The returned close
// function releases all of them.
func (c *CLI) newRunner(ctx context.Context, cfg config.Config, ro runnerOpts) (*pipeline.Runner, func() error, error) {
	backend, err := newCache(ctx, cfg, ro.noCache)
	if err != nil {
		return nil, nil, err
	}

	poems, closePoems, err := cfg.Poetry.Open(ctx)
	if err != nil {
		_ = backend.Close()
		return nil, nil, err
	}

	sc := strokes.New(strokes.Options{
		Store:       backend,
		Fetcher:     cfg.Strokes.Client(backend, cfg.Cache.TTL),
		Concurrency: cfg.Strokes.Concurrency,
		Refresh:     ro.refresh,
		Logger:      c.Logger,
	})

	runner := pipeline.NewRunner(backend, nil, sc, poems, c.Logger)
	closeFn := func() error {
		return errors.Join(runner.Close(), closePoems(context.Background()))
	}
	return runner, closeFn, nil
}

func newCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	return cfg.Cache.Open(ctx)
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultFormat}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
