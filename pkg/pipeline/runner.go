package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/copybook/pkg/cache"
	errs "github.com/matzehuels/copybook/pkg/errors"
	"github.com/matzehuels/copybook/pkg/grid"
	"github.com/matzehuels/copybook/pkg/observability"
	"github.com/matzehuels/copybook/pkg/poetry"
	"github.com/matzehuels/copybook/pkg/render"
	"github.com/matzehuels/copybook/pkg/strokes"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for its collaborators; it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Strokes *strokes.Cache
	Poems   poetry.Library
	Logger  *log.Logger
}

// NewRunner creates a runner.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
// If sc is nil, layouts see no stroke counts.
// If poems is nil, the built-in library is used.
func NewRunner(c cache.Cache, keyer cache.Keyer, sc *strokes.Cache, poems poetry.Library, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if poems == nil {
		poems = poetry.Builtin()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Strokes: sc,
		Poems:   poems,
		Logger:  logger,
	}
}

// Execute runs the complete resolve → strokes → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Resolve
	input, poem, err := r.Resolve(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Input = input
	result.Poem = poem

	// Stage 2: Strokes
	strokeStart := time.Now()
	counts, err := r.Counts(ctx, input, opts)
	result.Stats.StrokeTime = time.Since(strokeStart)
	if opts.NeedsStrokes() {
		observability.Pipeline().OnStrokesComplete(ctx, grid.CharacterCount(input), len(counts), result.Stats.StrokeTime, err)
	}
	if err != nil {
		return nil, fmt.Errorf("strokes: %w", err)
	}
	result.Counts = counts

	// Stage 3: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, string(opts.Template.LayoutType), grid.CharacterCount(input))
	doc, layoutHit, err := r.LayoutWithCacheInfo(ctx, input, counts, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	if doc.Kind != nil {
		result.Kind = *doc.Kind
	}
	observability.Pipeline().OnLayoutComplete(ctx, result.Kind.String(), doc.Grid.Rows(), result.Stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Grid = doc.Grid
	result.Stats.Rows = doc.Grid.Rows()
	result.Stats.Columns = doc.Column
	result.Stats.Characters = doc.Grid.Count(grid.CellCharacter)
	result.Stats.Hints = doc.Grid.Count(grid.CellHint)
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("computed grid",
		"kind", result.Kind,
		"rows", result.Stats.Rows,
		"hints", result.Stats.Hints,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 4: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, hash, renderHit, err := r.RenderWithCacheInfo(ctx, doc, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.GridHash = hash
	result.CacheInfo.RenderHit = renderHit

	logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Resolve returns the text to lay out. For a poem id it loads the poem; the
// poetry layout receives the poem as JSON and other layouts its verses.
func (r *Runner) Resolve(ctx context.Context, opts Options) (string, *poetry.Item, error) {
	r.applyLogger(&opts)
	if opts.PoemID == "" {
		if opts.Template.LayoutType == grid.LayoutPoetry {
			if _, ok := grid.ParsePoem(opts.Text); !ok {
				opts.Logger.Debug("input is not a poem document, splitting on punctuation")
			}
		}
		return opts.Text, nil, nil
	}

	item, err := r.Poems.Get(ctx, opts.PoemID)
	if errors.Is(err, poetry.ErrNotFound) {
		return "", nil, errs.Wrap(errs.ErrCodePoemNotFound, err, "poem %s not found", opts.PoemID)
	}
	if err != nil {
		return "", nil, fmt.Errorf("load poem %s: %w", opts.PoemID, err)
	}
	opts.Logger.Debug("loaded poem", "id", item.ID, "title", item.Title)

	if opts.Template.LayoutType != grid.LayoutPoetry {
		return item.Text(), &item, nil
	}
	data, err := json.Marshal(item)
	if err != nil {
		return "", nil, fmt.Errorf("encode poem %s: %w", opts.PoemID, err)
	}
	return string(data), &item, nil
}

// Counts populates stroke counts for input when the layout needs them.
// It returns nil otherwise.
func (r *Runner) Counts(ctx context.Context, input string, opts Options) (strokes.Counts, error) {
	if r.Strokes == nil || !opts.NeedsStrokes() {
		return nil, nil
	}
	return r.Strokes.Populate(ctx, input)
}

// LayoutWithCacheInfo lays out input with caching and returns cache hit info.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, input string, counts strokes.Counts, opts Options) (render.Document, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return render.Document{}, false, err
	}

	cacheKey := r.Keyer.GridKey(input, opts.GridKeyOpts(input, counts))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if doc, err := render.UnmarshalDocument(data); err == nil {
				observability.Cache().OnCacheHit(ctx, observability.KeyGrid)
				return doc, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, observability.KeyGrid)
	}

	g, kind, err := Layout(input, opts.Template, counts)
	if err != nil {
		return render.Document{}, false, err
	}
	doc := render.NewDocument(g, render.WithKind(kind), render.WithTemplate(opts.Template))

	if data, err := json.Marshal(doc); err == nil {
		if r.Cache.Set(ctx, cacheKey, data, cache.TTLGrid) == nil {
			observability.Cache().OnCacheSet(ctx, observability.KeyGrid, len(data))
		}
	}
	return doc, false, nil
}

// Layout lays out input without caching. Misuse the layout engine reports
// by panicking is returned as an INVALID_ARGUMENT error.
func Layout(input string, cfg grid.TemplateConfig, counts strokes.Counts) (g grid.Grid, kind grid.Kind, err error) {
	defer errs.Recover(&err)

	var lookup grid.StrokeLookup
	if counts != nil {
		lookup = counts
	}
	kind = grid.GetStrategy(cfg, lookup).Kind()
	g = grid.FormatGridData(input, cfg, lookup)
	return g, kind, nil
}

// RenderWithCacheInfo renders every requested format with caching. It
// returns the artifacts, the grid hash they are keyed by, and whether all
// of them came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc render.Document, opts Options) (map[string][]byte, string, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, "", false, err
	}

	docData, err := json.Marshal(doc)
	if err != nil {
		return nil, "", false, fmt.Errorf("serialize grid for cache key: %w", err)
	}
	hash := cache.Hash(docData)

	renderOpts := []render.Option{render.WithTemplate(opts.Template)}
	if doc.Kind != nil {
		renderOpts = append(renderOpts, render.WithKind(*doc.Kind))
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, observability.KeyArtifact)
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, observability.KeyArtifact)
		}
		allCached = false

		data, err := render.Render(format, doc.Grid, renderOpts...)
		if err != nil {
			return nil, "", false, err
		}
		artifacts[format] = data
		if r.Cache.Set(ctx, key, data, cache.TTLArtifact) == nil {
			observability.Cache().OnCacheSet(ctx, observability.KeyArtifact, len(data))
		}
	}
	return artifacts, hash, allCached, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
