// Package pipeline provides the copybook sheet pipeline.
//
// This package implements the complete resolve → strokes → layout → render
// pipeline used by both the CLI and the HTTP API. Centralizing it keeps
// caching, validation and logging identical across entry points.
//
// # Architecture
//
// A run has four stages:
//
//  1. Resolve: take the input text, or load a poem from the library
//  2. Strokes: populate stroke counts when the layout draws stroke hints
//  3. Layout: lay the characters out on the grid (pkg/grid)
//  4. Render: produce the requested formats (pkg/render)
//
// Layouts and renderings are cached; stroke counts are cached by the
// strokes.Cache itself.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, strokeCache, poetry.Builtin(), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Text:     "永和九年",
//	    Template: grid.TemplateConfig{Column: 8, ShowStrokeOrderShadow: true, StrokeNumber: 3},
//	    Formats:  []string{"json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc := result.Artifacts["json"]
package pipeline

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/copybook/pkg/cache"
	errs "github.com/matzehuels/copybook/pkg/errors"
	"github.com/matzehuels/copybook/pkg/grid"
	"github.com/matzehuels/copybook/pkg/poetry"
	"github.com/matzehuels/copybook/pkg/render"
	"github.com/matzehuels/copybook/pkg/strokes"
)

// DefaultFormat is rendered when Options.Formats is empty.
const DefaultFormat = render.FormatJSON

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input: exactly one of Text and PoemID.
	Text   string `json:"text,omitempty"`
	PoemID string `json:"poem_id,omitempty"`

	Template grid.TemplateConfig `json:"template"`
	Formats  []string            `json:"formats,omitempty"`
	Refresh  bool                `json:"refresh,omitempty"` // Bypass cached layouts and renderings

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Input is the text that was laid out. For a poem in the poetry layout
	// it is the poem's JSON encoding.
	Input string

	// Poem is the library poem used, if any.
	Poem *poetry.Item

	// Grid is the laid-out sheet; nil when there is nothing to render.
	Grid grid.Grid

	// Kind is the strategy that produced Grid.
	Kind grid.Kind

	// Counts are the stroke counts the layout saw.
	Counts strokes.Counts

	// GridHash is the content hash of the grid document.
	GridHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows       int
	Columns    int
	Characters int
	Hints      int
	StrokeTime time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the grid came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateAndSetDefaults checks the options and applies defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	o.Template.SetDefaults()
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Template.LayoutType == grid.LayoutPoetry && strings.HasPrefix(o.Text, "{") {
		var buf bytes.Buffer
		if json.Compact(&buf, []byte(o.Text)) == nil {
			o.Text = buf.String()
		}
	}
}

// Validate checks the options without modifying them.
func (o *Options) Validate() error {
	switch {
	case o.Text == "" && o.PoemID == "":
		return errs.New(errs.ErrCodeInvalidInput, "text or poem_id is required")
	case o.Text != "" && o.PoemID != "":
		return errs.New(errs.ErrCodeInvalidInput, "text and poem_id are mutually exclusive")
	case o.PoemID != "":
		if err := errs.ValidatePoemID(o.PoemID); err != nil {
			return err
		}
	default:
		if err := errs.ValidateText(o.Text); err != nil {
			return err
		}
	}
	if err := o.Template.Validate(); err != nil {
		return err
	}
	return render.ValidateFormats(o.Formats)
}

// NeedsStrokes reports whether the layout reads stroke counts.
func (o *Options) NeedsStrokes() bool {
	switch o.Template.LayoutType {
	case grid.LayoutPractice:
		return true
	case grid.LayoutPoetry:
		return false
	default:
		return o.Template.WantsStrokeHints()
	}
}

// GridKeyOpts returns cache key options for the layout. Only the counts of
// characters that occur in input take part.
func (o *Options) GridKeyOpts(input string, counts strokes.Counts) cache.GridKeyOpts {
	opts := cache.GridKeyOpts{
		Layout:       string(o.Template.LayoutType),
		Column:       o.Template.Column,
		WordsPerRow:  o.Template.WordsPerRow,
		WordsPerCol:  o.Template.WordsPerCol,
		RowsPerChar:  o.Template.RowsPerChar,
		Hints:        o.Template.ShowStrokeOrderShadow,
		StrokeNumber: o.Template.StrokeNumber,
	}
	if len(counts) == 0 {
		return opts
	}
	opts.StrokeCounts = make(map[string]int)
	for _, ch := range grid.SplitCharacters(input) {
		if n, ok := counts[ch]; ok {
			opts.StrokeCounts[ch] = n
		}
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format}
}
