// Package cache provides the byte-oriented caches used by copybook.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [MemoryCache]: process-local map with expiry (tests, single server)
//   - [RedisCache]: shared cache for the HTTP API
//   - [NullCache]: stores nothing (--no-cache)
//
// # Keys
//
// Keys are produced by a [Keyer] so every component hashes its inputs the
// same way. [ScopedKeyer] prefixes all keys, which isolates tenants that
// share one backend.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque values by key.
//
// Get reports a miss with ok=false and a nil error. Set with a zero ttl
// stores the value without expiry.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
// It returns the number of entries removed.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Entry lifetimes.
const (
	// TTLStrokes is the lifetime of a character's stroke count. Stroke data
	// is versioned upstream and effectively immutable.
	TTLStrokes = 30 * 24 * time.Hour

	// TTLGrid is the lifetime of a computed layout.
	TTLGrid = 7 * 24 * time.Hour

	// TTLArtifact is the lifetime of a rendered grid.
	TTLArtifact = 7 * 24 * time.Hour

	// TTLSheet is the lifetime of a sheet stored by the HTTP API.
	TTLSheet = 24 * time.Hour
)

// Keyer derives cache keys.
type Keyer interface {
	// StrokeKey is the key of a single character's stroke count.
	StrokeKey(char string) string

	// GridKey is the key of the layout of input under opts.
	GridKey(input string, opts GridKeyOpts) string

	// ArtifactKey is the key of a rendering of a cached grid.
	ArtifactKey(gridHash string, opts ArtifactKeyOpts) string

	// SheetKey is the key of a stored API sheet.
	SheetKey(id string) string
}

// GridKeyOpts are the layout inputs that change a grid.
type GridKeyOpts struct {
	Layout       string         `json:"layout"`
	Column       int            `json:"column"`
	WordsPerRow  int            `json:"words_per_row"`
	WordsPerCol  int            `json:"words_per_col"`
	RowsPerChar  int            `json:"rows_per_char"`
	Hints        bool           `json:"hints"`
	StrokeNumber int            `json:"stroke_number"`
	StrokeCounts map[string]int `json:"stroke_counts,omitempty"`
}

// ArtifactKeyOpts are the rendering inputs that change an artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Style  string `json:"style,omitempty"`
}
