package strokes

import (
	"context"
	"errors"
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/copybook/pkg/cache"
	errs "github.com/matzehuels/copybook/pkg/errors"
	"github.com/matzehuels/copybook/pkg/grid"
	"github.com/matzehuels/copybook/pkg/integrations"
	"github.com/matzehuels/copybook/pkg/observability"
)

// DefaultConcurrency bounds simultaneous fetches in [Cache.Populate].
const DefaultConcurrency = 8

// unknownCount is persisted for characters the source has no data for.
// No real character has zero strokes.
const unknownCount = 0

// Fetcher returns the stroke count of a single character.
//
// It returns an error wrapping [integrations.ErrNotFound] when the source
// has no data for the character.
type Fetcher interface {
	StrokeCount(ctx context.Context, char string, refresh bool) (int, error)
}

// Options configures a [Cache].
type Options struct {
	Store       cache.Cache // Persistent backend; nil keeps counts in memory only
	Keyer       cache.Keyer // Key derivation; nil uses cache.DefaultKeyer
	Fetcher     Fetcher     // Remote source; nil resolves only from Store
	Concurrency int         // Max parallel fetches; 0 uses DefaultConcurrency
	Refresh     bool        // Bypass Store and the fetcher's own cache
	Logger      *log.Logger
}

// Cache resolves and remembers stroke counts. It is safe for concurrent use.
type Cache struct {
	store       cache.Cache
	keyer       cache.Keyer
	fetcher     Fetcher
	concurrency int
	refresh     bool
	logger      *log.Logger

	mu      sync.RWMutex
	counts  Counts
	unknown map[string]struct{}
}

// New creates a Cache from opts.
func New(opts Options) *Cache {
	if opts.Store == nil {
		opts.Store = cache.NewNullCache()
	}
	if opts.Keyer == nil {
		opts.Keyer = cache.NewDefaultKeyer()
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Cache{
		store:       opts.Store,
		keyer:       opts.Keyer,
		fetcher:     opts.Fetcher,
		concurrency: opts.Concurrency,
		refresh:     opts.Refresh,
		logger:      opts.Logger,
		counts:      Counts{},
		unknown:     make(map[string]struct{}),
	}
}

// StrokeCount returns the remembered count for char without fetching.
func (c *Cache) StrokeCount(char string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts.StrokeCount(char)
}

// Snapshot returns an independent copy of every known count.
func (c *Cache) Snapshot() Counts {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts.Clone()
}

// Unknown reports whether char was looked up and has no stroke data.
func (c *Cache) Unknown(char string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.unknown[char]
	return ok
}

// Set records a count directly, for seeding and tests. Non-positive counts
// mark the character unknown.
func (c *Cache) Set(ctx context.Context, char string, n int) error {
	if err := errs.ValidateCharacter(char); err != nil {
		return err
	}
	c.remember(char, n)
	return c.store.Set(ctx, c.keyer.StrokeKey(char), []byte(strconv.Itoa(max(n, unknownCount))), cache.TTLStrokes)
}

// Populate makes sure every character of text has been looked up and returns
// a snapshot covering them. Whitespace and control characters are skipped.
//
// Individual fetch failures never fail the call; the affected characters
// stay unknown for this snapshot. Populate only returns an error when ctx
// ends.
func (c *Cache) Populate(ctx context.Context, text string) (Counts, error) {
	pending := c.pending(text)
	if len(pending) == 0 {
		return c.Snapshot(), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for _, char := range pending {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c.resolve(gctx, char)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.logger.Debug("populated stroke counts", "requested", len(pending), "known", c.Len())
	return c.Snapshot(), nil
}

// Clear forgets the given characters, or everything when none are given.
// With no characters it also clears the backend if it supports that.
func (c *Cache) Clear(ctx context.Context, chars ...string) error {
	if len(chars) == 0 {
		c.mu.Lock()
		c.counts = Counts{}
		c.unknown = make(map[string]struct{})
		c.mu.Unlock()
		if cl, ok := c.store.(cache.Clearer); ok {
			_, err := cl.Clear(ctx)
			return err
		}
		return nil
	}

	c.mu.Lock()
	for _, ch := range chars {
		delete(c.counts, ch)
		delete(c.unknown, ch)
	}
	c.mu.Unlock()

	var errList []error
	for _, ch := range chars {
		if err := c.store.Delete(ctx, c.keyer.StrokeKey(ch)); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// Len returns the number of characters with a known count.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.counts)
}

// pending returns the distinct lookup-worthy characters of text that are
// neither known nor recorded as unknown, in first-appearance order.
func (c *Cache) pending(text string) []string {
	seen := make(map[string]struct{})
	var out []string

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ch := range grid.SplitCharacters(text) {
		if _, dup := seen[ch]; dup {
			continue
		}
		seen[ch] = struct{}{}
		if errs.ValidateCharacter(ch) != nil {
			continue
		}
		if !c.refresh {
			if _, ok := c.counts[ch]; ok {
				continue
			}
			if _, ok := c.unknown[ch]; ok {
				continue
			}
		}
		out = append(out, ch)
	}
	return out
}

func (c *Cache) resolve(ctx context.Context, char string) {
	key := c.keyer.StrokeKey(char)

	if !c.refresh {
		data, ok, err := c.store.Get(ctx, key)
		if err != nil {
			c.logger.Warn("stroke cache read failed", "char", char, "err", err)
		}
		if ok {
			if n, err := strconv.Atoi(string(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, observability.KeyStrokes)
				c.remember(char, n)
				return
			}
		}
		observability.Cache().OnCacheMiss(ctx, observability.KeyStrokes)
	}

	if c.fetcher == nil {
		return
	}

	n, err := c.fetcher.StrokeCount(ctx, char, c.refresh)
	switch {
	case errors.Is(err, integrations.ErrNotFound):
		c.logger.Debug("no stroke data", "char", char)
		n = unknownCount
	case err != nil:
		if ctx.Err() == nil {
			c.logger.Warn("stroke fetch failed", "char", char, "err", err)
		}
		return
	}

	c.remember(char, n)
	data := []byte(strconv.Itoa(n))
	if err := c.store.Set(ctx, key, data, cache.TTLStrokes); err != nil {
		c.logger.Warn("stroke cache write failed", "char", char, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, observability.KeyStrokes, len(data))
}

func (c *Cache) remember(char string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n <= unknownCount {
		delete(c.counts, char)
		c.unknown[char] = struct{}{}
		return
	}
	c.counts[char] = n
	delete(c.unknown, char)
}
