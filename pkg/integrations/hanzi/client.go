package hanzi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/matzehuels/copybook/pkg/cache"
	errs "github.com/matzehuels/copybook/pkg/errors"
	"github.com/matzehuels/copybook/pkg/integrations"
)

// DefaultBaseURL is the versioned CDN root for hanzi-writer-data.
const DefaultBaseURL = "https://cdn.jsdelivr.net/npm/hanzi-writer-data@2.0.1"

// CharData is the per-character document published by hanzi-writer-data.
type CharData struct {
	Strokes    []string      `json:"strokes"`              // SVG path per stroke, in writing order
	Medians    [][][]float64 `json:"medians"`              // Median points per stroke
	RadStrokes []int         `json:"radStrokes,omitempty"` // Indices of strokes belonging to the radical
}

// StrokeCount returns the number of strokes in the character.
func (d *CharData) StrokeCount() int {
	return len(d.Strokes)
}

// Client fetches character data from the hanzi-writer-data CDN.
//
// All methods are safe for concurrent use when the cache backend is.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a client that caches documents in backend for cacheTTL.
// A nil backend disables caching.
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(backend, "hanzi:", cacheTTL, integrations.DefaultHeaders()),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at a mirror. Trailing slashes are ignored.
// An empty url keeps the current base.
func (c *Client) WithBaseURL(u string) *Client {
	if u = strings.TrimRight(u, "/"); u != "" {
		c.baseURL = u
	}
	return c
}

// BaseURL returns the CDN root the client fetches from.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchCharacter retrieves the stroke document for a single character.
//
// Returns:
//   - an [errs.ErrCodeInvalidCharacter] error if char is not exactly one character
//   - [integrations.ErrNotFound] if the CDN has no document for char
//   - [integrations.ErrNetwork] for HTTP failures that survived retries
func (c *Client) FetchCharacter(ctx context.Context, char string, refresh bool) (*CharData, error) {
	if err := errs.ValidateCharacter(char); err != nil {
		return nil, err
	}

	var data CharData
	err := c.Cached(ctx, char, refresh, &data, func() error {
		return c.fetch(ctx, char, &data)
	})
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// StrokeCount fetches char and returns its stroke count.
func (c *Client) StrokeCount(ctx context.Context, char string, refresh bool) (int, error) {
	data, err := c.FetchCharacter(ctx, char, refresh)
	if err != nil {
		return 0, err
	}
	return data.StrokeCount(), nil
}

func (c *Client) fetch(ctx context.Context, char string, data *CharData) error {
	u := fmt.Sprintf("%s/%s.json", c.baseURL, url.PathEscape(char))
	if err := c.Get(ctx, u, data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: character %s", err, char)
		}
		return err
	}
	if len(data.Strokes) == 0 {
		return fmt.Errorf("%w: character %s has no strokes", integrations.ErrNotFound, char)
	}
	return nil
}
