// Package hanzi provides an HTTP client for the hanzi-writer-data CDN.
//
// # Overview
//
// hanzi-writer-data publishes one JSON document per Chinese character,
// holding the SVG path of every stroke in writing order together with the
// stroke medians used for animation:
//
//	https://cdn.jsdelivr.net/npm/hanzi-writer-data@2.0.1/永.json
//
// # Usage
//
//	client := hanzi.NewClient(backend, 30*24*time.Hour)
//
//	n, err := client.StrokeCount(ctx, "永", false)
//	if errors.Is(err, integrations.ErrNotFound) {
//	    // the CDN has no data for this character
//	}
//
// # Caching
//
// Documents are cached in the backend under the "hanzi:" namespace. Pass
// refresh=true to bypass the cache.
package hanzi
