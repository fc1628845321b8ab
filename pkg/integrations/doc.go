// Package integrations provides HTTP clients for remote character data.
//
// # Overview
//
// Each remote source has its own subpackage:
//
//   - [hanzi]: per-character stroke data from the hanzi-writer-data CDN
//
// # Client Pattern
//
// Source clients embed the shared [Client] and follow one pattern:
//
//	client := hanzi.NewClient(backend, 30*24*time.Hour)
//	data, err := client.FetchCharacter(ctx, "永", false)  // false = use cache
//
// The shared [Client] handles:
//   - HTTP requests with retry on network errors, 429 and 5xx responses
//   - Response caching in any [cache.Cache] backend with a per-source namespace
//   - Mapping 404 responses to [ErrNotFound]
//
// [hanzi]: github.com/matzehuels/copybook/pkg/integrations/hanzi
// [cache.Cache]: github.com/matzehuels/copybook/pkg/cache.Cache
package integrations
