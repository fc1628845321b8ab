// Package strokes resolves how many strokes each character takes to write.
//
// # Counts
//
// [Counts] is an immutable-by-convention map from character to stroke
// count. It satisfies the grid package's StrokeLookup, so a snapshot can be
// handed straight to the layout strategies.
//
// # Cache
//
// [Cache] sits between the layout engine and a remote [Fetcher]. Before a
// sheet is formatted, [Cache.Populate] collects the distinct characters of
// the input, fetches the unknown ones concurrently, and persists the results
// in a cache backend. Layout then reads from an independent [Counts]
// snapshot and never blocks on the network.
//
// A character the source has no data for is remembered as unknown and lays
// out without stroke-order cells. Transient fetch failures are logged and
// retried on the next populate.
package strokes
