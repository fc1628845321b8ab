// Package httputil provides typed response caching for remote data clients.
//
// [Cache] marshals values to JSON and stores them in whatever backend the
// caller configured (file, memory, Redis). Keys are namespaced so several
// sources can share one backend:
//
//	c := httputil.NewCache(backend, 30*24*time.Hour).Namespace("hanzi:")
//	var data CharData
//	if ok, _ := c.Get(ctx, "永", &data); !ok {
//	    data = fetch()
//	    _ = c.Set(ctx, "永", data)
//	}
//
// Undecodable entries are treated as misses, so a format change never wedges
// a client. Retries live in [cache.Backoff].
package httputil
