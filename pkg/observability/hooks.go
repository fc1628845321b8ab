// Package observability lets an application watch sheet generation.
//
// The pipeline, the stroke cache, the sheet store and the upstream HTTP
// client report events to hooks held in a process-wide registry. Until an
// application registers its own, every hook is a no-op.
//
// The CLI's --trace flag registers [LogHooks]:
//
//	observability.NewLogHooks(logger).Register()
//
// Emitters fetch the current hooks at the call site:
//
//	observability.Pipeline().OnLayoutStart(ctx, "normal", chars)
//	g := grid.FormatGridData(text, cfg, lookup)
//	observability.Pipeline().OnLayoutComplete(ctx, kind, g.Rows(), time.Since(start), nil)
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks receives one event per pipeline stage.
type PipelineHooks interface {
	OnStrokesComplete(ctx context.Context, chars, known int, duration time.Duration, err error)
	OnLayoutStart(ctx context.Context, layout string, chars int)
	OnLayoutComplete(ctx context.Context, kind string, rows int, duration time.Duration, err error)
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// Cache key types passed to CacheHooks.
const (
	KeyStrokes  = "strokes"
	KeyGrid     = "grid"
	KeyArtifact = "artifact"
	KeySheet    = "sheet"
)

// CacheHooks receives cache traffic by key type.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives outgoing requests to stroke data sources. OnError
// reports transport failures; responses of any status go to OnResponse.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, host, path string)
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)
	OnError(ctx context.Context, method, host, path string, err error)
}

type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnStrokesComplete(context.Context, int, int, time.Duration, error)   {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, string, int)                          {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                             {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)    {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// slot holds one registered hook set. Loads are lock-free since emitters
// call them on every cache access.
type slot[T any] struct {
	p    atomic.Pointer[T]
	noop T
}

func (s *slot[T]) load() T {
	if h := s.p.Load(); h != nil {
		return *h
	}
	return s.noop
}

func (s *slot[T]) store(h T) { s.p.Store(&h) }

func (s *slot[T]) reset() { s.p.Store(nil) }

var (
	pipelineSlot = slot[PipelineHooks]{noop: NoopPipelineHooks{}}
	cacheSlot    = slot[CacheHooks]{noop: NoopCacheHooks{}}
	httpSlot     = slot[HTTPHooks]{noop: NoopHTTPHooks{}}
)

// SetPipelineHooks registers h. Nil is ignored, as for the other setters.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		pipelineSlot.store(h)
	}
}

func SetCacheHooks(h CacheHooks) {
	if h != nil {
		cacheSlot.store(h)
	}
}

func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		httpSlot.store(h)
	}
}

func Pipeline() PipelineHooks { return pipelineSlot.load() }

func Cache() CacheHooks { return cacheSlot.load() }

func HTTP() HTTPHooks { return httpSlot.load() }

// Reset restores the no-op hooks. Tests that register hooks defer it.
func Reset() {
	pipelineSlot.reset()
	cacheSlot.reset()
	httpSlot.reset()
}
