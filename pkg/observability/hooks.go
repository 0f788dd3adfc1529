// Package observability provides hooks for metrics and tracing.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about cache operations and API
// requests; the library itself only calls no-op defaults.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    observability.SetRequestHooks(&myRequestHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Cache().OnCacheHit(ctx, "tags")
package observability

import (
	"context"
	"sync"
	"time"
)

// CacheHooks receives events from cache operations. The keyType is the
// cache key namespace (e.g., "tags", "scan").
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// RequestHooks receives events from the HTTP API.
type RequestHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a served response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopRequestHooks is a no-op implementation of RequestHooks.
type NoopRequestHooks struct{}

func (NoopRequestHooks) OnRequest(context.Context, string, string)                      {}
func (NoopRequestHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

var (
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	requestHooks RequestHooks = NoopRequestHooks{}
	hooksMu      sync.RWMutex
)

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetRequestHooks registers custom request hooks.
// This should be called once at application startup before serving.
func SetRequestHooks(h RequestHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		requestHooks = h
	}
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Request returns the registered request hooks.
func Request() RequestHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return requestHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	cacheHooks = NoopCacheHooks{}
	requestHooks = NoopRequestHooks{}
}
