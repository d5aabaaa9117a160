package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Download hooks
	d := NoopDownloadHooks{}
	d.OnPageFetched(ctx, 1, 100)
	d.OnRecordDropped(ctx, "missing loadout")
	d.OnRunComplete(ctx, 42, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "detail")
	c.OnCacheMiss(ctx, "detail")
	c.OnCacheSet(ctx, "detail", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "bakkesplugins.com", "/api/presets")
	h.OnResponse(ctx, "GET", "bakkesplugins.com", "/api/presets", 200, time.Second)
	h.OnError(ctx, "GET", "bakkesplugins.com", "/api/presets", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Download().(NoopDownloadHooks); !ok {
		t.Error("Download() should return NoopDownloadHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customDownload := &testDownloadHooks{}
	SetDownloadHooks(customDownload)
	if Download() != customDownload {
		t.Error("SetDownloadHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Download().(NoopDownloadHooks); !ok {
		t.Error("Reset() should restore NoopDownloadHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testDownloadHooks{}
	SetDownloadHooks(custom)

	// Setting nil should be ignored
	SetDownloadHooks(nil)

	if Download() != custom {
		t.Error("SetDownloadHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testDownloadHooks struct{ NoopDownloadHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
