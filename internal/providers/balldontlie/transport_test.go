package balldontlie

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("expected default base URL, got %s", got)
	}
	if got := normalizeBaseURL("https://example.test/v1/"); got != "https://example.test/v1" {
		t.Fatalf("expected trailing slash trimmed, got %s", got)
	}
}

func TestResolveHTTPClientDefaultsTimeout(t *testing.T) {
	doer := resolveHTTPClient(nil)
	client, ok := doer.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", doer)
	}
	if client.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected %v timeout, got %v", defaultHTTPTimeout, client.Timeout)
	}

	custom := &http.Client{Timeout: time.Second}
	if got := resolveHTTPClient(custom); got != custom {
		t.Fatal("expected provided client to be used")
	}
}

func TestResolveDefaults(t *testing.T) {
	if got := resolvePerPage(0, defaultPerPage); got != defaultPerPage {
		t.Fatalf("expected fallback per_page, got %d", got)
	}
	if got := resolvePerPage(25, defaultPerPage); got != 25 {
		t.Fatalf("expected explicit per_page, got %d", got)
	}
	if got := resolveRetries(0); got != defaultRateLimitRetries {
		t.Fatalf("expected default retries, got %d", got)
	}
	if limiter := resolveLimiter(nil, time.Second); limiter == nil {
		t.Fatal("expected a private limiter when none supplied")
	}
}
