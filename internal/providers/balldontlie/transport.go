package balldontlie

import (
	"net/http"
	"strings"
	"time"

	"nba-ingest/internal/ratelimit"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveLimiter(limiter *ratelimit.Limiter, interval time.Duration) *ratelimit.Limiter {
	if limiter != nil {
		return limiter
	}
	return ratelimit.New(interval, 0)
}

func resolvePerPage(perPage, fallback int) int {
	if perPage <= 0 {
		return fallback
	}
	return perPage
}

func resolveRetries(retries int) int {
	if retries <= 0 {
		return defaultRateLimitRetries
	}
	return retries
}
