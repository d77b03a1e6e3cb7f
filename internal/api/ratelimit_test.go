package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTokenBucketAllow(t *testing.T) {
	tb := newTokenBucket(3, 1) // 3 burst, 1 token/sec

	for i := 0; i < 3; i++ {
		if !tb.allow() {
			t.Fatalf("request %d should be allowed within burst", i+1)
		}
	}
	if tb.allow() {
		t.Error("request past burst should be denied")
	}
}

func TestTokenBucketRefill(t *testing.T) {
	tb := newTokenBucket(1, 100) // refills fast for the test

	if !tb.allow() {
		t.Fatal("first request should pass")
	}
	if tb.allow() {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(20 * time.Millisecond)
	if !tb.allow() {
		t.Error("bucket should have refilled")
	}
}

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 60, BurstSize: 1})

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request from first IP should pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("second request from same IP should be limited")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("other IPs have their own bucket")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 60, BurstSize: 1})
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/guidance", nil)
	req.RemoteAddr = "10.0.0.1:12345"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first request status = %d", w.Code)
	}
	if w.Header().Get("X-RateLimit-Limit") != "60" {
		t.Errorf("X-RateLimit-Limit = %q", w.Header().Get("X-RateLimit-Limit"))
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("429 response missing Retry-After")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		realIP     string
		want       string
	}{
		{"remote addr", "192.0.2.1:9999", "", "", "192.0.2.1"},
		{"x-forwarded-for", "192.0.2.1:9999", "203.0.113.7, 10.0.0.1", "", "203.0.113.7"},
		{"invalid forwarded falls through", "192.0.2.1:9999", "not-an-ip", "", "192.0.2.1"},
		{"x-real-ip", "192.0.2.1:9999", "", "203.0.113.9", "203.0.113.9"},
		{"garbage everywhere", "garbage", "junk", "junk", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
