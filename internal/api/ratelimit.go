package api

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiterConfig holds rate limiter configuration.
type RateLimiterConfig struct {
	RequestsPerMinute int
	BurstSize         int
}

// tokenBucket implements a token bucket rate limiter.
type tokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

func newTokenBucket(capacity, refillRate float64) *tokenBucket {
	return &tokenBucket{
		tokens:     capacity,
		capacity:   capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) refill(now time.Time) {
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.tokens = min(tb.capacity, tb.tokens+elapsed*tb.refillRate)
	tb.lastRefill = now
}

// allow consumes a token if one is available.
func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill(time.Now())
	if tb.tokens >= 1.0 {
		tb.tokens--
		return true
	}
	return false
}

// remaining returns the number of whole tokens currently available.
func (tb *tokenBucket) remaining() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill(time.Now())
	return int(tb.tokens)
}

// reset returns the time when the bucket will be full again.
func (tb *tokenBucket) reset() time.Time {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.refill(now)
	if tb.tokens >= tb.capacity {
		return now
	}
	secondsUntilFull := (tb.capacity - tb.tokens) / tb.refillRate
	return now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
}

// RateLimiter manages per-IP rate limiting.
type RateLimiter struct {
	mu         sync.RWMutex
	buckets    map[string]*tokenBucket
	config     RateLimiterConfig
	cleanupTTL time.Duration
}

// NewRateLimiter creates a new rate limiter with the given configuration.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		buckets:    make(map[string]*tokenBucket),
		config:     config,
		cleanupTTL: 5 * time.Minute,
	}
	go rl.cleanup()
	return rl
}

// getBucket returns the token bucket for a given IP, creating if necessary.
func (rl *RateLimiter) getBucket(ip string) *tokenBucket {
	rl.mu.RLock()
	bucket, exists := rl.buckets[ip]
	rl.mu.RUnlock()
	if exists {
		return bucket
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if bucket, exists := rl.buckets[ip]; exists {
		return bucket
	}

	refillRate := float64(rl.config.RequestsPerMinute) / 60.0
	bucket = newTokenBucket(float64(rl.config.BurstSize), refillRate)
	rl.buckets[ip] = bucket
	return bucket
}

// cleanup periodically removes idle buckets.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, bucket := range rl.buckets {
			if now.Sub(bucket.lastRefill) > rl.cleanupTTL {
				delete(rl.buckets, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Allow checks if a request from the given IP should be allowed.
func (rl *RateLimiter) Allow(ip string) bool {
	return rl.getBucket(ip).allow()
}

// Middleware returns an HTTP middleware that applies rate limiting.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bucket := rl.getBucket(getClientIP(r))
		reset := bucket.reset()

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.config.RequestsPerMinute))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", bucket.remaining()))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", reset.Unix()))

		if !bucket.allow() {
			retryAfter := int(time.Until(reset).Seconds()) + 1
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			respondError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED",
				fmt.Sprintf("Rate limit exceeded. Try again in %d seconds.", retryAfter))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getClientIP extracts the client IP address, preferring X-Forwarded-For and
// X-Real-IP over RemoteAddr, validating each candidate.
func getClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// Leftmost entry is the original client.
		clientIP := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if net.ParseIP(clientIP) != nil {
			return clientIP
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		if net.ParseIP(realIP) != nil {
			return realIP
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if net.ParseIP(ip) != nil {
		return ip
	}
	return "unknown"
}
