// Package server provides shared middleware for HTTP servers.
package server

import (
	"net/http"
	"strings"
)

// CORSConfig holds CORS middleware configuration.
type CORSConfig struct {
	AllowedOrigins []string // empty = allow all (*)
}

// CORSMiddleware adds CORS headers to responses. With no configured origins
// every origin is allowed; otherwise the request Origin must be on the list
// or the preflight is rejected and no CORS headers are set.
func CORSMiddleware(cfg CORSConfig, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		allowedOrigin := "*"
		if len(cfg.AllowedOrigins) > 0 {
			allowed := false
			for _, o := range cfg.AllowedOrigins {
				if origin == o {
					allowed = true
					allowedOrigin = origin
					break
				}
			}
			if !allowed {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				next.ServeHTTP(w, r)
				return
			}
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")
		if allowedOrigin != "*" {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CSPConfig holds Content-Security-Policy configuration.
type CSPConfig struct {
	DefaultSrc     []string
	FrameAncestors []string
	BaseURI        []string
	FormAction     []string
}

// APICSPConfig returns a strict CSP for JSON API endpoints, which never
// load resources.
func APICSPConfig() CSPConfig {
	return CSPConfig{
		DefaultSrc:     []string{"'none'"},
		FrameAncestors: []string{"'none'"},
		BaseURI:        []string{"'none'"},
		FormAction:     []string{"'none'"},
	}
}

// BuildCSPHeader builds a Content-Security-Policy header value from config.
func (cfg CSPConfig) BuildCSPHeader() string {
	var directives []string
	if len(cfg.DefaultSrc) > 0 {
		directives = append(directives, "default-src "+strings.Join(cfg.DefaultSrc, " "))
	}
	if len(cfg.FrameAncestors) > 0 {
		directives = append(directives, "frame-ancestors "+strings.Join(cfg.FrameAncestors, " "))
	}
	if len(cfg.BaseURI) > 0 {
		directives = append(directives, "base-uri "+strings.Join(cfg.BaseURI, " "))
	}
	if len(cfg.FormAction) > 0 {
		directives = append(directives, "form-action "+strings.Join(cfg.FormAction, " "))
	}
	return strings.Join(directives, "; ")
}

// SecurityHeaders adds standard security headers plus the given CSP to all
// responses.
func SecurityHeaders(cfg CSPConfig, next http.Handler) http.Handler {
	csp := cfg.BuildCSPHeader()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		if csp != "" {
			w.Header().Set("Content-Security-Policy", csp)
		}
		next.ServeHTTP(w, r)
	})
}
