// Package api provides the Sakinah guidance REST API server.
package api

import (
	"fmt"
	"net/http"
	"os"

	"github.com/sakinah-app/sakinah/internal/guidance"
	"github.com/sakinah-app/sakinah/internal/logging"
	"github.com/sakinah-app/sakinah/internal/server"
	"github.com/sakinah-app/sakinah/internal/store"
)

const version = "0.1.0"

// Start starts the API server with the given configuration.
func Start(cfg Config) error {
	ServerConfig = cfg

	// The upstream key is a startup error, never a per-request one.
	if cfg.UpstreamAPIKey == "" {
		return fmt.Errorf("upstream API key is required (set OPENAI_API_KEY)")
	}
	if cfg.Model == "" {
		return fmt.Errorf("chat-completion model is required")
	}

	if err := ValidateAuthConfig(cfg.Auth); err != nil {
		return fmt.Errorf("invalid auth config: %w", err)
	}

	if cfg.TLS.Enabled {
		if cfg.TLS.CertFile == "" || cfg.TLS.KeyFile == "" {
			return fmt.Errorf("TLS enabled but cert or key file not specified")
		}
		if _, err := os.Stat(cfg.TLS.CertFile); err != nil {
			return fmt.Errorf("TLS cert file not found: %w", err)
		}
		if _, err := os.Stat(cfg.TLS.KeyFile); err != nil {
			return fmt.Errorf("TLS key file not found: %w", err)
		}
	}

	// Session log is optional; an empty path disables it.
	if cfg.DBPath != "" {
		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open session store: %w", err)
		}
		sessionStore = st
		logging.Info("session log enabled", "path", cfg.DBPath)
	} else {
		logging.Warn("session log disabled")
	}

	completer := guidance.NewOpenAIClient(cfg.UpstreamAPIKey, cfg.UpstreamBaseURL, cfg.Model)
	guidanceService = guidance.NewService(completer)

	GlobalHub = NewHub()
	go GlobalHub.Run()

	mux := setupRoutes()

	protocol := "http"
	if cfg.TLS.Enabled {
		protocol = "https"
		logging.Info("TLS enabled", "cert_file", cfg.TLS.CertFile)
	} else {
		logging.Warn("TLS disabled - using plain HTTP",
			"recommendation", "consider using TLS or a reverse proxy for production")
	}
	logging.ServerStartup("guidance_api", protocol, cfg.Port,
		"model", cfg.Model,
		"upstream_base_url", cfg.UpstreamBaseURL)

	// Build middleware chain with security headers.
	var handler http.Handler = server.SecurityHeaders(server.APICSPConfig(), mux)

	if cfg.Auth.Enabled {
		handler = AuthMiddleware(cfg.Auth, handler)
		logging.SecurityEvent("authentication_configured", "api",
			"enabled", true,
			"note", "API key required")
	} else {
		logging.SecurityEvent("authentication_configured", "api",
			"enabled", false,
			"note", "all requests allowed")
	}

	if cfg.RateLimitRequests > 0 {
		rateLimitConfig := RateLimiterConfig{
			RequestsPerMinute: cfg.RateLimitRequests,
			BurstSize:         cfg.RateLimitBurst,
		}
		if rateLimitConfig.BurstSize == 0 {
			rateLimitConfig.BurstSize = 10
		}
		handler = NewRateLimiter(rateLimitConfig).Middleware(handler)
		logging.Info("rate limiting enabled",
			"requests_per_minute", rateLimitConfig.RequestsPerMinute,
			"burst_size", rateLimitConfig.BurstSize)
	}

	// CORS is outermost so preflights never hit auth or rate limiting.
	handler = server.CORSMiddleware(server.CORSConfig{AllowedOrigins: cfg.AllowedOrigins}, handler)
	if len(cfg.AllowedOrigins) > 0 {
		logging.SecurityEvent("cors_configured", "api",
			"mode", "restricted",
			"allowed_origins_count", len(cfg.AllowedOrigins))
	} else {
		logging.SecurityEvent("cors_configured", "api",
			"mode", "permissive",
			"note", "allowing all origins (*) - consider restricting for production")
	}

	handler = logging.CombinedMiddleware(handler)

	addr := fmt.Sprintf(":%d", cfg.Port)
	if cfg.TLS.Enabled {
		return http.ListenAndServeTLS(addr, cfg.TLS.CertFile, cfg.TLS.KeyFile, handler)
	}
	return http.ListenAndServe(addr, handler)
}

// setupRoutes configures all HTTP routes.
func setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", handleRoot)
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/guidance", handleGuidance)
	mux.HandleFunc("/sessions", handleSessions)
	mux.HandleFunc("/sessions/", handleSessionByID)
	mux.HandleFunc("/ws", handleWebSocket)

	return mux
}
