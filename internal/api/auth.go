package api

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/sakinah-app/sakinah/internal/logging"
)

// AuthConfig holds inbound authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKey  string
}

// AuthMiddleware checks for API key authentication when enabled.
// If auth is disabled, all requests pass through. If auth is enabled,
// requests must include an X-API-Key header with the correct key.
// Health endpoints (/, /health) always bypass authentication.
func AuthMiddleware(authCfg AuthConfig, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicEndpoint(r.URL.Path) || !authCfg.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			logging.SecurityEvent("unauthorized_request", "auth",
				"path", r.URL.Path,
				"reason", "missing API key")
			respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing X-API-Key header")
			return
		}

		// Constant-time comparison to prevent timing attacks.
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(authCfg.APIKey)) != 1 {
			logging.SecurityEvent("unauthorized_request", "auth",
				"path", r.URL.Path,
				"reason", "invalid API key")
			respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isPublicEndpoint returns true if the endpoint should always be accessible
// without authentication.
func isPublicEndpoint(path string) bool {
	return path == "/" || path == "/health"
}

// ValidateAuthConfig validates the authentication configuration.
func ValidateAuthConfig(cfg AuthConfig) error {
	if cfg.Enabled && cfg.APIKey == "" {
		return fmt.Errorf("API key is required when authentication is enabled")
	}
	if cfg.Enabled && len(cfg.APIKey) < 16 {
		return fmt.Errorf("API key must be at least 16 characters (got %d)", len(cfg.APIKey))
	}
	return nil
}
