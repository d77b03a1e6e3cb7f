package api

// Config holds server configuration.
type Config struct {
	Port              int
	Model             string     // chat-completion model name
	UpstreamBaseURL   string     // OpenAI-compatible endpoint override (empty = default)
	UpstreamAPIKey    string     // required at startup
	DBPath            string     // session log database path
	RateLimitRequests int        // requests per minute per IP (0 = disabled)
	RateLimitBurst    int        // burst size
	Auth              AuthConfig // inbound authentication
	TLS               TLSConfig  // TLS configuration
	AllowedOrigins    []string   // CORS allowed origins (empty = allow all)
}

// TLSConfig holds TLS/HTTPS configuration.
type TLSConfig struct {
	Enabled  bool
	CertFile string
	KeyFile  string
}

// ServerConfig is the active server configuration.
var ServerConfig Config
