// Command sakinah runs the feelings-to-guidance API server and small
// helper commands around its citation core.
package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/sakinah-app/sakinah/internal/api"
	"github.com/sakinah-app/sakinah/internal/logging"
	"github.com/sakinah-app/sakinah/internal/quran"
)

const version = "0.1.0"

// CLI defines the command-line interface for sakinah.
var CLI struct {
	LogLevel  string `help:"Log level (debug|info|warn|error)" default:"info" env:"SAKINAH_LOG_LEVEL"`
	LogFormat string `help:"Log format (json|text)" default:"json" env:"SAKINAH_LOG_FORMAT"`

	Serve   ServeCmd   `cmd:"" help:"Start the guidance API server"`
	Audio   AudioCmd   `cmd:"" help:"Resolve a Qur'an citation to ayah audio URLs"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ServeCmd starts the API server.
type ServeCmd struct {
	Port      int      `help:"HTTP server port" default:"8080" env:"SAKINAH_PORT"`
	Model     string   `help:"Chat-completion model" default:"gpt-4o-mini" env:"SAKINAH_MODEL"`
	BaseURL   string   `help:"OpenAI-compatible API base URL (empty = api.openai.com)" env:"OPENAI_BASE_URL"`
	APIKey    string   `help:"Upstream API key" env:"OPENAI_API_KEY"`
	DB        string   `help:"Session log database path (empty = disabled)" default:"./sakinah.db" type:"path" env:"SAKINAH_DB"`
	Origins   []string `help:"CORS allowed origins (empty = allow all)" env:"SAKINAH_ORIGINS"`
	RateLimit int      `help:"Requests per minute per IP (0 = disabled)" default:"0" env:"SAKINAH_RATE_LIMIT"`
	RateBurst int      `help:"Rate limit burst size" default:"10" env:"SAKINAH_RATE_BURST"`
	AuthKey   string   `help:"Require this X-API-Key on requests (empty = open)" env:"SAKINAH_AUTH_KEY"`
	TLSCert   string   `help:"TLS certificate file" env:"SAKINAH_TLS_CERT"`
	TLSKey    string   `help:"TLS private key file" env:"SAKINAH_TLS_KEY"`
}

func (c *ServeCmd) Run() error {
	return api.Start(api.Config{
		Port:              c.Port,
		Model:             c.Model,
		UpstreamBaseURL:   c.BaseURL,
		UpstreamAPIKey:    c.APIKey,
		DBPath:            c.DB,
		RateLimitRequests: c.RateLimit,
		RateLimitBurst:    c.RateBurst,
		Auth: api.AuthConfig{
			Enabled: c.AuthKey != "",
			APIKey:  c.AuthKey,
		},
		TLS: api.TLSConfig{
			Enabled:  c.TLSCert != "" || c.TLSKey != "",
			CertFile: c.TLSCert,
			KeyFile:  c.TLSKey,
		},
		AllowedOrigins: c.Origins,
	})
}

// AudioCmd resolves a citation from the command line.
type AudioCmd struct {
	Ref string `arg:"" help:"Citation, e.g. \"Q 94:5-6\""`
}

func (c *AudioCmd) Run() error {
	verses := quran.ParseCitation(c.Ref)
	if len(verses) == 0 {
		return fmt.Errorf("no Qur'an citation recognized in %q", c.Ref)
	}
	for _, v := range verses {
		fmt.Printf("%s\t%s\n", v, quran.AudioURL(v))
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("sakinah version %s\n", version)
	return nil
}

func main() {
	// A .env file is optional; flags and real environment win.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("sakinah"),
		kong.Description("Sakinah - feelings to Qur'anic guidance API"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))

	ctx.FatalIfErrorf(ctx.Run())
}
