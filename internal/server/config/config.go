// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the customer API server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the HTTP API.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - AllowedOrigins: comma-separated CORS origins, "*" for any.
//   - RequestTimeout: upper bound for handling one request.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
//   - TraceEnabled: export database spans to stdout.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP string
	DatabaseDSN      string
	AllowedOrigins   string
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
	TraceEnabled     bool
	LogLevel         string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.DatabaseDSN = ""
	c.AllowedOrigins = "*"
	c.RequestTimeout = 15 * time.Second
	c.ShutdownTimeout = 10 * time.Second
	c.TraceEnabled = false
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags. args are
// the program arguments without the binary name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
