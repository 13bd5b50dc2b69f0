package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/clientdesk/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     HTTP bind address (e.g., ":3000")
//	-d string     PostgreSQL DSN; empty keeps records in memory
//	-o string     allowed CORS origins, comma-separated
//	-t duration   request timeout (e.g., "15s")
//	-s duration   shutdown grace period
//	-trace        export database spans to stdout
//	-l string     log level
//
// The arguments are filtered with flagx.FilterArgs first, so flags meant for
// other components do not cause parse errors.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-o", "-t", "-s", "-trace", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.AllowedOrigins, "o", config.AllowedOrigins, "allowed CORS origins")
	fs.DurationVar(&config.RequestTimeout, "t", config.RequestTimeout, "request timeout")
	fs.DurationVar(&config.ShutdownTimeout, "s", config.ShutdownTimeout, "shutdown timeout")
	fs.BoolVar(&config.TraceEnabled, "trace", config.TraceEnabled, "export database spans to stdout")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	return fs.Parse(args)
}
