package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/clientdesk/internal/flagx"
	"github.com/dmitrijs2005/clientdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" from "zero", so a file may set only some keys.
type JsonConfig struct {
	EndpointAddrHTTP *string         `json:"endpoint_addr_http"`
	DatabaseDSN      *string         `json:"database_dsn"`
	AllowedOrigins   *string         `json:"allowed_origins"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
	TraceEnabled     *bool           `json:"trace_enabled"`
	LogLevel         *string         `json:"log_level"`
}

// parseJson overlays config with the JSON file named by -c or -config.
// Without either flag nothing is loaded.
func parseJson(config *Config, args []string) error {
	jsonConfigFile := flagx.ConfigFile(args)
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.AllowedOrigins != nil {
		config.AllowedOrigins = *c.AllowedOrigins
	}
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.TraceEnabled != nil {
		config.TraceEnabled = *c.TraceEnabled
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	return nil
}
