package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/logging"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid configuration")

// lookupEnv is swapped in tests.
var lookupEnv = os.LookupEnv

// Config holds runtime settings for the customer client.
type Config struct {
	APIURL          string        `yaml:"api_url"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ToastDuration   time.Duration `yaml:"toast_duration"`
	DisplayTimezone string        `yaml:"display_timezone"`
	LogLevel        string        `yaml:"log_level"`
}

// Flags are the command-line overrides. Zero values mean "not given".
type Flags struct {
	ConfigFile      string
	APIURL          string
	RequestTimeout  time.Duration
	ToastDuration   time.Duration
	DisplayTimezone string
	LogLevel        string
}

func Defaults() *Config {
	return &Config{
		APIURL:          "http://localhost:3000",
		RequestTimeout:  10 * time.Second,
		ToastDuration:   5 * time.Second,
		DisplayTimezone: "Local",
		LogLevel:        "info",
	}
}

// Load builds a Config from defaults, the optional file, the environment and
// flags, in that order. flags may be nil.
func Load(flags *Flags) (*Config, error) {
	cfg := Defaults()

	if flags != nil && flags.ConfigFile != "" {
		if err := cfg.loadFile(flags.ConfigFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyFlags(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	c.APIURL = expandEnv(c.APIURL)
	c.DisplayTimezone = expandEnv(c.DisplayTimezone)
	c.LogLevel = expandEnv(c.LogLevel)
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookupEnv("API_URL"); ok && v != "" {
		c.APIURL = v
	}
	if v, ok := lookupEnv("CLIENTDESK_API_URL"); ok && v != "" {
		c.APIURL = v
	}
	if v, ok := lookupEnv("CLIENTDESK_TIMEZONE"); ok && v != "" {
		c.DisplayTimezone = v
	}
	if v, ok := lookupEnv("CLIENTDESK_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"CLIENTDESK_REQUEST_TIMEOUT", &c.RequestTimeout},
		{"CLIENTDESK_TOAST_DURATION", &c.ToastDuration},
	}
	for _, d := range durations {
		v, ok := lookupEnv(d.name)
		if !ok || v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, d.name, err)
		}
		*d.dst = parsed
	}
	return nil
}

func (c *Config) applyFlags(f *Flags) {
	if f == nil {
		return
	}
	if f.APIURL != "" {
		c.APIURL = f.APIURL
	}
	if f.RequestTimeout > 0 {
		c.RequestTimeout = f.RequestTimeout
	}
	if f.ToastDuration > 0 {
		c.ToastDuration = f.ToastDuration
	}
	if f.DisplayTimezone != "" {
		c.DisplayTimezone = f.DisplayTimezone
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
}

// Validate checks the fields that would otherwise fail late.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api_url %q must be an absolute http(s) URL", ErrInvalid, c.APIURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request_timeout must be positive", ErrInvalid)
	}
	if c.ToastDuration <= 0 {
		return fmt.Errorf("%w: toast_duration must be positive", ErrInvalid)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Location resolves DisplayTimezone. "Local" and "" mean the host zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.DisplayTimezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("%w: display_timezone: %v", ErrInvalid, err)
	}
	return loc, nil
}

func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		v, _ := lookupEnv(s[2 : len(s)-1])
		return v
	}
	return os.Expand(s, func(k string) string {
		v, _ := lookupEnv(k)
		return v
	})
}
