package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	orig := lookupEnv
	lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	t.Cleanup(func() { lookupEnv = orig })
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	c := Defaults()

	assert.Equal(t, "http://localhost:3000", c.APIURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 5*time.Second, c.ToastDuration)
	assert.Equal(t, "Local", c.DisplayTimezone)
	assert.Equal(t, "info", c.LogLevel)
	require.NoError(t, c.Validate())
}

func TestLoad_NoSources(t *testing.T) {
	withEnv(t, nil)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(Defaults(), cfg))
}

func TestLoad_Precedence(t *testing.T) {
	yamlFile := writeFile(t, "cfg.yaml", `
api_url: http://file:3000
request_timeout: 20s
toast_duration: 2s
display_timezone: UTC
log_level: warn
`)

	tests := []struct {
		name     string
		env      map[string]string
		flags    *Flags
		expected *Config
	}{
		{
			name:  "file only",
			flags: &Flags{ConfigFile: yamlFile},
			expected: &Config{APIURL: "http://file:3000", RequestTimeout: 20 * time.Second,
				ToastDuration: 2 * time.Second, DisplayTimezone: "UTC", LogLevel: "warn"},
		},
		{
			name:  "env beats file",
			env:   map[string]string{"API_URL": "http://env:1", "CLIENTDESK_REQUEST_TIMEOUT": "3s"},
			flags: &Flags{ConfigFile: yamlFile},
			expected: &Config{APIURL: "http://env:1", RequestTimeout: 3 * time.Second,
				ToastDuration: 2 * time.Second, DisplayTimezone: "UTC", LogLevel: "warn"},
		},
		{
			name: "prefixed env beats API_URL",
			env:  map[string]string{"API_URL": "http://env:1", "CLIENTDESK_API_URL": "http://env:2"},
			expected: &Config{APIURL: "http://env:2", RequestTimeout: 10 * time.Second,
				ToastDuration: 5 * time.Second, DisplayTimezone: "Local", LogLevel: "info"},
		},
		{
			name:  "flags beat everything",
			env:   map[string]string{"API_URL": "http://env:1", "CLIENTDESK_LOG_LEVEL": "error"},
			flags: &Flags{ConfigFile: yamlFile, APIURL: "https://flag", ToastDuration: time.Second, LogLevel: "debug"},
			expected: &Config{APIURL: "https://flag", RequestTimeout: 20 * time.Second,
				ToastDuration: time.Second, DisplayTimezone: "UTC", LogLevel: "debug"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEnv(t, tt.env)

			cfg, err := Load(tt.flags)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestLoad_JSONFile(t *testing.T) {
	withEnv(t, nil)
	path := writeFile(t, "cfg.json", `{"api_url": "http://json:8080", "toast_duration": "7s"}`)

	cfg, err := Load(&Flags{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "http://json:8080", cfg.APIURL)
	assert.Equal(t, 7*time.Second, cfg.ToastDuration)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoad_ExpandsEnvInFile(t *testing.T) {
	withEnv(t, map[string]string{"BACKEND": "http://expanded:9"})
	path := writeFile(t, "cfg.yaml", "api_url: ${BACKEND}\n")

	cfg, err := Load(&Flags{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "http://expanded:9", cfg.APIURL)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		flags *Flags
	}{
		{name: "missing file", flags: &Flags{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")}},
		{name: "bad yaml", flags: &Flags{ConfigFile: writeFile(t, "bad.yaml", "api_url: [unterminated")}},
		{name: "bad env duration", env: map[string]string{"CLIENTDESK_TOAST_DURATION": "soon"}},
		{name: "relative url", flags: &Flags{APIURL: "localhost:3000"}},
		{name: "bad timezone", flags: &Flags{DisplayTimezone: "Mars/Olympus"}},
		{name: "bad level", flags: &Flags{LogLevel: "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEnv(t, tt.env)
			_, err := Load(tt.flags)
			require.Error(t, err)
		})
	}
}

func TestLocation(t *testing.T) {
	c := Defaults()
	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	c.DisplayTimezone = "UTC"
	loc, err = c.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	c.DisplayTimezone = "Nowhere/Else"
	_, err = c.Location()
	assert.ErrorIs(t, err, ErrInvalid)
}
