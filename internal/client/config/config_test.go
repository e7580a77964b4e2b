package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/sleepcoach/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "https://api.tabhay.tech", c.APIBaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, StoreSQLite, c.StoreBackend)
	assert.True(t, c.OptimisticCompletion)
	assert.NoError(t, c.Validate())
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvAPIURL, EnvStore, EnvStorePath, EnvLogLevel, EnvLogFormat, EnvTimeout, EnvOptimisticCompletion} {
		t.Setenv(name, "")
	}
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIURL, "http://env.example")
	t.Setenv(EnvStorePath, "env.db")
	t.Setenv(EnvLogLevel, "info")

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store_path: file.db\ntimeout: 3s\n"), 0o600))

	cfg, err := Load([]string{"-c", path, "-t", "7", "-l", "debug"})
	require.NoError(t, err)

	want := defaults()
	want.APIBaseURL = "http://env.example"
	want.StorePath = "file.db"
	want.RequestTimeout = 7 * time.Second
	want.LogLevel = "debug"

	if diff := cmp.Diff(&want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	_, err := Load([]string{"-store", "redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown store backend "redis"`)

	_, err = Load([]string{"-t", "abc"})
	assert.Error(t, err)

	_, err = Load([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)
}

func TestLoad_NormalizesCase(t *testing.T) {
	clearEnv(t)

	cfg, err := Load([]string{"-log-format", "JSON", "-l", "Debug", "-store", " Memory "})
	require.NoError(t, err)
	assert.Equal(t, logging.FormatJSON, cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, StoreMemory, cfg.StoreBackend)

	_, err = logging.New(cfg.LogLevel, cfg.LogFormat, io.Discard)
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{name: "empty url", mutate: func(c *Config) { c.APIBaseURL = "" }, want: "api url is empty"},
		{name: "relative url", mutate: func(c *Config) { c.APIBaseURL = "api.tabhay.tech" }, want: "absolute http(s) URL"},
		{name: "ftp url", mutate: func(c *Config) { c.APIBaseURL = "ftp://x" }, want: "absolute http(s) URL"},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }, want: "timeout must be positive"},
		{name: "no store path", mutate: func(c *Config) { c.StorePath = "" }, want: "store path is empty"},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }, want: `unknown log format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("memory store needs no path", func(t *testing.T) {
		c := defaults()
		c.StoreBackend = StoreMemory
		c.StorePath = ""
		assert.NoError(t, c.Validate())
	})
}
