package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:3001", "-s", "x.db", "-store", "memory", "-t", "10", "-l", "debug", "-log-format", "json"},
			mutate: func(c *Config) {
				c.APIBaseURL = "http://127.0.0.1:3001"
				c.StorePath = "x.db"
				c.StoreBackend = StoreMemory
				c.RequestTimeout = 10 * time.Second
				c.LogLevel = "debug"
				c.LogFormat = "json"
			},
		},
		{
			name:   "foreign flags are ignored",
			args:   []string{"-c", "cfg.json", "-x", "-a=http://h"},
			mutate: func(c *Config) { c.APIBaseURL = "http://h" },
		},
		{
			name:   "no flags",
			mutate: func(*Config) {},
		},
		{
			name:    "incorrect timeout",
			args:    []string{"-t", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(&cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.mutate(&want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func TestParseFlags_KeepsSubSecondTimeout(t *testing.T) {
	cfg := defaults()
	cfg.RequestTimeout = 1500 * time.Millisecond

	require.NoError(t, parseFlags(&cfg, []string{"-a", "http://h"}))
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
}
