package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/sleepcoach/internal/logging"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds runtime settings for the SleepCoach CLI.
//
// Fields:
//   - APIBaseURL: scheme and host of the remote API.
//   - RequestTimeout: deadline applied to every API call.
//   - StoreBackend / StorePath: where the local session is kept.
//   - LogLevel / LogFormat: see logging.New.
//   - OptimisticCompletion: record onboarding as complete locally when the
//     server accepted the completion but does not report it yet.
type Config struct {
	APIBaseURL           string
	RequestTimeout       time.Duration
	StoreBackend         string
	StorePath            string
	LogLevel             string
	LogFormat            string
	OptimisticCompletion bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.tabhay.tech"
	c.RequestTimeout = 15 * time.Second
	c.StoreBackend = StoreSQLite
	c.StorePath = "sleepcoach.db"
	c.LogLevel = "warn"
	c.LogFormat = logging.FormatText
	c.OptimisticCompletion = true
}

// Load constructs a Config from defaults, then the environment (including a
// .env file in the working directory), then the config file named by -c or
// -config, then the flags in args. Later sources take precedence over
// earlier ones. The result is normalized and validated.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Normalize lowercases the enumerated settings so that "JSON" and "json"
// mean the same thing everywhere downstream.
func (c *Config) Normalize() {
	c.StoreBackend = strings.ToLower(strings.TrimSpace(c.StoreBackend))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// Validate rejects settings the client cannot start with.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.APIBaseURL)
	switch {
	case c.APIBaseURL == "":
		errs = append(errs, errors.New("api url is empty"))
	case err != nil:
		errs = append(errs, fmt.Errorf("api url: %w", err))
	case u.Scheme != "http" && u.Scheme != "https", u.Host == "":
		errs = append(errs, fmt.Errorf("api url %q must be an absolute http(s) URL", c.APIBaseURL))
	}

	switch c.StoreBackend {
	case StoreSQLite:
		if c.StorePath == "" {
			errs = append(errs, errors.New("store path is empty"))
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown store backend %q", c.StoreBackend))
	}

	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.RequestTimeout))
	}

	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON, logging.FormatZap:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}
