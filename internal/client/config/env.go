package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvAPIURL               = "SLEEPCOACH_API_URL"
	EnvStore                = "SLEEPCOACH_STORE"
	EnvStorePath            = "SLEEPCOACH_STORE_PATH"
	EnvLogLevel             = "SLEEPCOACH_LOG_LEVEL"
	EnvLogFormat            = "SLEEPCOACH_LOG_FORMAT"
	EnvTimeout              = "SLEEPCOACH_TIMEOUT"
	EnvOptimisticCompletion = "SLEEPCOACH_OPTIMISTIC_COMPLETION"
)

const dotEnvFile = ".env"

// loadDotEnv copies the variables of path into the process environment.
// Variables already set are left alone; a missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// parseEnv overlays cfg with the variables lookup finds. The timeout accepts
// a duration ("10s") or a number of seconds.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		EnvAPIURL:    &cfg.APIBaseURL,
		EnvStore:     &cfg.StoreBackend,
		EnvStorePath: &cfg.StorePath,
		EnvLogLevel:  &cfg.LogLevel,
		EnvLogFormat: &cfg.LogFormat,
	}
	for name, dst := range strs {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.RequestTimeout = d
	}

	if v, ok := lookup(EnvOptimisticCompletion); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvOptimisticCompletion, err)
		}
		cfg.OptimisticCompletion = b
	}
	return nil
}

func parseSeconds(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}
