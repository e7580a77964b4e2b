package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/sleepcoach/internal/flagx"
	"github.com/dmitrijs2005/sleepcoach/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file unmarshalling.
// Absent keys stay nil and leave the current value alone. Durations use
// timex.Duration, so "10s" and integer nanoseconds both work.
type FileConfig struct {
	APIBaseURL           *string         `json:"api_url" yaml:"api_url"`
	RequestTimeout       *timex.Duration `json:"timeout" yaml:"timeout"`
	StoreBackend         *string         `json:"store" yaml:"store"`
	StorePath            *string         `json:"store_path" yaml:"store_path"`
	LogLevel             *string         `json:"log_level" yaml:"log_level"`
	LogFormat            *string         `json:"log_format" yaml:"log_format"`
	OptimisticCompletion *bool           `json:"optimistic_completion" yaml:"optimistic_completion"`
}

// parseFile overlays cfg with the file given by -c or -config in args. Files
// ending in .yaml or .yml are read as YAML, anything else as JSON. Without
// the flag nothing happens.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	setIf(&cfg.APIBaseURL, fc.APIBaseURL)
	setIf(&cfg.StoreBackend, fc.StoreBackend)
	setIf(&cfg.StorePath, fc.StorePath)
	setIf(&cfg.LogLevel, fc.LogLevel)
	setIf(&cfg.LogFormat, fc.LogFormat)
	setIf(&cfg.OptimisticCompletion, fc.OptimisticCompletion)
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
