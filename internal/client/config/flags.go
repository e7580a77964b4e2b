package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/sleepcoach/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string           base URL of the remote API
//	-s string           path of the local SQLite store
//	-store string       store backend: sqlite or memory
//	-t int              request timeout in seconds
//	-l string           log level
//	-log-format string  log format: text, json or zap
//
// args is filtered with flagx.FilterArgs first, so flags owned by other
// parsers (such as -c) are ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-store", "-t", "-l", "-log-format"})

	fs := flag.NewFlagSet("sleepcoach", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the remote API")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the local SQLite store")
	fs.StringVar(&cfg.StoreBackend, "store", cfg.StoreBackend, "store backend (sqlite or memory)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json or zap)")
	timeout := fs.Int("t", int(cfg.RequestTimeout/time.Second), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
