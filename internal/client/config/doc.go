// Package config loads runtime configuration for the SleepCoach CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading an optional .env file (see
//     parseEnv). Variables already set in the process win over the file.
//  3. Optional JSON or YAML file selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Environment
//
//	SLEEPCOACH_API_URL                base URL of the remote API
//	SLEEPCOACH_STORE                  sqlite or memory
//	SLEEPCOACH_STORE_PATH             SQLite file
//	SLEEPCOACH_LOG_LEVEL              debug, info, warn or error
//	SLEEPCOACH_LOG_FORMAT             text, json or zap
//	SLEEPCOACH_TIMEOUT                seconds, or a duration such as "10s"
//	SLEEPCOACH_OPTIMISTIC_COMPLETION  true or false
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds:
//
//	{
//	  "api_url": "https://api.tabhay.tech",
//	  "timeout": "10s",
//	  "store": "sqlite",
//	  "store_path": "sleepcoach.db",
//	  "log_level": "info",
//	  "optimistic_completion": true
//	}
//
// The same keys are used in YAML files (.yaml or .yml).
package config
