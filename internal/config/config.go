// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other configuration source.
const (
	DefaultProfile        = "jsonplaceholder"
	DefaultLogLevel       = "info"
	DefaultRequestTimeout = 15 * time.Second
	DefaultUserAgent      = "public-api-fetcher/1.0"
	DefaultCityPrefix     = "S"
)

// StructuredConfig is the top-level configuration container for the
// public-api-fetcher application. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App selects which public API the run targets.
	App App `envPrefix:"APP_"`

	// Log controls the diagnostic logger.
	Log Log `envPrefix:"LOG_"`

	// Adapter holds the outbound HTTP settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Display holds the record listing options of the demonstration run.
	Display Display `envPrefix:"DISPLAY_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. When non-empty, the file is parsed and merged on top of the
	// values already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Profile is the registry identifier of the API to query
	// (jsonplaceholder, randomuser or coingecko).
	// Env: APP_PROFILE
	Profile string `env:"PROFILE"`
}

// Log holds diagnostic logger settings.
type Log struct {
	// Level is the minimum zerolog level (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path of the JSON log file. Empty means a "logs" file next
	// to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Adapter holds configuration of the outbound HTTP client.
type Adapter struct {
	// RequestTimeout is the maximum duration of the single GET request
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Display holds the listing options used by the demonstration run.
type Display struct {
	// Limit caps the number of records printed by the full listing.
	// Zero means no limit.
	// Env: DISPLAY_LIMIT
	Limit int `env:"LIMIT"`

	// CityPrefix is the prefix matched by the city filter listing.
	// Env: DISPLAY_CITY_PREFIX
	CityPrefix string `env:"CITY_PREFIX"`
}

// Defaults returns the configuration used when no other source sets a value.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App:     App{Profile: DefaultProfile},
		Log:     Log{Level: DefaultLogLevel},
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout, UserAgent: DefaultUserAgent},
		Display: Display{CityPrefix: DefaultCityPrefix},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON or YAML file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
