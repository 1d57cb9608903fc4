package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses all configuration flags from args (without the program
// name). Flags that are not given leave their field at the zero value so
// that lower-priority sources are preserved on merge.
//
// Flags:
//
//	-profile API profile identifier (jsonplaceholder, randomuser, coingecko)
//	-timeout request timeout (e.g., "15s", "1m")
//	-user-agent User-Agent header sent with the request
//	-limit maximum number of records in the full listing (0 = all)
//	-city-prefix city prefix used by the filtered listing
//	-log-level diagnostic log level
//	-log-file diagnostic log file path
//	-c/-config json or yaml file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var profile string
	var requestTimeout time.Duration
	var userAgent string
	var limit int
	var cityPrefix string
	var logLevel string
	var logFile string
	var configPath string

	fs := flag.NewFlagSet("fetcher", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&profile, "profile", "", "API profile identifier")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&userAgent, "user-agent", "", "User-Agent header")
	fs.IntVar(&limit, "limit", 0, "Maximum number of records to display (0 = all)")
	fs.StringVar(&cityPrefix, "city-prefix", "", "City prefix for the filtered listing")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Profile: profile,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
			UserAgent:      userAgent,
		},
		Display: Display{
			Limit:      limit,
			CityPrefix: cityPrefix,
		},
		ConfigFilePath: configPath,
	}, nil
}
