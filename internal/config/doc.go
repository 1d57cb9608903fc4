// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML config file
//
// With no source set, the defaults reproduce the fixed demonstration run:
// the jsonplaceholder profile, a 15 second request timeout, no display limit
// and the "S" city prefix. The main entry point is [GetStructuredConfig].
package config
