// Package config provides configuration loading, merging, and validation
// facilities for the todo client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (JSON, or TOML when the path ends in ".toml")
//
// The main entry points are [GetStructuredConfig] for the merged view and
// [GetClientConfig] for the validated client runtime configuration.
package config
